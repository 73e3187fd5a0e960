package tree_test

import (
	"fmt"

	"github.com/matzehuels/tidytree/pkg/tree"
)

func ExampleParseLevelOrder() {
	root, err := tree.ParseLevelOrder("[1,null,2,3]")
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	tree.Walk(root, func(v tree.TreeView, depth int) bool {
		fmt.Printf("%*s%s\n", 2*depth, "", v.Label())
		return true
	})
	// Output:
	// 1
	//   2
	//     3
}

func ExampleValidate() {
	root := tree.New("a", tree.Leaf("b"), nil)
	root.LeftChild.LeftChild = root

	err := tree.Validate(root)
	fmt.Println(err)
	// Output:
	// node "a" is reachable more than once (depth 2): layout is undefined for non-tree graphs
}

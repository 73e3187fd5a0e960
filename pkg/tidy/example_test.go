package tidy_test

import (
	"fmt"

	"github.com/matzehuels/tidytree/pkg/tidy"
	"github.com/matzehuels/tidytree/pkg/tree"
)

func ExampleBuild() {
	root, _ := tree.ParseLevelOrder("[1,2,3,null,4]")
	l, err := tidy.Build(root.View(), tidy.Options{})
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Printf("%dx%d\n", l.Width, l.Height)
	for _, n := range l.Nodes {
		fmt.Printf("%s depth=%d column=%d\n", n.Label, n.Depth, n.Column)
	}
	// Output:
	// 5x3
	// 1 depth=0 column=2
	// 2 depth=1 column=0
	// 4 depth=2 column=2
	// 3 depth=1 column=4
}

func ExampleLayout_Position() {
	root := tree.New("r", tree.Leaf("a"), nil)
	l, _ := tidy.Build(root.View(), tidy.Options{Separation: 5})
	p, _ := l.Position(root.LeftChild)
	fmt.Println(p.Depth, p.Column)
	// Output:
	// 1 0
}

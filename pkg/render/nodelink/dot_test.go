package nodelink

import (
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/tidytree/pkg/tidy"
	"github.com/matzehuels/tidytree/pkg/tree"
)

func cherry(t *testing.T) *tidy.Layout {
	t.Helper()
	root := tree.New("1", tree.Leaf("2"), tree.Leaf("3"))
	l, err := tidy.Build(root.View(), tidy.Options{})
	if err != nil {
		t.Fatal(err)
	}
	return l
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(cherry(t), Options{ColumnWidth: 0.5, RowHeight: 1})
	for _, want := range []string{
		"layout=neato;",
		`n0 [label="1", pos="1,1!"];`,
		`n1 [label="2", pos="0,0!"];`,
		`n2 [label="3", pos="2,0!"];`,
		"n0 -> n1;",
		"n0 -> n2;",
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
}

func TestToDOTDetailed(t *testing.T) {
	dot := ToDOT(cherry(t), Options{Detailed: true})
	if !strings.Contains(dot, `label="3\n(1,4)"`) {
		t.Errorf("detailed label missing:\n%s", dot)
	}
}

func TestToDOTEmpty(t *testing.T) {
	l, _ := tidy.Build(nil, tidy.Options{})
	dot := ToDOT(l, Options{})
	if strings.Contains(dot, "->") || !strings.HasSuffix(dot, "}\n") {
		t.Errorf("empty DOT = %q", dot)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="10pt" height="20pt" viewBox="0.00 0.00 10.00 20.00" xmlns="x"><g/></svg>`)
	got := string(normalizeViewBox(in))
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10.00 20.00" width="10" height="20"><g/></svg>`
	if got != want {
		t.Errorf("normalizeViewBox() =\n%s\nwant\n%s", got, want)
	}
	if plain := []byte("<svg/>"); string(normalizeViewBox(plain)) != "<svg/>" {
		t.Error("svg without viewBox should pass through")
	}
}

func TestRenderSVG(t *testing.T) {
	svg, err := RenderSVG(context.Background(), ToDOT(cherry(t), Options{}))
	if err != nil {
		t.Fatalf("RenderSVG: %v", err)
	}
	s := string(svg)
	if !strings.Contains(s, "<svg") || !strings.Contains(s, "</svg>") {
		t.Errorf("not an SVG document:\n%s", s)
	}
}

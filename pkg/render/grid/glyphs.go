package grid

import (
	"strings"

	errs "github.com/matzehuels/tidytree/pkg/errors"
)

// Glyphs is the set of runes a Renderer draws with. A zero field is unset.
type Glyphs struct {
	Node       rune
	Blank      rune
	Horizontal rune
	Left       rune // diagonal to an adjacent left child
	Right      rune // diagonal to an adjacent right child
	LeftChild  rune // corner above a far left child
	RightChild rune // corner above a far right child
	UnderLeft  rune // elbow under a parent with a far left child
	UnderRight rune // elbow under a parent with a far right child
	Junction   rune // under a parent with two far children
}

// Unicode draws with box-drawing characters.
var Unicode = Glyphs{
	Node:       '●',
	Blank:      ' ',
	Horizontal: '─',
	Left:       '/',
	Right:      '\\',
	LeftChild:  '┌',
	RightChild: '┐',
	UnderLeft:  '┘',
	UnderRight: '└',
	Junction:   '┴',
}

// ASCII draws with 7-bit characters only.
var ASCII = Glyphs{
	Node:       'o',
	Blank:      ' ',
	Horizontal: '-',
	Left:       '/',
	Right:      '\\',
	LeftChild:  '+',
	RightChild: '+',
	UnderLeft:  '+',
	UnderRight: '+',
	Junction:   '+',
}

// Merge returns g with every non-zero field of o applied on top.
func (g Glyphs) Merge(o Glyphs) Glyphs {
	pick := func(base, over rune) rune {
		if over != 0 {
			return over
		}
		return base
	}
	return Glyphs{
		Node:       pick(g.Node, o.Node),
		Blank:      pick(g.Blank, o.Blank),
		Horizontal: pick(g.Horizontal, o.Horizontal),
		Left:       pick(g.Left, o.Left),
		Right:      pick(g.Right, o.Right),
		LeftChild:  pick(g.LeftChild, o.LeftChild),
		RightChild: pick(g.RightChild, o.RightChild),
		UnderLeft:  pick(g.UnderLeft, o.UnderLeft),
		UnderRight: pick(g.UnderRight, o.UnderRight),
		Junction:   pick(g.Junction, o.Junction),
	}
}

// Validate reports every unset glyph.
func (g Glyphs) Validate() error {
	fields := []struct {
		name string
		r    rune
	}{
		{"node", g.Node},
		{"blank", g.Blank},
		{"horizontal", g.Horizontal},
		{"left", g.Left},
		{"right", g.Right},
		{"left_child", g.LeftChild},
		{"right_child", g.RightChild},
		{"under_left", g.UnderLeft},
		{"under_right", g.UnderRight},
		{"junction", g.Junction},
	}
	var missing []string
	for _, f := range fields {
		if f.r == 0 {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return errs.New(errs.ErrCodeInvalidGlyphs, "glyph set is missing %s", strings.Join(missing, ", "))
	}
	return nil
}

// ParseGlyphs builds a glyph set from single-character strings keyed by
// field name, as found in configuration files. Unknown keys and values that
// are not exactly one character are rejected.
func ParseGlyphs(m map[string]string) (Glyphs, error) {
	var g Glyphs
	slots := map[string]*rune{
		"node":        &g.Node,
		"blank":       &g.Blank,
		"horizontal":  &g.Horizontal,
		"left":        &g.Left,
		"right":       &g.Right,
		"left_child":  &g.LeftChild,
		"right_child": &g.RightChild,
		"under_left":  &g.UnderLeft,
		"under_right": &g.UnderRight,
		"junction":    &g.Junction,
	}
	for k, v := range m {
		slot, ok := slots[k]
		if !ok {
			return Glyphs{}, errs.New(errs.ErrCodeInvalidGlyphs, "unknown glyph %q", k)
		}
		rs := []rune(v)
		if len(rs) != 1 {
			return Glyphs{}, errs.New(errs.ErrCodeInvalidGlyphs, "glyph %q must be a single character, got %q", k, v)
		}
		*slot = rs[0]
	}
	return g, nil
}

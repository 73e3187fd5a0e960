package grid

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Grid is a rendered character matrix. Rows is 2·Height−1 for a layout of
// Height levels and Cols is the layout width; both are 0 for an empty tree.
type Grid struct {
	Rows  int
	Cols  int
	Cells [][]rune
}

// At returns the rune at row r, column c.
func (g Grid) At(r, c int) rune { return g.Cells[r][c] }

// Lines returns each row as a string, including trailing blanks.
func (g Grid) Lines() []string {
	out := make([]string, g.Rows)
	for i, row := range g.Cells {
		out[i] = string(row)
	}
	return out
}

// String joins the rows with newlines, trimming trailing spaces.
func (g Grid) String() string {
	var b strings.Builder
	for i, row := range g.Cells {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(strings.TrimRight(string(row), " "))
	}
	return b.String()
}

// Frame wraps the grid in a border with one column of padding on either
// side. Use lipgloss.RoundedBorder for Unicode output and
// lipgloss.ASCIIBorder for ASCII.
func (g Grid) Frame(border lipgloss.Border) string {
	if g.Rows == 0 {
		return ""
	}
	return lipgloss.NewStyle().
		Border(border).
		Padding(0, 1).
		Render(strings.Join(g.Lines(), "\n"))
}

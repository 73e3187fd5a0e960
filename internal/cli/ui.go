package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Terminal palette (ANSI 256).
var (
	colorAccent = lipgloss.Color("36")
	colorOK     = lipgloss.Color("35")
	colorValue  = lipgloss.Color("255")
	colorGray   = lipgloss.Color("245")
	colorDim    = lipgloss.Color("240")
)

// Styles shared by commands and the viewer.
var (
	StyleTitle  = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	StyleDim    = lipgloss.NewStyle().Foreground(colorDim)
	StyleValue  = lipgloss.NewStyle().Foreground(colorValue)
	StyleNumber = lipgloss.NewStyle().Foreground(colorAccent)

	styleIconSpinner = lipgloss.NewStyle().Foreground(colorAccent)
)

// statusLine is one prefixed line of command output, e.g. "✓ Cleared cache".
type statusLine struct {
	icon  string
	style lipgloss.Style
}

var (
	lineSuccess = statusLine{"✓", lipgloss.NewStyle().Foreground(colorOK)}
	lineInfo    = statusLine{"›", lipgloss.NewStyle().Foreground(colorGray)}
)

func (s statusLine) print(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", s.style.Render(s.icon), fmt.Sprintf(format, args...))
}

func printSuccess(w io.Writer, format string, args ...any) { lineSuccess.print(w, format, args...) }

func printInfo(w io.Writer, format string, args ...any) { lineInfo.print(w, format, args...) }

// printDetail prints an indented, dimmed line below a status line.
func printDetail(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "  %s\n", StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile prints the path a command wrote to.
func printFile(w io.Writer, path string) {
	fmt.Fprintf(w, "  %s %s\n", StyleDim.Render("→"), StyleValue.Render(path))
}

package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/tidytree/pkg/pipeline"
)

// viewCommand creates the view command, an interactive viewer for grids
// wider or taller than the terminal.
func (c *CLI) viewCommand() *cobra.Command {
	var t treeOpts
	var g gridOpts

	cmd := &cobra.Command{
		Use:   "view [tree]",
		Short: "Browse a large tree grid interactively",
		Long: `Browse a large tree grid interactively.

Arrow keys or h/j/k/l scroll by one cell, shift+arrows or H/J/K/L by a
screen, g/G jump to the top/bottom and q quits.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.options(cmd, args, &t, &g)
			if err != nil {
				return err
			}
			opts.Formats = []string{pipeline.FormatGrid}
			opts.Frame = false

			runner, err := c.newRunner(t.noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			res, err := runner.Execute(cmd.Context(), opts)
			if err != nil {
				return err
			}
			title := fmt.Sprintf("%d nodes · %dx%d", res.Stats.NodeCount, res.Stats.Width, res.Stats.Height)
			m := newViewerModel(string(res.Artifacts[pipeline.FormatGrid]), title)

			popts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(cmd.Context()), tea.WithOutput(c.out)}
			if len(args) == 0 && (t.input == "" || t.input == "-") {
				// stdin held the tree; read keys from the terminal instead.
				popts = append(popts, tea.WithInputTTY())
			} else {
				popts = append(popts, tea.WithInput(c.in))
			}
			_, err = tea.NewProgram(m, popts...).Run()
			return err
		},
	}

	t.bind(cmd)
	g.bind(cmd)
	return cmd
}

// =============================================================================
// ViewerModel - scrollable grid
// =============================================================================

// viewerChrome is the number of rows taken by the header and footer.
const viewerChrome = 3

// ViewerModel is the bubbletea model for the grid viewer. The grid is held
// as rune rows so that horizontal scrolling counts cells, not bytes.
type ViewerModel struct {
	Title  string
	Lines  [][]rune
	Cols   int // widest line
	X, Y   int // top-left visible cell
	Width  int // terminal columns
	Height int // visible grid rows
}

func newViewerModel(grid, title string) ViewerModel {
	m := ViewerModel{Title: title, Width: 80, Height: 20}
	if grid != "" {
		for _, line := range strings.Split(grid, "\n") {
			r := []rune(line)
			m.Lines = append(m.Lines, r)
			m.Cols = max(m.Cols, len(r))
		}
	}
	return m
}

func (m ViewerModel) Init() tea.Cmd {
	return nil
}

func (m ViewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h":
			m.X--
		case "right", "l":
			m.X++
		case "up", "k":
			m.Y--
		case "down", "j":
			m.Y++
		case "shift+left", "H":
			m.X -= m.Width
		case "shift+right", "L":
			m.X += m.Width
		case "pgup", "shift+up", "K":
			m.Y -= m.Height
		case "pgdown", "shift+down", "J", " ":
			m.Y += m.Height
		case "home", "g":
			m.X, m.Y = 0, 0
		case "end", "G":
			m.Y = len(m.Lines)
		}
	case tea.WindowSizeMsg:
		m.Width = max(msg.Width, 1)
		m.Height = max(msg.Height-viewerChrome, 1)
	}
	m.clamp()
	return m, nil
}

// clamp keeps the viewport inside the grid.
func (m *ViewerModel) clamp() {
	m.X = min(m.X, max(m.Cols-m.Width, 0))
	m.Y = min(m.Y, max(len(m.Lines)-m.Height, 0))
	m.X = max(m.X, 0)
	m.Y = max(m.Y, 0)
}

func (m ViewerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Title))
	b.WriteString("\n")

	end := min(m.Y+m.Height, len(m.Lines))
	for i := m.Y; i < end; i++ {
		line := m.Lines[i]
		if m.X < len(line) {
			line = line[m.X:min(len(line), m.X+m.Width)]
		} else {
			line = nil
		}
		b.WriteString(string(line))
		b.WriteString("\n")
	}
	for i := end - m.Y; i < m.Height; i++ {
		b.WriteString("\n")
	}

	b.WriteString(StyleDim.Render(fmt.Sprintf("col %d-%d of %d · row %d-%d of %d · arrows scroll · q quit",
		m.X, min(m.X+m.Width, m.Cols), m.Cols, m.Y, end, len(m.Lines))))
	return b.String()
}

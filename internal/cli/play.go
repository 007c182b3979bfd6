package cli

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/seamusw/cubesolver/internal/cube"
	"github.com/seamusw/cubesolver/internal/notation"
	"github.com/seamusw/cubesolver/internal/render"
	"github.com/seamusw/cubesolver/internal/scramble"
	"github.com/seamusw/cubesolver/internal/solver"
)

var playMaxDepth int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Interactive cube explorer",
	Long: `Start an interactive TUI for exploring the cube.

Type an algorithm (e.g. R U R' U') and press Enter to apply it.

Keyboard shortcuts:
  enter   - apply the typed algorithm
  ctrl+x  - apply a random 5-move scramble
  ctrl+s  - solve with breadth-first search and show the solution
  ctrl+r  - reset to solved
  esc / ctrl+c - quit`,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().IntVar(&playMaxDepth, "max-depth", 6, "Depth bound for ctrl+s solves")
}

// Styles
var (
	playTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	playStatusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	playMoveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	playErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	playHelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Messages
type solveDoneMsg solver.Result

// Model
type playModel struct {
	c        *cube.Cube
	input    string
	history  []string
	status   string
	err      error
	solving  bool
	quitting bool
}

func newPlayModel() playModel {
	return playModel{
		c:      cube.New(),
		status: "Solved cube. Type moves and press Enter.",
	}
}

func (m playModel) Init() tea.Cmd {
	return nil
}

func (m playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case solveDoneMsg:
		m.solving = false
		res := solver.Result(msg)
		if !res.Found {
			m.status = fmt.Sprintf("No solution within %d moves (%d nodes, %v)",
				playMaxDepth, res.NodesExplored, res.Elapsed)
			return m, nil
		}
		if len(res.Moves) == 0 {
			m.status = "Already solved"
			return m, nil
		}
		m.c.ApplyMoves(res.Moves)
		m.history = append(m.history, notation.FormatMoves(res.Moves))
		m.status = fmt.Sprintf("Solved with %s (%d nodes, %v)",
			notation.FormatMoves(res.Moves), res.NodesExplored, res.Elapsed)
		return m, nil
	}

	return m, nil
}

func (m playModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit

	case "enter":
		if m.solving || strings.TrimSpace(m.input) == "" {
			return m, nil
		}
		alg := strings.TrimSpace(m.input)
		m.input = ""
		m.err = nil
		if err := m.c.ApplyAlgorithm(alg); err != nil {
			// Valid moves before the bad token are applied; say so.
			m.err = fmt.Errorf("%v (moves before the bad token were applied)", err)
			return m, nil
		}
		m.history = append(m.history, alg)
		m.status = fmt.Sprintf("Applied %s", alg)
		return m, nil

	case "backspace":
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
		return m, nil

	case "ctrl+r":
		m.c.Reset()
		m.history = nil
		m.err = nil
		m.status = "Reset to solved"
		return m, nil

	case "ctrl+x":
		if m.solving {
			return m, nil
		}
		moves := scramble.Random(5, rand.New(rand.NewSource(time.Now().UnixNano())))
		m.c.ApplyMoves(moves)
		alg := notation.FormatMoves(moves)
		m.history = append(m.history, alg)
		m.err = nil
		m.status = fmt.Sprintf("Scrambled with %s", alg)
		return m, nil

	case "ctrl+s":
		if m.solving {
			return m, nil
		}
		m.solving = true
		m.err = nil
		m.status = "Solving..."
		snapshot := m.c.Clone()
		return m, func() tea.Msg {
			return solveDoneMsg(solver.BFS{}.Solve(snapshot, playMaxDepth))
		}
	}

	switch msg.Type {
	case tea.KeyRunes:
		m.input += string(msg.Runes)
	case tea.KeySpace:
		m.input += " "
	}
	return m, nil
}

func (m playModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(playTitleStyle.Render("cubesolver play"))
	b.WriteString("\n\n")
	b.WriteString(render.Net(m.c.Faces()))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(playErrorStyle.Render(m.err.Error()))
	} else {
		b.WriteString(playStatusStyle.Render(m.status))
	}
	b.WriteString("\n\n")

	if len(m.history) > 0 {
		recent := m.history
		if len(recent) > 5 {
			recent = recent[len(recent)-5:]
		}
		b.WriteString(playMoveStyle.Render("History: " + strings.Join(recent, " | ")))
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("> %s█\n\n", m.input))
	b.WriteString(playHelpStyle.Render("enter apply · ctrl+x scramble · ctrl+s solve · ctrl+r reset · esc quit"))
	b.WriteString("\n")

	return b.String()
}

func runPlay(cmd *cobra.Command, args []string) error {
	p := tea.NewProgram(newPlayModel())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("play TUI failed: %w", err)
	}
	return nil
}

package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SeamusWaldron/cubeless"
	"github.com/SeamusWaldron/cubeless/internal/recorder"
	"github.com/SeamusWaldron/cubeless/internal/storage"
)

var playFresh bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Interactive cube session",
	Long: `Start an interactive TUI for turning a virtual cube.

The session is saved after every change and resumed on the next run.
Pressing enter archives the recorded attempt in the database.

Keyboard shortcuts:
  u r f d l b   - Face turns (shift for counter-clockwise)
  m e s         - Slice turns (shift for counter-clockwise)
  x y z         - Cube rotations (shift for counter-clockwise)
  :             - Type an algorithm (wide moves, doubles, ...)
  space         - Toggle recording
  ctrl+s        - Scramble (typed when manual scramble is on)
  o             - Rotate to white up, green front
  ?             - Ask the external solver
  enter         - Archive the recorded attempt
  ctrl+r        - Reset to solved
  q/esc         - Quit`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().BoolVar(&playFresh, "fresh", false, "Discard the saved session and start solved")
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	recordingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	solvedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("82"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

var stickerStyles = map[cubeless.Color]lipgloss.Style{
	cubeless.White:  lipgloss.NewStyle().Background(lipgloss.Color("15")).Foreground(lipgloss.Color("0")),
	cubeless.Red:    lipgloss.NewStyle().Background(lipgloss.Color("160")).Foreground(lipgloss.Color("15")),
	cubeless.Green:  lipgloss.NewStyle().Background(lipgloss.Color("34")).Foreground(lipgloss.Color("15")),
	cubeless.Yellow: lipgloss.NewStyle().Background(lipgloss.Color("226")).Foreground(lipgloss.Color("0")),
	cubeless.Orange: lipgloss.NewStyle().Background(lipgloss.Color("208")).Foreground(lipgloss.Color("0")),
	cubeless.Blue:   lipgloss.NewStyle().Background(lipgloss.Color("27")).Foreground(lipgloss.Color("15")),
}

// keyMoves maps single keys to the move they press.
var keyMoves = map[string]string{
	"u": "U", "U": "U'",
	"r": "R", "R": "R'",
	"f": "F", "F": "F'",
	"d": "D", "D": "D'",
	"l": "L", "L": "L'",
	"b": "B", "B": "B'",
	"m": "M", "M": "M'",
	"e": "E", "E": "E'",
	"s": "S", "S": "S'",
	"x": "x", "X": "x'",
	"y": "y", "Y": "y'",
	"z": "z", "Z": "z'",
}

type inputMode int

const (
	inputNone inputMode = iota
	inputAlgorithm
	inputScramble
)

// Messages
type solvedMsg struct {
	solution string
	err      error
}

// Model
type playModel struct {
	rec    *recorder.Recorder
	solver cubeless.Solver
	manual bool

	mode  inputMode
	input string

	status   string
	hint     string
	err      error
	quitting bool
}

func newPlayModel(rec *recorder.Recorder, s cubeless.Solver, manualScramble bool) *playModel {
	return &playModel{rec: rec, solver: s, manual: manualScramble}
}

func (m *playModel) Init() tea.Cmd {
	return nil
}

// solveCmd runs the solver on a copy of the session so keys pressed while
// it works do not race with it.
func (m *playModel) solveCmd() tea.Cmd {
	snap := m.rec.Session().Snapshot()
	s := m.solver
	return func() tea.Msg {
		sess, err := cubeless.RestoreSession(snap)
		if err != nil {
			return solvedMsg{err: err}
		}
		solution, err := sess.Solve(context.Background(), s)
		return solvedMsg{solution: solution, err: err}
	}
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.mode != inputNone {
			return m.updateInput(msg)
		}
		return m.updateKeys(msg)

	case solvedMsg:
		m.err = msg.err
		if msg.err == nil {
			m.hint = msg.solution
			if m.hint == "" {
				m.hint = "(nothing to do)"
			}
		}
	}

	return m, nil
}

func (m *playModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.err = nil
	key := msg.String()

	if move, ok := keyMoves[key]; ok {
		m.hint = ""
		m.err = m.rec.Press(move)
		return m, nil
	}

	switch key {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		m.err = m.rec.Save()
		return m, tea.Quit
	case " ":
		on, err := m.rec.ToggleRecording()
		m.err = err
		if on {
			m.status = "Recording"
		} else {
			m.status = "Recording paused"
		}
	case ":":
		m.mode = inputAlgorithm
		m.input = ""
	case "ctrl+s":
		if m.manual {
			m.mode = inputScramble
			m.input = ""
			return m, nil
		}
		alg, err := m.rec.Scramble()
		m.err = err
		m.hint = ""
		m.status = "Scrambled: " + alg
	case "o":
		rotations, err := m.rec.Orient()
		m.err = err
		if rotations == "" {
			m.status = "Already oriented"
		} else {
			m.status = "Oriented with " + rotations
		}
	case "?":
		m.status = "Solving..."
		return m, m.solveCmd()
	case "enter":
		id, err := m.rec.Finish()
		m.err = err
		switch {
		case err != nil:
		case id == "":
			m.status = "Nothing recorded"
		default:
			m.status = "Archived session " + id[:8]
		}
	case "ctrl+r":
		m.err = m.rec.Reset()
		m.hint = ""
		m.status = "Reset"
	}

	return m, nil
}

func (m *playModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = inputNone
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	case tea.KeySpace:
		m.input += " "
	case tea.KeyRunes:
		m.input += string(msg.Runes)
	case tea.KeyEnter:
		m.err = m.submitInput()
		m.mode = inputNone
	case tea.KeyCtrlC:
		m.quitting = true
		m.err = m.rec.Save()
		return m, tea.Quit
	}
	return m, nil
}

func (m *playModel) submitInput() error {
	text := strings.TrimSpace(m.input)
	m.input = ""
	if text == "" {
		return nil
	}

	if m.mode == inputScramble {
		m.status = "Scrambled: " + text
		m.hint = ""
		return m.rec.ApplyScramble(text)
	}

	m.hint = ""
	return m.rec.Press(text)
}

func renderSticker(c cubeless.Color) string {
	return stickerStyles[c].Render(" " + c.String() + " ")
}

func (m *playModel) View() string {
	if m.quitting {
		if m.err != nil {
			return errorStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n"
		}
		return "Session saved. Goodbye!\n"
	}

	sess := m.rec.Session()
	var b strings.Builder

	b.WriteString(titleStyle.Render("cubeless"))
	b.WriteString("  ")
	switch {
	case sess.IsSolved():
		b.WriteString(solvedStyle.Render("SOLVED"))
	case sess.Recording():
		b.WriteString(recordingStyle.Render("● REC"))
	default:
		b.WriteString(statusStyle.Render("not recording"))
	}
	b.WriteString("\n\n")

	b.WriteString(sess.Cube().RenderNet(renderSticker, 3))
	b.WriteString("\n")

	if scramble := sess.CurrentScramble(); scramble != "" {
		b.WriteString(fmt.Sprintf("Scramble: %s\n", statusStyle.Render(scramble)))
	}
	b.WriteString(fmt.Sprintf("Solution: %s\n", moveStyle.Render(sess.SolutionText())))
	b.WriteString(fmt.Sprintf("Moves: %d\n", sess.MoveCount()))
	if m.hint != "" {
		b.WriteString(fmt.Sprintf("Solver: %s\n", moveStyle.Render(m.hint)))
	}
	b.WriteString("\n")

	switch m.mode {
	case inputAlgorithm:
		b.WriteString(fmt.Sprintf("Algorithm: %s█\n", m.input))
	case inputScramble:
		b.WriteString(fmt.Sprintf("Scramble: %s█\n", m.input))
	default:
		if m.status != "" {
			b.WriteString(statusStyle.Render(m.status))
			b.WriteString("\n")
		}
	}
	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.mode != inputNone {
		b.WriteString(helpStyle.Render("enter: apply • esc: cancel"))
	} else {
		b.WriteString(helpStyle.Render("urfdlb mes xyz: turn • :: type • space: record • ctrl+s: scramble • o: orient • ?: solve • enter: archive • ctrl+r: reset • q: quit"))
	}
	b.WriteString("\n")

	return b.String()
}

func openStateFile() (*recorder.StateFile, error) {
	if cfg.Storage.StatePath != "" {
		return recorder.NewStateFile(cfg.Storage.StatePath)
	}
	return recorder.NewDefaultStateFile()
}

func runPlay(cmd *cobra.Command, args []string) error {
	stateFile, err := openStateFile()
	if err != nil {
		return fmt.Errorf("failed to load state: %w", err)
	}
	if playFresh {
		if err := stateFile.ClearSession(); err != nil {
			return err
		}
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	rec, err := recorder.New(stateFile, storage.NewSessionRepository(db), logger, cfg.SessionOptions(logger)...)
	if err != nil {
		return err
	}

	model := newPlayModel(rec, configuredSolver(cfg.Solver, logger), cfg.Settings.ManualScramble)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Debug("play finished", zap.String("state_file", stateFile.Path()))
	return model.err
}

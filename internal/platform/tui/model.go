package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-syzygy/internal/core"
	"github.com/vovakirdan/tui-syzygy/internal/registry"
)

// textEntry is implemented by puzzles that take typed characters.
type textEntry interface {
	AcceptsText() bool
}

// Model is the Bubble Tea model for playing one puzzle.
type Model struct {
	puzzle     registry.Puzzle
	session    *Session
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	text       bool
	gameState  core.GameState
	quitting   bool
	backToMenu bool
}

// NewModel creates a play model for puzzle within session.
func NewModel(puzzle registry.Puzzle, session *Session, cfg core.RuntimeConfig) Model {
	te, ok := puzzle.(textEntry)
	puzzle.Reset(cfg)
	return Model{
		puzzle:    puzzle,
		session:   session,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:    cfg,
		keys:      DefaultKeyMap(),
		text:      ok && te.AcceptsText(),
		gameState: puzzle.State(),
	}
}

// Init implements tea.Model. Puzzles are turn based, so nothing ticks.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	if in, ok := m.keys.Input(msg, m.text); ok {
		m.step(in)
		return m, nil
	}

	if key.Matches(msg, m.keys.Back) {
		m.backToMenu = true
		return m, nil
	}
	return m, nil
}

// step applies one input, saving after every change.
func (m *Model) step(in core.Input) {
	res := m.puzzle.Step(in)
	m.gameState = res.State
	if !res.Changed {
		return
	}
	if res.JustSolved {
		m.session.Solved(m.puzzle.ID(), res.State.Moves)
	}
	m.session.Save()
}

// handleResize processes window resize events. The puzzle keeps its state.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.puzzle.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".syzygy", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.session.Logger.Warn("cannot create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.puzzle.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.session.Logger.Warn("cannot save screenshot", "error", err)
		return
	}
	m.session.Logger.Debug("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.screen.Clear()
	m.puzzle.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the puzzle state after the last input.
func (m Model) State() core.GameState { return m.gameState }

// IsQuitting returns true if the user asked to quit entirely.
func (m Model) IsQuitting() bool { return m.quitting }

// BackToMenu returns true if the user asked to leave the puzzle.
func (m Model) BackToMenu() bool { return m.backToMenu }

// Run plays a single puzzle in the terminal until the user leaves it.
func Run(puzzle registry.Puzzle, session *Session, cfg core.RuntimeConfig) error {
	model := standalone{NewModel(puzzle, session, cfg)}
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// standalone quits the program when the player leaves the puzzle.
type standalone struct {
	Model
}

func (s standalone) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := s.Model.Update(msg)
	s.Model = next.(Model)
	if s.BackToMenu() {
		return s, tea.Quit
	}
	return s, cmd
}

func (s standalone) View() string {
	if s.BackToMenu() {
		return ""
	}
	return s.Model.View()
}

package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-syzygy/internal/core"
	"github.com/vovakirdan/tui-syzygy/internal/registry"
	"github.com/vovakirdan/tui-syzygy/internal/save"
)

type screen int

const (
	screenMenu screen = iota
	screenPuzzle
	screenHistory
)

// AppModel manages the full flow: menu -> puzzle -> menu, and the solve
// history. It is the top-level model of local play and of SSH sessions.
type AppModel struct {
	session  *Session
	config   core.RuntimeConfig
	current  screen
	menu     MenuModel
	puzzle   Model
	history  HistoryModel
	quitting bool
}

// NewAppModel creates the top-level model for session.
func NewAppModel(session *Session, cfg core.RuntimeConfig) AppModel {
	return AppModel{
		session: session,
		config:  cfg,
		menu:    NewMenuModel(session, cfg.ScreenW, cfg.ScreenH),
	}
}

// Init initializes the app.
func (m AppModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the active screen.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.current {
	case screenPuzzle:
		return m.updatePuzzle(msg)
	case screenHistory:
		return m.updateHistory(msg)
	}
	return m.updateMenu(msg)
}

func (m AppModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	m.menu = next.(MenuModel)

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsHistory():
		m.history = NewHistoryModel(m.session.Store, m.config.ScreenW, m.config.ScreenH)
		m.current = screenHistory
		return m, m.history.Init()

	case m.menu.Selected() != nil:
		info := *m.menu.Selected()
		puzzle, err := registry.Create(info.ID, m.session.Game)
		if err != nil || !m.session.Enter(info.Location) {
			m.menu = NewMenuModel(m.session, m.config.ScreenW, m.config.ScreenH)
			return m, nil
		}
		m.puzzle = NewModel(puzzle, m.session, m.config)
		m.current = screenPuzzle
		return m, m.puzzle.Init()
	}
	return m, cmd
}

func (m AppModel) updatePuzzle(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.puzzle.Update(msg)
	m.puzzle = next.(Model)

	switch {
	case m.puzzle.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.puzzle.BackToMenu():
		return m.toMenu()
	}
	return m, cmd
}

func (m AppModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.history.Update(msg)
	m.history = next.(HistoryModel)

	switch {
	case m.history.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.history.IsGoingBack():
		return m.toMenu()
	}
	return m, cmd
}

func (m AppModel) toMenu() (tea.Model, tea.Cmd) {
	if m.current == screenPuzzle {
		m.session.Enter(save.Map)
	}
	m.menu = NewMenuModel(m.session, m.config.ScreenW, m.config.ScreenH)
	m.current = screenMenu
	return m, m.menu.Init()
}

// View renders the active screen.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.current {
	case screenPuzzle:
		return m.puzzle.View()
	case screenHistory:
		return m.history.View()
	}
	return m.menu.View()
}

// RunApp runs the menu-driven flow in the local terminal.
func RunApp(session *Session, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(NewAppModel(session, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

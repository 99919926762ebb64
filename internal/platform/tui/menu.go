package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-syzygy/internal/registry"
	"github.com/vovakirdan/tui-syzygy/internal/save"
)

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	solvedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	lockedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	messageStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// MenuModel is the Bubble Tea model for the puzzle picker.
type MenuModel struct {
	items       []registry.Info
	cursor      int
	width       int
	height      int
	session     *Session
	keys        MenuKeyMap
	help        help.Model
	message     string
	quitting    bool
	selected    *registry.Info // Set when the user picks an unlocked puzzle
	openHistory bool
}

// NewMenuModel creates a new menu model.
func NewMenuModel(session *Session, width, height int) MenuModel {
	h := help.New()
	h.Width = width
	return MenuModel{
		items:   registry.List(),
		width:   width,
		height:  height,
		session: session,
		keys:    DefaultMenuKeyMap(),
		help:    h,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.message = ""
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.History):
		m.openHistory = true

	case key.Matches(msg, m.keys.Select):
		if len(m.items) == 0 {
			break
		}
		item := m.items[m.cursor]
		if !m.session.Game.IsUnlocked(item.Location) {
			m.message = "Locked. Solve first: " + prereqNames(item.Location)
			break
		}
		m.selected = &item
	}
	return m, nil
}

func prereqNames(loc save.Location) string {
	names := make([]string, 0, len(loc.Prereqs()))
	for _, p := range loc.Prereqs() {
		names = append(names, p.Name())
	}
	return strings.Join(names, ", ")
}

// status returns the marker shown next to a puzzle.
func (m MenuModel) status(loc save.Location) string {
	g := m.session.Game
	switch {
	case !g.IsUnlocked(loc):
		return lockedStyle.Render("locked")
	case g.IsSolved(loc):
		return solvedStyle.Render("solved")
	case g.Access(loc).IsVisited():
		return "in progress"
	}
	return "new"
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("S Y Z Y G Y"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(fmt.Sprintf("slot %q", m.session.Slot), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		title := fmt.Sprintf("%-22s", item.Title)
		if i == m.cursor {
			cursor = menuCursorStyle.Render("> ")
			title = menuCursorStyle.Render(title)
		}
		line := fmt.Sprintf("%s%s %s", cursor, title, m.status(item.Location))
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.message != "" {
		b.WriteString(centerText(messageStyle.Render(m.message), m.width))
		b.WriteString("\n")
	}
	b.WriteString(centerText(m.help.View(m.keys), m.width))
	b.WriteString("\n")
	return b.String()
}

// Selected returns the picked puzzle, or nil.
func (m MenuModel) Selected() *registry.Info { return m.selected }

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool { return m.quitting }

// WantsHistory returns true if user asked for the solve history.
func (m MenuModel) WantsHistory() bool { return m.openHistory }

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-syzygy/internal/core"
)

// KeyMap defines the key bindings shared by every puzzle.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	PushUp     key.Binding
	PushDown   key.Binding
	PushLeft   key.Binding
	PushRight  key.Binding
	Select     key.Binding
	Undo       key.Binding
	Redo       key.Binding
	Reset      key.Binding
	Erase      key.Binding
	Back       key.Binding
	Quit       key.Binding
	Screenshot key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PushUp, k.Select, k.Undo, k.Reset, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.PushUp, k.PushDown, k.PushLeft, k.PushRight, k.Select},
		{k.Undo, k.Redo, k.Reset, k.Erase},
		{k.Screenshot, k.Back, k.Quit},
	}
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:       key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		PushUp:     key.NewBinding(key.WithKeys("shift+up", "K"), key.WithHelp("S-↑/K", "push up")),
		PushDown:   key.NewBinding(key.WithKeys("shift+down", "J"), key.WithHelp("S-↓/J", "push down")),
		PushLeft:   key.NewBinding(key.WithKeys("shift+left", "H"), key.WithHelp("S-←/H", "push left")),
		PushRight:  key.NewBinding(key.WithKeys("shift+right", "L"), key.WithHelp("S-→/L", "push right")),
		Select:     key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "press")),
		Undo:       key.NewBinding(key.WithKeys("u", "ctrl+z"), key.WithHelp("u", "undo")),
		Redo:       key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("^y", "redo")),
		Reset:      key.NewBinding(key.WithKeys("r", "ctrl+r"), key.WithHelp("r", "reset")),
		Erase:      key.NewBinding(key.WithKeys("backspace", "delete"), key.WithHelp("bksp", "erase")),
		Back:       key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc/q", "back")),
		Quit:       key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("^c", "quit")),
		Screenshot: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("^s", "screenshot")),
	}
}

// Input translates a key message into a puzzle input. When text is true,
// printable keys are typed instead of being matched against bindings.
// ok is false for keys that mean nothing to a puzzle.
func (k KeyMap) Input(msg tea.KeyMsg, text bool) (in core.Input, ok bool) {
	if text && msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		return core.Typed(msg.Runes[0]), true
	}

	bindings := []struct {
		b key.Binding
		a core.Action
	}{
		{k.Up, core.ActionUp},
		{k.Down, core.ActionDown},
		{k.Left, core.ActionLeft},
		{k.Right, core.ActionRight},
		{k.PushUp, core.ActionPushUp},
		{k.PushDown, core.ActionPushDown},
		{k.PushLeft, core.ActionPushLeft},
		{k.PushRight, core.ActionPushRight},
		{k.Select, core.ActionSelect},
		{k.Undo, core.ActionUndo},
		{k.Redo, core.ActionRedo},
		{k.Reset, core.ActionReset},
		{k.Erase, core.ActionErase},
	}
	for _, kb := range bindings {
		if key.Matches(msg, kb.b) {
			return core.In(kb.a), true
		}
	}
	return core.Input{}, false
}

// MenuKeyMap defines the key bindings of the puzzle menu.
type MenuKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Select  key.Binding
	History key.Binding
	Quit    key.Binding
}

func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.History, k.Quit}
}

func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultMenuKeyMap returns the default menu bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k", "w"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j", "s"), key.WithHelp("↓/j", "down")),
		Select:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "play")),
		History: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "history")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

package core

// Action represents a semantic puzzle action, abstracted from physical key presses.
// Adapters work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // Up arrow, k - move cursor up
	ActionDown             // Down arrow, j - move cursor down
	ActionLeft             // Left arrow, h - move cursor left
	ActionRight            // Right arrow, l - move cursor right
	ActionPushUp           // Shift+Up, K - act toward north (slide, rotate, draw pipe)
	ActionPushDown         // Shift+Down, J
	ActionPushLeft         // Shift+Left, H
	ActionPushRight        // Shift+Right, L
	ActionSelect           // Enter, Space - toggle / pick at cursor
	ActionUndo             // u, Ctrl+Z
	ActionRedo             // Ctrl+Y
	ActionReset            // r, Ctrl+R
	ActionType             // printable character (crossword entry)
	ActionErase            // Backspace, Delete
	ActionBack             // Esc, q
	ActionQuit             // Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionPushUp:
		return "PushUp"
	case ActionPushDown:
		return "PushDown"
	case ActionPushLeft:
		return "PushLeft"
	case ActionPushRight:
		return "PushRight"
	case ActionSelect:
		return "Select"
	case ActionUndo:
		return "Undo"
	case ActionRedo:
		return "Redo"
	case ActionReset:
		return "Reset"
	case ActionType:
		return "Type"
	case ActionErase:
		return "Erase"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// CursorDir returns the direction of a cursor movement action.
func (a Action) CursorDir() (Dir, bool) {
	switch a {
	case ActionUp:
		return North, true
	case ActionDown:
		return South, true
	case ActionLeft:
		return West, true
	case ActionRight:
		return East, true
	}
	return North, false
}

// PushDir returns the direction of a push action (slide, rotate, draw).
func (a Action) PushDir() (Dir, bool) {
	switch a {
	case ActionPushUp:
		return North, true
	case ActionPushDown:
		return South, true
	case ActionPushLeft:
		return West, true
	case ActionPushRight:
		return East, true
	}
	return North, false
}

// Input is one decoded user input. Puzzles are turn based, so every key
// press becomes exactly one Input.
type Input struct {
	Action Action
	Rune   rune // Valid only for ActionType
}

// In is a convenience constructor for an Input without a rune.
func In(a Action) Input {
	return Input{Action: a}
}

// Typed returns the Input for a typed character.
func Typed(r rune) Input {
	return Input{Action: ActionType, Rune: r}
}

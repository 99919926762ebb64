package core

// RuntimeConfig contains configuration passed to puzzle adapters.
type RuntimeConfig struct {
	ScreenW  int  // Screen width in characters
	ScreenH  int  // Screen height in characters
	ShowHelp bool // Whether the key help line is drawn
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		ShowHelp: true,
	}
}

// GameState represents the current state of a puzzle session.
// Returned by Puzzle.State() to communicate status to the platform.
type GameState struct {
	Moves    int    // Moves applied this session (undo subtracts)
	Solved   bool   // Whether the puzzle is solved
	CanUndo  bool   // Whether an undo is available
	CanRedo  bool   // Whether a redo is available
	CanReset bool   // Whether the puzzle differs from its initial layout
	Status   string // Short status line (stage name, next shape, ...)
}

// StepResult is returned by Puzzle.Step() after each input.
type StepResult struct {
	State      GameState
	Changed    bool // Whether the input mutated the puzzle
	JustSolved bool // Whether this input solved the puzzle
}

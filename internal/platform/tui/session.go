// Package tui provides the Bubble Tea front end: the puzzle menu, the play
// screen, the solve history and the SSH server that serves them.
package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-syzygy/internal/save"
	"github.com/vovakirdan/tui-syzygy/internal/save/puzzles"
	"github.com/vovakirdan/tui-syzygy/internal/storage"
)

// Session is one player's open game: the decoded save and where to write
// it back. Store may be nil, in which case nothing is persisted.
type Session struct {
	Store  *storage.Store
	Slot   string
	Game   *puzzles.Game
	Logger *log.Logger
}

// Save writes the game back to its slot. Failures are logged; play goes on.
func (s *Session) Save() {
	if s.Store == nil {
		return
	}
	if err := s.Store.SaveState(s.Slot, s.Game); err != nil {
		s.Logger.Error("cannot save game", "slot", s.Slot, "error", err)
	}
}

// Enter moves the player to loc and saves. It reports false if loc is
// still locked.
func (s *Session) Enter(loc save.Location) bool {
	if !s.Game.Enter(loc) {
		return false
	}
	s.Save()
	return true
}

// Solved records a completed puzzle in the solve history.
func (s *Session) Solved(id string, moves int) {
	s.Logger.Info("puzzle solved", "slot", s.Slot, "puzzle", id, "moves", moves)
	if s.Store == nil {
		return
	}
	if _, err := s.Store.RecordSolve(s.Slot, id, moves); err != nil {
		s.Logger.Error("cannot record solve", "slot", s.Slot, "puzzle", id, "error", err)
	}
}

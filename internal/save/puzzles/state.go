// Package puzzles wraps each puzzle engine with its progress state,
// reset/solve/replay bookkeeping and save-file encoding, and aggregates
// every location into a Game.
package puzzles

import (
	"github.com/vovakirdan/tui-syzygy/internal/save"
)

// State is implemented by every location's progress record.
type State interface {
	Location() save.Location
	Access() save.Access
	SetAccess(a save.Access)
	// Visit records that the player entered the location.
	Visit()
	// IsSolved reports whether the location is solved and not being replayed.
	IsSolved() bool
	// CanReset reports whether the puzzle differs from its starting layout.
	CanReset() bool
	Reset()
	// Replay restarts a solved puzzle from scratch.
	Replay()
	// Solve jumps straight to the solved configuration.
	Solve()
	MarshalTable() save.Table
}

// progress carries the access value shared by every State.
type progress struct {
	access save.Access
}

func (p *progress) Access() save.Access     { return p.access }
func (p *progress) SetAccess(a save.Access) { p.access = a }
func (p *progress) Visit()                  { p.access = p.access.Visit() }
func (p *progress) IsSolved() bool          { return p.access == save.Solved }
func (p *progress) markSolved()             { p.access = save.Solved }
func (p *progress) beginReplay()            { p.access = save.BeginReplay }
func (p *progress) table() save.Table       { return save.Table{save.AccessKey: p.access.String()} }

// Simple is the progress record of a location without an engine here:
// cutscenes and puzzles played elsewhere.
type Simple struct {
	progress
	loc save.Location
}

// NewSimple returns an unvisited record for loc.
func NewSimple(loc save.Location) *Simple {
	return &Simple{loc: loc}
}

// SimpleFromTable decodes a record saved by MarshalTable.
func SimpleFromTable(loc save.Location, t save.Table) *Simple {
	s := NewSimple(loc)
	s.access = save.AccessFromTable(t)
	return s
}

func (s *Simple) Location() save.Location  { return s.loc }
func (s *Simple) CanReset() bool           { return false }
func (s *Simple) Reset()                   {}
func (s *Simple) Replay()                  { s.beginReplay() }
func (s *Simple) Solve()                   { s.markSolved() }
func (s *Simple) MarshalTable() save.Table { return s.table() }

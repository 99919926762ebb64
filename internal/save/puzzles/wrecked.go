package puzzles

import (
	"github.com/vovakirdan/tui-syzygy/internal/core"
	"github.com/vovakirdan/tui-syzygy/internal/save"
	"github.com/vovakirdan/tui-syzygy/internal/tiles"
)

const (
	WreckedCols = 9
	WreckedRows = 7
)

var wreckedInitial = []int{
	2, 1, 2, 1, 2, -1, 2, 0, 1,
	-1, -1, 1, 2, 0, -1, -1, 2, 0,
	0, 1, 2, 1, -1, 0, 1, 1, 2,
	2, 0, -1, -1, 2, -1, -1, -1, 1,
	2, 1, 0, 2, -1, 1, 2, 2, 0,
	0, -1, -1, -1, 1, 0, -1, 0, 1,
	1, 0, 2, 2, 0, 1, -1, 2, 2,
}

var wreckedSolved = []int{
	0, 0, 0, 1, 1, -1, 2, 2, 2,
	-1, -1, 0, 1, 1, -1, -1, 2, 2,
	2, 2, 2, 0, -1, 0, 1, 1, 1,
	2, 2, -1, -1, 0, -1, -1, -1, 1,
	2, 2, 2, 0, -1, 0, 1, 1, 1,
	1, -1, -1, -1, 2, 2, -1, 0, 0,
	1, 1, 1, 2, 2, 2, -1, 0, 0,
}

// WreckedAngle is the state of Wrecked Angle.
type WreckedAngle struct {
	progress
	grid *tiles.Grid
}

func NewWreckedAngle() *WreckedAngle {
	return &WreckedAngle{grid: tiles.NewGrid(WreckedCols, WreckedRows, wreckedInitial)}
}

// WreckedAngleFromTable decodes a state saved by MarshalTable. A saved grid
// that could not have been reached by shifting is replaced by the initial
// layout.
func WreckedAngleFromTable(t save.Table) *WreckedAngle {
	s := NewWreckedAngle()
	s.access = save.AccessFromTable(t)
	var cells []int
	for _, v := range save.ArrayAt(t, gridKey) {
		n, ok := save.ToInt(v)
		if ok && n >= tiles.Gap && n < 3 {
			cells = append(cells, n)
		}
	}
	if tiles.Compatible(cells, wreckedInitial) {
		s.grid = tiles.NewGrid(WreckedCols, WreckedRows, cells)
	}
	return s
}

func (s *WreckedAngle) Location() save.Location { return save.WreckedAngle }
func (s *WreckedAngle) Grid() *tiles.Grid       { return s.grid }

// TileAt returns the tile kind at (col, row); ok is false for gaps.
func (s *WreckedAngle) TileAt(col, row int) (int, bool) { return s.grid.TileAt(col, row) }

func (s *WreckedAngle) IsInitial() bool { return s.grid.Equal(wreckedInitial) }
func (s *WreckedAngle) CanReset() bool  { return !s.IsInitial() }

func (s *WreckedAngle) Reset() {
	s.grid = tiles.NewGrid(WreckedCols, WreckedRows, wreckedInitial)
}

// ShiftTiles shifts one rank and marks the puzzle solved when the grid
// matches the solved layout.
func (s *WreckedAngle) ShiftTiles(d core.Dir, rank int) bool {
	if !s.grid.ShiftTiles(d, rank) {
		return false
	}
	if s.grid.Equal(wreckedSolved) {
		s.markSolved()
	}
	return true
}

func (s *WreckedAngle) Replay() {
	s.beginReplay()
	s.Reset()
}

func (s *WreckedAngle) Solve() {
	s.markSolved()
	s.grid = tiles.NewGrid(WreckedCols, WreckedRows, wreckedSolved)
}

func (s *WreckedAngle) MarshalTable() save.Table {
	t := s.table()
	if !s.IsInitial() {
		t[gridKey] = save.Ints(s.grid.Cells())
	}
	return t
}

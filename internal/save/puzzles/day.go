package puzzles

import (
	"github.com/vovakirdan/tui-syzygy/internal/core"
	"github.com/vovakirdan/tui-syzygy/internal/plane"
	"github.com/vovakirdan/tui-syzygy/internal/save"
)

const pipesKey = "pipes"

// dayPipes is one way of connecting every red node to every blue node.
var dayPipes = [][]core.Point{
	{{Col: 0, Row: 1}, {Col: 1, Row: 1}, {Col: 2, Row: 1}, {Col: 3, Row: 1}, {Col: 4, Row: 1}, {Col: 5, Row: 1}, {Col: 6, Row: 1}, {Col: 7, Row: 1}},
	{{Col: 0, Row: 3}, {Col: 1, Row: 3}, {Col: 2, Row: 3}, {Col: 3, Row: 3}, {Col: 4, Row: 3}, {Col: 5, Row: 3}, {Col: 6, Row: 3}, {Col: 7, Row: 3}},
	{{Col: 0, Row: 1}, {Col: 0, Row: 0}, {Col: 1, Row: 0}, {Col: 2, Row: 0}, {Col: 3, Row: 0}, {Col: 4, Row: 0}, {Col: 4, Row: 1}, {Col: 4, Row: 2}, {Col: 5, Row: 2}, {Col: 6, Row: 2}, {Col: 7, Row: 2}, {Col: 7, Row: 3}},
	{{Col: 0, Row: 3}, {Col: 0, Row: 4}, {Col: 1, Row: 4}, {Col: 2, Row: 4}, {Col: 3, Row: 4}, {Col: 4, Row: 4}, {Col: 5, Row: 4}, {Col: 5, Row: 3}, {Col: 5, Row: 2}, {Col: 5, Row: 1}, {Col: 5, Row: 0}, {Col: 6, Row: 0}, {Col: 7, Row: 0}, {Col: 7, Row: 1}},
}

// DayInitialGrid returns the authored layout of Plane as Day.
func DayInitialGrid() *plane.Grid {
	g := plane.NewGrid(core.NewRect(0, 0, 8, 5))
	g.PlaceObject(0, 1, plane.RedNode)
	g.PlaceObject(0, 3, plane.RedNode)
	g.PlaceObject(7, 1, plane.BlueNode)
	g.PlaceObject(7, 3, plane.BlueNode)
	g.PlaceObject(4, 1, plane.Cross)
	g.PlaceObject(5, 1, plane.Cross)
	g.PlaceObject(5, 2, plane.Cross)
	g.PlaceObject(5, 3, plane.Cross)
	g.PlaceObject(2, 2, plane.Wall)
	g.PlaceObject(6, 4, plane.Wall)
	return g
}

// layPipes toggles every edge of each polyline in turn.
func layPipes(g *plane.Grid, pipes [][]core.Point) {
	for _, pipe := range pipes {
		for i := 1; i < len(pipe); i++ {
			g.TogglePipe(pipe[i-1], pipe[i])
		}
	}
}

// PlaneAsDay is the state of Plane as Day.
type PlaneAsDay struct {
	progress
	grid *plane.Grid
}

func NewPlaneAsDay() *PlaneAsDay {
	return &PlaneAsDay{grid: DayInitialGrid()}
}

// PlaneAsDayFromTable decodes a state saved by MarshalTable.
func PlaneAsDayFromTable(t save.Table) *PlaneAsDay {
	s := NewPlaneAsDay()
	s.access = save.AccessFromTable(t)
	if s.access == save.Solved {
		layPipes(s.grid, dayPipes)
		return s
	}
	s.grid.SetPipesFromArray(save.ArrayAt(t, pipesKey))
	return s
}

func (s *PlaneAsDay) Location() save.Location { return save.PlaneAsDay }
func (s *PlaneAsDay) Grid() *plane.Grid       { return s.grid }
func (s *PlaneAsDay) CanReset() bool          { return len(s.grid.Pipes()) > 0 }
func (s *PlaneAsDay) Reset()                  { s.grid.RemoveAllPipes() }

// TogglePipe toggles the edge between a and b and marks the puzzle solved
// once every red node has its own pipe to every blue node.
func (s *PlaneAsDay) TogglePipe(a, b core.Point) bool {
	if !s.grid.TogglePipe(a, b) {
		return false
	}
	if s.grid.AllNodesAreConnected() {
		s.markSolved()
	}
	return true
}

func (s *PlaneAsDay) Replay() {
	s.beginReplay()
	s.Reset()
}

func (s *PlaneAsDay) Solve() {
	s.markSolved()
	s.grid.RemoveAllPipes()
	layPipes(s.grid, dayPipes)
}

func (s *PlaneAsDay) MarshalTable() save.Table {
	t := s.table()
	if !s.IsSolved() && s.CanReset() {
		t[pipesKey] = s.grid.PipesArray()
	}
	return t
}

package puzzles

import (
	"github.com/vovakirdan/tui-syzygy/internal/core"
	"github.com/vovakirdan/tui-syzygy/internal/ice"
	"github.com/vovakirdan/tui-syzygy/internal/save"
)

const gridKey = "grid"

// VirtueInitialGrid returns the authored layout of Virtue or Ice.
func VirtueInitialGrid() *ice.ObjectGrid {
	g := ice.NewObjectGrid(7, 5)
	g.AddObject(2, 0, ice.WallObj())
	g.AddObject(5, 0, ice.ReflectorObj(false))
	g.AddObject(0, 2, ice.RotatorObj())
	g.AddObject(3, 3, ice.WallObj())
	g.AddObject(6, 3, ice.PushPopObj(core.South))
	g.AddObject(0, 4, ice.GoalObj(ice.Sym('V')))
	g.AddObject(3, 2, ice.GoalObj(ice.Sym('I')))
	g.AddObject(4, 3, ice.GoalObj(ice.Sym('E')))

	g.AddIceBlock(0, 0, ice.Sym('V').RotatedCW().RotatedCW().RotatedCW())
	g.AddIceBlock(6, 0, ice.Sym('I').FlippedHorz())
	g.AddIceBlock(6, 4, ice.Sym('E'))
	return g
}

// VirtueOrIce is the state of Virtue or Ice.
type VirtueOrIce struct {
	progress
	grid *ice.ObjectGrid
}

func NewVirtueOrIce() *VirtueOrIce {
	return &VirtueOrIce{grid: VirtueInitialGrid()}
}

// VirtueOrIceFromTable decodes a state saved by MarshalTable.
func VirtueOrIceFromTable(t save.Table) *VirtueOrIce {
	s := &VirtueOrIce{}
	s.access = save.AccessFromTable(t)
	if s.access == save.Solved {
		s.grid = VirtueInitialGrid().Solved()
		return s
	}
	s.grid = ice.GridFromTable(save.TableAt(t, gridKey), VirtueInitialGrid())
	return s
}

func (s *VirtueOrIce) Location() save.Location { return save.VirtueOrIce }
func (s *VirtueOrIce) Grid() *ice.ObjectGrid   { return s.grid }
func (s *VirtueOrIce) CanReset() bool          { return s.grid.IsModified() }
func (s *VirtueOrIce) Reset()                  { s.grid = VirtueInitialGrid() }

// SlideIceBlock slides the block at p and marks the puzzle solved once
// every block rests on its goal.
func (s *VirtueOrIce) SlideIceBlock(p core.Point, d core.Dir) *ice.BlockSlide {
	slide := s.grid.SlideIceBlock(p, d)
	if slide != nil && s.grid.AllBlocksOnGoals() {
		s.markSolved()
	}
	return slide
}

func (s *VirtueOrIce) UndoSlide(slide *ice.BlockSlide) { s.grid.UndoSlide(slide) }

func (s *VirtueOrIce) RedoSlide(slide *ice.BlockSlide) {
	s.grid.RedoSlide(slide)
	if s.grid.AllBlocksOnGoals() {
		s.markSolved()
	}
}

func (s *VirtueOrIce) Replay() {
	s.beginReplay()
	s.Reset()
}

func (s *VirtueOrIce) Solve() {
	s.markSolved()
	s.grid = VirtueInitialGrid().Solved()
}

func (s *VirtueOrIce) MarshalTable() save.Table {
	t := s.table()
	if !s.IsSolved() && s.grid.IsModified() {
		t[gridKey] = s.grid.MarshalTable()
	}
	return t
}

package puzzles

import (
	"github.com/vovakirdan/tui-syzygy/internal/column"
	"github.com/vovakirdan/tui-syzygy/internal/core"
	"github.com/vovakirdan/tui-syzygy/internal/ice"
	"github.com/vovakirdan/tui-syzygy/internal/lights"
	"github.com/vovakirdan/tui-syzygy/internal/plane"
	"github.com/vovakirdan/tui-syzygy/internal/save"
)

const (
	stageKey        = "stage"
	yttrisKey       = "yttris"
	argonyKey       = "argony"
	elinsaKey       = "elinsa"
	relyngLightsKey = "relyng_lights"
	relyngNextKey   = "relyng_next"

	RelyngCols = 5
	RelyngRows = 4
)

// Stage is one part of System Syzygy. Stages are played in order.
type Stage int

const (
	Yttris Stage = iota
	Argony
	Elinsa
	Relyng
)

var stageNames = [...]string{
	Yttris: "yttris",
	Argony: "argony",
	Elinsa: "elinsa",
	Relyng: "relyng",
}

func (s Stage) String() string {
	if s < Yttris || s > Relyng {
		return stageNames[Yttris]
	}
	return stageNames[s]
}

// ParseStage reads a persisted stage name. Unknown names yield Yttris.
func ParseStage(name string) Stage {
	for i, n := range stageNames {
		if n == name {
			return Stage(i)
		}
	}
	return Yttris
}

// YttrisColumns is the linkage table of the first stage.
var YttrisColumns = []column.Spec{
	{Word: "UNDO", Initial: -1, Solved: 3, Links: links(0, 1, 4, 2, 3, 3)},
	{Word: "OPEN", Initial: -1, Solved: 2, Links: links(1, 1, 3, -2, 4, 3)},
	{Word: "FILE", Initial: -1, Solved: 1, Links: links(2, 1, 0, 2, 5, 3)},
	{Word: "BOLT", Initial: -1, Solved: 0, Links: links(3, 1, 5, -2, 1, -3)},
	{Word: "PICK", Initial: -1, Solved: 1, Links: links(4, 1, 0, -3)},
	{Word: "KEYS", Initial: -1, Solved: 3, Links: links(5, 1, 2, -2, 4, 3)},
}

// ArgonyInitialGrid returns the ice layout of the second stage.
func ArgonyInitialGrid() *ice.ObjectGrid {
	g := ice.NewObjectGrid(11, 5)
	g.AddObject(5, 0, ice.WallObj())
	g.AddObject(1, 1, ice.WallObj())
	g.AddObject(5, 1, ice.WallObj())
	g.AddObject(1, 2, ice.RotatorObj())
	g.AddObject(5, 2, ice.ReflectorObj(false))
	g.AddObject(10, 2, ice.WallObj())
	g.AddObject(1, 3, ice.WallObj())
	g.AddObject(5, 3, ice.WallObj())
	g.AddObject(10, 3, ice.PushPopObj(core.South))
	g.AddObject(2, 4, ice.GoalObj(ice.Sym('Q')))
	g.AddObject(4, 4, ice.GoalObj(ice.Sym('U')))
	g.AddObject(5, 4, ice.WallObj())
	g.AddObject(6, 4, ice.GoalObj(ice.Sym('A')))
	g.AddObject(8, 4, ice.GoalObj(ice.Sym('Q').FlippedVert()))

	g.AddIceBlock(6, 0, ice.Sym('Q').RotatedCW().RotatedCW())
	g.AddIceBlock(7, 0, ice.Sym('A').RotatedCW().RotatedCW())
	g.AddIceBlock(8, 0, ice.Sym('U').FlippedVert())
	g.AddIceBlock(9, 0, ice.Sym('Q').FlippedVert())
	return g
}

// ElinsaInitialGrid returns the pipe layout of the third stage.
func ElinsaInitialGrid() *plane.Grid {
	g := plane.NewGrid(core.NewRect(0, 0, 12, 6))
	g.PlaceObject(0, 0, plane.Wall)
	g.PlaceObject(9, 1, plane.BlueNode)
	g.PlaceObject(10, 1, plane.Wall)
	g.PlaceObject(2, 2, plane.PurpleNode)
	g.PlaceObject(9, 2, plane.Cross)
	g.PlaceObject(5, 3, plane.RedNode)
	g.PlaceObject(9, 3, plane.Cross)
	g.PlaceObject(11, 3, plane.BlueNode)
	g.PlaceObject(3, 4, plane.Wall)
	g.PlaceObject(1, 5, plane.RedNode)
	return g
}

// elinsaPipes joins both red nodes to both blue nodes. The pipe from (1,5)
// to (9,1) runs vertically through both crosses.
var elinsaPipes = [][]core.Point{
	{{Col: 5, Row: 3}, {Col: 5, Row: 2}, {Col: 5, Row: 1}, {Col: 6, Row: 1}, {Col: 7, Row: 1}, {Col: 8, Row: 1}, {Col: 9, Row: 1}},
	{{Col: 5, Row: 3}, {Col: 6, Row: 3}, {Col: 7, Row: 3}, {Col: 8, Row: 3}, {Col: 9, Row: 3}, {Col: 10, Row: 3}, {Col: 11, Row: 3}},
	{{Col: 1, Row: 5}, {Col: 2, Row: 5}, {Col: 3, Row: 5}, {Col: 4, Row: 5}, {Col: 5, Row: 5}, {Col: 6, Row: 5}, {Col: 7, Row: 5}, {Col: 8, Row: 5}, {Col: 9, Row: 5}, {Col: 9, Row: 4}, {Col: 9, Row: 3}, {Col: 9, Row: 2}, {Col: 9, Row: 1}},
	{{Col: 1, Row: 5}, {Col: 1, Row: 4}, {Col: 1, Row: 3}, {Col: 1, Row: 2}, {Col: 1, Row: 1}, {Col: 1, Row: 0}, {Col: 2, Row: 0}, {Col: 3, Row: 0}, {Col: 4, Row: 0}, {Col: 5, Row: 0}, {Col: 6, Row: 0}, {Col: 7, Row: 0}, {Col: 8, Row: 0}, {Col: 9, Row: 0}, {Col: 10, Row: 0}, {Col: 11, Row: 0}, {Col: 11, Row: 1}, {Col: 11, Row: 2}, {Col: 11, Row: 3}},
}

// SystemSyzygy is the state of the final, multi-stage puzzle.
type SystemSyzygy struct {
	progress
	stage  Stage
	yttris *column.Columns
	argony *ice.ObjectGrid
	elinsa *plane.Grid
	relyng *lights.Board
}

func NewSystemSyzygy() *SystemSyzygy {
	return &SystemSyzygy{
		stage:  Yttris,
		yttris: column.New(YttrisColumns),
		argony: ArgonyInitialGrid(),
		elinsa: ElinsaInitialGrid(),
		relyng: lights.NewBoard(RelyngCols, RelyngRows),
	}
}

// SystemSyzygyFromTable decodes a state saved by MarshalTable. Each stage
// falls back to its initial layout independently.
func SystemSyzygyFromTable(t save.Table) *SystemSyzygy {
	s := NewSystemSyzygy()
	s.access = save.AccessFromTable(t)
	name, _ := save.StringAt(t, stageKey)
	s.stage = ParseStage(name)
	s.yttris.SetFromArray(save.ArrayAt(t, yttrisKey))
	if _, ok := t[argonyKey]; ok {
		s.argony = ice.GridFromTable(save.TableAt(t, argonyKey), ArgonyInitialGrid())
	}
	s.elinsa.SetPipesFromArray(save.ArrayAt(t, elinsaKey))

	raw, _ := save.StringAt(t, relyngNextKey)
	next, ok := lights.ParseShape(raw)
	if !ok {
		next = lights.Plus
	}
	var lit []int
	for _, v := range save.ArrayAt(t, relyngLightsKey) {
		if n, ok := save.ToInt(v); ok {
			lit = append(lit, n)
		}
	}
	s.relyng.Restore(lit, next)
	if s.access == save.Solved {
		s.Solve()
	}
	return s
}

func (s *SystemSyzygy) Location() save.Location { return save.SystemSyzygy }
func (s *SystemSyzygy) Stage() Stage            { return s.stage }

func (s *SystemSyzygy) Yttris() *column.Columns { return s.yttris }
func (s *SystemSyzygy) Argony() *ice.ObjectGrid { return s.argony }
func (s *SystemSyzygy) Elinsa() *plane.Grid     { return s.elinsa }
func (s *SystemSyzygy) Relyng() *lights.Board   { return s.relyng }

// StageDone reports whether the current stage's engine is solved.
func (s *SystemSyzygy) StageDone() bool {
	switch s.stage {
	case Yttris:
		return s.yttris.IsSolved()
	case Argony:
		return s.argony.AllBlocksOnGoals()
	case Elinsa:
		return s.elinsa.AllNodesAreConnected()
	case Relyng:
		return s.relyng.IsDone()
	}
	return false
}

// AdvanceStageIfDone moves to the next stage once the current one is
// solved. Finishing the last stage solves the puzzle. It reports whether
// anything changed.
func (s *SystemSyzygy) AdvanceStageIfDone() bool {
	if s.IsSolved() || !s.StageDone() {
		return false
	}
	if s.stage == Relyng {
		s.markSolved()
	} else {
		s.stage++
	}
	return true
}

func (s *SystemSyzygy) CanReset() bool {
	switch s.stage {
	case Yttris:
		return s.yttris.CanReset()
	case Argony:
		return s.argony.IsModified()
	case Elinsa:
		return len(s.elinsa.Pipes()) > 0
	case Relyng:
		return s.relyng.CanReset()
	}
	return false
}

// Reset restarts the current stage only.
func (s *SystemSyzygy) Reset() {
	switch s.stage {
	case Yttris:
		s.yttris.Reset()
	case Argony:
		s.argony = ArgonyInitialGrid()
	case Elinsa:
		s.elinsa.RemoveAllPipes()
	case Relyng:
		s.relyng.Reset()
	}
}

// Replay restarts every stage from the beginning.
func (s *SystemSyzygy) Replay() {
	s.stage = Yttris
	s.yttris.Reset()
	s.argony = ArgonyInitialGrid()
	s.elinsa.RemoveAllPipes()
	s.relyng.Reset()
	s.beginReplay()
}

func (s *SystemSyzygy) Solve() {
	s.stage = Relyng
	s.yttris.Solve()
	s.argony = ArgonyInitialGrid().Solved()
	s.elinsa.RemoveAllPipes()
	layPipes(s.elinsa, elinsaPipes)
	s.relyng.Solve()
	s.markSolved()
}

// MarshalTable saves the current stage and, while unsolved, that stage's
// progress.
func (s *SystemSyzygy) MarshalTable() save.Table {
	t := s.table()
	if s.IsSolved() {
		return t
	}
	t[stageKey] = s.stage.String()
	switch s.stage {
	case Yttris:
		t[yttrisKey] = s.yttris.MarshalArray()
	case Argony:
		if s.argony.IsModified() {
			t[argonyKey] = s.argony.MarshalTable()
		}
	case Elinsa:
		t[elinsaKey] = s.elinsa.PipesArray()
	case Relyng:
		t[relyngLightsKey] = save.Ints(s.relyng.Lit())
		t[relyngNextKey] = s.relyng.NextShape().String()
	}
	return t
}

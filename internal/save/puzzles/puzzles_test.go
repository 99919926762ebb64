package puzzles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-syzygy/internal/core"
	"github.com/vovakirdan/tui-syzygy/internal/lights"
	"github.com/vovakirdan/tui-syzygy/internal/save"
)

// reload pushes a state through a full YAML encode/decode cycle.
func reload(t *testing.T, g *Game) *Game {
	t.Helper()
	data, err := g.Encode()
	require.NoError(t, err)
	out, err := Decode(data)
	require.NoError(t, err)
	return out
}

func TestIcyEmSolution(t *testing.T) {
	s := NewIcyEm()
	assert.False(t, s.CanReset())
	moves := [][2]int{
		{0, 2}, {1, 8}, {2, 7}, {3, 11}, {4, 5}, {5, 6}, {6, 6},
		{7, 2}, {8, 7}, {9, 6}, {10, 2}, {11, 4}, {12, 5}, {13, 6},
	}
	for _, m := range moves {
		require.True(t, s.RotateColumn(m[0], m[1]))
	}
	assert.True(t, s.Columns().IsSolved())
	assert.True(t, s.IsSolved())
	assert.NotContains(t, s.MarshalTable(), columnsKey)

	loaded := IcyEmFromTable(s.MarshalTable())
	assert.True(t, loaded.Columns().IsSolved(), "a solved save shows the solved columns")

	s.Replay()
	assert.Equal(t, save.BeginReplay, s.Access())
	assert.False(t, s.CanReset())
}

func TestIcyEmSavesPositions(t *testing.T) {
	s := NewIcyEm()
	s.Visit()
	s.RotateColumn(3, 1)
	s.RotateColumn(9, -1)

	loaded := IcyEmFromTable(s.MarshalTable())
	assert.Equal(t, save.Visited, loaded.Access())
	assert.Equal(t, s.Columns().Positions(), loaded.Columns().Positions())

	loaded.Reset()
	assert.False(t, loaded.CanReset())
	assert.NotContains(t, loaded.MarshalTable(), columnsKey)
}

func TestVirtueOrIcePlaythrough(t *testing.T) {
	s := NewVirtueOrIce()
	steps := []struct {
		from core.Point
		dir  core.Dir
		to   core.Point
	}{
		{core.Pt(0, 0), core.South, core.Pt(0, 4)},
		{core.Pt(6, 0), core.West, core.Pt(3, 0)},
		{core.Pt(3, 0), core.South, core.Pt(3, 2)},
		{core.Pt(6, 4), core.North, core.Pt(6, 3)},
		{core.Pt(6, 3), core.West, core.Pt(4, 3)},
	}
	for i, st := range steps {
		assert.False(t, s.IsSolved(), "solved before step %d", i)
		slide := s.SlideIceBlock(st.from, st.dir)
		require.NotNil(t, slide, "step %d", i)
		assert.Equal(t, st.to, slide.To, "step %d", i)
	}
	assert.True(t, s.IsSolved())

	gate, ok := s.Grid().ObjectAt(core.Pt(6, 2))
	require.True(t, ok)
	assert.Equal(t, core.North, gate.Dir)
}

func TestVirtueOrIceSaveAndUndo(t *testing.T) {
	s := NewVirtueOrIce()
	assert.False(t, s.CanReset())
	slide := s.SlideIceBlock(core.Pt(6, 4), core.North)
	require.NotNil(t, slide)
	require.NotEmpty(t, slide.Pushed)
	assert.True(t, s.CanReset())

	loaded := VirtueOrIceFromTable(s.MarshalTable())
	assert.True(t, loaded.Grid().Equal(s.Grid()))

	s.UndoSlide(slide)
	assert.True(t, s.Grid().Equal(VirtueInitialGrid()))
	s.RedoSlide(slide)
	assert.True(t, s.Grid().Equal(loaded.Grid()))

	s.Reset()
	assert.False(t, s.CanReset())
	assert.NotContains(t, s.MarshalTable(), gridKey)
}

func TestPlaneAsDaySolve(t *testing.T) {
	s := NewPlaneAsDay()
	for _, pipe := range dayPipes {
		for i := 1; i < len(pipe); i++ {
			require.True(t, s.TogglePipe(pipe[i-1], pipe[i]), "edge %v-%v", pipe[i-1], pipe[i])
		}
	}
	assert.True(t, s.IsSolved())
	assert.Len(t, s.Grid().Pipes(), 4)

	loaded := PlaneAsDayFromTable(s.MarshalTable())
	assert.True(t, loaded.Grid().AllNodesAreConnected())
}

func TestPlaneAsDayProgress(t *testing.T) {
	s := NewPlaneAsDay()
	assert.False(t, s.TogglePipe(core.Pt(2, 1), core.Pt(2, 2)), "wall")
	for _, pipe := range dayPipes[:2] {
		for i := 1; i < len(pipe); i++ {
			s.TogglePipe(pipe[i-1], pipe[i])
		}
	}
	assert.False(t, s.IsSolved())
	assert.True(t, s.CanReset())

	loaded := PlaneAsDayFromTable(s.MarshalTable())
	assert.Equal(t, s.Grid().Pipes(), loaded.Grid().Pipes())

	s.Reset()
	assert.False(t, s.CanReset())
	assert.NotContains(t, s.MarshalTable(), pipesKey)

	s.Solve()
	assert.True(t, s.Grid().AllNodesAreConnected())
}

func TestWreckedShifts(t *testing.T) {
	tests := []struct {
		name string
		dir  core.Dir
		rank int
		want map[core.Point]int // -1 marks a gap
	}{
		{"east row 0", core.East, 0, map[core.Point]int{{Col: 0, Row: 0}: 1, {Col: 5, Row: 0}: -1, {Col: 6, Row: 0}: 2}},
		{"west row 1", core.West, 1, map[core.Point]int{{Col: 1, Row: 1}: -1, {Col: 4, Row: 1}: 2, {Col: 8, Row: 1}: 1}},
		{"south col 0", core.South, 0, map[core.Point]int{{Col: 0, Row: 0}: 1, {Col: 0, Row: 1}: -1, {Col: 0, Row: 2}: 2}},
		{"north col 8", core.North, 8, map[core.Point]int{{Col: 8, Row: 1}: 2, {Col: 8, Row: 4}: 1, {Col: 8, Row: 6}: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewWreckedAngle()
			require.True(t, s.ShiftTiles(tt.dir, tt.rank))
			for p, want := range tt.want {
				got, ok := s.TileAt(p.Col, p.Row)
				if want < 0 {
					assert.False(t, ok, "%v should be a gap", p)
					continue
				}
				assert.True(t, ok, "%v", p)
				assert.Equal(t, want, got, "%v", p)
			}
		})
	}
}

func TestWreckedShiftBack(t *testing.T) {
	s := NewWreckedAngle()
	before := s.Grid().Cells()
	s.ShiftTiles(core.East, 0)
	assert.True(t, s.CanReset())
	s.ShiftTiles(core.West, 0)
	assert.Equal(t, before, s.Grid().Cells())
	assert.False(t, s.CanReset())
	assert.False(t, s.ShiftTiles(core.East, 7), "off the grid")
}

func TestWreckedLoad(t *testing.T) {
	s := NewWreckedAngle()
	s.ShiftTiles(core.South, 3)
	s.ShiftTiles(core.East, 2)

	loaded := WreckedAngleFromTable(s.MarshalTable())
	assert.Equal(t, s.Grid().Cells(), loaded.Grid().Cells())

	bad := s.MarshalTable()
	cells := save.ToArray(bad[gridKey])
	cells[0], cells[5] = cells[5], cells[0] // moves a gap
	assert.True(t, WreckedAngleFromTable(bad).IsInitial())

	assert.True(t, WreckedAngleFromTable(save.Table{gridKey: []any{1, 2, 3}}).IsInitial())

	s.Solve()
	assert.True(t, s.IsSolved())
	assert.True(t, s.Grid().Equal(wreckedSolved))
	s.Replay()
	assert.Equal(t, save.BeginReplay, s.Access())
	assert.True(t, s.IsInitial())
}

func TestLevelUpWords(t *testing.T) {
	s := NewLevelUp()
	_, ok := s.SetChar(0, 0, '~')
	assert.False(t, ok, "not a valid symbol")

	for i, w := range LevelUpWords {
		for j, ch := range []rune(w) {
			_, ok := s.SetChar(i, j, ch)
			require.True(t, ok, "word %d char %d", i, j)
		}
	}
	assert.True(t, s.IsSolved())
	assert.NotContains(t, s.MarshalTable(), wordsKey)
	assert.True(t, LevelUpFromTable(s.MarshalTable()).Crossword().WordsAre(LevelUpWords))
}

func TestLevelUpProgress(t *testing.T) {
	s := NewLevelUp()
	prev, ok := s.SetChar(2, 0, '*')
	require.True(t, ok)
	assert.Equal(t, ' ', prev)
	s.SetChar(6, 1, 'e')

	loaded := LevelUpFromTable(s.MarshalTable())
	assert.Equal(t, "*   ", loaded.Crossword().Word(2))
	assert.Equal(t, " E ", loaded.Crossword().Word(6))

	loaded.Replay()
	assert.False(t, loaded.CanReset())
}

func TestSyzygyStages(t *testing.T) {
	s := NewSystemSyzygy()
	assert.Equal(t, Yttris, s.Stage())
	assert.False(t, s.AdvanceStageIfDone())

	for _, m := range [][2]int{{0, 3}, {1, 9}, {2, 8}, {3, 5}, {4, 10}, {5, 7}} {
		s.Yttris().RotateColumn(m[0], m[1])
	}
	assert.True(t, s.StageDone())
	assert.True(t, s.AdvanceStageIfDone())
	assert.Equal(t, Argony, s.Stage())
	assert.False(t, s.CanReset())

	slide := s.Argony().SlideIceBlock(core.Pt(6, 0), core.South)
	require.NotNil(t, slide)
	assert.True(t, s.CanReset())

	loaded := SystemSyzygyFromTable(s.MarshalTable())
	assert.Equal(t, Argony, loaded.Stage())
	assert.True(t, loaded.Argony().Equal(s.Argony()))

	s.Reset()
	assert.False(t, s.CanReset())
	assert.True(t, s.Yttris().IsSolved(), "reset only touches the current stage")
}

func TestSyzygyRelyng(t *testing.T) {
	s := NewSystemSyzygy()
	s.stage = Relyng
	s.Relyng().Toggle(core.Pt(2, 1))
	s.Relyng().Toggle(core.Pt(0, 0))
	assert.Equal(t, lights.X, s.Relyng().NextShape())

	tbl := s.MarshalTable()
	assert.Equal(t, "relyng", tbl[stageKey])
	loaded := SystemSyzygyFromTable(tbl)
	assert.Equal(t, s.Relyng().Lit(), loaded.Relyng().Lit())
	assert.Equal(t, lights.X, loaded.Relyng().NextShape())

	s.Relyng().Solve()
	assert.True(t, s.AdvanceStageIfDone())
	assert.True(t, s.IsSolved())
	assert.NotContains(t, s.MarshalTable(), stageKey)

	s.Replay()
	assert.Equal(t, Yttris, s.Stage())
	assert.Equal(t, save.BeginReplay, s.Access())
	assert.False(t, s.Relyng().CanReset())
}

func TestSyzygySolvedSaveReloadsSolved(t *testing.T) {
	s := NewSystemSyzygy()
	s.Solve()
	assert.True(t, s.Yttris().IsSolved())
	assert.True(t, s.Argony().AllBlocksOnGoals())
	assert.True(t, s.Elinsa().AllNodesAreConnected())
	assert.Len(t, s.Elinsa().Pipes(), len(elinsaPipes))
	assert.True(t, s.Relyng().IsDone())

	loaded := SystemSyzygyFromTable(s.MarshalTable())
	assert.True(t, loaded.IsSolved())
	assert.Equal(t, Relyng, loaded.Stage())
	assert.True(t, loaded.Yttris().IsSolved())
	assert.True(t, loaded.Argony().AllBlocksOnGoals())
	assert.True(t, loaded.Elinsa().AllNodesAreConnected())
	assert.True(t, loaded.Relyng().IsDone())

	loaded.Replay()
	assert.Empty(t, loaded.Elinsa().Pipes())
}

func TestSyzygyUnknownStage(t *testing.T) {
	s := SystemSyzygyFromTable(save.Table{stageKey: "mezure", relyngNextKey: "?"})
	assert.Equal(t, Yttris, s.Stage())
	assert.Equal(t, lights.Plus, s.Relyng().NextShape())
	for st := Yttris; st <= Relyng; st++ {
		assert.Equal(t, st, ParseStage(st.String()))
	}
}

func TestNewGame(t *testing.T) {
	g := NewGame()
	assert.Equal(t, save.Prolog, g.Location)
	assert.Equal(t, save.Solved, g.Access(save.Map))
	assert.Nil(t, g.Puzzle(save.Map))
	for _, loc := range save.AllLocations()[1:] {
		require.NotNil(t, g.Puzzle(loc), "%v", loc)
		assert.Equal(t, loc, g.Puzzle(loc).Location())
	}
	assert.True(t, g.IsUnlocked(save.Prolog))
	assert.False(t, g.IsUnlocked(save.WreckedAngle))
	assert.False(t, g.Enter(save.WreckedAngle))

	g.Puzzle(save.Prolog).Solve()
	assert.True(t, g.Enter(save.WreckedAngle))
	assert.Equal(t, save.Visited, g.Access(save.WreckedAngle))
}

func TestGameRoundTrip(t *testing.T) {
	g := NewGame()
	g.Puzzle(save.Prolog).Solve()
	g.Enter(save.WreckedAngle)
	g.Wrecked.ShiftTiles(core.East, 4)
	g.IcyEm.RotateColumn(2, 1)
	g.LevelUp.Solve()
	g.Syzygy.Replay()
	g.Day.TogglePipe(core.Pt(0, 1), core.Pt(1, 1))

	loaded := reload(t, g)
	assert.Equal(t, save.WreckedAngle, loaded.Location)
	for _, loc := range save.AllLocations() {
		assert.Equal(t, g.Access(loc), loaded.Access(loc), "%v", loc)
	}
	assert.Equal(t, g.Wrecked.Grid().Cells(), loaded.Wrecked.Grid().Cells())
	assert.Equal(t, g.IcyEm.Columns().Positions(), loaded.IcyEm.Columns().Positions())
	assert.Equal(t, g.Day.Grid().Pipes(), loaded.Day.Grid().Pipes())
	assert.True(t, loaded.IsSolved(save.LevelUp))
	assert.True(t, loaded.IsSolved(save.SystemSyzygy), "replaying still counts as solved")
}

func TestDecodeTolerance(t *testing.T) {
	_, err := Decode([]byte("{not yaml"))
	assert.Error(t, err)

	g, err := Decode([]byte("location: nowhere\nwrecked_angle: 7\nlevel_up:\n  access: solved\n"))
	require.NoError(t, err)
	assert.Equal(t, save.Map, g.Location)
	assert.True(t, g.Wrecked.IsInitial())
	assert.True(t, g.IsSolved(save.LevelUp))

	g, err = Decode(nil)
	require.NoError(t, err)
	assert.Equal(t, save.Map, g.Location)
}

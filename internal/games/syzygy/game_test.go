package syzygy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-syzygy/internal/core"
	"github.com/vovakirdan/tui-syzygy/internal/save"
	"github.com/vovakirdan/tui-syzygy/internal/save/puzzles"
)

func newGame(state *puzzles.SystemSyzygy) *Game {
	g := New(state)
	g.Reset(core.DefaultConfig())
	return g
}

func TestYttrisAdvancesToArgony(t *testing.T) {
	g := newGame(puzzles.NewSystemSyzygy())
	moves := [][2]int{{0, 3}, {1, 9}, {2, 8}, {3, 5}, {4, 10}, {5, 7}}
	for _, m := range moves {
		if g.state.Stage() != puzzles.Yttris {
			break
		}
		g.cursor.Set(core.Pt(m[0], 0))
		for range m[1] {
			g.Step(core.In(core.ActionPushUp))
		}
	}
	assert.Equal(t, puzzles.Argony, g.state.Stage())
	assert.False(t, g.State().Solved)
	assert.False(t, g.State().CanUndo, "history is per stage")
	assert.Equal(t, core.Pt(0, 0), g.Cursor())
	assert.Contains(t, g.State().Status, "argony")
}

func TestYttrisUndo(t *testing.T) {
	g := newGame(puzzles.NewSystemSyzygy())
	before := g.state.Yttris().Positions()
	g.cursor.Set(core.Pt(2, 0))
	require.True(t, g.Step(core.In(core.ActionPushDown)).Changed)
	assert.NotEqual(t, before, g.state.Yttris().Positions())

	g.Step(core.In(core.ActionUndo))
	assert.Equal(t, before, g.state.Yttris().Positions())
}

func TestArgonySlide(t *testing.T) {
	g := newGame(puzzles.SystemSyzygyFromTable(save.Table{"stage": "argony"}))
	g.cursor.Set(core.Pt(6, 0))
	res := g.Step(core.In(core.ActionPushDown))
	require.True(t, res.Changed)
	assert.NotEqual(t, core.Pt(6, 0), g.Cursor())

	g.Step(core.In(core.ActionUndo))
	_, ok := g.state.Argony().BlockAt(core.Pt(6, 0))
	assert.True(t, ok, "undo puts the block back")
}

func TestElinsaPipe(t *testing.T) {
	g := newGame(puzzles.SystemSyzygyFromTable(save.Table{"stage": "elinsa"}))
	g.cursor.Set(core.Pt(5, 3))
	require.True(t, g.Step(core.In(core.ActionPushLeft)).Changed)
	assert.Len(t, g.state.Elinsa().Pipes(), 1)
	assert.Equal(t, core.Pt(4, 3), g.Cursor())

	g.Step(core.In(core.ActionReset))
	assert.Empty(t, g.state.Elinsa().Pipes())
}

func TestRelyngFinalPressSolves(t *testing.T) {
	// Everything is lit except the plus around (2,1).
	var lit []int
	for i := range puzzles.RelyngCols * puzzles.RelyngRows {
		switch i {
		case 2, 6, 7, 8, 12:
		default:
			lit = append(lit, i)
		}
	}
	state := puzzles.SystemSyzygyFromTable(save.Table{
		"access":        "visited",
		"stage":         "relyng",
		"relyng_lights": save.Ints(lit),
		"relyng_next":   "+",
	})
	g := newGame(state)
	g.cursor.Set(core.Pt(2, 1))

	assert.False(t, g.Step(core.In(core.ActionPushUp)).Changed, "relyng only takes presses")
	res := g.Step(core.In(core.ActionSelect))
	assert.True(t, res.JustSolved)
	assert.True(t, state.IsSolved())

	res = g.Step(core.In(core.ActionReset))
	assert.True(t, res.Changed)
	assert.Equal(t, puzzles.Yttris, state.Stage())
	assert.Equal(t, save.BeginReplay, state.Access())
}

func TestRelyngUndoRewindsShape(t *testing.T) {
	g := newGame(puzzles.SystemSyzygyFromTable(save.Table{"stage": "relyng"}))
	g.cursor.Set(core.Pt(1, 1))
	g.Step(core.In(core.ActionSelect))
	assert.Contains(t, g.State().Status, "next: N")
	g.Step(core.In(core.ActionUndo))
	assert.Contains(t, g.State().Status, "next: +")
	assert.False(t, g.state.Relyng().CanReset())
}

func TestRenderPerStage(t *testing.T) {
	for _, stage := range []string{"yttris", "argony", "elinsa", "relyng"} {
		t.Run(stage, func(t *testing.T) {
			g := newGame(puzzles.SystemSyzygyFromTable(save.Table{"stage": stage}))
			screen := core.NewScreen(80, 24)
			g.Render(screen)
			assert.Contains(t, screen.Row(0), "System Syzygy")
			assert.Contains(t, screen.Row(0), stage)
		})
	}
}

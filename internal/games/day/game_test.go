package day

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-syzygy/internal/core"
	"github.com/vovakirdan/tui-syzygy/internal/save"
	"github.com/vovakirdan/tui-syzygy/internal/save/puzzles"
)

func newGame() *Game {
	g := New(puzzles.NewPlaneAsDay())
	g.Reset(core.DefaultConfig())
	return g
}

// walk starts at from and pushes once per action, drawing a pipe.
func walk(g *Game, from core.Point, actions ...core.Action) (solved bool) {
	g.cursor.Set(from)
	for _, a := range actions {
		if g.Step(core.In(a)).JustSolved {
			solved = true
		}
	}
	return solved
}

func repeat(a core.Action, n int) []core.Action {
	out := make([]core.Action, n)
	for i := range out {
		out[i] = a
	}
	return out
}

func TestDrawPipeAndUndo(t *testing.T) {
	g := newGame()
	walk(g, core.Pt(0, 1), repeat(core.ActionPushRight, 3)...)
	assert.Equal(t, core.Pt(3, 1), g.Cursor())
	require.Len(t, g.state.Grid().Pipes(), 1)
	assert.Equal(t, 3, g.State().Moves)

	for range 3 {
		assert.True(t, g.Step(core.In(core.ActionUndo)).Changed)
	}
	assert.Empty(t, g.state.Grid().Pipes())
	assert.Equal(t, core.Pt(0, 1), g.Cursor())

	g.Step(core.In(core.ActionRedo))
	assert.Len(t, g.state.Grid().Pipes(), 1)
}

func TestPushIntoWallIsIgnored(t *testing.T) {
	g := newGame()
	g.cursor.Set(core.Pt(1, 2))
	res := g.Step(core.In(core.ActionPushRight))
	assert.False(t, res.Changed)
	assert.Equal(t, core.Pt(1, 2), g.Cursor())
}

func TestSolveByDrawing(t *testing.T) {
	g := newGame()
	R, _, U, D := core.ActionPushRight, core.ActionPushLeft, core.ActionPushUp, core.ActionPushDown

	solved := walk(g, core.Pt(0, 1), repeat(R, 7)...)
	solved = walk(g, core.Pt(0, 3), repeat(R, 7)...) || solved
	solved = walk(g, core.Pt(0, 1), append(append(append([]core.Action{U}, repeat(R, 4)...), D, D), append(repeat(R, 3), D)...)...) || solved
	solved = walk(g, core.Pt(0, 3), append(append(append([]core.Action{D}, repeat(R, 5)...), repeat(U, 4)...), R, R, D)...) || solved

	assert.True(t, solved)
	assert.True(t, g.State().Solved)
	assert.Equal(t, save.Solved, g.state.Access())

	res := g.Step(core.In(core.ActionReset))
	assert.True(t, res.Changed)
	assert.Empty(t, g.state.Grid().Pipes())
	assert.Equal(t, save.BeginReplay, g.state.Access())
}

func TestRender(t *testing.T) {
	g := newGame()
	walk(g, core.Pt(0, 1), core.ActionPushRight)
	screen := core.NewScreen(80, 24)
	g.Render(screen)
	assert.Contains(t, screen.Row(0), "Plane as Day")
	assert.Equal(t, 'R', screen.Get(2, 5))
	assert.Equal(t, '─', screen.Get(3, 5))
}

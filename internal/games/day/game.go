// Package day adapts the Plane as Day pipe-laying puzzle.
package day

import (
	"github.com/vovakirdan/tui-syzygy/internal/core"
	"github.com/vovakirdan/tui-syzygy/internal/games/draw"
	"github.com/vovakirdan/tui-syzygy/internal/plane"
	"github.com/vovakirdan/tui-syzygy/internal/registry"
	"github.com/vovakirdan/tui-syzygy/internal/save"
	"github.com/vovakirdan/tui-syzygy/internal/save/puzzles"
)

// Game plays Plane as Day. A push toggles the pipe segment between the
// cursor and its neighbour and moves the cursor across it, so a pipe is
// drawn by holding shift and walking.
type Game struct {
	state    *puzzles.PlaneAsDay
	cursor   draw.Cursor
	history  save.History[plane.Edge]
	showHelp bool
}

// New returns an adapter over state.
func New(state *puzzles.PlaneAsDay) *Game {
	r := state.Grid().Rect()
	return &Game{state: state, cursor: draw.NewCursor(r.W, r.H), showHelp: true}
}

func init() {
	registry.Register(save.PlaneAsDay, func(g *puzzles.Game) registry.Puzzle {
		return New(g.Day)
	})
}

func (g *Game) ID() string    { return save.PlaneAsDay.Key() }
func (g *Game) Title() string { return save.PlaneAsDay.Name() }

// Cursor returns the selected cell.
func (g *Game) Cursor() core.Point { return g.cursor.Pos }

func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cursor.Set(core.Pt(0, 0))
	g.history.Clear()
	g.showHelp = cfg.ShowHelp
}

func (g *Game) Step(in core.Input) core.StepResult {
	wasSolved := g.state.IsSolved()
	changed := false

	if d, ok := in.Action.CursorDir(); ok {
		g.cursor.Move(d)
	} else if d, ok := in.Action.PushDir(); ok && !wasSolved {
		e := plane.Edge{A: g.cursor.Pos, B: g.cursor.Pos.Step(d)}
		if g.state.TogglePipe(e.A, e.B) {
			g.history.Push(e)
			g.cursor.Set(e.B)
			changed = true
		}
	}

	switch in.Action {
	case core.ActionUndo:
		if wasSolved {
			break
		}
		// Toggling the same edge again restores the previous pipes.
		if e, ok := g.history.Undo(); ok {
			g.state.TogglePipe(e.A, e.B)
			g.cursor.Set(e.A)
			changed = true
		}
	case core.ActionRedo:
		if wasSolved {
			break
		}
		if e, ok := g.history.Redo(); ok {
			g.state.TogglePipe(e.A, e.B)
			g.cursor.Set(e.B)
			changed = true
		}
	case core.ActionReset:
		changed = g.reset(wasSolved)
	}

	return core.StepResult{
		State:      g.State(),
		Changed:    changed,
		JustSolved: !wasSolved && g.state.IsSolved(),
	}
}

func (g *Game) reset(solved bool) bool {
	switch {
	case solved:
		g.state.Replay()
	case g.state.CanReset():
		g.state.Reset()
	default:
		return false
	}
	g.history.Clear()
	return true
}

func (g *Game) Render(dst *core.Screen) {
	draw.HUD(dst, g.Title(), "connect every red node to every blue node")
	draw.Plane(dst, draw.BoardX, draw.BoardY, g.state.Grid(), g.cursor.Pos)
	if g.showHelp {
		draw.Help(dst, "arrows move  shift+arrows lay/lift pipe  u undo  r reset  q back")
	}
	draw.Footer(dst, g.State())
}

func (g *Game) State() core.GameState {
	solved := g.state.IsSolved()
	return core.GameState{
		Moves:    g.history.Len(),
		Solved:   solved,
		CanUndo:  !solved && g.history.CanUndo(),
		CanRedo:  !solved && g.history.CanRedo(),
		CanReset: solved || g.state.CanReset(),
	}
}

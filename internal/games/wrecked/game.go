// Package wrecked adapts the Wrecked Angle tile-shifting puzzle.
package wrecked

import (
	"fmt"

	"github.com/vovakirdan/tui-syzygy/internal/core"
	"github.com/vovakirdan/tui-syzygy/internal/games/draw"
	"github.com/vovakirdan/tui-syzygy/internal/registry"
	"github.com/vovakirdan/tui-syzygy/internal/save"
	"github.com/vovakirdan/tui-syzygy/internal/save/puzzles"
)

// shift is one rank rotation. East/West shift a row, North/South a column.
type shift struct {
	dir  core.Dir
	rank int
}

func (s shift) String() string { return fmt.Sprintf("%s %d", s.dir, s.rank) }

// Game plays Wrecked Angle.
type Game struct {
	state    *puzzles.WreckedAngle
	cursor   draw.Cursor
	history  save.History[shift]
	showHelp bool
}

// New returns an adapter over state.
func New(state *puzzles.WreckedAngle) *Game {
	return &Game{
		state:    state,
		cursor:   draw.NewCursor(puzzles.WreckedCols, puzzles.WreckedRows),
		showHelp: true,
	}
}

func init() {
	registry.Register(save.WreckedAngle, func(g *puzzles.Game) registry.Puzzle {
		return New(g.Wrecked)
	})
}

func (g *Game) ID() string    { return save.WreckedAngle.Key() }
func (g *Game) Title() string { return save.WreckedAngle.Name() }

// Cursor returns the selected cell.
func (g *Game) Cursor() core.Point { return g.cursor.Pos }

func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cursor.Set(core.Pt(0, 0))
	g.history.Clear()
	g.showHelp = cfg.ShowHelp
}

// shiftAt returns the shift a push in d performs from the cursor.
func (g *Game) shiftAt(d core.Dir) shift {
	if d.IsVertical() {
		return shift{d, g.cursor.Pos.Col}
	}
	return shift{d, g.cursor.Pos.Row}
}

func (g *Game) Step(in core.Input) core.StepResult {
	wasSolved := g.state.IsSolved()
	changed := false

	if d, ok := in.Action.CursorDir(); ok {
		g.cursor.Move(d)
	} else if d, ok := in.Action.PushDir(); ok && !wasSolved {
		s := g.shiftAt(d)
		if g.state.ShiftTiles(s.dir, s.rank) {
			g.history.Push(s)
			changed = true
		}
	}

	switch in.Action {
	case core.ActionUndo:
		if wasSolved {
			break
		}
		if s, ok := g.history.Undo(); ok {
			g.state.ShiftTiles(s.dir.Opposite(), s.rank)
			changed = true
		}
	case core.ActionRedo:
		if wasSolved {
			break
		}
		if s, ok := g.history.Redo(); ok {
			g.state.ShiftTiles(s.dir, s.rank)
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
	status := ""
	if last, ok := g.history.Last(); ok {
		status = "last: " + last.String()
	}
	draw.HUD(dst, g.Title(), status)
	draw.Tiles(dst, draw.BoardX, draw.BoardY, g.state.Grid(), g.cursor.Pos)
	if g.showHelp {
		draw.Help(dst, "arrows move  shift+arrows shift row/column  u undo  r reset  q back")
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

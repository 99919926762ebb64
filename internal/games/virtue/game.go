// Package virtue adapts the Virtue or Ice block-sliding puzzle.
package virtue

import (
	"github.com/vovakirdan/tui-syzygy/internal/core"
	"github.com/vovakirdan/tui-syzygy/internal/games/draw"
	"github.com/vovakirdan/tui-syzygy/internal/ice"
	"github.com/vovakirdan/tui-syzygy/internal/registry"
	"github.com/vovakirdan/tui-syzygy/internal/save"
	"github.com/vovakirdan/tui-syzygy/internal/save/puzzles"
)

// Game plays Virtue or Ice. The cursor picks a block; a push slides it and
// the cursor follows the block to where it stopped.
type Game struct {
	state    *puzzles.VirtueOrIce
	cursor   draw.Cursor
	history  save.History[*ice.BlockSlide]
	showHelp bool
}

// New returns an adapter over state.
func New(state *puzzles.VirtueOrIce) *Game {
	cols, rows := state.Grid().Size()
	return &Game{state: state, cursor: draw.NewCursor(cols, rows), showHelp: true}
}

func init() {
	registry.Register(save.VirtueOrIce, func(g *puzzles.Game) registry.Puzzle {
		return New(g.Virtue)
	})
}

func (g *Game) ID() string    { return save.VirtueOrIce.Key() }
func (g *Game) Title() string { return save.VirtueOrIce.Name() }

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
		if slide := g.state.SlideIceBlock(g.cursor.Pos, d); slide != nil {
			g.history.Push(slide)
			g.cursor.Set(slide.To)
			changed = true
		}
	}

	switch in.Action {
	case core.ActionUndo:
		if wasSolved {
			break
		}
		if slide, ok := g.history.Undo(); ok {
			g.state.UndoSlide(slide)
			g.cursor.Set(slide.From)
			changed = true
		}
	case core.ActionRedo:
		if wasSolved {
			break
		}
		if slide, ok := g.history.Redo(); ok {
			g.state.RedoSlide(slide)
			g.cursor.Set(slide.To)
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
	draw.HUD(dst, g.Title(), "")
	draw.Ice(dst, draw.BoardX, draw.BoardY, g.state.Grid(), g.cursor.Pos)
	if g.showHelp {
		draw.Help(dst, "arrows select  shift+arrows slide  u undo  r reset  q back")
	}
	draw.Footer(dst, g.State())
}

func (g *Game) State() core.GameState {
	return core.GameState{
		Moves:    g.history.Len(),
		Solved:   g.state.IsSolved(),
		CanUndo:  !g.state.IsSolved() && g.history.CanUndo(),
		CanRedo:  !g.state.IsSolved() && g.history.CanRedo(),
		CanReset: g.state.IsSolved() || g.state.CanReset(),
	}
}

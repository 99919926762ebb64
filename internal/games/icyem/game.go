// Package icyem adapts the Column as Icy `Em word-column puzzle.
package icyem

import (
	"github.com/vovakirdan/tui-syzygy/internal/core"
	"github.com/vovakirdan/tui-syzygy/internal/games/draw"
	"github.com/vovakirdan/tui-syzygy/internal/registry"
	"github.com/vovakirdan/tui-syzygy/internal/save"
	"github.com/vovakirdan/tui-syzygy/internal/save/puzzles"
)

// RowLen is the number of columns in each of the two rows.
const RowLen = 7

// move is one column rotation.
type move struct {
	col, by int
}

// Game plays Column as Icy `Em.
type Game struct {
	state    *puzzles.IcyEm
	selected int
	history  save.History[move]
	showHelp bool
}

// New returns an adapter over state.
func New(state *puzzles.IcyEm) *Game {
	return &Game{state: state, showHelp: true}
}

func init() {
	registry.Register(save.ColumnAsIcyEm, func(g *puzzles.Game) registry.Puzzle {
		return New(g.IcyEm)
	})
}

func (g *Game) ID() string    { return save.ColumnAsIcyEm.Key() }
func (g *Game) Title() string { return save.ColumnAsIcyEm.Name() }

// Selected returns the column under the cursor.
func (g *Game) Selected() int { return g.selected }

func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.selected = 0
	g.history.Clear()
	g.showHelp = cfg.ShowHelp
}

func (g *Game) Step(in core.Input) core.StepResult {
	wasSolved := g.state.IsSolved()
	changed := false

	switch in.Action {
	case core.ActionLeft:
		if g.selected%RowLen > 0 {
			g.selected--
		}
	case core.ActionRight:
		if g.selected%RowLen < RowLen-1 {
			g.selected++
		}
	case core.ActionUp, core.ActionDown:
		g.selected = (g.selected + RowLen) % (2 * RowLen)
	case core.ActionPushUp, core.ActionPushDown:
		if wasSolved {
			break
		}
		by := 1
		if in.Action == core.ActionPushDown {
			by = -1
		}
		if g.state.RotateColumn(g.selected, by) {
			g.history.Push(move{g.selected, by})
			changed = true
		}
	case core.ActionUndo:
		if wasSolved {
			break
		}
		if m, ok := g.history.Undo(); ok {
			g.state.RotateColumn(m.col, -m.by)
			g.selected = m.col
			changed = true
		}
	case core.ActionRedo:
		if wasSolved {
			break
		}
		if m, ok := g.history.Redo(); ok {
			g.state.RotateColumn(m.col, m.by)
			g.selected = m.col
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
	cols := g.state.Columns()
	draw.Columns(dst, draw.BoardX, draw.BoardY, cols, 0, RowLen, g.selected)
	draw.Columns(dst, draw.BoardX, draw.BoardY+6, cols, RowLen, RowLen, g.selected)
	if g.showHelp {
		draw.Help(dst, "←→ column  ↑↓ row  shift+↑↓ rotate  q back")
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

// Package syzygy adapts System Syzygy, the final puzzle: four stages that
// reuse the column, ice, pipe and light engines, played in order.
package syzygy

import (
	"fmt"

	"github.com/vovakirdan/tui-syzygy/internal/core"
	"github.com/vovakirdan/tui-syzygy/internal/games/draw"
	"github.com/vovakirdan/tui-syzygy/internal/ice"
	"github.com/vovakirdan/tui-syzygy/internal/plane"
	"github.com/vovakirdan/tui-syzygy/internal/registry"
	"github.com/vovakirdan/tui-syzygy/internal/save"
	"github.com/vovakirdan/tui-syzygy/internal/save/puzzles"
)

// move is one reversible action within a stage.
type move interface {
	undo(s *puzzles.SystemSyzygy)
	redo(s *puzzles.SystemSyzygy)
}

type rotation struct{ col, by int }

func (m rotation) undo(s *puzzles.SystemSyzygy) { s.Yttris().RotateColumn(m.col, -m.by) }
func (m rotation) redo(s *puzzles.SystemSyzygy) { s.Yttris().RotateColumn(m.col, m.by) }

type slide struct{ *ice.BlockSlide }

func (m slide) undo(s *puzzles.SystemSyzygy) { s.Argony().UndoSlide(m.BlockSlide) }
func (m slide) redo(s *puzzles.SystemSyzygy) { s.Argony().RedoSlide(m.BlockSlide) }

type pipe plane.Edge

func (m pipe) undo(s *puzzles.SystemSyzygy) { s.Elinsa().TogglePipe(m.A, m.B) }
func (m pipe) redo(s *puzzles.SystemSyzygy) { s.Elinsa().TogglePipe(m.A, m.B) }

type press core.Point

func (m press) undo(s *puzzles.SystemSyzygy) { s.Relyng().Untoggle(core.Point(m)) }
func (m press) redo(s *puzzles.SystemSyzygy) { s.Relyng().Toggle(core.Point(m)) }

// Game plays System Syzygy. The history covers the current stage only.
type Game struct {
	state    *puzzles.SystemSyzygy
	cursor   draw.Cursor
	history  save.History[move]
	showHelp bool
}

// New returns an adapter over state.
func New(state *puzzles.SystemSyzygy) *Game {
	g := &Game{state: state, showHelp: true}
	g.resetCursor()
	return g
}

func init() {
	registry.Register(save.SystemSyzygy, func(g *puzzles.Game) registry.Puzzle {
		return New(g.Syzygy)
	})
}

func (g *Game) ID() string    { return save.SystemSyzygy.Key() }
func (g *Game) Title() string { return save.SystemSyzygy.Name() }

// Cursor returns the selected cell; on the column stage Col is the column.
func (g *Game) Cursor() core.Point { return g.cursor.Pos }

func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.resetCursor()
	g.history.Clear()
	g.showHelp = cfg.ShowHelp
}

// resetCursor sizes the cursor to the current stage's board.
func (g *Game) resetCursor() {
	var cols, rows int
	switch g.state.Stage() {
	case puzzles.Yttris:
		cols, rows = g.state.Yttris().NumColumns(), 1
	case puzzles.Argony:
		cols, rows = g.state.Argony().Size()
	case puzzles.Elinsa:
		r := g.state.Elinsa().Rect()
		cols, rows = r.W, r.H
	case puzzles.Relyng:
		cols, rows = g.state.Relyng().Size()
	}
	g.cursor = draw.NewCursor(cols, rows)
}

// apply performs a push or select on the current stage.
func (g *Game) apply(in core.Input) (move, bool) {
	p := g.cursor.Pos
	d, isPush := in.Action.PushDir()

	switch g.state.Stage() {
	case puzzles.Yttris:
		if in.Action != core.ActionPushUp && in.Action != core.ActionPushDown {
			return nil, false
		}
		m := rotation{col: p.Col, by: 1}
		if in.Action == core.ActionPushDown {
			m.by = -1
		}
		return m, g.state.Yttris().RotateColumn(m.col, m.by)
	case puzzles.Argony:
		if !isPush {
			return nil, false
		}
		s := g.state.Argony().SlideIceBlock(p, d)
		if s == nil {
			return nil, false
		}
		g.cursor.Set(s.To)
		return slide{s}, true
	case puzzles.Elinsa:
		if !isPush {
			return nil, false
		}
		e := pipe{A: p, B: p.Step(d)}
		if !g.state.Elinsa().TogglePipe(e.A, e.B) {
			return nil, false
		}
		g.cursor.Set(e.B)
		return e, true
	case puzzles.Relyng:
		if in.Action != core.ActionSelect {
			return nil, false
		}
		return press(p), g.state.Relyng().Toggle(p)
	}
	return nil, false
}

// advance moves to the next stage when the current one is complete.
func (g *Game) advance() {
	if g.state.AdvanceStageIfDone() {
		g.history.Clear()
		g.resetCursor()
	}
}

func (g *Game) Step(in core.Input) core.StepResult {
	wasSolved := g.state.IsSolved()
	changed := false

	if d, ok := in.Action.CursorDir(); ok {
		g.cursor.Move(d)
	}

	switch in.Action {
	case core.ActionUndo:
		if wasSolved {
			break
		}
		if m, ok := g.history.Undo(); ok {
			m.undo(g.state)
			changed = true
		}
	case core.ActionRedo:
		if wasSolved {
			break
		}
		if m, ok := g.history.Redo(); ok {
			m.redo(g.state)
			changed = true
			g.advance()
		}
	case core.ActionReset:
		changed = g.reset(wasSolved)
	default:
		if wasSolved {
			break
		}
		if m, ok := g.apply(in); ok {
			g.history.Push(m)
			changed = true
			g.advance()
		}
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
	g.resetCursor()
	return true
}

func (g *Game) status() string {
	stage := g.state.Stage()
	s := fmt.Sprintf("stage %d/4: %s", int(stage)+1, stage)
	if stage == puzzles.Relyng {
		s += fmt.Sprintf("  next: %s", g.state.Relyng().NextShape())
	}
	return s
}

func (g *Game) Render(dst *core.Screen) {
	draw.HUD(dst, g.Title(), g.status())
	x, y := draw.BoardX, draw.BoardY
	help := "arrows move  shift+arrows act  u undo  r reset  q back"
	switch g.state.Stage() {
	case puzzles.Yttris:
		cols := g.state.Yttris()
		draw.Columns(dst, x, y, cols, 0, cols.NumColumns(), g.cursor.Pos.Col)
		help = "←→ column  shift+↑↓ rotate  u undo  r reset  q back"
	case puzzles.Argony:
		draw.Ice(dst, x, y, g.state.Argony(), g.cursor.Pos)
	case puzzles.Elinsa:
		draw.Plane(dst, x, y, g.state.Elinsa(), g.cursor.Pos)
	case puzzles.Relyng:
		draw.Lights(dst, x, y, g.state.Relyng(), g.cursor.Pos)
		help = "arrows move  enter press  u undo  r reset  q back"
	}
	if g.showHelp {
		draw.Help(dst, help)
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
		Status:   g.status(),
	}
}

// Package levelup adapts the Level Up crossword.
package levelup

import (
	"github.com/vovakirdan/tui-syzygy/internal/core"
	"github.com/vovakirdan/tui-syzygy/internal/crossword"
	"github.com/vovakirdan/tui-syzygy/internal/games/draw"
	"github.com/vovakirdan/tui-syzygy/internal/registry"
	"github.com/vovakirdan/tui-syzygy/internal/save"
	"github.com/vovakirdan/tui-syzygy/internal/save/puzzles"
)

// edit is one character change.
type edit struct {
	word, index int
	prev, next  rune
}

// Game plays Level Up. The cursor walks the word slots; typing fills the
// cell under it and advances.
type Game struct {
	state    *puzzles.LevelUp
	word     int
	index    int
	history  save.History[edit]
	showHelp bool
}

// New returns an adapter over state.
func New(state *puzzles.LevelUp) *Game {
	return &Game{state: state, showHelp: true}
}

func init() {
	registry.Register(save.LevelUp, func(g *puzzles.Game) registry.Puzzle {
		return New(g.LevelUp)
	})
}

func (g *Game) ID() string    { return save.LevelUp.Key() }
func (g *Game) Title() string { return save.LevelUp.Name() }

// AcceptsText reports that printable keys are typed rather than bound.
func (g *Game) AcceptsText() bool { return true }

// Cursor returns the selected word and character index.
func (g *Game) Cursor() (word, index int) { return g.word, g.index }

func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.word, g.index = 0, 0
	g.history.Clear()
	g.showHelp = cfg.ShowHelp
}

func (g *Game) words() *crossword.State { return g.state.Crossword() }

// moveTo places the cursor, clamping the index to the word length.
func (g *Game) moveTo(word, index int) {
	g.word = core.Clamp(word, 0, g.words().NumWords()-1)
	g.index = core.Clamp(index, 0, g.words().WordLen(g.word)-1)
}

func (g *Game) Step(in core.Input) core.StepResult {
	wasSolved := g.state.IsSolved()
	changed := false

	switch in.Action {
	case core.ActionUp:
		g.moveTo(g.word-1, g.index)
	case core.ActionDown:
		g.moveTo(g.word+1, g.index)
	case core.ActionLeft:
		g.moveTo(g.word, g.index-1)
	case core.ActionRight:
		g.moveTo(g.word, g.index+1)
	case core.ActionType:
		if wasSolved {
			break
		}
		if changed = g.set(g.word, g.index, in.Rune); changed {
			g.moveTo(g.word, g.index+1)
		}
	case core.ActionErase:
		if wasSolved {
			break
		}
		if g.charAt(g.word, g.index) == crossword.Blank && g.index > 0 {
			g.moveTo(g.word, g.index-1)
		}
		changed = g.set(g.word, g.index, crossword.Blank)
	case core.ActionUndo:
		if wasSolved {
			break
		}
		if e, ok := g.history.Undo(); ok {
			g.state.SetChar(e.word, e.index, e.prev)
			g.moveTo(e.word, e.index)
			changed = true
		}
	case core.ActionRedo:
		if wasSolved {
			break
		}
		if e, ok := g.history.Redo(); ok {
			g.state.SetChar(e.word, e.index, e.next)
			g.moveTo(e.word, e.index)
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

func (g *Game) charAt(word, index int) rune {
	w := []rune(g.words().Word(word))
	if index < 0 || index >= len(w) {
		return crossword.Blank
	}
	return w[index]
}

// set writes ch and records the edit unless it changed nothing.
func (g *Game) set(word, index int, ch rune) bool {
	prev, ok := g.state.SetChar(word, index, ch)
	if !ok {
		return false
	}
	next := g.charAt(word, index)
	if next == prev {
		return false
	}
	g.history.Push(edit{word: word, index: index, prev: prev, next: next})
	return true
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
	g.word, g.index = 0, 0
	return true
}

func (g *Game) Render(dst *core.Screen) {
	draw.HUD(dst, g.Title(), "letters and "+crossword.Symbols)
	words := g.words()
	for i := range words.NumWords() {
		for j, ch := range []rune(words.Word(i)) {
			x, y := draw.BoardX+2*j, draw.BoardY+i
			color := core.ColorBrightWhite
			if ch == crossword.Blank {
				ch, color = '_', core.ColorDim
			}
			if i == g.word && j == g.index {
				color = core.ColorCursor
			}
			dst.SetColored(x, y, ch, color)
		}
	}
	if g.showHelp {
		draw.Help(dst, "type to fill  arrows move  ctrl+z undo  ctrl+r reset  esc back")
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

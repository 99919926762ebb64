// Package draw renders puzzle engines into a core.Screen and provides the
// cursor and HUD shared by every puzzle adapter.
package draw

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-syzygy/internal/core"
)

// Layout of every puzzle screen.
const (
	BoardX = 2 // left edge of the board
	BoardY = 3 // first board row, below the HUD
)

// Cursor is a grid position clamped to a board.
type Cursor struct {
	Pos        core.Point
	cols, rows int
}

// NewCursor returns a cursor at (0,0) on a cols x rows board.
func NewCursor(cols, rows int) Cursor {
	return Cursor{cols: cols, rows: rows}
}

// Move steps the cursor in d. It reports false at the board edge.
func (c *Cursor) Move(d core.Dir) bool {
	next := c.Pos.Step(d)
	if !core.NewRect(0, 0, c.cols, c.rows).Contains(next) {
		return false
	}
	c.Pos = next
	return true
}

// Set moves the cursor to p, clamped to the board.
func (c *Cursor) Set(p core.Point) {
	c.Pos = core.Pt(core.Clamp(p.Col, 0, c.cols-1), core.Clamp(p.Row, 0, c.rows-1))
}

// HUD draws the title line and separator.
func HUD(dst *core.Screen, title, status string) {
	line := " " + title
	if status != "" {
		line += "  |  " + status
	}
	dst.DrawTextColored(0, 0, line, core.ColorBrightWhite)
	dst.DrawText(0, 1, strings.Repeat("─", dst.Width()))
}

// Footer draws the move counter and progress flags on the last row.
func Footer(dst *core.Screen, st core.GameState) {
	y := dst.Height() - 1
	line := fmt.Sprintf(" moves: %d", st.Moves)
	if st.CanUndo {
		line += "  [u]ndo"
	}
	if st.CanRedo {
		line += "  ^r redo"
	}
	if st.CanReset {
		line += "  [r]eset"
	}
	dst.DrawTextColored(0, y, line, core.ColorDim)
	if st.Solved {
		const msg = "SOLVED "
		dst.DrawTextColored(dst.Width()-len(msg), y, msg, core.ColorSolved)
	}
}

// Overlay draws lines centered in a box in the middle of the screen.
func Overlay(dst *core.Screen, lines ...string) {
	w := 0
	for _, l := range lines {
		w = max(w, len([]rune(l)))
	}
	w += 4
	h := len(lines) + 2
	x := (dst.Width() - w) / 2
	y := (dst.Height() - h) / 2
	for row := y; row < y+h; row++ {
		dst.DrawText(x, row, strings.Repeat(" ", w))
	}
	dst.DrawBox(core.NewRect(x, y, w, h))
	for i, l := range lines {
		lx := x + (w-len([]rune(l)))/2
		dst.DrawTextColored(lx, y+1+i, l, core.ColorBrightWhite)
	}
}

// TooSmall reports whether the screen cannot hold a board of w x h cells
// plus the HUD and footer.
func TooSmall(dst *core.Screen, w, h int) bool {
	return dst.Width() < BoardX+w || dst.Height() < BoardY+h+1
}

// Help draws a key hint line just above the footer.
func Help(dst *core.Screen, text string) {
	dst.DrawTextColored(1, dst.Height()-2, text, core.ColorDim)
}

// Package column implements the column-rotation cipher: letter columns
// that rotate together according to a fixed linkage table.
package column

import (
	"github.com/vovakirdan/tui-syzygy/internal/core"
	"github.com/vovakirdan/tui-syzygy/internal/save"
)

// Link says that rotating the owning column by n also rotates column Index
// by n*Factor. An entry naming the owning column adds to its own turn.
type Link struct {
	Index  int
	Factor int
}

// Spec is the authored description of one column.
type Spec struct {
	Word    string
	Initial int
	Solved  int
	Links   []Link
}

type column struct {
	letters  []rune
	position int
	initial  int
	solved   int
	links    []Link
}

// Columns is a set of linked letter columns.
type Columns struct {
	cols []column
}

// New builds columns at their initial positions.
func New(specs []Spec) *Columns {
	c := &Columns{cols: make([]column, len(specs))}
	for i, s := range specs {
		letters := []rune(s.Word)
		n := len(letters)
		c.cols[i] = column{
			letters:  letters,
			initial:  core.Mod(s.Initial, n),
			solved:   core.Mod(s.Solved, n),
			position: core.Mod(s.Initial, n),
			links:    s.Links,
		}
	}
	return c
}

func (c *Columns) NumColumns() int { return len(c.cols) }

// Word returns the letters of column i from top to bottom.
func (c *Columns) Word(i int) string {
	if i < 0 || i >= len(c.cols) {
		return ""
	}
	return string(c.cols[i].letters)
}

// Position returns the rotation offset of column i.
func (c *Columns) Position(i int) int {
	if i < 0 || i >= len(c.cols) {
		return 0
	}
	return c.cols[i].position
}

// Positions returns every offset.
func (c *Columns) Positions() []int {
	out := make([]int, len(c.cols))
	for i, col := range c.cols {
		out[i] = col.position
	}
	return out
}

// LetterAt returns the letter of column i shown in display row r, where
// row 0 shows the letter at the column's offset.
func (c *Columns) LetterAt(i, r int) rune {
	if i < 0 || i >= len(c.cols) {
		return ' '
	}
	col := c.cols[i]
	return col.letters[core.Mod(col.position+r, len(col.letters))]
}

// RotateColumn turns column i by `by` steps, then turns every linked column
// by `by` times its factor. RotateColumn(i, -by) undoes it exactly.
func (c *Columns) RotateColumn(i, by int) bool {
	if i < 0 || i >= len(c.cols) || by == 0 {
		return false
	}
	self := &c.cols[i]
	self.position = core.Mod(self.position+by, len(self.letters))
	for _, link := range c.cols[i].links {
		if link.Index < 0 || link.Index >= len(c.cols) {
			continue
		}
		col := &c.cols[link.Index]
		col.position = core.Mod(col.position+by*link.Factor, len(col.letters))
	}
	return true
}

// IsSolved reports whether every column sits at its solved offset.
func (c *Columns) IsSolved() bool {
	for _, col := range c.cols {
		if col.position != col.solved {
			return false
		}
	}
	return true
}

// CanReset reports whether any column has left its initial offset.
func (c *Columns) CanReset() bool {
	for _, col := range c.cols {
		if col.position != col.initial {
			return true
		}
	}
	return false
}

func (c *Columns) Reset() {
	for i := range c.cols {
		c.cols[i].position = c.cols[i].initial
	}
}

func (c *Columns) Solve() {
	for i := range c.cols {
		c.cols[i].position = c.cols[i].solved
	}
}

// MarshalArray encodes the offsets.
func (c *Columns) MarshalArray() []any {
	return save.Ints(c.Positions())
}

// SetFromArray restores offsets saved by MarshalArray. A list of the wrong
// length or with non-integer entries resets the columns instead.
func (c *Columns) SetFromArray(a []any) {
	positions, ok := save.IntArray(a)
	if !ok || len(positions) != len(c.cols) {
		c.Reset()
		return
	}
	for i, p := range positions {
		c.cols[i].position = core.Mod(p, len(c.cols[i].letters))
	}
}

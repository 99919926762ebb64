// Package lights implements the light-toggle parity puzzle: each press
// flips a five-cell shape of lights, and the shape cycles + N X Z.
package lights

import (
	"slices"

	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/tui-syzygy/internal/core"
)

// Shape is one of the four stamp patterns.
type Shape rune

const (
	Plus Shape = '+'
	N    Shape = 'N'
	X    Shape = 'X'
	Z    Shape = 'Z'
)

var shapeCycle = [4]Shape{Plus, N, X, Z}

var offsets = map[Shape][5]core.Point{
	Plus: {{Col: 0, Row: 0}, {Col: 1, Row: 0}, {Col: 0, Row: 1}, {Col: -1, Row: 0}, {Col: 0, Row: -1}},
	N:    {{Col: 0, Row: 0}, {Col: -1, Row: 0}, {Col: -1, Row: 1}, {Col: 1, Row: 0}, {Col: 1, Row: -1}},
	X:    {{Col: 0, Row: 0}, {Col: -1, Row: -1}, {Col: 1, Row: -1}, {Col: -1, Row: 1}, {Col: 1, Row: 1}},
	Z:    {{Col: 0, Row: 0}, {Col: 0, Row: -1}, {Col: -1, Row: -1}, {Col: 0, Row: 1}, {Col: 1, Row: 1}},
}

// ParseShape accepts "+", "N", "X" or "Z".
func ParseShape(s string) (Shape, bool) {
	for _, sh := range shapeCycle {
		if string(sh) == s {
			return sh, true
		}
	}
	return Plus, false
}

func (s Shape) String() string { return string(s) }

// Next returns the shape that follows s in the cycle.
func (s Shape) Next() Shape {
	i := slices.Index(shapeCycle[:], s)
	return shapeCycle[(i+1)%len(shapeCycle)]
}

// Prev returns the shape that precedes s in the cycle.
func (s Shape) Prev() Shape {
	i := slices.Index(shapeCycle[:], s)
	return shapeCycle[(i+len(shapeCycle)-1)%len(shapeCycle)]
}

// Offsets returns the cells flipped by the shape, relative to the press.
func (s Shape) Offsets() [5]core.Point {
	return offsets[s]
}

// Board is the grid of lights plus the next-shape cursor.
// A light is lit when its index is in the lit set; the board starts dark.
type Board struct {
	cols, rows int
	lit        mapset.Set[int]
	next       Shape
}

// NewBoard returns a dark board whose first press stamps a plus.
func NewBoard(cols, rows int) *Board {
	return &Board{cols: cols, rows: rows, lit: mapset.New[int](), next: Plus}
}

func (b *Board) Size() (cols, rows int) { return b.cols, b.rows }

// NextShape returns the shape the next press will stamp.
func (b *Board) NextShape() Shape { return b.next }

func (b *Board) index(p core.Point) (int, bool) {
	if !core.NewRect(0, 0, b.cols, b.rows).Contains(p) {
		return 0, false
	}
	return p.Row*b.cols + p.Col, true
}

// IsLit reports whether the light at p is lit.
func (b *Board) IsLit(p core.Point) bool {
	i, ok := b.index(p)
	return ok && b.lit.Has(i)
}

// IsDone reports whether every light is lit.
func (b *Board) IsDone() bool {
	return b.lit.Size() == b.cols*b.rows
}

// Toggle stamps the next shape at p and advances the cursor. Presses off
// the board are ignored.
func (b *Board) Toggle(p core.Point) bool {
	if _, ok := b.index(p); !ok {
		return false
	}
	b.stamp(p)
	b.next = b.next.Next()
	return true
}

// Untoggle undoes a Toggle at p: it rewinds the cursor and stamps again.
func (b *Board) Untoggle(p core.Point) bool {
	if _, ok := b.index(p); !ok {
		return false
	}
	b.next = b.next.Prev()
	b.stamp(p)
	return true
}

func (b *Board) stamp(p core.Point) {
	for _, off := range b.next.Offsets() {
		i, ok := b.index(p.Add(off))
		if !ok {
			continue
		}
		if b.lit.Has(i) {
			b.lit.Remove(i)
		} else {
			b.lit.Put(i)
		}
	}
}

// CanReset reports whether any light is lit.
func (b *Board) CanReset() bool { return b.lit.Size() > 0 }

// Reset darkens the board and rewinds the cursor to plus.
func (b *Board) Reset() {
	b.lit = mapset.New[int]()
	b.next = Plus
}

// Solve lights every cell.
func (b *Board) Solve() {
	for i := 0; i < b.cols*b.rows; i++ {
		b.lit.Put(i)
	}
}

// Lit returns the lit indices in ascending order.
func (b *Board) Lit() []int {
	out := make([]int, 0, b.lit.Size())
	b.lit.Each(func(i int) {
		out = append(out, i)
	})
	slices.Sort(out)
	return out
}

// Restore sets the lit indices and cursor. Indices off the board are
// dropped.
func (b *Board) Restore(lit []int, next Shape) {
	b.lit = mapset.New[int]()
	for _, i := range lit {
		if i >= 0 && i < b.cols*b.rows {
			b.lit.Put(i)
		}
	}
	b.next = next
}

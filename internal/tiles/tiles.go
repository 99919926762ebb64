// Package tiles implements the tile-shift permutation grid: shifting a row
// or column rotates its tiles around the fixed gaps.
package tiles

import (
	"slices"

	"github.com/vovakirdan/tui-syzygy/internal/core"
)

// Gap marks a cell that holds no tile. Gaps never move.
const Gap = -1

// Grid is a row-major grid of tile kinds and gaps.
type Grid struct {
	cols, rows int
	cells      []int
}

// NewGrid copies cells into a new grid. It returns nil if the cell count
// does not match the size.
func NewGrid(cols, rows int, cells []int) *Grid {
	if cols <= 0 || rows <= 0 || len(cells) != cols*rows {
		return nil
	}
	return &Grid{cols: cols, rows: rows, cells: slices.Clone(cells)}
}

func (g *Grid) Size() (cols, rows int) { return g.cols, g.rows }

// Cells returns a copy of the cells.
func (g *Grid) Cells() []int { return slices.Clone(g.cells) }

// Equal reports whether the grid holds exactly cells.
func (g *Grid) Equal(cells []int) bool { return slices.Equal(g.cells, cells) }

// TileAt returns the tile kind at (col, row); ok is false for gaps and
// cells off the grid.
func (g *Grid) TileAt(col, row int) (int, bool) {
	if col < 0 || col >= g.cols || row < 0 || row >= g.rows {
		return 0, false
	}
	v := g.cells[row*g.cols+col]
	if v < 0 {
		return 0, false
	}
	return v, true
}

// rank returns the cell indices of a row (East/West) or column
// (North/South) in position order.
func (g *Grid) rank(d core.Dir, n int) []int {
	var idx []int
	if d.IsVertical() {
		if n < 0 || n >= g.cols {
			return nil
		}
		for row := 0; row < g.rows; row++ {
			idx = append(idx, row*g.cols+n)
		}
	} else {
		if n < 0 || n >= g.rows {
			return nil
		}
		for col := 0; col < g.cols; col++ {
			idx = append(idx, n*g.cols+col)
		}
	}
	return idx
}

// ShiftTiles rotates the tiles of one rank by one place in direction d.
// East and South move the last tile to the front; West and North move the
// first tile to the back. Gap cells keep their place. It reports false
// when the rank is off the grid or holds no tiles.
func (g *Grid) ShiftTiles(d core.Dir, n int) bool {
	var pos, tiles []int
	for _, i := range g.rank(d, n) {
		if g.cells[i] >= 0 {
			pos = append(pos, i)
			tiles = append(tiles, g.cells[i])
		}
	}
	if len(tiles) == 0 {
		return false
	}
	if d == core.East || d == core.South {
		last := tiles[len(tiles)-1]
		tiles = append([]int{last}, tiles[:len(tiles)-1]...)
	} else {
		tiles = append(tiles[1:], tiles[0])
	}
	for k, i := range pos {
		g.cells[i] = tiles[k]
	}
	return true
}

// Compatible reports whether cells could have been reached from ref by
// shifting: same length, same gap positions, same multiset of tiles.
func Compatible(cells, ref []int) bool {
	if len(cells) != len(ref) {
		return false
	}
	for i := range cells {
		if (cells[i] < 0) != (ref[i] < 0) {
			return false
		}
	}
	a, b := slices.Clone(cells), slices.Clone(ref)
	slices.Sort(a)
	slices.Sort(b)
	return slices.Equal(a, b)
}

package tiles

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/vovakirdan/tui-syzygy/internal/core"
)

func TestNewGridRejectsBadSize(t *testing.T) {
	assert.Nil(t, NewGrid(2, 2, []int{0, 1, 2}))
	assert.Nil(t, NewGrid(0, 2, nil))
	assert.NotNil(t, NewGrid(2, 1, []int{0, Gap}))
}

func TestShiftRowSkipsGaps(t *testing.T) {
	g := NewGrid(5, 1, []int{0, Gap, 1, 2, Gap})
	require.True(t, g.ShiftTiles(core.East, 0))
	assert.Equal(t, []int{2, Gap, 0, 1, Gap}, g.Cells())

	require.True(t, g.ShiftTiles(core.West, 0))
	require.True(t, g.ShiftTiles(core.West, 0))
	assert.Equal(t, []int{1, Gap, 2, 0, Gap}, g.Cells())
}

func TestShiftColumn(t *testing.T) {
	g := NewGrid(2, 3, []int{
		0, 1,
		Gap, 2,
		1, 0,
	})
	require.True(t, g.ShiftTiles(core.South, 0))
	assert.Equal(t, []int{1, 1, Gap, 2, 0, 0}, g.Cells())
	require.True(t, g.ShiftTiles(core.North, 1))
	assert.Equal(t, []int{1, 2, Gap, 0, 0, 1}, g.Cells())
}

func TestShiftRejects(t *testing.T) {
	g := NewGrid(3, 2, []int{Gap, Gap, Gap, 0, 1, 2})
	assert.False(t, g.ShiftTiles(core.East, 0), "all gaps")
	assert.False(t, g.ShiftTiles(core.East, 2), "row off grid")
	assert.False(t, g.ShiftTiles(core.North, -1), "column off grid")
	assert.Equal(t, []int{Gap, Gap, Gap, 0, 1, 2}, g.Cells())
}

func TestTileAt(t *testing.T) {
	g := NewGrid(2, 1, []int{2, Gap})
	v, ok := g.TileAt(0, 0)
	assert.True(t, ok)
	assert.Equal(t, 2, v)
	_, ok = g.TileAt(1, 0)
	assert.False(t, ok)
	_, ok = g.TileAt(2, 0)
	assert.False(t, ok)
}

func TestShiftIsBijection(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cols := rapid.IntRange(1, 6).Draw(t, "cols")
		rows := rapid.IntRange(1, 6).Draw(t, "rows")
		cells := rapid.SliceOfN(rapid.IntRange(Gap, 2), cols*rows, cols*rows).Draw(t, "cells")
		g := NewGrid(cols, rows, cells)

		d := core.AllDirs[rapid.IntRange(0, 3).Draw(t, "dir")]
		n := rapid.IntRange(0, max(cols, rows)-1).Draw(t, "rank")
		g.ShiftTiles(d, n)
		if !Compatible(g.Cells(), cells) {
			t.Fatalf("shift changed gaps or tiles: %v -> %v", cells, g.Cells())
		}
		g.ShiftTiles(d.Opposite(), n)
		if !slices.Equal(cells, g.Cells()) {
			t.Fatalf("shift %v/%d and back: %v -> %v", d, n, cells, g.Cells())
		}
	})
}

func TestCompatible(t *testing.T) {
	ref := []int{0, 1, Gap, 2}
	assert.True(t, Compatible([]int{2, 0, Gap, 1}, ref))
	assert.False(t, Compatible([]int{2, Gap, 0, 1}, ref), "gap moved")
	assert.False(t, Compatible([]int{0, 0, Gap, 2}, ref), "different tiles")
	assert.False(t, Compatible([]int{0, 1, Gap}, ref), "length")
}

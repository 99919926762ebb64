package lights

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/vovakirdan/tui-syzygy/internal/core"
)

func TestShapeCycle(t *testing.T) {
	assert.Equal(t, N, Plus.Next())
	assert.Equal(t, X, N.Next())
	assert.Equal(t, Z, X.Next())
	assert.Equal(t, Plus, Z.Next())
	for _, s := range shapeCycle {
		assert.Equal(t, s, s.Next().Prev())
		got, ok := ParseShape(s.String())
		assert.True(t, ok)
		assert.Equal(t, s, got)
	}
	_, ok := ParseShape("Q")
	assert.False(t, ok)
}

func TestToggleStampsShape(t *testing.T) {
	b := NewBoard(5, 4)
	assert.True(t, b.Toggle(core.Pt(2, 1)))
	assert.Equal(t, []int{2, 6, 7, 8, 12}, b.Lit(), "plus around (2,1)")
	assert.Equal(t, N, b.NextShape())

	assert.True(t, b.Toggle(core.Pt(2, 1)))
	// N flips (2,1) (1,1) (1,2) (3,1) (3,0).
	assert.Equal(t, []int{2, 3, 11, 12}, b.Lit())
	assert.Equal(t, X, b.NextShape())
}

func TestToggleClipsAtEdges(t *testing.T) {
	b := NewBoard(5, 4)
	b.Toggle(core.Pt(0, 0))
	assert.Equal(t, []int{0, 1, 5}, b.Lit())
	assert.False(t, b.Toggle(core.Pt(5, 0)))
	assert.Equal(t, N, b.NextShape(), "rejected presses do not advance")
}

func TestToggleRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b := NewBoard(5, 4)
		press := func(label string) core.Point {
			return core.Pt(rapid.IntRange(0, 4).Draw(t, label+" col"), rapid.IntRange(0, 3).Draw(t, label+" row"))
		}
		for n := rapid.IntRange(0, 12).Draw(t, "warmup"); n > 0; n-- {
			b.Toggle(press("warmup"))
		}
		lit, next := b.Lit(), b.NextShape()
		p := press("p")
		b.Toggle(p)
		b.Untoggle(p)
		if !slices.Equal(lit, b.Lit()) || next != b.NextShape() {
			t.Fatalf("toggle/untoggle at %v changed the board", p)
		}
	})
}

func TestDoneAndReset(t *testing.T) {
	b := NewBoard(5, 4)
	assert.False(t, b.IsDone())
	assert.False(t, b.CanReset())

	b.Solve()
	assert.True(t, b.IsDone())
	assert.True(t, b.IsLit(core.Pt(4, 3)))
	assert.False(t, b.IsLit(core.Pt(5, 3)))

	b.Reset()
	assert.False(t, b.CanReset())
	assert.Equal(t, Plus, b.NextShape())
}

func TestRestoreFilters(t *testing.T) {
	b := NewBoard(5, 4)
	b.Restore([]int{-1, 0, 7, 19, 20}, Z)
	assert.Equal(t, []int{0, 7, 19}, b.Lit())
	assert.Equal(t, Z, b.NextShape())
}

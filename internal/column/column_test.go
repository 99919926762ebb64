package column

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

var testSpecs = []Spec{
	{"UNDO", -1, 3, []Link{{0, 1}, {4, 2}, {3, 3}}},
	{"OPEN", -1, 2, []Link{{1, 1}, {3, -2}, {4, 3}}},
	{"FILE", -1, 1, []Link{{2, 1}, {0, 2}, {5, 3}}},
	{"BOLT", -1, 0, []Link{{3, 1}, {5, -2}, {1, -3}}},
	{"PICK", -1, 1, []Link{{4, 1}, {0, -3}}},
	{"KEYS", -1, 3, []Link{{5, 1}, {2, -2}, {4, 3}}},
}

func TestNewColumns(t *testing.T) {
	c := New(testSpecs)
	assert.Equal(t, 6, c.NumColumns())
	assert.Equal(t, []int{3, 3, 3, 3, 3, 3}, c.Positions(), "negative initial offsets wrap")
	assert.False(t, c.IsSolved())
	assert.False(t, c.CanReset())
	assert.Equal(t, 'O', c.LetterAt(0, 0))
	assert.Equal(t, 'U', c.LetterAt(0, 1))
	assert.Equal(t, "UNDO", c.Word(0))
}

func TestRotateColumnAppliesLinks(t *testing.T) {
	c := New(testSpecs)
	assert.True(t, c.RotateColumn(0, 1))
	assert.Equal(t, []int{1, 3, 3, 2, 1, 3}, c.Positions())
	assert.True(t, c.CanReset())

	assert.False(t, c.RotateColumn(9, 1))
	assert.False(t, c.RotateColumn(0, 0))
}

func TestRotateColumnInverse(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := New(testSpecs)
		for n := rapid.IntRange(0, 10).Draw(t, "warmup"); n > 0; n-- {
			c.RotateColumn(rapid.IntRange(0, 5).Draw(t, "col"), rapid.IntRange(-3, 3).Draw(t, "by"))
		}
		before := c.Positions()
		i := rapid.IntRange(0, 5).Draw(t, "i")
		by := rapid.IntRange(-7, 7).Draw(t, "by")
		c.RotateColumn(i, by)
		c.RotateColumn(i, -by)
		if !slices.Equal(before, c.Positions()) {
			t.Fatalf("rotate %d by %d and back: %v != %v", i, by, before, c.Positions())
		}
	})
}

func TestSolveAndReset(t *testing.T) {
	c := New(testSpecs)
	c.Solve()
	assert.True(t, c.IsSolved())
	assert.Equal(t, []int{3, 2, 1, 0, 1, 3}, c.Positions())
	c.Reset()
	assert.False(t, c.CanReset())
}

func TestArrayRoundTrip(t *testing.T) {
	c := New(testSpecs)
	c.RotateColumn(2, 1)
	c.RotateColumn(5, -1)

	d := New(testSpecs)
	d.SetFromArray(c.MarshalArray())
	assert.Equal(t, c.Positions(), d.Positions())

	d.SetFromArray([]any{1, 2})
	assert.False(t, d.CanReset(), "wrong length resets")

	d.SetFromArray([]any{1, 2, 3, "x", 5, 6})
	assert.False(t, d.CanReset(), "non-integers reset")

	d.SetFromArray([]any{5, 5, 5, 5, 5, 5})
	assert.Equal(t, []int{1, 1, 1, 1, 1, 1}, d.Positions(), "offsets wrap")
}

func TestKnownSolution(t *testing.T) {
	c := New(testSpecs)
	for _, m := range [][2]int{{0, 3}, {1, 9}, {2, 8}, {3, 5}, {4, 10}, {5, 7}} {
		c.RotateColumn(m[0], m[1])
	}
	assert.True(t, c.IsSolved(), "positions %v", c.Positions())
}

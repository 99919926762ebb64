package crossword

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var solution = []string{"COM#", "NON+ED", ":EL"}

func TestAccepts(t *testing.T) {
	assert.True(t, Letters.Accepts('a'))
	assert.True(t, Letters.Accepts('Z'))
	assert.False(t, Letters.Accepts('#'))
	assert.True(t, LettersAndSymbols.Accepts('#'))
	assert.False(t, LettersAndSymbols.Accepts('1'))
	assert.False(t, LettersAndSymbols.Accepts(' '))
}

func TestBlank(t *testing.T) {
	s := NewBlank(LettersAndSymbols, solution)
	require.Equal(t, 3, s.NumWords())
	assert.Equal(t, "      ", s.Word(1))
	assert.Equal(t, 3, s.WordLen(2))
	assert.False(t, s.CanReset())
	assert.False(t, s.WordsAre(solution))
}

func TestSetChar(t *testing.T) {
	s := NewBlank(LettersAndSymbols, solution)

	prev, ok := s.SetChar(0, 0, 'c')
	assert.True(t, ok)
	assert.Equal(t, Blank, prev)
	assert.Equal(t, "C   ", s.Word(0))
	assert.True(t, s.CanReset())

	prev, ok = s.SetChar(0, 0, 'X')
	assert.True(t, ok)
	assert.Equal(t, 'C', prev)

	_, ok = s.SetChar(0, 4, 'A')
	assert.False(t, ok, "past the end")
	_, ok = s.SetChar(3, 0, 'A')
	assert.False(t, ok, "no such word")
	_, ok = s.SetChar(0, 1, '7')
	assert.False(t, ok, "invalid char")

	prev, ok = s.SetChar(0, 0, Blank)
	assert.True(t, ok)
	assert.Equal(t, 'X', prev)
	assert.False(t, s.CanReset())
}

func TestWordsAre(t *testing.T) {
	s := NewBlank(LettersAndSymbols, solution)
	for i, w := range solution {
		for j, ch := range []rune(w) {
			_, ok := s.SetChar(i, j, ch)
			require.True(t, ok)
		}
	}
	assert.True(t, s.WordsAre(solution))
	assert.True(t, NewFilled(LettersAndSymbols, solution).WordsAre(solution))

	s.Reset()
	assert.False(t, s.CanReset())
}

func TestArrayRoundTrip(t *testing.T) {
	s := NewBlank(LettersAndSymbols, solution)
	s.SetChar(1, 3, '+')
	s.SetChar(2, 2, 'l')

	back := FromArray(s.MarshalArray(), LettersAndSymbols, solution)
	assert.Equal(t, s.MarshalArray(), back.MarshalArray())
}

func TestFromBadArray(t *testing.T) {
	tests := []struct {
		name string
		a    []any
	}{
		{"nil", nil},
		{"wrong count", []any{"COM#"}},
		{"wrong length", []any{"CO", "NON+ED", ":EL"}},
		{"not a string", []any{"COM#", 7, ":EL"}},
		{"bad char", []any{"COM1", "NON+ED", ":EL"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := FromArray(tt.a, LettersAndSymbols, solution)
			assert.False(t, s.CanReset())
			assert.Equal(t, 3, s.NumWords())
		})
	}
	// Symbols are rejected when only letters are allowed.
	assert.False(t, FromArray([]any{"COM#", "NON+ED", ":EL"}, Letters, solution).CanReset())
}

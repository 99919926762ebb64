// Package crossword holds the letter-entry state of word puzzles: a fixed
// list of word slots that the player fills one character at a time.
package crossword

import (
	"strings"
	"unicode"

	"github.com/vovakirdan/tui-syzygy/internal/save"
)

// Blank is the character of an unfilled cell.
const Blank = ' '

// Symbols lists the non-letter characters accepted by LettersAndSymbols.
const Symbols = "!#$%&*+,:;=?@"

// ValidChars selects which characters may be typed into a cell.
type ValidChars int

const (
	Letters ValidChars = iota
	LettersAndSymbols
)

// Accepts reports whether ch may be entered. Letters are upper-cased first.
func (v ValidChars) Accepts(ch rune) bool {
	ch = unicode.ToUpper(ch)
	if ch >= 'A' && ch <= 'Z' {
		return true
	}
	return v == LettersAndSymbols && strings.ContainsRune(Symbols, ch)
}

// State is the current contents of every word slot.
type State struct {
	valid ValidChars
	words [][]rune
}

// NewBlank returns empty slots sized to match solution.
func NewBlank(valid ValidChars, solution []string) *State {
	s := &State{valid: valid, words: make([][]rune, len(solution))}
	for i, w := range solution {
		s.words[i] = []rune(strings.Repeat(string(Blank), len([]rune(w))))
	}
	return s
}

// NewFilled returns slots holding words.
func NewFilled(valid ValidChars, words []string) *State {
	s := &State{valid: valid, words: make([][]rune, len(words))}
	for i, w := range words {
		s.words[i] = []rune(w)
	}
	return s
}

// FromArray restores words saved by MarshalArray. The result is blank if
// the word count, a word length or any character does not fit solution.
func FromArray(a []any, valid ValidChars, solution []string) *State {
	if len(a) != len(solution) {
		return NewBlank(valid, solution)
	}
	s := &State{valid: valid, words: make([][]rune, len(a))}
	for i, v := range a {
		w, ok := save.ToString(v)
		word := []rune(w)
		if !ok || len(word) != len([]rune(solution[i])) {
			return NewBlank(valid, solution)
		}
		for _, ch := range word {
			if ch != Blank && !valid.Accepts(ch) {
				return NewBlank(valid, solution)
			}
		}
		s.words[i] = []rune(strings.ToUpper(w))
	}
	return s
}

func (s *State) ValidChars() ValidChars { return s.valid }

func (s *State) NumWords() int { return len(s.words) }

// Word returns slot i as a string, blanks included.
func (s *State) Word(i int) string {
	if i < 0 || i >= len(s.words) {
		return ""
	}
	return string(s.words[i])
}

// WordLen returns the length of slot i.
func (s *State) WordLen(i int) int {
	if i < 0 || i >= len(s.words) {
		return 0
	}
	return len(s.words[i])
}

// SetChar writes ch at position idx of word i and returns the character it
// replaced. Blank erases. Invalid positions or characters are rejected.
func (s *State) SetChar(i, idx int, ch rune) (rune, bool) {
	if i < 0 || i >= len(s.words) || idx < 0 || idx >= len(s.words[i]) {
		return Blank, false
	}
	if ch != Blank {
		if !s.valid.Accepts(ch) {
			return Blank, false
		}
		ch = unicode.ToUpper(ch)
	}
	prev := s.words[i][idx]
	s.words[i][idx] = ch
	return prev, true
}

// WordsAre reports whether the slots spell exactly solution.
func (s *State) WordsAre(solution []string) bool {
	if len(solution) != len(s.words) {
		return false
	}
	for i, w := range solution {
		if string(s.words[i]) != w {
			return false
		}
	}
	return true
}

// CanReset reports whether any cell is filled.
func (s *State) CanReset() bool {
	for _, w := range s.words {
		for _, ch := range w {
			if ch != Blank {
				return true
			}
		}
	}
	return false
}

// Reset blanks every cell.
func (s *State) Reset() {
	for _, w := range s.words {
		for j := range w {
			w[j] = Blank
		}
	}
}

// MarshalArray encodes the slots as strings.
func (s *State) MarshalArray() []any {
	out := make([]any, len(s.words))
	for i, w := range s.words {
		out[i] = string(w)
	}
	return out
}

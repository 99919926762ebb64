package puzzles

import (
	"github.com/vovakirdan/tui-syzygy/internal/crossword"
	"github.com/vovakirdan/tui-syzygy/internal/save"
)

const wordsKey = "words"

// LevelUpWords is the solution of Level Up.
var LevelUpWords = []string{
	"COM#", "NON+ED", "*TLE", ":IZE", "CU*D",
	"UN,N", ":EL", "B@ON", "SUR+", ",NDS",
}

// LevelUp is the state of Level Up.
type LevelUp struct {
	progress
	words *crossword.State
}

func NewLevelUp() *LevelUp {
	return &LevelUp{words: crossword.NewBlank(crossword.LettersAndSymbols, LevelUpWords)}
}

// LevelUpFromTable decodes a state saved by MarshalTable.
func LevelUpFromTable(t save.Table) *LevelUp {
	s := &LevelUp{}
	s.access = save.AccessFromTable(t)
	if s.access == save.Solved {
		s.words = crossword.NewFilled(crossword.LettersAndSymbols, LevelUpWords)
	} else {
		s.words = crossword.FromArray(save.ArrayAt(t, wordsKey), crossword.LettersAndSymbols, LevelUpWords)
	}
	return s
}

func (s *LevelUp) Location() save.Location     { return save.LevelUp }
func (s *LevelUp) Crossword() *crossword.State { return s.words }
func (s *LevelUp) CanReset() bool              { return s.words.CanReset() }
func (s *LevelUp) Reset()                      { s.words.Reset() }

// SetChar writes one character and checks whether the crossword is done.
// It returns the character that was replaced.
func (s *LevelUp) SetChar(word, index int, ch rune) (rune, bool) {
	prev, ok := s.words.SetChar(word, index, ch)
	if ok {
		s.CheckIfSolved()
	}
	return prev, ok
}

// CheckIfSolved marks the puzzle solved if every word is correct.
func (s *LevelUp) CheckIfSolved() {
	if s.words.WordsAre(LevelUpWords) {
		s.markSolved()
	}
}

func (s *LevelUp) Replay() {
	s.beginReplay()
	s.words.Reset()
}

func (s *LevelUp) Solve() {
	s.markSolved()
	s.words = crossword.NewFilled(crossword.LettersAndSymbols, LevelUpWords)
}

func (s *LevelUp) MarshalTable() save.Table {
	t := s.table()
	if !s.IsSolved() && s.words.CanReset() {
		t[wordsKey] = s.words.MarshalArray()
	}
	return t
}

package puzzles

import (
	"github.com/vovakirdan/tui-syzygy/internal/column"
	"github.com/vovakirdan/tui-syzygy/internal/save"
)

const columnsKey = "columns"

// IcyEmColumns is the linkage table of Column as Icy `Em. Columns 0-6 form
// the top row and 7-13 the bottom row; each pair shares its links.
var IcyEmColumns = []column.Spec{
	{Word: "ELF", Initial: -1, Solved: 1, Links: links(0, 1, 7, 1, 1, 1, 8, 1, 6, -1, 13, -1)},
	{Word: "HIDE", Initial: -2, Solved: 1, Links: links(0, -1, 7, -1, 1, 1, 8, 1, 2, -1, 9, -1)},
	{Word: "SCAR", Initial: -2, Solved: 0, Links: links(2, 1, 9, 1, 4, 1, 11, 1)},
	{Word: "RUNS", Initial: -2, Solved: 2, Links: links(0, -1, 7, -1, 3, 1, 10, 1, 6, -1, 13, -1)},
	{Word: "FLED", Initial: -2, Solved: 2, Links: links(2, 1, 9, 1, 4, 1, 11, 1)},
	{Word: "BURN", Initial: -2, Solved: 3, Links: links(4, -1, 11, -1, 5, 1, 12, 1, 6, -1, 13, -1)},
	{Word: "SOL", Initial: -1, Solved: 1, Links: links(0, -1, 7, -1, 5, 1, 12, 1, 6, 1, 13, 1)},

	{Word: "IDS", Initial: -1, Solved: 1, Links: links(0, 1, 7, 1, 1, 1, 8, 1, 6, -1, 13, -1)},
	{Word: "LIES", Initial: -1, Solved: 1, Links: links(0, -1, 7, -1, 1, 1, 8, 1, 2, -1, 9, -1)},
	{Word: "SCAM", Initial: -1, Solved: 0, Links: links(2, 1, 9, 1, 4, 1, 11, 1)},
	{Word: "BLUR", Initial: -1, Solved: 2, Links: links(0, -1, 7, -1, 3, 1, 10, 1, 6, -1, 13, -1)},
	{Word: "FAKE", Initial: -1, Solved: 2, Links: links(2, 1, 9, 1, 4, 1, 11, 1)},
	{Word: "CODE", Initial: -1, Solved: 3, Links: links(4, -1, 11, -1, 5, 1, 12, 1, 6, -1, 13, -1)},
	{Word: "SPY", Initial: -1, Solved: 1, Links: links(0, -1, 7, -1, 5, 1, 12, 1, 6, 1, 13, 1)},
}

// links builds a linkage list from (index, factor) pairs.
func links(pairs ...int) []column.Link {
	out := make([]column.Link, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, column.Link{Index: pairs[i], Factor: pairs[i+1]})
	}
	return out
}

// IcyEm is the state of Column as Icy `Em.
type IcyEm struct {
	progress
	columns *column.Columns
}

func NewIcyEm() *IcyEm {
	return &IcyEm{columns: column.New(IcyEmColumns)}
}

// IcyEmFromTable decodes a state saved by MarshalTable.
func IcyEmFromTable(t save.Table) *IcyEm {
	s := NewIcyEm()
	s.access = save.AccessFromTable(t)
	s.columns.SetFromArray(save.ArrayAt(t, columnsKey))
	if s.access == save.Solved {
		s.columns.Solve()
	}
	return s
}

func (s *IcyEm) Location() save.Location  { return save.ColumnAsIcyEm }
func (s *IcyEm) Columns() *column.Columns { return s.columns }
func (s *IcyEm) CanReset() bool           { return s.columns.CanReset() }
func (s *IcyEm) Reset()                   { s.columns.Reset() }

// RotateColumn rotates column i and marks the puzzle solved when every
// column lines up.
func (s *IcyEm) RotateColumn(i, by int) bool {
	if !s.columns.RotateColumn(i, by) {
		return false
	}
	if s.columns.IsSolved() {
		s.markSolved()
	}
	return true
}

func (s *IcyEm) Replay() {
	s.beginReplay()
	s.columns.Reset()
}

func (s *IcyEm) Solve() {
	s.markSolved()
	s.columns.Solve()
}

func (s *IcyEm) MarshalTable() save.Table {
	t := s.table()
	if !s.IsSolved() && s.columns.CanReset() {
		t[columnsKey] = s.columns.MarshalArray()
	}
	return t
}

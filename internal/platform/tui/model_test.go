package tui

import (
	"io"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-syzygy/internal/core"
	_ "github.com/vovakirdan/tui-syzygy/internal/games/levelup"
	_ "github.com/vovakirdan/tui-syzygy/internal/games/wrecked"
	"github.com/vovakirdan/tui-syzygy/internal/registry"
	"github.com/vovakirdan/tui-syzygy/internal/save"
	"github.com/vovakirdan/tui-syzygy/internal/save/puzzles"
	"github.com/vovakirdan/tui-syzygy/internal/storage"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newSession(t *testing.T) *Session {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return &Session{
		Store:  store,
		Slot:   "test",
		Game:   puzzles.NewGame(),
		Logger: log.New(io.Discard),
	}
}

func TestKeyMapInput(t *testing.T) {
	keys := DefaultKeyMap()
	tests := []struct {
		name string
		msg  tea.KeyMsg
		text bool
		want core.Input
		ok   bool
	}{
		{"arrow", tea.KeyMsg{Type: tea.KeyUp}, false, core.In(core.ActionUp), true},
		{"vim push", runes("L"), false, core.In(core.ActionPushRight), true},
		{"shift arrow", tea.KeyMsg{Type: tea.KeyShiftLeft}, false, core.In(core.ActionPushLeft), true},
		{"undo", runes("u"), false, core.In(core.ActionUndo), true},
		{"typed undo key", runes("u"), true, core.Typed('u'), true},
		{"ctrl undo in text", tea.KeyMsg{Type: tea.KeyCtrlZ}, true, core.In(core.ActionUndo), true},
		{"erase", tea.KeyMsg{Type: tea.KeyBackspace}, true, core.In(core.ActionErase), true},
		{"back is not an input", tea.KeyMsg{Type: tea.KeyEsc}, false, core.Input{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := keys.Input(tt.msg, tt.text)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSolveIsRecordedAndSaved(t *testing.T) {
	s := newSession(t)
	w := s.Game.Wrecked
	w.Solve()
	require.True(t, w.Grid().ShiftTiles(core.West, 0))
	w.SetAccess(save.Visited)

	p, err := registry.Create(save.WreckedAngle.Key(), s.Game)
	require.NoError(t, err)
	m := NewModel(p, s, core.DefaultConfig())

	next, _ := m.Update(runes("L"))
	m = next.(Model)
	assert.True(t, m.State().Solved)

	entries, err := s.Store.SolveHistory(save.WreckedAngle.Key(), 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 1, entries[0].Moves)
	assert.Equal(t, "test", entries[0].Slot)

	loaded, err := s.Store.LoadState("test", s.Logger)
	require.NoError(t, err)
	assert.True(t, loaded.IsSolved(save.WreckedAngle))
}

func TestTextPuzzleTypesQ(t *testing.T) {
	s := newSession(t)
	p, err := registry.Create(save.LevelUp.Key(), s.Game)
	require.NoError(t, err)
	m := NewModel(p, s, core.DefaultConfig())

	next, _ := m.Update(runes("q"))
	m = next.(Model)
	assert.False(t, m.BackToMenu(), "q is typed into the crossword")
	assert.Equal(t, "Q   ", s.Game.LevelUp.Crossword().Word(0))

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, next.(Model).BackToMenu())
}

func TestMenuRefusesLockedPuzzle(t *testing.T) {
	s := newSession(t)
	m := NewMenuModel(s, 80, 24)
	for i, item := range m.items {
		if item.Location == save.WreckedAngle {
			m.cursor = i
		}
	}
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)
	assert.Nil(t, m.Selected())
	assert.Contains(t, m.message, "Prolog")

	s.Game.Puzzle(save.Prolog).Solve()
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)
	require.NotNil(t, m.Selected())
	assert.Equal(t, save.WreckedAngle, m.Selected().Location)
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawTextColored(0, 0, "abc", core.ColorGreen)
	s.DrawText(3, 0, "def")
	out := RenderScreen(s)
	assert.Contains(t, out, "abc")
	assert.Contains(t, out, "def")
}

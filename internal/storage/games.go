package storage

import (
	"errors"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-syzygy/internal/save/puzzles"
)

// LoadState loads the game in slot. A missing slot starts a new game; an
// unreadable document is logged and also starts a new game, so a damaged
// save never locks a player out.
func (s *Store) LoadState(slot string, logger *log.Logger) (*puzzles.Game, error) {
	doc, err := s.LoadGame(slot)
	if errors.Is(err, ErrNoSave) {
		logger.Debug("no save found, starting new game", "slot", slot)
		return puzzles.NewGame(), nil
	}
	if err != nil {
		return nil, err
	}
	game, err := puzzles.Decode(doc)
	if err != nil {
		logger.Warn("save slot unreadable, starting new game", "slot", slot, "error", err)
		return puzzles.NewGame(), nil
	}
	return game, nil
}

// SaveState encodes game and stores it in slot.
func (s *Store) SaveState(slot string, game *puzzles.Game) error {
	doc, err := game.Encode()
	if err != nil {
		return err
	}
	return s.SaveGame(slot, doc)
}

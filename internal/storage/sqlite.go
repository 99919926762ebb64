// Package storage provides SQLite-based persistence for save slots and the
// solve history. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrNoSave is returned when a save slot does not exist.
var ErrNoSave = errors.New("storage: no such save slot")

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// SlotInfo describes one stored save slot.
type SlotInfo struct {
	Slot      string
	UpdatedAt time.Time
}

// SolveEntry is one recorded puzzle completion.
type SolveEntry struct {
	ID        int64
	Slot      string
	Location  string
	Moves     int
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS saves (
			slot TEXT PRIMARY KEY,
			document TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS solves (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			slot TEXT NOT NULL,
			location TEXT NOT NULL,
			moves INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_solves_location ON solves(location);
		CREATE INDEX IF NOT EXISTS idx_solves_best ON solves(location, moves ASC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveGame stores doc in slot, replacing any previous document.
func (s *Store) SaveGame(slot string, doc []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO saves (slot, document, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(slot) DO UPDATE SET document = excluded.document, updated_at = CURRENT_TIMESTAMP`,
		slot, string(doc),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save game: %w", err)
	}
	return nil
}

// LoadGame returns the document stored in slot, or ErrNoSave.
func (s *Store) LoadGame(slot string) ([]byte, error) {
	var doc string
	err := s.db.QueryRow("SELECT document FROM saves WHERE slot = ?", slot).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoSave
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot load game: %w", err)
	}
	return []byte(doc), nil
}

// DeleteGame removes a slot. Deleting a missing slot returns ErrNoSave.
func (s *Store) DeleteGame(slot string) error {
	result, err := s.db.Exec("DELETE FROM saves WHERE slot = ?", slot)
	if err != nil {
		return fmt.Errorf("storage: cannot delete game: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot delete game: %w", err)
	}
	if n == 0 {
		return ErrNoSave
	}
	return nil
}

// ListSlots returns every save slot, most recently updated first.
func (s *Store) ListSlots() ([]SlotInfo, error) {
	rows, err := s.db.Query("SELECT slot, updated_at FROM saves ORDER BY updated_at DESC, slot")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot list slots: %w", err)
	}
	defer rows.Close()

	var slots []SlotInfo
	for rows.Next() {
		var info SlotInfo
		var updatedAt any
		if err := rows.Scan(&info.Slot, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		info.UpdatedAt = parseTime(updatedAt)
		slots = append(slots, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return slots, nil
}

// RecordSolve records that slot solved location in the given number of
// moves. Returns the ID of the inserted record.
func (s *Store) RecordSolve(slot, location string, moves int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO solves (slot, location, moves) VALUES (?, ?, ?)",
		slot, location, moves,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record solve: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// SolveHistory returns up to limit solves of location, newest first.
// An empty location returns solves of every puzzle.
func (s *Store) SolveHistory(location string, limit int) ([]SolveEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, slot, location, moves, created_at
		 FROM solves
		 WHERE ? = '' OR location = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		location, location, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solves: %w", err)
	}
	defer rows.Close()

	var entries []SolveEntry
	for rows.Next() {
		var e SolveEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Slot, &e.Location, &e.Moves, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// BestSolve returns the fewest moves anyone solved location in.
// Returns 0 if it was never solved.
func (s *Store) BestSolve(location string) (int, error) {
	var moves sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MIN(moves) FROM solves WHERE location = ?",
		location,
	).Scan(&moves)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best solve: %w", err)
	}

	if !moves.Valid {
		return 0, nil
	}

	return int(moves.Int64), nil
}

// ClearSolves deletes the solve history of one slot.
func (s *Store) ClearSolves(slot string) error {
	_, err := s.db.Exec("DELETE FROM solves WHERE slot = ?", slot)
	if err != nil {
		return fmt.Errorf("storage: cannot clear solves: %w", err)
	}
	return nil
}

// PuzzleStats contains aggregated solve statistics for one location.
type PuzzleStats struct {
	Location    string
	Solves      int
	FewestMoves int
	AvgMoves    float64
	LastSolved  time.Time
}

// Stats retrieves statistics for every location that has been solved.
func (s *Store) Stats() (map[string]*PuzzleStats, error) {
	rows, err := s.db.Query(
		`SELECT location, COUNT(*), MIN(moves), AVG(moves), MAX(created_at)
		 FROM solves
		 GROUP BY location`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*PuzzleStats)
	for rows.Next() {
		var ps PuzzleStats
		var lastSolved any
		if err := rows.Scan(&ps.Location, &ps.Solves, &ps.FewestMoves, &ps.AvgMoves, &lastSolved); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		ps.LastSolved = parseTime(lastSolved)
		stats[ps.Location] = &ps
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// parseTime handles both time.Time and string DATETIME values.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

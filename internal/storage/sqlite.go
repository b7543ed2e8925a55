// Package storage provides SQLite-based persistence for match replays.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for replay persistence.
type Store struct {
	db *sql.DB
}

// ReplayEntry represents one persisted match replay. Data holds the
// encoded input trace (see internal/replay); the remaining fields are
// metadata for listing replays without decoding them.
type ReplayEntry struct {
	ID         int64
	Mode       string
	Difficulty string
	Seed       int64
	TickRate   int
	Ticks      int
	LeftScore  int
	RightScore int
	Winner     string
	Data       []byte
	CreatedAt  time.Time
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

	// Create parent directories
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
		CREATE TABLE IF NOT EXISTS replays (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			mode TEXT NOT NULL,
			difficulty TEXT NOT NULL,
			seed INTEGER NOT NULL,
			tick_rate INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			left_score INTEGER NOT NULL DEFAULT 0,
			right_score INTEGER NOT NULL DEFAULT 0,
			winner TEXT NOT NULL DEFAULT '',
			data BLOB NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_replays_created ON replays(created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_replays_mode ON replays(mode);
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

// SaveReplay records a finished match.
// Returns the ID of the inserted record.
func (s *Store) SaveReplay(e ReplayEntry) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO replays
		 (mode, difficulty, seed, tick_rate, ticks, left_score, right_score, winner, data)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Mode, e.Difficulty, e.Seed, e.TickRate, e.Ticks,
		e.LeftScore, e.RightScore, e.Winner, e.Data,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save replay: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// Replays retrieves the most recent replays, newest first. The input
// traces are not loaded; use ReplayByID to fetch a full replay.
func (s *Store) Replays(limit int) ([]ReplayEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, mode, difficulty, seed, tick_rate, ticks, left_score, right_score, winner, created_at
		 FROM replays
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query replays: %w", err)
	}
	defer rows.Close()

	var entries []ReplayEntry
	for rows.Next() {
		var e ReplayEntry
		var createdAt any
		if err := rows.Scan(
			&e.ID, &e.Mode, &e.Difficulty, &e.Seed, &e.TickRate,
			&e.Ticks, &e.LeftScore, &e.RightScore, &e.Winner, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseCreatedAt(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// ReplayByID retrieves a full replay, input trace included.
// Returns nil if no replay with the given ID exists.
func (s *Store) ReplayByID(id int64) (*ReplayEntry, error) {
	var e ReplayEntry
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, mode, difficulty, seed, tick_rate, ticks, left_score, right_score, winner, data, created_at
		 FROM replays
		 WHERE id = ?`,
		id,
	).Scan(
		&e.ID, &e.Mode, &e.Difficulty, &e.Seed, &e.TickRate,
		&e.Ticks, &e.LeftScore, &e.RightScore, &e.Winner, &e.Data, &createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query replay: %w", err)
	}

	e.CreatedAt = parseCreatedAt(createdAt)
	return &e, nil
}

// DeleteReplay removes a replay by ID.
func (s *Store) DeleteReplay(id int64) error {
	_, err := s.db.Exec("DELETE FROM replays WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete replay: %w", err)
	}
	return nil
}

// ClearReplays deletes all stored replays.
func (s *Store) ClearReplays() error {
	_, err := s.db.Exec("DELETE FROM replays")
	if err != nil {
		return fmt.Errorf("storage: cannot clear replays: %w", err)
	}
	return nil
}

// parseCreatedAt handles the two shapes the driver returns for
// DATETIME columns.
func parseCreatedAt(v any) time.Time {
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

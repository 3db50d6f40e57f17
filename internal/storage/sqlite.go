// Package storage provides SQLite-based persistence for the scoreboard
// ledger and the saved-match slot.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/rps-arena/internal/match"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// PlayerStats is one player's cumulative record across matches.
type PlayerStats struct {
	Name          string
	MatchesPlayed int
	MatchesWon    int
	RoundsWon     int
}

// WinRate returns matches won over matches played, 0 for a new player.
func (p PlayerStats) WinRate() float64 {
	if p.MatchesPlayed == 0 {
		return 0
	}
	return float64(p.MatchesWon) / float64(p.MatchesPlayed)
}

// SortKey selects the leaderboard ordering.
type SortKey string

const (
	SortByMatchesWon SortKey = "matches_won"
	SortByWinRate    SortKey = "win_rate"
	SortByRoundsWon  SortKey = "rounds_won"
)

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
		CREATE TABLE IF NOT EXISTS players (
			name TEXT PRIMARY KEY,
			matches_played INTEGER NOT NULL DEFAULT 0,
			matches_won INTEGER NOT NULL DEFAULT 0,
			rounds_won INTEGER NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS saved_match (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			snapshot BLOB NOT NULL,
			saved_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
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

// RecordMatch merges a completed match into the ledger: both players'
// matches_played and rounds_won always advance; matches_won advances for
// the winner only, so a tied match credits neither.
func (s *Store) RecordMatch(res match.Result) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	upsert := `
		INSERT INTO players (name, matches_played, matches_won, rounds_won)
		VALUES (?, 1, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			matches_played = matches_played + 1,
			matches_won = matches_won + excluded.matches_won,
			rounds_won = rounds_won + excluded.rounds_won
	`

	p1Won, p2Won := 0, 0
	switch res.WinnerName {
	case res.Player1:
		p1Won = 1
	case res.Player2:
		p2Won = 1
	}

	if _, err := tx.Exec(upsert, res.Player1, p1Won, res.P1RoundWins); err != nil {
		return fmt.Errorf("storage: cannot record result for %s: %w", res.Player1, err)
	}
	if _, err := tx.Exec(upsert, res.Player2, p2Won, res.P2RoundWins); err != nil {
		return fmt.Errorf("storage: cannot record result for %s: %w", res.Player2, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit match result: %w", err)
	}
	return nil
}

// Player retrieves one player's stats. Returns nil if the player has
// never finished a match.
func (s *Store) Player(name string) (*PlayerStats, error) {
	var p PlayerStats
	err := s.db.QueryRow(
		"SELECT name, matches_played, matches_won, rounds_won FROM players WHERE name = ?",
		name,
	).Scan(&p.Name, &p.MatchesPlayed, &p.MatchesWon, &p.RoundsWon)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query player: %w", err)
	}
	return &p, nil
}

// Leaderboard retrieves all players ordered by the given key, best first.
func (s *Store) Leaderboard(key SortKey, limit int) ([]PlayerStats, error) {
	if limit <= 0 {
		limit = 50
	}

	var order string
	switch key {
	case SortByWinRate:
		order = "CAST(matches_won AS REAL) / MAX(matches_played, 1) DESC, matches_won DESC"
	case SortByRoundsWon:
		order = "rounds_won DESC, matches_won DESC"
	default:
		order = "matches_won DESC, rounds_won DESC"
	}

	rows, err := s.db.Query(
		`SELECT name, matches_played, matches_won, rounds_won
		 FROM players
		 ORDER BY `+order+`, name ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query leaderboard: %w", err)
	}
	defer rows.Close()

	var players []PlayerStats
	for rows.Next() {
		var p PlayerStats
		if err := rows.Scan(&p.Name, &p.MatchesPlayed, &p.MatchesWon, &p.RoundsWon); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		players = append(players, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return players, nil
}

// SaveMatch stores the serialized match snapshot in the single resume
// slot, replacing any previous save.
func (s *Store) SaveMatch(snapshot []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO saved_match (id, snapshot, saved_at) VALUES (1, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET snapshot = excluded.snapshot, saved_at = excluded.saved_at`,
		snapshot, time.Now().UTC().Format("2006-01-02 15:04:05"),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save match: %w", err)
	}
	return nil
}

// LoadMatch retrieves the saved snapshot, or nil if no match is saved.
func (s *Store) LoadMatch() ([]byte, error) {
	var data []byte
	err := s.db.QueryRow("SELECT snapshot FROM saved_match WHERE id = 1").Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot load saved match: %w", err)
	}
	return data, nil
}

// HasSavedMatch reports whether a resume slot exists.
func (s *Store) HasSavedMatch() (bool, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM saved_match").Scan(&n); err != nil {
		return false, fmt.Errorf("storage: cannot query saved match: %w", err)
	}
	return n > 0, nil
}

// ClearSavedMatch removes the resume slot. Clearing an empty slot is
// not an error.
func (s *Store) ClearSavedMatch() error {
	if _, err := s.db.Exec("DELETE FROM saved_match"); err != nil {
		return fmt.Errorf("storage: cannot clear saved match: %w", err)
	}
	return nil
}

// Package storage provides SQLite-based persistence for finished rounds.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
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

const sqliteTime = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db *sql.DB
}

// ScoreRecord is one finished round.
type ScoreRecord struct {
	ID        int64
	RoundID   string // unique per round, generated by the platform
	Layout    string // board layout key, see LayoutKey
	Player    string
	Score     int
	Moves     int
	CreatedAt time.Time
}

// LayoutStats contains aggregated statistics for one layout.
type LayoutStats struct {
	Layout     string
	Rounds     int
	HighScore  int
	AvgScore   float64
	TotalMoves int64
	LastPlayed time.Time
}

// LayoutKey names a board layout, e.g. "10x5" for a 10x10 board with
// five colors. Scores from different layouts are never compared.
func LayoutKey(width, colors int) string {
	return fmt.Sprintf("%dx%d", width, colors)
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
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			round_id TEXT NOT NULL UNIQUE,
			layout TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			score INTEGER NOT NULL,
			moves INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(layout, score DESC, moves ASC);
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

// SaveScore records a finished round and returns the ID of the new row.
// Saving the same round twice fails on the unique round ID.
func (s *Store) SaveScore(rec ScoreRecord) (int64, error) {
	if rec.RoundID == "" || rec.Layout == "" {
		return 0, errors.New("storage: score needs a round ID and a layout")
	}

	result, err := s.db.Exec(
		"INSERT INTO scores (round_id, layout, player, score, moves) VALUES (?, ?, ?, ?, ?)",
		rec.RoundID, rec.Layout, rec.Player, rec.Score, rec.Moves,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the best rounds for a layout: highest score first,
// fewer moves breaking ties, earlier rounds breaking the rest.
func (s *Store) TopScores(layout string, limit int) ([]ScoreRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, round_id, layout, player, score, moves, created_at
		 FROM scores
		 WHERE layout = ?
		 ORDER BY score DESC, moves ASC, id ASC
		 LIMIT ?`,
		layout, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var records []ScoreRecord
	for rows.Next() {
		var r ScoreRecord
		var createdAt any
		if err := rows.Scan(&r.ID, &r.RoundID, &r.Layout, &r.Player, &r.Score, &r.Moves, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// HighScore returns the highest score for a layout, or 0 if none exist.
func (s *Store) HighScore(layout string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE layout = ?",
		layout,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// Stats retrieves aggregated statistics for a layout.
func (s *Store) Stats(layout string) (LayoutStats, error) {
	stats := LayoutStats{Layout: layout}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(moves), 0), MAX(created_at)
		 FROM scores WHERE layout = ?`,
		layout,
	).Scan(&stats.Rounds, &stats.HighScore, &stats.AvgScore, &stats.TotalMoves, &lastPlayed)
	if err != nil {
		return stats, fmt.Errorf("storage: cannot get layout stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// Layouts lists every layout that has at least one score, sorted by name.
func (s *Store) Layouts() ([]string, error) {
	rows, err := s.db.Query("SELECT DISTINCT layout FROM scores ORDER BY layout")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot list layouts: %w", err)
	}
	defer rows.Close()

	var layouts []string
	for rows.Next() {
		var l string
		if err := rows.Scan(&l); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		layouts = append(layouts, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return layouts, nil
}

// ClearScores deletes all scores for a layout and returns how many went.
func (s *Store) ClearScores(layout string) (int64, error) {
	res, err := s.db.Exec("DELETE FROM scores WHERE layout = ?", layout)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count cleared scores: %w", err)
	}
	return n, nil
}

// parseTime handles both time.Time and string datetime columns.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse(sqliteTime, v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

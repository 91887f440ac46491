// Package storage provides the high-score board for a running process.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// The database lives only in memory: scores survive from round to round
// and are shared between SSH sessions, but are gone when the process exits.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Board manages the in-memory SQLite database holding round results.
type Board struct {
	db *sql.DB
}

// ScoreEntry represents a single finished round.
type ScoreEntry struct {
	ID        int64
	Player    string
	Score     int
	Caught    int
	Missed    int
	CreatedAt time.Time
}

// Open creates an empty in-memory board.
func Open() (*Board, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Every connection to :memory: gets its own database, so pin the pool
	// to a single connection that is never recycled.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	board := &Board{db: db}

	if err := board.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return board, nil
}

// migrate creates the schema.
func (b *Board) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player TEXT NOT NULL,
			score INTEGER NOT NULL,
			caught INTEGER NOT NULL DEFAULT 0,
			missed INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(score DESC);
		CREATE INDEX IF NOT EXISTS idx_scores_player ON scores(player, score DESC);
	`

	_, err := b.db.Exec(schema)
	return err
}

// Close closes the database connection, discarding all scores.
func (b *Board) Close() error {
	if b.db != nil {
		return b.db.Close()
	}
	return nil
}

// SaveScore records a finished round for the given player.
// Returns the ID of the inserted record.
func (b *Board) SaveScore(player string, score, caught, missed int) (int64, error) {
	result, err := b.db.Exec(
		"INSERT INTO scores (player, score, caught, missed) VALUES (?, ?, ?, ?)",
		player, score, caught, missed,
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

// TopScores retrieves the top N rounds across all players, best first.
// Ties are broken by the earlier round.
func (b *Board) TopScores(limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := b.db.Query(
		`SELECT id, player, score, caught, missed, created_at
		 FROM scores
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Player, &e.Score, &e.Caught, &e.Missed, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// The driver may hand back either time.Time or a string
		switch v := createdAt.(type) {
		case time.Time:
			e.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.CreatedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the best score on the board, or 0 if it is empty.
func (b *Board) HighScore() (int, error) {
	var high sql.NullInt64
	if err := b.db.QueryRow("SELECT MAX(score) FROM scores").Scan(&high); err != nil {
		return 0, fmt.Errorf("storage: cannot get high score: %w", err)
	}
	return int(high.Int64), nil
}

// PlayerBest returns the best score of one player, or 0 if they have none.
func (b *Board) PlayerBest(player string) (int, error) {
	var high sql.NullInt64
	err := b.db.QueryRow("SELECT MAX(score) FROM scores WHERE player = ?", player).Scan(&high)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get player best: %w", err)
	}
	return int(high.Int64), nil
}

// Rounds returns the number of recorded rounds.
func (b *Board) Rounds() (int, error) {
	var n int
	if err := b.db.QueryRow("SELECT COUNT(*) FROM scores").Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: cannot count rounds: %w", err)
	}
	return n, nil
}

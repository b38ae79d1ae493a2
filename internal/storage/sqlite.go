// Package storage provides SQLite-based persistence for Onet runs and scores.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const (
	// sqliteTime is the layout SQLite uses for CURRENT_TIMESTAMP.
	sqliteTime = "2006-01-02 15:04:05"

	// entryColumns is the column list scanEntry reads, in order.
	entryColumns = "id, run_id, game_id, player, score, level, created_at"
)

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single finished run.
type ScoreEntry struct {
	ID        int64
	RunID     string
	GameID    string
	Player    string
	Score     int
	Level     int // Highest level reached (1-based)
	CreatedAt time.Time
}

// PlayerBest is one row of the per-player leaderboard.
type PlayerBest struct {
	Player    string
	Score     int
	Level     int
	Runs      int
	CreatedAt time.Time
}

// NewRunID returns a fresh identifier for a run or session.
func NewRunID() string {
	return uuid.New().String()
}

// Open opens the scores database at path, creating the file, its parent
// directories and the schema as needed. A leading ~ is the home directory.
func Open(path string) (*Store, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory for %s: %w", path, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	s := &Store{db: db}
	if err := db.Ping(); err != nil {
		s.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}
	if err := s.migrate(); err != nil {
		s.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return s, nil
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS onet_scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			game_id TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			score INTEGER NOT NULL,
			level INTEGER NOT NULL DEFAULT 1,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_onet_scores_top ON onet_scores(game_id, score DESC);
		CREATE INDEX IF NOT EXISTS idx_onet_scores_player ON onet_scores(game_id, player);
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

// SaveScore records a finished run. A missing RunID is generated.
// Saving the same RunID twice is an error, so a run is stored at most once.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(e ScoreEntry) (int64, error) {
	if e.RunID == "" {
		e.RunID = NewRunID()
	}
	if e.Level < 1 {
		e.Level = 1
	}

	result, err := s.db.Exec(
		"INSERT INTO onet_scores (run_id, game_id, player, score, level) VALUES (?, ?, ?, ?, ?)",
		e.RunID, e.GameID, e.Player, e.Score, e.Level,
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

// TopScores retrieves the top N runs for the given game.
// Results are ordered by score descending, older runs first on ties.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	return s.queryEntries(
		"WHERE game_id = ? ORDER BY score DESC, id ASC LIMIT ?", gameID, limit)
}

// AllScores returns every run of the game in TopScores order.
func (s *Store) AllScores(gameID string) ([]ScoreEntry, error) {
	return s.queryEntries("WHERE game_id = ? ORDER BY score DESC, id ASC", gameID)
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(r rowScanner) (ScoreEntry, error) {
	var e ScoreEntry
	var createdAt any
	err := r.Scan(&e.ID, &e.RunID, &e.GameID, &e.Player, &e.Score, &e.Level, &createdAt)
	e.CreatedAt = parseTime(createdAt)
	return e, err
}

// queryEntries selects the runs matching the clause that follows FROM.
func (s *Store) queryEntries(clause string, args ...any) ([]ScoreEntry, error) {
	rows, err := s.db.Query("SELECT "+entryColumns+" FROM onet_scores "+clause, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// Leaderboard returns each player's best run for the given game,
// best players first.
func (s *Store) Leaderboard(gameID string, limit int) ([]PlayerBest, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT player, MAX(score), COUNT(*), MAX(created_at)
		 FROM onet_scores
		 WHERE game_id = ?
		 GROUP BY player
		 ORDER BY MAX(score) DESC, player ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query leaderboard: %w", err)
	}
	defer rows.Close()

	var board []PlayerBest
	for rows.Next() {
		var p PlayerBest
		var lastPlayed any
		if err := rows.Scan(&p.Player, &p.Score, &p.Runs, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan leaderboard row: %w", err)
		}
		p.CreatedAt = parseTime(lastPlayed)
		board = append(board, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	// Level of the best run, looked up separately so ties on score resolve
	// to the earliest run like TopScores does.
	for i := range board {
		err := s.db.QueryRow(
			`SELECT level FROM onet_scores
			 WHERE game_id = ? AND player = ? AND score = ?
			 ORDER BY id ASC LIMIT 1`,
			gameID, board[i].Player, board[i].Score,
		).Scan(&board[i].Level)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot query best level: %w", err)
		}
	}

	return board, nil
}

// HighScore returns the best score of the game, or 0 without runs.
func (s *Store) HighScore(gameID string) (int, error) {
	return s.maxScore("WHERE game_id = ?", gameID)
}

// PlayerHighScore returns the player's best score of the game, or 0 when
// the player has no runs.
func (s *Store) PlayerHighScore(gameID, player string) (int, error) {
	return s.maxScore("WHERE game_id = ? AND player = ?", gameID, player)
}

func (s *Store) maxScore(clause string, args ...any) (int, error) {
	var score sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(score) FROM onet_scores "+clause, args...).Scan(&score); err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	return int(score.Int64), nil
}

// ScoreByRun looks up a run by its ID. It returns nil when no such run exists.
func (s *Store) ScoreByRun(runID string) (*ScoreEntry, error) {
	e, err := scanEntry(s.db.QueryRow(
		"SELECT "+entryColumns+" FROM onet_scores WHERE run_id = ?", runID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	return &e, nil
}

// ClearScores deletes all scores for the given game.
func (s *Store) ClearScores(gameID string) error {
	_, err := s.db.Exec("DELETE FROM onet_scores WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	BestLevel  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

// GetGameStats retrieves aggregated statistics for a specific game.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(MAX(level), 0),
		        COALESCE(AVG(score), 0), COALESCE(SUM(score), 0), MAX(created_at)
		 FROM onet_scores WHERE game_id = ?`,
		gameID,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.BestLevel,
		&stats.AvgScore, &stats.TotalScore, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// parseTime converts a DATETIME column, which the driver may hand back as
// either time.Time or text, to a time.Time. Unknown values become zero.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTime, t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// Package storage provides SQLite-based persistence for the leaderboard.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// MaxEntries is the table cap: submissions beyond the top 100 are pruned.
const MaxEntries = 100

// MaxNameLen is the longest accepted player name, in runes.
const MaxNameLen = 20

// DefaultCharacter is used when a submission names an unknown character.
const DefaultCharacter = "frog"

// Characters lists the playable character skins accepted by the
// leaderboard.
var Characters = []string{"frog", "chick", "fox", "penguin"}

// Entry represents one leaderboard record.
type Entry struct {
	ID        int64
	GameID    string
	Name      string
	Score     int
	Level     int
	Character string
	CreatedAt time.Time
}

// Submission is a score offered for the leaderboard, validated on Submit.
type Submission struct {
	GameID    string
	Name      string
	Score     int
	Level     int
	Character string
	MaxScore  int // highest total the mode can produce
	MaxLevel  int // highest level the mode can reach; 0 disables the cap
}

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
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
		CREATE TABLE IF NOT EXISTS leaderboard (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			name TEXT NOT NULL,
			score INTEGER NOT NULL,
			level INTEGER NOT NULL,
			character TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_leaderboard_game_id ON leaderboard(game_id);
		CREATE INDEX IF NOT EXISTS idx_leaderboard_top ON leaderboard(game_id, score DESC, created_at ASC);
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

// validCharacter reports whether the name is a known character skin.
func validCharacter(name string) bool {
	for _, c := range Characters {
		if c == name {
			return true
		}
	}
	return false
}

// Validate checks a submission against the leaderboard rules. An unknown
// character is not an error; Submit replaces it with the default.
func (sub Submission) Validate() error {
	name := strings.TrimSpace(sub.Name)
	if name == "" {
		return fmt.Errorf("storage: name must not be empty")
	}
	if utf8.RuneCountInString(name) > MaxNameLen {
		return fmt.Errorf("storage: name exceeds %d characters", MaxNameLen)
	}
	if sub.Score < 0 || (sub.MaxScore > 0 && sub.Score > sub.MaxScore) {
		return fmt.Errorf("storage: score %d out of range 0..%d", sub.Score, sub.MaxScore)
	}
	if sub.Level < 1 || (sub.MaxLevel > 0 && sub.Level > sub.MaxLevel) {
		return fmt.Errorf("storage: level %d out of range", sub.Level)
	}
	return nil
}

// Submit validates and records a score, returning the inserted ID and the
// entry's rank within its game (1 is best; earlier submissions win ties).
// The table is pruned back to the top entries afterwards, so a weak score
// on a full board may rank past the cap and be dropped immediately.
func (s *Store) Submit(sub Submission) (int64, int, error) {
	if err := sub.Validate(); err != nil {
		return 0, 0, err
	}
	name := strings.TrimSpace(sub.Name)
	character := sub.Character
	if !validCharacter(character) {
		character = DefaultCharacter
	}

	result, err := s.db.Exec(
		`INSERT INTO leaderboard (game_id, name, score, level, character)
		 VALUES (?, ?, ?, ?, ?)`,
		sub.GameID, name, sub.Score, sub.Level, character,
	)
	if err != nil {
		return 0, 0, fmt.Errorf("storage: cannot save entry: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	rank, err := s.rank(sub.GameID, id)
	if err != nil {
		return 0, 0, err
	}

	if err := s.prune(sub.GameID); err != nil {
		return 0, 0, err
	}

	return id, rank, nil
}

// rank returns the 1-based position of an entry within its game, ordered
// by score descending with earlier submissions breaking ties.
func (s *Store) rank(gameID string, id int64) (int, error) {
	var rank int
	err := s.db.QueryRow(
		`SELECT COUNT(*) + 1 FROM leaderboard a, leaderboard b
		 WHERE b.id = ? AND a.game_id = b.game_id
		   AND (a.score > b.score OR (a.score = b.score AND a.id < b.id))`,
		id,
	).Scan(&rank)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot compute rank: %w", err)
	}
	return rank, nil
}

// prune deletes everything past the top entries for a game.
func (s *Store) prune(gameID string) error {
	_, err := s.db.Exec(
		`DELETE FROM leaderboard WHERE game_id = ? AND id NOT IN (
			SELECT id FROM leaderboard WHERE game_id = ?
			ORDER BY score DESC, id ASC LIMIT ?
		)`,
		gameID, gameID, MaxEntries,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot prune leaderboard: %w", err)
	}
	return nil
}

// Top retrieves the best entries for the given game, ordered by score
// descending with earlier submissions first on ties.
func (s *Store) Top(gameID string, limit int) ([]Entry, error) {
	if limit <= 0 || limit > MaxEntries {
		limit = MaxEntries
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, name, score, level, character, created_at
		 FROM leaderboard
		 WHERE game_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Name, &e.Score, &e.Level, &e.Character, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
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

// HighScore returns the best score recorded for the given game, or 0.
func (s *Store) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM leaderboard WHERE game_id = ?",
		gameID,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

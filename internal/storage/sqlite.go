// Package storage provides SQLite-based persistence for solve records.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for solve records.
type Store struct {
	db *sql.DB
}

// Solve records one solved puzzle.
type Solve struct {
	ID        int64
	GameID    string
	SessionID string // Groups the solves of one play session
	Moves     int
	Ticks     uint64 // Simulation ticks from deal to solve
	Seed      int64  // Replays the same deal with --seed
	CreatedAt time.Time
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID     string
	Solved     int
	BestMoves  int
	AvgMoves   float64
	BestTicks  uint64
	LastPlayed time.Time
}

// NewSessionID returns a fresh random session identifier.
func NewSessionID() string {
	return uuid.NewString()
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath == "" {
		return nil, errors.New("storage: empty database path")
	}

	// Expand ~ to home directory
	if dbPath[0] == '~' {
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
		CREATE TABLE IF NOT EXISTS solves (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			session_id TEXT NOT NULL,
			moves INTEGER NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			seed INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_solves_game_id ON solves(game_id);
		CREATE INDEX IF NOT EXISTS idx_solves_best ON solves(game_id, moves ASC, ticks ASC);
		CREATE INDEX IF NOT EXISTS idx_solves_session ON solves(session_id);
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

// SaveSolve records a solved puzzle and returns the ID of the new row.
func (s *Store) SaveSolve(solve Solve) (int64, error) {
	if solve.GameID == "" {
		return 0, errors.New("storage: solve without game id")
	}
	if solve.Moves <= 0 {
		return 0, fmt.Errorf("storage: solve with %d moves", solve.Moves)
	}

	result, err := s.db.Exec(
		"INSERT INTO solves (game_id, session_id, moves, ticks, seed) VALUES (?, ?, ?, ?, ?)",
		solve.GameID, solve.SessionID, solve.Moves, int64(solve.Ticks), solve.Seed,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save solve: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// BestSolves retrieves the best N solves for the given game.
// Fewer moves rank first; ties go to the faster, then the earlier solve.
func (s *Store) BestSolves(gameID string, limit int) ([]Solve, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.querySolves(
		`SELECT id, game_id, session_id, moves, ticks, seed, created_at
		 FROM solves
		 WHERE game_id = ?
		 ORDER BY moves ASC, ticks ASC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
}

// RecentSolves retrieves the latest N solves for the given game.
func (s *Store) RecentSolves(gameID string, limit int) ([]Solve, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.querySolves(
		`SELECT id, game_id, session_id, moves, ticks, seed, created_at
		 FROM solves
		 WHERE game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, limit,
	)
}

// SessionSolves retrieves every solve of one session, oldest first.
func (s *Store) SessionSolves(sessionID string) ([]Solve, error) {
	return s.querySolves(
		`SELECT id, game_id, session_id, moves, ticks, seed, created_at
		 FROM solves
		 WHERE session_id = ?
		 ORDER BY id ASC`,
		sessionID,
	)
}

func (s *Store) querySolves(query string, args ...any) ([]Solve, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solves: %w", err)
	}
	defer rows.Close()

	var solves []Solve
	for rows.Next() {
		var e Solve
		var ticks int64
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.SessionID, &e.Moves, &ticks, &e.Seed, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Ticks = uint64(ticks)
		e.CreatedAt = parseTime(createdAt)
		solves = append(solves, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return solves, nil
}

// BestMoves returns the fewest moves any solve of the game took.
// ok is false if the game has never been solved.
func (s *Store) BestMoves(gameID string) (moves int, ok bool, err error) {
	var best sql.NullInt64
	err = s.db.QueryRow(
		"SELECT MIN(moves) FROM solves WHERE game_id = ?",
		gameID,
	).Scan(&best)
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot query best moves: %w", err)
	}

	if !best.Valid {
		return 0, false, nil
	}
	return int(best.Int64), true, nil
}

// ClearSolves deletes all solves for the given game.
func (s *Store) ClearSolves(gameID string) error {
	_, err := s.db.Exec("DELETE FROM solves WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear solves: %w", err)
	}
	return nil
}

// Stats retrieves aggregated statistics for a specific game.
func (s *Store) Stats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	var bestTicks int64
	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MIN(moves), 0), COALESCE(AVG(moves), 0),
		        COALESCE(MIN(ticks), 0), MAX(created_at)
		 FROM solves WHERE game_id = ?`,
		gameID,
	).Scan(&stats.Solved, &stats.BestMoves, &stats.AvgMoves, &bestTicks, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}

	stats.BestTicks = uint64(bestTicks)
	stats.LastPlayed = parseTime(lastPlayed)
	return stats, nil
}

// parseTime handles both time.Time and the SQLite text form.
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

// Recorder saves the solves of one play session.
type Recorder struct {
	store     *Store
	gameID    string
	sessionID string
}

// NewRecorder returns a recorder for gameID. A nil store records nothing;
// an empty sessionID gets a fresh one.
func NewRecorder(store *Store, gameID, sessionID string) *Recorder {
	if sessionID == "" {
		sessionID = NewSessionID()
	}
	return &Recorder{store: store, gameID: gameID, sessionID: sessionID}
}

// SessionID returns the session the recorder files solves under.
func (r *Recorder) SessionID() string {
	return r.sessionID
}

// Enabled reports whether solves are persisted.
func (r *Recorder) Enabled() bool {
	return r.store != nil
}

// Record saves one solve. best is true when no earlier solve of the game
// took as few moves.
func (r *Recorder) Record(moves int, ticks uint64, seed int64) (best bool, err error) {
	if r.store == nil {
		return false, nil
	}
	prev, ok, err := r.store.BestMoves(r.gameID)
	if err != nil {
		return false, err
	}
	if _, err := r.store.SaveSolve(Solve{
		GameID:    r.gameID,
		SessionID: r.sessionID,
		Moves:     moves,
		Ticks:     ticks,
		Seed:      seed,
	}); err != nil {
		return false, err
	}
	return !ok || moves < prev, nil
}

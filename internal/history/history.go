// Package history persists score runs in a local SQLite database so
// successive runs can be compared and score regressions caught in CI.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"agentscore/internal/logging"
	"agentscore/internal/scoring"
)

// Run is one persisted scoring run.
type Run struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Profile   string    `json:"profile"`
	Score     float64   `json:"score"`
	Penalties int       `json:"penalties"`
	Files     int       `json:"files"`
}

// Store wraps the history database.
type Store struct {
	conn   *sql.DB
	logger *logging.Logger
	dbPath string
}

// timestampFormat is fixed-width so the TEXT column orders chronologically;
// RFC3339Nano trims trailing fractional zeros and breaks lexicographic sort.
const timestampFormat = "2006-01-02T15:04:05.000000000Z07:00"

const schema = `
CREATE TABLE IF NOT EXISTS runs (
    id         TEXT PRIMARY KEY,
    timestamp  TEXT NOT NULL,
    profile    TEXT NOT NULL,
    score      REAL NOT NULL,
    penalties  INTEGER NOT NULL,
    files      INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_timestamp ON runs(timestamp);
`

// Open opens or creates the history database at .agentscore/history.db
// under the project root.
func Open(projectRoot string, logger *logging.Logger) (*Store, error) {
	if logger == nil {
		logger = logging.NewDiscard()
	}

	dir := filepath.Join(projectRoot, ".agentscore")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create .agentscore directory: %w", err)
	}
	dbPath := filepath.Join(dir, "history.db")

	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
	}
	for _, pragma := range pragmas {
		if _, err := conn.Exec(pragma); err != nil {
			conn.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to initialize history schema: %w", err)
	}

	return &Store{conn: conn, logger: logger, dbPath: dbPath}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.conn != nil {
		return s.conn.Close()
	}
	return nil
}

// Record persists one run and returns it with its generated identifier.
func (s *Store) Record(rep *scoring.ScoreReport, profile string) (*Run, error) {
	run := &Run{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Profile:   profile,
		Score:     rep.Score,
		Penalties: len(rep.Penalties),
		Files:     len(rep.Files),
	}

	_, err := s.conn.Exec(
		`INSERT INTO runs (id, timestamp, profile, score, penalties, files) VALUES (?, ?, ?, ?, ?, ?)`,
		run.ID, run.Timestamp.Format(timestampFormat), run.Profile, run.Score, run.Penalties, run.Files,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to record run: %w", err)
	}

	s.logger.Debug("recorded score run", map[string]interface{}{
		"id":    run.ID,
		"score": run.Score,
	})
	return run, nil
}

// Recent returns the latest runs, newest first.
func (s *Store) Recent(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.conn.Query(
		`SELECT id, timestamp, profile, score, penalties, files FROM runs ORDER BY timestamp DESC, id LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var ts string
		if err := rows.Scan(&run.ID, &ts, &run.Profile, &run.Score, &run.Penalties, &run.Files); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		run.Timestamp, err = time.Parse(timestampFormat, ts)
		if err != nil {
			return nil, fmt.Errorf("corrupt timestamp on run %s: %w", run.ID, err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// LastScore returns the most recent recorded score, or ok=false when no
// run exists yet.
func (s *Store) LastScore() (float64, bool, error) {
	var score float64
	err := s.conn.QueryRow(`SELECT score FROM runs ORDER BY timestamp DESC, id LIMIT 1`).Scan(&score)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to read last score: %w", err)
	}
	return score, true, nil
}

// CheckRegression compares a new score to the previous run. A drop larger
// than tolerance is a regression.
func (s *Store) CheckRegression(newScore float64, tolerance float64) (bool, float64, error) {
	last, ok, err := s.LastScore()
	if err != nil || !ok {
		return false, 0, err
	}
	drop := last - newScore
	return drop > tolerance, drop, nil
}

package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Solve is one recorded solve-history row.
type Solve struct {
	ID         string
	Scramble   string
	Solution   string
	NodeCount  int64
	DurationMs int64
	Cancelled  bool
	StartedAt  time.Time
	FinishedAt *time.Time
}

// SolveRepository provides CRUD access to the solves table.
type SolveRepository struct {
	db *DB
}

// NewSolveRepository creates a repository bound to db.
func NewSolveRepository(db *DB) *SolveRepository {
	return &SolveRepository{db: db}
}

// Start inserts a new in-progress solve row and returns its generated id.
func (r *SolveRepository) Start(scramble string) (string, error) {
	id := uuid.NewString()
	_, err := r.db.Exec(`
		INSERT INTO solves (id, scramble, started_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
	`, id, scramble)
	if err != nil {
		return "", fmt.Errorf("start solve: %w", err)
	}
	return id, nil
}

// Finish records the outcome of a previously started solve.
func (r *SolveRepository) Finish(id, solution string, nodeCount int64, duration time.Duration, cancelled bool) error {
	_, err := r.db.Exec(`
		UPDATE solves
		SET solution = ?, node_count = ?, duration_ms = ?, cancelled = ?, finished_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, solution, nodeCount, duration.Milliseconds(), cancelled, id)
	if err != nil {
		return fmt.Errorf("finish solve %s: %w", id, err)
	}
	return nil
}

// Get retrieves one solve by id, or nil if it does not exist.
func (r *SolveRepository) Get(id string) (*Solve, error) {
	row := r.db.QueryRow(`
		SELECT id, scramble, solution, node_count, duration_ms, cancelled, started_at, finished_at
		FROM solves WHERE id = ?
	`, id)
	s, err := scanSolve(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get solve %s: %w", id, err)
	}
	return s, nil
}

// List returns the most recent solves, newest first, up to limit rows.
func (r *SolveRepository) List(limit int) ([]Solve, error) {
	rows, err := r.db.Query(`
		SELECT id, scramble, solution, node_count, duration_ms, cancelled, started_at, finished_at
		FROM solves ORDER BY started_at DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list solves: %w", err)
	}
	defer rows.Close()

	var out []Solve
	for rows.Next() {
		s, err := scanSolve(rows)
		if err != nil {
			return nil, fmt.Errorf("scan solve row: %w", err)
		}
		out = append(out, *s)
	}
	return out, rows.Err()
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanSolve(row rowScanner) (*Solve, error) {
	var s Solve
	var cancelled int
	var finishedAt sql.NullTime
	err := row.Scan(&s.ID, &s.Scramble, &s.Solution, &s.NodeCount, &s.DurationMs, &cancelled, &s.StartedAt, &finishedAt)
	if err != nil {
		return nil, err
	}
	s.Cancelled = cancelled != 0
	if finishedAt.Valid {
		s.FinishedAt = &finishedAt.Time
	}
	return &s, nil
}

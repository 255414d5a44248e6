// Package history persists solve attempts in a local SQLite database so
// past submissions can be reviewed offline.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/taskarena/taskarena/pkg/arena"
)

const schema = `
CREATE TABLE IF NOT EXISTS attempts (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	task_id TEXT NOT NULL,
	type_id TEXT NOT NULL,
	question TEXT NOT NULL,
	answer TEXT NOT NULL,
	status INTEGER NOT NULL,
	points INTEGER NOT NULL,
	created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_attempts_task ON attempts(task_id);
`

// Attempt is one recorded submission.
type Attempt struct {
	ID        int64
	TaskID    string
	TypeID    string
	Question  string
	Answer    string
	Status    arena.TaskStatus
	Points    int
	CreatedAt time.Time
}

// Store records solve attempts.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the attempt database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply history schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record inserts an attempt and returns it with its assigned id.
func (s *Store) Record(attempt Attempt) (*Attempt, error) {
	if attempt.CreatedAt.IsZero() {
		attempt.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO attempts (task_id, type_id, question, answer, status, points, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	res, err := s.db.Exec(query,
		attempt.TaskID,
		attempt.TypeID,
		attempt.Question,
		attempt.Answer,
		int(attempt.Status),
		attempt.Points,
		attempt.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to record attempt: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	attempt.ID = id
	return &attempt, nil
}

// List returns the most recent attempts, newest first, up to limit.
func (s *Store) List(limit int) ([]*Attempt, error) {
	query := `
		SELECT id, task_id, type_id, question, answer, status, points, created_at
		FROM attempts
		ORDER BY id DESC
		LIMIT ?
	`
	rows, err := s.db.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var attempts []*Attempt
	for rows.Next() {
		attempt, err := scanAttempt(rows)
		if err != nil {
			return nil, err
		}
		attempts = append(attempts, attempt)
	}
	return attempts, rows.Err()
}

// ListByTask returns all attempts for a single task, oldest first.
func (s *Store) ListByTask(taskID string) ([]*Attempt, error) {
	query := `
		SELECT id, task_id, type_id, question, answer, status, points, created_at
		FROM attempts
		WHERE task_id = ?
		ORDER BY id ASC
	`
	rows, err := s.db.Query(query, taskID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var attempts []*Attempt
	for rows.Next() {
		attempt, err := scanAttempt(rows)
		if err != nil {
			return nil, err
		}
		attempts = append(attempts, attempt)
	}
	return attempts, rows.Err()
}

func scanAttempt(rows *sql.Rows) (*Attempt, error) {
	var attempt Attempt
	var status int
	var createdAt string

	if err := rows.Scan(
		&attempt.ID,
		&attempt.TaskID,
		&attempt.TypeID,
		&attempt.Question,
		&attempt.Answer,
		&status,
		&attempt.Points,
		&createdAt,
	); err != nil {
		return nil, err
	}

	attempt.Status = arena.TaskStatus(status)
	parsed, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("invalid created_at %q: %w", createdAt, err)
	}
	attempt.CreatedAt = parsed

	return &attempt, nil
}

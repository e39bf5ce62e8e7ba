package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/stride-sh/stride/internal/models"
	"github.com/stride-sh/stride/internal/period"
)

// SQLiteStore persists habits and their completions in two tables. Habits
// are keyed by name; completion rows carry their own ids so individual
// events remain addressable for audit.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

const schema = `
CREATE TABLE IF NOT EXISTS habits (
	name        TEXT PRIMARY KEY,
	description TEXT NOT NULL DEFAULT '',
	periodicity TEXT NOT NULL,
	created_at  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS completions (
	id           TEXT PRIMARY KEY,
	habit_name   TEXT NOT NULL REFERENCES habits(name) ON DELETE CASCADE,
	completed_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_completions_habit ON completions(habit_name, completed_at);
`

func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'stride init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	// Creating missing tables keeps older database files usable.
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to validate schema: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) LoadHabits() (models.Collection, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	rows, err := s.db.Query(`
		SELECT name, description, periodicity, created_at
		FROM habits ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	habits := make(models.Collection)
	for rows.Next() {
		var h models.Habit
		var periodicity, createdAt string

		if err := rows.Scan(&h.Name, &h.Description, &periodicity, &createdAt); err != nil {
			return nil, err
		}

		h.Periodicity, err = period.Parse(periodicity)
		if err != nil {
			return nil, fmt.Errorf("habit %s: %w", h.Name, err)
		}
		h.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at for habit %s: %w", h.Name, err)
		}

		habits[h.Name] = &h
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := s.loadCompletions(habits); err != nil {
		return nil, err
	}

	return habits, nil
}

func (s *SQLiteStore) loadCompletions(habits models.Collection) error {
	rows, err := s.db.Query(`
		SELECT habit_name, completed_at
		FROM completions ORDER BY completed_at`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var habitName, completedAt string
		if err := rows.Scan(&habitName, &completedAt); err != nil {
			return err
		}

		h, ok := habits[habitName]
		if !ok {
			// Orphaned row, ignore rather than fail the whole load.
			continue
		}

		t, err := time.Parse(time.RFC3339, completedAt)
		if err != nil {
			return fmt.Errorf("failed to parse completion for habit %s: %w", habitName, err)
		}
		h.Completions = append(h.Completions, t)
	}

	return rows.Err()
}

// SaveHabits replaces the stored snapshot with the given collection inside a
// single transaction.
func (s *SQLiteStore) SaveHabits(habits models.Collection) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM completions`); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM habits`); err != nil {
		return err
	}

	habitStmt, err := tx.Prepare(`
		INSERT INTO habits (name, description, periodicity, created_at)
		VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer habitStmt.Close()

	completionStmt, err := tx.Prepare(`
		INSERT INTO completions (id, habit_name, completed_at)
		VALUES (?, ?, ?)`)
	if err != nil {
		return err
	}
	defer completionStmt.Close()

	for _, name := range habits.Names() {
		h := habits[name]
		if _, err := habitStmt.Exec(h.Name, h.Description, h.Periodicity.String(),
			h.CreatedAt.Format(time.RFC3339)); err != nil {
			return fmt.Errorf("failed to save habit %s: %w", h.Name, err)
		}
		for _, c := range h.Completions {
			if _, err := completionStmt.Exec(uuid.New().String(), h.Name,
				c.Format(time.RFC3339)); err != nil {
				return fmt.Errorf("failed to save completion for habit %s: %w", h.Name, err)
			}
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

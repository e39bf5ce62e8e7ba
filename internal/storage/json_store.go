package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/stride-sh/stride/internal/models"
	"github.com/stride-sh/stride/internal/period"
)

type jsonEnvelope struct {
	Version  int                      `json:"version"`
	Metadata jsonMetadata             `json:"metadata"`
	Habits   map[string]*models.Habit `json:"habits"`
}

type jsonMetadata struct {
	Created          string `json:"created"`
	LastModified     string `json:"last_modified"`
	TotalHabits      int    `json:"total_habits"`
	TotalCompletions int    `json:"total_completions"`
}

// JSONStore keeps the whole collection in a single JSON file. Simple,
// portable, human-readable.
type JSONStore struct {
	path     string
	envelope *jsonEnvelope
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{
		path: path,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.envelope = &jsonEnvelope{
		Version: 1,
		Metadata: jsonMetadata{
			Created:      time.Now().UTC().Format(time.RFC3339),
			LastModified: time.Now().UTC().Format(time.RFC3339),
		},
		Habits: make(map[string]*models.Habit),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'stride init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.envelope = &jsonEnvelope{}
	if err := json.Unmarshal(data, s.envelope); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	if s.envelope.Habits == nil {
		s.envelope.Habits = make(map[string]*models.Habit)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

// save writes to a temporary file and renames it into place so a crash
// mid-write never corrupts the store.
func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.envelope, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		if removeErr := os.Remove(tmpPath); removeErr != nil && !os.IsNotExist(removeErr) {
			fmt.Fprintf(os.Stderr, "Warning: failed to remove temporary file %s: %v\n", tmpPath, removeErr)
		}
		return fmt.Errorf("failed to replace storage: %w", err)
	}

	return nil
}

func (s *JSONStore) LoadHabits() (models.Collection, error) {
	if s.envelope == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	habits := make(models.Collection, len(s.envelope.Habits))
	for name, h := range s.envelope.Habits {
		if !h.Periodicity.Valid() {
			return nil, fmt.Errorf("habit %q: %w: %q", name, period.ErrInvalidPeriodicity, h.Periodicity)
		}
		habits[name] = h
	}

	return habits, nil
}

func (s *JSONStore) SaveHabits(habits models.Collection) error {
	if s.envelope == nil {
		return fmt.Errorf("storage not loaded")
	}

	total := 0
	stored := make(map[string]*models.Habit, len(habits))
	for name, h := range habits {
		stored[name] = h
		total += len(h.Completions)
	}

	s.envelope.Habits = stored
	s.envelope.Metadata.LastModified = time.Now().UTC().Format(time.RFC3339)
	s.envelope.Metadata.TotalHabits = len(stored)
	s.envelope.Metadata.TotalCompletions = total
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}

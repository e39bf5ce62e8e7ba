package storage

import (
	"path/filepath"
	"strings"

	"github.com/stride-sh/stride/internal/models"
)

// Provider persists habit collections. The core never does I/O itself: it is
// handed a hydrated collection at startup and hands back the updated
// collection to persist after mutation.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Habits
	LoadHabits() (models.Collection, error)
	SaveHabits(models.Collection) error

	// Utils
	GetConfigPath() string
}

// NewStore selects a backend from the config path extension: .json gets the
// JSON store, everything else the SQLite store.
func NewStore(path string) Provider {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return NewJSONStore(path)
	}
	return NewSQLiteStore(path)
}

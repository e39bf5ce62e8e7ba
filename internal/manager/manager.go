// Package manager owns the habit collection: all mutation goes through it
// and is persisted after every change, while reads hand the collection to
// the pure analytics functions.
package manager

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/mitchellh/hashstructure/v2"

	"github.com/stride-sh/stride/internal/analytics"
	"github.com/stride-sh/stride/internal/logger"
	"github.com/stride-sh/stride/internal/models"
	"github.com/stride-sh/stride/internal/period"
	"github.com/stride-sh/stride/internal/storage"
	"github.com/stride-sh/stride/internal/validation"
)

var (
	// ErrHabitExists is returned when creating a habit whose name is taken.
	ErrHabitExists = errors.New("habit already exists")
	// ErrHabitNotFound is returned when a habit name resolves to nothing.
	ErrHabitNotFound = errors.New("habit not found")
)

// Manager coordinates habit CRUD, check-offs, and persistence. Mutations are
// serialized by a single mutex; the analytics layer only ever sees the
// collection between mutations.
type Manager struct {
	mu     sync.Mutex
	store  storage.Provider
	habits models.Collection
}

// New creates a manager over the given storage provider. Call Load before
// anything else.
func New(store storage.Provider) *Manager {
	return &Manager{
		store:  store,
		habits: make(models.Collection),
	}
}

// Load hydrates the collection from storage.
func (m *Manager) Load() error {
	if err := m.store.Load(); err != nil {
		return err
	}
	habits, err := m.store.LoadHabits()
	if err != nil {
		return fmt.Errorf("failed to load habits: %w", err)
	}
	m.habits = habits
	logger.Debug("Loaded habits", "count", len(habits))
	return nil
}

func (m *Manager) save() error {
	return m.store.SaveHabits(m.habits)
}

// Habits returns the live collection for read-only use. Callers must not
// mutate records; all mutation goes through the manager.
func (m *Manager) Habits() models.Collection {
	return m.habits
}

// Get returns the habit with the given name.
func (m *Manager) Get(name string) (*models.Habit, error) {
	h, ok := m.habits[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrHabitNotFound, name)
	}
	return h, nil
}

// Create adds a new habit. The name must be unique across the collection and
// the periodicity is fixed once chosen.
func (m *Manager) Create(name, description string, p period.Periodicity, now time.Time) (*models.Habit, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := validation.HabitName(name); err != nil {
		return nil, err
	}
	if _, ok := m.habits[name]; ok {
		return nil, fmt.Errorf("%w: %q", ErrHabitExists, name)
	}

	h, err := models.NewHabit(name, description, p, now)
	if err != nil {
		return nil, err
	}

	m.habits[name] = h
	if err := m.save(); err != nil {
		delete(m.habits, name)
		return nil, err
	}
	logger.Info("Created habit", "name", name, "periodicity", p)
	return h, nil
}

// Delete removes a habit and its whole completion history.
func (m *Manager) Delete(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	h, ok := m.habits[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrHabitNotFound, name)
	}

	delete(m.habits, name)
	if err := m.save(); err != nil {
		m.habits[name] = h
		return err
	}
	logger.Info("Deleted habit", "name", name)
	return nil
}

// UpdateDescription changes a habit's description. Name and periodicity are
// immutable: renaming invalidates the lookup key and changing periodicity
// invalidates the streak history.
func (m *Manager) UpdateDescription(name, description string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	h, ok := m.habits[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrHabitNotFound, name)
	}

	previous := h.Description
	h.Description = description
	if err := m.save(); err != nil {
		h.Description = previous
		return err
	}
	return nil
}

// CheckOff records a completion for the named habit at t.
func (m *Manager) CheckOff(name string, t time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	h, ok := m.habits[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrHabitNotFound, name)
	}

	if err := h.CheckOff(t); err != nil {
		return err
	}
	if err := m.save(); err != nil {
		return err
	}
	logger.Debug("Checked off habit", "name", name, "at", t.Format(time.RFC3339))
	return nil
}

// CheckOffMany records a completion for every named habit at t. Each habit
// is attempted independently; the result maps each name to its individual
// outcome (nil on success) and the store is saved once if anything changed.
func (m *Manager) CheckOffMany(names []string, t time.Time) (map[string]error, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	results := make(map[string]error, len(names))
	changed := false
	for _, name := range names {
		h, ok := m.habits[name]
		if !ok {
			results[name] = fmt.Errorf("%w: %q", ErrHabitNotFound, name)
			continue
		}
		if err := h.CheckOff(t); err != nil {
			results[name] = err
			continue
		}
		results[name] = nil
		changed = true
	}

	if changed {
		if err := m.save(); err != nil {
			return results, err
		}
		logger.Debug("Checked off habits", "count", len(names), "at", t.Format(time.RFC3339))
	}
	return results, nil
}

// Undo removes the completion of the named habit in the period containing
// date.
func (m *Manager) Undo(name string, date time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	h, ok := m.habits[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrHabitNotFound, name)
	}

	if err := h.Undo(date); err != nil {
		return err
	}
	if err := m.save(); err != nil {
		return err
	}
	logger.Debug("Undid completion", "name", name, "date", date.Format(time.RFC3339))
	return nil
}

// Fingerprint returns a stable hash of the whole collection, used to detect
// drift between exports and the live store.
func (m *Manager) Fingerprint() (uint64, error) {
	type entry struct {
		Habit *models.Habit
	}
	snapshot := make([]entry, 0, len(m.habits))
	for _, name := range m.habits.Names() {
		snapshot = append(snapshot, entry{Habit: m.habits[name]})
	}
	return hashstructure.Hash(snapshot, hashstructure.FormatV2, nil)
}

// Stats is the comprehensive statistics view over the collection.
type Stats struct {
	TotalHabits      int                          `json:"total_habits"`
	TotalCompletions int                          `json:"total_completions"`
	ActiveCount      int                          `json:"active_count"`
	BrokenCount      int                          `json:"broken_count"`
	Fingerprint      uint64                       `json:"fingerprint"`
	ByPeriodicity    []analytics.PeriodicityStats `json:"by_periodicity"`
}

// Stats summarizes the collection at the given reference time.
func (m *Manager) Stats(now time.Time) (Stats, error) {
	fingerprint, err := m.Fingerprint()
	if err != nil {
		return Stats{}, fmt.Errorf("failed to fingerprint collection: %w", err)
	}

	stats := Stats{
		TotalHabits:      len(m.habits),
		TotalCompletions: analytics.TotalCompletions(m.habits),
		BrokenCount:      len(analytics.Broken(m.habits, now)),
		Fingerprint:      fingerprint,
		ByPeriodicity:    analytics.StatsByPeriodicity(m.habits, now),
	}
	for _, e := range analytics.RankByCurrentStreak(m.habits, now) {
		if e.Streak > 0 {
			stats.ActiveCount++
		}
	}
	return stats, nil
}

package models

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/stride-sh/stride/internal/period"
)

var (
	// ErrInvalidTimestamp is returned when a completion timestamp precedes
	// the habit's creation.
	ErrInvalidTimestamp = errors.New("completion precedes habit creation")
	// ErrCompletionNotFound is returned when undo targets a period with no
	// recorded completion.
	ErrCompletionNotFound = errors.New("no completion in period")
)

// Habit is a recurring practice identified by name. Completions hold at most
// one timestamp per calendar period, always sorted ascending, and none
// precede CreatedAt.
type Habit struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Periodicity period.Periodicity `json:"periodicity"`
	CreatedAt   time.Time          `json:"created_at"`
	Completions []time.Time        `json:"completions"`
}

// NewHabit creates a valid habit. The name and periodicity are fixed for the
// habit's lifetime; only the description may change afterwards.
func NewHabit(name, description string, p period.Periodicity, createdAt time.Time) (*Habit, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %q", period.ErrInvalidPeriodicity, p)
	}
	return &Habit{
		Name:        name,
		Description: description,
		Periodicity: p,
		CreatedAt:   createdAt,
	}, nil
}

// CheckOff records a completion at t. Recording a second completion in a
// period that already holds one is a no-op, so repeated check-offs never
// inflate streaks. Returns ErrInvalidTimestamp if t precedes CreatedAt.
func (h *Habit) CheckOff(t time.Time) error {
	if t.Before(h.CreatedAt) {
		return fmt.Errorf("%w: %s before %s", ErrInvalidTimestamp,
			t.Format(time.RFC3339), h.CreatedAt.Format(time.RFC3339))
	}

	if h.CompletedIn(t) {
		return nil
	}

	h.Completions = append(h.Completions, t)
	sort.Slice(h.Completions, func(i, j int) bool {
		return h.Completions[i].Before(h.Completions[j])
	})
	return nil
}

// Undo removes the completion recorded in the period containing date.
// Returns ErrCompletionNotFound if that period holds no completion.
func (h *Habit) Undo(date time.Time) error {
	key := period.Of(date, h.Periodicity)
	for i, c := range h.Completions {
		if period.Of(c, h.Periodicity) == key {
			h.Completions = append(h.Completions[:i], h.Completions[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrCompletionNotFound, key)
}

// CompletedIn reports whether the habit has a completion in the period
// containing t.
func (h *Habit) CompletedIn(t time.Time) bool {
	key := period.Of(t, h.Periodicity)
	for _, c := range h.Completions {
		if period.Of(c, h.Periodicity) == key {
			return true
		}
	}
	return false
}

// PeriodKeys returns the sorted, deduplicated period keys derived from the
// completion history. This is the canonical input to all streak math.
func (h *Habit) PeriodKeys() []period.Key {
	keys := make([]period.Key, 0, len(h.Completions))
	seen := make(map[period.Key]bool, len(h.Completions))
	for _, c := range h.Completions {
		k := period.Of(c, h.Periodicity)
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Before(keys[j]) })
	return keys
}

// LastCompletion returns the most recent completion timestamp, if any.
func (h *Habit) LastCompletion() (time.Time, bool) {
	if len(h.Completions) == 0 {
		return time.Time{}, false
	}
	return h.Completions[len(h.Completions)-1], true
}

// Collection maps habit names to records. Uniqueness of names is enforced by
// the owning manager, not by the records themselves.
type Collection map[string]*Habit

// Names returns all habit names in ascending order.
func (c Collection) Names() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ByPeriodicity returns the habits tracked at the given periodicity, sorted
// by name for deterministic output.
func (c Collection) ByPeriodicity(p period.Periodicity) []*Habit {
	var habits []*Habit
	for _, name := range c.Names() {
		if c[name].Periodicity == p {
			habits = append(habits, c[name])
		}
	}
	return habits
}

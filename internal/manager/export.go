package manager

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/stride-sh/stride/internal/analytics"
	"github.com/stride-sh/stride/internal/logger"
	"github.com/stride-sh/stride/internal/models"
)

type jsonExport struct {
	ExportedAt  string            `json:"exported_at"`
	Fingerprint uint64            `json:"fingerprint"`
	Habits      models.Collection `json:"habits"`
}

// ExportJSON writes the full collection, including completion histories, to
// path. The embedded fingerprint lets a later import detect drift.
func (m *Manager) ExportJSON(path string, now time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	fingerprint, err := m.Fingerprint()
	if err != nil {
		return fmt.Errorf("failed to fingerprint collection: %w", err)
	}

	data, err := json.MarshalIndent(jsonExport{
		ExportedAt:  now.Format(time.RFC3339),
		Fingerprint: fingerprint,
		Habits:      m.habits,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal export: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	logger.Info("Exported habits to JSON", "path", path, "habits", len(m.habits))
	return nil
}

// ExportCSV writes one summary row per habit to path. Completion timestamps
// are collapsed to counts and streaks; use ExportJSON for the full history.
func (m *Manager) ExportCSV(path string, now time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"name", "description", "periodicity", "created_at", "completions", "current_streak", "longest_streak", "broken"}); err != nil {
		return fmt.Errorf("failed to write export header: %w", err)
	}

	for _, name := range m.habits.Names() {
		h := m.habits[name]
		row := []string{
			h.Name,
			h.Description,
			string(h.Periodicity),
			h.CreatedAt.Format(time.RFC3339),
			strconv.Itoa(len(h.Completions)),
			strconv.Itoa(analytics.CurrentStreak(h, now)),
			strconv.Itoa(analytics.LongestStreak(h)),
			strconv.FormatBool(analytics.IsBroken(h, now)),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write export row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush export: %w", err)
	}
	logger.Info("Exported habits to CSV", "path", path, "habits", len(m.habits))
	return nil
}

package manager

import (
	"time"

	"github.com/stride-sh/stride/internal/logger"
	"github.com/stride-sh/stride/internal/models"
	"github.com/stride-sh/stride/internal/period"
)

type seedHabit struct {
	name        string
	description string
	periodicity period.Periodicity
	// skipEvery leaves a periodic gap in the generated history so the
	// sample data exercises broken streaks, not just perfect ones.
	skipEvery int
	periods   int
}

var seedHabits = []seedHabit{
	{"Drink Water", "At least 2 liters a day", period.Daily, 0, 28},
	{"Exercise", "30 minutes of movement", period.Daily, 5, 28},
	{"Read", "Read 10 pages", period.Daily, 7, 28},
	{"Weekly Review", "Plan the week ahead", period.Weekly, 0, 4},
	{"Grocery Shopping", "Restock the kitchen", period.Weekly, 3, 4},
}

// Seed populates the store with sample habits and generated completion
// histories anchored at now. Returns the number of habits created; habits
// whose name is already taken are skipped.
func (m *Manager) Seed(now time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	created := 0
	for _, s := range seedHabits {
		if _, ok := m.habits[s.name]; ok {
			continue
		}

		step := 24 * time.Hour
		if s.periodicity == period.Weekly {
			step = 7 * 24 * time.Hour
		}
		createdAt := now.Add(-time.Duration(s.periods) * step)

		h, err := models.NewHabit(s.name, s.description, s.periodicity, createdAt)
		if err != nil {
			return created, err
		}
		for i := 1; i <= s.periods; i++ {
			if s.skipEvery > 0 && i%s.skipEvery == 0 {
				continue
			}
			if err := h.CheckOff(createdAt.Add(time.Duration(i) * step)); err != nil {
				return created, err
			}
		}

		m.habits[s.name] = h
		created++
	}

	if created > 0 {
		if err := m.save(); err != nil {
			return 0, err
		}
	}
	logger.Info("Seeded sample habits", "created", created)
	return created, nil
}

package analytics

import (
	"time"

	"github.com/stride-sh/stride/internal/models"
	"github.com/stride-sh/stride/internal/period"
)

// HabitSummary is one habit's row in an overview.
type HabitSummary struct {
	Name          string `json:"name"`
	CurrentStreak int    `json:"current_streak"`
	LongestStreak int    `json:"longest_streak"`
	IsBroken      bool   `json:"is_broken"`
}

// Overview is the fixed result shape of the periodicity-filtered preset
// views. PerHabit rows are sorted by name.
type Overview struct {
	Periodicity period.Periodicity `json:"periodicity"`
	TotalHabits int                `json:"total_habits"`
	ActiveCount int                `json:"active_count"`
	BrokenCount int                `json:"broken_count"`
	PerHabit    []HabitSummary     `json:"per_habit"`
}

// OverviewFor builds the overview for all habits of the given periodicity.
// A habit is active when it holds a current streak of at least one period.
func OverviewFor(c models.Collection, p period.Periodicity, now time.Time) Overview {
	ov := Overview{Periodicity: p}
	for _, h := range c.ByPeriodicity(p) {
		summary := HabitSummary{
			Name:          h.Name,
			CurrentStreak: CurrentStreak(h, now),
			LongestStreak: LongestStreak(h),
			IsBroken:      IsBroken(h, now),
		}
		ov.TotalHabits++
		if summary.CurrentStreak > 0 {
			ov.ActiveCount++
		}
		if summary.IsBroken {
			ov.BrokenCount++
		}
		ov.PerHabit = append(ov.PerHabit, summary)
	}
	return ov
}

// DailyOverview is the daily-habits preset.
func DailyOverview(c models.Collection, now time.Time) Overview {
	return OverviewFor(c, period.Daily, now)
}

// WeeklyOverview is the weekly-habits preset.
func WeeklyOverview(c models.Collection, now time.Time) Overview {
	return OverviewFor(c, period.Weekly, now)
}

// MonthlyOverview is the monthly-habits preset.
func MonthlyOverview(c models.Collection, now time.Time) Overview {
	return OverviewFor(c, period.Monthly, now)
}

// PeriodicityStats summarizes one periodicity bucket for the stats view.
type PeriodicityStats struct {
	Periodicity      period.Periodicity `json:"periodicity"`
	Count            int                `json:"count"`
	TotalCompletions int                `json:"total_completions"`
	BrokenCount      int                `json:"broken_count"`
	ActiveCount      int                `json:"active_count"`
}

// StatsByPeriodicity groups the collection by periodicity and summarizes
// each bucket, in display order. Empty buckets are included with zero counts
// since "no habits yet" is a valid state.
func StatsByPeriodicity(c models.Collection, now time.Time) []PeriodicityStats {
	stats := make([]PeriodicityStats, 0, len(period.All()))
	for _, p := range period.All() {
		ps := PeriodicityStats{Periodicity: p}
		for _, h := range c.ByPeriodicity(p) {
			ps.Count++
			ps.TotalCompletions += len(h.Completions)
			if IsBroken(h, now) {
				ps.BrokenCount++
			}
			if CurrentStreak(h, now) > 0 {
				ps.ActiveCount++
			}
		}
		stats = append(stats, ps)
	}
	return stats
}

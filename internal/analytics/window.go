package analytics

import (
	"time"

	"github.com/stride-sh/stride/internal/models"
	"github.com/stride-sh/stride/internal/period"
)

// CompletionRate returns the percentage of expected completions the habit
// achieved in the trailing window of the given number of days ending at now.
// Expected counts follow periodicity: one per day, per 7 days, per 30 days,
// or per 365 days. A habit with no completions rates 0.
func CompletionRate(h *models.Habit, now time.Time, days int) float64 {
	if days <= 0 || len(h.Completions) == 0 {
		return 0
	}

	start := now.AddDate(0, 0, -days)
	completed := 0
	for _, c := range h.Completions {
		if !c.Before(start) && !c.After(now) {
			completed++
		}
	}

	var expected float64
	switch h.Periodicity {
	case period.Daily:
		expected = float64(days)
	case period.Weekly:
		expected = float64(days) / 7
	case period.Monthly:
		expected = float64(days) / 30
	case period.Yearly:
		expected = float64(days) / 365
	}
	if expected == 0 {
		return 0
	}
	return float64(completed) / expected * 100
}

// MostConsistentHabit returns the habit with the highest completion rate
// over the window, with ties broken by name ascending. The boolean is false
// for an empty collection.
func MostConsistentHabit(c models.Collection, now time.Time, days int) (string, float64, bool) {
	bestName := ""
	bestRate := 0.0
	found := false

	for _, name := range c.Names() {
		rate := CompletionRate(c[name], now, days)
		if !found || rate > bestRate {
			bestName, bestRate, found = name, rate, true
		}
	}
	return bestName, bestRate, found
}

// TrendPoint is one day's completion count in a productivity trend.
type TrendPoint struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

// ProductivityTrend counts completions across the whole collection for each
// of the trailing days ending at now, oldest day first.
func ProductivityTrend(c models.Collection, now time.Time, days int) []TrendPoint {
	if days <= 0 {
		return nil
	}

	counts := make(map[period.Key]int)
	for _, h := range c {
		for _, t := range h.Completions {
			counts[period.Of(t, period.Daily)]++
		}
	}

	points := make([]TrendPoint, days)
	key := period.Of(now, period.Daily)
	for i := days - 1; i >= 0; i-- {
		points[i] = TrendPoint{Day: key.String(), Count: counts[key]}
		key = key.Previous()
	}
	return points
}

// BestPerformingDay returns the weekday collecting the most completions in
// the trailing window of the given number of weeks ending at now. Ties go to
// the earliest weekday, Monday first. The boolean is false when the window
// holds no completions at all.
func BestPerformingDay(c models.Collection, now time.Time, weeks int) (time.Weekday, int, bool) {
	start := now.AddDate(0, 0, -weeks*7)

	var counts [7]int
	total := 0
	for _, h := range c {
		for _, t := range h.Completions {
			if !t.Before(start) && !t.After(now) {
				counts[t.Weekday()]++
				total++
			}
		}
	}
	if total == 0 {
		return time.Sunday, 0, false
	}

	best := time.Monday
	for i := 1; i < 7; i++ {
		// Walk Monday through Sunday so ties resolve to the earliest
		// weekday.
		wd := time.Weekday((int(time.Monday) + i) % 7)
		if counts[wd] > counts[best] {
			best = wd
		}
	}
	return best, counts[best], true
}

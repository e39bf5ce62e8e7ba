package analytics

import (
	"sort"
	"time"

	"github.com/stride-sh/stride/internal/models"
)

// StreakEntry pairs a habit name with a streak length.
type StreakEntry struct {
	Name   string `json:"name"`
	Streak int    `json:"streak"`
}

// LongestStreakOverall returns the longest streak ever achieved across the
// collection and the habit that achieved it. Ties are broken by earliest
// creation time, then by name, so the result is deterministic. An empty
// collection yields (0, "").
func LongestStreakOverall(c models.Collection) (int, string) {
	best := -1
	bestName := ""
	var bestCreated time.Time

	// Names() iterates ascending, so on a full tie the smaller name wins
	// by never being displaced.
	for _, name := range c.Names() {
		h := c[name]
		streak := LongestStreak(h)
		if streak > best || (streak == best && h.CreatedAt.Before(bestCreated)) {
			best, bestName, bestCreated = streak, name, h.CreatedAt
		}
	}

	if best < 0 {
		return 0, ""
	}
	return best, bestName
}

// RankByCurrentStreak returns all habits ordered by current streak,
// descending, with ties broken by name ascending.
func RankByCurrentStreak(c models.Collection, now time.Time) []StreakEntry {
	entries := make([]StreakEntry, 0, len(c))
	for _, name := range c.Names() {
		entries = append(entries, StreakEntry{
			Name:   name,
			Streak: CurrentStreak(c[name], now),
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Streak != entries[j].Streak {
			return entries[i].Streak > entries[j].Streak
		}
		return entries[i].Name < entries[j].Name
	})
	return entries
}

// Struggling returns the names, sorted ascending, of habits whose current
// streak has fallen below thresholdPercent of their own longest streak. A
// habit that never built a streak is new rather than struggling and is never
// included.
func Struggling(c models.Collection, now time.Time, thresholdPercent float64) []string {
	var names []string
	for _, name := range c.Names() {
		h := c[name]
		longest := LongestStreak(h)
		if longest == 0 {
			continue
		}
		current := CurrentStreak(h, now)
		if float64(current) < thresholdPercent/100*float64(longest) {
			names = append(names, name)
		}
	}
	return names
}

// Broken returns the names, sorted ascending, of all currently broken habits.
func Broken(c models.Collection, now time.Time) []string {
	var names []string
	for _, name := range c.Names() {
		if IsBroken(c[name], now) {
			names = append(names, name)
		}
	}
	return names
}

// TotalCompletions counts completions across the whole collection.
func TotalCompletions(c models.Collection) int {
	total := 0
	for _, h := range c {
		total += len(h.Completions)
	}
	return total
}

// Rankings holds the collection ordered by several metrics.
type Rankings struct {
	ByCurrentStreak []StreakEntry `json:"by_current_streak"`
	ByLongestStreak []StreakEntry `json:"by_longest_streak"`
	ByCompletions   []StreakEntry `json:"by_completions"`
}

// RankAll ranks every habit by current streak, longest streak, and total
// completion count. All orderings are descending with name tie-breaks.
func RankAll(c models.Collection, now time.Time) Rankings {
	byLongest := make([]StreakEntry, 0, len(c))
	byCompletions := make([]StreakEntry, 0, len(c))
	for _, name := range c.Names() {
		h := c[name]
		byLongest = append(byLongest, StreakEntry{Name: name, Streak: LongestStreak(h)})
		byCompletions = append(byCompletions, StreakEntry{Name: name, Streak: len(h.Completions)})
	}

	desc := func(entries []StreakEntry) {
		sort.SliceStable(entries, func(i, j int) bool {
			if entries[i].Streak != entries[j].Streak {
				return entries[i].Streak > entries[j].Streak
			}
			return entries[i].Name < entries[j].Name
		})
	}
	desc(byLongest)
	desc(byCompletions)

	return Rankings{
		ByCurrentStreak: RankByCurrentStreak(c, now),
		ByLongestStreak: byLongest,
		ByCompletions:   byCompletions,
	}
}

// Comparison is a side-by-side snapshot of one habit's metrics.
type Comparison struct {
	Name             string `json:"name"`
	CurrentStreak    int    `json:"current_streak"`
	LongestStreak    int    `json:"longest_streak"`
	TotalCompletions int    `json:"total_completions"`
	IsBroken         bool   `json:"is_broken"`
}

// Compare builds comparison rows for the named habits, in the order given.
// Names not present in the collection are skipped.
func Compare(c models.Collection, names []string, now time.Time) []Comparison {
	var rows []Comparison
	for _, name := range names {
		h, ok := c[name]
		if !ok {
			continue
		}
		rows = append(rows, Comparison{
			Name:             name,
			CurrentStreak:    CurrentStreak(h, now),
			LongestStreak:    LongestStreak(h),
			TotalCompletions: len(h.Completions),
			IsBroken:         IsBroken(h, now),
		})
	}
	return rows
}

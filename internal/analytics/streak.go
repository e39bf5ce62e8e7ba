// Package analytics computes streaks and aggregate views over habit
// collections. Every function is pure: records are never mutated and the
// reference time is always supplied by the caller, never read from a clock.
package analytics

import (
	"time"

	"github.com/stride-sh/stride/internal/models"
	"github.com/stride-sh/stride/internal/period"
)

// CurrentStreak returns the number of consecutive periods, ending at or
// immediately before the period containing now, with at least one completion.
// A gap of more than one period since the last completion breaks the streak.
func CurrentStreak(h *models.Habit, now time.Time) int {
	keys := h.PeriodKeys()
	if len(keys) == 0 {
		return 0
	}

	latest := keys[len(keys)-1]
	if latest.Distance(period.Of(now, h.Periodicity)) > 1 {
		// Even the most recent completion can no longer anchor an
		// active streak.
		return 0
	}

	streak := 1
	for i := len(keys) - 1; i > 0; i-- {
		if !period.Adjacent(keys[i-1], keys[i]) {
			break
		}
		streak++
	}
	return streak
}

// LongestStreak returns the longest run of mutually adjacent completion
// periods ever achieved, regardless of when it happened.
func LongestStreak(h *models.Habit) int {
	keys := h.PeriodKeys()
	if len(keys) == 0 {
		return 0
	}

	longest, run := 1, 1
	for i := 1; i < len(keys); i++ {
		if period.Adjacent(keys[i-1], keys[i]) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

// IsBroken reports whether the habit had a streak and lost it. A habit with
// no completions at all is new, not broken.
func IsBroken(h *models.Habit, now time.Time) bool {
	return len(h.Completions) > 0 && CurrentStreak(h, now) == 0
}

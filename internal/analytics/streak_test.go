package analytics

import (
	"testing"
	"time"

	"github.com/stride-sh/stride/internal/models"
	"github.com/stride-sh/stride/internal/period"
)

func day(d int) time.Time {
	return time.Date(2024, time.January, d, 9, 0, 0, 0, time.UTC)
}

func habitWithDays(t *testing.T, name string, days ...int) *models.Habit {
	t.Helper()
	h, err := models.NewHabit(name, "", period.Daily, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("NewHabit failed: %v", err)
	}
	for _, d := range days {
		if err := h.CheckOff(day(d)); err != nil {
			t.Fatalf("CheckOff failed: %v", err)
		}
	}
	return h
}

func TestCurrentStreak(t *testing.T) {
	tests := []struct {
		name string
		days []int
		now  time.Time
		want int
	}{
		{"no completions", nil, day(10), 0},
		{"three consecutive days ending today", []int{8, 9, 10}, day(10), 3},
		{"run ending yesterday still counts", []int{8, 9, 10}, day(11), 3},
		{"two day gap breaks the streak", []int{8, 9, 10}, day(12), 0},
		{"gap in history restarts the count", []int{3, 4, 8, 9, 10}, day(10), 3},
		{"single completion today", []int{10}, day(10), 1},
		{"single completion long ago", []int{2}, day(10), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := habitWithDays(t, "Exercise", tt.days...)
			if got := CurrentStreak(h, tt.now); got != tt.want {
				t.Errorf("CurrentStreak = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCurrentStreak_WeeklyHabit(t *testing.T) {
	h, err := models.NewHabit("Weekly Review", "", period.Weekly, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("NewHabit failed: %v", err)
	}
	// Three consecutive ISO weeks: Jan 1-7, Jan 8-14, Jan 15-21. Weekday
	// within the week must not matter.
	for _, d := range []int{3, 8, 21} {
		if err := h.CheckOff(day(d)); err != nil {
			t.Fatalf("CheckOff failed: %v", err)
		}
	}

	// Jan 25 falls in the following week, so the run is still current.
	if got := CurrentStreak(h, day(25)); got != 3 {
		t.Errorf("CurrentStreak = %d, want 3", got)
	}

	// By February 7 two whole weeks have passed.
	if got := CurrentStreak(h, time.Date(2024, time.February, 7, 9, 0, 0, 0, time.UTC)); got != 0 {
		t.Errorf("CurrentStreak after lapse = %d, want 0", got)
	}
}

func TestCurrentStreak_NeverDecreasesOnCheckOff(t *testing.T) {
	h := habitWithDays(t, "Exercise")
	now := day(10)

	previous := 0
	for d := 5; d <= 10; d++ {
		if err := h.CheckOff(day(d)); err != nil {
			t.Fatalf("CheckOff failed: %v", err)
		}
		streak := CurrentStreak(h, now)
		if streak < previous {
			t.Fatalf("streak decreased from %d to %d after check-off", previous, streak)
		}
		previous = streak
	}
}

func TestLongestStreak(t *testing.T) {
	tests := []struct {
		name string
		days []int
		want int
	}{
		{"no completions", nil, 0},
		{"single completion", []int{5}, 1},
		{"unbroken run", []int{5, 6, 7, 8}, 4},
		{"longest run is in the past", []int{2, 3, 4, 5, 10, 11}, 4},
		{"longest run is most recent", []int{2, 3, 8, 9, 10}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := habitWithDays(t, "Exercise", tt.days...)
			if got := LongestStreak(h); got != tt.want {
				t.Errorf("LongestStreak = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLongestStreak_AtLeastCurrent(t *testing.T) {
	histories := [][]int{
		{8, 9, 10},
		{2, 3, 4, 5, 9, 10},
		{10},
		{},
	}
	for _, days := range histories {
		h := habitWithDays(t, "Exercise", days...)
		current := CurrentStreak(h, day(10))
		longest := LongestStreak(h)
		if longest < current {
			t.Errorf("days %v: longest %d < current %d", days, longest, current)
		}
	}
}

func TestIsBroken(t *testing.T) {
	tests := []struct {
		name string
		days []int
		now  time.Time
		want bool
	}{
		{"new habit is not broken", nil, day(20), false},
		{"active streak is not broken", []int{9, 10}, day(10), false},
		{"lapsed habit is broken", []int{5, 6}, day(10), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := habitWithDays(t, "Exercise", tt.days...)
			if got := IsBroken(h, tt.now); got != tt.want {
				t.Errorf("IsBroken = %t, want %t", got, tt.want)
			}
		})
	}
}

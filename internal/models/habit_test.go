package models

import (
	"errors"
	"testing"
	"time"

	"github.com/stride-sh/stride/internal/period"
)

func newTestHabit(t *testing.T, p period.Periodicity) *Habit {
	t.Helper()
	h, err := NewHabit("Exercise", "30 minutes", p, time.Date(2024, time.January, 1, 8, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("NewHabit failed: %v", err)
	}
	return h
}

func at(y int, m time.Month, d, hour int) time.Time {
	return time.Date(y, m, d, hour, 0, 0, 0, time.UTC)
}

func TestNewHabit_RejectsInvalidPeriodicity(t *testing.T) {
	_, err := NewHabit("Exercise", "", "fortnightly", time.Now())
	if !errors.Is(err, period.ErrInvalidPeriodicity) {
		t.Errorf("NewHabit error = %v, want ErrInvalidPeriodicity", err)
	}
}

func TestCheckOff_RejectsTimestampBeforeCreation(t *testing.T) {
	h := newTestHabit(t, period.Daily)
	err := h.CheckOff(at(2023, time.December, 31, 10))
	if !errors.Is(err, ErrInvalidTimestamp) {
		t.Errorf("CheckOff error = %v, want ErrInvalidTimestamp", err)
	}
	if len(h.Completions) != 0 {
		t.Errorf("rejected check-off must not record a completion, got %d", len(h.Completions))
	}
}

func TestCheckOff_IdempotentWithinPeriod(t *testing.T) {
	h := newTestHabit(t, period.Daily)

	if err := h.CheckOff(at(2024, time.January, 5, 9)); err != nil {
		t.Fatalf("CheckOff failed: %v", err)
	}
	if err := h.CheckOff(at(2024, time.January, 5, 21)); err != nil {
		t.Fatalf("repeated CheckOff failed: %v", err)
	}

	if len(h.Completions) != 1 {
		t.Errorf("got %d completions for one day, want 1", len(h.Completions))
	}
}

func TestCheckOff_WeeklyGroupsWholeWeek(t *testing.T) {
	h := newTestHabit(t, period.Weekly)

	// 2024-01-08 (Mon) and 2024-01-14 (Sun) are the same ISO week.
	if err := h.CheckOff(at(2024, time.January, 8, 9)); err != nil {
		t.Fatalf("CheckOff failed: %v", err)
	}
	if err := h.CheckOff(at(2024, time.January, 14, 9)); err != nil {
		t.Fatalf("CheckOff failed: %v", err)
	}
	if len(h.Completions) != 1 {
		t.Errorf("got %d completions for one week, want 1", len(h.Completions))
	}

	// The following Monday starts a new week.
	if err := h.CheckOff(at(2024, time.January, 15, 9)); err != nil {
		t.Fatalf("CheckOff failed: %v", err)
	}
	if len(h.Completions) != 2 {
		t.Errorf("got %d completions across two weeks, want 2", len(h.Completions))
	}
}

func TestCheckOff_KeepsCompletionsSorted(t *testing.T) {
	h := newTestHabit(t, period.Daily)

	days := []int{10, 3, 7, 5}
	for _, d := range days {
		if err := h.CheckOff(at(2024, time.January, d, 9)); err != nil {
			t.Fatalf("CheckOff failed: %v", err)
		}
	}

	for i := 1; i < len(h.Completions); i++ {
		if h.Completions[i].Before(h.Completions[i-1]) {
			t.Fatalf("completions out of order: %v", h.Completions)
		}
	}
}

func TestUndo(t *testing.T) {
	h := newTestHabit(t, period.Daily)
	if err := h.CheckOff(at(2024, time.January, 5, 9)); err != nil {
		t.Fatalf("CheckOff failed: %v", err)
	}

	// Any timestamp in the same period clears the entry.
	if err := h.Undo(at(2024, time.January, 5, 23)); err != nil {
		t.Fatalf("Undo failed: %v", err)
	}
	if len(h.Completions) != 0 {
		t.Errorf("got %d completions after undo, want 0", len(h.Completions))
	}

	if err := h.Undo(at(2024, time.January, 5, 9)); !errors.Is(err, ErrCompletionNotFound) {
		t.Errorf("Undo on empty period error = %v, want ErrCompletionNotFound", err)
	}
}

func TestPeriodKeys_SortedAndDeduplicated(t *testing.T) {
	h := newTestHabit(t, period.Daily)
	for _, d := range []int{8, 6, 7, 6} {
		// The duplicate day 6 is dropped by CheckOff itself.
		_ = h.CheckOff(at(2024, time.January, d, 9))
	}

	keys := h.PeriodKeys()
	if len(keys) != 3 {
		t.Fatalf("got %d period keys, want 3", len(keys))
	}
	for i := 1; i < len(keys); i++ {
		if !keys[i-1].Before(keys[i]) {
			t.Errorf("period keys not strictly ascending: %v", keys)
		}
	}
}

func TestLastCompletion(t *testing.T) {
	h := newTestHabit(t, period.Daily)
	if _, ok := h.LastCompletion(); ok {
		t.Error("LastCompletion on empty history should report false")
	}

	want := at(2024, time.January, 9, 9)
	_ = h.CheckOff(at(2024, time.January, 4, 9))
	_ = h.CheckOff(want)

	got, ok := h.LastCompletion()
	if !ok || !got.Equal(want) {
		t.Errorf("LastCompletion = %v, %t, want %v, true", got, ok, want)
	}
}

func TestCollection(t *testing.T) {
	c := Collection{}
	for _, name := range []string{"Read", "Exercise", "Weekly Review"} {
		p := period.Daily
		if name == "Weekly Review" {
			p = period.Weekly
		}
		h, err := NewHabit(name, "", p, at(2024, time.January, 1, 0))
		if err != nil {
			t.Fatalf("NewHabit failed: %v", err)
		}
		c[name] = h
	}

	names := c.Names()
	want := []string{"Exercise", "Read", "Weekly Review"}
	for i, n := range want {
		if names[i] != n {
			t.Fatalf("Names() = %v, want %v", names, want)
		}
	}

	weekly := c.ByPeriodicity(period.Weekly)
	if len(weekly) != 1 || weekly[0].Name != "Weekly Review" {
		t.Errorf("ByPeriodicity(weekly) = %v, want [Weekly Review]", weekly)
	}
	if got := c.ByPeriodicity(period.Monthly); len(got) != 0 {
		t.Errorf("ByPeriodicity(monthly) = %v, want empty", got)
	}
}

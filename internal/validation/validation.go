package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/stride-sh/stride/internal/constants"
)

// MaxNameLength caps habit names so they stay usable as lookup keys and in
// table output.
const MaxNameLength = 64

// HabitName checks that a habit name is usable as its identity: non-empty
// after trimming and within the length cap.
func HabitName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fmt.Errorf("habit name must not be empty")
	}
	if trimmed != name {
		return fmt.Errorf("habit name must not have leading or trailing spaces")
	}
	if len(name) > MaxNameLength {
		return fmt.Errorf("habit name must be at most %d characters", MaxNameLength)
	}
	return nil
}

// Date parses a YYYY-MM-DD date string in the given location.
func Date(s string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(constants.DateFormat, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", s)
	}
	return t, nil
}

// Threshold checks that a struggling threshold is a sensible percentage.
func Threshold(percent float64) error {
	if percent < 0 || percent > 100 {
		return fmt.Errorf("threshold must be between 0 and 100, got %v", percent)
	}
	return nil
}

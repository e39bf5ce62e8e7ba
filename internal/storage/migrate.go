package storage

import "fmt"

// Migrate copies every habit from source to target, overwriting whatever the
// target holds. Both providers must already be initialized; the source is
// left untouched.
func Migrate(source, target Provider) error {
	if source.GetConfigPath() == target.GetConfigPath() {
		return fmt.Errorf("migration source and target are the same store: %s", source.GetConfigPath())
	}

	habits, err := source.LoadHabits()
	if err != nil {
		return fmt.Errorf("failed to load habits from source: %w", err)
	}
	if err := target.SaveHabits(habits); err != nil {
		return fmt.Errorf("failed to save habits to target: %w", err)
	}
	return nil
}

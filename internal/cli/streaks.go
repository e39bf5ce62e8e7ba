package cli

import (
	"fmt"

	"github.com/stride-sh/stride/internal/analytics"
	"github.com/stride-sh/stride/internal/validation"
)

type StreaksCmd struct {
	Date string `short:"d" help:"Reference date (YYYY-MM-DD). Defaults to today."`
}

func (c *StreaksCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	now, err := resolveDate(c.Date)
	if err != nil {
		return err
	}

	habits := ctx.Manager.Habits()
	if len(habits) == 0 {
		fmt.Println("No habits found")
		return nil
	}

	fmt.Println("Streaks:")
	for _, name := range habits.Names() {
		h := habits[name]
		fmt.Printf("  %s: current %d, longest %d (%s)\n",
			h.Name, analytics.CurrentStreak(h, now), analytics.LongestStreak(h), h.Periodicity)
	}
	return nil
}

type LongestCmd struct {
	Name string `arg:"" optional:"" help:"Habit to inspect. Omit to find the longest streak overall."`
}

func (c *LongestCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	if c.Name != "" {
		h, err := ctx.Manager.Get(c.Name)
		if err != nil {
			return err
		}
		streak := analytics.LongestStreak(h)
		fmt.Printf("Longest streak for %s: %d %s\n",
			h.Name, streak, pluralize(periodNoun(h.Periodicity), streak))
		return nil
	}

	streak, name := analytics.LongestStreakOverall(ctx.Manager.Habits())
	if name == "" {
		fmt.Println("No habits found")
		return nil
	}
	fmt.Printf("Longest streak overall: %d (%s)\n", streak, name)
	return nil
}

type BrokenCmd struct {
	Date string `short:"d" help:"Reference date (YYYY-MM-DD). Defaults to today."`
}

func (c *BrokenCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	now, err := resolveDate(c.Date)
	if err != nil {
		return err
	}

	broken := analytics.Broken(ctx.Manager.Habits(), now)
	if len(broken) == 0 {
		fmt.Println("No broken habits. Keep it up!")
		return nil
	}

	fmt.Println("Broken habits:")
	for _, name := range broken {
		fmt.Printf("  ✗ %s\n", name)
	}
	return nil
}

type StrugglingCmd struct {
	Threshold float64 `short:"t" help:"Struggling threshold as a percentage of the longest streak." default:"${struggling_threshold}"`
	Date      string  `short:"d" help:"Reference date (YYYY-MM-DD). Defaults to today."`
}

func (c *StrugglingCmd) Validate() error {
	return validation.Threshold(c.Threshold)
}

func (c *StrugglingCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	now, err := resolveDate(c.Date)
	if err != nil {
		return err
	}

	struggling := analytics.Struggling(ctx.Manager.Habits(), now, c.Threshold)
	if len(struggling) == 0 {
		fmt.Printf("No habits below %.0f%% of their longest streak\n", c.Threshold)
		return nil
	}

	fmt.Printf("Struggling habits (below %.0f%% of longest streak):\n", c.Threshold)
	for _, name := range struggling {
		fmt.Printf("  %s\n", name)
	}
	return nil
}

package cli

import (
	"fmt"
	"strings"

	"github.com/stride-sh/stride/internal/analytics"
	"github.com/stride-sh/stride/internal/constants"
	"github.com/stride-sh/stride/internal/period"
)

type CompareCmd struct {
	Names []string `arg:"" help:"Habits to compare side by side."`
	Date  string   `short:"d" help:"Reference date (YYYY-MM-DD). Defaults to today."`
}

func (c *CompareCmd) Validate() error {
	if len(c.Names) < 2 {
		return fmt.Errorf("compare needs at least two habit names")
	}
	return nil
}

func (c *CompareCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	now, err := resolveDate(c.Date)
	if err != nil {
		return err
	}

	comparisons := analytics.Compare(ctx.Manager.Habits(), c.Names, now)
	if len(comparisons) == 0 {
		fmt.Println("No matching habits found")
		return nil
	}

	fmt.Printf("%-20s %8s %8s %12s %7s\n", "Habit", "Current", "Longest", "Completions", "Broken")
	for _, cmp := range comparisons {
		fmt.Printf("%-20s %8d %8d %12d %7t\n",
			cmp.Name, cmp.CurrentStreak, cmp.LongestStreak, cmp.TotalCompletions, cmp.IsBroken)
	}
	return nil
}

type RankingsCmd struct {
	Date string `short:"d" help:"Reference date (YYYY-MM-DD). Defaults to today."`
}

func (c *RankingsCmd) Run(ctx *Context) error {
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

	rankings := analytics.RankAll(habits, now)

	fmt.Println("By current streak:")
	printRanking(rankings.ByCurrentStreak)
	fmt.Println("\nBy longest streak:")
	printRanking(rankings.ByLongestStreak)
	fmt.Println("\nBy total completions:")
	printRanking(rankings.ByCompletions)
	return nil
}

func printRanking(entries []analytics.StreakEntry) {
	for i, e := range entries {
		fmt.Printf("  %d. %s (%d)\n", i+1, e.Name, e.Streak)
	}
}

type OverviewCmd struct {
	Periodicity string `arg:"" optional:"" help:"Periodicity to summarize (daily|weekly|monthly|yearly). Defaults to daily."`
	Date        string `short:"d" help:"Reference date (YYYY-MM-DD). Defaults to today."`
}

func (c *OverviewCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	now, err := resolveDate(c.Date)
	if err != nil {
		return err
	}

	p := period.Daily
	if c.Periodicity != "" {
		if p, err = period.Parse(c.Periodicity); err != nil {
			return err
		}
	}

	overview := analytics.OverviewFor(ctx.Manager.Habits(), p, now)
	fmt.Printf("%s overview: %d habits, %d active, %d broken\n",
		overview.Periodicity, overview.TotalHabits, overview.ActiveCount, overview.BrokenCount)
	for _, s := range overview.PerHabit {
		marker := " "
		if s.IsBroken {
			marker = "✗"
		}
		fmt.Printf("  %s %s: current %d, longest %d\n", marker, s.Name, s.CurrentStreak, s.LongestStreak)
	}
	return nil
}

type StatsCmd struct {
	Date string `short:"d" help:"Reference date (YYYY-MM-DD). Defaults to today."`
}

func (c *StatsCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	now, err := resolveDate(c.Date)
	if err != nil {
		return err
	}

	stats, err := ctx.Manager.Stats(now)
	if err != nil {
		return err
	}

	fmt.Printf("Habits:       %d\n", stats.TotalHabits)
	fmt.Printf("Completions:  %d\n", stats.TotalCompletions)
	fmt.Printf("Active:       %d\n", stats.ActiveCount)
	fmt.Printf("Broken:       %d\n", stats.BrokenCount)
	fmt.Printf("Fingerprint:  %x\n", stats.Fingerprint)

	habits := ctx.Manager.Habits()
	if name, rate, ok := analytics.MostConsistentHabit(habits, now, constants.RateWindowDays); ok {
		fmt.Printf("Most consistent (last %d days): %s (%.1f%%)\n", constants.RateWindowDays, name, rate)
	}
	if weekday, count, ok := analytics.BestPerformingDay(habits, now, constants.BestDayWeeks); ok {
		fmt.Printf("Best day (last %d weeks): %s (%d %s)\n",
			constants.BestDayWeeks, weekday, count, pluralize("completion", count))
	}

	fmt.Println("\nBy periodicity:")
	for _, ps := range stats.ByPeriodicity {
		fmt.Printf("  %-8s %d habits, %d completions, %d broken\n",
			ps.Periodicity, ps.Count, ps.TotalCompletions, ps.BrokenCount)
	}
	return nil
}

type TrendCmd struct {
	Days int    `short:"n" default:"7" help:"Number of days to chart, ending at the reference date."`
	Date string `short:"d" help:"Reference date (YYYY-MM-DD). Defaults to today."`
}

func (c *TrendCmd) Validate() error {
	if c.Days < 1 {
		return fmt.Errorf("days must be at least 1, got %d", c.Days)
	}
	return nil
}

func (c *TrendCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	now, err := resolveDate(c.Date)
	if err != nil {
		return err
	}

	points := analytics.ProductivityTrend(ctx.Manager.Habits(), now, c.Days)
	fmt.Printf("Completions over the last %d %s:\n", c.Days, pluralize("day", c.Days))
	for _, p := range points {
		fmt.Printf("  %s  %3d  %s\n", p.Day, p.Count, strings.Repeat("█", p.Count))
	}
	return nil
}

package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/stride-sh/stride/internal/analytics"
	"github.com/stride-sh/stride/internal/constants"
	"github.com/stride-sh/stride/internal/models"
	"github.com/stride-sh/stride/internal/period"
	"github.com/stride-sh/stride/internal/validation"
)

type HabitAddCmd struct {
	Name        string `arg:"" optional:"" help:"Habit name. Omit to fill in interactively."`
	Description string `short:"d" help:"Short description of the habit."`
	Periodicity string `short:"p" help:"How often the habit is due (daily|weekly|monthly|yearly)." default:"daily"`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	if c.Name == "" {
		if err := c.prompt(); err != nil {
			return err
		}
	}

	p, err := period.Parse(c.Periodicity)
	if err != nil {
		return err
	}

	h, err := ctx.Manager.Create(c.Name, c.Description, p, time.Now())
	if err != nil {
		return err
	}

	fmt.Printf("Added habit: %s (%s)\n", h.Name, h.Periodicity)
	return nil
}

// prompt collects the habit fields through a form when no name argument was
// given.
func (c *HabitAddCmd) prompt() error {
	p := c.Periodicity
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit Name").
				Value(&c.Name).
				Validate(validation.HabitName),
			huh.NewInput().
				Title("Description").
				Value(&c.Description),
			huh.NewSelect[string]().
				Title("Periodicity").
				Options(
					huh.NewOption("Daily", string(period.Daily)),
					huh.NewOption("Weekly", string(period.Weekly)),
					huh.NewOption("Monthly", string(period.Monthly)),
					huh.NewOption("Yearly", string(period.Yearly)),
				).
				Value(&p),
		),
	).WithTheme(huh.ThemeDracula())

	if err := form.Run(); err != nil {
		return err
	}
	c.Periodicity = p
	return nil
}

type HabitListCmd struct {
	Periodicity string `short:"p" help:"Show only habits with this periodicity."`
	Date        string `short:"d" help:"Reference date (YYYY-MM-DD). Defaults to today."`
}

func (c *HabitListCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	collection := ctx.Manager.Habits()
	var habits []*models.Habit
	if c.Periodicity != "" {
		p, err := period.Parse(c.Periodicity)
		if err != nil {
			return err
		}
		habits = collection.ByPeriodicity(p)
	} else {
		for _, name := range collection.Names() {
			habits = append(habits, collection[name])
		}
	}

	if len(habits) == 0 {
		fmt.Println("No habits found")
		return nil
	}

	now, err := resolveDate(c.Date)
	if err != nil {
		return err
	}
	fmt.Println("Habits:")
	for _, h := range habits {
		streak := analytics.CurrentStreak(h, now)
		marker := " "
		if analytics.IsBroken(h, now) {
			marker = "✗"
		}
		fmt.Printf("  %s %s (%s) - streak: %d %s\n",
			marker, h.Name, h.Periodicity, streak, pluralize(periodNoun(h.Periodicity), streak))
		if h.Description != "" {
			fmt.Printf("      %s\n", h.Description)
		}
	}
	return nil
}

type HabitDescribeCmd struct {
	Name string `arg:"" help:"Habit to describe."`
	Date string `short:"d" help:"Reference date (YYYY-MM-DD). Defaults to today."`
}

func (c *HabitDescribeCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	h, err := ctx.Manager.Get(c.Name)
	if err != nil {
		return err
	}

	now, err := resolveDate(c.Date)
	if err != nil {
		return err
	}
	fmt.Printf("Name:         %s\n", h.Name)
	if h.Description != "" {
		fmt.Printf("Description:  %s\n", h.Description)
	}
	fmt.Printf("Periodicity:  %s\n", h.Periodicity)
	fmt.Printf("Created:      %s\n", h.CreatedAt.Format("2006-01-02"))
	fmt.Printf("Completions:  %d\n", len(h.Completions))
	fmt.Printf("Current:      %d\n", analytics.CurrentStreak(h, now))
	fmt.Printf("Longest:      %d\n", analytics.LongestStreak(h))
	fmt.Printf("Broken:       %t\n", analytics.IsBroken(h, now))
	fmt.Printf("Rate (%dd):    %.1f%%\n", constants.RateWindowDays, analytics.CompletionRate(h, now, constants.RateWindowDays))

	keys := h.PeriodKeys()
	if len(keys) > 0 {
		fmt.Println("\nCompleted periods:")
		for _, k := range keys {
			fmt.Printf("  %s\n", k)
		}
	}
	return nil
}

type HabitEditCmd struct {
	Name        string `arg:"" help:"Habit to edit."`
	Description string `short:"d" help:"New description." required:""`
}

func (c *HabitEditCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	// Name and periodicity are fixed; only the description can change.
	if err := ctx.Manager.UpdateDescription(c.Name, c.Description); err != nil {
		return err
	}
	fmt.Printf("Updated habit: %s\n", c.Name)
	return nil
}

type HabitDeleteCmd struct {
	Name  string `arg:"" help:"Habit to delete."`
	Force bool   `short:"f" help:"Delete without confirmation."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	h, err := ctx.Manager.Get(c.Name)
	if err != nil {
		return err
	}

	if !c.Force {
		fmt.Printf("Delete %q and its %d completions? [y/N]: ", h.Name, len(h.Completions))
		reader := bufio.NewReader(os.Stdin)
		response, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		response = strings.TrimSpace(strings.ToLower(response))
		if response != "y" && response != "yes" {
			fmt.Println("Delete cancelled.")
			return nil
		}
	}

	if err := ctx.Manager.Delete(c.Name); err != nil {
		return err
	}
	fmt.Printf("Deleted habit: %s\n", c.Name)
	return nil
}

package cli

import (
	"fmt"

	"github.com/stride-sh/stride/internal/analytics"
)

type CheckCmd struct {
	Names []string `arg:"" help:"Habits to check off."`
	Date  string   `short:"d" help:"Completion date (YYYY-MM-DD). Defaults to today."`
}

func (c *CheckCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	at, err := resolveDate(c.Date)
	if err != nil {
		return err
	}

	results, err := ctx.Manager.CheckOffMany(c.Names, at)
	if err != nil {
		return err
	}

	failed := 0
	for _, name := range c.Names {
		if resErr := results[name]; resErr != nil {
			fmt.Printf("✗ %s: %v\n", name, resErr)
			failed++
			continue
		}
		h, err := ctx.Manager.Get(name)
		if err != nil {
			return err
		}
		streak := analytics.CurrentStreak(h, at)
		fmt.Printf("✓ Checked off %s - streak: %d %s\n",
			name, streak, pluralize(periodNoun(h.Periodicity), streak))
	}
	if failed > 0 {
		return fmt.Errorf("failed to check off %d of %d habits", failed, len(c.Names))
	}
	return nil
}

type UndoCmd struct {
	Name string `arg:"" help:"Habit to undo a completion for."`
	Date string `short:"d" help:"Date whose period to clear (YYYY-MM-DD). Defaults to today."`
}

func (c *UndoCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	at, err := resolveDate(c.Date)
	if err != nil {
		return err
	}

	if err := ctx.Manager.Undo(c.Name, at); err != nil {
		return err
	}
	fmt.Printf("Removed completion for %s\n", c.Name)
	return nil
}

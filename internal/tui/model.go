// Package tui is the interactive dashboard: a habit list with streak
// summaries, check-off and undo, and a form for adding habits.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/huh"

	"github.com/stride-sh/stride/internal/analytics"
	"github.com/stride-sh/stride/internal/manager"
	"github.com/stride-sh/stride/internal/models"
	"github.com/stride-sh/stride/internal/period"
	"github.com/stride-sh/stride/internal/validation"
)

type SessionState int

const (
	StateList SessionState = iota
	StateAddHabit
	StateConfirmDelete
)

type Item struct {
	Habit   *models.Habit
	Current int
	Longest int
	Broken  bool
}

func (i Item) Title() string {
	if i.Broken {
		return brokenStyle.Render("✗ " + i.Habit.Name)
	}
	return i.Habit.Name
}

func (i Item) Description() string {
	return fmt.Sprintf("%s | current %d | longest %d", i.Habit.Periodicity, i.Current, i.Longest)
}

func (i Item) FilterValue() string { return i.Habit.Name }

type HabitFormModel struct {
	Name        string
	Description string
	Periodicity string
}

type Model struct {
	manager       *manager.Manager
	state         SessionState
	keys          KeyMap
	help          help.Model
	list          list.Model
	form          *huh.Form
	habitForm     *HabitFormModel
	habitToDelete string
	statusMessage string
	quitting      bool
	width         int
	height        int
}

func NewModel(mgr *manager.Manager) Model {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Habits"
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Check, keys.Undo, keys.Add, keys.Delete}
	}

	m := Model{
		manager: mgr,
		state:   StateList,
		keys:    keys,
		help:    help.New(),
		list:    l,
	}
	m.refreshItems()
	return m
}

// refreshItems rebuilds the list rows from the collection.
func (m *Model) refreshItems() {
	now := time.Now()
	habits := m.manager.Habits()
	items := make([]list.Item, 0, len(habits))
	for _, name := range habits.Names() {
		h := habits[name]
		items = append(items, Item{
			Habit:   h,
			Current: analytics.CurrentStreak(h, now),
			Longest: analytics.LongestStreak(h),
			Broken:  analytics.IsBroken(h, now),
		})
	}
	m.list.SetItems(items)
}

// newHabitForm builds the add-habit form.
func newHabitForm(fm *HabitFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit Name").
				Value(&fm.Name).
				Validate(validation.HabitName),
			huh.NewInput().
				Title("Description").
				Value(&fm.Description),
			huh.NewSelect[string]().
				Title("Periodicity").
				Options(
					huh.NewOption("Daily", string(period.Daily)),
					huh.NewOption("Weekly", string(period.Weekly)),
					huh.NewOption("Monthly", string(period.Monthly)),
					huh.NewOption("Yearly", string(period.Yearly)),
				).
				Value(&fm.Periodicity),
		),
	).WithTheme(huh.ThemeDracula())
}

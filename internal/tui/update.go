package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/stride-sh/stride/internal/period"
)

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v-2)
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case StateAddHabit:
			return m.updateAddHabit(msg)
		case StateConfirmDelete:
			return m.updateConfirmDelete(msg)
		}
		return m.updateList(msg)
	}

	if m.state == StateAddHabit && m.form != nil {
		return m.updateAddHabit(msg)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Check):
		if i, ok := m.list.SelectedItem().(Item); ok {
			if err := m.manager.CheckOff(i.Habit.Name, time.Now()); err != nil {
				m.statusMessage = fmt.Sprintf("Check-off failed: %v", err)
			} else {
				m.statusMessage = fmt.Sprintf("Checked off %s", i.Habit.Name)
				m.refreshItems()
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Undo):
		if i, ok := m.list.SelectedItem().(Item); ok {
			if err := m.manager.Undo(i.Habit.Name, time.Now()); err != nil {
				m.statusMessage = fmt.Sprintf("Undo failed: %v", err)
			} else {
				m.statusMessage = fmt.Sprintf("Removed completion for %s", i.Habit.Name)
				m.refreshItems()
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Add):
		m.habitForm = &HabitFormModel{Periodicity: string(period.Daily)}
		m.form = newHabitForm(m.habitForm)
		m.state = StateAddHabit
		return m, m.form.Init()

	case key.Matches(msg, m.keys.Delete):
		if i, ok := m.list.SelectedItem().(Item); ok {
			m.habitToDelete = i.Habit.Name
			m.state = StateConfirmDelete
		}
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		m.refreshItems()
		m.statusMessage = ""
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateAddHabit(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		p, err := period.Parse(m.habitForm.Periodicity)
		if err == nil {
			_, err = m.manager.Create(m.habitForm.Name, m.habitForm.Description, p, time.Now())
		}
		if err != nil {
			m.statusMessage = fmt.Sprintf("Add failed: %v", err)
		} else {
			m.statusMessage = fmt.Sprintf("Added %s", m.habitForm.Name)
			m.refreshItems()
		}
		m.state = StateList
		m.form = nil
		return m, nil

	case huh.StateAborted:
		m.state = StateList
		m.form = nil
		return m, nil
	}

	return m, cmd
}

func (m Model) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		if err := m.manager.Delete(m.habitToDelete); err != nil {
			m.statusMessage = fmt.Sprintf("Delete failed: %v", err)
		} else {
			m.statusMessage = fmt.Sprintf("Deleted %s", m.habitToDelete)
			m.refreshItems()
		}
		m.habitToDelete = ""
		m.state = StateList
	case "n", "N", "q", "esc":
		m.habitToDelete = ""
		m.state = StateList
	}
	return m, nil
}

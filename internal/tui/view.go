package tui

import (
	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case StateAddHabit:
		if m.form != nil {
			return docStyle.Render(m.form.View())
		}
	case StateConfirmDelete:
		return m.viewConfirmDelete()
	}

	status := ""
	if m.statusMessage != "" {
		status = statusStyle.Render(m.statusMessage)
	}

	return docStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		m.list.View(),
		status,
		m.help.View(m.keys),
	))
}

func (m Model) viewConfirmDelete() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render("Delete "+m.habitToDelete+" and its whole history?"),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}

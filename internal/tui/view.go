package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string

	switch m.state {
	case StateToday, StateHistory:
		content = docStyle.Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.viewDate(),
			m.habitList.View(),
			m.viewStats(),
		))
	case StateAddHabit:
		content = m.form.View()
	case StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	sections := []string{m.viewTabs(), content}
	if m.statusErr != "" {
		sections = append(sections, errorStyle.Render("  "+m.statusErr))
	}
	sections = append(sections, m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Today", "History"} {
		if m.state == SessionState(i) || (m.state != StateToday && m.state != StateHistory && m.previousState == SessionState(i)) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewDate() string {
	if m.state == StateHistory {
		return dateStyle.Render(m.date.Format("Mon Jan 2 2006")) + "  ←/→ change day, t today"
	}
	return dateStyle.Render(m.date.Format("Mon Jan 2 2006"))
}

func (m Model) viewStats() string {
	if m.stats.Total == 0 {
		return ""
	}

	summary := fmt.Sprintf("%d/%d completed (%.0f%%)",
		m.stats.Completed, m.stats.Total, m.stats.Percent*100)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.progress.ViewAs(m.stats.Percent),
		statsStyle(m.stats.Percent).Render(summary),
	)
}

func (m Model) viewConfirmDelete() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render("Delete this habit and its entire history?"),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}

package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"habitix/internal/constants"
	"habitix/internal/progress"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string

	switch m.state {
	case constants.StateDashboard:
		content = m.viewDashboard()
	case constants.StateJournal:
		content = docStyle.Render(m.journalModel.View())
	case constants.StateAnalytics:
		content = docStyle.Render(m.analyticsModel.View())
	case constants.StateCalendar:
		content = docStyle.Render(m.calendarModel.View())
	case constants.StateAddHabit, constants.StateAddEntry, constants.StateAddOccasion:
		content = m.form.View()
	case constants.StateViewEntry:
		content = m.viewEntry()
	}

	var banner string
	if m.toast != "" {
		banner = toastStyle.Render(m.toast)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewHeader(),
		m.viewTabs(),
		banner,
		content,
		m.help.View(m),
	)
}

func (m Model) viewHeader() string {
	state := m.store.State()
	sum := progress.Progress(state.Level, state.XP)
	return headerStyle.Render(fmt.Sprintf(" %s ", state.User)) +
		mutedStyle.Render(fmt.Sprintf("level %d · %d/%d xp · %s", state.Level, sum.XP, sum.Threshold, state.Theme))
}

var tabStates = []constants.SessionState{
	constants.StateDashboard,
	constants.StateJournal,
	constants.StateAnalytics,
	constants.StateCalendar,
}

// activeTab returns the tab index for the current state, or -1 when a form
// or detail view is open.
func (m Model) activeTab() int {
	for i, state := range tabStates {
		if m.state == state {
			return i
		}
	}
	return -1
}

func (m Model) viewTabs() string {
	var tabs []string
	tabTitles := []string{"Dashboard", "Journal", "Analytics", "Calendar"}
	active := m.activeTab()
	for i, title := range tabTitles {
		if i == active {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewDashboard() string {
	return docStyle.Render(m.dashboardModel.View())
}

func (m Model) viewEntry() string {
	if m.viewingEntry == nil {
		return ""
	}
	entry := m.viewingEntry
	header := headerStyle.Render(entry.Mood.Emoji() + " " + entry.Title)
	date := mutedStyle.Render(entry.Date.Format(constants.DateFormat))
	body := lipgloss.NewStyle().Width(m.width - 8).Render(entry.Content)
	footer := mutedStyle.Render("esc to go back")

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, header, date, "", body, "", footer))
}

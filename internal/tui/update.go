package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"habitix/internal/actions"
	"habitix/internal/constants"
	"habitix/internal/logger"
	"habitix/internal/models"
	"habitix/internal/tui/components/calendar"
	"habitix/internal/tui/components/dashboard"
	"habitix/internal/tui/components/journal"
	"habitix/internal/utils"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		// Leave room for the tab bar, toast line, and help
		contentHeight := msg.Height - 6
		if contentHeight < 1 {
			contentHeight = 1
		}
		m.dashboardModel.SetSize(msg.Width-4, contentHeight)
		m.journalModel.SetSize(msg.Width-4, contentHeight)
		m.analyticsModel.SetSize(msg.Width-4, contentHeight)
		m.calendarModel.SetSize(msg.Width-4, contentHeight)
	}

	// Handle Add Habit State
	if m.state == constants.StateAddHabit {
		if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
			m.state = constants.StateDashboard
			return m, nil
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		cmds = append(cmds, cmd)

		switch m.form.State {
		case huh.StateCompleted:
			if _, err := actions.CreateHabit(m.store, m.habitForm.Name, m.habitForm.Icon); err != nil {
				logger.Error("Failed to create habit", "error", err)
			}
			m.refresh()
			m.state = constants.StateDashboard
		case huh.StateAborted:
			m.state = constants.StateDashboard
		}
		return m, tea.Batch(cmds...)
	}

	// Handle Add Entry State
	if m.state == constants.StateAddEntry {
		if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
			m.state = constants.StateJournal
			return m, nil
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		cmds = append(cmds, cmd)

		switch m.form.State {
		case huh.StateCompleted:
			_, res, err := actions.SaveJournalEntry(m.store, m.entryForm.Title, m.entryForm.Content, m.entryForm.Mood)
			if err != nil {
				logger.Error("Failed to save journal entry", "error", err)
			} else if res.LeveledUp {
				m.toast = fmt.Sprintf("⬆ Level up! You reached level %d", res.Level)
			}
			m.refresh()
			m.state = constants.StateJournal
		case huh.StateAborted:
			m.state = constants.StateJournal
		}
		return m, tea.Batch(cmds...)
	}

	// Handle Add Occasion State
	if m.state == constants.StateAddOccasion {
		if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
			m.state = constants.StateCalendar
			return m, nil
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		cmds = append(cmds, cmd)

		switch m.form.State {
		case huh.StateCompleted:
			if _, err := actions.SaveOccasion(m.store, m.occasionForm.Date, m.occasionForm.Title, m.occasionForm.Color); err != nil {
				logger.Error("Failed to save occasion", "error", err)
			}
			m.refresh()
			m.state = constants.StateCalendar
		case huh.StateAborted:
			m.state = constants.StateCalendar
		}
		return m, tea.Batch(cmds...)
	}

	// Handle View Entry State
	if m.state == constants.StateViewEntry {
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch msg.String() {
			case "esc", "q", "enter":
				m.viewingEntry = nil
				m.state = constants.StateJournal
			case "ctrl+c":
				m.quitting = true
				return m, tea.Quit
			}
		}
		return m, nil
	}

	switch msg := msg.(type) {
	case dashboard.AddHabitMsg:
		m.habitForm = &HabitFormModel{Icon: "check"}
		m.form = NewHabitForm(m.habitForm)
		m.previousState = m.state
		m.state = constants.StateAddHabit
		return m, m.form.Init()

	case dashboard.ToggleHabitMsg:
		res, err := actions.ToggleHabit(m.store, msg.ID, utils.Today())
		if err != nil {
			logger.Error("Failed to toggle habit", "error", err)
		} else if res.LeveledUp {
			m.toast = fmt.Sprintf("⬆ Level up! You reached level %d", res.Level)
		}
		m.refresh()
		return m, nil

	case journal.AddEntryMsg:
		m.entryForm = &EntryFormModel{Mood: models.MoodNeutral}
		m.form = NewEntryForm(m.entryForm)
		m.previousState = m.state
		m.state = constants.StateAddEntry
		return m, m.form.Init()

	case journal.ViewEntryMsg:
		if entry := m.store.State().FindEntry(msg.ID); entry != nil {
			m.viewingEntry = entry
			m.previousState = m.state
			m.state = constants.StateViewEntry
		}
		return m, nil

	case calendar.AddOccasionMsg:
		m.occasionForm = &OccasionFormModel{
			Date:  msg.Date,
			Color: constants.DefaultOccasionColor,
		}
		m.form = NewOccasionForm(m.occasionForm)
		m.previousState = m.state
		m.state = constants.StateAddOccasion
		return m, m.form.Init()

	case calendar.DeleteOccasionMsg:
		if _, err := actions.DeleteOccasion(m.store, msg.ID); err != nil {
			logger.Error("Failed to delete occasion", "error", err)
		}
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		if handled, cmd := m.handleGlobalKeys(msg); handled {
			return m, cmd
		}
	}

	// Delegate to the active component
	var cmd tea.Cmd
	switch m.state {
	case constants.StateDashboard:
		m.dashboardModel, cmd = m.dashboardModel.Update(msg)
	case constants.StateJournal:
		m.journalModel, cmd = m.journalModel.Update(msg)
	case constants.StateAnalytics:
		m.analyticsModel, cmd = m.analyticsModel.Update(msg)
	case constants.StateCalendar:
		m.calendarModel, cmd = m.calendarModel.Update(msg)
	}
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// handleGlobalKeys handles key presses shared by every browse view
func (m *Model) handleGlobalKeys(msg tea.KeyMsg) (bool, tea.Cmd) {
	filtering := m.dashboardModel.Filtering() || m.journalModel.Filtering()

	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return true, tea.Quit
	case "q":
		if filtering {
			return false, nil
		}
		m.quitting = true
		return true, tea.Quit
	case "?":
		if filtering {
			return false, nil
		}
		m.help.ShowAll = !m.help.ShowAll
		return true, nil
	case "t":
		if filtering {
			return false, nil
		}
		theme, err := actions.ToggleTheme(m.store)
		if err != nil {
			logger.Error("Failed to toggle theme", "error", err)
		} else {
			m.toast = fmt.Sprintf("Theme: %s", theme)
		}
		return true, nil
	case "tab":
		m.toast = ""
		switch m.state {
		case constants.StateDashboard:
			m.state = constants.StateJournal
		case constants.StateJournal:
			m.state = constants.StateAnalytics
		case constants.StateAnalytics:
			m.state = constants.StateCalendar
		case constants.StateCalendar:
			m.state = constants.StateDashboard
		}
		return true, nil
	case "shift+tab":
		m.toast = ""
		switch m.state {
		case constants.StateDashboard:
			m.state = constants.StateCalendar
		case constants.StateJournal:
			m.state = constants.StateDashboard
		case constants.StateAnalytics:
			m.state = constants.StateJournal
		case constants.StateCalendar:
			m.state = constants.StateAnalytics
		}
		return true, nil
	}
	return false, nil
}

package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"habitix/internal/constants"
	"habitix/internal/models"
	"habitix/internal/storage"
	"habitix/internal/tui/components/analytics"
	"habitix/internal/tui/components/calendar"
	"habitix/internal/tui/components/dashboard"
	"habitix/internal/tui/components/journal"
)

type Model struct {
	store          storage.Provider
	state          constants.SessionState
	previousState  constants.SessionState
	keys           KeyMap
	help           help.Model
	dashboardModel dashboard.Model
	journalModel   journal.Model
	analyticsModel analytics.Model
	calendarModel  calendar.Model
	form           *huh.Form
	habitForm      *HabitFormModel
	entryForm      *EntryFormModel
	occasionForm   *OccasionFormModel
	viewingEntry   *models.JournalEntry
	toast          string
	quitting       bool
	width          int
	height         int
}

func NewModel(store storage.Provider) Model {
	state := store.State()

	return Model{
		store:          store,
		state:          constants.StateDashboard,
		keys:           DefaultKeyMap(),
		help:           help.New(),
		dashboardModel: dashboard.New(state.Habits, 0, 0),
		journalModel:   journal.New(state.Journal, 0, 0),
		analyticsModel: analytics.New(state.Habits, state.Level, state.XP, 0, 0),
		calendarModel:  calendar.New(state.Occasions, 0, 0),
	}
}

// refresh re-reads the app state into every component
func (m *Model) refresh() {
	state := m.store.State()
	m.dashboardModel.SetHabits(state.Habits)
	m.journalModel.SetEntries(state.Journal)
	m.analyticsModel.SetData(state.Habits, state.Level, state.XP)
	m.calendarModel.SetOccasions(state.Occasions)
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case constants.StateDashboard:
		keys = append(keys, m.keys.Add, m.keys.Toggle)
	case constants.StateJournal:
		keys = append(keys, m.keys.Add, m.keys.Enter)
	case constants.StateCalendar:
		keys = append(keys, m.keys.Add)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Theme, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Left, m.keys.Right, m.keys.Enter}

	var actions []key.Binding
	switch m.state {
	case constants.StateDashboard:
		actions = []key.Binding{m.keys.Add, m.keys.Toggle}
	case constants.StateJournal:
		actions = []key.Binding{m.keys.Add, m.keys.Enter}
	case constants.StateCalendar:
		actions = []key.Binding{m.keys.Add}
	}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}

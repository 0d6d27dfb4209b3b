package dashboard

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"habitix/internal/models"
	"habitix/internal/progress"
	"habitix/internal/utils"
)

type AddHabitMsg struct{}

type ToggleHabitMsg struct {
	ID string
}

type Item struct {
	Habit   models.Habit
	Checked bool
	Streak  int
}

func (i Item) Title() string {
	check := "○"
	if i.Checked {
		check = "✓"
	}
	return fmt.Sprintf("%s %s %s", check, iconGlyph(i.Habit.Icon), i.Habit.Name)
}

func (i Item) Description() string {
	if i.Streak > 0 {
		return fmt.Sprintf("🔥 %d day streak", i.Streak)
	}
	if i.Checked {
		return "completed today"
	}
	return "not completed today"
}

func (i Item) FilterValue() string { return i.Habit.Name }

func iconGlyph(icon string) string {
	switch icon {
	case "book":
		return "📖"
	case "barbell":
		return "🏋"
	case "drop":
		return "💧"
	case "moon":
		return "🌙"
	case "leaf":
		return "🌿"
	default:
		return "✔"
	}
}

type KeyMap struct {
	Add    key.Binding
	Toggle key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("space", "toggle"),
		),
	}
}

type Model struct {
	list  list.Model
	keys  KeyMap
	today string
}

func New(habits []models.Habit, width, height int) Model {
	today := utils.Today()

	l := list.New(buildItems(habits, today), list.NewDefaultDelegate(), width, height)
	l.Title = "Habits"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Toggle}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Toggle}
	}

	return Model{
		list:  l,
		keys:  keys,
		today: today,
	}
}

func buildItems(habits []models.Habit, today string) []list.Item {
	items := make([]list.Item, len(habits))
	for i, h := range habits {
		items[i] = Item{
			Habit:   h,
			Checked: h.DatesCompleted.Has(today),
			Streak:  progress.Streak(h, today),
		}
	}
	return items
}

func (m *Model) SetHabits(habits []models.Habit) {
	m.today = utils.Today()
	m.list.SetItems(buildItems(habits, m.today))
}

// Filtering reports whether the list filter input is capturing keys
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddHabitMsg{} }
		case key.Matches(msg, m.keys.Toggle):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return ToggleHabitMsg{ID: i.Habit.ID} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No habits yet.\n  Press 'a' to add one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

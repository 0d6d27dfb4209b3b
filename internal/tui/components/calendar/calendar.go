package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"habitix/internal/calendar"
	"habitix/internal/models"
	"habitix/internal/utils"
)

type AddOccasionMsg struct {
	Date string
}

type DeleteOccasionMsg struct {
	ID string
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	todayStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("205"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

type KeyMap struct {
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	Add       key.Binding
	Delete    key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev day"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next day"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "prev week"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next week"),
		),
		PrevMonth: key.NewBinding(
			key.WithKeys("p", "["),
			key.WithHelp("p", "prev month"),
		),
		NextMonth: key.NewBinding(
			key.WithKeys("n", "]"),
			key.WithHelp("n", "next month"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add occasion"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete occasion"),
		),
	}
}

type Model struct {
	occasions []models.Occasion
	selected  string
	year      int
	month     time.Month
	keys      KeyMap
	width     int
	height    int
}

func New(occasions []models.Occasion, width, height int) Model {
	today := utils.Today()
	now := time.Now()
	return Model{
		occasions: occasions,
		selected:  today,
		year:      now.Year(),
		month:     now.Month(),
		keys:      DefaultKeyMap(),
		width:     width,
		height:    height,
	}
}

func (m *Model) SetOccasions(occasions []models.Occasion) {
	m.occasions = occasions
}

// Selected returns the date the cursor is on
func (m Model) Selected() string {
	return m.selected
}

func (m *Model) moveSelection(days int) {
	next, err := utils.AddDays(m.selected, days)
	if err != nil {
		return
	}
	m.selected = next
	// Follow the cursor across month boundaries
	if t, err := utils.ParseDate(next); err == nil {
		m.year, m.month = t.Year(), t.Month()
	}
}

func (m *Model) shiftMonth(delta int) {
	t := time.Date(m.year, m.month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, delta, 0)
	m.year, m.month = t.Year(), t.Month()
	m.selected = utils.FormatDate(t)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Left):
			m.moveSelection(-1)
		case key.Matches(msg, m.keys.Right):
			m.moveSelection(1)
		case key.Matches(msg, m.keys.Up):
			m.moveSelection(-7)
		case key.Matches(msg, m.keys.Down):
			m.moveSelection(7)
		case key.Matches(msg, m.keys.PrevMonth):
			m.shiftMonth(-1)
		case key.Matches(msg, m.keys.NextMonth):
			m.shiftMonth(1)
		case key.Matches(msg, m.keys.Add):
			date := m.selected
			return m, func() tea.Msg { return AddOccasionMsg{Date: date} }
		case key.Matches(msg, m.keys.Delete):
			selected := calendar.OccasionsOn(m.occasions, m.selected)
			if len(selected) > 0 {
				id := selected[0].ID
				return m, func() tea.Msg { return DeleteOccasionMsg{ID: id} }
			}
		}
	}
	return m, nil
}

func (m Model) View() string {
	today := utils.Today()
	byDate := calendar.OccasionsByDate(m.occasions)
	cells := calendar.BuildMonthGrid(m.year, m.month, byDate, m.selected, today)

	var b strings.Builder
	b.WriteString(titleStyle.Render(calendar.MonthLabel(m.year, m.month)))
	b.WriteString("\n")
	for _, l := range []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"} {
		b.WriteString(dimStyle.Render(fmt.Sprintf(" %3s", l)))
	}
	b.WriteString("\n")

	for i, cell := range cells {
		label := fmt.Sprintf("%3d", cell.Day)
		switch {
		case cell.OtherMonth:
			label = dimStyle.Render(label)
		case cell.IsSelected:
			label = selectedStyle.Render(label)
		case cell.IsToday:
			label = todayStyle.Render(label)
		case cell.HasOccasions && cell.MarkerColor != "":
			label = lipgloss.NewStyle().Foreground(lipgloss.Color(cell.MarkerColor)).Render(label)
		case cell.HasOccasions:
			label = lipgloss.NewStyle().Bold(true).Render(label)
		}
		marker := " "
		if cell.HasOccasions && !cell.OtherMonth {
			marker = "•"
		}
		b.WriteString(label + marker)
		if (i+1)%7 == 0 {
			b.WriteString("\n")
		}
	}
	if len(cells)%7 != 0 {
		b.WriteString("\n")
	}

	b.WriteString("\n" + titleStyle.Render(m.selected) + "\n")
	selected := calendar.OccasionsOn(m.occasions, m.selected)
	if len(selected) == 0 {
		b.WriteString(dimStyle.Render("No occasions. Press 'a' to add one.") + "\n")
	} else {
		for _, occ := range selected {
			badge := lipgloss.NewStyle().Foreground(lipgloss.Color(occ.Color)).Render("●")
			b.WriteString(fmt.Sprintf("%s %s\n", badge, occ.Title))
		}
	}

	return b.String()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

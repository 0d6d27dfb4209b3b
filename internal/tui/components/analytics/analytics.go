package analytics

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"habitix/internal/analytics"
	"habitix/internal/models"
	"habitix/internal/progress"
	"habitix/internal/utils"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	barStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	bestStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
)

const barWidth = 20

type Model struct {
	habits []models.Habit
	level  int
	xp     int
	width  int
	height int
}

func New(habits []models.Habit, level, xp, width, height int) Model {
	return Model{
		habits: habits,
		level:  level,
		xp:     xp,
		width:  width,
		height: height,
	}
}

func (m *Model) SetData(habits []models.Habit, level, xp int) {
	m.habits = habits
	m.level = level
	m.xp = xp
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	return m, nil
}

func (m Model) View() string {
	report, err := analytics.Weekly(m.habits, utils.Today())
	if err != nil {
		return dimStyle.Render("Analytics unavailable.")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Weekly Activity"))
	b.WriteString("\n\n")

	for _, day := range report.Days {
		name := utils.WeekdayName(day.Date)
		filled := int(day.Percent / 100 * barWidth)
		if filled > barWidth {
			filled = barWidth
		}
		bar := barStyle.Render(strings.Repeat("█", filled)) +
			dimStyle.Render(strings.Repeat("░", barWidth-filled))
		b.WriteString(fmt.Sprintf("%-10s %s %d/%d\n", name, bar, day.Done, day.Possible))
	}

	best := report.BestDay
	if best != analytics.NoBestDay {
		best = bestStyle.Render(best)
	}
	b.WriteString(fmt.Sprintf("\nCompletion rate: %d%%   Best day: %s\n", report.Rate, best))

	sum := progress.Progress(m.level, m.xp)
	filled := int(sum.Percent / 100 * barWidth)
	if filled > barWidth {
		filled = barWidth
	}
	xpBar := barStyle.Render(strings.Repeat("█", filled)) +
		dimStyle.Render(strings.Repeat("░", barWidth-filled))

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(fmt.Sprintf("Level %d", m.level)))
	b.WriteString(fmt.Sprintf("\n%s %d/%d XP\n", xpBar, sum.XP, sum.Threshold))
	b.WriteString(fmt.Sprintf("Total completions: %d   Longest streak: %d\n",
		progress.TotalCompletions(m.habits),
		progress.MaxStreak(m.habits, utils.Today())))

	return b.String()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"habitix/internal/backup"
	"habitix/internal/logger"
	"habitix/internal/models"
	"habitix/internal/progress"
	"habitix/internal/storage"
)

type Context struct {
	Store storage.Provider
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	_, err := mgr.CreateBackup()
	if err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

var (
	checkedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	streakStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// FormatHabitLine renders one habit for list output, with today's check
// state and the live streak.
func FormatHabitLine(habit models.Habit, today string) string {
	check := "[ ]"
	if habit.DatesCompleted.Has(today) {
		check = checkedStyle.Render("[x]")
	}
	line := fmt.Sprintf("%s %s", check, habit.Name)
	if streak := progress.Streak(habit, today); streak > 0 {
		line += " " + streakStyle.Render(fmt.Sprintf("🔥 %d day streak", streak))
	}
	return line
}

// ShortID returns the first 8 characters of an id. Ids in a hand-edited
// document can be shorter than a UUID, so the prefix is bounds-checked.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// FormatXPBar renders a fixed-width progress bar for the current level.
func FormatXPBar(sum progress.Summary, width int) string {
	if width <= 0 {
		width = 20
	}
	filled := int(sum.Percent / 100 * float64(width))
	if filled > width {
		filled = width
	}
	bar := ""
	for i := 0; i < width; i++ {
		if i < filled {
			bar += "█"
		} else {
			bar += "░"
		}
	}
	return fmt.Sprintf("%s %d/%d XP", bar, sum.XP, sum.Threshold)
}

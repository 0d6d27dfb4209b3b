package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"habitix/internal/analytics"
	"habitix/internal/progress"
	"habitix/internal/utils"
)

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *Context) error {
	state := ctx.Store.State()
	today := utils.Today()

	report, err := analytics.Weekly(state.Habits, today)
	if err != nil {
		return err
	}

	titleStyle := lipgloss.NewStyle().Bold(true)
	fmt.Println(titleStyle.Render("Weekly Activity"))
	for _, day := range report.Days {
		name := utils.WeekdayName(day.Date)
		bar := renderActivityBar(day.Percent, 20)
		fmt.Printf("%-10s %s %d/%d\n", name, bar, day.Done, day.Possible)
	}

	fmt.Printf("\nCompletion rate: %d%%   Best day: %s\n", report.Rate, report.BestDay)

	sum := progress.Progress(state.Level, state.XP)
	fmt.Println()
	fmt.Println(titleStyle.Render(fmt.Sprintf("Level %d", state.Level)))
	fmt.Println(FormatXPBar(sum, 24))
	fmt.Printf("Total completions: %d   Longest streak: %s\n",
		progress.TotalCompletions(state.Habits),
		streakStyle.Render(fmt.Sprintf("%d", progress.MaxStreak(state.Habits, today))))
	return nil
}

func renderActivityBar(percent float64, width int) string {
	filled := int(percent / 100 * float64(width))
	if filled > width {
		filled = width
	}
	bar := checkedStyle.Render(strings.Repeat("█", filled)) +
		mutedStyle.Render(strings.Repeat("░", width-filled))
	return bar
}

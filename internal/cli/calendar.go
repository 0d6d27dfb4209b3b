package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"habitix/internal/calendar"
	"habitix/internal/utils"
)

type CalendarCmd struct {
	Month string `help:"Month to show in YYYY-MM format (default: current month)." default:""`
}

func (c *CalendarCmd) Run(ctx *Context) error {
	var year int
	var month time.Month
	if c.Month == "" {
		now := time.Now()
		year, month = now.Year(), now.Month()
	} else {
		var err error
		year, month, err = utils.ParseMonth(c.Month)
		if err != nil {
			return err
		}
	}

	today := utils.Today()
	byDate := calendar.OccasionsByDate(ctx.Store.State().Occasions)
	cells := calendar.BuildMonthGrid(year, month, byDate, today, today)

	fmt.Println(calendar.MonthLabel(year, month))
	fmt.Println(renderCalendarWeekdays())
	fmt.Print(renderCalendarCells(cells))

	occasions := calendar.OccasionsOn(ctx.Store.State().Occasions, today)
	if len(occasions) > 0 {
		fmt.Printf("\nToday:\n")
		for _, occ := range occasions {
			badge := lipgloss.NewStyle().Foreground(lipgloss.Color(occ.Color)).Render("●")
			fmt.Printf("  %s %s\n", badge, occ.Title)
		}
	}
	return nil
}

func renderCalendarWeekdays() string {
	labels := []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}
	var b strings.Builder
	for _, l := range labels {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("%3s", l)))
	}
	return b.String()
}

func renderCalendarCells(cells []calendar.Cell) string {
	var b strings.Builder
	for i, cell := range cells {
		label := "   "
		if !cell.OtherMonth {
			label = fmt.Sprintf("%3d", cell.Day)
			switch {
			case cell.IsToday:
				label = checkedStyle.Render(label)
			case cell.HasOccasions && cell.MarkerColor != "":
				label = lipgloss.NewStyle().Foreground(lipgloss.Color(cell.MarkerColor)).Render(label)
			case cell.HasOccasions:
				label = streakStyle.Render(label)
			}
		} else {
			label = mutedStyle.Render(fmt.Sprintf("%3d", cell.Day))
		}
		b.WriteString(label)
		if (i+1)%7 == 0 {
			b.WriteString("\n")
		}
	}
	if len(cells)%7 != 0 {
		b.WriteString("\n")
	}
	return b.String()
}

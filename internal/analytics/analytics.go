// Package analytics aggregates habit completions over the trailing week.
package analytics

import (
	"math"

	"habitix/internal/models"
	"habitix/internal/utils"
)

// WindowDays is the size of the analytics window
const WindowDays = 7

// NoBestDay is reported when no day in the window has a completion
const NoBestDay = "-"

// DayStat is one day's completion tally
type DayStat struct {
	Date     string
	Done     int
	Possible int
	Percent  float64
}

// WeeklyReport covers the 7 calendar days ending at today, oldest first.
type WeeklyReport struct {
	Days          []DayStat
	TotalDone     int
	TotalPossible int
	// Rate is the aggregate completion percentage, rounded.
	Rate int
	// BestDay is the weekday name of the day with the most completions,
	// or NoBestDay when nothing was completed all week.
	BestDay string
}

// Weekly computes the trailing-week report. Every currently existing habit
// counts as possible for every day in the window, including days before the
// habit was created.
func Weekly(habits []models.Habit, today string) (WeeklyReport, error) {
	days, err := utils.LastNDays(today, WindowDays)
	if err != nil {
		return WeeklyReport{}, err
	}

	report := WeeklyReport{
		Days:    make([]DayStat, 0, WindowDays),
		BestDay: NoBestDay,
	}
	maxDone := 0

	for _, date := range days {
		possible := len(habits)
		done := 0
		for _, h := range habits {
			if h.DatesCompleted.Has(date) {
				done++
			}
		}

		report.TotalPossible += possible
		report.TotalDone += done

		// Strictly-highest wins, so ties keep the earliest day.
		if done > maxDone {
			maxDone = done
			report.BestDay = utils.WeekdayName(date)
		}

		percent := 0.0
		if possible > 0 {
			percent = float64(done) / float64(possible) * 100
		}
		report.Days = append(report.Days, DayStat{
			Date:     date,
			Done:     done,
			Possible: possible,
			Percent:  percent,
		})
	}

	if report.TotalPossible > 0 {
		report.Rate = int(math.Round(float64(report.TotalDone) / float64(report.TotalPossible) * 100))
	}
	return report, nil
}

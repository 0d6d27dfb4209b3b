// Package calendar builds the month grid the calendar views render.
package calendar

import (
	"fmt"
	"time"

	"habitix/internal/models"
)

// Cell is one day cell in a month grid. Padding cells carry the previous
// month's trailing day numbers and are not interactive.
type Cell struct {
	Day        int
	Date       string // YYYY-MM-DD; empty on padding cells
	OtherMonth bool
	IsToday    bool
	IsSelected bool
	// HasOccasions marks the cell with a dot. MarkerColor carries the
	// occasion's own color when exactly one occasion falls on the day;
	// otherwise it is empty and the renderer uses a neutral indicator.
	HasOccasions bool
	MarkerColor  string
}

// BuildMonthGrid produces the cells for a month: leading padding for the tail
// of the previous month, then one cell per day. The grid is exactly
// leadingPad + lastDay cells; there is no trailing padding. Weekday columns
// start at Sunday.
func BuildMonthGrid(year int, month time.Month, occasionsByDate map[string][]models.Occasion, selectedDate, today string) []Cell {
	firstDayIndex := int(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday())
	lastDay := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	prevLastDay := time.Date(year, month, 0, 0, 0, 0, 0, time.UTC).Day()

	cells := make([]Cell, 0, firstDayIndex+lastDay)

	for i := firstDayIndex; i > 0; i-- {
		cells = append(cells, Cell{
			Day:        prevLastDay - i + 1,
			OtherMonth: true,
		})
	}

	for day := 1; day <= lastDay; day++ {
		date := fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
		cell := Cell{
			Day:        day,
			Date:       date,
			IsToday:    date == today,
			IsSelected: date == selectedDate,
		}
		if occs := occasionsByDate[date]; len(occs) > 0 {
			cell.HasOccasions = true
			if len(occs) == 1 {
				cell.MarkerColor = occs[0].Color
			}
		}
		cells = append(cells, cell)
	}

	return cells
}

// MonthLabel formats a month heading, e.g. "June 2025".
func MonthLabel(year int, month time.Month) string {
	return fmt.Sprintf("%s %d", month.String(), year)
}

// OccasionsByDate groups occasions by their date key, preserving insertion
// order within a day.
func OccasionsByDate(occasions []models.Occasion) map[string][]models.Occasion {
	byDate := make(map[string][]models.Occasion, len(occasions))
	for _, o := range occasions {
		byDate[o.Date] = append(byDate[o.Date], o)
	}
	return byDate
}

// OccasionsOn returns the occasions falling on the given day, in insertion
// order.
func OccasionsOn(occasions []models.Occasion, date string) []models.Occasion {
	var out []models.Occasion
	for _, o := range occasions {
		if o.Date == date {
			out = append(out, o)
		}
	}
	return out
}

package calendar

import (
	"testing"
	"time"

	"habitix/internal/models"
)

func TestBuildMonthGridShape(t *testing.T) {
	tests := []struct {
		name      string
		year      int
		month     time.Month
		wantPad   int
		wantCells int
	}{
		{
			// April 2026 starts on a Wednesday and has 30 days.
			name:      "weekday index 3 with 30 days",
			year:      2026,
			month:     time.April,
			wantPad:   3,
			wantCells: 33,
		},
		{
			// June 2025 starts on a Sunday, so there is no padding.
			name:      "month starting on Sunday",
			year:      2025,
			month:     time.June,
			wantPad:   0,
			wantCells: 30,
		},
		{
			// August 2025 starts on a Friday and has 31 days.
			name:      "weekday index 5 with 31 days",
			year:      2025,
			month:     time.August,
			wantPad:   5,
			wantCells: 36,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cells := BuildMonthGrid(tt.year, tt.month, nil, "", "")
			if len(cells) != tt.wantCells {
				t.Fatalf("BuildMonthGrid() returned %d cells, want %d", len(cells), tt.wantCells)
			}
			for i := 0; i < tt.wantPad; i++ {
				if !cells[i].OtherMonth {
					t.Errorf("cell %d: OtherMonth = false, want true", i)
				}
				if cells[i].Date != "" {
					t.Errorf("cell %d: padding cell has date %q", i, cells[i].Date)
				}
			}
			if tt.wantPad < len(cells) && cells[tt.wantPad].OtherMonth {
				t.Errorf("cell %d: first real day marked as padding", tt.wantPad)
			}
			last := cells[len(cells)-1]
			if last.Day != tt.wantCells-tt.wantPad {
				t.Errorf("last cell day = %d, want %d", last.Day, tt.wantCells-tt.wantPad)
			}
		})
	}
}

func TestBuildMonthGridPaddingLabels(t *testing.T) {
	// April 2026's padding shows the tail of March: 29, 30, 31.
	cells := BuildMonthGrid(2026, time.April, nil, "", "")
	want := []int{29, 30, 31}
	for i, w := range want {
		if cells[i].Day != w {
			t.Errorf("padding cell %d: day = %d, want %d", i, cells[i].Day, w)
		}
	}
}

func TestBuildMonthGridFlags(t *testing.T) {
	today := "2025-06-15"
	selected := "2025-06-20"
	cells := BuildMonthGrid(2025, time.June, nil, selected, today)

	for _, c := range cells {
		switch c.Date {
		case today:
			if !c.IsToday {
				t.Errorf("cell %s: IsToday = false", c.Date)
			}
		case selected:
			if !c.IsSelected {
				t.Errorf("cell %s: IsSelected = false", c.Date)
			}
		default:
			if c.IsToday || c.IsSelected {
				t.Errorf("cell %s: unexpected flags today=%v selected=%v", c.Date, c.IsToday, c.IsSelected)
			}
		}
	}
}

func TestBuildMonthGridMarkers(t *testing.T) {
	occasions := []models.Occasion{
		{ID: "1", Date: "2025-06-10", Title: "Dentist", Color: "#ef4444"},
		{ID: "2", Date: "2025-06-20", Title: "Party", Color: "#22c55e"},
		{ID: "3", Date: "2025-06-20", Title: "Call home", Color: "#3b82f6"},
	}
	cells := BuildMonthGrid(2025, time.June, OccasionsByDate(occasions), "", "")

	for _, c := range cells {
		switch c.Date {
		case "2025-06-10":
			if !c.HasOccasions || c.MarkerColor != "#ef4444" {
				t.Errorf("single-occasion day: HasOccasions=%v color=%q", c.HasOccasions, c.MarkerColor)
			}
		case "2025-06-20":
			// Two occasions on one day fall back to the neutral marker.
			if !c.HasOccasions || c.MarkerColor != "" {
				t.Errorf("multi-occasion day: HasOccasions=%v color=%q", c.HasOccasions, c.MarkerColor)
			}
		default:
			if c.HasOccasions {
				t.Errorf("cell %s: unexpected occasion marker", c.Date)
			}
		}
	}
}

func TestOccasionsOn(t *testing.T) {
	occasions := []models.Occasion{
		{ID: "1", Date: "2025-06-10", Title: "First"},
		{ID: "2", Date: "2025-06-11", Title: "Other"},
		{ID: "3", Date: "2025-06-10", Title: "Second"},
	}

	got := OccasionsOn(occasions, "2025-06-10")
	if len(got) != 2 {
		t.Fatalf("OccasionsOn() returned %d occasions, want 2", len(got))
	}
	if got[0].Title != "First" || got[1].Title != "Second" {
		t.Errorf("OccasionsOn() order = %s, %s; want First, Second", got[0].Title, got[1].Title)
	}

	if empty := OccasionsOn(occasions, "2025-06-12"); len(empty) != 0 {
		t.Errorf("OccasionsOn() for empty day returned %d occasions", len(empty))
	}
}

func TestMonthLabel(t *testing.T) {
	if got := MonthLabel(2025, time.June); got != "June 2025" {
		t.Errorf("MonthLabel() = %q, want %q", got, "June 2025")
	}
}

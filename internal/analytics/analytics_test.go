package analytics

import (
	"testing"

	"habitix/internal/models"
)

func TestWeeklyZeroHabits(t *testing.T) {
	report, err := Weekly(nil, "2025-06-15")
	if err != nil {
		t.Fatalf("Weekly() returned unexpected error: %v", err)
	}
	if report.Rate != 0 {
		t.Errorf("Weekly() rate = %d, want 0", report.Rate)
	}
	if report.BestDay != NoBestDay {
		t.Errorf("Weekly() best day = %q, want %q", report.BestDay, NoBestDay)
	}
	if len(report.Days) != WindowDays {
		t.Fatalf("Weekly() returned %d days, want %d", len(report.Days), WindowDays)
	}
	for _, d := range report.Days {
		if d.Percent != 0 {
			t.Errorf("day %s percent = %f, want 0", d.Date, d.Percent)
		}
	}
}

func TestWeeklyWindow(t *testing.T) {
	report, err := Weekly(nil, "2025-06-15")
	if err != nil {
		t.Fatalf("Weekly() returned unexpected error: %v", err)
	}
	if report.Days[0].Date != "2025-06-09" {
		t.Errorf("first day = %s, want 2025-06-09", report.Days[0].Date)
	}
	if report.Days[6].Date != "2025-06-15" {
		t.Errorf("last day = %s, want 2025-06-15", report.Days[6].Date)
	}
}

func TestWeeklyBestDayAndRate(t *testing.T) {
	// 2025-06-12 is a Thursday; both habits completed there, nothing else
	// all week.
	habits := []models.Habit{
		{ID: "a", DatesCompleted: models.NewDateSet("2025-06-12")},
		{ID: "b", DatesCompleted: models.NewDateSet("2025-06-12")},
	}
	report, err := Weekly(habits, "2025-06-15")
	if err != nil {
		t.Fatalf("Weekly() returned unexpected error: %v", err)
	}

	if report.BestDay != "Thursday" {
		t.Errorf("best day = %q, want Thursday", report.BestDay)
	}
	if report.TotalDone != 2 {
		t.Errorf("total done = %d, want 2", report.TotalDone)
	}
	if report.TotalPossible != 14 {
		t.Errorf("total possible = %d, want 14", report.TotalPossible)
	}
	// round(100 * 2/14) = 14
	if report.Rate != 14 {
		t.Errorf("rate = %d, want 14", report.Rate)
	}
}

func TestWeeklyBestDayTieKeepsEarliest(t *testing.T) {
	// One completion each on Tuesday (06-10) and Friday (06-13); the tie
	// keeps the earlier day.
	habits := []models.Habit{
		{ID: "a", DatesCompleted: models.NewDateSet("2025-06-10", "2025-06-13")},
	}
	report, err := Weekly(habits, "2025-06-15")
	if err != nil {
		t.Fatalf("Weekly() returned unexpected error: %v", err)
	}
	if report.BestDay != "Tuesday" {
		t.Errorf("best day = %q, want Tuesday", report.BestDay)
	}
}

func TestWeeklyPerDayStats(t *testing.T) {
	habits := []models.Habit{
		{ID: "a", DatesCompleted: models.NewDateSet("2025-06-15", "2025-06-14")},
		{ID: "b", DatesCompleted: models.NewDateSet("2025-06-15")},
	}
	report, err := Weekly(habits, "2025-06-15")
	if err != nil {
		t.Fatalf("Weekly() returned unexpected error: %v", err)
	}

	last := report.Days[6]
	if last.Done != 2 || last.Possible != 2 {
		t.Errorf("today: done/possible = %d/%d, want 2/2", last.Done, last.Possible)
	}
	if last.Percent != 100 {
		t.Errorf("today percent = %f, want 100", last.Percent)
	}

	yesterday := report.Days[5]
	if yesterday.Done != 1 || yesterday.Percent != 50 {
		t.Errorf("yesterday: done = %d percent = %f, want 1 and 50", yesterday.Done, yesterday.Percent)
	}
}

func TestWeeklyBadDate(t *testing.T) {
	if _, err := Weekly(nil, "June 15"); err == nil {
		t.Error("Weekly() with malformed date expected error, got nil")
	}
}

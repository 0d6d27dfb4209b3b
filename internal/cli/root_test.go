package cli

import (
	"strings"
	"testing"

	"habitix/internal/models"
	"habitix/internal/progress"
)

func TestFormatHabitLine(t *testing.T) {
	today := "2025-06-15"

	checked := models.Habit{
		Name:           "Read",
		DatesCompleted: models.NewDateSet("2025-06-15", "2025-06-14", "2025-06-13"),
	}
	line := FormatHabitLine(checked, today)
	if !strings.Contains(line, "[x]") {
		t.Errorf("checked habit missing [x]: %q", line)
	}
	if !strings.Contains(line, "3 day streak") {
		t.Errorf("expected streak in line: %q", line)
	}

	unchecked := models.Habit{
		Name:           "Meditate",
		DatesCompleted: models.NewDateSet(),
	}
	line = FormatHabitLine(unchecked, today)
	if !strings.Contains(line, "[ ]") {
		t.Errorf("unchecked habit missing [ ]: %q", line)
	}
	if strings.Contains(line, "streak") {
		t.Errorf("zero streak should not render: %q", line)
	}
}

func TestShortID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want string
	}{
		{"uuid truncated", "2b2e1f0a-9c41-4f7e-8a33-1d2e3f4a5b6c", "2b2e1f0a"},
		{"short id kept whole", "h1", "h1"},
		{"exactly eight", "abcdefgh", "abcdefgh"},
		{"empty", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ShortID(tc.id); got != tc.want {
				t.Errorf("ShortID(%q) = %q, want %q", tc.id, got, tc.want)
			}
		})
	}
}

func TestFormatXPBar(t *testing.T) {
	bar := FormatXPBar(progress.Progress(1, 50), 10)
	if !strings.Contains(bar, "50/100 XP") {
		t.Errorf("bar = %q, want xp fraction", bar)
	}
	if strings.Count(bar, "█") != 5 {
		t.Errorf("bar = %q, want 5 filled cells", bar)
	}
	if strings.Count(bar, "░") != 5 {
		t.Errorf("bar = %q, want 5 empty cells", bar)
	}

	// Level 2 threshold is 200
	bar = FormatXPBar(progress.Progress(2, 0), 10)
	if !strings.Contains(bar, "0/200 XP") {
		t.Errorf("bar = %q", bar)
	}
	if strings.Count(bar, "█") != 0 {
		t.Errorf("empty bar has filled cells: %q", bar)
	}
}

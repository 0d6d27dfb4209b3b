// Package progress computes streaks and XP/level progression from the
// application state. Everything here is a pure function over a snapshot;
// only AddXP mutates, and it touches nothing but the XP counters.
package progress

import (
	"habitix/internal/constants"
	"habitix/internal/models"
	"habitix/internal/utils"
)

// Streak returns the number of consecutive calendar days of completion
// ending at the habit's most recent completed date. The streak only counts
// as live when that last completion is today or yesterday; anything older
// is broken and reports 0.
func Streak(habit models.Habit, today string) int {
	dates := habit.DatesCompleted.SortedDesc()
	if len(dates) == 0 {
		return 0
	}

	last, err := utils.ParseDate(dates[0])
	if err != nil {
		return 0
	}
	diff, err := utils.DaysApart(today, dates[0])
	if err != nil {
		return 0
	}
	if diff < 0 {
		diff = -diff
	}
	if diff > 1 {
		return 0
	}

	streak := 0
	expected := last
	for _, ds := range dates {
		cur, err := utils.ParseDate(ds)
		if err != nil {
			continue
		}
		if cur.Equal(expected) {
			streak++
			expected = expected.AddDate(0, 0, -1)
		} else if cur.Before(expected) {
			// Gap found, e.g. today then three days ago.
			break
		}
		// Dates after the expected cursor are duplicates; skip them.
	}
	return streak
}

// MaxStreak returns the highest live streak among all habits.
func MaxStreak(habits []models.Habit, today string) int {
	max := 0
	for _, h := range habits {
		if s := Streak(h, today); s > max {
			max = s
		}
	}
	return max
}

// TotalCompletions counts every check-in across all habits and all history.
func TotalCompletions(habits []models.Habit) int {
	total := 0
	for _, h := range habits {
		total += h.DatesCompleted.Len()
	}
	return total
}

// NextLevelXP returns the XP required to clear the given level.
func NextLevelXP(level int) int {
	return level * constants.XPPerLevel
}

// Summary describes progress within the current level.
type Summary struct {
	XP        int
	Threshold int
	Percent   float64
}

// Progress returns the XP progress toward the next level.
func Progress(level, xp int) Summary {
	threshold := NextLevelXP(level)
	return Summary{
		XP:        xp,
		Threshold: threshold,
		Percent:   float64(xp) / float64(threshold) * 100,
	}
}

// AddXP adds the award to the state's XP and consumes level thresholds while
// the balance covers them, so a single large award can advance several
// levels. It reports whether at least one level-up occurred.
func AddXP(state *models.AppState, amount int) bool {
	state.XP += amount
	leveled := false
	for state.XP >= NextLevelXP(state.Level) {
		state.XP -= NextLevelXP(state.Level)
		state.Level++
		leveled = true
	}
	return leveled
}

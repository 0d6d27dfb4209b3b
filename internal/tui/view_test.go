package tui

import (
	"testing"

	"habitix/internal/constants"
)

func TestActiveTab(t *testing.T) {
	tests := []struct {
		name  string
		state constants.SessionState
		want  int
	}{
		{"dashboard", constants.StateDashboard, 0},
		{"journal", constants.StateJournal, 1},
		{"analytics", constants.StateAnalytics, 2},
		{"calendar", constants.StateCalendar, 3},
		{"habit form has no tab", constants.StateAddHabit, -1},
		{"entry view has no tab", constants.StateViewEntry, -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := Model{state: tc.state}
			if got := m.activeTab(); got != tc.want {
				t.Errorf("activeTab() = %d, want %d", got, tc.want)
			}
		})
	}
}

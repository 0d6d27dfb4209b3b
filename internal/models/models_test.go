package models

import (
	"encoding/json"
	"testing"
)

func TestDateSetDedupe(t *testing.T) {
	ds := NewDateSet("2025-06-01", "2025-06-01", "2025-06-02")
	if ds.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", ds.Len())
	}

	ds.Add("2025-06-02")
	if ds.Len() != 2 {
		t.Fatalf("Len() after duplicate add = %d, want 2", ds.Len())
	}

	ds.Remove("2025-06-01")
	if ds.Has("2025-06-01") {
		t.Error("date still present after Remove")
	}
	if !ds.Has("2025-06-02") {
		t.Error("unrelated date removed")
	}
}

func TestDateSetSorted(t *testing.T) {
	ds := NewDateSet("2025-06-15", "2025-01-03", "2025-06-01")

	got := ds.Sorted()
	want := []string{"2025-01-03", "2025-06-01", "2025-06-15"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Sorted() = %v, want %v", got, want)
		}
	}

	desc := ds.SortedDesc()
	for i := range want {
		if desc[i] != want[len(want)-1-i] {
			t.Fatalf("SortedDesc() = %v", desc)
		}
	}
}

func TestDateSetJSON(t *testing.T) {
	ds := NewDateSet("2025-06-02", "2025-06-01")

	data, err := json.Marshal(ds)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `["2025-06-01","2025-06-02"]` {
		t.Errorf("marshaled as %s, want sorted array", data)
	}

	var decoded DateSet
	if err := json.Unmarshal([]byte(`["2025-06-01","2025-06-01","2025-06-03"]`), &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Len() != 2 {
		t.Errorf("duplicate dates survived unmarshal: %v", decoded.Sorted())
	}
}

func TestDefaultState(t *testing.T) {
	state := DefaultState()

	if state.Level != 1 {
		t.Errorf("Level = %d, want 1", state.Level)
	}
	if state.XP != 0 {
		t.Errorf("XP = %d, want 0", state.XP)
	}
	if state.Theme != ThemeDark {
		t.Errorf("Theme = %q, want dark", state.Theme)
	}
	if state.IsAuthenticated {
		t.Error("new state should not be authenticated")
	}
	if state.Habits == nil || state.Journal == nil || state.Occasions == nil {
		t.Error("collections should be initialized, not nil")
	}
}

func TestFindHabit(t *testing.T) {
	state := DefaultState()
	state.Habits = append(state.Habits, Habit{ID: "h1", Name: "Read"})

	if h := state.FindHabit("h1"); h == nil || h.Name != "Read" {
		t.Fatalf("FindHabit(h1) = %v", h)
	}

	// The pointer must alias the slice element so mutations persist
	state.FindHabit("h1").Name = "Read more"
	if state.Habits[0].Name != "Read more" {
		t.Error("FindHabit returned a copy")
	}

	if h := state.FindHabit("missing"); h != nil {
		t.Errorf("FindHabit(missing) = %v, want nil", h)
	}
}

func TestThemeToggle(t *testing.T) {
	if got := ThemeDark.Toggle(); got != ThemeLight {
		t.Errorf("dark toggles to %q", got)
	}
	if got := ThemeLight.Toggle(); got != ThemeDark {
		t.Errorf("light toggles to %q", got)
	}
	if Theme("neon").Valid() {
		t.Error("unknown theme reported valid")
	}
}

func TestMood(t *testing.T) {
	for _, mood := range Moods() {
		if !mood.Valid() {
			t.Errorf("listed mood %q not valid", mood)
		}
		if mood.Emoji() == "" {
			t.Errorf("mood %q has no emoji", mood)
		}
	}

	if Mood("grumpy").Valid() {
		t.Error("unknown mood reported valid")
	}
	if got := Mood("grumpy").Emoji(); got != MoodNeutral.Emoji() {
		t.Errorf("unknown mood emoji = %q, want neutral fallback", got)
	}
}

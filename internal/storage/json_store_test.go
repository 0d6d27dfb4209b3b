package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"habitix/internal/models"
)

func newTestJSONStore(t *testing.T) *JSONStore {
	t.Helper()
	return NewJSONStore(filepath.Join(t.TempDir(), "habitix.json"))
}

func TestJSONStoreLoadAbsentFallsBackToDefaults(t *testing.T) {
	store := newTestJSONStore(t)
	if err := store.Load(); err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	state := store.State()
	if state.Level != 1 || state.XP != 0 {
		t.Errorf("default state level/xp = %d/%d, want 1/0", state.Level, state.XP)
	}
	if state.Theme != models.ThemeDark {
		t.Errorf("default theme = %s, want dark", state.Theme)
	}
	if state.User != "User" || state.IsAuthenticated {
		t.Errorf("default user = %q authenticated = %v", state.User, state.IsAuthenticated)
	}
	if len(state.Habits) != 0 || len(state.Journal) != 0 || len(state.Occasions) != 0 {
		t.Error("default state has non-empty collections")
	}
}

func TestJSONStoreLoadRepairsMissingDateSet(t *testing.T) {
	store := newTestJSONStore(t)
	doc := `{"habits":[{"id":"h1","name":"Read","icon":"book"}]}`
	if err := os.WriteFile(store.GetConfigPath(), []byte(doc), 0600); err != nil {
		t.Fatal(err)
	}

	if err := store.Load(); err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	habit := store.State().FindHabit("h1")
	if habit == nil {
		t.Fatal("habit missing after load")
	}
	if habit.DatesCompleted == nil {
		t.Fatal("datesCompleted is nil after load")
	}
	// The repaired set must be writable
	habit.DatesCompleted.Add("2025-06-15")
	if !habit.DatesCompleted.Has("2025-06-15") {
		t.Error("repaired set did not accept a date")
	}
}

func TestJSONStoreLoadCorruptFallsBackToDefaults(t *testing.T) {
	store := newTestJSONStore(t)
	if err := os.WriteFile(store.GetConfigPath(), []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}

	if err := store.Load(); err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if store.State().Level != 1 {
		t.Errorf("corrupt load level = %d, want default 1", store.State().Level)
	}
}

func TestJSONStoreRoundTrip(t *testing.T) {
	store := newTestJSONStore(t)
	if err := store.Load(); err != nil {
		t.Fatal(err)
	}

	state := store.State()
	state.Habits = append(state.Habits, models.Habit{
		ID:             "h1",
		Name:           "Read",
		Icon:           "book",
		DatesCompleted: models.NewDateSet("2025-06-14", "2025-06-15"),
		Created:        time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC),
	})
	state.Journal = append(state.Journal, models.JournalEntry{
		ID:      "j1",
		Date:    time.Date(2025, 6, 15, 21, 30, 0, 0, time.UTC),
		Title:   "Good day",
		Content: "Finished the book.",
		Mood:    models.MoodHappy,
	})
	state.Occasions = append(state.Occasions, models.Occasion{
		ID:    "o1",
		Date:  "2025-06-20",
		Title: "Party",
		Color: "#22c55e",
	})
	state.XP = 45
	state.Level = 2
	state.Theme = models.ThemeLight
	state.User = "Ada"
	state.IsAuthenticated = true

	if err := store.Save(); err != nil {
		t.Fatalf("Save() returned unexpected error: %v", err)
	}

	reloaded := NewJSONStore(store.GetConfigPath())
	if err := reloaded.Load(); err != nil {
		t.Fatalf("reload returned unexpected error: %v", err)
	}
	got := reloaded.State()

	if len(got.Habits) != 1 || got.Habits[0].Name != "Read" {
		t.Fatalf("reloaded habits = %+v", got.Habits)
	}
	if !got.Habits[0].DatesCompleted.Has("2025-06-15") || got.Habits[0].DatesCompleted.Len() != 2 {
		t.Errorf("reloaded datesCompleted = %v", got.Habits[0].DatesCompleted.Sorted())
	}
	if len(got.Journal) != 1 || got.Journal[0].Mood != models.MoodHappy {
		t.Errorf("reloaded journal = %+v", got.Journal)
	}
	if len(got.Occasions) != 1 || got.Occasions[0].Color != "#22c55e" {
		t.Errorf("reloaded occasions = %+v", got.Occasions)
	}
	if got.XP != 45 || got.Level != 2 {
		t.Errorf("reloaded xp/level = %d/%d, want 45/2", got.XP, got.Level)
	}
	if got.Theme != models.ThemeLight || got.User != "Ada" || !got.IsAuthenticated {
		t.Errorf("reloaded theme/user/auth = %s/%q/%v", got.Theme, got.User, got.IsAuthenticated)
	}
}

func TestJSONStorePartialDocumentMergesOverDefaults(t *testing.T) {
	store := newTestJSONStore(t)
	partial := `{"user": "Ada", "xp": 30}`
	if err := os.WriteFile(store.GetConfigPath(), []byte(partial), 0600); err != nil {
		t.Fatal(err)
	}

	if err := store.Load(); err != nil {
		t.Fatal(err)
	}
	state := store.State()

	if state.User != "Ada" || state.XP != 30 {
		t.Errorf("populated fields user/xp = %q/%d, want Ada/30", state.User, state.XP)
	}
	// Missing fields keep their defaults rather than zero values.
	if state.Level != 1 {
		t.Errorf("missing level = %d, want default 1", state.Level)
	}
	if state.Theme != models.ThemeDark {
		t.Errorf("missing theme = %s, want default dark", state.Theme)
	}
	if state.Habits == nil {
		t.Error("missing habits should keep the default empty slice")
	}
}

func TestJSONStoreInit(t *testing.T) {
	store := newTestJSONStore(t)
	if err := store.Init(); err != nil {
		t.Fatalf("Init() returned unexpected error: %v", err)
	}
	if _, err := os.Stat(store.GetConfigPath()); err != nil {
		t.Fatalf("Init() did not create state file: %v", err)
	}
	if err := store.Init(); err == nil {
		t.Error("second Init() expected error, got nil")
	}
}

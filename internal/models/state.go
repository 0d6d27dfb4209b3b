package models

// Theme is the UI color scheme
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// Valid reports whether the theme is a known value
func (t Theme) Valid() bool {
	return t == ThemeDark || t == ThemeLight
}

// Toggle returns the opposite theme
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// AppState is the single application document. Every store persists it whole;
// there is exactly one in-memory copy at a time.
type AppState struct {
	Habits          []Habit        `json:"habits"`
	Journal         []JournalEntry `json:"journal"`
	Occasions       []Occasion     `json:"occasions"`
	XP              int            `json:"xp"`
	Level           int            `json:"level"`
	Theme           Theme          `json:"theme"`
	User            string         `json:"user"`
	IsAuthenticated bool           `json:"isAuthenticated"`
}

// DefaultState returns the fixed default document. A missing or unreadable
// persisted document falls back to this, and a partial document is merged
// over it field by field.
func DefaultState() *AppState {
	return &AppState{
		Habits:          []Habit{},
		Journal:         []JournalEntry{},
		Occasions:       []Occasion{},
		XP:              0,
		Level:           1,
		Theme:           ThemeDark,
		User:            "User",
		IsAuthenticated: false,
	}
}

// Normalize repairs a freshly unmarshaled document: a persisted habit may
// lack its datesCompleted key entirely, which leaves a nil set behind.
// Toggling must always find a usable set.
func (s *AppState) Normalize() {
	for i := range s.Habits {
		if s.Habits[i].DatesCompleted == nil {
			s.Habits[i].DatesCompleted = NewDateSet()
		}
	}
	if s.Habits == nil {
		s.Habits = []Habit{}
	}
	if s.Journal == nil {
		s.Journal = []JournalEntry{}
	}
	if s.Occasions == nil {
		s.Occasions = []Occasion{}
	}
}

// FindHabit returns a pointer into the habits slice for the given id, or nil.
func (s *AppState) FindHabit(id string) *Habit {
	for i := range s.Habits {
		if s.Habits[i].ID == id {
			return &s.Habits[i]
		}
	}
	return nil
}

// FindEntry returns the journal entry with the given id, or nil.
func (s *AppState) FindEntry(id string) *JournalEntry {
	for i := range s.Journal {
		if s.Journal[i].ID == id {
			return &s.Journal[i]
		}
	}
	return nil
}

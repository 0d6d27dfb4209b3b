package models

import "time"

// Mood captures how the author felt when writing an entry
type Mood string

const (
	MoodHappy   Mood = "happy"
	MoodNeutral Mood = "neutral"
	MoodSad     Mood = "sad"
	MoodTired   Mood = "tired"
	MoodExcited Mood = "excited"
)

// Moods lists every valid mood in display order
func Moods() []Mood {
	return []Mood{MoodHappy, MoodNeutral, MoodSad, MoodTired, MoodExcited}
}

// Valid reports whether the mood is a known value
func (m Mood) Valid() bool {
	switch m {
	case MoodHappy, MoodNeutral, MoodSad, MoodTired, MoodExcited:
		return true
	}
	return false
}

// Emoji returns the display glyph for the mood. Unknown moods render as neutral.
func (m Mood) Emoji() string {
	switch m {
	case MoodHappy:
		return "😊"
	case MoodSad:
		return "😔"
	case MoodTired:
		return "😴"
	case MoodExcited:
		return "🤩"
	default:
		return "😐"
	}
}

// JournalEntry is a dated free-form note. Date is the creation timestamp and
// is immutable after creation.
type JournalEntry struct {
	ID      string    `json:"id"`
	Date    time.Time `json:"date"`
	Title   string    `json:"title"`
	Content string    `json:"content"`
	Mood    Mood      `json:"mood"`
}

// Package actions holds the mutating operations on the application state.
// Every successful mutation persists the whole document before returning.
// Validation rejections and lookup misses are silent no-ops: no entity is
// created, nothing changes, and nothing is persisted.
package actions

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"habitix/internal/constants"
	"habitix/internal/logger"
	"habitix/internal/models"
	"habitix/internal/progress"
	"habitix/internal/storage"
	"habitix/internal/validation"
)

// Result reports what a mutation did, so the rendering layer can react
// (refresh, toast a level-up) without re-deriving it.
type Result struct {
	Changed   bool
	XPAwarded int
	LeveledUp bool
	Level     int
}

// ToggleHabit checks or unchecks the habit for the given day. Checking
// awards XP; unchecking subtracts the symmetric award, unwinding a level-up
// it caused, so toggling twice always nets zero. An unknown id is a no-op.
func ToggleHabit(store storage.Provider, id, today string) (Result, error) {
	state := store.State()
	habit := state.FindHabit(id)
	if habit == nil {
		return Result{}, nil
	}

	var res Result
	res.Changed = true
	if habit.DatesCompleted.Has(today) {
		habit.DatesCompleted.Remove(today)
		state.XP -= constants.HabitXP
		for state.XP < 0 && state.Level > 1 {
			state.Level--
			state.XP += progress.NextLevelXP(state.Level)
		}
		if state.XP < 0 {
			state.XP = 0
		}
		res.XPAwarded = -constants.HabitXP
	} else {
		habit.DatesCompleted.Add(today)
		res.XPAwarded = constants.HabitXP
		res.LeveledUp = progress.AddXP(state, constants.HabitXP)
	}
	res.Level = state.Level

	logger.Debug("Toggled habit", "id", id, "day", today, "done", habit.DatesCompleted.Has(today))
	return res, store.Save()
}

// CreateHabit appends a new habit. A whitespace-only name is rejected
// silently and nothing is persisted; the returned habit is nil in that case.
func CreateHabit(store storage.Provider, name, icon string) (*models.Habit, error) {
	if !validation.Required(name) {
		return nil, nil
	}

	state := store.State()
	habit := models.Habit{
		ID:             uuid.New().String(),
		Name:           strings.TrimSpace(name),
		Icon:           icon,
		DatesCompleted: models.NewDateSet(),
		Created:        time.Now(),
	}
	state.Habits = append(state.Habits, habit)

	logger.Debug("Created habit", "id", habit.ID, "name", habit.Name)
	if err := store.Save(); err != nil {
		return nil, err
	}
	return &state.Habits[len(state.Habits)-1], nil
}

// SaveJournalEntry appends a journal entry and awards XP. Whitespace-only
// content is rejected silently; an empty title falls back to "Untitled" and
// an unknown mood falls back to neutral.
func SaveJournalEntry(store storage.Provider, title, content string, mood models.Mood) (*models.JournalEntry, Result, error) {
	if !validation.Required(content) {
		return nil, Result{}, nil
	}

	title = strings.TrimSpace(title)
	if title == "" {
		title = constants.Untitled
	}
	if !mood.Valid() {
		mood = models.MoodNeutral
	}

	state := store.State()
	entry := models.JournalEntry{
		ID:      uuid.New().String(),
		Date:    time.Now(),
		Title:   title,
		Content: strings.TrimSpace(content),
		Mood:    mood,
	}
	state.Journal = append(state.Journal, entry)

	res := Result{Changed: true, XPAwarded: constants.JournalXP}
	res.LeveledUp = progress.AddXP(state, constants.JournalXP)
	res.Level = state.Level

	logger.Debug("Saved journal entry", "id", entry.ID, "mood", entry.Mood)
	if err := store.Save(); err != nil {
		return nil, Result{}, err
	}
	return &state.Journal[len(state.Journal)-1], res, nil
}

// SaveOccasion appends a calendar occasion. A whitespace-only title is
// rejected silently; a missing or malformed color falls back to the default
// token. No XP is awarded.
func SaveOccasion(store storage.Provider, date, title, color string) (*models.Occasion, error) {
	if !validation.Required(title) {
		return nil, nil
	}
	if err := validation.Date(date); err != nil {
		return nil, err
	}
	if !validation.ColorToken(color) {
		color = constants.DefaultOccasionColor
	}

	state := store.State()
	occ := models.Occasion{
		ID:    uuid.New().String(),
		Date:  date,
		Title: strings.TrimSpace(title),
		Color: color,
	}
	state.Occasions = append(state.Occasions, occ)

	logger.Debug("Saved occasion", "id", occ.ID, "date", occ.Date)
	if err := store.Save(); err != nil {
		return nil, err
	}
	return &state.Occasions[len(state.Occasions)-1], nil
}

// DeleteOccasion removes the occasion by id. An unknown id is a no-op and
// skips the save.
func DeleteOccasion(store storage.Provider, id string) (bool, error) {
	state := store.State()
	kept := state.Occasions[:0]
	removed := false
	for _, o := range state.Occasions {
		if o.ID == id {
			removed = true
			continue
		}
		kept = append(kept, o)
	}
	if !removed {
		return false, nil
	}
	state.Occasions = kept

	logger.Debug("Deleted occasion", "id", id)
	return true, store.Save()
}

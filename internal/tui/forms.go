package tui

import (
	"github.com/charmbracelet/huh"

	"habitix/internal/models"
	"habitix/internal/validation"
)

// HabitFormModel represents the form model for habit creation
type HabitFormModel struct {
	Name string
	Icon string
}

// EntryFormModel represents the form model for journal entries
type EntryFormModel struct {
	Title   string
	Content string
	Mood    models.Mood
}

// OccasionFormModel represents the form model for calendar occasions
type OccasionFormModel struct {
	Title string
	Date  string
	Color string
}

// NewHabitForm creates a new form for adding habits
func NewHabitForm(fm *HabitFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit Name").
				Value(&fm.Name).
				Validate(validation.RequiredField("habit name")),
			huh.NewSelect[string]().
				Title("Icon").
				Options(
					huh.NewOption("Check", "check"),
					huh.NewOption("Book", "book"),
					huh.NewOption("Barbell", "barbell"),
					huh.NewOption("Drop", "drop"),
					huh.NewOption("Moon", "moon"),
					huh.NewOption("Leaf", "leaf"),
				).
				Value(&fm.Icon),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewEntryForm creates a new form for journal entries
func NewEntryForm(fm *EntryFormModel) *huh.Form {
	moods := models.Moods()
	options := make([]huh.Option[models.Mood], len(moods))
	for i, mood := range moods {
		options[i] = huh.NewOption(mood.Emoji()+" "+string(mood), mood)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Placeholder("Untitled").
				Value(&fm.Title),
			huh.NewText().
				Title("What's on your mind?").
				Value(&fm.Content).
				Validate(validation.RequiredField("entry content")),
			huh.NewSelect[models.Mood]().
				Title("Mood").
				Options(options...).
				Value(&fm.Mood),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewOccasionForm creates a new form for adding occasions
func NewOccasionForm(fm *OccasionFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Occasion Title").
				Value(&fm.Title).
				Validate(validation.RequiredField("occasion title")),
			huh.NewInput().
				Title("Date (YYYY-MM-DD)").
				Value(&fm.Date).
				Validate(validation.Date),
			huh.NewSelect[string]().
				Title("Color").
				Options(
					huh.NewOption("Blue", "#3b82f6"),
					huh.NewOption("Green", "#22c55e"),
					huh.NewOption("Red", "#ef4444"),
					huh.NewOption("Amber", "#f59e0b"),
					huh.NewOption("Violet", "#8b5cf6"),
				).
				Value(&fm.Color),
		),
	).WithTheme(huh.ThemeDracula())
}

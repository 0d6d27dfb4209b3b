// Package validation holds the field checks the action layer and forms share.
package validation

import (
	"fmt"
	"strings"

	"habitix/internal/models"
	"habitix/internal/utils"
)

// Required reports whether the value is non-empty after trimming whitespace.
func Required(value string) bool {
	return strings.TrimSpace(value) != ""
}

// RequiredField returns an error naming the field when the value is empty or
// whitespace-only. Used as a huh field validator.
func RequiredField(field string) func(string) error {
	return func(value string) error {
		if !Required(value) {
			return fmt.Errorf("%s cannot be empty", field)
		}
		return nil
	}
}

// Date returns an error unless the value is a well-formed YYYY-MM-DD date.
func Date(value string) error {
	if _, err := utils.ParseDate(value); err != nil {
		return err
	}
	return nil
}

// ColorToken reports whether the value is a hex color token (#rgb or
// #rrggbb).
func ColorToken(value string) bool {
	if len(value) != 4 && len(value) != 7 {
		return false
	}
	if value[0] != '#' {
		return false
	}
	for _, c := range value[1:] {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// Mood returns the mood if valid, falling back to neutral for anything else.
func Mood(value string) models.Mood {
	m := models.Mood(value)
	if !m.Valid() {
		return models.MoodNeutral
	}
	return m
}

// Theme returns an error unless the value names a known theme.
func Theme(value string) error {
	if !models.Theme(value).Valid() {
		return fmt.Errorf("unknown theme %q (expected dark or light)", value)
	}
	return nil
}

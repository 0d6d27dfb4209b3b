package actions

import (
	"strings"

	"habitix/internal/logger"
	"habitix/internal/models"
	"habitix/internal/storage"
	"habitix/internal/validation"
)

// Auth here is a local stub: no credentials are verified, the flags just
// gate which views the rendering layer shows.

// Signup sets the display name and authenticates. A whitespace-only name is
// rejected silently.
func Signup(store storage.Provider, name string) (bool, error) {
	if !validation.Required(name) {
		return false, nil
	}

	state := store.State()
	state.User = strings.TrimSpace(name)
	state.IsAuthenticated = true

	logger.Info("Signed up", "user", state.User)
	return true, store.Save()
}

// Login authenticates with the existing display name. If a name is given it
// replaces the stored one.
func Login(store storage.Provider, name string) error {
	state := store.State()
	if validation.Required(name) {
		state.User = strings.TrimSpace(name)
	}
	state.IsAuthenticated = true

	logger.Info("Signed in", "user", state.User)
	return store.Save()
}

// Logout clears the authenticated flag. The display name and all data stay.
func Logout(store storage.Provider) error {
	state := store.State()
	state.IsAuthenticated = false

	logger.Info("Signed out", "user", state.User)
	return store.Save()
}

// ToggleTheme flips between dark and light and persists the choice.
func ToggleTheme(store storage.Provider) (models.Theme, error) {
	state := store.State()
	state.Theme = state.Theme.Toggle()
	return state.Theme, store.Save()
}

// SetTheme sets an explicit theme. An unknown theme is a silent no-op.
func SetTheme(store storage.Provider, theme models.Theme) error {
	if !theme.Valid() {
		return nil
	}
	state := store.State()
	state.Theme = theme
	return store.Save()
}

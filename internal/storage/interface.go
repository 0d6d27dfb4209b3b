package storage

import "habitix/internal/models"

// Provider persists the application document whole. Load never fails on an
// absent or unparsable document; it falls back to the default state so the
// application always starts. Save must durably persist the current state
// before returning, and callers persist after every mutation.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Document access
	State() *models.AppState
	Save() error

	// Utils
	GetConfigPath() string
}

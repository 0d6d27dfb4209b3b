package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"habitix/internal/logger"
	"habitix/internal/models"
)

// JSONStore keeps the application document in a pretty-printed JSON file.
type JSONStore struct {
	path  string
	state *models.AppState
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.state = models.DefaultState()
	return s.Save()
}

// Load reads the document and merges it over the default state field by
// field, so a partial document keeps its populated fields and inherits
// defaults for the rest. An absent or unparsable file degrades to the full
// default state.
func (s *JSONStore) Load() error {
	s.state = models.DefaultState()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("Failed to read state file, using defaults", "path", s.path, "error", err)
		}
		return nil
	}

	if err := json.Unmarshal(data, s.state); err != nil {
		logger.Warn("Failed to parse state file, using defaults", "path", s.path, "error", err)
		s.state = models.DefaultState()
	}
	s.state.Normalize()
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) State() *models.AppState {
	return s.state
}

func (s *JSONStore) Save() error {
	if s.state == nil {
		return fmt.Errorf("storage not loaded")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize state: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write state: %w", err)
	}

	return nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}

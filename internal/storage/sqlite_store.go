package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"habitix/internal/constants"
	"habitix/internal/logger"
	"habitix/internal/models"
)

// SQLiteStore keeps the application document in a single-table key-value
// store, the whole document serialized under one namespaced key.
type SQLiteStore struct {
	path  string
	db    *sql.DB
	state *models.AppState
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	if err := s.open(); err != nil {
		return err
	}

	s.state = models.DefaultState()
	return s.Save()
}

func (s *SQLiteStore) open() error {
	if s.db != nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec("CREATE TABLE IF NOT EXISTS kv (key TEXT PRIMARY KEY, doc TEXT NOT NULL)"); err != nil {
		db.Close()
		return fmt.Errorf("failed to create kv table: %w", err)
	}
	s.db = db
	return nil
}

func (s *SQLiteStore) Load() error {
	s.state = models.DefaultState()

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		// No database yet; start from defaults and create it on first save.
		return nil
	}

	if err := s.open(); err != nil {
		logger.Warn("Failed to open state database, using defaults", "path", s.path, "error", err)
		return nil
	}

	var doc string
	err := s.db.QueryRow("SELECT doc FROM kv WHERE key = ?", constants.StateKey).Scan(&doc)
	if err != nil {
		if err != sql.ErrNoRows {
			logger.Warn("Failed to read state document, using defaults", "error", err)
		}
		return nil
	}

	if err := json.Unmarshal([]byte(doc), s.state); err != nil {
		logger.Warn("Failed to parse state document, using defaults", "error", err)
		s.state = models.DefaultState()
	}
	s.state.Normalize()
	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) State() *models.AppState {
	return s.state
}

func (s *SQLiteStore) Save() error {
	if s.state == nil {
		return fmt.Errorf("storage not loaded")
	}
	if err := s.open(); err != nil {
		return err
	}

	doc, err := json.Marshal(s.state)
	if err != nil {
		return fmt.Errorf("failed to serialize state: %w", err)
	}

	_, err = s.db.Exec(
		"INSERT INTO kv (key, doc) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET doc = excluded.doc",
		constants.StateKey, string(doc),
	)
	if err != nil {
		return fmt.Errorf("failed to write state: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

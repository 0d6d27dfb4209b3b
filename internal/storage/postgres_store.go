package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	_ "github.com/lib/pq"

	"habitix/internal/constants"
	"habitix/internal/logger"
	"habitix/internal/models"
)

// PostgresStore keeps the application document in a habitix_kv table, the
// whole document serialized under one namespaced key. It exists for setups
// that sync state across machines; the contract is identical to the local
// stores.
type PostgresStore struct {
	connStr string
	db      *sql.DB
	state   *models.AppState
}

func NewPostgresStore(connStr string) *PostgresStore {
	return &PostgresStore{
		connStr: connStr,
	}
}

// HasEmbeddedCredentials reports whether a connection string carries a
// password, which is refused in favor of environment variables, .pgpass, or
// the OS keyring.
func HasEmbeddedCredentials(connStr string) bool {
	if strings.HasPrefix(connStr, "postgres://") || strings.HasPrefix(connStr, "postgresql://") {
		u, err := url.Parse(connStr)
		if err != nil {
			return false
		}
		if u.User != nil {
			if _, isSet := u.User.Password(); isSet {
				return true
			}
		}
		return false
	}

	// DSN form: space-separated key=value pairs
	for _, pair := range strings.Fields(connStr) {
		parts := strings.SplitN(pair, "=", 2)
		if len(parts) == 2 && strings.ToLower(strings.TrimSpace(parts[0])) == "password" {
			return true
		}
	}
	return false
}

func (s *PostgresStore) open() error {
	if s.db != nil {
		return nil
	}
	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if _, err := db.Exec("CREATE TABLE IF NOT EXISTS habitix_kv (key TEXT PRIMARY KEY, doc TEXT NOT NULL)"); err != nil {
		db.Close()
		return fmt.Errorf("failed to create habitix_kv table: %w", err)
	}
	s.db = db
	return nil
}

func (s *PostgresStore) Init() error {
	if err := s.open(); err != nil {
		return err
	}

	var count int
	if err := s.db.QueryRow("SELECT count(*) FROM habitix_kv WHERE key = $1", constants.StateKey).Scan(&count); err != nil {
		return fmt.Errorf("failed to check existing state: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("storage already initialized")
	}

	s.state = models.DefaultState()
	return s.Save()
}

// Load merges the stored document over defaults. Unlike the local stores a
// connection failure is a real error; only a missing or unparsable document
// degrades to defaults.
func (s *PostgresStore) Load() error {
	s.state = models.DefaultState()

	if err := s.open(); err != nil {
		return err
	}

	var doc string
	err := s.db.QueryRow("SELECT doc FROM habitix_kv WHERE key = $1", constants.StateKey).Scan(&doc)
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

func (s *PostgresStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *PostgresStore) State() *models.AppState {
	return s.state
}

func (s *PostgresStore) Save() error {
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
		"INSERT INTO habitix_kv (key, doc) VALUES ($1, $2) ON CONFLICT (key) DO UPDATE SET doc = EXCLUDED.doc",
		constants.StateKey, string(doc),
	)
	if err != nil {
		return fmt.Errorf("failed to write state: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetConfigPath() string {
	return s.connStr
}

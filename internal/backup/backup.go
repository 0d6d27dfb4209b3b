// Package backup keeps rotating timestamped copies of the state document.
package backup

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"habitix/internal/constants"
)

// Info describes one backup file
type Info struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// Manager handles backup operations for a state file. The file may be the
// JSON document or the SQLite database; the backup suffix follows the
// source's extension.
type Manager struct {
	statePath string
	backupDir string
	suffix    string
}

// NewManager creates a backup manager for the given state file
func NewManager(statePath string) *Manager {
	configDir := filepath.Dir(statePath)
	suffix := filepath.Ext(statePath)
	if suffix == "" {
		suffix = ".json"
	}
	return &Manager{
		statePath: statePath,
		backupDir: filepath.Join(configDir, constants.BackupDirName),
		suffix:    suffix,
	}
}

// GetBackupDir returns the backup directory path
func (m *Manager) GetBackupDir() string {
	return m.backupDir
}

// CreateBackup creates a new backup of the state file and rotates old ones
func (m *Manager) CreateBackup() (string, error) {
	return m.createBackup(false)
}

// createBackup copies the state file into the backup directory. skipRotation
// prevents recursive rotation when restore snapshots the current state.
func (m *Manager) createBackup(skipRotation bool) (string, error) {
	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	if _, err := os.Stat(m.statePath); os.IsNotExist(err) {
		return "", fmt.Errorf("state file does not exist: %s", m.statePath)
	}

	backupPath, err := m.nextBackupPath()
	if err != nil {
		return "", err
	}

	if err := m.copyState(backupPath); err != nil {
		return "", fmt.Errorf("failed to back up state: %w", err)
	}

	if !skipRotation {
		if err := m.rotateBackups(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to rotate old backups: %v\n", err)
		}
	}

	return backupPath, nil
}

// nextBackupPath generates a unique timestamped filename, adding seconds and
// then a counter when backups land in the same minute.
func (m *Manager) nextBackupPath() (string, error) {
	timestamp := time.Now().Format("20060102-1504")
	path := filepath.Join(m.backupDir, constants.BackupFilePrefix+timestamp+m.suffix)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return path, nil
	}

	timestamp = time.Now().Format("20060102-150405")
	path = filepath.Join(m.backupDir, constants.BackupFilePrefix+timestamp+m.suffix)
	counter := 1
	for {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return path, nil
		}
		path = filepath.Join(m.backupDir, fmt.Sprintf("%s%s-%d%s", constants.BackupFilePrefix, timestamp, counter, m.suffix))
		counter++
		if counter > 100 {
			return "", fmt.Errorf("failed to generate unique backup filename")
		}
	}
}

// copyState snapshots the state file. SQLite databases go through VACUUM
// INTO for a consistent copy, falling back to a plain file copy; JSON
// documents are copied directly.
func (m *Manager) copyState(destPath string) error {
	if m.suffix != ".db" {
		return copyFile(m.statePath, destPath)
	}

	srcDB, err := sql.Open("sqlite", m.statePath+"?mode=ro")
	if err != nil {
		return fmt.Errorf("failed to open source database: %w", err)
	}
	defer srcDB.Close()

	var count int
	if err := srcDB.QueryRow("SELECT COUNT(*) FROM sqlite_master").Scan(&count); err != nil {
		return fmt.Errorf("source database appears to be corrupted: %w", err)
	}

	if _, err := srcDB.Exec("VACUUM INTO ?", destPath); err != nil {
		return copyFile(m.statePath, destPath)
	}
	return nil
}

// ListBackups returns all available backups, newest first
func (m *Manager) ListBackups() ([]Info, error) {
	if _, err := os.Stat(m.backupDir); os.IsNotExist(err) {
		return []Info{}, nil
	}

	entries, err := os.ReadDir(m.backupDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var backups []Info
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if !strings.HasPrefix(name, constants.BackupFilePrefix) || !strings.HasSuffix(name, m.suffix) {
			continue
		}

		timestampStr := strings.TrimPrefix(name, constants.BackupFilePrefix)
		timestampStr = strings.TrimSuffix(timestampStr, m.suffix)
		if idx := strings.LastIndex(timestampStr, "-"); idx > 0 {
			// Strip a trailing collision counter (anything that is not a
			// 4- or 6-digit time part).
			tail := timestampStr[idx+1:]
			if len(tail) != 4 && len(tail) != 6 && isDigits(tail) {
				timestampStr = timestampStr[:idx]
			}
		}

		timestamp, err := time.Parse("20060102-1504", timestampStr)
		if err != nil {
			timestamp, err = time.Parse("20060102-150405", timestampStr)
			if err != nil {
				continue
			}
		}

		path := filepath.Join(m.backupDir, name)
		info, err := os.Stat(path)
		if err != nil {
			continue
		}

		backups = append(backups, Info{
			Path:      path,
			Timestamp: timestamp,
			Size:      info.Size(),
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})

	return backups, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// rotateBackups removes old backups beyond the retention limit
func (m *Manager) rotateBackups() error {
	backups, err := m.ListBackups()
	if err != nil {
		return err
	}

	if len(backups) <= constants.MaxBackups {
		return nil
	}

	for i := constants.MaxBackups; i < len(backups); i++ {
		if err := os.Remove(backups[i].Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", backups[i].Path, err)
		}
	}

	return nil
}

// RestoreBackup replaces the state file with a backup, snapshotting the
// current state first.
func (m *Manager) RestoreBackup(backupPath string) error {
	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		return fmt.Errorf("backup file does not exist: %s", backupPath)
	}

	if err := m.verifyBackup(backupPath); err != nil {
		return fmt.Errorf("backup file is corrupted or invalid: %w", err)
	}

	if _, err := os.Stat(m.statePath); err == nil {
		currentBackup, err := m.createBackup(true)
		if err != nil {
			return fmt.Errorf("failed to back up current state before restore: %w", err)
		}
		fmt.Printf("Created backup of current state: %s\n", filepath.Base(currentBackup))
	}

	// Copy to a temp file, then rename atomically over the state file.
	tempPath := m.statePath + ".restore.tmp"
	if err := copyFile(backupPath, tempPath); err != nil {
		return fmt.Errorf("failed to copy backup file: %w", err)
	}
	if err := os.Rename(tempPath, m.statePath); err != nil {
		if removeErr := os.Remove(tempPath); removeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to remove temporary file %s: %v\n", tempPath, removeErr)
		}
		return fmt.Errorf("failed to restore state: %w", err)
	}

	return nil
}

// verifyBackup checks that the backup is structurally sound: a readable
// SQLite database for .db backups, valid JSON otherwise.
func (m *Manager) verifyBackup(path string) error {
	if m.suffix == ".db" {
		db, err := sql.Open("sqlite", path)
		if err != nil {
			return err
		}
		defer db.Close()

		var count int
		return db.QueryRow("SELECT COUNT(*) FROM sqlite_master").Scan(&count)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if !json.Valid(data) {
		return fmt.Errorf("backup is not valid JSON")
	}
	return nil
}

// copyFile copies a file from src to dst
func copyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer destFile.Close()

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		return err
	}

	return destFile.Sync()
}

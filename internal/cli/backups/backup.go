package backups

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"habitix/internal/backup"
	"habitix/internal/cli"
	"habitix/internal/constants"
)

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backupPath, err := mgr.CreateBackup()
	if err != nil {
		return fmt.Errorf("backup failed: %w", err)
	}

	fmt.Printf("✓ Backup created: %s\n", filepath.Base(backupPath))
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}

	if len(backups) == 0 {
		fmt.Println("No backups found.")
		fmt.Printf("Backups are stored in: %s\n", mgr.GetBackupDir())
		return nil
	}

	fmt.Printf("Available backups (%d total, keeping most recent %d):\n\n", len(backups), constants.MaxBackups)
	for _, b := range backups {
		sizeKB := float64(b.Size) / 1024.0
		timestamp := b.Timestamp.Format("2006-01-02 15:04:05")
		fmt.Printf("  %s  %s  (%.1f KB)\n", timestamp, filepath.Base(b.Path), sizeKB)
	}
	fmt.Printf("\nBackup directory: %s\n", mgr.GetBackupDir())

	return nil
}

type BackupRestoreCmd struct {
	BackupFile string `arg:"" help:"Path or filename of the backup to restore."`
}

func (c *BackupRestoreCmd) Run(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())

	backupPath := c.BackupFile
	if filepath.IsAbs(backupPath) {
		if _, err := os.Stat(backupPath); os.IsNotExist(err) {
			return fmt.Errorf("backup file not found: %s", backupPath)
		}
	} else if _, err := os.Stat(backupPath); err == nil {
		absPath, err := filepath.Abs(backupPath)
		if err != nil {
			return fmt.Errorf("failed to resolve backup path: %w", err)
		}
		backupPath = absPath
	} else {
		// Fall back to the managed backup directory
		possiblePath := filepath.Join(mgr.GetBackupDir(), c.BackupFile)
		if _, err := os.Stat(possiblePath); err != nil {
			return fmt.Errorf("backup file not found: tried current directory and %s", mgr.GetBackupDir())
		}
		backupPath = possiblePath
	}

	fmt.Println("⚠️  WARNING: This will replace your current state with the backup.")
	fmt.Println("A backup of your current state will be created before restoring.")
	fmt.Printf("\nRestore from: %s\n", backupPath)
	fmt.Print("Continue? [y/N]: ")

	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return err
	}
	response = strings.TrimSpace(strings.ToLower(response))
	if response != "y" && response != "yes" {
		fmt.Println("Restore cancelled.")
		return nil
	}

	// Release the state file before overwriting it
	if err := ctx.Store.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to close store: %v\n", err)
	}

	if err := mgr.RestoreBackup(backupPath); err != nil {
		return fmt.Errorf("restore failed: %w", err)
	}

	fmt.Println("✓ Restore complete. A pre-restore snapshot was saved alongside your backups.")
	return nil
}

package system

import (
	"fmt"
	"os"

	"habitix/internal/cli"
)

type InitCmd struct {
	Force bool `help:"Force reset by deleting existing state before initialization."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		statePath := ctx.Store.GetConfigPath()
		if _, err := os.Stat(statePath); err == nil {
			// Close first to prevent file locking issues with the SQLite backend
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing state: %w", err)
			}
			if err := os.Remove(statePath); err != nil {
				return fmt.Errorf("failed to delete existing state: %w", err)
			}
			fmt.Printf("Deleted existing state at: %s\n", statePath)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing state: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized habitix storage at: %s\n", ctx.Store.GetConfigPath())
	return nil
}

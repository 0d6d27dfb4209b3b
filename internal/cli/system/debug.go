package system

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"habitix/internal/cli"
	"habitix/internal/constants"
	"habitix/internal/logger"
)

type DebugCmd struct {
	Paths *DebugPathsCmd `cmd:"" help:"Show state and log file paths."`
	State *DebugStateCmd `cmd:"" help:"Dump the full app state as JSON."`
}

type DebugPathsCmd struct{}

func (cmd *DebugPathsCmd) Run(ctx *cli.Context) error {
	statePath := ctx.Store.GetConfigPath()

	output := map[string]string{
		"state":   statePath,
		"backups": filepath.Join(filepath.Dir(statePath), constants.BackupDirName),
		"log":     logger.GetLogPath(),
	}

	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}

	fmt.Println(string(jsonBytes))
	return nil
}

type DebugStateCmd struct{}

func (cmd *DebugStateCmd) Run(ctx *cli.Context) error {
	jsonBytes, err := json.MarshalIndent(ctx.Store.State(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	fmt.Println(string(jsonBytes))
	return nil
}

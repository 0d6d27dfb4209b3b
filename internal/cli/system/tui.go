package system

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"habitix/internal/cli"
	"habitix/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	// Snapshot the state before an interactive session can mutate it
	ctx.PerformAutomaticBackup()

	p := tea.NewProgram(tui.NewModel(ctx.Store), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
	return nil
}

package system

import (
	"fmt"

	"habitix/internal/actions"
	"habitix/internal/cli"
	"habitix/internal/models"
	"habitix/internal/validation"
)

type ThemeCmd struct {
	Set string `arg:"" optional:"" help:"Theme to set (dark or light). Omit to toggle."`
}

func (c *ThemeCmd) Run(ctx *cli.Context) error {
	if c.Set == "" {
		theme, err := actions.ToggleTheme(ctx.Store)
		if err != nil {
			return err
		}
		fmt.Printf("Theme is now %s.\n", theme)
		return nil
	}

	if err := validation.Theme(c.Set); err != nil {
		return err
	}
	theme := models.Theme(c.Set)
	if err := actions.SetTheme(ctx.Store, theme); err != nil {
		return err
	}
	fmt.Printf("Theme is now %s.\n", theme)
	return nil
}

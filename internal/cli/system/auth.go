package system

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"habitix/internal/actions"
	"habitix/internal/cli"
	"habitix/internal/constants"
	"habitix/internal/keyring"
	"habitix/internal/validation"
)

type LoginCmd struct {
	Name     string `arg:"" optional:"" help:"Display name. Omit for an interactive prompt."`
	Remember bool   `help:"Remember the name in the OS keyring for future logins."`
}

func (c *LoginCmd) Run(ctx *cli.Context) error {
	name := c.Name

	// Fall back to a remembered name before prompting
	if name == "" {
		if remembered, err := keyring.GetRememberedUser(); err == nil {
			name = remembered
		}
	}
	if name == "" {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Display Name").
					Value(&name).
					Validate(validation.RequiredField("name")),
			),
		).WithTheme(huh.ThemeDracula())
		if err := form.Run(); err != nil {
			return err
		}
	}

	state := ctx.Store.State()
	if !state.IsAuthenticated && state.User == constants.DefaultUser {
		// First session: the name is required, not defaulted
		ok, err := actions.Signup(ctx.Store, name)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("A name is required to sign up.")
			return nil
		}
	} else if err := actions.Login(ctx.Store, name); err != nil {
		return err
	}

	if c.Remember {
		if err := keyring.SetRememberedUser(name); err != nil {
			fmt.Printf("Warning: could not store name in keyring: %v\n", err)
		}
	}

	fmt.Printf("Logged in as %s.\n", ctx.Store.State().User)
	return nil
}

type LogoutCmd struct {
	Forget bool `help:"Also remove the remembered name from the OS keyring."`
}

func (c *LogoutCmd) Run(ctx *cli.Context) error {
	if err := actions.Logout(ctx.Store); err != nil {
		return err
	}
	if c.Forget {
		if err := keyring.DeleteRememberedUser(); err != nil && !errors.Is(err, keyring.ErrNotFound) {
			fmt.Printf("Warning: could not remove name from keyring: %v\n", err)
		}
	}
	fmt.Println("Logged out.")
	return nil
}

type WhoamiCmd struct{}

func (c *WhoamiCmd) Run(ctx *cli.Context) error {
	state := ctx.Store.State()
	if !state.IsAuthenticated {
		fmt.Println("Not logged in.")
		return nil
	}
	fmt.Printf("%s (level %d, %d xp)\n", state.User, state.Level, state.XP)
	return nil
}

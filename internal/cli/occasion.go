package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"habitix/internal/actions"
	"habitix/internal/calendar"
	"habitix/internal/utils"
	"habitix/internal/validation"
)

type OccasionCmd struct {
	Add    OccasionAddCmd    `cmd:"" help:"Add an occasion to a day."`
	List   OccasionListCmd   `cmd:"" help:"List occasions for a day."`
	Delete OccasionDeleteCmd `cmd:"" help:"Delete an occasion."`
}

type OccasionAddCmd struct {
	Date  string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
	Title string `arg:"" optional:"" help:"Occasion title. Omit for an interactive form."`
	Color string `help:"Marker color as a hex token." default:"#3b82f6"`
}

func (c *OccasionAddCmd) Run(ctx *Context) error {
	date := c.Date
	if date == "" {
		date = utils.Today()
	}
	title := c.Title
	color := c.Color

	if title == "" {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Occasion Title").
					Value(&title).
					Validate(validation.RequiredField("occasion title")),
				huh.NewInput().
					Title("Date (YYYY-MM-DD)").
					Value(&date).
					Validate(validation.Date),
				huh.NewSelect[string]().
					Title("Color").
					Options(
						huh.NewOption("Blue", "#3b82f6"),
						huh.NewOption("Green", "#22c55e"),
						huh.NewOption("Red", "#ef4444"),
						huh.NewOption("Amber", "#f59e0b"),
						huh.NewOption("Violet", "#8b5cf6"),
					).
					Value(&color),
			),
		).WithTheme(huh.ThemeDracula())
		if err := form.Run(); err != nil {
			return err
		}
	}

	occ, err := actions.SaveOccasion(ctx.Store, date, title, color)
	if err != nil {
		return err
	}
	if occ == nil {
		fmt.Println("Nothing added: occasion title cannot be empty.")
		return nil
	}

	fmt.Printf("Occasion added on %s: %s\n", occ.Date, occ.Title)
	return nil
}

type OccasionListCmd struct {
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *OccasionListCmd) Run(ctx *Context) error {
	date := c.Date
	if date == "" {
		date = utils.Today()
	}
	if err := validation.Date(date); err != nil {
		return err
	}

	occasions := calendar.OccasionsOn(ctx.Store.State().Occasions, date)
	if len(occasions) == 0 {
		fmt.Printf("No occasions for %s.\n", date)
		return nil
	}

	for _, occ := range occasions {
		badge := lipgloss.NewStyle().Foreground(lipgloss.Color(occ.Color)).Render("●")
		fmt.Printf("%s %s  (%s)\n", badge, occ.Title, ShortID(occ.ID))
	}
	return nil
}

type OccasionDeleteCmd struct {
	ID string `arg:"" help:"Occasion id (or its unique prefix)."`
}

func (c *OccasionDeleteCmd) Run(ctx *Context) error {
	id := c.ID
	if len(id) < 36 {
		// Resolve a prefix against existing occasions.
		for _, occ := range ctx.Store.State().Occasions {
			if len(id) >= 4 && len(occ.ID) >= len(id) && occ.ID[:len(id)] == id {
				id = occ.ID
				break
			}
		}
	}

	removed, err := actions.DeleteOccasion(ctx.Store, id)
	if err != nil {
		return err
	}
	if !removed {
		fmt.Printf("No occasion with id %q.\n", c.ID)
		return nil
	}
	fmt.Println("Occasion deleted.")
	return nil
}

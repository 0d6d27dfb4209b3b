package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"habitix/internal/actions"
	"habitix/internal/progress"
	"habitix/internal/utils"
	"habitix/internal/validation"
)

type HabitCmd struct {
	Add    HabitAddCmd    `cmd:"" help:"Add a new habit."`
	List   HabitListCmd   `cmd:"" help:"List habits with streaks."`
	Toggle HabitToggleCmd `cmd:"" help:"Check or uncheck a habit for today."`
}

type HabitAddCmd struct {
	Name string `arg:"" optional:"" help:"Habit name. Omit for an interactive form."`
	Icon string `help:"Icon identifier." default:"check"`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	name := c.Name
	icon := c.Icon

	if name == "" {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Habit Name").
					Value(&name).
					Validate(validation.RequiredField("habit name")),
				huh.NewSelect[string]().
					Title("Icon").
					Options(
						huh.NewOption("Check", "check"),
						huh.NewOption("Book", "book"),
						huh.NewOption("Barbell", "barbell"),
						huh.NewOption("Drop", "drop"),
						huh.NewOption("Moon", "moon"),
						huh.NewOption("Leaf", "leaf"),
					).
					Value(&icon),
			),
		).WithTheme(huh.ThemeDracula())
		if err := form.Run(); err != nil {
			return err
		}
	}

	habit, err := actions.CreateHabit(ctx.Store, name, icon)
	if err != nil {
		return err
	}
	if habit == nil {
		// Validation rejection is a silent no-op in the core; the CLI
		// still tells the user nothing happened.
		fmt.Println("Nothing added: habit name cannot be empty.")
		return nil
	}

	fmt.Printf("Added habit: %s\n", habit.Name)
	return nil
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *Context) error {
	habits := ctx.Store.State().Habits
	if len(habits) == 0 {
		fmt.Println("No habits yet. Start by adding one!")
		return nil
	}

	today := utils.Today()
	for _, habit := range habits {
		fmt.Println(FormatHabitLine(habit, today))
	}
	return nil
}

type HabitToggleCmd struct {
	Name string `arg:"" help:"Habit name or id."`
}

func (c *HabitToggleCmd) Run(ctx *Context) error {
	state := ctx.Store.State()

	id := ""
	for _, h := range state.Habits {
		if h.ID == c.Name || h.Name == c.Name {
			id = h.ID
			break
		}
	}
	if id == "" {
		fmt.Printf("No habit named %q.\n", c.Name)
		return nil
	}

	today := utils.Today()
	res, err := actions.ToggleHabit(ctx.Store, id, today)
	if err != nil {
		return err
	}

	habit := state.FindHabit(id)
	if habit.DatesCompleted.Has(today) {
		fmt.Printf("Checked %q for %s (+%d XP)\n", habit.Name, today, res.XPAwarded)
		if streak := progress.Streak(*habit, today); streak > 1 {
			fmt.Printf("🔥 %d day streak!\n", streak)
		}
	} else {
		fmt.Printf("Unchecked %q for %s\n", habit.Name, today)
	}
	if res.LeveledUp {
		fmt.Printf("Level Up! You are now Level %d\n", res.Level)
	}
	return nil
}

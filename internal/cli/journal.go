package cli

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/huh"

	"habitix/internal/actions"
	"habitix/internal/models"
	"habitix/internal/validation"
)

type JournalCmd struct {
	Add  JournalAddCmd  `cmd:"" help:"Write a new journal entry."`
	List JournalListCmd `cmd:"" help:"List journal entries, newest first."`
	View JournalViewCmd `cmd:"" help:"Show a full journal entry."`
}

type JournalAddCmd struct {
	Title   string `help:"Entry title (defaults to Untitled)."`
	Content string `help:"Entry content. Omit for an interactive form."`
	Mood    string `help:"Mood: happy, neutral, sad, tired, or excited." default:"neutral"`
}

func (c *JournalAddCmd) Run(ctx *Context) error {
	title := c.Title
	content := c.Content
	mood := validation.Mood(c.Mood)

	if content == "" {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Title").
					Placeholder("Untitled").
					Value(&title),
				huh.NewText().
					Title("What's on your mind?").
					Value(&content).
					Validate(validation.RequiredField("journal content")),
				huh.NewSelect[models.Mood]().
					Title("Mood").
					Options(moodOptions()...).
					Value(&mood),
			),
		).WithTheme(huh.ThemeDracula())
		if err := form.Run(); err != nil {
			return err
		}
	}

	entry, res, err := actions.SaveJournalEntry(ctx.Store, title, content, mood)
	if err != nil {
		return err
	}
	if entry == nil {
		fmt.Println("Nothing saved: journal content cannot be empty.")
		return nil
	}

	fmt.Printf("Journal entry saved (+%d XP)\n", res.XPAwarded)
	if res.LeveledUp {
		fmt.Printf("Level Up! You are now Level %d\n", res.Level)
	}
	return nil
}

func moodOptions() []huh.Option[models.Mood] {
	opts := make([]huh.Option[models.Mood], 0, len(models.Moods()))
	for _, m := range models.Moods() {
		opts = append(opts, huh.NewOption(fmt.Sprintf("%s %s", m.Emoji(), m), m))
	}
	return opts
}

type JournalListCmd struct{}

func (c *JournalListCmd) Run(ctx *Context) error {
	entries := ctx.Store.State().Journal
	if len(entries) == 0 {
		fmt.Println("No entries yet.")
		return nil
	}

	sorted := make([]models.JournalEntry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})

	for _, entry := range sorted {
		fmt.Printf("%s  %s  %s  (%s)\n",
			entry.Date.Format("Mon Jan 2"),
			entry.Mood.Emoji(),
			entry.Title,
			ShortID(entry.ID),
		)
	}
	return nil
}

type JournalViewCmd struct {
	ID string `arg:"" help:"Entry id (or its unique prefix)."`
}

func (c *JournalViewCmd) Run(ctx *Context) error {
	var match *models.JournalEntry
	for i, entry := range ctx.Store.State().Journal {
		if entry.ID == c.ID || (len(c.ID) >= 4 && len(entry.ID) >= len(c.ID) && entry.ID[:len(c.ID)] == c.ID) {
			if match != nil {
				return fmt.Errorf("ambiguous entry id prefix: %s", c.ID)
			}
			match = &ctx.Store.State().Journal[i]
		}
	}
	if match == nil {
		fmt.Printf("No entry with id %q.\n", c.ID)
		return nil
	}

	fmt.Printf("%s %s\n", match.Mood.Emoji(), match.Title)
	fmt.Println(mutedStyle.Render(match.Date.Format("Monday, January 2 2006 15:04")))
	fmt.Println()
	fmt.Println(match.Content)
	return nil
}

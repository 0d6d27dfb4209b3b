package journal

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"habitix/internal/constants"
	"habitix/internal/models"
)

type AddEntryMsg struct{}

type ViewEntryMsg struct {
	ID string
}

type Item struct {
	Entry models.JournalEntry
}

func (i Item) Title() string {
	return i.Entry.Mood.Emoji() + " " + i.Entry.Title
}

func (i Item) Description() string {
	preview := strings.ReplaceAll(i.Entry.Content, "\n", " ")
	if len(preview) > 60 {
		preview = preview[:60] + "…"
	}
	return i.Entry.Date.Format(constants.DateFormat) + "  " + preview
}

func (i Item) FilterValue() string { return i.Entry.Title }

type KeyMap struct {
	Add  key.Binding
	View key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		View: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "read"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(entries []models.JournalEntry, width, height int) Model {
	l := list.New(buildItems(entries), list.NewDefaultDelegate(), width, height)
	l.Title = "Journal"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.View}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.View}
	}

	return Model{
		list: l,
		keys: keys,
	}
}

// buildItems orders entries newest first
func buildItems(entries []models.JournalEntry) []list.Item {
	sorted := make([]models.JournalEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})

	items := make([]list.Item, len(sorted))
	for i, e := range sorted {
		items[i] = Item{Entry: e}
	}
	return items
}

func (m *Model) SetEntries(entries []models.JournalEntry) {
	m.list.SetItems(buildItems(entries))
}

// Filtering reports whether the list filter input is capturing keys
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddEntryMsg{} }
		case key.Matches(msg, m.keys.View):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return ViewEntryMsg{ID: i.Entry.ID} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No journal entries yet.\n  Press 'a' to write one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

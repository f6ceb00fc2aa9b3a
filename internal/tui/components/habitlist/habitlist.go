package habitlist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/habits/internal/constants"
	"github.com/julianstephens/habits/internal/models"
)

type AddHabitMsg struct{}

type AdvanceStatusMsg struct {
	ID int
}

type MarkDoneMsg struct {
	ID int
}

type DeleteHabitMsg struct {
	ID int
}

type FinishAllMsg struct{}

type Item struct {
	Habit models.Habit
}

var statusIcons = map[models.HabitStatus]string{
	models.StatusNew:        "○",
	models.StatusInProgress: "◐",
	models.StatusFinished:   "●",
}

func (i Item) Title() string {
	return statusIcons[i.Habit.Status] + " " + i.Habit.Name
}

func (i Item) Description() string {
	desc := fmt.Sprintf("#%d | %s | %s", i.Habit.ID, i.Habit.Status, i.Habit.CreatedAt.Format(constants.DateFormat))
	if i.Habit.Description != "" {
		desc += " | " + i.Habit.Description
	}
	return desc
}

func (i Item) FilterValue() string { return i.Habit.Name }

type KeyMap struct {
	Add       key.Binding
	Advance   key.Binding
	Mark      key.Binding
	Delete    key.Binding
	FinishAll key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Advance: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "next status"),
		),
		Mark: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mark done today"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "delete"),
		),
		FinishAll: key.NewBinding(
			key.WithKeys("F"),
			key.WithHelp("F", "finish all"),
		),
	}
}

func (k KeyMap) bindings() []key.Binding {
	return []key.Binding{k.Add, k.Advance, k.Mark, k.Delete, k.FinishAll}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(habits []models.Habit, width, height int) Model {
	l := list.New(toItems(habits), list.NewDefaultDelegate(), width, height)
	l.Title = "Habits"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = keys.bindings
	l.AdditionalFullHelpKeys = keys.bindings

	return Model{
		list: l,
		keys: keys,
	}
}

func toItems(habits []models.Habit) []list.Item {
	items := make([]list.Item, len(habits))
	for i, h := range habits {
		items[i] = Item{Habit: h}
	}
	return items
}

// SetHabits replaces the list contents and keeps the cursor in range.
func (m *Model) SetHabits(habits []models.Habit) {
	index := m.list.Index()
	m.list.SetItems(toItems(habits))
	if index >= len(habits) && len(habits) > 0 {
		m.list.Select(len(habits) - 1)
	}
}

// Selected returns the habit under the cursor.
func (m Model) Selected() (models.Habit, bool) {
	item, ok := m.list.SelectedItem().(Item)
	if !ok {
		return models.Habit{}, false
	}
	return item.Habit, true
}

func (m Model) Len() int {
	return len(m.list.Items())
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
			return m, func() tea.Msg { return AddHabitMsg{} }
		case key.Matches(msg, m.keys.FinishAll):
			return m, func() tea.Msg { return FinishAllMsg{} }
		case key.Matches(msg, m.keys.Advance):
			if h, ok := m.Selected(); ok {
				return m, func() tea.Msg { return AdvanceStatusMsg{ID: h.ID} }
			}
		case key.Matches(msg, m.keys.Mark):
			if h, ok := m.Selected(); ok {
				return m, func() tea.Msg { return MarkDoneMsg{ID: h.ID} }
			}
		case key.Matches(msg, m.keys.Delete):
			if h, ok := m.Selected(); ok {
				return m, func() tea.Msg { return DeleteHabitMsg{ID: h.ID} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No habits yet.\n  Press 'a' to add one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

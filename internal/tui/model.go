package tui

import (
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/habits/internal/history"
	"github.com/julianstephens/habits/internal/models"
	"github.com/julianstephens/habits/internal/storage"
	"github.com/julianstephens/habits/internal/tui/components/habitlist"
)

type SessionState int

const (
	StateList SessionState = iota
	StateAddHabit
	StateConfirmDelete
)

// SortMode selects which store view feeds the list.
type SortMode int

const (
	SortInsertion SortMode = iota
	SortStatus
	SortCreated
)

var sortTitles = []string{"All", "By status", "By creation date"}

type HabitFormModel struct {
	Name        string
	Description string
}

type Model struct {
	store         storage.HabitStore
	journal       *history.Journal
	user          models.User
	now           func() time.Time
	state         SessionState
	sort          SortMode
	keys          KeyMap
	help          help.Model
	habitList     habitlist.Model
	form          *huh.Form
	habitForm     *HabitFormModel
	habitToDelete int
	status        string
	quitting      bool
	width         int
	height        int
}

func NewModel(store storage.HabitStore, journal *history.Journal, user models.User, now func() time.Time) Model {
	m := Model{
		store:   store,
		journal: journal,
		user:    user,
		now:     now,
		state:   StateList,
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
	m.habitList = habitlist.New(m.currentHabits(), 0, 0)
	return m
}

func (m Model) currentHabits() []models.Habit {
	var habits []models.Habit
	switch m.sort {
	case SortStatus:
		habits, _ = m.store.SortedByStatus(m.user)
	case SortCreated:
		habits, _ = m.store.SortedByCreationDate(m.user)
	default:
		habits, _ = m.store.All(m.user)
	}
	return habits
}

func (m *Model) refresh() {
	m.habitList.SetHabits(m.currentHabits())
}

func (m Model) ShortHelp() []key.Binding {
	return []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
}

func (m Model) FullHelp() [][]key.Binding {
	list := habitlist.DefaultKeyMap()
	return [][]key.Binding{
		{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help},
		{m.keys.Up, m.keys.Down},
		{list.Add, list.Advance, list.Mark, list.Delete, list.FinishAll},
	}
}

func (m Model) Init() tea.Cmd {
	return m.habitList.Init()
}

// nextStatus cycles NEW -> IN_PROGRESS -> FINISHED -> NEW.
func nextStatus(s models.HabitStatus) models.HabitStatus {
	statuses := models.Statuses()
	return statuses[(int(s)+1)%len(statuses)]
}

func newHabitForm(fm *HabitFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit Name").
				Value(&fm.Name).
				Validate(validateHabitName),
			huh.NewInput().
				Title("Description").
				Value(&fm.Description),
		),
	).WithTheme(huh.ThemeDracula())
}

var errEmptyName = errors.New("habit name cannot be empty")

func trimmed(s string) string {
	return strings.TrimSpace(s)
}

func validateHabitName(s string) error {
	if len(trimmed(s)) == 0 {
		return errEmptyName
	}
	return nil
}

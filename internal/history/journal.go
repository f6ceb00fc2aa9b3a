package history

import (
	"maps"
	"slices"
	"time"

	"github.com/julianstephens/habits/internal/constants"
	"github.com/julianstephens/habits/internal/models"
)

// Journal keeps an in-memory event log per habit. Completions are tracked per
// calendar day in the event's own location; a second completion on the same
// day is ignored.
//
// Journal is not safe for concurrent use.
type Journal struct {
	events map[int][]models.HistoryEvent
	days   map[int]map[string]bool
}

func NewJournal() *Journal {
	return &Journal{
		events: make(map[int][]models.HistoryEvent),
		days:   make(map[int]map[string]bool),
	}
}

func (j *Journal) HabitCreated(h models.Habit) {
	j.events[h.ID] = []models.HistoryEvent{{
		HabitID: h.ID,
		Kind:    models.EventCreated,
		At:      h.CreatedAt,
	}}
	j.days[h.ID] = make(map[string]bool)
}

func (j *Journal) HabitDeleted(h models.Habit) {
	delete(j.events, h.ID)
	delete(j.days, h.ID)
}

func (j *Journal) HabitCompleted(h models.Habit, at time.Time) {
	days, ok := j.days[h.ID]
	if !ok {
		// Habit was never announced; start a journal for it anyway
		days = make(map[string]bool)
		j.days[h.ID] = days
	}

	day := at.Format(constants.DateFormat)
	if days[day] {
		return
	}
	days[day] = true
	j.events[h.ID] = append(j.events[h.ID], models.HistoryEvent{
		HabitID: h.ID,
		Kind:    models.EventCompleted,
		At:      at,
	})
}

// Events returns a copy of the habit's journal, or false if it has none.
func (j *Journal) Events(habitID int) ([]models.HistoryEvent, bool) {
	events, ok := j.events[habitID]
	if !ok {
		return nil, false
	}
	return slices.Clone(events), true
}

// Completions returns the completed days (YYYY-MM-DD) in ascending order.
func (j *Journal) Completions(habitID int) []string {
	days := make([]string, 0, len(j.days[habitID]))
	for day := range j.days[habitID] {
		days = append(days, day)
	}
	slices.Sort(days)
	return days
}

// Streak counts consecutive completed days ending on today's date. If today
// has no completion yet the run may end yesterday instead.
func (j *Journal) Streak(habitID int, today time.Time) int {
	days := j.days[habitID]
	if len(days) == 0 {
		return 0
	}

	cursor := today
	if !days[cursor.Format(constants.DateFormat)] {
		cursor = cursor.AddDate(0, 0, -1)
	}

	streak := 0
	for days[cursor.Format(constants.DateFormat)] {
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return streak
}

// HabitIDs returns the IDs of every habit with a journal, ascending.
func (j *Journal) HabitIDs() []int {
	return slices.Sorted(maps.Keys(j.events))
}

// Len returns the number of habits with a journal.
func (j *Journal) Len() int {
	return len(j.events)
}

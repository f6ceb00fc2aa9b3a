package history

import (
	"slices"
	"testing"
	"time"

	"github.com/julianstephens/habits/internal/models"
)

func day(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02 15:04", s, time.Local)
	if err != nil {
		panic(err)
	}
	return t
}

func TestJournalLifecycle(t *testing.T) {
	j := NewJournal()
	habit := models.Habit{ID: 1, Name: "Stretch", CreatedAt: day("2024-03-01 08:00")}

	j.HabitCreated(habit)
	events, ok := j.Events(habit.ID)
	if !ok {
		t.Fatal("expected journal after HabitCreated")
	}
	if len(events) != 1 || events[0].Kind != models.EventCreated {
		t.Fatalf("expected a single created event, got %+v", events)
	}

	j.HabitCompleted(habit, day("2024-03-02 07:30"))
	j.HabitCompleted(habit, day("2024-03-02 21:00"))
	j.HabitCompleted(habit, day("2024-03-03 07:30"))

	events, _ = j.Events(habit.ID)
	if len(events) != 3 {
		t.Errorf("expected 3 events (created + 2 distinct days), got %d", len(events))
	}
	want := []string{"2024-03-02", "2024-03-03"}
	if got := j.Completions(habit.ID); !slices.Equal(got, want) {
		t.Errorf("Completions() = %v, want %v", got, want)
	}

	if ids := j.HabitIDs(); !slices.Equal(ids, []int{1}) {
		t.Errorf("HabitIDs() = %v, want [1]", ids)
	}

	j.HabitDeleted(habit)
	if _, ok := j.Events(habit.ID); ok {
		t.Error("journal should be dropped after HabitDeleted")
	}
	if j.Len() != 0 {
		t.Errorf("Len() = %d, want 0", j.Len())
	}
}

func TestJournalEventsReturnsCopy(t *testing.T) {
	j := NewJournal()
	habit := models.Habit{ID: 7, CreatedAt: day("2024-01-01 00:00")}
	j.HabitCreated(habit)

	events, _ := j.Events(habit.ID)
	events[0].Kind = models.EventCompleted

	again, _ := j.Events(habit.ID)
	if again[0].Kind != models.EventCreated {
		t.Error("mutating the returned slice must not change the journal")
	}
}

func TestJournalStreak(t *testing.T) {
	tests := []struct {
		name  string
		done  []string
		today string
		want  int
	}{
		{name: "no completions", done: nil, today: "2024-05-10 12:00", want: 0},
		{name: "today only", done: []string{"2024-05-10 08:00"}, today: "2024-05-10 12:00", want: 1},
		{
			name:  "run ending today",
			done:  []string{"2024-05-08 08:00", "2024-05-09 08:00", "2024-05-10 08:00"},
			today: "2024-05-10 23:00",
			want:  3,
		},
		{
			name:  "run ending yesterday",
			done:  []string{"2024-05-08 08:00", "2024-05-09 08:00"},
			today: "2024-05-10 09:00",
			want:  2,
		},
		{
			name:  "gap breaks run",
			done:  []string{"2024-05-06 08:00", "2024-05-08 08:00", "2024-05-09 08:00"},
			today: "2024-05-09 09:00",
			want:  2,
		},
		{
			name:  "stale run",
			done:  []string{"2024-05-01 08:00", "2024-05-02 08:00"},
			today: "2024-05-10 09:00",
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j := NewJournal()
			habit := models.Habit{ID: 1}
			j.HabitCreated(habit)
			for _, d := range tt.done {
				j.HabitCompleted(habit, day(d))
			}
			if got := j.Streak(habit.ID, day(tt.today)); got != tt.want {
				t.Errorf("Streak() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCompletedWithoutCreate(t *testing.T) {
	j := NewJournal()
	j.HabitCompleted(models.Habit{ID: 9}, day("2024-02-02 10:00"))

	if got := j.Completions(9); len(got) != 1 {
		t.Errorf("expected one completion, got %v", got)
	}
}

type countingRecorder struct {
	created, deleted, completed int
}

func (c *countingRecorder) HabitCreated(models.Habit)              { c.created++ }
func (c *countingRecorder) HabitDeleted(models.Habit)              { c.deleted++ }
func (c *countingRecorder) HabitCompleted(models.Habit, time.Time) { c.completed++ }

func TestLoggedForwards(t *testing.T) {
	next := &countingRecorder{}
	var r Recorder = Logged{Next: next}

	h := models.Habit{ID: 1, Name: "Walk"}
	r.HabitCreated(h)
	r.HabitCompleted(h, time.Now())
	r.HabitDeleted(h)

	if next.created != 1 || next.completed != 1 || next.deleted != 1 {
		t.Errorf("unexpected forwarded counts: %+v", next)
	}

	// Nop must satisfy the interface and do nothing
	var nop Recorder = Nop{}
	nop.HabitCreated(h)
}

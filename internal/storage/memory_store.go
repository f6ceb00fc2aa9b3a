package storage

import (
	"cmp"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/julianstephens/habits/internal/history"
	"github.com/julianstephens/habits/internal/idgen"
	"github.com/julianstephens/habits/internal/models"
)

// MemoryStore is a HabitStore backed by a user -> id -> habit map. IDs come
// from a single generator, so they are unique across all users.
//
// Concurrency note: MemoryStore is not safe for concurrent use by multiple
// goroutines without external synchronization.
type MemoryStore struct {
	habits   map[models.User]map[int]*models.Habit
	ids      *idgen.Generator
	recorder history.Recorder
	now      func() time.Time
}

type Option func(*MemoryStore)

// WithRecorder sets the history delegate. The default discards events.
func WithRecorder(r history.Recorder) Option {
	return func(s *MemoryStore) {
		s.recorder = r
	}
}

// WithClock overrides the time source used to stamp new habits.
func WithClock(now func() time.Time) Option {
	return func(s *MemoryStore) {
		s.now = now
	}
}

// WithGenerator shares an ID generator with the store.
func WithGenerator(g *idgen.Generator) Option {
	return func(s *MemoryStore) {
		s.ids = g
	}
}

func NewMemoryStore(opts ...Option) *MemoryStore {
	s := &MemoryStore{
		habits:   make(map[models.User]map[int]*models.Habit),
		ids:      idgen.New(),
		recorder: history.Nop{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ HabitStore = (*MemoryStore)(nil)

// Add assigns habit the next free ID, writes it back into *habit and stores a
// copy under user. A zero CreatedAt is stamped with the store clock.
func (s *MemoryStore) Add(user models.User, habit *models.Habit) {
	habit.ID = s.ids.Next()
	if habit.CreatedAt.IsZero() {
		habit.CreatedAt = s.now()
	}

	bucket, ok := s.habits[user]
	if !ok {
		bucket = make(map[int]*models.Habit)
		s.habits[user] = bucket
	}
	stored := *habit
	bucket[stored.ID] = &stored

	s.recorder.HabitCreated(stored)
}

// Delete removes the habit and reports whether it existed. History is told
// about the removal before the habit leaves the store.
func (s *MemoryStore) Delete(user models.User, id int) bool {
	habit, ok := s.lookup(user, id)
	if !ok {
		return false
	}
	s.recorder.HabitDeleted(*habit)
	delete(s.habits[user], id)
	return true
}

func (s *MemoryStore) UpdateName(user models.User, id int, name string) bool {
	habit, ok := s.lookup(user, id)
	if !ok {
		return false
	}
	habit.Name = name
	return true
}

func (s *MemoryStore) UpdateDescription(user models.User, id int, description string) bool {
	habit, ok := s.lookup(user, id)
	if !ok {
		return false
	}
	habit.Description = description
	return true
}

// UpdateStatus sets the status. Moving into FINISHED from another status
// counts as a completion.
func (s *MemoryStore) UpdateStatus(user models.User, id int, status models.HabitStatus) bool {
	habit, ok := s.lookup(user, id)
	if !ok {
		return false
	}
	s.setStatus(habit, status)
	return true
}

// MarkCompleted records a completion at the given time. A NEW habit moves to
// IN_PROGRESS; other statuses are left alone.
func (s *MemoryStore) MarkCompleted(user models.User, id int, at time.Time) bool {
	habit, ok := s.lookup(user, id)
	if !ok {
		return false
	}
	if habit.Status == models.StatusNew {
		habit.Status = models.StatusInProgress
	}
	s.recorder.HabitCompleted(*habit, at)
	return true
}

// SetAllFinished marks every habit of user FINISHED. It returns false when
// the user has no habits bucket.
func (s *MemoryStore) SetAllFinished(user models.User) bool {
	bucket, ok := s.habits[user]
	if !ok {
		return false
	}
	for _, id := range slices.Sorted(maps.Keys(bucket)) {
		s.setStatus(bucket[id], models.StatusFinished)
	}
	return true
}

func (s *MemoryStore) setStatus(habit *models.Habit, status models.HabitStatus) {
	previous := habit.Status
	habit.Status = status
	if status == models.StatusFinished && previous != models.StatusFinished {
		s.recorder.HabitCompleted(*habit, s.now())
	}
}

func (s *MemoryStore) Get(user models.User, id int) (models.Habit, bool) {
	habit, ok := s.lookup(user, id)
	if !ok {
		return models.Habit{}, false
	}
	return *habit, true
}

// All returns copies of the user's habits in insertion order.
func (s *MemoryStore) All(user models.User) ([]models.Habit, bool) {
	bucket, ok := s.habits[user]
	if !ok {
		return nil, false
	}
	habits := make([]models.Habit, 0, len(bucket))
	for _, habit := range bucket {
		habits = append(habits, *habit)
	}
	// IDs are issued in increasing order, so sorting by ID restores insertion order
	slices.SortFunc(habits, func(a, b models.Habit) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return habits, true
}

func (s *MemoryStore) ByStatus(user models.User, status models.HabitStatus) ([]models.Habit, bool) {
	habits, ok := s.All(user)
	if !ok {
		return nil, false
	}
	return slices.DeleteFunc(habits, func(h models.Habit) bool {
		return h.Status != status
	}), true
}

// SortedByStatus orders habits NEW, IN_PROGRESS, FINISHED. Ties keep
// insertion order.
func (s *MemoryStore) SortedByStatus(user models.User) ([]models.Habit, bool) {
	habits, ok := s.All(user)
	if !ok {
		return nil, false
	}
	slices.SortStableFunc(habits, func(a, b models.Habit) int {
		return a.Status.Compare(b.Status)
	})
	return habits, true
}

// SortedByCreationDate orders habits oldest first. Ties keep insertion order.
func (s *MemoryStore) SortedByCreationDate(user models.User) ([]models.Habit, bool) {
	habits, ok := s.All(user)
	if !ok {
		return nil, false
	}
	slices.SortStableFunc(habits, func(a, b models.Habit) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return habits, true
}

// Users returns every user that has added a habit, ordered by name.
func (s *MemoryStore) Users() []models.User {
	users := slices.Collect(maps.Keys(s.habits))
	slices.SortFunc(users, func(a, b models.User) int {
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return strings.Compare(a.ID.String(), b.ID.String())
	})
	return users
}

func (s *MemoryStore) lookup(user models.User, id int) (*models.Habit, bool) {
	bucket, ok := s.habits[user]
	if !ok {
		return nil, false
	}
	habit, ok := bucket[id]
	return habit, ok
}

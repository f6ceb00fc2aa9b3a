package storage

import (
	"time"

	"github.com/julianstephens/habits/internal/models"
)

// HabitStore holds habits partitioned by user. An unknown user is never an
// error: lookups report it through their boolean result and mutations become
// no-ops that return false.
type HabitStore interface {
	// Habits
	Add(user models.User, habit *models.Habit)
	Delete(user models.User, id int) bool
	UpdateName(user models.User, id int, name string) bool
	UpdateDescription(user models.User, id int, description string) bool
	UpdateStatus(user models.User, id int, status models.HabitStatus) bool
	MarkCompleted(user models.User, id int, at time.Time) bool
	SetAllFinished(user models.User) bool

	// Views
	Get(user models.User, id int) (models.Habit, bool)
	All(user models.User) ([]models.Habit, bool)
	ByStatus(user models.User, status models.HabitStatus) ([]models.Habit, bool)
	SortedByStatus(user models.User) ([]models.Habit, bool)
	SortedByCreationDate(user models.User) ([]models.Habit, bool)

	// Users
	Users() []models.User
}

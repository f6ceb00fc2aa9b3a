// Package history records what happens to habits over time.
package history

import (
	"time"

	"github.com/julianstephens/habits/internal/logger"
	"github.com/julianstephens/habits/internal/models"
)

// Recorder receives habit lifecycle events from a store. Calls are
// synchronous and happen inside the mutating store operation.
type Recorder interface {
	HabitCreated(h models.Habit)
	// HabitDeleted is called with the habit as it was just before removal.
	HabitDeleted(h models.Habit)
	HabitCompleted(h models.Habit, at time.Time)
}

// Nop discards every event.
type Nop struct{}

func (Nop) HabitCreated(models.Habit)              {}
func (Nop) HabitDeleted(models.Habit)              {}
func (Nop) HabitCompleted(models.Habit, time.Time) {}

// Logged forwards events to Next and writes a debug line for each one.
type Logged struct {
	Next Recorder
}

func (l Logged) HabitCreated(h models.Habit) {
	logger.Debug("Habit created", "habit_id", h.ID, "name", h.Name)
	l.Next.HabitCreated(h)
}

func (l Logged) HabitDeleted(h models.Habit) {
	logger.Debug("Habit deleted", "habit_id", h.ID, "name", h.Name)
	l.Next.HabitDeleted(h)
}

func (l Logged) HabitCompleted(h models.Habit, at time.Time) {
	logger.Debug("Habit completed", "habit_id", h.ID, "at", at.Format(time.RFC3339))
	l.Next.HabitCompleted(h, at)
}

package models

import "time"

type EventKind string

const (
	EventCreated   EventKind = "created"
	EventCompleted EventKind = "completed"
)

// HistoryEvent is a single entry of a habit's journal
type HistoryEvent struct {
	HabitID int       `json:"habit_id"`
	Kind    EventKind `json:"kind"`
	At      time.Time `json:"at"`
}

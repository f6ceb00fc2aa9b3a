package models

import (
	"cmp"
	"fmt"
	"strings"
	"time"
)

// HabitStatus is the progress state of a habit. The zero value is StatusNew and
// values order ascending NEW < IN_PROGRESS < FINISHED.
type HabitStatus int

const (
	StatusNew HabitStatus = iota
	StatusInProgress
	StatusFinished
)

var statusNames = [...]string{
	StatusNew:        "NEW",
	StatusInProgress: "IN_PROGRESS",
	StatusFinished:   "FINISHED",
}

// Statuses lists every status in ascending order.
func Statuses() []HabitStatus {
	return []HabitStatus{StatusNew, StatusInProgress, StatusFinished}
}

func (s HabitStatus) String() string {
	if !s.Valid() {
		return fmt.Sprintf("HabitStatus(%d)", int(s))
	}
	return statusNames[s]
}

// Valid reports whether s is one of the declared statuses.
func (s HabitStatus) Valid() bool {
	return s >= StatusNew && s <= StatusFinished
}

// Compare returns -1, 0 or +1 following the natural status order.
func (s HabitStatus) Compare(other HabitStatus) int {
	return cmp.Compare(s, other)
}

// ParseHabitStatus accepts status names case-insensitively, with '_', '-' or
// ' ' between words ("in-progress", "In Progress", "IN_PROGRESS").
func ParseHabitStatus(s string) (HabitStatus, error) {
	norm := strings.ToUpper(strings.TrimSpace(s))
	norm = strings.NewReplacer("-", "_", " ", "_").Replace(norm)
	for i, name := range statusNames {
		if name == norm {
			return HabitStatus(i), nil
		}
	}
	return 0, fmt.Errorf("invalid habit status: %q (expected one of NEW, IN_PROGRESS, FINISHED)", s)
}

func (s HabitStatus) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid habit status: %d", int(s))
	}
	return []byte(s.String()), nil
}

func (s *HabitStatus) UnmarshalText(text []byte) error {
	parsed, err := ParseHabitStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Habit represents a trackable activity owned by a user
type Habit struct {
	ID          int         `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Status      HabitStatus `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
}

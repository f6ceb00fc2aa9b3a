package models

import (
	"time"

	"github.com/google/uuid"
)

// User partitions habits. It is a comparable value and is used directly as a
// map key, so two Users are the same owner only when every field matches.
type User struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUser returns a user with a fresh random ID.
func NewUser(name string) User {
	return User{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
}

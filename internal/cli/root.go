package cli

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"
	"time"

	apperrors "github.com/julianstephens/habits/internal/errors"
	"github.com/julianstephens/habits/internal/history"
	"github.com/julianstephens/habits/internal/logger"
	"github.com/julianstephens/habits/internal/models"
	"github.com/julianstephens/habits/internal/storage"
)

// Context is the state shared by every command of one session.
type Context struct {
	Store   storage.HabitStore
	Journal *history.Journal

	In     io.Reader
	Out    io.Writer
	Prompt string
	Now    func() time.Time

	users  map[string]models.User
	active *models.User
}

// NewContext wires a fresh in-memory store to a journal. Events are logged
// before they reach the journal.
func NewContext() *Context {
	journal := history.NewJournal()
	return &Context{
		Store:   storage.NewMemoryStore(storage.WithRecorder(history.Logged{Next: journal})),
		Journal: journal,
		In:      os.Stdin,
		Out:     os.Stdout,
		Now:     time.Now,
		users:   make(map[string]models.User),
	}
}

func (c *Context) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.Out, format, args...)
}

// AddUser registers a user under a unique name and makes it active.
func (c *Context) AddUser(name string) (models.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.User{}, fmt.Errorf("user name cannot be empty")
	}
	if _, ok := c.users[name]; ok {
		return models.User{}, fmt.Errorf("%q: %w", name, apperrors.ErrDuplicateUser)
	}

	user := models.NewUser(name)
	c.users[name] = user
	c.active = &user
	logger.Info("User registered", "name", name, "id", user.ID)
	return user, nil
}

// UseUser switches the active user.
func (c *Context) UseUser(name string) error {
	user, ok := c.users[name]
	if !ok {
		return fmt.Errorf("%q: %w", name, apperrors.ErrUnknownUser)
	}
	c.active = &user
	return nil
}

// ActiveUser returns the user that habit commands act on.
func (c *Context) ActiveUser() (models.User, error) {
	if c.active == nil {
		return models.User{}, apperrors.ErrNoActiveUser
	}
	return *c.active, nil
}

// RegisteredUsers returns registered users ordered by name.
func (c *Context) RegisteredUsers() []models.User {
	names := slices.Sorted(maps.Keys(c.users))
	users := make([]models.User, 0, len(names))
	for _, name := range names {
		users = append(users, c.users[name])
	}
	return users
}

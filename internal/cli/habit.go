package cli

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/julianstephens/habits/internal/constants"
	apperrors "github.com/julianstephens/habits/internal/errors"
	"github.com/julianstephens/habits/internal/models"
)

func habitNotFound(id int) error {
	return fmt.Errorf("habit %d: %w", id, apperrors.ErrHabitNotFound)
}

type HabitAddCmd struct {
	Name        string `arg:"" help:"Habit name."`
	Description string `short:"d" help:"Optional description."`
	Status      string `short:"s" help:"Initial status (new, in-progress, finished)." default:"new"`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	user, err := ctx.ActiveUser()
	if err != nil {
		return err
	}

	name := strings.TrimSpace(c.Name)
	if name == "" {
		return fmt.Errorf("habit name cannot be empty")
	}
	status, err := models.ParseHabitStatus(c.Status)
	if err != nil {
		return err
	}

	habit := models.Habit{
		Name:        name,
		Description: c.Description,
	}
	ctx.Store.Add(user, &habit)
	if status != models.StatusNew {
		ctx.Store.UpdateStatus(user, habit.ID, status)
	}

	ctx.printf("Added habit #%d: %s\n", habit.ID, habit.Name)
	return nil
}

type HabitListCmd struct {
	Status string `short:"s" help:"Only show habits with this status."`
	Sort   string `help:"Sort order (id, status, created)." enum:"id,status,created" default:"id"`
}

func (c *HabitListCmd) Run(ctx *Context) error {
	user, err := ctx.ActiveUser()
	if err != nil {
		return err
	}

	filter := c.Status != ""
	var status models.HabitStatus
	if filter {
		if status, err = models.ParseHabitStatus(c.Status); err != nil {
			return err
		}
	}

	var habits []models.Habit
	switch c.Sort {
	case "status":
		habits, _ = ctx.Store.SortedByStatus(user)
	case "created":
		habits, _ = ctx.Store.SortedByCreationDate(user)
	default:
		if filter {
			habits, _ = ctx.Store.ByStatus(user, status)
			filter = false
		} else {
			habits, _ = ctx.Store.All(user)
		}
	}
	if filter {
		habits = slices.DeleteFunc(habits, func(h models.Habit) bool {
			return h.Status != status
		})
	}

	if len(habits) == 0 {
		ctx.printf("No habits found.\n")
		return nil
	}

	ctx.printf("%s\n", renderHabits(habits))
	return nil
}

type HabitShowCmd struct {
	ID int `arg:"" help:"Habit ID."`
}

func (c *HabitShowCmd) Run(ctx *Context) error {
	user, err := ctx.ActiveUser()
	if err != nil {
		return err
	}
	habit, ok := ctx.Store.Get(user, c.ID)
	if !ok {
		return habitNotFound(c.ID)
	}

	ctx.printf("%s\n", renderHabit(habit))
	return nil
}

type HabitRenameCmd struct {
	ID   int    `arg:"" help:"Habit ID."`
	Name string `arg:"" help:"New name."`
}

func (c *HabitRenameCmd) Run(ctx *Context) error {
	user, err := ctx.ActiveUser()
	if err != nil {
		return err
	}
	name := strings.TrimSpace(c.Name)
	if name == "" {
		return fmt.Errorf("habit name cannot be empty")
	}
	if !ctx.Store.UpdateName(user, c.ID, name) {
		return habitNotFound(c.ID)
	}
	ctx.printf("Renamed habit #%d to %s\n", c.ID, name)
	return nil
}

type HabitDescribeCmd struct {
	ID          int    `arg:"" help:"Habit ID."`
	Description string `arg:"" help:"New description (empty string clears it)."`
}

func (c *HabitDescribeCmd) Run(ctx *Context) error {
	user, err := ctx.ActiveUser()
	if err != nil {
		return err
	}
	if !ctx.Store.UpdateDescription(user, c.ID, c.Description) {
		return habitNotFound(c.ID)
	}
	ctx.printf("Updated description of habit #%d\n", c.ID)
	return nil
}

type HabitStatusCmd struct {
	ID     int    `arg:"" help:"Habit ID."`
	Status string `arg:"" help:"New status (new, in-progress, finished)."`
}

func (c *HabitStatusCmd) Run(ctx *Context) error {
	user, err := ctx.ActiveUser()
	if err != nil {
		return err
	}
	status, err := models.ParseHabitStatus(c.Status)
	if err != nil {
		return err
	}
	if !ctx.Store.UpdateStatus(user, c.ID, status) {
		return habitNotFound(c.ID)
	}
	ctx.printf("Habit #%d is now %s\n", c.ID, status)
	return nil
}

type FinishAllCmd struct{}

func (c *FinishAllCmd) Run(ctx *Context) error {
	user, err := ctx.ActiveUser()
	if err != nil {
		return err
	}
	if !ctx.Store.SetAllFinished(user) {
		ctx.printf("No habits found.\n")
		return nil
	}
	ctx.printf("Marked every habit of %s as %s\n", user.Name, models.StatusFinished)
	return nil
}

type HabitDoneCmd struct {
	ID   int    `arg:"" help:"Habit ID."`
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *HabitDoneCmd) Run(ctx *Context) error {
	user, err := ctx.ActiveUser()
	if err != nil {
		return err
	}

	at := ctx.Now()
	if c.Date != "" {
		day, err := time.ParseInLocation(constants.DateFormat, c.Date, at.Location())
		if err != nil {
			return fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", c.Date)
		}
		at = day.Add(12 * time.Hour)
	}

	if !ctx.Store.MarkCompleted(user, c.ID, at) {
		return habitNotFound(c.ID)
	}
	ctx.printf("Marked habit #%d done for %s\n", c.ID, at.Format(constants.DateFormat))
	return nil
}

type HabitHistoryCmd struct {
	ID int `arg:"" help:"Habit ID."`
}

func (c *HabitHistoryCmd) Run(ctx *Context) error {
	user, err := ctx.ActiveUser()
	if err != nil {
		return err
	}
	habit, ok := ctx.Store.Get(user, c.ID)
	if !ok {
		return habitNotFound(c.ID)
	}

	days := ctx.Journal.Completions(habit.ID)
	ctx.printf("%s (#%d)\n", habit.Name, habit.ID)
	if len(days) == 0 {
		ctx.printf("  No completions yet.\n")
		return nil
	}
	ctx.printf("  Completed: %s\n", strings.Join(days, ", "))
	ctx.printf("  Streak: %d day(s)\n", ctx.Journal.Streak(habit.ID, ctx.Now()))
	return nil
}

type HabitDeleteCmd struct {
	ID int `arg:"" help:"Habit ID."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	user, err := ctx.ActiveUser()
	if err != nil {
		return err
	}
	if !ctx.Store.Delete(user, c.ID) {
		return habitNotFound(c.ID)
	}
	ctx.printf("Deleted habit #%d\n", c.ID)
	return nil
}

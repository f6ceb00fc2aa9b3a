package cli

import (
	"encoding/json"
	"fmt"

	"github.com/julianstephens/habits/internal/models"
)

type DebugCmd struct {
	Habits  DebugDumpHabitsCmd  `cmd:"" help:"Dump the active user's habits as JSON."`
	History DebugDumpHistoryCmd `cmd:"" help:"Dump a habit's journal as JSON."`
}

type DebugDumpHabitsCmd struct{}

func (cmd *DebugDumpHabitsCmd) Run(ctx *Context) error {
	user, err := ctx.ActiveUser()
	if err != nil {
		return err
	}

	habits, _ := ctx.Store.All(user)
	if habits == nil {
		habits = []models.Habit{}
	}

	output := struct {
		User   models.User    `json:"user"`
		Habits []models.Habit `json:"habits"`
	}{user, habits}

	return ctx.printJSON(output)
}

type DebugDumpHistoryCmd struct {
	ID int `arg:"" help:"ID of the habit to dump."`
}

func (cmd *DebugDumpHistoryCmd) Run(ctx *Context) error {
	user, err := ctx.ActiveUser()
	if err != nil {
		return err
	}
	if _, ok := ctx.Store.Get(user, cmd.ID); !ok {
		return habitNotFound(cmd.ID)
	}

	events, ok := ctx.Journal.Events(cmd.ID)
	if !ok {
		events = []models.HistoryEvent{}
	}
	return ctx.printJSON(events)
}

func (c *Context) printJSON(v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	c.printf("%s\n", jsonBytes)
	return nil
}

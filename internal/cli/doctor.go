package cli

import (
	"fmt"
	"time"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	ctx.printf("Running diagnostics...\n\n")

	checks := []struct {
		name string
		fn   func(*Context) error
	}{
		{"Unique habit IDs", checkUniqueIDs},
		{"Valid statuses", checkStatuses},
		{"History coverage", checkHistoryCoverage},
		{"Clock/timezone", checkClock},
	}

	hasError := false
	for _, check := range checks {
		if err := check.fn(ctx); err != nil {
			ctx.printf("❌ %s: FAIL\n", check.name)
			ctx.printf("   Error: %v\n", err)
			hasError = true
			continue
		}
		ctx.printf("✓ %s: OK\n", check.name)
	}

	ctx.printf("\n")
	if hasError {
		ctx.printf("Diagnostics completed with errors.\n")
		return fmt.Errorf("one or more health checks failed")
	}
	ctx.printf("All diagnostics passed!\n")
	return nil
}

func checkUniqueIDs(ctx *Context) error {
	owners := make(map[int]string)
	for _, user := range ctx.Store.Users() {
		habits, _ := ctx.Store.All(user)
		for _, h := range habits {
			if owner, ok := owners[h.ID]; ok {
				return fmt.Errorf("habit id %d is owned by both %s and %s", h.ID, owner, user.Name)
			}
			owners[h.ID] = user.Name
		}
	}
	return nil
}

func checkStatuses(ctx *Context) error {
	for _, user := range ctx.Store.Users() {
		habits, _ := ctx.Store.All(user)
		for _, h := range habits {
			if !h.Status.Valid() {
				return fmt.Errorf("habit %d of %s has invalid status %d", h.ID, user.Name, int(h.Status))
			}
		}
	}
	return nil
}

// checkHistoryCoverage verifies that the journal tracks exactly the habits
// that are still in the store.
func checkHistoryCoverage(ctx *Context) error {
	live := make(map[int]bool)
	for _, user := range ctx.Store.Users() {
		habits, _ := ctx.Store.All(user)
		for _, h := range habits {
			live[h.ID] = true
			if _, ok := ctx.Journal.Events(h.ID); !ok {
				return fmt.Errorf("habit %d has no history", h.ID)
			}
		}
	}
	for _, id := range ctx.Journal.HabitIDs() {
		if !live[id] {
			return fmt.Errorf("history kept for deleted habit %d", id)
		}
	}
	return nil
}

func checkClock(ctx *Context) error {
	now := ctx.Now()
	if now.Year() < 2000 {
		return fmt.Errorf("system clock looks wrong: %s", now.Format(time.RFC3339))
	}
	if now.Location() == nil {
		return fmt.Errorf("no local timezone configured")
	}
	return nil
}

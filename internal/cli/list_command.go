package cli

import (
	"context"

	"habit-tracker/internal/config"
	"habit-tracker/internal/errors"
)

// ListCommand handles the list command
type ListCommand struct {
	app *App
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{app: app}
}

// Execute runs the list command
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	if len(args) > 0 {
		return errors.NewInvalidInputError("args", args, "list takes no arguments")
	}

	snap := c.app.tracker.Snapshot()

	switch c.app.config.Display.ListFormat {
	case config.FormatJSON:
		return writeJSON(c.app.out, snap)
	default:
		today := timeNow().In(c.app.location())
		c.app.printf("Daily Habits (%s)\n", today.Format(c.app.config.Display.DateFormat))
		if len(snap.Habits) == 0 {
			c.app.printf("  No habits\n")
		}
		for _, h := range snap.Habits {
			writeHabit(c.app.out, h)
		}
		writeProgress(c.app.out, snap)
		writeStreak(c.app.out, snap)
		writeCelebration(c.app.out, snap)
		return nil
	}
}

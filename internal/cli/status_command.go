package cli

import (
	"context"

	"habit-tracker/internal/config"
	"habit-tracker/internal/errors"
)

// StatusCommand handles the status command
type StatusCommand struct {
	app *App
}

// NewStatusCommand creates a new status command handler
func NewStatusCommand(app *App) *StatusCommand {
	return &StatusCommand{app: app}
}

// Execute runs the status command
func (c *StatusCommand) Execute(ctx context.Context, args []string) error {
	if len(args) > 0 {
		return errors.NewInvalidInputError("args", args, "status takes no arguments")
	}

	snap := c.app.tracker.Snapshot()
	if c.app.config.Display.ListFormat == config.FormatJSON {
		return writeJSON(c.app.out, snap)
	}

	writeStreak(c.app.out, snap)
	if snap.LastCompletedDate.IsZero() {
		c.app.printf("Last completed: never\n")
	} else {
		c.app.printf("Last completed: %s\n", snap.LastCompletedDate.Format(c.app.config.Display.DateFormat))
	}
	writeProgress(c.app.out, snap)
	return nil
}

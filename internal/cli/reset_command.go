package cli

import (
	"context"

	"habit-tracker/internal/errors"
)

// ResetCommand handles the reset command
type ResetCommand struct {
	app *App
}

// NewResetCommand creates a new reset command handler
func NewResetCommand(app *App) *ResetCommand {
	return &ResetCommand{app: app}
}

// Execute runs the reset command
func (c *ResetCommand) Execute(ctx context.Context, args []string) error {
	if len(args) > 0 {
		return errors.NewInvalidInputError("args", args, "reset takes no arguments")
	}

	c.app.warnNotSaved(c.app.tracker.ResetDay(ctx))

	snap := c.app.tracker.Snapshot()
	c.app.printf("All habits reset for today\n")
	writeStreak(c.app.out, snap)
	return nil
}

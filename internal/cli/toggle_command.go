package cli

import (
	"context"

	"habit-tracker/internal/errors"
)

// ToggleCommand handles the toggle command
type ToggleCommand struct {
	app *App
}

// NewToggleCommand creates a new toggle command handler
func NewToggleCommand(app *App) *ToggleCommand {
	return &ToggleCommand{app: app}
}

// Execute runs the toggle command
func (c *ToggleCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("args", args, "toggle takes exactly one habit id")
	}
	id, err := parseHabitID(args[0])
	if err != nil {
		return err
	}
	if _, _, err := c.app.findHabit(id); err != nil {
		return err
	}

	c.app.warnNotSaved(c.app.tracker.Toggle(ctx, id))

	snap, idx, err := c.app.findHabit(id)
	if err != nil {
		return err
	}
	writeHabit(c.app.out, snap.Habits[idx])
	writeProgress(c.app.out, snap)
	writeCelebration(c.app.out, snap)
	return nil
}

package cli

import (
	"context"
	"strings"

	"habit-tracker/internal/errors"
	"habit-tracker/internal/validation"
)

// RenameCommand handles the rename command
type RenameCommand struct {
	app *App
}

// NewRenameCommand creates a new rename command handler
func NewRenameCommand(app *App) *RenameCommand {
	return &RenameCommand{app: app}
}

// Execute runs the rename command; every argument after the id forms the name
func (c *RenameCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.NewInvalidInputError("args", args, "rename takes a habit id and a new name")
	}
	id, err := parseHabitID(args[0])
	if err != nil {
		return err
	}
	if _, _, err := c.app.findHabit(id); err != nil {
		return err
	}

	requested := validation.TrimName(strings.Join(args[1:], " "))
	c.app.warnNotSaved(c.app.tracker.Rename(ctx, id, requested))

	snap, idx, err := c.app.findHabit(id)
	if err != nil {
		return err
	}
	habit := snap.Habits[idx]
	switch {
	case habit.Name == requested:
		c.app.printf("Renamed habit %d\n", id)
	case c.app.config.Tracker.HabitNameMaxLength > 0:
		c.app.printf("Name not changed; names must be non-empty and at most %d characters\n", c.app.config.Tracker.HabitNameMaxLength)
	default:
		c.app.printf("Name not changed; names must be non-empty\n")
	}
	writeHabit(c.app.out, habit)
	return nil
}

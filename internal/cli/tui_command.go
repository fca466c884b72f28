package cli

import (
	"context"

	"habit-tracker/internal/errors"
	"habit-tracker/internal/ui"
	"habit-tracker/internal/validation"
)

// TUICommand starts the interactive view
type TUICommand struct {
	app *App
	// isTTY is replaced in tests
	isTTY func() bool
	run   func(ctx context.Context, opts ui.Options) error
}

// NewTUICommand creates a new tui command handler
func NewTUICommand(app *App) *TUICommand {
	return &TUICommand{app: app, isTTY: ui.IsTTY, run: ui.Run}
}

// Execute runs the interactive view until the user quits
func (c *TUICommand) Execute(ctx context.Context, args []string) error {
	if len(args) > 0 {
		return errors.NewInvalidInputError("args", args, "tui takes no arguments")
	}
	if !c.isTTY() {
		return errors.NewInvalidInputError("terminal", "", "tui requires an interactive terminal; use ht list instead")
	}

	return c.run(ctx, ui.Options{
		Tracker:    c.app.tracker,
		Validator:  validation.NewHabitValidatorWithConfig(c.app.config),
		Logger:     c.app.logger,
		DateFormat: c.app.config.Display.DateFormat,
		Location:   c.app.location(),
	})
}

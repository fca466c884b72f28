package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"

	"habit-tracker/internal/config"
	"habit-tracker/internal/errors"
	"habit-tracker/internal/logging"
	"habit-tracker/internal/services"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// App binds command handlers to a tracker and its configuration
type App struct {
	tracker  services.Tracker
	config   *config.Config
	logger   *zap.Logger
	out      io.Writer
	registry *CommandRegistry
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(tracker services.Tracker, cfg *config.Config, logger *zap.Logger, out io.Writer) *App {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if out == nil {
		out = os.Stdout
	}
	app := &App{
		tracker: tracker,
		config:  cfg,
		logger:  logging.OrNop(logger),
		out:     out,
	}
	app.registry = NewCommandRegistry(app)
	return app
}

// Run executes the named command with the given arguments
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.NewInvalidInputError("command", "", a.registry.GetUsage())
	}
	return a.registry.Execute(ctx, args[0], args[1:])
}

func (a *App) printf(format string, args ...interface{}) {
	fmt.Fprintf(a.out, format, args...)
}

// warnNotSaved reports a failed save; the command still succeeds because
// the change is kept in memory for the rest of the session.
func (a *App) warnNotSaved(err error) {
	if !errors.ShouldLogError(err) {
		return
	}
	a.logger.Warn(errors.GetUserMessage(err), notSavedFields(err)...)
}

// notSavedFields adds the unwritten record keys when the error carries them
func notSavedFields(err error) []zap.Field {
	fields := []zap.Field{zap.Error(err)}
	if appErr, ok := errors.AsAppError(err); ok {
		if keys, ok := appErr.GetContext("keys"); ok {
			fields = append(fields, zap.Any("keys", keys))
		}
	}
	return fields
}

// location returns the configured reference timezone
func (a *App) location() *time.Location {
	loc, err := a.config.Location()
	if err != nil {
		return time.Local
	}
	return loc
}

// parseHabitID parses a habit id argument
func parseHabitID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, errors.NewInvalidInputError("id", arg, "habit id must be a number")
	}
	return id, nil
}

// findHabit returns the habit with id from the current snapshot
func (a *App) findHabit(id int) (services.Snapshot, int, error) {
	snap := a.tracker.Snapshot()
	for i, h := range snap.Habits {
		if h.ID == id {
			return snap, i, nil
		}
	}
	return snap, -1, errors.NewNotFoundError("habit", strconv.Itoa(id))
}

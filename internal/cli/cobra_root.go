package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"habit-tracker/internal/config"
	apperrors "habit-tracker/internal/errors"
	"habit-tracker/internal/logging"
	"habit-tracker/internal/services"
)

// TrackerFactory builds the tracker once configuration is final. The
// returned release func closes whatever storage the tracker sits on.
type TrackerFactory func(ctx context.Context, cfg *config.Config, logger *zap.Logger) (services.Tracker, func() error, error)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd          *cobra.Command
	loader       *config.Loader
	factory      TrackerFactory
	errorHandler *ErrorHandler

	config  *config.Config
	logger  *zap.Logger
	app     *App
	release func() error
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(loader *config.Loader, factory TrackerFactory) *RootCommand {
	root := &RootCommand{
		loader:       loader,
		factory:      factory,
		errorHandler: NewErrorHandler(),
	}

	root.cmd = &cobra.Command{
		Use:   "ht",
		Short: "A command-line daily habit tracker",
		Long: `Habit Tracker (ht) keeps a short list of daily habits, your progress for today
and a streak that grows every day you complete them all.

EXAMPLES:
  ht list                                  # Show today's habits
  ht toggle 3                              # Mark habit 3 done (or not done)
  ht rename 2 "Walk for 30 minutes"        # Rename habit 2
  ht reset                                 # Start the day over
  ht status                                # Streak and progress
  ht tui                                   # Interactive view

CONFIGURATION:
  Configuration follows this priority order:
  command-line flags > environment variables > config file > defaults

  The config file is YAML, read from --config, HT_CONFIG or <db dir>/config.yaml.

  Storage Configuration:
    HT_STORAGE_BACKEND                     sqlite, redis or memory (default: sqlite)
    HT_DB_DIR                              Database directory (default: ~/.ht)
    HT_DB_FILENAME                         Database filename (default: ht.db)
    HT_DB_WRITE_TIMEOUT                    Write timeout (default: 5s)
    HT_REDIS_ADDR                          Redis address (default: localhost:6379)
    HT_REDIS_KEY_PREFIX                    Redis key prefix (default: ht:)

  Tracker Configuration:
    HT_TIMEZONE                            Zone that decides "today" (default: Local)
    HT_CELEBRATION_DURATION                Celebration display time (default: 3s)
    HT_HABIT_NAME_MAX                      Max habit name length, 0 for unlimited (default: 0)

  Display Configuration:
    HT_LIST_FORMAT                         table or json (default: table)
    HT_DATE_FORMAT                         Date layout (default: Mon Jan 2 2006)

  Application Configuration:
    HT_APP_TIMEOUT                         Application timeout (default: 30s)
    HT_APP_VERBOSE                         Enable verbose output (default: false)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.loadConfig(cmd)
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Command returns the underlying cobra command
func (r *RootCommand) Command() *cobra.Command {
	return r.cmd
}

// Execute runs the root command and releases the tracker afterwards
func (r *RootCommand) Execute(ctx context.Context) error {
	err := r.cmd.ExecuteContext(ctx)
	r.shutdown()
	return err
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("config", "", "YAML config file (overrides HT_CONFIG)")

	flags.String("storage", "", "Storage backend: sqlite, redis or memory (overrides HT_STORAGE_BACKEND)")
	flags.String("db-dir", "", "Database directory (overrides HT_DB_DIR)")
	flags.String("db-filename", "", "Database filename (overrides HT_DB_FILENAME)")
	flags.String("redis-addr", "", "Redis address (overrides HT_REDIS_ADDR)")

	flags.String("timezone", "", "Timezone that decides the current day (overrides HT_TIMEZONE)")
	flags.Duration("celebration", 0, "How long the celebration is shown (overrides HT_CELEBRATION_DURATION)")

	flags.Duration("app-timeout", 0, "Application timeout (overrides HT_APP_TIMEOUT)")
	flags.BoolP("verbose", "v", false, "Enable verbose output (overrides HT_APP_VERBOSE)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List today's habits",
		Long:  "List every habit with its completion mark, today's progress and the current streak.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format, _ := cmd.Flags().GetString("format"); format != "" {
				r.config.Display.ListFormat = format
				if err := r.config.Validate(); err != nil {
					return err
				}
			}
			return r.run(cmd, "list", "list habits", args, true)
		},
	}
	listCmd.Flags().String("format", "", "Output format: table or json (overrides HT_LIST_FORMAT)")

	toggleCmd := &cobra.Command{
		Use:   "toggle <id>",
		Short: "Toggle a habit between done and not done",
		Long: `Toggle a habit between done and not done.

Completing the last open habit of the day advances the streak, at most once per day.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, "toggle", "toggle habit", args, true)
		},
	}

	renameCmd := &cobra.Command{
		Use:   "rename <id> <name...>",
		Short: "Rename a habit",
		Long: `Rename a habit. Surrounding whitespace is removed; an empty name keeps the old one.

Example:
  ht rename 2 Walk for 30 minutes`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, "rename", "rename habit", args, true)
		},
	}

	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Mark every habit as not done",
		Long:  "Mark every habit as not done. The streak is kept.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, "reset", "reset day", args, true)
		},
	}

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show streak and progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, "status", "show status", args, true)
		},
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "Interactive habit view",
		Long: `Interactive habit view.

Keys: up/down or j/k to move, space or enter to toggle, e to rename,
r to reset the day, q to quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// interactive sessions are not bounded by the application timeout
			return r.run(cmd, "tui", "run interactive view", args, false)
		},
	}

	r.cmd.AddCommand(
		listCmd,
		toggleCmd,
		renameCmd,
		resetCmd,
		statusCmd,
		tuiCmd,
	)
}

// run builds the application on first use and dispatches to the named handler
func (r *RootCommand) run(cmd *cobra.Command, name, operation string, args []string, bounded bool) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if bounded {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.getAppTimeout())
		defer cancel()
	}

	app, err := r.application(ctx, cmd)
	if err != nil {
		return r.fail(ctx, "open habit storage", err)
	}

	if err := app.registry.Execute(ctx, name, args); err != nil {
		return r.fail(ctx, operation, err)
	}
	return nil
}

// fail reports err for operation, replacing it with a timeout error when the
// command's deadline is what ended it
func (r *RootCommand) fail(ctx context.Context, operation string, err error) error {
	if stderrors.Is(ctx.Err(), context.DeadlineExceeded) {
		err = apperrors.NewTimeoutError(operation, r.getAppTimeout())
	}
	logging.OrNop(r.logger).Debug("command failed",
		zap.String("operation", operation),
		zap.String("code", apperrors.GetErrorCode(err)),
		zap.Error(err))
	return r.errorHandler.Handle(operation, err)
}

func (r *RootCommand) application(ctx context.Context, cmd *cobra.Command) (*App, error) {
	if r.app != nil {
		return r.app, nil
	}

	tracker, release, err := r.factory(ctx, r.config, r.logger)
	if err != nil {
		return nil, err
	}
	r.release = release
	r.app = NewApp(tracker, r.config, r.logger, cmd.OutOrStdout())
	return r.app, nil
}

func (r *RootCommand) shutdown() {
	if r.app != nil {
		r.app.tracker.Close()
	}
	if r.release != nil {
		if err := r.release(); err != nil {
			r.logger.Warn("failed to close storage", zap.Error(err))
		}
	}
	if r.logger != nil {
		_ = r.logger.Sync()
	}
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil && r.config.Application.Timeout > 0 {
		return r.config.Application.Timeout
	}
	return 30 * time.Second
}

// loadConfig resolves the configuration cascade and builds the logger
func (r *RootCommand) loadConfig(cmd *cobra.Command) error {
	if r.loader == nil {
		return fmt.Errorf("configuration loader not initialized")
	}

	cfg, err := r.loader.LoadWithOverrides(r.getOverridesFromFlags(cmd))
	if err != nil {
		return err
	}
	r.config = cfg

	logger, err := logging.New(logging.Options{Verbose: cfg.Application.Verbose})
	if err != nil {
		return err
	}
	r.logger = logger
	r.logger.Debug("configuration loaded",
		zap.String("backend", cfg.Storage.Backend),
		zap.String("timezone", cfg.Tracker.Timezone),
	)
	return nil
}

// getOverridesFromFlags collects the global flags the user actually set
func (r *RootCommand) getOverridesFromFlags(cmd *cobra.Command) *config.ConfigOverrides {
	flags := cmd.Flags()
	overrides := &config.ConfigOverrides{}

	stringFlag := func(name string) *string {
		if !flags.Changed(name) {
			return nil
		}
		value, _ := flags.GetString(name)
		return &value
	}
	durationFlag := func(name string) *time.Duration {
		if !flags.Changed(name) {
			return nil
		}
		value, _ := flags.GetDuration(name)
		return &value
	}

	overrides.ConfigFile = stringFlag("config")
	overrides.StorageBackend = stringFlag("storage")
	overrides.DBDir = stringFlag("db-dir")
	overrides.DBFilename = stringFlag("db-filename")
	overrides.RedisAddr = stringFlag("redis-addr")
	overrides.Timezone = stringFlag("timezone")
	overrides.CelebrationDuration = durationFlag("celebration")
	overrides.Timeout = durationFlag("app-timeout")
	if flags.Changed("verbose") {
		verbose, _ := flags.GetBool("verbose")
		overrides.Verbose = &verbose
	}

	return overrides
}

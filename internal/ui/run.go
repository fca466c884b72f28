// Package ui provides the interactive terminal view of the tracker.
package ui

import (
	"context"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"habit-tracker/internal/services"
	"habit-tracker/internal/validation"
)

// Options configures the interactive view
type Options struct {
	Tracker    services.Tracker
	Validator  *validation.HabitValidator
	Logger     *zap.Logger
	DateFormat string
	Location   *time.Location
	// RefreshInterval controls how often the view re-reads the tracker so a
	// cleared celebration disappears without a key press.
	RefreshInterval time.Duration
}

// Run starts the program and blocks until the user quits or ctx ends
func Run(ctx context.Context, opts Options) error {
	model := NewModel(ctx, opts)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

// IsTTY reports whether stdout is an interactive terminal
func IsTTY() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

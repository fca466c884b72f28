package cli

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"habit-tracker/internal/errors"
	"habit-tracker/internal/ui"
)

func TestTUICommand_RequiresTTY(t *testing.T) {
	app, _, _ := setupTestApp(t)
	cmd := NewTUICommand(app)
	cmd.isTTY = func() bool { return false }

	err := cmd.Execute(context.Background(), nil)

	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidInput))
	assert.Contains(t, err.Error(), "interactive terminal")
}

func TestTUICommand_PassesOptions(t *testing.T) {
	app, tracker, _ := setupTestApp(t)
	app.config.Display.DateFormat = "2006-01-02"

	var got ui.Options
	cmd := NewTUICommand(app)
	cmd.isTTY = func() bool { return true }
	cmd.run = func(ctx context.Context, opts ui.Options) error {
		got = opts
		return nil
	}

	require.NoError(t, cmd.Execute(context.Background(), nil))

	assert.Same(t, tracker, got.Tracker)
	assert.Equal(t, "2006-01-02", got.DateFormat)
	assert.Equal(t, time.UTC, got.Location)
	require.NotNil(t, got.Validator)
	assert.Error(t, got.Validator.ValidateHabitName("  "))
}

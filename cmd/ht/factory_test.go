package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"habit-tracker/internal/config"
	"habit-tracker/internal/repository/memory"
	"habit-tracker/internal/repository/sqlite"
)

func TestGetEnvironment(t *testing.T) {
	tests := []struct {
		value string
		want  Environment
	}{
		{value: "development", want: Development},
		{value: "testing", want: Testing},
		{value: "production", want: Production},
		{value: "", want: Production},
		{value: "staging", want: Production},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("HT_ENV", tt.value)
			assert.Equal(t, tt.want, getEnvironment())
		})
	}
}

func TestRepositoryFactory_TestingUsesMemory(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Storage.Backend = config.BackendSQLite

	repo, err := NewRepositoryFactory(Testing).CreateRepository(context.Background(), cfg)
	require.NoError(t, err)
	defer repo.Close()

	assert.IsType(t, &memory.Repository{}, repo)
}

func TestRepositoryFactory_SQLiteCreatesDirectory(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Storage.Backend = config.BackendSQLite
	cfg.Storage.Dir = filepath.Join(t.TempDir(), "nested", "ht")

	repo, err := NewRepositoryFactory(Production).CreateRepository(context.Background(), cfg)
	require.NoError(t, err)
	defer repo.Close()

	assert.IsType(t, &sqlite.SQLiteRepository{}, repo)
	_, err = os.Stat(cfg.GetDatabasePath())
	assert.NoError(t, err)
}

func TestRepositoryFactory_RedisUnreachable(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Storage.Backend = config.BackendRedis
	cfg.Storage.Redis.Addr = "127.0.0.1:1"

	_, err := NewRepositoryFactory(Production).CreateRepository(context.Background(), cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect to redis")
}

func TestRepositoryFactory_NewTracker(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Storage.Backend = config.BackendSQLite
	cfg.Storage.Dir = t.TempDir()
	cfg.Tracker.Timezone = "UTC"
	factory := NewRepositoryFactory(Production)
	ctx := context.Background()

	tracker, release, err := factory.NewTracker(ctx, cfg, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, tracker.Toggle(ctx, 1))
	require.NoError(t, tracker.Rename(ctx, 2, "  Stretch  "))
	tracker.Close()
	require.NoError(t, release())

	reopened, release, err := factory.NewTracker(ctx, cfg, zap.NewNop())
	require.NoError(t, err)
	defer func() {
		reopened.Close()
		_ = release()
	}()

	snap := reopened.Snapshot()
	assert.True(t, snap.Habits[0].Completed)
	assert.Equal(t, "Stretch", snap.Habits[1].Name)
	assert.Equal(t, 1, snap.CompletedCount)
}

func TestRepositoryFactory_InvalidTimezone(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Tracker.Timezone = "Not/AZone"

	_, _, err := NewRepositoryFactory(Testing).NewTracker(context.Background(), cfg, zap.NewNop())
	assert.Error(t, err)
}

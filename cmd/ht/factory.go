package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"habit-tracker/internal/config"
	"habit-tracker/internal/repository"
	"habit-tracker/internal/repository/memory"
	"habit-tracker/internal/repository/redis"
	"habit-tracker/internal/repository/sqlite"
	"habit-tracker/internal/services"
	"habit-tracker/internal/validation"
)

// Environment represents the current environment
type Environment string

const (
	Development Environment = "development"
	Testing     Environment = "testing"
	Production  Environment = "production"
)

// RepositoryFactory creates repository instances based on environment and configuration
type RepositoryFactory struct {
	env Environment
}

// NewRepositoryFactory creates a new repository factory for the given environment
func NewRepositoryFactory(env Environment) *RepositoryFactory {
	return &RepositoryFactory{env: env}
}

// CreateRepository opens the configured backend. The testing environment
// always uses memory so test runs never touch the user's data.
func (rf *RepositoryFactory) CreateRepository(ctx context.Context, cfg *config.Config) (repository.Repository, error) {
	if rf.env == Testing {
		return memory.New(), nil
	}

	switch cfg.Storage.Backend {
	case config.BackendMemory:
		return memory.New(), nil
	case config.BackendRedis:
		return rf.createRedisRepository(ctx, cfg)
	default:
		return rf.createSQLiteRepository(ctx, cfg)
	}
}

// createSQLiteRepository opens the database file, creating its directory
func (rf *RepositoryFactory) createSQLiteRepository(ctx context.Context, cfg *config.Config) (repository.Repository, error) {
	dbPath := cfg.GetDatabasePath()
	if rf.env == Development {
		dbPath = cfg.Storage.Filename
	} else if err := os.MkdirAll(cfg.Storage.Dir, os.FileMode(cfg.Storage.DirPermissions)); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	repo, err := sqlite.New(ctx, dbPath, sqlite.WithWriteTimeout(cfg.Storage.WriteTimeout))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return repo, nil
}

func (rf *RepositoryFactory) createRedisRepository(ctx context.Context, cfg *config.Config) (repository.Repository, error) {
	repo, err := redis.Open(ctx, redis.Options{
		Addr:         cfg.Storage.Redis.Addr,
		Password:     cfg.Storage.Redis.Password,
		DB:           cfg.Storage.Redis.DB,
		KeyPrefix:    cfg.Storage.Redis.KeyPrefix,
		WriteTimeout: cfg.Storage.WriteTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return repo, nil
}

// NewTracker wires the configured repository into a tracker
func (rf *RepositoryFactory) NewTracker(ctx context.Context, cfg *config.Config, logger *zap.Logger) (services.Tracker, func() error, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, nil, err
	}

	repo, err := rf.CreateRepository(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	validator := validation.NewHabitValidatorWithConfig(cfg)
	store := services.NewPersistentStore(repo,
		services.WithStoreLogger(logger),
		services.WithStoreValidator(validator),
	)
	tracker := services.NewHabitTracker(ctx, store,
		services.WithLocation(loc),
		services.WithCelebrationDuration(cfg.Tracker.CelebrationDuration),
		services.WithHabitValidator(validator),
		services.WithLogger(logger),
	)

	logger.Debug("tracker ready", zap.String("backend", cfg.Storage.Backend), zap.String("env", string(rf.env)))
	return tracker, repo.Close, nil
}

// getEnvironment determines the current environment
func getEnvironment() Environment {
	switch os.Getenv("HT_ENV") {
	case "development":
		return Development
	case "testing":
		return Testing
	default:
		return Production
	}
}

// Package sqlite stores tracker records in a single kv table.
package sqlite

import (
	"context"
	"database/sql"
	"time"

	"habit-tracker/internal/errors"
	"habit-tracker/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

var timeNow = time.Now

// SQLiteRepository implements repository.Repository on top of SQLite
type SQLiteRepository struct {
	db           *sql.DB
	writeTimeout time.Duration
}

// Option configures a SQLiteRepository
type Option func(*SQLiteRepository)

// WithWriteTimeout bounds each write; zero means only the caller's context applies
func WithWriteTimeout(d time.Duration) Option {
	return func(r *SQLiteRepository) {
		r.writeTimeout = d
	}
}

// New opens the database at dbPath and applies pending migrations
func New(ctx context.Context, dbPath string, opts ...Option) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewStorageError("open database", err)
	}
	// one writer; avoids SQLITE_BUSY between pooled connections
	db.SetMaxOpenConns(1)

	if err := migrations.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, errors.NewStorageError("run migrations", err)
	}

	repo := &SQLiteRepository{db: db}
	for _, opt := range opts {
		opt(repo)
	}
	return repo, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// Get returns the value stored under key
func (r *SQLiteRepository) Get(ctx context.Context, key string) (string, bool, error) {
	entry, err := r.GetEntry(ctx, key)
	if err != nil {
		if errors.IsErrorType(err, errors.ErrorTypeNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return entry.Value, true, nil
}

// GetEntry returns the full row for key
func (r *SQLiteRepository) GetEntry(ctx context.Context, key string) (*Entry, error) {
	query := `SELECT key, value, updated_at FROM kv WHERE key = ?`
	return QuerySingle(ctx, r.db, query, ScanEntry, "record", key, key)
}

// Set upserts value under key
func (r *SQLiteRepository) Set(ctx context.Context, key, value string) error {
	ctx, cancel := r.writeContext(ctx)
	defer cancel()

	query := `
	INSERT INTO kv (key, value, updated_at)
	VALUES (?, ?, ?)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

	return Execute(ctx, r.db, query, key, value, FormatTimeForDB(timeNow()))
}

func (r *SQLiteRepository) writeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.writeTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.writeTimeout)
}

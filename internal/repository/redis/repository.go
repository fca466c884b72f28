// Package redis stores tracker records as plain string keys in redis.
package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	apperrors "habit-tracker/internal/errors"
)

// Options holds connection settings
type Options struct {
	Addr         string
	Password     string
	DB           int
	KeyPrefix    string
	WriteTimeout time.Duration
	DialTimeout  time.Duration
}

// Repository implements repository.Repository on a redis client
type Repository struct {
	rdb    *redis.Client
	prefix string
}

// NewClient builds the underlying redis client
func NewClient(opts Options) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         opts.Addr,
		Password:     opts.Password,
		DB:           opts.DB,
		DialTimeout:  opts.DialTimeout,
		WriteTimeout: opts.WriteTimeout,
	})
}

// New wraps an existing client; every key is stored as prefix+key
func New(rdb *redis.Client, prefix string) *Repository {
	return &Repository{rdb: rdb, prefix: prefix}
}

// Open builds a client and checks the server answers
func Open(ctx context.Context, opts Options) (*Repository, error) {
	rdb := NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, apperrors.NewStorageError("connect redis "+opts.Addr, err)
	}
	return New(rdb, opts.KeyPrefix), nil
}

// Key returns the redis key used for a record
func (r *Repository) Key(key string) string {
	return r.prefix + key
}

// Get returns the value stored under key
func (r *Repository) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := r.rdb.Get(ctx, r.Key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, apperrors.NewStorageError("get "+key, err)
	}
	return value, true, nil
}

// Set stores value under key without expiry
func (r *Repository) Set(ctx context.Context, key, value string) error {
	if err := r.rdb.Set(ctx, r.Key(key), value, 0).Err(); err != nil {
		return apperrors.NewStorageError("set "+key, err)
	}
	return nil
}

// Close closes the client
func (r *Repository) Close() error {
	return r.rdb.Close()
}

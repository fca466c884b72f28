package services

import (
	"context"
	"time"

	"habit-tracker/internal/domain"
)

// Snapshot is the read model handed to presentation. Derived values are
// computed when the snapshot is taken.
type Snapshot struct {
	Habits             []domain.Habit `json:"habits"`
	Streak             int            `json:"streak"`
	LastCompletedDate  domain.Date    `json:"last_completed_date"`
	CompletedCount     int            `json:"completed_count"`
	Total              int            `json:"total"`
	ProgressPercentage int            `json:"progress_percentage"`
	Tier               domain.Tier    `json:"tier"`
	CelebrationActive  bool           `json:"celebration_active"`
}

// StateStore loads and saves the persisted tracker state
type StateStore interface {
	// Load never fails; unreadable fields fall back to their defaults.
	Load(ctx context.Context) domain.TrackerState
	Save(ctx context.Context, state domain.TrackerState) error
}

// Tracker is the surface presentation layers drive
type Tracker interface {
	Snapshot() Snapshot
	Toggle(ctx context.Context, id int) error
	Rename(ctx context.Context, id int, newName string) error
	ResetDay(ctx context.Context) error
	Close()
}

// Timer is a pending scheduled call
type Timer interface {
	Stop() bool
}

// Scheduler runs fn once after d on its own goroutine
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// Clock returns the current instant
type Clock func() time.Time

type realScheduler struct{}

func (realScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

// RealScheduler schedules with time.AfterFunc
func RealScheduler() Scheduler {
	return realScheduler{}
}

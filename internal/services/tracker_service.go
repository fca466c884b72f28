package services

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"habit-tracker/internal/domain"
	"habit-tracker/internal/logging"
	"habit-tracker/internal/validation"
)

// DefaultCelebrationDuration is how long the celebration stays raised
const DefaultCelebrationDuration = 3 * time.Second

// HabitTracker owns the in-memory tracker state. Every mutation is applied
// in memory first and then saved; a failed save is reported but the
// in-memory state stays authoritative.
type HabitTracker struct {
	store     StateStore
	validator *validation.HabitValidator
	logger    *zap.Logger
	clock     Clock
	scheduler Scheduler
	location  *time.Location
	duration  time.Duration

	mu          sync.Mutex
	state       domain.TrackerState
	celebrating bool
	// generation invalidates timers from earlier celebrations
	generation uint64
	pending    Timer
}

// TrackerOption configures a HabitTracker
type TrackerOption func(*HabitTracker)

// WithClock sets the source of "now" used to decide the calendar day
func WithClock(clock Clock) TrackerOption {
	return func(t *HabitTracker) {
		t.clock = clock
	}
}

// WithScheduler sets the scheduler used for the celebration auto-clear
func WithScheduler(s Scheduler) TrackerOption {
	return func(t *HabitTracker) {
		t.scheduler = s
	}
}

// WithLocation sets the timezone whose calendar day the streak follows
func WithLocation(loc *time.Location) TrackerOption {
	return func(t *HabitTracker) {
		if loc != nil {
			t.location = loc
		}
	}
}

// WithCelebrationDuration sets how long the celebration stays raised
func WithCelebrationDuration(d time.Duration) TrackerOption {
	return func(t *HabitTracker) {
		if d > 0 {
			t.duration = d
		}
	}
}

// WithLogger sets the tracker logger
func WithLogger(logger *zap.Logger) TrackerOption {
	return func(t *HabitTracker) {
		t.logger = logging.OrNop(logger)
	}
}

// WithHabitValidator sets the validator used for renames
func WithHabitValidator(v *validation.HabitValidator) TrackerOption {
	return func(t *HabitTracker) {
		if v != nil {
			t.validator = v
		}
	}
}

// NewHabitTracker loads the persisted state and returns a ready tracker
func NewHabitTracker(ctx context.Context, store StateStore, opts ...TrackerOption) *HabitTracker {
	t := &HabitTracker{
		store:     store,
		validator: validation.NewHabitValidator(),
		logger:    zap.NewNop(),
		clock:     time.Now,
		scheduler: RealScheduler(),
		location:  time.Local,
		duration:  DefaultCelebrationDuration,
	}
	for _, opt := range opts {
		opt(t)
	}

	t.state = store.Load(ctx)
	t.logger.Debug("tracker loaded",
		zap.Int("habits", len(t.state.Habits)),
		zap.Int("streak", t.state.Streak),
		zap.Stringer("last_completed", t.state.LastCompletedDate),
	)
	return t
}

// Snapshot returns a copy of the state with derived values
func (t *HabitTracker) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	habits := domain.CloneHabits(t.state.Habits)
	completed := domain.CompletedCount(habits)
	percentage := domain.ProgressPercentage(completed, len(habits))

	return Snapshot{
		Habits:             habits,
		Streak:             t.state.Streak,
		LastCompletedDate:  t.state.LastCompletedDate,
		CompletedCount:     completed,
		Total:              len(habits),
		ProgressPercentage: percentage,
		Tier:               domain.TierFor(percentage),
		CelebrationActive:  t.celebrating,
	}
}

// Toggle flips the completion flag of habit id. Completing the last
// incomplete habit raises the celebration and advances the streak unless it
// already advanced today. Unknown ids are ignored.
func (t *HabitTracker) Toggle(ctx context.Context, id int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	idx := domain.IndexOf(t.state.Habits, id)
	if idx < 0 {
		t.logger.Debug("toggle ignored, unknown habit", zap.Int("id", id))
		return nil
	}

	before := domain.CompletedCount(t.state.Habits)
	t.state.Habits[idx].Completed = !t.state.Habits[idx].Completed

	if before == len(t.state.Habits)-1 && domain.AllCompleted(t.state.Habits) {
		t.raiseCelebration()

		today := domain.DateOf(t.clock(), t.location)
		if t.state.LastCompletedDate != today {
			t.state.Streak++
			t.state.LastCompletedDate = today
			t.logger.Info("streak advanced", zap.Int("streak", t.state.Streak), zap.Stringer("date", today))
		}
	}

	return t.save(ctx)
}

// Rename sets the name of habit id to the trimmed newName. Names the
// validator rejects leave the habit unchanged, as do unknown ids.
func (t *HabitTracker) Rename(ctx context.Context, id int, newName string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	idx := domain.IndexOf(t.state.Habits, id)
	if idx < 0 {
		t.logger.Debug("rename ignored, unknown habit", zap.Int("id", id))
		return nil
	}

	name, err := t.validator.CleanHabitName(newName)
	if err != nil {
		t.logger.Debug("rename rejected", zap.Int("id", id), zap.Error(err))
		return nil
	}
	if t.state.Habits[idx].Name == name {
		return nil
	}

	t.state.Habits[idx].Name = name
	return t.save(ctx)
}

// ResetDay marks every habit incomplete and drops any celebration.
// Streak and last completed date are kept.
func (t *HabitTracker) ResetDay(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range t.state.Habits {
		t.state.Habits[i].Completed = false
	}
	t.cancelCelebration()

	return t.save(ctx)
}

// Close cancels a pending celebration clear. Safe to call more than once.
func (t *HabitTracker) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.cancelCelebration()
}

// raiseCelebration must be called with mu held
func (t *HabitTracker) raiseCelebration() {
	t.cancelCelebration()
	t.celebrating = true

	gen := t.generation
	t.pending = t.scheduler.AfterFunc(t.duration, func() {
		t.clearCelebration(gen)
	})
}

// cancelCelebration must be called with mu held
func (t *HabitTracker) cancelCelebration() {
	t.generation++
	if t.pending != nil {
		t.pending.Stop()
		t.pending = nil
	}
	t.celebrating = false
}

func (t *HabitTracker) clearCelebration(gen uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if gen != t.generation {
		return
	}
	t.celebrating = false
	t.pending = nil
}

// save must be called with mu held
func (t *HabitTracker) save(ctx context.Context) error {
	if err := t.store.Save(ctx, t.state.Clone()); err != nil {
		t.logger.Warn("tracker state not persisted; keeping in-memory state", zap.Error(err))
		return err
	}
	return nil
}

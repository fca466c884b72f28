package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"habit-tracker/internal/domain"
	"habit-tracker/internal/errors"
	"habit-tracker/internal/logging"
	"habit-tracker/internal/repository"
	"habit-tracker/internal/validation"
)

// Record keys. They are part of the persisted layout and must not change.
const (
	KeyHabits            = "habits"
	KeyStreak            = "streak"
	KeyLastCompletedDate = "lastCompletedDate"
)

// PersistentStore maps TrackerState onto three independent repository records
type PersistentStore struct {
	repo      repository.Repository
	validator *validation.HabitValidator
	logger    *zap.Logger

	mu sync.Mutex
	// last value known to be in the repository, per key
	written map[string]string
}

// StoreOption configures a PersistentStore
type StoreOption func(*PersistentStore)

// WithStoreLogger sets the logger used for fallback and write failures
func WithStoreLogger(logger *zap.Logger) StoreOption {
	return func(s *PersistentStore) {
		s.logger = logging.OrNop(logger)
	}
}

// WithStoreValidator sets the validator applied to loaded records
func WithStoreValidator(v *validation.HabitValidator) StoreOption {
	return func(s *PersistentStore) {
		s.validator = v
	}
}

// NewPersistentStore creates a store over repo
func NewPersistentStore(repo repository.Repository, opts ...StoreOption) *PersistentStore {
	s := &PersistentStore{
		repo:      repo,
		validator: validation.NewHabitValidator(),
		logger:    zap.NewNop(),
		written:   make(map[string]string),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads each record independently. A missing, unreadable or malformed
// record yields that field's seed value and never affects the others.
func (s *PersistentStore) Load(ctx context.Context) domain.TrackerState {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := domain.SeedState()

	if raw, ok := s.read(ctx, KeyHabits); ok {
		if habits, err := s.decodeHabits(raw); err != nil {
			s.logCorrupt(KeyHabits, raw, err)
		} else {
			state.Habits = habits
			s.written[KeyHabits] = raw
		}
	}

	if raw, ok := s.read(ctx, KeyStreak); ok {
		if streak, err := s.decodeStreak(raw); err != nil {
			s.logCorrupt(KeyStreak, raw, err)
		} else {
			state.Streak = streak
			s.written[KeyStreak] = raw
		}
	}

	if raw, ok := s.read(ctx, KeyLastCompletedDate); ok {
		if date, err := domain.ParseDate(raw); err != nil {
			s.logCorrupt(KeyLastCompletedDate, raw, errors.NewCorruptDataError(KeyLastCompletedDate, err))
		} else {
			state.LastCompletedDate = date
			s.written[KeyLastCompletedDate] = raw
		}
	}

	return state
}

// Save writes every field whose encoding differs from what the repository
// already holds. Each write is independent; a failed one is retried by the
// next Save. All failures are returned together as a storage error.
func (s *PersistentStore) Save(ctx context.Context, state domain.TrackerState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := encodeState(state)
	if err != nil {
		return errors.NewStorageError("encode tracker state", err)
	}

	var errs error
	var failed []string
	for _, rec := range records {
		if cached, ok := s.written[rec.key]; ok && cached == rec.value {
			continue
		}
		if err := s.repo.Set(ctx, rec.key, rec.value); err != nil {
			s.logger.Warn("failed to write record", zap.String("key", rec.key), zap.Error(err))
			errs = multierr.Append(errs, err)
			failed = append(failed, rec.key)
			continue
		}
		s.written[rec.key] = rec.value
		s.logger.Debug("wrote record", zap.String("key", rec.key))
	}

	if errs != nil {
		return errors.NewStorageError("save tracker state", errs).WithContext("keys", failed)
	}
	return nil
}

type record struct {
	key   string
	value string
}

func encodeState(state domain.TrackerState) ([]record, error) {
	habits := state.Habits
	if habits == nil {
		habits = []domain.Habit{}
	}
	encoded, err := json.Marshal(habits)
	if err != nil {
		return nil, err
	}

	records := []record{
		{key: KeyHabits, value: string(encoded)},
		{key: KeyStreak, value: strconv.Itoa(state.Streak)},
	}
	// an unset date is left out so an existing record is never removed
	if !state.LastCompletedDate.IsZero() {
		records = append(records, record{key: KeyLastCompletedDate, value: state.LastCompletedDate.String()})
	}
	return records, nil
}

func (s *PersistentStore) read(ctx context.Context, key string) (string, bool) {
	raw, ok, err := s.repo.Get(ctx, key)
	if err != nil {
		s.logger.Warn("failed to read record, using default", zap.String("key", key), zap.Error(err))
		return "", false
	}
	return raw, ok
}

func (s *PersistentStore) decodeHabits(raw string) ([]domain.Habit, error) {
	var habits []domain.Habit
	if err := json.Unmarshal([]byte(raw), &habits); err != nil {
		return nil, errors.NewCorruptDataError(KeyHabits, err)
	}
	// "null" decodes without error but is not a list
	if habits == nil {
		return nil, errors.NewCorruptDataError(KeyHabits, nil)
	}
	for i := range habits {
		habits[i].Name = validation.TrimName(habits[i].Name)
	}
	if err := s.validator.ValidateHabits(habits); err != nil {
		return nil, errors.NewCorruptDataError(KeyHabits, err)
	}
	return habits, nil
}

// errNotDecimal rejects streak records with a sign or other non-digit characters
var errNotDecimal = fmt.Errorf("streak is not a plain decimal number")

func (s *PersistentStore) decodeStreak(raw string) (int, error) {
	if raw == "" || strings.TrimLeft(raw, "0123456789") != "" {
		return 0, errors.NewCorruptDataError(KeyStreak, errNotDecimal)
	}
	streak, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.NewCorruptDataError(KeyStreak, err)
	}
	if err := s.validator.ValidateStreak(streak); err != nil {
		return 0, errors.NewCorruptDataError(KeyStreak, err)
	}
	return streak, nil
}

func (s *PersistentStore) logCorrupt(key, raw string, err error) {
	s.logger.Warn("ignoring malformed record, using default",
		zap.String("key", key),
		zap.Int("bytes", len(raw)),
		zap.Error(err),
	)
}

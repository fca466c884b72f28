package services

import (
	"context"
	"sync"
	"time"

	"habit-tracker/internal/errors"
	"habit-tracker/internal/repository/memory"
)

// countingRepository wraps the memory repository, counts writes and can be
// told to fail reads or writes.
type countingRepository struct {
	*memory.Repository

	mu         sync.Mutex
	writes     map[string]int
	failGet    bool
	failSet    map[string]bool
	failAllSet bool
}

func newCountingRepository(values map[string]string) *countingRepository {
	return &countingRepository{
		Repository: memory.NewWithValues(values),
		writes:     make(map[string]int),
		failSet:    make(map[string]bool),
	}
}

func (r *countingRepository) Get(ctx context.Context, key string) (string, bool, error) {
	r.mu.Lock()
	fail := r.failGet
	r.mu.Unlock()
	if fail {
		return "", false, errors.NewStorageError("get "+key, errUnavailable)
	}
	return r.Repository.Get(ctx, key)
}

func (r *countingRepository) Set(ctx context.Context, key, value string) error {
	r.mu.Lock()
	fail := r.failAllSet || r.failSet[key]
	r.writes[key]++
	r.mu.Unlock()
	if fail {
		return errors.NewStorageError("set "+key, errUnavailable)
	}
	return r.Repository.Set(ctx, key, value)
}

func (r *countingRepository) setFailing(fail bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failAllSet = fail
}

func (r *countingRepository) writeCount(key string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.writes[key]
}

func (r *countingRepository) totalWrites() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	total := 0
	for _, n := range r.writes {
		total += n
	}
	return total
}

type unavailableError struct{}

func (unavailableError) Error() string { return "backend unavailable" }

var errUnavailable error = unavailableError{}

// fakeScheduler records scheduled calls; tests fire them explicitly.
type fakeScheduler struct {
	mu     sync.Mutex
	timers []*fakeTimer
}

type fakeTimer struct {
	delay   time.Duration
	fn      func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	wasActive := !t.stopped && !t.fired
	t.stopped = true
	return wasActive
}

func (s *fakeScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	timer := &fakeTimer{delay: d, fn: fn}
	s.timers = append(s.timers, timer)
	return timer
}

func (s *fakeScheduler) timer(i int) *fakeTimer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timers[i]
}

func (s *fakeScheduler) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// fire runs timer i as if it had elapsed, even when stopped, to simulate a
// callback that was already in flight when Stop was called.
func (s *fakeScheduler) fire(i int) {
	timer := s.timer(i)
	timer.fired = true
	timer.fn()
}

// fireActive runs every timer that is neither stopped nor fired
func (s *fakeScheduler) fireActive() {
	s.mu.Lock()
	var due []*fakeTimer
	for _, timer := range s.timers {
		if !timer.stopped && !timer.fired {
			due = append(due, timer)
		}
	}
	s.mu.Unlock()

	for _, timer := range due {
		timer.fired = true
		timer.fn()
	}
}

// fakeClock is a settable clock
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(now time.Time) *fakeClock {
	return &fakeClock{now: now}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

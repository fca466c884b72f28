package cli

import (
	"context"

	"habit-tracker/internal/domain"
	"habit-tracker/internal/services"
	"habit-tracker/internal/validation"
)

// mockTracker implements services.Tracker for testing
type mockTracker struct {
	habits      []domain.Habit
	streak      int
	lastDate    domain.Date
	celebrating bool
	saveErr     error
	closed      int
	calls       []string
}

func newMockTracker() *mockTracker {
	return &mockTracker{habits: domain.SeedHabits()}
}

func (m *mockTracker) Snapshot() services.Snapshot {
	habits := domain.CloneHabits(m.habits)
	completed := domain.CompletedCount(habits)
	pct := domain.ProgressPercentage(completed, len(habits))
	return services.Snapshot{
		Habits:             habits,
		Streak:             m.streak,
		LastCompletedDate:  m.lastDate,
		CompletedCount:     completed,
		Total:              len(habits),
		ProgressPercentage: pct,
		Tier:               domain.TierFor(pct),
		CelebrationActive:  m.celebrating,
	}
}

func (m *mockTracker) Toggle(ctx context.Context, id int) error {
	m.calls = append(m.calls, "toggle")
	if idx := domain.IndexOf(m.habits, id); idx >= 0 {
		m.habits[idx].Completed = !m.habits[idx].Completed
		if domain.AllCompleted(m.habits) {
			m.celebrating = true
			m.streak++
		}
	}
	return m.saveErr
}

func (m *mockTracker) Rename(ctx context.Context, id int, newName string) error {
	m.calls = append(m.calls, "rename")
	name := validation.TrimName(newName)
	if idx := domain.IndexOf(m.habits, id); idx >= 0 && name != "" {
		m.habits[idx].Name = name
	}
	return m.saveErr
}

func (m *mockTracker) ResetDay(ctx context.Context) error {
	m.calls = append(m.calls, "reset")
	for i := range m.habits {
		m.habits[i].Completed = false
	}
	m.celebrating = false
	return m.saveErr
}

func (m *mockTracker) Close() {
	m.closed++
}

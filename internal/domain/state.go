package domain

// TrackerState is the aggregate that gets persisted: the habit list, the
// streak counter and the day the streak last advanced.
type TrackerState struct {
	Habits            []Habit
	Streak            int
	LastCompletedDate Date
}

// SeedState returns the state used on first run
func SeedState() TrackerState {
	return TrackerState{
		Habits: SeedHabits(),
	}
}

// Clone returns a deep copy of the state
func (s TrackerState) Clone() TrackerState {
	s.Habits = CloneHabits(s.Habits)
	return s
}

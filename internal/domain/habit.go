package domain

// Habit is a single daily habit.
// ID is assigned at creation and never changes; Name is always trimmed and non-empty.
type Habit struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

// SeedHabits returns the default habit list, all incomplete
func SeedHabits() []Habit {
	return []Habit{
		{ID: 1, Name: "Drink 8 glasses of water"},
		{ID: 2, Name: "Exercise for 30 minutes"},
		{ID: 3, Name: "Read for 20 minutes"},
		{ID: 4, Name: "Practice meditation"},
		{ID: 5, Name: "Write in journal"},
	}
}

// String returns the habit name for display purposes.
func (h Habit) String() string {
	return h.Name
}

// CloneHabits returns a copy that callers may mutate freely
func CloneHabits(habits []Habit) []Habit {
	if habits == nil {
		return nil
	}
	out := make([]Habit, len(habits))
	copy(out, habits)
	return out
}

// IndexOf returns the position of the habit with id, or -1
func IndexOf(habits []Habit, id int) int {
	for i := range habits {
		if habits[i].ID == id {
			return i
		}
	}
	return -1
}

// CompletedCount counts completed habits
func CompletedCount(habits []Habit) int {
	count := 0
	for _, h := range habits {
		if h.Completed {
			count++
		}
	}
	return count
}

// AllCompleted reports whether every habit is completed.
// Like Array.every it is true for an empty list.
func AllCompleted(habits []Habit) bool {
	for _, h := range habits {
		if !h.Completed {
			return false
		}
	}
	return true
}

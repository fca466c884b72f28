package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"habit-tracker/internal/domain"
	"habit-tracker/internal/services"
)

func checkMark(completed bool) string {
	if completed {
		return "[x]"
	}
	return "[ ]"
}

func writeHabit(w io.Writer, h domain.Habit) {
	fmt.Fprintf(w, "  %s %2d  %s\n", checkMark(h.Completed), h.ID, h.Name)
}

func writeProgress(w io.Writer, snap services.Snapshot) {
	fmt.Fprintf(w, "Progress: %d/%d completed (%d%%)\n", snap.CompletedCount, snap.Total, snap.ProgressPercentage)
	fmt.Fprintln(w, snap.Tier.Message())
}

func writeStreak(w io.Writer, snap services.Snapshot) {
	fmt.Fprintf(w, "Current Streak: %d days\n", snap.Streak)
}

func writeCelebration(w io.Writer, snap services.Snapshot) {
	if !snap.CelebrationActive {
		return
	}
	fmt.Fprintln(w, domain.CelebrationTitle)
	fmt.Fprintln(w, domain.CelebrationMessage(snap.Streak))
}

// snapshotView is the JSON shape printed by list and status
type snapshotView struct {
	services.Snapshot
	Message string `json:"message"`
}

func writeJSON(w io.Writer, snap services.Snapshot) error {
	if snap.Habits == nil {
		snap.Habits = []domain.Habit{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(snapshotView{Snapshot: snap, Message: snap.Tier.Message()})
}

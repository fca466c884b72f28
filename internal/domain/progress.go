package domain

import "fmt"

// Tier is the encouragement level selected from the progress percentage
type Tier string

const (
	TierComplete Tier = "complete"
	TierHigh     Tier = "high"
	TierGood     Tier = "good"
	TierModerate Tier = "moderate"
	TierStarting Tier = "starting"
	TierNone     Tier = "none"
)

// ProgressPercentage returns round(completed/total*100), rounding halves up.
// An empty habit list has 0% progress.
func ProgressPercentage(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return (completed*200 + total) / (2 * total)
}

// TierFor maps a percentage to its tier; breakpoints are checked from the top
func TierFor(percentage int) Tier {
	switch {
	case percentage == 100:
		return TierComplete
	case percentage >= 80:
		return TierHigh
	case percentage >= 60:
		return TierGood
	case percentage >= 40:
		return TierModerate
	case percentage > 0:
		return TierStarting
	default:
		return TierNone
	}
}

// Message returns the encouragement shown for the tier
func (t Tier) Message() string {
	switch t {
	case TierComplete:
		return "🎉 Amazing! You've completed all your habits today!"
	case TierHigh:
		return "🔥 You're on fire! Just a little more to go!"
	case TierGood:
		return "💪 Great progress! Keep up the momentum!"
	case TierModerate:
		return "🌟 You're doing well! Stay consistent!"
	case TierStarting:
		return "✨ Good start! Every habit counts!"
	default:
		return "🚀 Ready to build some great habits today?"
	}
}

// CelebrationTitle heads the banner shown when the last habit of the day is completed
const CelebrationTitle = "🎉 Congratulations!"

// CelebrationMessage is the banner body; it quotes the streak after the increment
func CelebrationMessage(streak int) string {
	return fmt.Sprintf("You've completed all your habits today! Your streak is now %d days!", streak)
}

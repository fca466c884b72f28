package ui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used by the habit view
type Styles struct {
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	Stat        lipgloss.Style
	StatValue   lipgloss.Style
	Habit       lipgloss.Style
	Done        lipgloss.Style
	Cursor      lipgloss.Style
	BarFilled   lipgloss.Style
	BarEmpty    lipgloss.Style
	Message     lipgloss.Style
	Celebration lipgloss.Style
	Hint        lipgloss.Style
	Help        lipgloss.Style
}

// DefaultStyles returns the green/blue palette of the habit view
func DefaultStyles() Styles {
	green := lipgloss.Color("#16a34a")
	blue := lipgloss.Color("#2563eb")
	muted := lipgloss.Color("#6b7280")

	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(green).
			Bold(true),

		Subtitle: lipgloss.NewStyle().
			Foreground(muted).
			Italic(true),

		Stat: lipgloss.NewStyle().
			Foreground(muted),

		StatValue: lipgloss.NewStyle().
			Foreground(blue).
			Bold(true),

		Habit: lipgloss.NewStyle(),

		Done: lipgloss.NewStyle().
			Foreground(muted).
			Strikethrough(true),

		Cursor: lipgloss.NewStyle().
			Foreground(blue).
			Bold(true),

		BarFilled: lipgloss.NewStyle().
			Foreground(green),

		BarEmpty: lipgloss.NewStyle().
			Foreground(muted),

		Message: lipgloss.NewStyle().
			Bold(true),

		Celebration: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(green).
			Padding(0, 2).
			Bold(true),

		Hint: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#dc2626")),

		Help: lipgloss.NewStyle().
			Foreground(muted),
	}
}

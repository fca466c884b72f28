package ui

import "strings"

const barWidth = 30

// progressBar renders percentage as a fixed-width bar
func progressBar(percentage int, styles Styles) string {
	if percentage < 0 {
		percentage = 0
	}
	if percentage > 100 {
		percentage = 100
	}
	filled := percentage * barWidth / 100
	return styles.BarFilled.Render(strings.Repeat("█", filled)) +
		styles.BarEmpty.Render(strings.Repeat("░", barWidth-filled))
}

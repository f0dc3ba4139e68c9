// Package style provides the colors and text styles used in terminal output.
package style

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Palette defines the colors used for tree lines, one per indent level
var Palette = [][]int{
	{76, 203, 241},  // Light blue
	{77, 202, 125},  // Green
	{110, 173, 38},  // Dark green
	{245, 200, 0},   // Yellow
	{248, 144, 72},  // Orange
	{244, 98, 81},   // Red
	{235, 130, 188}, // Pink
	{159, 131, 228}, // Purple
	{80, 132, 243},  // Blue
}

// ColorForIndex returns text styled with the palette color for a column index
func ColorForIndex(text string, index int) string {
	if len(Palette) == 0 {
		return text
	}

	color := Palette[(index/2)%len(Palette)]
	hexColor := lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", color[0], color[1], color[2]))

	return lipgloss.NewStyle().
		Foreground(hexColor).
		Render(text)
}

// ColorRevisionKey colors a revision key, highlighting heads
func ColorRevisionKey(key string, isHead bool) string {
	if isHead {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true).
			Render(key)
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("12")).
		Render(key)
}

// ColorDim makes text dim/gray
func ColorDim(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Render(text)
}

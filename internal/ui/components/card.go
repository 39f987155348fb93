package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/hearwise/internal/ui/theme"
)

// ContentWidth returns the inner width shared by the cards of a screen so
// they line up.
func ContentWidth(frameWidth int) int {
	const chrome = 6 // border and padding
	return max(20, min(frameWidth-chrome, 64))
}

// Panel centres content inside a rounded frame filling width x height.
func Panel(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// CardInner is the width left for content inside a Card of content width
// cw, after its border and padding.
func CardInner(cw int) int {
	return cw - 8
}

// Card wraps content in a bordered box of content width cw.
func Card(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(1, 2).
		Render(content)
}

// KeyCap renders a key label such as "Space" as a small highlighted box.
func KeyCap(key string, lit bool) string {
	style := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).
		Foreground(theme.Text).BorderForeground(theme.Border)
	if lit {
		style = style.Bold(true).Foreground(theme.BgDark).Background(theme.Accent).BorderForeground(theme.Accent)
	}
	return style.Render(key)
}

// Package theme holds the palette and shared lipgloss styles.
package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

var (
	Primary   = lipgloss.Color("#38BDF8")
	Secondary = lipgloss.Color("#14B8A6")
	Accent    = lipgloss.Color("#FBBF24")
	Success   = lipgloss.Color("#22C55E")
	Warning   = lipgloss.Color("#F97316")
	Error     = lipgloss.Color("#F43F5E")
	Text      = lipgloss.Color("#F8FAFC")
	TextDim   = lipgloss.Color("#94A3B8")
	BgDark    = lipgloss.Color("#0F172A")
	BgCard    = lipgloss.Color("#1E293B")
	Border    = lipgloss.Color("#334155")

	// Audiogram convention: right ear red, left ear blue.
	RightEar = lipgloss.Color("#EF4444")
	LeftEar  = lipgloss.Color("#3B82F6")
)

// severity runs from normal hearing to profound loss.
var severity = []color.Color{Success, Accent, Warning, Error, lipgloss.Color("#BE123C")}

// SeverityColor returns the color for a band ordinal. Out of range values
// clamp to the nearest end.
func SeverityColor(band int) color.Color {
	return severity[max(0, min(band, len(severity)-1))]
}

func fg(c color.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }

var (
	Title    = fg(Primary).Bold(true).Align(lipgloss.Center)
	Subtitle = fg(TextDim).Align(lipgloss.Center)
	Body     = fg(Text)
	Hint     = fg(TextDim).Italic(true)
	Danger   = fg(Error).Bold(true)

	ButtonActive   = fg(BgDark).Background(Primary).Bold(true).Padding(0, 2)
	ButtonInactive = lipgloss.NewStyle().Background(BgCard).
			Border(lipgloss.RoundedBorder()).BorderForeground(Border).Padding(0, 2)
)

// Package layout frames every screen with a header and a key hint footer.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/hearwise/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24

	HeaderHeight = 3
	FooterHeight = 3

	CompactWidthThreshold  = 100
	CompactHeightThreshold = 30
)

// KeyHint is one "key description" pair in the footer.
type KeyHint struct {
	Key         string
	Description string
}

func IsCompactWidth(width int) bool { return width < CompactWidthThreshold }
func IsCompactHeight(height int) bool { return height < CompactHeightThreshold }

func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

func RenderMinSizeMessage(width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		theme.Body.Render(fmt.Sprintf("Please enlarge the terminal to at least %d×%d (now %d×%d).",
			MinWidth, MinHeight, width, height)))
}

var barStyle = lipgloss.NewStyle().
	Background(theme.BgCard).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(theme.Border)

// bar draws one bordered row. Border and padding take four columns.
func bar(content string, width int) string {
	return barStyle.Width(width).Render(content)
}

// RenderHeader puts the app name on the left, title in the middle and the
// user on the right. user may be empty.
func RenderHeader(title, user string, width int) string {
	left := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  Hearwise")
	center := theme.Body.Render(title)
	right := ""
	if user != "" {
		right = lipgloss.NewStyle().Foreground(theme.Accent).Render("● "+user) + " "
	}

	inner := max(width-4, 0)
	lw, cw, rw := lipgloss.Width(left), lipgloss.Width(center), lipgloss.Width(right)
	gapL := max((inner-cw)/2-lw, 1)
	gapR := max(inner-lw-gapL-cw-rw, 1)
	return bar(left+strings.Repeat(" ", gapL)+center+strings.Repeat(" ", gapR)+right, width)
}

// RenderFooter lays hints out left to right and drops the ones that do
// not fit.
func RenderFooter(hints []KeyHint, width int) string {
	keyStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	room := width - 6
	var b strings.Builder
	b.WriteString("  ")
	for i, h := range hints {
		part := keyStyle.Render(h.Key) + " " + descStyle.Render(h.Description)
		if i > 0 {
			part = "   " + part
		}
		if lipgloss.Width(b.String())+lipgloss.Width(part) > room {
			break
		}
		b.WriteString(part)
	}
	return bar(b.String(), width)
}

// RenderFrame stacks header, content and footer, giving the content
// whatever height is left.
func RenderFrame(header, content, footer string, width, height int) string {
	body := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		lipgloss.NewStyle().Width(width).Height(body).MaxHeight(body).Render(content),
		footer)
}

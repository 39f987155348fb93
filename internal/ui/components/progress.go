package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/hearwise/internal/ui/theme"
)

const stepMark = "▮"

// Steps renders a segmented progress bar with one segment per step,
// followed by "done of total", in at most width cells. Completed steps are
// filled and the step in progress is highlighted. When the segments do not
// fit only the label is shown.
func Steps(done, total, width int) string {
	if total <= 0 {
		return ""
	}
	done = max(0, min(done, total))
	label := fmt.Sprintf("%d of %d", done, total)
	labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	gap := "  "
	seg := (width - lipgloss.Width(gap+label)) / (total * lipgloss.Width(stepMark))
	if seg < 1 {
		return labelStyle.Render(label)
	}
	cell := strings.Repeat(stepMark, seg)
	if seg > 1 {
		cell = strings.Repeat(stepMark, seg-1) + " "
	}

	var b strings.Builder
	for i := 0; i < total; i++ {
		c := theme.Border
		switch {
		case i < done:
			c = theme.Secondary
		case i == done:
			c = theme.Primary
		}
		b.WriteString(lipgloss.NewStyle().Foreground(c).Render(cell))
	}
	b.WriteString(labelStyle.Render(gap + label))
	return b.String()
}

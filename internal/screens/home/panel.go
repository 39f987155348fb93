package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/hearwise/internal/audiometry"
	"github.com/abhisek/hearwise/internal/scoring"
	"github.com/abhisek/hearwise/internal/ui/components"
	"github.com/abhisek/hearwise/internal/ui/theme"
)

const titleCompact = "H · E · A · R · W · I · S · E"

// renderTitle returns the styled title.
func renderTitle(cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(titleCompact))
}

// renderLastResult summarises the most recent screening in a bordered box.
func renderLastResult(rec *audiometry.Record, sum *scoring.Summary, cw int, compact bool) string {
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	var body string
	if rec == nil || sum == nil {
		body = dim.Render("No screening yet. Start a test to see your results here.")
	} else {
		lines := []string{dim.Render("Last screening  " + rec.TakenAt().Local().Format("Jan 02, 2006"))}
		for _, ear := range audiometry.Ears {
			lines = append(lines, earLine(ear, sum.Ear(ear), compact))
		}
		body = strings.Join(lines, "\n")
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(body)
}

func earLine(ear audiometry.Ear, s scoring.EarScore, compact bool) string {
	earColor := theme.RightEar
	if ear == audiometry.Left {
		earColor = theme.LeftEar
	}
	label := lipgloss.NewStyle().Foreground(earColor).Bold(true).Render(fmt.Sprintf("%-5s", strings.ToUpper(ear.String())))
	band := lipgloss.NewStyle().Foreground(theme.SeverityColor(int(s.Band))).Bold(true).Render(s.Band.String())
	if compact || !s.Defined {
		return label + "  " + band
	}
	return label + "  " + band + lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("  avg %.0f dB", s.Average))
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// renderMenu renders each menu item as a fixed-width button.
func renderMenu(m components.Menu, cw int) string {
	selectedBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.Primary).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Padding(0, 1)

	normalBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	var buttons []string
	for i, item := range m.Items {
		if i == m.Selected {
			buttons = append(buttons, selectedBtn.Render("▸ "+item.Label))
		} else {
			buttons = append(buttons, normalBtn.Render(item.Label+" ("+item.Hotkey+")"))
		}
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

// renderMascotBox centres the mascot at content width.
func renderMascotBox(v MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(v))
}

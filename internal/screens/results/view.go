package results

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/hearwise/internal/audiometry"
	"github.com/abhisek/hearwise/internal/report"
	"github.com/abhisek/hearwise/internal/scoring"
	"github.com/abhisek/hearwise/internal/ui/components"
	"github.com/abhisek/hearwise/internal/ui/theme"
)

func (r *ResultsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	sections := []string{
		theme.Title.Render("Your results"),
		theme.Subtitle.Render(r.rec.TakenAt().Local().Format("Mon 2 Jan 2006, 15:04")),
	}
	if r.persistErr != nil {
		sections = append(sections,
			theme.Danger.Width(cw).Render("This result could not be saved and will not appear in your history."))
	}
	sections = append(sections,
		components.Card(lipgloss.JoinHorizontal(lipgloss.Top,
			renderEar(audiometry.Right, r.sum.Right, components.CardInner(cw)/2),
			"  ",
			renderEar(audiometry.Left, r.sum.Left, components.CardInner(cw)/2)), cw),
		components.Card(ThresholdTable(r.rec), cw),
	)

	switch {
	case r.loading:
		sections = append(sections, theme.Hint.Render(spinnerFrames[r.frame]+" Writing an explanation..."))
	case r.explainErr != "":
		sections = append(sections, theme.Danger.Render(r.explainErr))
	case r.explanation != nil:
		sections = append(sections, components.Card(r.renderExplanation(components.CardInner(cw)), cw))
	}

	sections = append(sections, theme.Hint.Width(cw).Align(lipgloss.Center).Render(report.Disclaimer))

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	lines := strings.Split(content, "\n")
	if r.scroll > len(lines)-height {
		r.scroll = max(len(lines)-height, 0)
	}
	if r.scroll > 0 {
		lines = lines[r.scroll:]
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, strings.Join(lines, "\n"))
}

func renderEar(ear audiometry.Ear, es scoring.EarScore, w int) string {
	name := "RIGHT EAR"
	c := theme.RightEar
	if ear == audiometry.Left {
		name, c = "LEFT EAR", theme.LeftEar
	}
	band := lipgloss.NewStyle().Bold(true).Foreground(theme.SeverityColor(int(es.Band)))

	avg := "no tone detected"
	if es.Defined {
		avg = fmt.Sprintf("average %.1f dB HL", es.Average)
	}
	return lipgloss.NewStyle().Width(w).Align(lipgloss.Center).Render(lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.NewStyle().Bold(true).Foreground(c).Render(name),
		band.Render(strings.ToUpper(es.Band.String())),
		theme.Hint.Render(avg),
		"",
		lipgloss.NewStyle().Foreground(theme.Text).Width(w).Align(lipgloss.Center).Render(es.Interpretation),
	))
}

// ThresholdTable renders thresholds with one column per frequency and one
// row per ear.
func ThresholdTable(rec audiometry.Record) string {
	cell := lipgloss.NewStyle().Width(7).Align(lipgloss.Right)
	head := cell.Foreground(theme.TextDim)
	label := lipgloss.NewStyle().Width(7).Bold(true)

	var b strings.Builder
	b.WriteString(label.Render(""))
	for _, f := range audiometry.Frequencies {
		b.WriteString(head.Render(f.String()))
	}
	for _, ear := range audiometry.Ears {
		b.WriteString("\n")
		c := theme.RightEar
		name := "Right"
		if ear == audiometry.Left {
			c, name = theme.LeftEar, "Left"
		}
		b.WriteString(label.Foreground(c).Render(name))
		for _, th := range rec.EarThresholds(ear) {
			style := cell.Foreground(theme.Text)
			if !th.Detected() {
				style = cell.Foreground(theme.Error)
			}
			b.WriteString(style.Render(report.ThresholdLabel(th)))
		}
	}
	return b.String()
}

func (r *ResultsScreen) renderExplanation(w int) string {
	e := r.explanation
	text := lipgloss.NewStyle().Foreground(theme.Text).Width(w)
	lines := []string{
		lipgloss.NewStyle().Bold(true).Foreground(theme.Accent).Width(w).Render(e.Headline),
		"",
		text.Render(e.Summary),
		"",
		text.Render(lipgloss.NewStyle().Foreground(theme.RightEar).Render("Right: ") + e.Right),
		text.Render(lipgloss.NewStyle().Foreground(theme.LeftEar).Render("Left: ") + e.Left),
	}
	if len(e.NextSteps) > 0 {
		lines = append(lines, "", theme.Subtitle.Render("Next steps"))
		for _, s := range e.NextSteps {
			lines = append(lines, text.Render("• "+s))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

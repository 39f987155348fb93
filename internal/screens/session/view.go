package session

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/hearwise/internal/audiometry"
	"github.com/abhisek/hearwise/internal/ui/components"
	"github.com/abhisek/hearwise/internal/ui/theme"
)

func (s *SessionScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var body string
	switch {
	case s.confirm != nil:
		body = components.Card(s.confirm.View(), cw)
	case s.fatal != "":
		body = components.Card(lipgloss.JoinVertical(lipgloss.Center,
			theme.Danger.Render("Cannot run the test"),
			"",
			lipgloss.NewStyle().Foreground(theme.Text).Width(components.CardInner(cw)).Render(s.fatal),
			"",
			theme.Hint.Render("Press R to try again or Esc to go back.")), cw)
	case !s.started:
		body = components.Card(theme.Hint.Render("Preparing audio..."), cw)
	default:
		body = s.renderTest(cw)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

func (s *SessionScreen) renderTest(cw int) string {
	var lines []string

	if s.active {
		lines = append(lines,
			theme.Subtitle.Render("Now testing"),
			"",
			earBadge(s.cursor.Ear)+"   "+theme.Title.Render(s.cursor.Frequency().String()),
			"",
			renderEars(s.cursor.Ear),
		)
	}

	lines = append(lines, "", components.Steps(s.done, s.total, components.CardInner(cw)), "")

	lines = append(lines, theme.Body.Render("Did you hear the beep?"), "",
		lipgloss.JoinHorizontal(lipgloss.Center,
			components.KeyCap("Space", s.flash == "Space"), " heard   ",
			components.KeyCap("N", s.flash == "N"), " not heard   ",
			components.KeyCap("R", s.flash == "R"), " replay"))

	if s.audioErr != "" {
		lines = append(lines, "", theme.Danger.Width(components.CardInner(cw)).Render(s.audioErr))
	}
	return components.Card(lipgloss.JoinVertical(lipgloss.Center, lines...), cw)
}

func earColor(ear audiometry.Ear) lipgloss.Style {
	if ear == audiometry.Left {
		return lipgloss.NewStyle().Foreground(theme.LeftEar).Bold(true)
	}
	return lipgloss.NewStyle().Foreground(theme.RightEar).Bold(true)
}

func earBadge(ear audiometry.Ear) string {
	return earColor(ear).Render(strings.ToUpper(ear.String()) + " EAR")
}

// renderEars draws both ears with the active one lit.
func renderEars(active audiometry.Ear) string {
	dim := lipgloss.NewStyle().Foreground(theme.Border)
	left, right := dim.Render("( L )"), dim.Render("( R )")
	if active == audiometry.Left {
		left = earColor(audiometry.Left).Render("((L))")
	} else {
		right = earColor(audiometry.Right).Render("((R))")
	}
	// Listener faces the screen: their left ear is on our right.
	return right + "      " + left
}

// Package instructions explains the screening procedure before it starts.
package instructions

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/hearwise/internal/router"
	"github.com/abhisek/hearwise/internal/screen"
	"github.com/abhisek/hearwise/internal/screens/env"
	sessionscreen "github.com/abhisek/hearwise/internal/screens/session"
	"github.com/abhisek/hearwise/internal/ui/components"
	"github.com/abhisek/hearwise/internal/ui/layout"
	"github.com/abhisek/hearwise/internal/ui/theme"
)

var steps = []string{
	"Sit somewhere quiet and put on headphones. Left and right matter.",
	"Set your volume to a comfortable level and leave it there.",
	"You will hear short beeps in one ear at a time, getting louder.",
	"Press Space (or Y) as soon as you hear a beep, N if you did not.",
	"Press R to hear a beep again. Esc stops the test.",
}

// InstructionsScreen shows the steps and a button to begin.
type InstructionsScreen struct {
	env *env.Env
}

var _ screen.Screen = (*InstructionsScreen)(nil)
var _ screen.KeyHintProvider = (*InstructionsScreen)(nil)

// New creates the screen.
func New(e *env.Env) *InstructionsScreen {
	return &InstructionsScreen{env: e}
}

func (s *InstructionsScreen) Init() tea.Cmd {
	return nil
}

func (s *InstructionsScreen) Title() string {
	return "Before you start"
}

func (s *InstructionsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Begin"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *InstructionsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "enter", "b":
		// The session screen replaces this one so Esc from the test
		// returns home.
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: sessionscreen.New(s.env)}
		}
	}
	return s, nil
}

func (s *InstructionsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	num := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	text := lipgloss.NewStyle().Foreground(theme.Text).Width(cw - 10)

	lines := []string{theme.Title.Render("How the test works"), ""}
	for i, st := range steps {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, num.Render(string(rune('1'+i))+". "), text.Render(st)))
	}
	lines = append(lines, "",
		theme.Hint.Render("This is a screening, not a medical diagnosis."),
		"",
		components.Button("BEGIN TEST", "enter"))

	card := components.Card(lipgloss.JoinVertical(lipgloss.Left, lines...), cw)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

// Package user asks for a user name when none is configured.
package user

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/hearwise/internal/router"
	"github.com/abhisek/hearwise/internal/screen"
	"github.com/abhisek/hearwise/internal/screens/env"
	"github.com/abhisek/hearwise/internal/ui/components"
	"github.com/abhisek/hearwise/internal/ui/layout"
	"github.com/abhisek/hearwise/internal/ui/theme"
)

const maxNameLen = 32

// UserScreen collects a user name and then hands over to next.
type UserScreen struct {
	env   *env.Env
	next  func() screen.Screen
	input components.TextInput
}

var _ screen.Screen = (*UserScreen)(nil)
var _ screen.KeyHintProvider = (*UserScreen)(nil)

// New creates the screen. next is built after the name is stored in e.
func New(e *env.Env, next func() screen.Screen) *UserScreen {
	return &UserScreen{
		env:   e,
		next:  next,
		input: components.NewTextInput("your name", maxNameLen),
	}
}

func (u *UserScreen) Init() tea.Cmd {
	return u.input.Init()
}

func (u *UserScreen) Title() string {
	return "Who is taking the test?"
}

func (u *UserScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (u *UserScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		name := u.input.Value()
		if !validName(name) {
			u.input.Submit(false)
			return u, nil
		}
		u.env.UserID = name
		u.env.Log().Info("user selected", zap.String("user_id", name))
		next := u.next()
		return u, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
	}

	var cmd tea.Cmd
	u.input, cmd = u.input.Update(msg)
	return u, cmd
}

func validName(s string) bool {
	return s != "" && len(s) <= maxNameLen && !strings.ContainsAny(s, "/\\")
}

func (u *UserScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	body := lipgloss.JoinVertical(lipgloss.Center,
		theme.Title.Render("Enter a name for your results"),
		"",
		theme.Hint.Render("Results are kept per name on this computer."),
		"",
		u.input.View(),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, components.Card(body, cw))
}

// Package app is the root Bubble Tea model: a screen stack framed by a
// header and a footer of key hints.
package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/hearwise/internal/router"
	"github.com/abhisek/hearwise/internal/screen"
	"github.com/abhisek/hearwise/internal/screens/env"
	"github.com/abhisek/hearwise/internal/screens/home"
	"github.com/abhisek/hearwise/internal/screens/user"
	"github.com/abhisek/hearwise/internal/screens/welcome"
	"github.com/abhisek/hearwise/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	env    *env.Env
	router *router.Router
	width  int
	height int
}

// newAppModel starts on the welcome screen, then asks for a name if no
// user is known, then shows the home menu.
func newAppModel(e *env.Env) AppModel {
	toHome := func() screen.Screen { return home.New(e) }
	next := toHome
	if e.UserID == "" {
		next = func() screen.Screen { return user.New(e, toHome) }
	}
	return AppModel{
		env:    e,
		router: router.New(welcome.New(next)),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Esc is left to the screens; the test screen asks before leaving.
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) footerHints() []layout.KeyHint {
	if p, ok := m.router.Active().(screen.KeyHintProvider); ok {
		return p.KeyHints()
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	title := ""
	if active := m.router.Active(); active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.env.UserID, m.width)
	footer := layout.RenderFooter(m.footerHints(), m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(e *env.Env) error {
	e.Log().Info("tui started", zap.String("user_id", e.UserID))
	m := newAppModel(e)
	// Screens that still hold the audio device release it on the way out,
	// including after Ctrl+C.
	defer m.router.Close()
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		e.Log().Error("tui failed", zap.Error(err))
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

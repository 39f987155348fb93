package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/hearwise/internal/audiometry"
	"github.com/abhisek/hearwise/internal/router"
	"github.com/abhisek/hearwise/internal/scoring"
	"github.com/abhisek/hearwise/internal/screen"
	"github.com/abhisek/hearwise/internal/screens/env"
	"github.com/abhisek/hearwise/internal/screens/history"
	"github.com/abhisek/hearwise/internal/screens/instructions"
	"github.com/abhisek/hearwise/internal/ui/components"
	"github.com/abhisek/hearwise/internal/ui/layout"
)

type lastLoadedMsg struct {
	Record *audiometry.Record
	Err    error
}

// HomeScreen is the main menu.
type HomeScreen struct {
	env     *env.Env
	menu    components.Menu
	last    *audiometry.Record
	summary *scoring.Summary
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.Resumer = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(e *env.Env) *HomeScreen {
	items := []components.MenuItem{
		{Label: "START TEST", Hotkey: "s", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: instructions.New(e)}
			}
		}},
		{Label: "HISTORY", Hotkey: "h", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(e)}
			}
		}},
		{Label: "QUIT", Hotkey: "q", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	return &HomeScreen{env: e, menu: components.NewMenu(items)}
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.loadLast()
}

// Resume reloads the latest record, which may have changed under a pushed
// screen.
func (h *HomeScreen) Resume() tea.Cmd {
	return h.loadLast()
}

func (h *HomeScreen) loadLast() tea.Cmd {
	if h.env.Records == nil {
		return nil
	}
	records, userID := h.env.Records, h.env.UserID
	return func() tea.Msg {
		recs, err := records.LoadHistory(context.Background(), userID, 1)
		if err != nil || len(recs) == 0 {
			return lastLoadedMsg{Err: err}
		}
		return lastLoadedMsg{Record: &recs[0]}
	}
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "S/H", Description: "Start/History"},
		{Key: "Q", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(lastLoadedMsg); ok {
		if msg.Err != nil {
			h.env.Log().Warn("load last record failed", zap.Error(msg.Err))
			return h, nil
		}
		h.last = msg.Record
		if msg.Record != nil {
			sum := scoring.Score(*msg.Record)
			h.summary = &sum
		}
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) mascot() MascotVariant {
	if h.summary == nil {
		return MascotIdle
	}
	if h.summary.Right.Band == scoring.Normal && h.summary.Left.Band == scoring.Normal {
		return MascotClear
	}
	return MascotAttention
}

func (h *HomeScreen) View(width, height int) string {
	compact := layout.IsCompactHeight(height+layout.HeaderHeight+layout.FooterHeight) || layout.IsCompactWidth(width)
	cw := components.ContentWidth(width)

	sections := []string{renderTitle(cw)}
	if !compact {
		sections = append(sections, renderMascotBox(h.mascot(), cw))
	}
	sections = append(sections, renderLastResult(h.last, h.summary, cw, compact))
	if compact {
		sections = append(sections, lipgloss.PlaceHorizontal(cw, lipgloss.Center, h.menu.View()))
	} else {
		sections = append(sections, renderMenu(h.menu, cw))
	}

	return components.Panel(strings.Join(sections, "\n\n"), width, height)
}

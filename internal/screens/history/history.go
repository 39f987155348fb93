// Package history lists the current user's past screenings.
package history

import (
	"context"
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/hearwise/internal/audiometry"
	"github.com/abhisek/hearwise/internal/router"
	"github.com/abhisek/hearwise/internal/scoring"
	"github.com/abhisek/hearwise/internal/screen"
	"github.com/abhisek/hearwise/internal/screens/env"
	"github.com/abhisek/hearwise/internal/screens/results"
	"github.com/abhisek/hearwise/internal/ui/layout"
	"github.com/abhisek/hearwise/internal/ui/theme"
)

// Limit is the number of records loaded.
const Limit = 20

type historyLoadedMsg struct {
	Records []audiometry.Record
	Err     error
}

// HistoryScreen displays past screenings, most recent first.
type HistoryScreen struct {
	env       *env.Env
	records   []audiometry.Record
	summaries []scoring.Summary
	selected  int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.Resumer = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(e *env.Env) *HistoryScreen {
	return &HistoryScreen{
		env:      e,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	records, userID := s.env.Records, s.env.UserID
	return func() tea.Msg {
		if records == nil {
			return historyLoadedMsg{}
		}
		recs, err := records.LoadHistory(context.Background(), userID, Limit)
		return historyLoadedMsg{Records: recs, Err: err}
	}
}

// Resume reloads in case a record was added.
func (s *HistoryScreen) Resume() tea.Cmd {
	return s.Init()
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Thresholds"},
		{Key: "O", Description: "Open"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.errMsg = ""
			s.records = msg.Records
			s.summaries = make([]scoring.Summary, len(msg.Records))
			for i, r := range msg.Records {
				s.summaries[i] = scoring.Score(r)
			}
			if s.selected >= len(s.records) {
				s.selected = max(len(s.records)-1, 0)
			}
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.records)-1 {
				s.selected++
			}
		case "enter":
			if len(s.records) > 0 {
				s.expanded[s.selected] = !s.expanded[s.selected]
			}
		case "o":
			if len(s.records) == 0 {
				return s, nil
			}
			next := results.New(s.env, s.records[s.selected], s.summaries[s.selected], nil)
			return s, func() tea.Msg { return router.PushScreenMsg{Screen: next} }
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.records) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No screenings yet. Take your first test from the menu.")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, rec := range s.records {
		sum := s.summaries[i]

		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			prefix = "> "
			style = style.Foreground(theme.Primary).Bold(true)
		}

		line := style.Render(prefix+rec.TakenAt().Local().Format("Jan 02, 2006 15:04")) + "  " +
			earCell("R", theme.RightEar, sum.Right) + "  " +
			earCell("L", theme.LeftEar, sum.Left)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")

		if s.expanded[i] {
			table := results.ThresholdTable(rec)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, table))
			b.WriteString("\n\n")
		}
	}

	return b.String()
}

func earCell(label string, c color.Color, es scoring.EarScore) string {
	name := lipgloss.NewStyle().Foreground(c).Bold(true).Render(label)
	band := lipgloss.NewStyle().Foreground(theme.SeverityColor(int(es.Band))).Width(14).Render(es.Band.String())
	return name + " " + band
}

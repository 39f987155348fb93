package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/hearwise/internal/router"
	"github.com/abhisek/hearwise/internal/screen"
	"github.com/abhisek/hearwise/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	bannerAt     = 800 * time.Millisecond
	totalDur     = 2000 * time.Millisecond
)

// waveHeights is one period of the animated level meter.
var waveHeights = []int{1, 2, 4, 6, 7, 6, 4, 2}

const waveRows = 7

type tickMsg time.Time

// WelcomeScreen shows a short splash before handing over to the next screen.
type WelcomeScreen struct {
	next         func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that is replaced by next() on a key press
// once the animation has played.
func New(next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{next: next}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		if w.elapsed < totalDur {
			// First key finishes the animation.
			w.elapsed = totalDur
			return w, nil
		}
		return w, w.transition()
	}
	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	next := w.next()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	sections := []string{renderWave(w.tickCount)}

	if w.elapsed >= bannerAt {
		tagline := lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render("A quick check of how you hear")
		sections = append(sections, "", RenderBanner(width), "", tagline)
	}

	if w.elapsed >= totalDur {
		hint := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("press any key to continue")
		sections = append(sections, "", hint)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n"))
}

// renderWave draws a row of vertical bars whose heights roll with frame.
func renderWave(frame int) string {
	const bars = 16
	right := lipgloss.NewStyle().Foreground(theme.RightEar)
	left := lipgloss.NewStyle().Foreground(theme.LeftEar)

	rows := make([]string, waveRows)
	for r := range waveRows {
		level := waveRows - r
		var b strings.Builder
		for i := range bars {
			h := waveHeights[(i+frame)%len(waveHeights)]
			cell := "  "
			if h >= level {
				cell = "█ "
			}
			if i < bars/2 {
				b.WriteString(right.Render(cell))
			} else {
				b.WriteString(left.Render(cell))
			}
		}
		rows[r] = b.String()
	}
	return strings.Join(rows, "\n")
}

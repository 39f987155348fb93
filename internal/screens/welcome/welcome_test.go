package welcome

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/hearwise/internal/router"
	"github.com/abhisek/hearwise/internal/screen"
)

// stubScreen is a minimal screen implementation for testing.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "home" }
func (s *stubScreen) Title() string                           { return "Home" }

func newTestWelcome() (*WelcomeScreen, *int) {
	calls := 0
	return New(func() screen.Screen {
		calls++
		return &stubScreen{}
	}), &calls
}

func sendTicks(w *WelcomeScreen, n int) {
	for i := 0; i < n; i++ {
		w.Update(tickMsg(time.Now()))
	}
}

func TestBannerAppearsAfterDelay(t *testing.T) {
	w, _ := newTestWelcome()

	if strings.Contains(w.View(100, 30), "███████╗") {
		t.Error("banner should not be visible at start")
	}

	sendTicks(w, int(bannerAt/tickInterval))
	if !strings.Contains(w.View(100, 30), "███████╗") {
		t.Error("banner should be visible after delay")
	}
	if !strings.Contains(w.View(40, 30), bannerCompact) {
		t.Error("narrow terminals should get the compact banner")
	}
}

func TestFirstKeySkipsAnimation(t *testing.T) {
	w, calls := newTestWelcome()
	sendTicks(w, 2)

	_, cmd := w.Update(tea.KeyPressMsg{Code: ' '})
	if cmd != nil {
		t.Error("first key should only finish the animation")
	}
	if w.elapsed != totalDur {
		t.Errorf("elapsed = %v, want %v", w.elapsed, totalDur)
	}

	_, cmd = w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected transition command")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected ReplaceScreenMsg")
	}
	if *calls != 1 {
		t.Errorf("factory called %d times, want 1", *calls)
	}
}

func TestTransitionHappensOnce(t *testing.T) {
	w, calls := newTestWelcome()
	sendTicks(w, int(totalDur/tickInterval))

	w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("second key press should not transition again")
	}
	if *calls != 1 {
		t.Errorf("factory called %d times, want 1", *calls)
	}
}

func TestElapsedCapped(t *testing.T) {
	w, _ := newTestWelcome()
	sendTicks(w, 100)
	if w.elapsed != totalDur {
		t.Errorf("elapsed = %v, want capped at %v", w.elapsed, totalDur)
	}
}

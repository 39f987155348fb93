package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/hearwise/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

func TestPush(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on pushed screen")
	}
}

func TestPop(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if r.Active().Title() != "first" {
		t.Errorf("expected active 'first', got %q", r.Active().Title())
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after pop at bottom, got %d", r.Depth())
	}
}

func TestReplace(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Replace(s2)

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after replace, got %d", r.Depth())
	}
	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on replaced screen")
	}
}

func TestReplaceScreenMsg(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Update(ReplaceScreenMsg{Screen: s2})

	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run via ReplaceScreenMsg")
	}
}

func TestReplacePreservesStackDepth(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)

	s3 := &stubScreen{title: "third"}
	r.Replace(s3)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "third" {
		t.Errorf("expected active 'third', got %q", r.Active().Title())
	}
}

type resumingScreen struct {
	stubScreen
	resumed int
}

func (s *resumingScreen) Resume() tea.Cmd {
	s.resumed++
	return nil
}

func TestPopResumesUncoveredScreen(t *testing.T) {
	home := &resumingScreen{stubScreen: stubScreen{title: "home"}}
	r := New(home)
	r.Push(&stubScreen{title: "results"})

	r.Update(PopScreenMsg{})

	if home.resumed != 1 {
		t.Errorf("expected Resume once, got %d", home.resumed)
	}
	r.Pop()
	if home.resumed != 1 {
		t.Errorf("pop at bottom must not resume, got %d", home.resumed)
	}
}

type closingScreen struct {
	stubScreen
	closed int
}

func (c *closingScreen) Close() { c.closed++ }

func TestScreensAreClosedWhenLeavingTheStack(t *testing.T) {
	root := &closingScreen{stubScreen: stubScreen{title: "home"}}
	r := New(root)

	popped := &closingScreen{stubScreen: stubScreen{title: "session"}}
	r.Push(popped)
	r.Pop()
	if popped.closed != 1 {
		t.Errorf("popped screen closed %d times, want 1", popped.closed)
	}

	replaced := &closingScreen{stubScreen: stubScreen{title: "session"}}
	r.Push(replaced)
	r.Replace(&stubScreen{title: "results"})
	if replaced.closed != 1 {
		t.Errorf("replaced screen closed %d times, want 1", replaced.closed)
	}

	r.Pop() // back to root; results has no Close
	r.Pop() // no-op at the bottom
	if root.closed != 0 {
		t.Fatalf("root closed while still on the stack")
	}
	r.Close()
	if root.closed != 1 {
		t.Errorf("root closed %d times on shutdown, want 1", root.closed)
	}
}

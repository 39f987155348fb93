package user

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/hearwise/internal/router"
	"github.com/abhisek/hearwise/internal/screen"
	"github.com/abhisek/hearwise/internal/screens/env"
)

type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "" }
func (s *stubScreen) Title() string                           { return "" }

func typeText(u *UserScreen, s string) {
	for _, r := range s {
		u.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func TestEnterStoresName(t *testing.T) {
	e := &env.Env{}
	u := New(e, func() screen.Screen { return &stubScreen{} })
	typeText(u, "alice")

	_, cmd := u.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected transition")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected ReplaceScreenMsg")
	}
	if e.UserID != "alice" {
		t.Errorf("UserID = %q, want alice", e.UserID)
	}
}

func TestEmptyNameRejected(t *testing.T) {
	e := &env.Env{}
	u := New(e, func() screen.Screen { return &stubScreen{} })

	_, cmd := u.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("empty name must not continue")
	}
	if e.UserID != "" {
		t.Errorf("UserID = %q, want empty", e.UserID)
	}
}

func TestValidName(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"bob", true},
		{"", false},
		{"a/b", false},
		{"0123456789012345678901234567890123", false},
	}
	for _, tt := range tests {
		if got := validName(tt.in); got != tt.want {
			t.Errorf("validName(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

package identity

import (
	"context"
	"errors"
	"os/user"
	"testing"
)

func TestStatic(t *testing.T) {
	id, err := Static(" alice ").CurrentUser(context.Background())
	if err != nil || id != "alice" {
		t.Errorf("Static = %q, %v; want alice", id, err)
	}
	if _, err := Static("").CurrentUser(context.Background()); !errors.Is(err, ErrNoUser) {
		t.Errorf("empty Static err = %v, want ErrNoUser", err)
	}
}

func TestChainOrder(t *testing.T) {
	osUser := OSUser{lookup: func() (*user.User, error) { return &user.User{Username: "root"}, nil }}
	tests := []struct {
		name  string
		chain Chain
		want  string
	}{
		{"flag wins", Chain{Static("flag"), Static("cfg"), osUser}, "flag"},
		{"config next", Chain{Static(""), Static("cfg"), osUser}, "cfg"},
		{"os fallback", Chain{Static(""), Static(""), osUser}, "root"},
	}
	for _, tt := range tests {
		got, err := tt.chain.CurrentUser(context.Background())
		if err != nil || got != tt.want {
			t.Errorf("%s: got %q, %v; want %q", tt.name, got, err, tt.want)
		}
	}
}

func TestChainExhausted(t *testing.T) {
	noOS := OSUser{lookup: func() (*user.User, error) { return nil, errors.New("no passwd") }}
	_, err := Chain{Static(""), noOS}.CurrentUser(context.Background())
	if !errors.Is(err, ErrNoUser) {
		t.Errorf("err = %v, want ErrNoUser", err)
	}
}

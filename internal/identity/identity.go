// Package identity resolves the opaque user ID that owns test records.
package identity

import (
	"context"
	"errors"
	"os/user"
	"strings"
)

// ErrNoUser is returned when no user identity can be determined.
var ErrNoUser = errors.New("no user identity")

// Provider returns the current user's opaque identifier.
type Provider interface {
	CurrentUser(ctx context.Context) (string, error)
}

// Static always returns the same ID.
type Static string

func (s Static) CurrentUser(context.Context) (string, error) {
	id := strings.TrimSpace(string(s))
	if id == "" {
		return "", ErrNoUser
	}
	return id, nil
}

// Chain tries each provider in order and returns the first ID found.
type Chain []Provider

func (c Chain) CurrentUser(ctx context.Context) (string, error) {
	for _, p := range c {
		id, err := p.CurrentUser(ctx)
		if err == nil {
			return id, nil
		}
		if !errors.Is(err, ErrNoUser) {
			return "", err
		}
	}
	return "", ErrNoUser
}

// OSUser resolves the login name of the process owner.
type OSUser struct {
	lookup func() (*user.User, error)
}

func (o OSUser) CurrentUser(context.Context) (string, error) {
	lookup := o.lookup
	if lookup == nil {
		lookup = user.Current
	}
	u, err := lookup()
	if err != nil || u.Username == "" {
		return "", ErrNoUser
	}
	return u.Username, nil
}

// Resolve builds the standard lookup order: explicit flag, then the
// configured ID (which already carries the environment override), then the
// OS account.
func Resolve(flag, configured string) Provider {
	return Chain{Static(flag), Static(configured), OSUser{}}
}

// Package env carries the dependencies shared by the TUI screens.
package env

import (
	"go.uber.org/zap"

	"github.com/abhisek/hearwise/internal/explain"
	"github.com/abhisek/hearwise/internal/identity"
	"github.com/abhisek/hearwise/internal/session"
	"github.com/abhisek/hearwise/internal/stimulus"
	"github.com/abhisek/hearwise/internal/store"
)

// Env is shared by pointer so a user picked on one screen is seen by the
// rest of the app.
type Env struct {
	UserID    string
	Records   store.RecordRepo
	Events    store.EventRepo
	Device    stimulus.Device
	Explainer *explain.Service
	Session   session.Config
	Logger    *zap.Logger
}

// NewSession builds an idle screening session for the current user.
func (e *Env) NewSession() *session.Session {
	return session.New(session.Deps{
		Device:   e.Device,
		Records:  e.Records,
		Events:   e.Events,
		Identity: identity.Static(e.UserID),
		Logger:   e.Logger,
	}, e.Session)
}

// Log returns the logger, never nil.
func (e *Env) Log() *zap.Logger {
	if e.Logger == nil {
		return zap.NewNop()
	}
	return e.Logger
}

package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/hearwise/internal/router"
	"github.com/abhisek/hearwise/internal/screens/env"
	"github.com/abhisek/hearwise/internal/screens/home"
	"github.com/abhisek/hearwise/internal/screens/user"
)

// skipWelcome presses keys until the welcome screen hands over.
func skipWelcome(t *testing.T, m AppModel) AppModel {
	t.Helper()
	for i := 0; i < 3; i++ {
		updated, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
		m = updated.(AppModel)
		if cmd == nil {
			continue
		}
		if msg, ok := cmd().(router.ReplaceScreenMsg); ok {
			updated, _ = m.Update(msg)
			return updated.(AppModel)
		}
	}
	t.Fatal("welcome screen never finished")
	return m
}

func TestKnownUserGoesHome(t *testing.T) {
	m := skipWelcome(t, newAppModel(&env.Env{UserID: "alice"}))
	assert.IsType(t, &home.HomeScreen{}, m.router.Active())
}

func TestUnknownUserAsksForName(t *testing.T) {
	m := skipWelcome(t, newAppModel(&env.Env{}))
	assert.IsType(t, &user.UserScreen{}, m.router.Active())
}

func TestEscIsLeftToScreens(t *testing.T) {
	m := skipWelcome(t, newAppModel(&env.Env{UserID: "alice"}))
	updated, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	m = updated.(AppModel)
	if cmd != nil {
		_, isQuit := cmd().(tea.QuitMsg)
		assert.False(t, isQuit)
	}
	assert.Equal(t, 1, m.router.Depth())
}

func TestCtrlCQuits(t *testing.T) {
	m := newAppModel(&env.Env{UserID: "alice"})
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestFooterUsesScreenHints(t *testing.T) {
	m := skipWelcome(t, newAppModel(&env.Env{UserID: "alice"}))
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 32})
	m = updated.(AppModel)

	var keys []string
	for _, h := range m.footerHints() {
		keys = append(keys, h.Description)
	}
	assert.Contains(t, keys, "Navigate")
	assert.NotPanics(t, func() { m.View() })
}

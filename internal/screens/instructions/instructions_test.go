package instructions

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/hearwise/internal/router"
	"github.com/abhisek/hearwise/internal/screens/env"
	sessionscreen "github.com/abhisek/hearwise/internal/screens/session"
)

func TestEnterBeginsTest(t *testing.T) {
	s := New(&env.Env{UserID: "alice"})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.ReplaceScreenMsg)
	require.True(t, ok)
	assert.IsType(t, &sessionscreen.SessionScreen{}, msg.Screen)
}

func TestEscGoesBack(t *testing.T) {
	s := New(&env.Env{})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	assert.IsType(t, router.PopScreenMsg{}, cmd())
}

func TestViewListsSteps(t *testing.T) {
	view := New(&env.Env{}).View(100, 40)
	assert.Contains(t, view, "How the test works")
	assert.Contains(t, view, "BEGIN TEST")
}

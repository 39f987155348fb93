package history

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/hearwise/internal/audiometry"
	"github.com/abhisek/hearwise/internal/router"
	"github.com/abhisek/hearwise/internal/screens/env"
	"github.com/abhisek/hearwise/internal/screens/results"
	"github.com/abhisek/hearwise/internal/store"
)

type memRecords struct {
	recs     []audiometry.Record
	err      error
	gotUser  string
	gotLimit int
}

func (m *memRecords) Save(context.Context, audiometry.Record) error { return nil }

func (m *memRecords) Get(context.Context, string) (audiometry.Record, error) {
	return audiometry.Record{}, store.ErrNotFound
}

func (m *memRecords) LoadHistory(_ context.Context, user string, limit int) ([]audiometry.Record, error) {
	m.gotUser, m.gotLimit = user, limit
	return m.recs, m.err
}

func record(id string, day int, lvl audiometry.Level) audiometry.Record {
	var results []audiometry.Result
	for _, ear := range audiometry.Ears {
		for _, f := range audiometry.Frequencies {
			results = append(results, audiometry.Result{Frequency: f, Ear: ear, Threshold: audiometry.Heard(lvl)})
		}
	}
	return audiometry.NewRecord(id, "alice", time.Date(2026, 10, day, 9, 0, 0, 0, time.UTC), results)
}

func loaded(t *testing.T, m *memRecords) *HistoryScreen {
	t.Helper()
	s := New(&env.Env{UserID: "alice", Records: m})
	s.Update(s.Init()())
	require.True(t, s.loaded)
	return s
}

func TestLoadsUserHistory(t *testing.T) {
	m := &memRecords{recs: []audiometry.Record{record("b", 19, 3), record("a", 1, 7)}}
	s := loaded(t, m)

	assert.Equal(t, "alice", m.gotUser)
	assert.Equal(t, Limit, m.gotLimit)

	view := s.View(100, 30)
	assert.Contains(t, view, "Oct 19, 2026")
	assert.Contains(t, view, "normal range")
	assert.Contains(t, view, "moderate")
}

func TestEmptyAndError(t *testing.T) {
	s := loaded(t, &memRecords{})
	assert.Contains(t, s.View(100, 30), "No screenings yet")

	s = loaded(t, &memRecords{err: errors.New("db locked")})
	assert.Contains(t, s.View(100, 30), "db locked")
}

func TestNavigateExpandOpen(t *testing.T) {
	m := &memRecords{recs: []audiometry.Record{record("b", 19, 3), record("a", 1, 7)}}
	s := loaded(t, m)

	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, 0, s.selected)
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 1, s.selected)

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.True(t, s.expanded[1])
	assert.Contains(t, s.View(100, 40), "60 dB")

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'o', Text: "o"})
	require.NotNil(t, cmd)
	push, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	assert.IsType(t, &results.ResultsScreen{}, push.Screen)
}

func TestEscPops(t *testing.T) {
	s := loaded(t, &memRecords{})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	assert.IsType(t, router.PopScreenMsg{}, cmd())
}

package home

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/hearwise/internal/audiometry"
	"github.com/abhisek/hearwise/internal/router"
	"github.com/abhisek/hearwise/internal/screens/env"
	"github.com/abhisek/hearwise/internal/screens/history"
	"github.com/abhisek/hearwise/internal/screens/instructions"
	"github.com/abhisek/hearwise/internal/store"
)

type lastRecords struct {
	recs []audiometry.Record
}

func (l *lastRecords) Save(context.Context, audiometry.Record) error { return nil }

func (l *lastRecords) Get(context.Context, string) (audiometry.Record, error) {
	return audiometry.Record{}, store.ErrNotFound
}

func (l *lastRecords) LoadHistory(_ context.Context, _ string, limit int) ([]audiometry.Record, error) {
	if limit > 0 && len(l.recs) > limit {
		return l.recs[:limit], nil
	}
	return l.recs, nil
}

func uniform(lvl audiometry.Level) audiometry.Record {
	var results []audiometry.Result
	for _, ear := range audiometry.Ears {
		for _, f := range audiometry.Frequencies {
			results = append(results, audiometry.Result{Frequency: f, Ear: ear, Threshold: audiometry.Heard(lvl)})
		}
	}
	return audiometry.NewRecord("r1", "alice", time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC), results)
}

func TestMascotFollowsLastResult(t *testing.T) {
	tests := []struct {
		name string
		recs []audiometry.Record
		want MascotVariant
	}{
		{"no history", nil, MascotIdle},
		{"normal", []audiometry.Record{uniform(3)}, MascotClear},
		{"loss", []audiometry.Record{uniform(7)}, MascotAttention},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := New(&env.Env{UserID: "alice", Records: &lastRecords{recs: tt.recs}})
			cmd := h.Init()
			require.NotNil(t, cmd)
			h.Update(cmd())
			assert.Equal(t, tt.want, h.mascot())
		})
	}
}

func TestResumeReloads(t *testing.T) {
	recs := &lastRecords{}
	h := New(&env.Env{UserID: "alice", Records: recs})
	h.Update(h.Init()())
	assert.Nil(t, h.last)

	recs.recs = []audiometry.Record{uniform(3)}
	h.Update(h.Resume()())
	require.NotNil(t, h.last)
	assert.Equal(t, "r1", h.last.ID())
}

func TestMenuNavigation(t *testing.T) {
	h := New(&env.Env{UserID: "alice"})

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	push, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	assert.IsType(t, &instructions.InstructionsScreen{}, push.Screen)

	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd = h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	push, ok = cmd().(router.PushScreenMsg)
	require.True(t, ok)
	assert.IsType(t, &history.HistoryScreen{}, push.Screen)
}

func TestViewRenders(t *testing.T) {
	h := New(&env.Env{UserID: "alice", Records: &lastRecords{recs: []audiometry.Record{uniform(3)}}})
	h.Update(h.Init()())
	assert.NotEmpty(t, h.View(120, 40))
	assert.NotEmpty(t, h.View(80, 20))
}

func TestHomeHotkeys(t *testing.T) {
	h := New(&env.Env{UserID: "alice", Records: &lastRecords{}})

	_, cmd := h.Update(tea.KeyPressMsg{Code: 'h', Text: "h"})
	require.NotNil(t, cmd)
	push, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	assert.IsType(t, &history.HistoryScreen{}, push.Screen)

	_, cmd = h.Update(tea.KeyPressMsg{Code: 'q', Text: "q"})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

package cmd

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/hearwise/internal/identity"
	"github.com/abhisek/hearwise/internal/report"
	"github.com/abhisek/hearwise/internal/session"
	"github.com/abhisek/hearwise/internal/stimulus"
	"github.com/abhisek/hearwise/internal/store"
)

type silentEmitter struct{}

func (silentEmitter) Emit(context.Context, stimulus.Tone) error { return nil }
func (silentEmitter) Silence() error                            { return nil }
func (silentEmitter) Close() error                              { return nil }

type silentDevice struct{}

func (silentDevice) Open(context.Context) (stimulus.Emitter, error) { return silentEmitter{}, nil }

func newTestSession(t *testing.T) (*session.Session, *store.Store) {
	t.Helper()
	st, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return session.New(session.Deps{
		Device:   silentDevice{},
		Records:  st.RecordRepo(),
		Events:   st.EventRepo(),
		Identity: identity.Static("alice"),
	}, session.Config{}), st
}

func TestHeadlessRunToReport(t *testing.T) {
	s, st := newTestSession(t)
	// Always heard: one answer per sub-test, plus noise the prompt rejects.
	in := "maybe\n" + strings.Repeat("y\n", 12)
	var out bytes.Buffer

	require.NoError(t, runHeadless(context.Background(), strings.NewReader(in), &out, s, report.FormatCSV))

	text := out.String()
	assert.Contains(t, text, "[1/12] right ear, 250Hz")
	assert.Contains(t, text, "Please answer y, n, r or q.")
	assert.Contains(t, text, "frequency_hz,ear,threshold_db,detected")
	assert.Contains(t, text, "8000,left,10,true")

	recs, err := st.RecordRepo().LoadHistory(context.Background(), "alice", 0)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Contains(t, historyLine(recs[0]), "normal range")
}

func TestHeadlessQuitSavesNothing(t *testing.T) {
	s, st := newTestSession(t)
	var out bytes.Buffer

	require.NoError(t, runHeadless(context.Background(), strings.NewReader("n\nr\nq\n"), &out, s, report.FormatText))
	assert.Contains(t, out.String(), "Nothing was saved")

	recs, err := st.RecordRepo().LoadHistory(context.Background(), "alice", 0)
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestHeadlessInputEnds(t *testing.T) {
	s, _ := newTestSession(t)
	err := runHeadless(context.Background(), strings.NewReader("y\n"), &bytes.Buffer{}, s, report.FormatText)
	assert.ErrorIs(t, err, errInputEnded)
}

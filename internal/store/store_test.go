package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/hearwise/internal/audiometry"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	s, err := Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func makeRecord(id, user string, at time.Time, th func(audiometry.Frequency, audiometry.Ear) audiometry.Threshold) audiometry.Record {
	var results []audiometry.Result
	for _, ear := range audiometry.Ears {
		for _, f := range audiometry.Frequencies {
			results = append(results, audiometry.Result{Frequency: f, Ear: ear, Threshold: th(f, ear)})
		}
	}
	return audiometry.NewRecord(id, user, at, results)
}

func mixed(f audiometry.Frequency, ear audiometry.Ear) audiometry.Threshold {
	if f == 8000 && ear == audiometry.Left {
		return audiometry.NotDetected()
	}
	return audiometry.Heard(audiometry.Level(audiometry.FrequencyIndex(f) + 2))
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// journal_mode reports "memory" for in-memory databases.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	for _, table := range []string{"hearing_records", "session_events", "trial_events", "llm_request_events", "global_sequence"} {
		var name string
		err := s.DB().QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
		}
	}
}

func TestRecordSaveAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.RecordRepo()
	ctx := context.Background()

	at := time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)
	rec := makeRecord("rec-a", "alice", at, mixed)
	require.NoError(t, repo.Save(ctx, rec))

	got, err := repo.Get(ctx, "rec-a")
	require.NoError(t, err)
	assert.Equal(t, "alice", got.UserID())
	assert.True(t, got.TakenAt().Equal(at))
	if diff := cmp.Diff(rec.Results(), got.Results(), cmp.AllowUnexported(audiometry.Threshold{})); diff != "" {
		t.Errorf("results mismatch (-want +got):\n%s", diff)
	}

	th, ok := got.Lookup(8000, audiometry.Left)
	require.True(t, ok)
	assert.False(t, th.Detected())
}

func TestRecordGetNotFound(t *testing.T) {
	s := openTestStore(t)
	_, err := s.RecordRepo().Get(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestRecordSaveRejectsIncomplete(t *testing.T) {
	s := openTestStore(t)
	rec := makeRecord("rec-x", "alice", time.Now(), mixed)
	partial := audiometry.NewRecord(rec.ID(), rec.UserID(), rec.TakenAt(), rec.Results()[:5])

	err := s.RecordRepo().Save(context.Background(), partial)
	assert.ErrorIs(t, err, audiometry.ErrMissingPair)

	_, err = s.RecordRepo().Get(context.Background(), "rec-x")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecordIDUnique(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	rec := makeRecord("dup", "alice", time.Now(), mixed)
	require.NoError(t, s.RecordRepo().Save(ctx, rec))
	assert.Error(t, s.RecordRepo().Save(ctx, rec))
}

func TestLoadHistoryMostRecentFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.RecordRepo()
	ctx := context.Background()

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range []string{"r1", "r2", "r3"} {
		require.NoError(t, repo.Save(ctx, makeRecord(id, "alice", base.Add(time.Duration(i)*time.Hour), mixed)))
	}
	require.NoError(t, repo.Save(ctx, makeRecord("b1", "bob", base.Add(10*time.Hour), mixed)))

	all, err := repo.LoadHistory(ctx, "alice", 0)
	require.NoError(t, err)
	var ids []string
	for _, r := range all {
		ids = append(ids, r.ID())
	}
	assert.Equal(t, []string{"r3", "r2", "r1"}, ids)

	limited, err := repo.LoadHistory(ctx, "alice", 2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, "r3", limited[0].ID())

	none, err := repo.LoadHistory(ctx, "carol", 5)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	for i, seq := range seqs {
		if want := int64(i + 1); seq != want {
			t.Errorf("seq[%d] = %d, want %d", i, seq, want)
		}
	}
}

func TestSessionAndTrialEventsShareSequence(t *testing.T) {
	s := openTestStore(t)
	events := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, events.AppendSessionEvent(ctx, SessionEventData{SessionID: "s1", UserID: "alice", Action: ActionStart}))
	require.NoError(t, events.AppendTrialEvent(ctx, TrialEventData{SessionID: "s1", FrequencyHz: 250, Ear: "right", LevelDB: 10, Heard: false, Trial: 1}))
	require.NoError(t, events.AppendTrialEvent(ctx, TrialEventData{SessionID: "s1", FrequencyHz: 250, Ear: "right", LevelDB: 20, Heard: true, Trial: 2}))
	require.NoError(t, events.AppendSessionEvent(ctx, SessionEventData{SessionID: "s1", UserID: "alice", Action: ActionCancel, Trials: 2, CompletedPairs: 1}))
	require.NoError(t, events.AppendSessionEvent(ctx, SessionEventData{SessionID: "s2", Action: ActionStart}))

	sess, err := events.QuerySessionEvents(ctx, "s1", QueryOpts{})
	require.NoError(t, err)
	require.Len(t, sess, 2)
	assert.Equal(t, ActionStart, sess[0].Action)
	assert.Equal(t, ActionCancel, sess[1].Action)
	assert.Equal(t, 1, sess[1].CompletedPairs)

	trials, err := events.QueryTrialEvents(ctx, "s1", QueryOpts{})
	require.NoError(t, err)
	require.Len(t, trials, 2)
	assert.True(t, trials[1].Heard)
	assert.Equal(t, 20, trials[1].LevelDB)

	// Sequence numbers interleave across tables.
	assert.Less(t, sess[0].Sequence, trials[0].Sequence)
	assert.Less(t, trials[1].Sequence, sess[1].Sequence)

	after, err := events.QueryTrialEvents(ctx, "s1", QueryOpts{After: trials[0].Sequence})
	require.NoError(t, err)
	assert.Len(t, after, 1)
}

func TestLLMEvents(t *testing.T) {
	s := openTestStore(t)
	events := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, events.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "mock", Model: "m1", Purpose: "explain", InputTokens: 100, OutputTokens: 50,
		LatencyMs: 200, Success: true, RequestBody: "[user]\nhi", ResponseBody: `{"headline":"x"}`,
	}))
	require.NoError(t, events.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "mock", Model: "m1", Purpose: "explain", LatencyMs: 100, Success: false, ErrorMessage: "boom",
	}))

	list, err := events.QueryLLMEvents(ctx, QueryOpts{Limit: 10})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "boom", list[0].ErrorMessage, "most recent first")

	got, err := events.GetLLMEvent(ctx, list[1].ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, `{"headline":"x"}`, got.ResponseBody)

	missing, err := events.GetLLMEvent(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)

	byPurpose, err := events.LLMUsageByPurpose(ctx)
	require.NoError(t, err)
	require.Len(t, byPurpose, 1)
	assert.Equal(t, 2, byPurpose[0].Calls)
	assert.Equal(t, int64(150), byPurpose[0].AvgLatencyMs)

	byModel, err := events.LLMUsageByModel(ctx)
	require.NoError(t, err)
	require.Len(t, byModel, 1)
	assert.Equal(t, 1, byModel[0].Calls)
	assert.Equal(t, 100, byModel[0].InputTokens)
}

func TestOpenFileCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "data", "hearwise.db")
	s, err := OpenFile(path)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.RecordRepo().Save(context.Background(), makeRecord("f1", "alice", time.Now(), mixed)))
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

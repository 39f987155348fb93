package staircase

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/hearwise/internal/audiometry"
)

var fixedTime = time.Date(2026, 10, 19, 10, 30, 0, 0, time.UTC)

func newTestEngine(opts ...Option) *Engine {
	base := []Option{
		WithOwner("user-1"),
		WithClock(func() time.Time { return fixedTime }),
		WithIDGenerator(func() string { return "rec-1" }),
	}
	return New(append(base, opts...)...)
}

// runAll drives the engine to completion, asking respond for each answer.
func runAll(t *testing.T, e *Engine, respond func(audiometry.Coordinate) bool) Step {
	t.Helper()
	step, err := e.Start()
	require.NoError(t, err)
	for i := 0; step.State == Testing; i++ {
		if i > 10000 {
			t.Fatal("engine did not finish")
		}
		step = e.SubmitResponse(respond(step.Instruction.Coordinate))
	}
	return step
}

func TestStartEmitsFirstCoordinate(t *testing.T) {
	e := newTestEngine()
	assert.Equal(t, Idle, e.State())

	step, err := e.Start()
	require.NoError(t, err)

	want := audiometry.Coordinate{FrequencyIndex: 0, Ear: audiometry.Right, Level: audiometry.DefaultStartLevel}
	assert.Equal(t, Testing, step.State)
	assert.Equal(t, Play, step.Instruction.Kind)
	assert.Equal(t, want, step.Instruction.Coordinate)

	cur, ok := e.Cursor()
	require.True(t, ok)
	assert.Equal(t, want, cur)
}

func TestStartRequiresIdle(t *testing.T) {
	e := newTestEngine()
	_, err := e.Start()
	require.NoError(t, err)

	_, err = e.Start()
	if !errors.Is(err, ErrNotIdle) {
		t.Errorf("second Start err = %v, want ErrNotIdle", err)
	}

	done := newTestEngine()
	runAll(t, done, func(audiometry.Coordinate) bool { return true })
	if _, err := done.Start(); !errors.Is(err, ErrNotIdle) {
		t.Errorf("Start from Finished err = %v, want ErrNotIdle", err)
	}
	done.Reset()
	if _, err := done.Start(); err != nil {
		t.Errorf("Start after Reset: %v", err)
	}
}

func TestSubmitResponseOutsideTestingIsNoop(t *testing.T) {
	e := newTestEngine()
	step := e.SubmitResponse(true)
	assert.Equal(t, Idle, step.State)
	assert.Equal(t, None, step.Instruction.Kind)
	assert.Nil(t, step.Completed)
	assert.Empty(t, e.Trials())

	runAll(t, e, func(audiometry.Coordinate) bool { return true })
	before := e.Results()
	step = e.SubmitResponse(false)
	assert.Equal(t, Finished, step.State)
	assert.Equal(t, None, step.Instruction.Kind)
	assert.Equal(t, before, e.Results())
}

func TestScenarioThousandHertzRight(t *testing.T) {
	e := newTestEngine()
	step, err := e.Start()
	require.NoError(t, err)

	// 250 Hz and 500 Hz heard immediately.
	step = e.SubmitResponse(true)
	step = e.SubmitResponse(true)
	require.Equal(t, audiometry.Frequency(1000), step.Instruction.Coordinate.Frequency())

	for _, db := range []int{10, 20, 30} {
		require.Equal(t, db, step.Instruction.Coordinate.Level.DB())
		step = e.SubmitResponse(false)
		assert.Nil(t, step.Completed)
	}
	require.Equal(t, 40, step.Instruction.Coordinate.Level.DB())
	step = e.SubmitResponse(true)

	require.NotNil(t, step.Completed)
	db, ok := step.Completed.Threshold.DB()
	assert.True(t, ok)
	assert.Equal(t, 40, db)
	assert.Equal(t, audiometry.Frequency(1000), step.Completed.Frequency)
	assert.Equal(t, audiometry.Right, step.Completed.Ear)

	want := audiometry.Coordinate{FrequencyIndex: 3, Ear: audiometry.Right, Level: audiometry.DefaultStartLevel}
	assert.Equal(t, Play, step.Instruction.Kind)
	assert.Equal(t, want, step.Instruction.Coordinate)
}

func TestEarOrderRightThenLeft(t *testing.T) {
	e := newTestEngine()
	var order []audiometry.Pair
	step, err := e.Start()
	require.NoError(t, err)
	for step.State == Testing {
		step = e.SubmitResponse(true)
		if step.Completed != nil {
			order = append(order, step.Completed.Pair())
		}
	}

	var want []audiometry.Pair
	for _, ear := range audiometry.Ears {
		for _, f := range audiometry.Frequencies {
			want = append(want, audiometry.Pair{Frequency: f, Ear: ear})
		}
	}
	if diff := cmp.Diff(want, order); diff != "" {
		t.Errorf("traversal order mismatch (-want +got):\n%s", diff)
	}
}

func TestNeverHeard(t *testing.T) {
	e := newTestEngine()
	step := runAll(t, e, func(audiometry.Coordinate) bool { return false })

	require.Equal(t, Finished, step.State)
	require.Equal(t, Stop, step.Instruction.Kind)
	require.NotNil(t, step.Record)

	for _, r := range step.Record.Results() {
		if r.Threshold.Detected() {
			t.Errorf("%s/%s detected, want NotDetected", r.Frequency, r.Ear)
		}
	}
	wantTrials := audiometry.TotalPairs() * e.MaxTrialsPerPair()
	assert.Len(t, e.Trials(), wantTrials)
}

func TestRecordCoverageAndStamp(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	e := newTestEngine()
	step := runAll(t, e, func(audiometry.Coordinate) bool { return rng.Intn(3) == 0 })

	require.NotNil(t, step.Record)
	rec := *step.Record
	require.NoError(t, rec.Validate())
	assert.Equal(t, "rec-1", rec.ID())
	assert.Equal(t, "user-1", rec.UserID())
	assert.Equal(t, fixedTime, rec.TakenAt())

	got, ok := e.Record()
	require.True(t, ok)
	if diff := cmp.Diff(rec.Results(), got.Results(), cmp.AllowUnexported(audiometry.Threshold{})); diff != "" {
		t.Errorf("Record() mismatch (-step +engine):\n%s", diff)
	}
}

func TestMonotonicBracketing(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		e := newTestEngine()
		runAll(t, e, func(audiometry.Coordinate) bool { return rng.Intn(4) == 0 })

		byPair := map[audiometry.Pair][]Trial{}
		for _, tr := range e.Trials() {
			p := audiometry.Pair{Frequency: tr.Coordinate.Frequency(), Ear: tr.Coordinate.Ear}
			byPair[p] = append(byPair[p], tr)
		}

		rec, ok := e.Record()
		require.True(t, ok)
		for _, res := range rec.Results() {
			trials := byPair[res.Pair()]
			require.NotEmpty(t, trials)
			for i := 1; i < len(trials); i++ {
				if trials[i].Coordinate.Level != trials[i-1].Coordinate.Level+1 {
					t.Fatalf("seed %d: %s/%s levels not ascending by one", seed, res.Frequency, res.Ear)
				}
			}
			for _, tr := range trials[:len(trials)-1] {
				if tr.Heard {
					t.Fatalf("seed %d: heard response before the final trial of %s/%s", seed, res.Frequency, res.Ear)
				}
			}
			last := trials[len(trials)-1]
			if lvl, detected := res.Threshold.Level(); detected {
				assert.True(t, last.Heard)
				assert.Equal(t, last.Coordinate.Level, lvl)
			} else {
				assert.False(t, last.Heard)
				assert.Equal(t, audiometry.MaxLevel, last.Coordinate.Level)
			}
		}
	}
}

func TestBoundedTrials(t *testing.T) {
	for _, start := range []audiometry.Level{audiometry.MinLevel, audiometry.DefaultStartLevel, 8, audiometry.MaxLevel} {
		e := newTestEngine(WithStartLevel(start))
		runAll(t, e, func(audiometry.Coordinate) bool { return false })

		counts := map[audiometry.Pair]int{}
		for _, tr := range e.Trials() {
			counts[audiometry.Pair{Frequency: tr.Coordinate.Frequency(), Ear: tr.Coordinate.Ear}]++
		}
		limit := int(audiometry.MaxLevel-start) + 1
		for p, n := range counts {
			if n > limit {
				t.Errorf("start %s: %s/%s used %d trials, limit %d", start, p.Frequency, p.Ear, n, limit)
			}
		}
	}
}

func TestCancelDiscardsState(t *testing.T) {
	e := newTestEngine()
	_, err := e.Start()
	require.NoError(t, err)
	e.SubmitResponse(false)
	e.SubmitResponse(true)
	require.Len(t, e.Results(), 1)

	e.Cancel()

	assert.Equal(t, Idle, e.State())
	assert.Empty(t, e.Results())
	assert.Empty(t, e.Trials())
	_, ok := e.Record()
	assert.False(t, ok)
	_, ok = e.Cursor()
	assert.False(t, ok)

	step, err := e.Start()
	require.NoError(t, err)
	assert.Equal(t, audiometry.Coordinate{Level: audiometry.DefaultStartLevel}, step.Instruction.Coordinate)
	assert.Empty(t, e.Results())
}

func TestCancelOutsideTestingIsNoop(t *testing.T) {
	e := newTestEngine()
	runAll(t, e, func(audiometry.Coordinate) bool { return true })
	e.Cancel()
	assert.Equal(t, Finished, e.State())
	_, ok := e.Record()
	assert.True(t, ok)
}

func TestProgress(t *testing.T) {
	e := newTestEngine()
	done, total := e.Progress()
	assert.Equal(t, 0, done)
	assert.Equal(t, 12, total)

	_, err := e.Start()
	require.NoError(t, err)
	e.SubmitResponse(true)
	e.SubmitResponse(true)
	done, _ = e.Progress()
	assert.Equal(t, 2, done)
}

func TestWithStartLevelIgnoresInvalid(t *testing.T) {
	e := New(WithStartLevel(42))
	assert.Equal(t, audiometry.DefaultStartLevel, e.StartLevel())
}

package stimulus

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/abhisek/hearwise/internal/audiometry"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type event struct {
	kind string
	tone Tone
}

type fakeEmitter struct {
	mu       sync.Mutex
	events   []event
	playing  int
	maxAlive int
	emitErr  error
	closed   bool
}

func (f *fakeEmitter) Emit(_ context.Context, t Tone) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.emitErr != nil {
		return f.emitErr
	}
	f.events = append(f.events, event{kind: "emit", tone: t})
	f.playing++
	if f.playing > f.maxAlive {
		f.maxAlive = f.playing
	}
	return nil
}

func (f *fakeEmitter) Silence() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event{kind: "silence"})
	if f.playing > 0 {
		f.playing--
	}
	return nil
}

func (f *fakeEmitter) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *fakeEmitter) emits() []Tone {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []Tone
	for _, e := range f.events {
		if e.kind == "emit" {
			out = append(out, e.tone)
		}
	}
	return out
}

func coord(freqIdx int, ear audiometry.Ear, lvl audiometry.Level) audiometry.Coordinate {
	return audiometry.Coordinate{FrequencyIndex: freqIdx, Ear: ear, Level: lvl}
}

func waitPending(t *testing.T, c *Controller) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		c.mu.Lock()
		p := c.pending != nil
		c.mu.Unlock()
		if p {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("Play never reached its pacing wait")
}

func TestPlaySilencesPrevious(t *testing.T) {
	em := &fakeEmitter{}
	c := NewController(em)
	ctx := context.Background()

	require.NoError(t, c.Play(ctx, coord(0, audiometry.Right, 2)))
	require.NoError(t, c.Play(ctx, coord(0, audiometry.Right, 3)))
	require.NoError(t, c.Play(ctx, coord(1, audiometry.Right, 2)))

	assert.Equal(t, 1, em.maxAlive, "more than one tone was active at once")
	assert.Equal(t, []string{"emit", "silence", "emit", "silence", "emit"}, kinds(em))

	active, ok := c.Active()
	require.True(t, ok)
	assert.Equal(t, coord(1, audiometry.Right, 2), active)
}

func kinds(em *fakeEmitter) []string {
	em.mu.Lock()
	defer em.mu.Unlock()
	var out []string
	for _, e := range em.events {
		out = append(out, e.kind)
	}
	return out
}

func TestToneMapping(t *testing.T) {
	em := &fakeEmitter{}
	c := NewController(em, WithToneDuration(750*time.Millisecond))
	require.NoError(t, c.Play(context.Background(), coord(2, audiometry.Left, audiometry.MaxLevel)))

	tones := em.emits()
	require.Len(t, tones, 1)
	assert.Equal(t, 1000.0, tones[0].FrequencyHz)
	assert.Equal(t, ChannelLeft, tones[0].Channel)
	assert.Equal(t, 1.0, tones[0].Loudness)
	assert.Equal(t, 750*time.Millisecond, tones[0].Duration)
}

func TestStopAndClose(t *testing.T) {
	em := &fakeEmitter{}
	c := NewController(em)
	require.NoError(t, c.Play(context.Background(), coord(0, audiometry.Right, 2)))

	require.NoError(t, c.Stop())
	_, ok := c.Active()
	assert.False(t, ok)
	// Stop with nothing active does not touch the emitter.
	require.NoError(t, c.Stop())
	assert.Equal(t, []string{"emit", "silence"}, kinds(em))

	require.NoError(t, c.Close())
	assert.True(t, em.closed)
	require.NoError(t, c.Close())

	err := c.Play(context.Background(), coord(0, audiometry.Right, 2))
	assert.ErrorIs(t, err, ErrAudio)
}

func TestEmitFailureIsAudioUnavailable(t *testing.T) {
	em := &fakeEmitter{emitErr: errors.New("device busy")}
	c := NewController(em)

	err := c.Play(context.Background(), coord(0, audiometry.Right, 2))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAudio)
	var ua *ErrAudioUnavailable
	require.ErrorAs(t, err, &ua)
	assert.EqualError(t, ua.Err, "device busy")

	_, ok := c.Active()
	assert.False(t, ok)
}

func TestPacingNewerPlaySupersedes(t *testing.T) {
	em := &fakeEmitter{}
	c := NewController(em, WithPacing(100*time.Millisecond))
	ctx := context.Background()

	first := make(chan error, 1)
	go func() { first <- c.Play(ctx, coord(0, audiometry.Right, 2)) }()
	waitPending(t, c)

	require.NoError(t, c.Play(ctx, coord(0, audiometry.Right, 3)))
	assert.ErrorIs(t, <-first, ErrSuperseded)

	tones := em.emits()
	require.Len(t, tones, 1)
	assert.Equal(t, Loudness(3), tones[0].Loudness)
}

func TestPacingStopSupersedes(t *testing.T) {
	em := &fakeEmitter{}
	c := NewController(em, WithPacing(time.Hour))

	done := make(chan error, 1)
	go func() { done <- c.Play(context.Background(), coord(0, audiometry.Right, 2)) }()
	waitPending(t, c)

	require.NoError(t, c.Stop())
	assert.ErrorIs(t, <-done, ErrSuperseded)
	assert.Empty(t, em.emits())
}

func TestPacingHonoursContext(t *testing.T) {
	em := &fakeEmitter{}
	c := NewController(em, WithPacing(time.Hour))
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- c.Play(ctx, coord(0, audiometry.Right, 2)) }()
	waitPending(t, c)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
	assert.Empty(t, em.emits())
}

func TestLoudnessMonotonic(t *testing.T) {
	prev := 0.0
	for l := audiometry.MinLevel; l <= audiometry.MaxLevel; l++ {
		v := Loudness(l)
		if v <= prev || v > 1 {
			t.Errorf("Loudness(%s) = %g, want in (%g, 1]", l, v, prev)
		}
		prev = v
	}
	if Loudness(audiometry.MaxLevel) != 1 {
		t.Errorf("Loudness(max) = %g, want 1", Loudness(audiometry.MaxLevel))
	}
}

func TestChannelFor(t *testing.T) {
	assert.Equal(t, ChannelRight, ChannelFor(audiometry.Right))
	assert.Equal(t, ChannelLeft, ChannelFor(audiometry.Left))
}

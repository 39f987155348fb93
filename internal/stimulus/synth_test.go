package stimulus

import (
	"bytes"
	"context"
	"encoding/binary"
	"math"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/cwbudde/algo-dsp/dsp/spectrum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/hearwise/internal/audiometry"
)

func TestSynthRendersRequestedFrequency(t *testing.T) {
	s := NewSynth(16000, 10*time.Millisecond)
	tone := Tone{FrequencyHz: 1000, Loudness: 0.5, Channel: ChannelRight, Duration: 200 * time.Millisecond}

	buf, err := s.Render(tone)
	require.NoError(t, err)
	require.Equal(t, 3200, buf.Len())

	target, err := spectrum.NewGoertzel(1000, 16000)
	require.NoError(t, err)
	target.ProcessBlock(buf.Right)

	off, err := spectrum.NewGoertzel(2000, 16000)
	require.NoError(t, err)
	off.ProcessBlock(buf.Right)

	if target.Power() < 100*off.Power() {
		t.Errorf("1 kHz power %g not dominant over 2 kHz power %g", target.Power(), off.Power())
	}

	for i, v := range buf.Left {
		if v != 0 {
			t.Fatalf("left channel sample %d = %g, want silence", i, v)
		}
	}
}

func TestSynthRampsAndPeak(t *testing.T) {
	s := NewSynth(8000, 20*time.Millisecond)
	buf, err := s.Render(Tone{FrequencyHz: 500, Loudness: 0.25, Channel: ChannelLeft, Duration: 100 * time.Millisecond})
	require.NoError(t, err)

	assert.InDelta(t, 0, buf.Left[0], 1e-12)
	assert.InDelta(t, 0, buf.Left[buf.Len()-1], 1e-3)

	peak := 0.0
	for _, v := range buf.Left {
		peak = math.Max(peak, math.Abs(v))
	}
	assert.LessOrEqual(t, peak, 0.25+1e-9)
	assert.Greater(t, peak, 0.2)
}

func TestSynthRejectsBadTones(t *testing.T) {
	s := NewSynth(8000, 0)
	_, err := s.Render(Tone{FrequencyHz: 1000, Loudness: 1, Duration: 0})
	assert.Error(t, err)
	_, err = s.Render(Tone{FrequencyHz: 8000, Loudness: 1, Duration: time.Second})
	assert.Error(t, err, "8 kHz is above Nyquist at 8 kHz sampling")
}

func TestEncodeWAV(t *testing.T) {
	s := Stereo{Left: []float64{0, 1, -1}, Right: []float64{0.5, 0, 2}}
	var buf bytes.Buffer
	require.NoError(t, EncodeWAV(&buf, s, 44100))

	b := buf.Bytes()
	require.Len(t, b, 44+3*4)
	assert.Equal(t, "RIFF", string(b[0:4]))
	assert.Equal(t, "WAVE", string(b[8:12]))
	assert.Equal(t, "data", string(b[36:40]))
	assert.Equal(t, uint32(44100), binary.LittleEndian.Uint32(b[24:28]))
	assert.Equal(t, uint16(2), binary.LittleEndian.Uint16(b[22:24]))
	assert.Equal(t, uint32(12), binary.LittleEndian.Uint32(b[40:44]))

	sample := func(i int) int16 { return int16(binary.LittleEndian.Uint16(b[44+i*2:])) }
	assert.Equal(t, int16(0), sample(0))
	assert.Equal(t, int16(16384), sample(1))
	assert.Equal(t, int16(math.MaxInt16), sample(2))
	assert.Equal(t, int16(-math.MaxInt16), sample(4))
	assert.Equal(t, int16(math.MaxInt16), sample(5), "clipped")

	err := EncodeWAV(&buf, Stereo{Left: []float64{0}}, 44100)
	assert.Error(t, err)
}

func TestPlayerDeviceMissingPlayer(t *testing.T) {
	d := &PlayerDevice{Player: "hearwise-no-such-player-binary"}
	_, err := d.Open(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAudio)
	assert.ErrorIs(t, err, ErrNoPlayer)
}

func TestPlayerDeviceWritesFiles(t *testing.T) {
	if _, err := exec.LookPath("true"); err != nil {
		t.Skip("true(1) not available")
	}
	dir := t.TempDir()
	d := &PlayerDevice{Player: "true", KeepDir: dir, Synth: NewSynth(8000, 0)}
	em, err := d.Open(context.Background())
	require.NoError(t, err)

	c := NewController(em, WithToneDuration(50*time.Millisecond))
	require.NoError(t, c.Play(context.Background(), audiometry.Coordinate{FrequencyIndex: 0, Ear: audiometry.Right, Level: 4}))
	require.NoError(t, c.Close())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

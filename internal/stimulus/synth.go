package stimulus

import (
	"fmt"
	"time"

	"github.com/cwbudde/algo-dsp/dsp/core"
	"github.com/cwbudde/algo-dsp/dsp/signal"
	"github.com/cwbudde/algo-dsp/dsp/window"
)

const (
	DefaultSampleRate = 44100
	DefaultRamp       = 20 * time.Millisecond
)

// Stereo is a rendered two-channel buffer in [-1, 1].
type Stereo struct {
	Left  []float64
	Right []float64
}

// Len returns the frame count.
func (s Stereo) Len() int {
	return len(s.Left)
}

// Synth renders tones to PCM. Onset and offset are shaped with half Hann
// windows so tones start and stop without clicks.
type Synth struct {
	sampleRate int
	ramp       time.Duration
	gen        *signal.Generator
}

// NewSynth creates a synthesizer. Zero values select defaults.
func NewSynth(sampleRate int, ramp time.Duration) *Synth {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	if ramp < 0 {
		ramp = 0
	}
	return &Synth{
		sampleRate: sampleRate,
		ramp:       ramp,
		gen:        signal.NewGenerator(core.WithSampleRate(float64(sampleRate))),
	}
}

// SampleRate returns the output rate in Hz.
func (s *Synth) SampleRate() int {
	return s.sampleRate
}

// Render produces the stereo buffer for t. The channel not addressed by
// t.Channel is silent.
func (s *Synth) Render(t Tone) (Stereo, error) {
	n := int(t.Duration.Seconds() * float64(s.sampleRate))
	if n <= 0 {
		return Stereo{}, fmt.Errorf("render tone: duration %s too short", t.Duration)
	}
	if nyquist := float64(s.sampleRate) / 2; t.FrequencyHz <= 0 || t.FrequencyHz >= nyquist {
		return Stereo{}, fmt.Errorf("render tone: frequency %.0f Hz outside (0, %.0f)", t.FrequencyHz, nyquist)
	}

	amp := core.Clamp(t.Loudness, 0, 1)
	mono, err := s.gen.Sine(t.FrequencyHz, amp, n)
	if err != nil {
		return Stereo{}, fmt.Errorf("render tone: %w", err)
	}
	s.applyRamps(mono)

	silent := make([]float64, n)
	if t.Channel == ChannelLeft {
		return Stereo{Left: mono, Right: silent}, nil
	}
	return Stereo{Left: silent, Right: mono}, nil
}

func (s *Synth) applyRamps(buf []float64) {
	rampN := int(s.ramp.Seconds() * float64(s.sampleRate))
	if rampN > len(buf)/2 {
		rampN = len(buf) / 2
	}
	if rampN <= 0 {
		return
	}
	// Rising half of the window shapes the onset, falling half the offset.
	w := window.Generate(window.TypeHann, 2*rampN)
	for i := 0; i < rampN; i++ {
		buf[i] *= w[i]
		buf[len(buf)-rampN+i] *= w[rampN+i]
	}
}

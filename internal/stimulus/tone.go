// Package stimulus owns tone presentation: mapping test coordinates to
// tones, keeping at most one tone active, and rendering tones to audio.
package stimulus

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cwbudde/algo-dsp/dsp/core"

	"github.com/abhisek/hearwise/internal/audiometry"
)

// Channel is the output channel a tone is routed to.
type Channel int

const (
	ChannelRight Channel = iota
	ChannelLeft
)

func (c Channel) String() string {
	if c == ChannelLeft {
		return "left"
	}
	return "right"
}

// ChannelFor maps an ear to its output channel.
func ChannelFor(ear audiometry.Ear) Channel {
	if ear == audiometry.Left {
		return ChannelLeft
	}
	return ChannelRight
}

// DynamicRangeDB is the attenuation applied at the quietest level relative
// to the loudest. The level table spans 130 dB which 16-bit PCM cannot
// carry, so levels are compressed linearly into this range.
const DynamicRangeDB = 80.0

// Loudness maps a level to a relative amplitude in (0, 1]. It is strictly
// increasing in level and returns 1 at MaxLevel.
func Loudness(l audiometry.Level) float64 {
	if !l.Valid() {
		l = audiometry.Level(core.Clamp(float64(l), float64(audiometry.MinLevel), float64(audiometry.MaxLevel)))
	}
	span := float64(audiometry.MaxLevel.DB() - audiometry.MinLevel.DB())
	below := float64(audiometry.MaxLevel.DB() - l.DB())
	return core.Clamp(core.DBToLinear(-below*DynamicRangeDB/span), 0, 1)
}

// DefaultToneDuration is how long a tone plays when not configured.
const DefaultToneDuration = 1500 * time.Millisecond

// Tone is a single stimulus ready for emission.
type Tone struct {
	FrequencyHz float64
	Loudness    float64
	Channel     Channel
	Duration    time.Duration
}

// ToneFor builds the tone for a coordinate.
func ToneFor(c audiometry.Coordinate, d time.Duration) Tone {
	return Tone{
		FrequencyHz: c.Frequency().Hz(),
		Loudness:    Loudness(c.Level),
		Channel:     ChannelFor(c.Ear),
		Duration:    d,
	}
}

// Emitter produces sound. Emit starts the tone and returns without waiting
// for playback to end. Silence stops whatever is playing and is safe to call
// when nothing is.
type Emitter interface {
	Emit(ctx context.Context, t Tone) error
	Silence() error
}

// Device acquires an Emitter for the duration of one session. The returned
// Emitter should also implement io.Closer when it holds resources.
type Device interface {
	Open(ctx context.Context) (Emitter, error)
}

// ErrAudio matches every audio failure via errors.Is.
var ErrAudio = errors.New("audio unavailable")

// ErrSuperseded is returned by a pending Play that a newer Play or Stop
// replaced before its pacing delay elapsed.
var ErrSuperseded = errors.New("stimulus superseded")

// ErrAudioUnavailable wraps a failure to open or drive the audio output.
type ErrAudioUnavailable struct {
	Err error
}

func (e *ErrAudioUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("audio unavailable: %v", e.Err)
	}
	return "audio unavailable"
}

func (e *ErrAudioUnavailable) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrAudio) match.
func (e *ErrAudioUnavailable) Is(target error) bool { return target == ErrAudio }

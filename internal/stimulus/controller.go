package stimulus

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/hearwise/internal/audiometry"
)

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithPacing delays each tone by d after Play is called, giving the user a
// moment of silence between stimuli.
func WithPacing(d time.Duration) ControllerOption {
	return func(c *Controller) { c.pacing = d }
}

// WithToneDuration sets how long each tone lasts.
func WithToneDuration(d time.Duration) ControllerOption {
	return func(c *Controller) {
		if d > 0 {
			c.toneDuration = d
		}
	}
}

// WithLogger attaches a logger.
func WithLogger(l *zap.Logger) ControllerOption {
	return func(c *Controller) { c.logger = l }
}

// Controller keeps at most one stimulus active on an Emitter. It is safe
// for concurrent use.
type Controller struct {
	em           Emitter
	pacing       time.Duration
	toneDuration time.Duration
	logger       *zap.Logger

	mu      sync.Mutex
	active  *audiometry.Coordinate
	gen     uint64
	pending context.CancelFunc
	closed  bool
}

// NewController wraps an emitter.
func NewController(em Emitter, opts ...ControllerOption) *Controller {
	c := &Controller{
		em:           em,
		toneDuration: DefaultToneDuration,
		logger:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Play presents the tone for coord. Any unstopped stimulus is silenced first.
// When pacing is configured Play waits before emitting; a Play or Stop issued
// during the wait makes this call return ErrSuperseded.
func (c *Controller) Play(ctx context.Context, coord audiometry.Coordinate) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return &ErrAudioUnavailable{Err: fmt.Errorf("controller closed")}
	}
	c.cancelPendingLocked()
	c.gen++
	myGen := c.gen
	if err := c.silenceLocked(); err != nil {
		c.mu.Unlock()
		return err
	}
	waitCtx, cancel := context.WithCancel(ctx)
	c.pending = cancel
	c.mu.Unlock()
	defer cancel()

	if c.pacing > 0 {
		timer := time.NewTimer(c.pacing)
		select {
		case <-timer.C:
		case <-waitCtx.Done():
			timer.Stop()
			if err := ctx.Err(); err != nil {
				return err
			}
			return ErrSuperseded
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen != myGen || c.closed {
		return ErrSuperseded
	}
	c.pending = nil

	tone := ToneFor(coord, c.toneDuration)
	if err := c.em.Emit(ctx, tone); err != nil {
		c.logger.Warn("emit tone failed",
			zap.Int("frequency_hz", int(coord.Frequency())),
			zap.String("ear", coord.Ear.String()),
			zap.Int("level_db", coord.Level.DB()),
			zap.Error(err))
		return &ErrAudioUnavailable{Err: err}
	}
	c.active = &coord
	c.logger.Debug("tone emitted",
		zap.Int("frequency_hz", int(coord.Frequency())),
		zap.String("ear", coord.Ear.String()),
		zap.Int("level_db", coord.Level.DB()))
	return nil
}

// Stop silences the active stimulus and abandons any pending Play.
func (c *Controller) Stop() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelPendingLocked()
	c.gen++
	return c.silenceLocked()
}

// Active returns the coordinate of the stimulus currently playing.
func (c *Controller) Active() (audiometry.Coordinate, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active == nil {
		return audiometry.Coordinate{}, false
	}
	return *c.active, true
}

// Close stops playback and releases the emitter if it is closable.
func (c *Controller) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	c.cancelPendingLocked()
	c.gen++
	err := c.silenceLocked()
	if cl, ok := c.em.(io.Closer); ok {
		if cerr := cl.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close emitter: %w", cerr)
		}
	}
	return err
}

func (c *Controller) cancelPendingLocked() {
	if c.pending != nil {
		c.pending()
		c.pending = nil
	}
}

func (c *Controller) silenceLocked() error {
	if c.active == nil {
		return nil
	}
	c.active = nil
	if err := c.em.Silence(); err != nil {
		return &ErrAudioUnavailable{Err: fmt.Errorf("silence: %w", err)}
	}
	return nil
}

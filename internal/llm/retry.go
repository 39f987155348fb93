package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"
)

// RetryProvider retries transient failures with capped exponential backoff
// and ±20% jitter. A response that fails schema validation is retried once.
type RetryProvider struct {
	inner  Provider
	config RetryConfig
	logger *zap.Logger
	sleep  func(context.Context, time.Duration) error
}

// RetryOption customises a RetryProvider.
type RetryOption func(*RetryProvider)

// RetryLogger logs each retried attempt at debug level.
func RetryLogger(l *zap.Logger) RetryOption {
	return func(r *RetryProvider) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithRetry wraps a Provider with retry logic.
func WithRetry(p Provider, cfg RetryConfig, opts ...RetryOption) Provider {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	if cfg.Multiplier < 1 {
		cfg.Multiplier = 1
	}
	r := &RetryProvider{inner: p, config: cfg, logger: zap.NewNop(), sleep: sleepCtx}
	for _, o := range opts {
		o(r)
	}
	return r
}

func (r *RetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	var (
		err            error
		invalidRetried bool
	)
	for attempt := 0; attempt < r.config.MaxAttempts; attempt++ {
		var resp *Response
		resp, err = r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}

		var invalid *ErrInvalidResponse
		switch {
		case errors.As(err, &invalid):
			if invalidRetried {
				return nil, err
			}
			invalidRetried = true
		case !Transient(err):
			return nil, err
		}

		if attempt == r.config.MaxAttempts-1 {
			break
		}
		wait := r.backoff(attempt, err)
		r.logger.Debug("retrying llm request",
			zap.Int("attempt", attempt+1),
			zap.Duration("wait", wait),
			zap.Error(err))
		if serr := r.sleep(ctx, wait); serr != nil {
			return nil, serr
		}
	}
	return nil, err
}

func (r *RetryProvider) ModelID() string {
	return r.inner.ModelID()
}

// backoff computes the wait before the attempt after the given one. A rate
// limit that names its own delay wins.
func (r *RetryProvider) backoff(attempt int, err error) time.Duration {
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	wait := math.Min(
		float64(r.config.InitialWait)*math.Pow(r.config.Multiplier, float64(attempt)),
		float64(r.config.MaxWait))
	wait += wait * 0.2 * (2*rand.Float64() - 1)
	return time.Duration(math.Max(wait, 0))
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

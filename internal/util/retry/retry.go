package retry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-logr/logr"
)

// Policy controls how often and how patiently an operation is repeated.
type Policy struct {
	Attempts   int
	Delay      time.Duration
	MaxDelay   time.Duration
	Multiplier float64

	// Retryable reports whether an error is worth another attempt.
	// A nil classifier retries every error.
	Retryable func(error) bool
}

// DefaultPolicy returns three attempts starting at 250ms.
func DefaultPolicy() Policy {
	return Policy{
		Attempts:   3,
		Delay:      250 * time.Millisecond,
		MaxDelay:   5 * time.Second,
		Multiplier: 2,
	}
}

// Option adjusts a Policy.
type Option func(*Policy)

// WithAttempts sets the total number of attempts, including the first.
func WithAttempts(n int) Option {
	return func(p *Policy) {
		p.Attempts = n
	}
}

// WithDelay sets the delay before the second attempt.
func WithDelay(d time.Duration) Option {
	return func(p *Policy) {
		p.Delay = d
	}
}

// WithMaxDelay caps the delay between attempts.
func WithMaxDelay(d time.Duration) Option {
	return func(p *Policy) {
		p.MaxDelay = d
	}
}

// WithMultiplier sets the growth factor applied to the delay.
func WithMultiplier(m float64) Option {
	return func(p *Policy) {
		p.Multiplier = m
	}
}

// If restricts retries to errors the classifier accepts.
func If(retryable func(error) bool) Option {
	return func(p *Policy) {
		p.Retryable = retryable
	}
}

// ErrExhausted wraps the last error once every attempt has failed.
var ErrExhausted = errors.New("retry attempts exhausted")

// Do runs op under the policy built from opts. The name labels log lines.
// Errors the classifier rejects are returned unchanged.
func Do(ctx context.Context, name string, op func(context.Context) error, opts ...Option) error {
	p := DefaultPolicy()
	for _, opt := range opts {
		opt(&p)
	}
	if p.Attempts < 1 {
		p.Attempts = 1
	}

	log := logr.FromContextOrDiscard(ctx)
	delay := p.Delay

	var err error
	for attempt := 1; ; attempt++ {
		if err = op(ctx); err == nil {
			return nil
		}
		if p.Retryable != nil && !p.Retryable(err) {
			return err
		}
		if attempt >= p.Attempts {
			return fmt.Errorf("%s: %w after %d attempts: %w", name, ErrExhausted, attempt, err)
		}

		log.V(1).Info("Retrying", "operation", name, "attempt", attempt, "delay", delay, "error", err.Error())

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return fmt.Errorf("%s: %w", name, ctx.Err())
		case <-timer.C:
		}

		delay = next(delay, p)
	}
}

func next(d time.Duration, p Policy) time.Duration {
	if p.Multiplier > 1 {
		d = time.Duration(float64(d) * p.Multiplier)
	}
	if p.MaxDelay > 0 && d > p.MaxDelay {
		d = p.MaxDelay
	}
	return d
}

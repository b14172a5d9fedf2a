package cooldown

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/JoaoLuiz92/dependente-plan-form/pkg/kv"
)

// DefaultKey is the storage key the last-attempt timestamp is recorded under.
const DefaultKey = "lastFormSubmission"

// DefaultWindow is the minimum time between two submission attempts.
const DefaultWindow = 30 * time.Second

// Error reports a refused attempt and how long the caller has to wait.
type Error struct {
	RetryAfter time.Duration
}

func (e *Error) Error() string {
	seconds := int(math.Ceil(e.RetryAfter.Seconds()))
	return fmt.Sprintf("wait %d seconds before submitting again", seconds)
}

// Limiter allows one attempt per window, keyed by a fixed store entry.
type Limiter struct {
	store  kv.Store
	window time.Duration
	key    string
	now    func() time.Time
}

// Option configures a Limiter.
type Option func(*Limiter)

// WithKey overrides the storage key. Useful when several independent forms
// share one store.
func WithKey(key string) Option {
	return func(l *Limiter) {
		if key != "" {
			l.key = key
		}
	}
}

// WithClock injects the time source, enabling deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) {
		if now != nil {
			l.now = now
		}
	}
}

// New creates a limiter over the given store. A non-positive window falls
// back to DefaultWindow.
func New(store kv.Store, window time.Duration, opts ...Option) *Limiter {
	if window <= 0 {
		window = DefaultWindow
	}

	l := &Limiter{
		store:  store,
		window: window,
		key:    DefaultKey,
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Attempt checks the recorded last-attempt timestamp and either refuses with
// an *Error carrying the remaining wait, or records the current time and
// allows. Recording happens unconditionally on allow; the caller's eventual
// success or failure does not roll it back.
//
// A stored value that cannot be parsed is treated as absent rather than
// blocking the user forever.
func (l *Limiter) Attempt(ctx context.Context) error {
	now := l.now()

	raw, ok, err := l.store.Get(ctx, l.key)
	if err != nil {
		return fmt.Errorf("cooldown: read last attempt: %w", err)
	}

	if ok {
		if prior, parseErr := strconv.ParseInt(raw, 10, 64); parseErr == nil {
			elapsed := now.Sub(time.UnixMilli(prior))
			if elapsed < l.window {
				return &Error{RetryAfter: l.window - elapsed}
			}
		}
	}

	millis := strconv.FormatInt(now.UnixMilli(), 10)
	if err := l.store.Set(ctx, l.key, millis); err != nil {
		return fmt.Errorf("cooldown: record attempt: %w", err)
	}

	return nil
}

package submission

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/JoaoLuiz92/dependente-plan-form/form"
)

// Option configures a Submitter at construction time.
type Option func(*Submitter)

// WithHTTPClient sets a custom HTTP client. Useful for transports with
// timeouts, proxies, or testing.
func WithHTTPClient(client *http.Client) Option {
	return func(s *Submitter) {
		if client != nil {
			s.client = client
		}
	}
}

// WithNotifier sets the notification sink for success and error reporting.
func WithNotifier(n Notifier) Option {
	return func(s *Submitter) {
		if n != nil {
			s.notifier = n
		}
	}
}

// WithLimits overrides the assembly and validation bounds.
func WithLimits(limits form.Limits) Option {
	return func(s *Submitter) {
		s.limits = limits
	}
}

// WithWindow sets the cooldown window between submission attempts.
func WithWindow(window time.Duration) Option {
	return func(s *Submitter) {
		if window > 0 {
			s.window = window
		}
	}
}

// WithClock injects the time source used for the payload timestamp and the
// cooldown check.
func WithClock(now func() time.Time) Option {
	return func(s *Submitter) {
		if now != nil {
			s.now = now
		}
	}
}

// WithTokenSource injects the session token generator.
func WithTokenSource(newToken func() string) Option {
	return func(s *Submitter) {
		if newToken != nil {
			s.newToken = newToken
		}
	}
}

// WithUserAgent sets the client user-agent string attached to the payload.
func WithUserAgent(ua string) Option {
	return func(s *Submitter) {
		s.userAgent = ua
	}
}

// WithReferrer sets the referrer string attached to the payload.
func WithReferrer(referrer string) Option {
	return func(s *Submitter) {
		s.referrer = referrer
	}
}

// WithRedirect sets the callback invoked with the redirect URL after a
// success-with-redirect response. The callback fires after the redirect
// delay has elapsed.
func WithRedirect(fn func(url string)) Option {
	return func(s *Submitter) {
		s.redirect = fn
	}
}

// WithRedirectDelay overrides the pause before the redirect callback fires.
func WithRedirectDelay(d time.Duration) Option {
	return func(s *Submitter) {
		if d >= 0 {
			s.redirectDelay = d
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Submitter) {
		if log != nil {
			s.log = log
		}
	}
}

// WithSourceTag overrides the X-Form-Source header value.
func WithSourceTag(tag string) Option {
	return func(s *Submitter) {
		if tag != "" {
			s.sourceTag = tag
		}
	}
}

package submission

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/JoaoLuiz92/dependente-plan-form/form"
	"github.com/JoaoLuiz92/dependente-plan-form/pkg/cooldown"
	"github.com/JoaoLuiz92/dependente-plan-form/pkg/kv"
	"github.com/JoaoLuiz92/dependente-plan-form/pkg/token"
	"github.com/JoaoLuiz92/dependente-plan-form/pkg/validator"
)

const (
	defaultSourceTag     = "dependente-plan-form"
	defaultRedirectDelay = 2 * time.Second

	successTitle = "Registration completed successfully!"
	errorTitle   = "Registration error"
)

// Result reports the outcome of a successful submission. RedirectURL is
// empty for a plain success.
type Result struct {
	RedirectURL string
}

// apiResponse is the shape the webhook answers with.
type apiResponse struct {
	Success bool `json:"success"`
	Data    struct {
		URL string `json:"url"`
	} `json:"data"`
	Message string `json:"message"`
}

// Submitter sequences one submit attempt end to end. Construct with New;
// the zero value is not usable.
type Submitter struct {
	endpoint  string
	client    *http.Client
	limits    form.Limits
	window    time.Duration
	limiter   *cooldown.Limiter
	notifier  Notifier
	log       *slog.Logger
	sourceTag string
	userAgent string
	referrer  string
	now       func() time.Time
	newToken  func() string
	redirect  func(url string)

	redirectDelay time.Duration
	inFlight      atomic.Bool
}

// New creates a Submitter posting to endpoint, with the cooldown timestamp
// persisted in store.
func New(endpoint string, store kv.Store, opts ...Option) *Submitter {
	s := &Submitter{
		endpoint:      endpoint,
		client:        &http.Client{},
		limits:        form.DefaultLimits(),
		window:        cooldown.DefaultWindow,
		notifier:      NopNotifier{},
		log:           slog.Default(),
		sourceTag:     defaultSourceTag,
		now:           time.Now,
		newToken:      token.New,
		redirectDelay: defaultRedirectDelay,
	}

	for _, opt := range opts {
		opt(s)
	}

	s.limiter = cooldown.New(store, s.window, cooldown.WithClock(s.now))

	return s
}

// Submit runs one submission attempt: assemble, critically validate, check
// the cooldown, POST, interpret. A second call while one attempt is in
// flight returns ErrInFlight without touching the pipeline. The in-flight
// flag is released on every exit path.
//
// All failure kinds are reported through the notifier as a single message;
// the underlying error is returned as well.
func (s *Submitter) Submit(ctx context.Context, in form.Input) (*Result, error) {
	if !s.inFlight.CompareAndSwap(false, true) {
		return nil, ErrInFlight
	}
	defer s.inFlight.Store(false)

	result, err := s.submit(ctx, in)
	if err != nil {
		s.log.ErrorContext(ctx, "submission failed", slog.String("error", err.Error()))
		s.notifier.Notify(errorTitle, userMessage(err), SeverityError)
		return nil, err
	}

	return result, nil
}

func (s *Submitter) submit(ctx context.Context, in form.Input) (*Result, error) {
	payload := form.Assemble(in, form.Env{
		Now:       s.now,
		NewToken:  s.newToken,
		UserAgent: s.userAgent,
		Referrer:  s.referrer,
	}, s.limits)

	if errs := form.ValidateCritical(payload, s.limits); !errs.IsEmpty() {
		return nil, errs
	}

	if err := s.limiter.Attempt(ctx); err != nil {
		return nil, err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	req.Header.Set("X-Form-Source", s.sourceTag)
	req.Header.Set("X-Timestamp", payload.Timestamp)

	s.log.DebugContext(ctx, "sending submission",
		slog.String("endpoint", s.endpoint),
		slog.Int("dependentes", payload.DependentCount),
	)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send submission: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	var r apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if !r.Success {
		message := r.Message
		if message == "" {
			message = "processing error"
		}
		return nil, &ServerError{Message: message}
	}

	if r.Data.URL != "" {
		s.notifier.Notify(successTitle, "Redirecting to the platform...", SeveritySuccess)
		if s.redirect != nil {
			url := r.Data.URL
			time.AfterFunc(s.redirectDelay, func() { s.redirect(url) })
		}
		s.log.InfoContext(ctx, "submission accepted", slog.String("redirect", r.Data.URL))
		return &Result{RedirectURL: r.Data.URL}, nil
	}

	s.notifier.Notify(successTitle, "The data has been sent for processing.", SeveritySuccess)
	s.log.InfoContext(ctx, "submission accepted")
	return &Result{}, nil
}

// userMessage flattens any pipeline error into the single line shown to the
// user.
func userMessage(err error) string {
	var cooldownErr *cooldown.Error
	if errors.As(err, &cooldownErr) {
		return cooldownErr.Error()
	}

	if errs := validator.ExtractValidationErrors(err); !errs.IsEmpty() {
		return "invalid data: " + errs.Join(", ")
	}

	var serverErr *ServerError
	if errors.As(err, &serverErr) {
		return serverErr.Message
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Error()
	}

	return "Try again in a few moments."
}

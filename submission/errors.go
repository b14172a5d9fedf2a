package submission

import (
	"errors"
	"fmt"
)

// ErrInFlight reports that a submit was attempted while another one from the
// same Submitter is still in progress. The caller should disable or ignore
// the second attempt, not queue it.
var ErrInFlight = errors.New("submission already in progress")

// StatusError reports a non-2xx response from the webhook endpoint.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api error: status %d", e.StatusCode)
}

// ServerError reports a well-formed response whose body indicates failure.
// Message carries the server-provided detail, or a generic fallback.
type ServerError struct {
	Message string
}

func (e *ServerError) Error() string {
	return e.Message
}

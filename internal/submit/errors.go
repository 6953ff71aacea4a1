package submit

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrInvalidPayload is wrapped by every ValidationError.
var ErrInvalidPayload = errors.New("invalid answer payload")

// ValidationError reports a payload that does not match the answer schema.
// It is never retried.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid answer payload: %v", e.Err)
}

func (e *ValidationError) Unwrap() []error { return []error{ErrInvalidPayload, e.Err} }

// StatusError is a non-2xx response from the answer service.
type StatusError struct {
	Code       int
	Body       string
	RetryAfter time.Duration
}

func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("answer service returned %d %s: %s", e.Code, http.StatusText(e.Code), e.Body)
	}
	return fmt.Sprintf("answer service returned %d %s", e.Code, http.StatusText(e.Code))
}

// Temporary reports whether the request may succeed when repeated.
func (e *StatusError) Temporary() bool {
	return e.Code == http.StatusTooManyRequests || e.Code >= 500
}

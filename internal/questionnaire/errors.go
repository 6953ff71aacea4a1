package questionnaire

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingIdentity means no account email is known, so answers cannot
	// be attributed to anyone. Retrying without signing in will not help.
	ErrMissingIdentity = errors.New("no email on record for this questionnaire")

	// ErrSubmitInFlight rejects a submit while another is still pending.
	ErrSubmitInFlight = errors.New("a submission is already in progress")

	// ErrSectionIncomplete rejects a submit whose required fields are empty.
	ErrSectionIncomplete = errors.New("required questionnaire fields are empty")

	// ErrSubmissionFailed is wrapped by every SubmissionError.
	ErrSubmissionFailed = errors.New("submission failed")
)

// SubmissionError reports that the submission service rejected or could not
// receive the answers. The session is left intact so the same answers can be
// resubmitted.
type SubmissionError struct {
	Err error
}

func (e *SubmissionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("submission failed: %v", e.Err)
	}
	return "submission failed"
}

func (e *SubmissionError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrSubmissionFailed}
	}
	return []error{ErrSubmissionFailed, e.Err}
}

// User-facing messages.
const (
	msgMissingIdentity  = "We couldn't find your account email. Please sign in again."
	msgSubmissionFailed = "We couldn't save your answers. Please try again."
)

// Package submit delivers questionnaire answer payloads, either into the
// local store or to a remote endpoint, with retry and a submission log.
package submit

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/cragcoach/internal/logger"
	"github.com/abhisek/cragcoach/internal/profile"
	"github.com/abhisek/cragcoach/internal/store"
)

// Submitter delivers one answer payload. Delivery is all-or-nothing.
type Submitter interface {
	Submit(ctx context.Context, payload profile.AnswerPayload) error

	// Target names where payloads go: "local" or the endpoint URL.
	Target() string
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultRetryConfig returns the retry policy used when none is configured.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: 1 * time.Second,
		MaxWait:     10 * time.Second,
		Multiplier:  2.0,
	}
}

// Options configures New.
type Options struct {
	// Endpoint is the remote answer service URL. Empty submits locally only.
	Endpoint string
	APIToken string

	// Timeout bounds a single HTTP request.
	Timeout time.Duration
	Retry   RetryConfig

	Store  *store.Store
	Logger *logger.Logger
}

// New creates a Submitter from options. Payloads always land in the local
// store; with an endpoint they are sent there first.
// Middleware order: caller → retry → logging → base.
func New(opts Options) (Submitter, error) {
	if opts.Store == nil {
		return nil, fmt.Errorf("submit: store is required")
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	local := NewLocal(opts.Store.ProfileRepo())
	var base Submitter = local
	if opts.Endpoint != "" {
		remote, err := NewHTTP(HTTPConfig{
			Endpoint: opts.Endpoint,
			APIToken: opts.APIToken,
			Timeout:  opts.Timeout,
		})
		if err != nil {
			return nil, err
		}
		base = WithLocalCopy(remote, local)
	}

	logged := WithLogging(base, opts.Store.SubmissionRepo(), log)
	return WithRetry(logged, opts.Retry), nil
}

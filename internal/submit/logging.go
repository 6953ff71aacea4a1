package submit

import (
	"context"
	"time"

	"github.com/abhisek/cragcoach/internal/logger"
	"github.com/abhisek/cragcoach/internal/profile"
	"github.com/abhisek/cragcoach/internal/store"
)

// loggingSubmitter is a decorator that records every delivery attempt in the
// submission log.
type loggingSubmitter struct {
	inner Submitter
	repo  store.SubmissionRepo
	log   *logger.Logger
}

// WithLogging wraps a Submitter with submission logging.
func WithLogging(s Submitter, repo store.SubmissionRepo, log *logger.Logger) Submitter {
	if log == nil {
		log = logger.Nop()
	}
	return &loggingSubmitter{inner: s, repo: repo, log: log}
}

func (l *loggingSubmitter) Submit(ctx context.Context, payload profile.AnswerPayload) error {
	start := time.Now()
	err := l.inner.Submit(ctx, payload)

	sub := &store.Submission{
		Email:     payload[profile.KeyEmail],
		Target:    l.inner.Target(),
		Payload:   payload,
		Success:   err == nil,
		CreatedAt: start,
	}
	if err != nil {
		sub.Error = err.Error()
	}

	kvs := []any{
		"target", sub.Target,
		"email", sub.Email,
		"latency_ms", time.Since(start).Milliseconds(),
	}
	if err != nil {
		l.log.Warn("answer submission attempt failed", append(kvs, "error", err)...)
	} else {
		l.log.Info("answers delivered", kvs...)
	}

	// Record the attempt but don't fail the submission if logging fails.
	// The attempt's own context may already be cancelled.
	if logErr := l.repo.Append(context.WithoutCancel(ctx), sub); logErr != nil {
		l.log.Warn("failed to record submission", "error", logErr)
	}

	return err
}

func (l *loggingSubmitter) Target() string { return l.inner.Target() }

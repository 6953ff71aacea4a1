package submit

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/cragcoach/internal/profile"
	"github.com/abhisek/cragcoach/internal/store"
)

// TargetLocal is the Target of the local submitter.
const TargetLocal = "local"

// Local writes answer payloads straight into the profile store.
type Local struct {
	repo store.ProfileRepo
	now  func() time.Time
}

// NewLocal returns a submitter that upserts profiles into repo.
func NewLocal(repo store.ProfileRepo) *Local {
	return &Local{repo: repo, now: time.Now}
}

func (l *Local) Submit(ctx context.Context, payload profile.AnswerPayload) error {
	if err := Validate(payload); err != nil {
		return err
	}
	if payload[profile.KeyEmail] == "" {
		return &ValidationError{Err: fmt.Errorf("%s is empty", profile.KeyEmail)}
	}

	p := profile.FromPayload(payload)
	p.UpdatedAt = l.now()
	if _, err := l.repo.Upsert(ctx, p); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

func (l *Local) Target() string { return TargetLocal }

// localCopy sends to a remote submitter and, once accepted, stores the same
// answers locally.
type localCopy struct {
	remote Submitter
	local  *Local
}

// WithLocalCopy wraps remote so accepted payloads are also kept in the local
// store.
func WithLocalCopy(remote Submitter, local *Local) Submitter {
	return &localCopy{remote: remote, local: local}
}

func (c *localCopy) Submit(ctx context.Context, payload profile.AnswerPayload) error {
	if err := c.remote.Submit(ctx, payload); err != nil {
		return err
	}
	if err := c.local.Submit(ctx, payload); err != nil {
		return fmt.Errorf("store accepted answers locally: %w", err)
	}
	return nil
}

func (c *localCopy) Target() string { return c.remote.Target() }

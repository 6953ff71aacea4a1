package questionnaire

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/abhisek/cragcoach/internal/logger"
	"github.com/abhisek/cragcoach/internal/profile"
)

// ProfileStore gives access to the stored profile of the current user.
type ProfileStore interface {
	// FetchProfile loads the profile for email from the backing store and
	// caches it as the current profile. It returns nil, nil when none exists.
	FetchProfile(ctx context.Context, email string) (*profile.Profile, error)

	// CurrentProfile returns the cached profile, or nil.
	CurrentProfile() *profile.Profile

	// ReplaceProfile swaps the cached profile.
	ReplaceProfile(p *profile.Profile)
}

// Submitter delivers an answer payload. Delivery is all-or-nothing: a nil
// error means every answer was accepted.
type Submitter interface {
	Submit(ctx context.Context, payload profile.AnswerPayload) error
}

// FlagStore holds the questionnaire reminder flags.
type FlagStore interface {
	SetNeedsQuestionnaire(ctx context.Context, v bool) error
	SetShowQuestionnairePrompt(ctx context.Context, v bool) error
}

// Options configures a Controller.
type Options struct {
	// Email is the account identity. Empty means unknown.
	Email string

	Profiles  ProfileStore
	Submitter Submitter
	Flags     FlagStore // optional

	// OnDismiss is called once when the questionnaire should close.
	OnDismiss func()

	Logger *logger.Logger
}

// Controller drives one questionnaire session: loading the stored profile,
// gating navigation, and submitting the answers.
//
// Session fields are mutated only by the caller's input loop. Controller
// state (in-flight flag, error message, dismissal) is guarded so that
// RefreshProfile, Deliver and CompleteSubmit can run on a background
// goroutine. CompleteSubmit never touches the session; OnDismiss then runs
// on that goroutine too.
type Controller struct {
	session   *Session
	email     string
	profiles  ProfileStore
	submitter Submitter
	flags     FlagStore
	onDismiss func()
	log       *logger.Logger
	now       func() time.Time

	mu         sync.Mutex
	submitting bool
	dismissed  bool
	errMsg     string
}

// NewController creates a controller with a fresh session.
func NewController(opts Options) *Controller {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	return &Controller{
		session:   NewSession(),
		email:     opts.Email,
		profiles:  opts.Profiles,
		submitter: opts.Submitter,
		flags:     opts.Flags,
		onDismiss: opts.OnDismiss,
		log:       log.With("component", "questionnaire", "email", opts.Email),
		now:       time.Now,
	}
}

// Session returns the working session.
func (c *Controller) Session() *Session { return c.session }

// Email returns the known account email, or "".
func (c *Controller) Email() string { return c.email }

// Activate loads existing answers into the session. With a known email the
// profile is refreshed from the store first; otherwise the cached profile (if
// any) is used. A refresh error is returned after the session has been
// hydrated from the cached profile.
func (c *Controller) Activate(ctx context.Context) error {
	p, err := c.RefreshProfile(ctx)
	c.ApplyLoaded(p)
	return err
}

// RefreshProfile fetches the profile without touching the session. On a
// fetch error the cached profile is returned along with the error.
func (c *Controller) RefreshProfile(ctx context.Context) (*profile.Profile, error) {
	p, err := LoadProfile(ctx, c.profiles, c.email)
	if err != nil {
		c.log.Warn("profile refresh failed, using cached profile", "error", err)
	}
	return p, err
}

// LoadProfile fetches the profile for email from profiles, or returns the
// cached profile when email is empty. On a fetch error the cached profile is
// returned along with the error.
func LoadProfile(ctx context.Context, profiles ProfileStore, email string) (*profile.Profile, error) {
	if email == "" {
		return profiles.CurrentProfile(), nil
	}
	p, err := profiles.FetchProfile(ctx, email)
	if err != nil {
		return profiles.CurrentProfile(), fmt.Errorf("fetch profile: %w", err)
	}
	return p, nil
}

// ApplyLoaded hydrates the session from p. A nil p leaves the defaults.
func (c *Controller) ApplyLoaded(p *profile.Profile) {
	res := Hydrate(c.session, p)
	if c.session.Email == "" {
		c.session.Email = c.email
	}
	if len(res.Skipped) > 0 {
		c.log.Debug("skipped malformed attribute ratings", "entries", res.Skipped)
	}
	c.log.Debug("session hydrated", "found", p != nil, "ratings_source", res.Source.String())
}

// CanAdvance reports whether the forward action should be enabled.
func (c *Controller) CanAdvance() bool {
	return c.session.CanAdvance()
}

// IsSubmitEnabled reports whether the submit action should be enabled.
func (c *Controller) IsSubmitEnabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return IsSubmitEnabled(c.session, c.submitting)
}

// Submitting reports whether a submission is in flight.
func (c *Controller) Submitting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.submitting
}

// ErrorMessage returns the user-visible error, or "".
func (c *Controller) ErrorMessage() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errMsg
}

// ClearError hides the user-visible error.
func (c *Controller) ClearError() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errMsg = ""
}

// Submit runs the whole submit workflow synchronously.
func (c *Controller) Submit(ctx context.Context) error {
	payload, err := c.BeginSubmit()
	if err != nil {
		return err
	}
	return c.CompleteSubmit(ctx, payload, c.Deliver(ctx, payload))
}

// BeginSubmit validates preconditions, builds the payload and marks the
// session as submitting. The store is not contacted.
func (c *Controller) BeginSubmit() (profile.AnswerPayload, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.email == "" {
		c.errMsg = msgMissingIdentity
		return nil, ErrMissingIdentity
	}
	if c.submitting {
		return nil, ErrSubmitInFlight
	}
	if !IsSubmitEnabled(c.session, false) {
		return nil, ErrSectionIncomplete
	}

	payload := Serialize(c.session, c.email)
	c.submitting = true
	c.errMsg = ""
	return payload, nil
}

// Deliver hands the payload to the submission service. It does not touch
// controller or session state.
func (c *Controller) Deliver(ctx context.Context, payload profile.AnswerPayload) error {
	return c.submitter.Submit(ctx, payload)
}

// CompleteSubmit applies the outcome of Deliver. On success the held profile
// is updated from the payload, the submitting flag and reminder flags are
// cleared, and only then is the questionnaire dismissed. On failure the
// session is kept as-is and a *SubmissionError is returned.
func (c *Controller) CompleteSubmit(ctx context.Context, payload profile.AnswerPayload, deliverErr error) error {
	c.mu.Lock()
	dismissed := c.dismissed

	if deliverErr != nil {
		c.submitting = false
		if !dismissed {
			c.errMsg = msgSubmissionFailed
		}
		c.mu.Unlock()
		c.log.Warn("answer submission failed", "error", deliverErr)
		return &SubmissionError{Err: deliverErr}
	}

	updated := c.profiles.CurrentProfile().Clone()
	if updated == nil {
		updated = &profile.Profile{}
	}
	profile.ApplyPayload(updated, payload)
	updated.UpdatedAt = c.now()
	c.profiles.ReplaceProfile(updated)

	c.submitting = false
	c.dismissed = true
	c.mu.Unlock()

	c.clearFlags(ctx)
	c.log.Info("answers submitted")

	if !dismissed && c.onDismiss != nil {
		c.onDismiss()
	}
	return nil
}

// CompleteLater defers the questionnaire: it stays required but stops
// prompting, and the questionnaire is dismissed.
func (c *Controller) CompleteLater(ctx context.Context) error {
	if c.flags != nil {
		if err := c.flags.SetNeedsQuestionnaire(ctx, true); err != nil {
			return fmt.Errorf("set needs questionnaire: %w", err)
		}
		if err := c.flags.SetShowQuestionnairePrompt(ctx, false); err != nil {
			return fmt.Errorf("set show questionnaire prompt: %w", err)
		}
	}

	c.mu.Lock()
	already := c.dismissed
	c.dismissed = true
	c.mu.Unlock()

	if !already && c.onDismiss != nil {
		c.onDismiss()
	}
	return nil
}

// Dismiss marks the session as discarded. A submission still in flight will
// update the stored profile if it succeeds, but no longer affects the
// session or fires OnDismiss.
func (c *Controller) Dismiss() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dismissed = true
}

// Dismissed reports whether the questionnaire has been closed.
func (c *Controller) Dismissed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dismissed
}

func (c *Controller) clearFlags(ctx context.Context) {
	if c.flags == nil {
		return
	}
	if err := c.flags.SetNeedsQuestionnaire(ctx, false); err != nil {
		c.log.Warn("clear needs-questionnaire flag", "error", err)
	}
	if err := c.flags.SetShowQuestionnairePrompt(ctx, false); err != nil {
		c.log.Warn("clear questionnaire prompt flag", "error", err)
	}
}

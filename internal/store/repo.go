package store

import (
	"context"
	"time"

	"github.com/abhisek/cragcoach/internal/profile"
)

// ProfileRepo persists climber profiles keyed by email.
type ProfileRepo interface {
	// Get returns the profile for email, or nil if none exists.
	Get(ctx context.Context, email string) (*profile.Profile, error)

	// Upsert inserts p, or overwrites the stored profile with the same email.
	// It returns the row ID.
	Upsert(ctx context.Context, p *profile.Profile) (int, error)

	// List returns every stored profile, most recently updated first.
	List(ctx context.Context) ([]*profile.Profile, error)
}

// Flags is the questionnaire reminder state.
type Flags struct {
	// NeedsQuestionnaire is true until the climber has submitted answers.
	NeedsQuestionnaire bool
	// ShowQuestionnairePrompt controls the reminder on the home screen.
	ShowQuestionnairePrompt bool
}

// DefaultFlags is the state of a fresh install.
var DefaultFlags = Flags{NeedsQuestionnaire: true, ShowQuestionnairePrompt: true}

// FlagRepo reads and writes the questionnaire flags.
type FlagRepo interface {
	// Get returns the stored flags, with DefaultFlags for unset keys.
	Get(ctx context.Context) (Flags, error)

	SetNeedsQuestionnaire(ctx context.Context, v bool) error
	SetShowQuestionnairePrompt(ctx context.Context, v bool) error

	// Reset restores DefaultFlags.
	Reset(ctx context.Context) error
}

// Submission is one entry of the submission log: a single delivery attempt
// of an answer payload.
type Submission struct {
	ID        int
	UUID      string
	Email     string
	Target    string // "local" or the endpoint URL
	Payload   profile.AnswerPayload
	Success   bool
	Error     string
	CreatedAt time.Time
}

// SubmissionRepo provides append access to the submission log.
type SubmissionRepo interface {
	// Append records sub. An empty UUID is generated; a zero CreatedAt is set
	// to the current time.
	Append(ctx context.Context, sub *Submission) error

	// Recent returns up to limit submissions, newest first. A limit of 0
	// returns all of them.
	Recent(ctx context.Context, limit int) ([]Submission, error)
}

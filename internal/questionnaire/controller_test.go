package questionnaire

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/cragcoach/internal/profile"
)

// fakeProfiles is an in-memory ProfileStore.
type fakeProfiles struct {
	byEmail    map[string]*profile.Profile
	current    *profile.Profile
	fetchErr   error
	fetchCalls int
	events     *[]string
}

func (f *fakeProfiles) FetchProfile(_ context.Context, email string) (*profile.Profile, error) {
	f.fetchCalls++
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	p := f.byEmail[email].Clone()
	if p != nil {
		f.current = p
	}
	return p, nil
}

func (f *fakeProfiles) CurrentProfile() *profile.Profile { return f.current }

func (f *fakeProfiles) ReplaceProfile(p *profile.Profile) {
	f.current = p
	f.record("replace")
}

func (f *fakeProfiles) record(e string) {
	if f.events != nil {
		*f.events = append(*f.events, e)
	}
}

// fakeSubmitter records payloads and fails with err when set.
type fakeSubmitter struct {
	payloads []profile.AnswerPayload
	err      error
}

func (f *fakeSubmitter) Submit(_ context.Context, payload profile.AnswerPayload) error {
	f.payloads = append(f.payloads, payload)
	return f.err
}

// fakeFlags records flag writes.
type fakeFlags struct {
	needs, prompt bool
	events        *[]string
}

func (f *fakeFlags) SetNeedsQuestionnaire(_ context.Context, v bool) error {
	f.needs = v
	if f.events != nil {
		*f.events = append(*f.events, "needs")
	}
	return nil
}

func (f *fakeFlags) SetShowQuestionnairePrompt(_ context.Context, v bool) error {
	f.prompt = v
	if f.events != nil {
		*f.events = append(*f.events, "prompt")
	}
	return nil
}

type harness struct {
	ctrl      *Controller
	profiles  *fakeProfiles
	submitter *fakeSubmitter
	flags     *fakeFlags
	events    []string
	dismissed int
}

func newHarness(email string) *harness {
	h := &harness{}
	h.profiles = &fakeProfiles{byEmail: map[string]*profile.Profile{}, events: &h.events}
	h.submitter = &fakeSubmitter{}
	h.flags = &fakeFlags{needs: true, prompt: true, events: &h.events}
	h.ctrl = NewController(Options{
		Email:     email,
		Profiles:  h.profiles,
		Submitter: h.submitter,
		Flags:     h.flags,
		OnDismiss: func() {
			h.dismissed++
			h.events = append(h.events, "dismiss")
		},
	})
	return h
}

func fillRequired(s *Session) {
	s.Name = "Alex"
	s.Email = "alex@example.com"
	s.CurrentClimbingGrade = "5.11a"
	s.MaxBoulderGrade = "V5"
	s.Goal = "Send my project"
}

func TestActivateFetchesWhenEmailKnown(t *testing.T) {
	h := newHarness("alex@example.com")
	h.profiles.byEmail["alex@example.com"] = storedProfile()

	require.NoError(t, h.ctrl.Activate(context.Background()))

	assert.Equal(t, 1, h.profiles.fetchCalls)
	assert.Equal(t, "Alex Honnold", h.ctrl.Session().Name)
	assert.Equal(t, 5, h.ctrl.Session().Rating("Power"))
}

func TestActivateWithoutEmailUsesCachedProfile(t *testing.T) {
	h := newHarness("")
	h.profiles.current = &profile.Profile{Name: "Cached", Goal: "Cached goal"}

	require.NoError(t, h.ctrl.Activate(context.Background()))

	assert.Equal(t, 0, h.profiles.fetchCalls)
	assert.Equal(t, "Cached", h.ctrl.Session().Name)
	assert.Equal(t, "Cached goal", h.ctrl.Session().Goal)
}

func TestActivateWithNothingKeepsDefaults(t *testing.T) {
	h := newHarness("")
	require.NoError(t, h.ctrl.Activate(context.Background()))
	assert.Equal(t, NewSession(), h.ctrl.Session())
}

func TestActivateNoStoredProfileFillsIdentity(t *testing.T) {
	h := newHarness("new@example.com")
	require.NoError(t, h.ctrl.Activate(context.Background()))
	assert.Equal(t, "new@example.com", h.ctrl.Session().Email)
	assert.Equal(t, "", h.ctrl.Session().Name)
}

func TestActivateFetchErrorFallsBack(t *testing.T) {
	h := newHarness("alex@example.com")
	h.profiles.fetchErr = errors.New("offline")
	h.profiles.current = &profile.Profile{Name: "Cached"}

	err := h.ctrl.Activate(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "offline")
	assert.Equal(t, "Cached", h.ctrl.Session().Name)
}

func TestLoadProfile(t *testing.T) {
	ctx := context.Background()
	stored := &profile.Profile{Name: "Alex"}
	profiles := &fakeProfiles{
		byEmail: map[string]*profile.Profile{"alex@example.com": stored},
		current: &profile.Profile{Name: "Cached"},
	}

	p, err := LoadProfile(ctx, profiles, "")
	require.NoError(t, err)
	assert.Equal(t, "Cached", p.Name)
	assert.Zero(t, profiles.fetchCalls, "no email means no fetch")

	p, err = LoadProfile(ctx, profiles, "alex@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Alex", p.Name)

	profiles.fetchErr = errors.New("offline")
	p, err = LoadProfile(ctx, profiles, "alex@example.com")
	require.Error(t, err)
	assert.Equal(t, "Alex", p.Name, "falls back to the profile cached by the last fetch")
}

func TestSubmitMissingIdentity(t *testing.T) {
	h := newHarness("")
	fillRequired(h.ctrl.Session())

	err := h.ctrl.Submit(context.Background())

	require.ErrorIs(t, err, ErrMissingIdentity)
	assert.Empty(t, h.submitter.payloads, "store must not be contacted")
	assert.NotEmpty(t, h.ctrl.ErrorMessage())
	assert.False(t, h.ctrl.Submitting())
	assert.Equal(t, 0, h.dismissed)
}

func TestSubmitSuccessOrdering(t *testing.T) {
	h := newHarness("alex@example.com")
	h.profiles.current = &profile.Profile{ID: 7, Name: "Old"}
	fillRequired(h.ctrl.Session())
	h.ctrl.Session().SetRating("Power", 5)

	require.NoError(t, h.ctrl.Submit(context.Background()))

	require.Len(t, h.submitter.payloads, 1)
	payload := h.submitter.payloads[0]
	assert.Empty(t, payload.Missing())
	assert.Equal(t, "alex@example.com", payload[profile.KeyEmail])

	// Local profile reflects the save without a refetch.
	p := h.profiles.current
	assert.Equal(t, 7, p.ID)
	assert.Equal(t, "Alex", p.Name)
	assert.Equal(t, "Send my project", p.Goal)
	assert.Contains(t, p.AttributeRatings, "Power: 5")
	assert.False(t, p.UpdatedAt.IsZero())

	assert.False(t, h.flags.needs)
	assert.False(t, h.flags.prompt)
	assert.False(t, h.ctrl.Submitting())
	assert.Equal(t, 1, h.dismissed)
	assert.Equal(t, []string{"replace", "needs", "prompt", "dismiss"}, h.events)
}

func TestSubmitFailurePreservesSession(t *testing.T) {
	h := newHarness("alex@example.com")
	h.submitter.err = errors.New("503 from server")
	s := h.ctrl.Session()
	fillRequired(s)
	s.InjuryHistory = "shoulder"

	err := h.ctrl.Submit(context.Background())

	var subErr *SubmissionError
	require.ErrorAs(t, err, &subErr)
	assert.ErrorIs(t, err, ErrSubmissionFailed)
	assert.Contains(t, err.Error(), "503")
	assert.False(t, h.ctrl.Submitting())
	assert.NotEmpty(t, h.ctrl.ErrorMessage())
	assert.Equal(t, "shoulder", s.InjuryHistory)
	assert.Equal(t, "Alex", s.Name)
	assert.Nil(t, h.profiles.current)
	assert.True(t, h.flags.needs)
	assert.Equal(t, 0, h.dismissed)

	// Retry with the unchanged session succeeds.
	h.submitter.err = nil
	require.NoError(t, h.ctrl.Submit(context.Background()))
	assert.Empty(t, h.ctrl.ErrorMessage())
	assert.Equal(t, h.submitter.payloads[0], h.submitter.payloads[1])
}

func TestSubmitRejectsConcurrent(t *testing.T) {
	h := newHarness("alex@example.com")
	fillRequired(h.ctrl.Session())

	payload, err := h.ctrl.BeginSubmit()
	require.NoError(t, err)
	assert.True(t, h.ctrl.Submitting())
	assert.False(t, h.ctrl.IsSubmitEnabled())

	_, err = h.ctrl.BeginSubmit()
	assert.ErrorIs(t, err, ErrSubmitInFlight)
	assert.ErrorIs(t, h.ctrl.Submit(context.Background()), ErrSubmitInFlight)

	require.NoError(t, h.ctrl.CompleteSubmit(context.Background(), payload, nil))
	assert.Equal(t, 1, h.dismissed)
}

func TestSubmitRejectsIncomplete(t *testing.T) {
	h := newHarness("alex@example.com")
	s := h.ctrl.Session()
	fillRequired(s)
	s.Goal = "  "

	assert.False(t, h.ctrl.IsSubmitEnabled())
	assert.ErrorIs(t, h.ctrl.Submit(context.Background()), ErrSectionIncomplete)
	assert.Empty(t, h.submitter.payloads)
}

func TestDismissBeforeCompletion(t *testing.T) {
	h := newHarness("alex@example.com")
	fillRequired(h.ctrl.Session())

	payload, err := h.ctrl.BeginSubmit()
	require.NoError(t, err)
	h.ctrl.Dismiss()

	require.NoError(t, h.ctrl.CompleteSubmit(context.Background(), payload, nil))

	// Saved answers still reach the local profile; no dismissal callback.
	require.NotNil(t, h.profiles.current)
	assert.Equal(t, "Alex", h.profiles.current.Name)
	assert.Equal(t, 0, h.dismissed)
}

func TestDismissBeforeFailedCompletion(t *testing.T) {
	h := newHarness("alex@example.com")
	fillRequired(h.ctrl.Session())

	payload, err := h.ctrl.BeginSubmit()
	require.NoError(t, err)
	h.ctrl.Dismiss()

	err = h.ctrl.CompleteSubmit(context.Background(), payload, errors.New("boom"))
	assert.ErrorIs(t, err, ErrSubmissionFailed)
	assert.Empty(t, h.ctrl.ErrorMessage())
	assert.Nil(t, h.profiles.current)
}

func TestCompleteLater(t *testing.T) {
	h := newHarness("alex@example.com")
	h.flags.needs = false

	require.NoError(t, h.ctrl.CompleteLater(context.Background()))

	assert.True(t, h.flags.needs)
	assert.False(t, h.flags.prompt)
	assert.Equal(t, 1, h.dismissed)
	assert.True(t, h.ctrl.Dismissed())

	require.NoError(t, h.ctrl.CompleteLater(context.Background()))
	assert.Equal(t, 1, h.dismissed, "dismiss fires once")
}

func TestCanAdvanceDelegatesToSession(t *testing.T) {
	h := newHarness("alex@example.com")
	assert.False(t, h.ctrl.CanAdvance())
	h.ctrl.Session().Name = "Alex"
	h.ctrl.Session().Email = "alex@example.com"
	assert.True(t, h.ctrl.CanAdvance())
}

package questionnaire

import (
	"context"
	"errors"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/cragcoach/internal/profile"
	qn "github.com/abhisek/cragcoach/internal/questionnaire"
	"github.com/abhisek/cragcoach/internal/router"
	"github.com/abhisek/cragcoach/internal/screen"
	"github.com/abhisek/cragcoach/internal/ui/layout"
)

// SubmittedMsg reports the outcome of a submission. It is delivered to
// whichever screen is active when the submission finishes.
type SubmittedMsg struct {
	Err error
}

// profileLoadedMsg carries the profile fetched when the screen opens.
type profileLoadedMsg struct {
	Profile *profile.Profile
	Err     error
}

// Screen is the paged questionnaire form.
type Screen struct {
	ctrl   *qn.Controller
	pages  [qn.SectionCount][]field
	focus  int
	loaded bool
	notice string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)
var _ screen.Closer = (*Screen)(nil)

// New creates the questionnaire screen with a fresh controller.
func New(opts qn.Options) *Screen {
	return &Screen{
		ctrl:  qn.NewController(opts),
		pages: buildPages(),
	}
}

// Init loads the stored profile in the background.
func (s *Screen) Init() tea.Cmd {
	ctrl := s.ctrl
	return func() tea.Msg {
		p, err := ctrl.RefreshProfile(context.Background())
		return profileLoadedMsg{Profile: p, Err: err}
	}
}

func (s *Screen) Title() string {
	return "Training Questionnaire"
}

// Close discards the session. A submission still in flight keeps running.
func (s *Screen) Close() {
	s.ctrl.Dismiss()
}

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.ctrl.Submitting() {
		return []layout.KeyHint{{Key: "Esc", Description: "Close"}}
	}
	hints := []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "←/→", Description: "Change"},
	}
	if s.session().IsLast() {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Submit"})
	} else {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Next page"})
	}
	if !s.session().IsFirst() {
		hints = append(hints, layout.KeyHint{Key: "PgUp", Description: "Back"})
	}
	return append(hints,
		layout.KeyHint{Key: "Ctrl+L", Description: "Later"},
		layout.KeyHint{Key: "Esc", Description: "Close"},
	)
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case profileLoadedMsg:
		return s.handleLoaded(msg)

	case SubmittedMsg:
		if msg.Err == nil {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.loaded {
		return s, s.current().update(msg)
	}
	return s, nil
}

func (s *Screen) handleLoaded(msg profileLoadedMsg) (screen.Screen, tea.Cmd) {
	s.ctrl.ApplyLoaded(msg.Profile)
	if msg.Err != nil {
		s.notice = "Couldn't refresh your profile. Showing your saved answers."
	}
	sess := s.session()
	for _, page := range s.pages {
		for _, f := range page {
			f.load(sess)
		}
	}
	s.loaded = true
	s.focus = 0
	return s, s.current().focus()
}

func (s *Screen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if !s.loaded || s.ctrl.Submitting() {
		return s, nil
	}

	switch msg.String() {
	case "tab", "down":
		return s, s.moveFocus(1)
	case "shift+tab", "up":
		return s, s.moveFocus(-1)
	case "pgdown", "ctrl+n":
		return s.nextPage()
	case "pgup", "ctrl+p":
		return s.prevPage()
	case "enter":
		if s.session().IsLast() {
			return s.submit()
		}
		return s.nextPage()
	case "ctrl+s":
		if s.session().IsLast() {
			return s.submit()
		}
		return s, nil
	case "ctrl+l":
		return s.completeLater()
	}

	f := s.current()
	cmd := f.update(msg)
	f.store(s.session())
	s.notice = ""
	return s, cmd
}

func (s *Screen) nextPage() (screen.Screen, tea.Cmd) {
	if !s.session().Advance() {
		if s.session().Current() == qn.SectionPersonalInfo {
			s.notice = "Enter your name and email to continue."
		}
		return s, nil
	}
	s.notice = ""
	return s, s.resetFocus()
}

func (s *Screen) prevPage() (screen.Screen, tea.Cmd) {
	if !s.session().Retreat() {
		return s, nil
	}
	s.notice = ""
	return s, s.resetFocus()
}

func (s *Screen) submit() (screen.Screen, tea.Cmd) {
	payload, err := s.ctrl.BeginSubmit()
	switch {
	case errors.Is(err, qn.ErrSectionIncomplete):
		s.notice = "Add your grades and goal on the Climbing Experience page first."
		return s, nil
	case err != nil:
		// The controller exposes the user-facing message.
		return s, nil
	}

	s.notice = ""
	ctrl := s.ctrl
	return s, func() tea.Msg {
		ctx := context.Background()
		return SubmittedMsg{Err: ctrl.CompleteSubmit(ctx, payload, ctrl.Deliver(ctx, payload))}
	}
}

func (s *Screen) completeLater() (screen.Screen, tea.Cmd) {
	if err := s.ctrl.CompleteLater(context.Background()); err != nil {
		s.notice = "Couldn't save your reminder preference."
		return s, nil
	}
	return s, func() tea.Msg { return router.PopScreenMsg{} }
}

func (s *Screen) session() *qn.Session {
	return s.ctrl.Session()
}

func (s *Screen) fields() []field {
	return s.pages[s.session().Current()]
}

func (s *Screen) current() field {
	return s.fields()[s.focus]
}

// moveFocus shifts focus by delta, wrapping within the page.
func (s *Screen) moveFocus(delta int) tea.Cmd {
	fields := s.fields()
	s.current().blur()
	s.focus = (s.focus + delta + len(fields)) % len(fields)
	return s.current().focus()
}

// resetFocus focuses the first field of the current page.
func (s *Screen) resetFocus() tea.Cmd {
	for _, page := range s.pages {
		for _, f := range page {
			f.blur()
		}
	}
	s.focus = 0
	return s.current().focus()
}

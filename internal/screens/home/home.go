package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/cragcoach/internal/logger"
	"github.com/abhisek/cragcoach/internal/profile"
	qn "github.com/abhisek/cragcoach/internal/questionnaire"
	"github.com/abhisek/cragcoach/internal/ratings"
	"github.com/abhisek/cragcoach/internal/router"
	"github.com/abhisek/cragcoach/internal/screen"
	"github.com/abhisek/cragcoach/internal/screens/history"
	"github.com/abhisek/cragcoach/internal/screens/profileview"
	qscreen "github.com/abhisek/cragcoach/internal/screens/questionnaire"
	"github.com/abhisek/cragcoach/internal/store"
	"github.com/abhisek/cragcoach/internal/ui/components"
	"github.com/abhisek/cragcoach/internal/ui/layout"
	"github.com/abhisek/cragcoach/internal/ui/theme"
)

// FlagSource reads the questionnaire reminder flags.
type FlagSource interface {
	Get(ctx context.Context) (store.Flags, error)
}

// Options wires the home screen.
type Options struct {
	// Questionnaire is the template used for every questionnaire opened
	// from home. Its Profiles and Flags also back the home screen itself.
	Questionnaire qn.Options
	Flags         FlagSource
	// Submissions backs the history screen. Optional.
	Submissions store.SubmissionRepo
	Logger      *logger.Logger
}

// homeDataMsg carries the state loaded for the home screen.
type homeDataMsg struct {
	Flags   store.Flags
	Profile *profile.Profile
}

// laterDoneMsg reports the outcome of deferring the questionnaire.
type laterDoneMsg struct {
	Err error
}

const (
	menuFill = iota
	menuLater
	menuProfile
	menuHistory
	menuQuit
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	opts    Options
	log     *logger.Logger
	menu    components.Menu
	loaded  bool
	flags   store.Flags
	profile *profile.Profile
	notice  string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.Resumer = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(opts Options) *HomeScreen {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	h := &HomeScreen{
		opts:  opts,
		log:   log.With("component", "home"),
		flags: store.DefaultFlags,
	}
	h.rebuildMenu()
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.load()
}

// Resume reloads flags and profile after a screen above home closes.
func (h *HomeScreen) Resume() tea.Cmd {
	return h.load()
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Select"},
		{Key: "Enter", Description: "Open"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// load fetches flags and the stored profile. Failures fall back to the
// defaults and the cached profile.
func (h *HomeScreen) load() tea.Cmd {
	opts := h.opts
	log := h.log
	return func() tea.Msg {
		ctx := context.Background()

		flags := store.DefaultFlags
		if opts.Flags != nil {
			f, err := opts.Flags.Get(ctx)
			if err != nil {
				log.Warn("load questionnaire flags", "error", err)
			} else {
				flags = f
			}
		}

		var p *profile.Profile
		if opts.Questionnaire.Profiles != nil {
			var err error
			p, err = qn.LoadProfile(ctx, opts.Questionnaire.Profiles, opts.Questionnaire.Email)
			if err != nil {
				log.Warn("load profile", "error", err)
			}
		}
		return homeDataMsg{Flags: flags, Profile: p}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case homeDataMsg:
		h.loaded = true
		h.flags = msg.Flags
		h.profile = msg.Profile
		h.rebuildMenu()
		return h, nil

	case laterDoneMsg:
		if msg.Err != nil {
			h.notice = "Couldn't save your reminder preference."
			return h, nil
		}
		h.notice = ""
		return h, h.load()

	case qscreen.SubmittedMsg:
		// A submission that finished after its screen was closed.
		if msg.Err == nil {
			h.notice = "Your answers were saved."
		}
		return h, h.load()
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

// showPrompt reports whether the questionnaire reminder is active.
func (h *HomeScreen) showPrompt() bool {
	return h.flags.NeedsQuestionnaire && h.flags.ShowQuestionnairePrompt
}

func (h *HomeScreen) rebuildMenu() {
	fillLabel := "Take questionnaire"
	if h.profile != nil {
		fillLabel = "Update answers"
	}
	selected := h.menu.Selected

	items := []components.MenuItem{
		menuFill: {Label: fillLabel, Hint: "six short pages", Action: func() tea.Cmd {
			s := qscreen.New(h.opts.Questionnaire)
			return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
		}},
		menuLater: {Label: "Remind me later", Hint: "stays on your list", Disabled: !h.showPrompt(), Action: h.completeLater},
		menuProfile: {Label: "View profile", Hint: "your answers at a glance", Disabled: h.profile == nil, Action: func() tea.Cmd {
			s := profileview.New(h.profile)
			return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
		}},
		menuHistory: {Label: "Submission history", Hint: "past saves and failures", Disabled: h.opts.Submissions == nil, Action: func() tea.Cmd {
			s := history.New(h.opts.Submissions)
			return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
		}},
		menuQuit: {Label: "Quit", Action: func() tea.Cmd { return tea.Quit }},
	}

	h.menu = components.NewMenu(items)
	if selected > 0 && selected < len(items) && !items[selected].Disabled {
		h.menu.Selected = selected
	}
}

func (h *HomeScreen) completeLater() tea.Cmd {
	ctrl := qn.NewController(h.opts.Questionnaire)
	return func() tea.Msg {
		return laterDoneMsg{Err: ctrl.CompleteLater(context.Background())}
	}
}

func (h *HomeScreen) variant() CragVariant {
	switch {
	case !h.loaded:
		return CragIdle
	case h.flags.NeedsQuestionnaire:
		return CragReminder
	default:
		return CragSummit
	}
}

func (h *HomeScreen) summary() *profileSummary {
	if h.profile == nil {
		return nil
	}
	attrs := ratings.Defaults()
	qn.ResolveRatings(h.profile).Apply(attrs)
	return &profileSummary{
		Name:       h.profile.Name,
		Grade:      h.profile.CurrentClimbingGrade,
		Boulder:    h.profile.MaxBoulderGrade,
		Goal:       h.profile.Goal,
		Strengths:  ratings.Strengths(attrs),
		Weaknesses: ratings.Weaknesses(attrs),
	}
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; header and footer take about 8 more rows
	compact := layout.IsCompactHeight(height+8) || width < 100
	cw := contentWidth(width)

	labels := make([]string, len(h.menu.Items))
	disabled := make(map[int]bool)
	for i, item := range h.menu.Items {
		labels[i] = item.Label
		disabled[i] = item.Disabled
	}

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if !compact {
		sections = append(sections, centered(cw, RenderCrag(h.variant())))
	}
	sections = append(sections, renderStatusCard(h.summary(), cw, compact))

	switch {
	case h.showPrompt():
		sections = append(sections, renderPromptBanner(cw))
	case h.flags.NeedsQuestionnaire:
		sections = append(sections, renderPendingNote(cw))
	}
	if h.notice != "" {
		sections = append(sections, centered(cw, h.notice))
	}

	if compact {
		sections = append(sections, renderMenuCompact(labels, h.menu.Selected, disabled, cw))
	} else {
		sections = append(sections, renderMenu(labels, h.menu.Selected, disabled, cw))
		if hint := h.menu.SelectedHint(); hint != "" {
			sections = append(sections, centered(cw, theme.Hint.Render(hint)))
		}
	}

	return renderCragFrame(strings.Join(sections, "\n\n"), width, height)
}

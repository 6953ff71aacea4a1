package profileview

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cragcoach/internal/profile"
	qn "github.com/abhisek/cragcoach/internal/questionnaire"
	"github.com/abhisek/cragcoach/internal/ratings"
	"github.com/abhisek/cragcoach/internal/router"
	"github.com/abhisek/cragcoach/internal/screen"
	"github.com/abhisek/cragcoach/internal/ui/components"
	"github.com/abhisek/cragcoach/internal/ui/layout"
	"github.com/abhisek/cragcoach/internal/ui/theme"
)

const maxContentWidth = 80

// ProfileScreen shows the stored answers read-only.
type ProfileScreen struct {
	profile *profile.Profile
	offset  int
}

var _ screen.Screen = (*ProfileScreen)(nil)
var _ screen.KeyHintProvider = (*ProfileScreen)(nil)

// New creates a ProfileScreen for p. p may be nil.
func New(p *profile.Profile) *ProfileScreen {
	return &ProfileScreen{profile: p.Clone()}
}

func (s *ProfileScreen) Init() tea.Cmd {
	return nil
}

func (s *ProfileScreen) Title() string {
	return "Profile"
}

func (s *ProfileScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Enter", Description: "Done"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ProfileScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.offset > 0 {
				s.offset--
			}
		case "down", "j":
			s.offset++
		}
	}
	return s, nil
}

func (s *ProfileScreen) View(width, height int) string {
	if s.profile == nil {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No profile yet. Take the questionnaire first!")
	}

	cw := components.ContentWidth(width, maxContentWidth)
	lines := strings.Split(s.render(cw), "\n")

	// The frame border takes two rows.
	visible := max(1, height-2)
	maxOffset := max(0, len(lines)-visible)
	if s.offset > maxOffset {
		s.offset = maxOffset
	}
	lines = lines[s.offset:min(len(lines), s.offset+visible)]

	return components.Frame(strings.Join(lines, "\n"), width, height)
}

func (s *ProfileScreen) render(cw int) string {
	p := s.profile
	var b strings.Builder

	b.WriteString(theme.Title.Render(orDash(p.Name)))
	if email := p.EmailValue(); email != "" {
		b.WriteString("  " + theme.Hint.Render(email))
	}
	b.WriteString("\n")
	if !p.UpdatedAt.IsZero() {
		b.WriteString(theme.Hint.Render("Updated " + p.UpdatedAt.Local().Format("Jan 02, 2006 15:04")))
		b.WriteString("\n")
	}

	section(&b, qn.SectionClimbingExperience.String(),
		row("Current grade", p.CurrentClimbingGrade),
		row("Max boulder", p.MaxBoulderGrade),
		row("Goal", p.Goal),
		row("Years training", p.TrainingExperience),
		row("Redpointing", p.RedpointingExperience),
	)

	attrs := ratings.Defaults()
	res := qn.ResolveRatings(p)
	res.Apply(attrs)
	rows := make([]string, 0, len(attrs)+3)
	for _, a := range attrs {
		rows = append(rows, row(a.Name, gauge(a.Rating)))
	}
	if res.Source == ratings.SourceLegacy {
		rows = append(rows, theme.Hint.Render("  Ratings estimated from your earlier strengths and weaknesses."))
	}
	rows = append(rows,
		row("Preferred style", p.PreferredClimbingStyle),
		row("Indoor vs outdoor", p.IndoorVsOutdoor),
	)
	section(&b, qn.SectionAbilitiesStyle.String(), rows...)

	section(&b, qn.SectionTrainingSetup.String(),
		row("Facilities", p.TrainingFacilities),
		row("General fitness", p.GeneralFitness),
		row("Access to coaches", p.AccessToCoaches),
		row("Cross-training", p.TimeForCrossTraining),
	)

	section(&b, qn.SectionHealthRecovery.String(),
		row("Injury history", p.InjuryHistory),
		row("Sleep", p.SleepRecovery),
		row("Work-life balance", p.WorkLifeBalance),
		row("Motivation", p.MotivationLevel),
	)

	section(&b, qn.SectionAdditionalInfo.String(),
		row("Height", p.Height),
		row("Weight", p.Weight),
		row("Age", p.Age),
		row("Notes", p.AdditionalNotes),
	)

	return lipgloss.NewStyle().Width(cw).Render(b.String())
}

func section(b *strings.Builder, title string, rows ...string) {
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render(title))
	b.WriteString("\n")
	for _, r := range rows {
		b.WriteString(r)
		b.WriteString("\n")
	}
}

func row(label, value string) string {
	return theme.Label.Width(22).Render("  "+label) + theme.Body.Render(orDash(value))
}

func gauge(r int) string {
	r = ratings.Clamp(r)
	return strings.Repeat("●", r) + strings.Repeat("○", ratings.MaxRating-r) + fmt.Sprintf("  %d/%d", r, ratings.MaxRating)
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "—"
	}
	return s
}

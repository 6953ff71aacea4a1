package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cragcoach/internal/profile"
	"github.com/abhisek/cragcoach/internal/screen"
	"github.com/abhisek/cragcoach/internal/store"
	"github.com/abhisek/cragcoach/internal/ui/layout"
	"github.com/abhisek/cragcoach/internal/ui/theme"
)

// listLimit caps how many submissions are loaded.
const listLimit = 50

type historyLoadedMsg struct {
	Submissions []store.Submission
	Err         error
}

// HistoryScreen lists past submission attempts, newest first.
type HistoryScreen struct {
	repo        store.SubmissionRepo
	submissions []store.Submission
	selected    int
	expanded    map[int]bool
	loaded      bool
	errMsg      string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(repo store.SubmissionRepo) *HistoryScreen {
	return &HistoryScreen{
		repo:     repo,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	repo := s.repo
	return func() tea.Msg {
		subs, err := repo.Recent(context.Background(), listLimit)
		return historyLoadedMsg{Submissions: subs, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "Submission History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.submissions = msg.Submissions
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.submissions)-1 {
				s.selected++
			}
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.submissions) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  Nothing submitted yet.")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, sub := range s.submissions {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		status, style := "✓ saved", theme.Saved
		if !sub.Success {
			status, style = "✗ failed", theme.Failed
		}

		line := fmt.Sprintf("%s%s  %-8s  %s",
			prefix, sub.CreatedAt.Local().Format("Jan 02, 2006 15:04"), status, sub.Target)

		if i == s.selected {
			style = style.Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			for _, d := range details(sub) {
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					lipgloss.NewStyle().Foreground(theme.TextDim).Render("    "+d)))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}

// details lists the expanded lines for one submission.
func details(sub store.Submission) []string {
	out := []string{
		fmt.Sprintf("%s <%s>", sub.Payload[profile.KeyName], sub.Email),
		fmt.Sprintf("Grade %s · Boulder %s", sub.Payload[profile.KeyCurrentClimbingGrade], sub.Payload[profile.KeyMaxBoulderGrade]),
	}
	if sub.Error != "" {
		out = append(out, "Error: "+sub.Error)
	}
	return append(out, "ID "+sub.UUID)
}

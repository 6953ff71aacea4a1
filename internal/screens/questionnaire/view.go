package questionnaire

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/cragcoach/internal/ui/components"
	"github.com/abhisek/cragcoach/internal/ui/theme"
)

const maxContentWidth = 90

// View renders the current page.
func (s *Screen) View(width, height int) string {
	cw := components.ContentWidth(width, maxContentWidth)
	if !s.loaded {
		return components.Frame(theme.Hint.Render("Loading your profile…"), width, height)
	}

	sess := s.session()
	var b strings.Builder

	b.WriteString(theme.Title.Render(sess.Current().String()))
	b.WriteString("  ")
	b.WriteString(theme.Hint.Render(sess.PageLabel()))
	b.WriteString("\n")
	b.WriteString(components.NewSectionTrack(int(sess.Current()), sess.Count(), cw).View())
	b.WriteString("\n\n")

	// Title, progress, buttons, messages and the frame take about 12 rows.
	b.WriteString(s.renderFields(cw, max(3, height-12)))
	b.WriteString("\n\n")
	b.WriteString(s.renderButtons())

	if msg := s.ctrl.ErrorMessage(); msg != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.ErrorText.Render(msg))
	}
	if s.notice != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render(s.notice))
	}

	content := lipgloss.NewStyle().Width(cw).Render(b.String())
	return components.Frame(content, width, height)
}

// renderFields renders as many rows as fit in maxLines, keeping the focused
// row visible.
func (s *Screen) renderFields(width, maxLines int) string {
	fields := s.fields()
	rows := make([]string, len(fields))
	for i, f := range fields {
		rows[i] = f.view(width)
	}

	start, end := 0, len(rows)
	if total := linesOf(rows, 0, len(rows)); total > maxLines {
		start, end = s.focus, s.focus+1
		for end < len(rows) && linesOf(rows, start, end+1) <= maxLines {
			end++
		}
		for start > 0 && linesOf(rows, start-1, end) <= maxLines {
			start--
		}
	}

	var out []string
	if start > 0 {
		out = append(out, theme.Hint.Render("  ↑ more"))
	}
	out = append(out, rows[start:end]...)
	if end < len(rows) {
		out = append(out, theme.Hint.Render("  ↓ more"))
	}
	return strings.Join(out, "\n")
}

func linesOf(rows []string, from, to int) int {
	n := 0
	for _, r := range rows[from:to] {
		n += lipgloss.Height(r)
	}
	return n
}

func (s *Screen) renderButtons() string {
	sess := s.session()
	var buttons []string
	if !sess.IsFirst() {
		buttons = append(buttons, components.NewButton("Back", "PgUp", true).View())
	}
	switch {
	case !sess.IsLast():
		buttons = append(buttons, components.NewButton("Next", "PgDn", s.ctrl.CanAdvance()).View())
	case s.ctrl.Submitting():
		buttons = append(buttons, components.NewButton("Submitting…", "", false).View())
	default:
		buttons = append(buttons, components.NewButton("Submit", "Ctrl+S", s.ctrl.IsSubmitEnabled()).View())
	}
	return strings.Join(buttons, "   ")
}

package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/cragcoach/internal/screens/welcome"
	"github.com/abhisek/cragcoach/internal/ui/theme"
)

const titleCompact = "C · R · A · G · C · O · A · C · H"

// contentWidth returns the uniform inner width used for all sections.
func contentWidth(frameWidth int) int {
	w := frameWidth - 6
	if w > 64 {
		w = 64
	}
	if w < 20 {
		w = 20
	}
	return w
}

func centered(cw int, s string) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(s)
}

// renderTitle returns the banner or the compact fallback.
func renderTitle(cw int, compact bool) string {
	if compact {
		return centered(cw, lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			Render(titleCompact))
	}
	return centered(cw, welcome.RenderBanner(cw))
}

// profileSummary is what the status card shows about the stored answers.
type profileSummary struct {
	Name       string
	Grade      string
	Boulder    string
	Goal       string
	Strengths  string
	Weaknesses string
}

// renderStatusCard renders the climber summary in a bordered box.
func renderStatusCard(sum *profileSummary, cw int, compact bool) string {
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	var body string
	if sum == nil {
		body = dim.Render("No profile yet")
	} else {
		grades := fmt.Sprintf("%s  %s",
			theme.Grade.Render("▲ "+orDash(sum.Grade)),
			theme.Grade.Render("◆ "+orDash(sum.Boulder)),
		)
		lines := []string{grades}
		if !compact {
			if sum.Goal != "" {
				lines = append(lines, theme.Body.Render(truncate("Goal: "+sum.Goal, cw-6)))
			}
			lines = append(lines, fmt.Sprintf("%s  %s",
				theme.Strength.Render("+ "+orDash(sum.Strengths)),
				theme.Weakness.Render("− "+orDash(sum.Weaknesses)),
			))
		}
		body = strings.Join(lines, "\n")
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(body)
}

// renderPromptBanner invites the climber to fill the questionnaire.
func renderPromptBanner(cw int) string {
	return centered(cw, lipgloss.NewStyle().
		Foreground(theme.Accent).
		Render("⚠ Answer a few questions to get a training plan that fits you"))
}

// renderPendingNote renders a dim one-line reminder once the prompt was deferred.
func renderPendingNote(cw int) string {
	return centered(cw, theme.Hint.Render("Questionnaire pending, pick it up anytime"))
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 24

// renderMenu renders each menu item as a fixed-width button.
func renderMenu(labels []string, selected int, disabled map[int]bool, cw int) string {
	base := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	selectedBtn := base.
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.Primary).
		BorderForeground(theme.Primary)
	normalBtn := base.Foreground(theme.Text)
	disabledBtn := base.Foreground(theme.TextDim)

	var buttons []string
	for i, label := range labels {
		switch {
		case disabled[i]:
			buttons = append(buttons, disabledBtn.Render(label))
		case i == selected:
			buttons = append(buttons, selectedBtn.Render("▸ "+label))
		default:
			buttons = append(buttons, normalBtn.Render(label))
		}
	}
	return centered(cw, strings.Join(buttons, "\n"))
}

// renderMenuCompact renders menu items as plain lines for short terminals
// where bordered buttons would overflow.
func renderMenuCompact(labels []string, selected int, disabled map[int]bool, cw int) string {
	var lines []string
	for i, label := range labels {
		switch {
		case disabled[i]:
			lines = append(lines, theme.Disabled.Render("   "+label))
		case i == selected:
			lines = append(lines, lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Primary).
				Bold(true).
				Render(" ▸ "+label+" "))
		default:
			lines = append(lines, theme.Unselected.Render("   "+label))
		}
	}
	return centered(cw, strings.Join(lines, "\n"))
}

// renderCragFrame wraps content in a double-border frame centered within
// the given dimensions.
func renderCragFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "—"
	}
	return s
}

func truncate(s string, n int) string {
	r := []rune(s)
	if n < 2 || len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

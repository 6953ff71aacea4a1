package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cragcoach/internal/ui/theme"
)

const bannerArt = `┏━╸┏━┓┏━┓┏━╸┏━╸┏━┓┏━┓┏━╸╻ ╻
┃  ┣┳┛┣━┫┃╺┓┃  ┃ ┃┣━┫┃  ┣━┫
┗━╸╹┗╸╹ ╹┗━┛┗━╸┗━┛╹ ╹┗━╸╹ ╹`

const bannerCompact = "C R A G C O A C H"

// RenderBanner returns the Cragcoach banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 32 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 32 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}

package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cragcoach/internal/ui/theme"
)

// CragVariant selects which crag art to display.
type CragVariant int

const (
	CragIdle     CragVariant = iota // Profile state unknown
	CragReminder                    // Questionnaire still needed
	CragSummit                      // Answers on record
)

const cragIdle = `    /\
   /  \  /\
  /    \/  \
 /__________\`

const cragReminder = `    /\     !
   /  \  /\
  /    \/  \
 /__________\`

const cragSummit = `    |>
    /\
   /  \  /\
  /    \/  \
 /__________\`

// RenderCrag returns the crag art for the given variant.
func RenderCrag(variant CragVariant) string {
	art := cragIdle
	fg := theme.Secondary

	switch variant {
	case CragReminder:
		art = cragReminder
		fg = theme.Accent
	case CragSummit:
		art = cragSummit
		fg = theme.Success
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}

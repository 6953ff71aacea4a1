package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette: granite and chalk with a few route-tape accents.
var (
	Primary   = lipgloss.Color("#F59E0B") // Amber tape
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#EF4444") // Red tape
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // Chalk
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#111827") // Granite
	BgCard    = lipgloss.Color("#1F2937") // Dark granite
	Border    = lipgloss.Color("#374151") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Label = lipgloss.NewStyle().
		Foreground(Text).
		Bold(true)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	ErrorText = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	Banner = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Accent).
		Foreground(Text).
		Padding(0, 1)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Disabled = lipgloss.NewStyle().
			Foreground(Border)
)

// Climbing profile
var (
	// Grade highlights route and boulder grades.
	Grade = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	Strength = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	Weakness = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	Saved  = lipgloss.NewStyle().Foreground(Success)
	Failed = lipgloss.NewStyle().Foreground(Error)
)

// Components
var (
	// TrackDone and TrackTodo fill the questionnaire section track.
	TrackDone = lipgloss.NewStyle().
			Background(Secondary)

	TrackTodo = lipgloss.NewStyle().
			Background(Border)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(BgDark).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Foreground(TextDim).
			Faint(true).
			Padding(0, 2)
)

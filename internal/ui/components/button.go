package components

import (
	"github.com/abhisek/cragcoach/internal/ui/theme"
)

// Button is a page action such as Back, Next or Submit. Key is the shortcut
// shown next to the label; the screen owns the key handling.
type Button struct {
	Label   string
	Key     string
	Enabled bool
}

// NewButton creates a new button.
func NewButton(label, key string, enabled bool) Button {
	return Button{Label: label, Key: key, Enabled: enabled}
}

// View renders the button. Disabled buttons drop the shortcut.
func (b Button) View() string {
	if !b.Enabled {
		return theme.ButtonInactive.Render(b.Label)
	}
	s := theme.ButtonActive.Render("▸ " + b.Label)
	if b.Key != "" {
		s += " " + theme.Hint.Render(b.Key)
	}
	return s
}

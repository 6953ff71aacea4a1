package components

import (
	"unicode/utf8"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/cragcoach/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with a label and Cragcoach styling.
type TextInput struct {
	Label       string
	Model       textinput.Model
	NumericOnly bool

	// limit is the configured character limit; 0 means none.
	limit int
}

// NewTextInput creates a new blurred text input. A charLimit of 0 means no
// limit.
func NewTextInput(label, placeholder string, numericOnly bool, charLimit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "› "
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}

	return TextInput{
		Label:       label,
		Model:       ti,
		NumericOnly: numericOnly,
		limit:       max(charLimit, 0),
	}
}

// Focus focuses the input and returns the cursor blink command.
func (t *TextInput) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur removes focus.
func (t *TextInput) Blur() {
	t.Model.Blur()
}

// Update handles messages. Non-digit characters are dropped when
// NumericOnly is set.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if t.NumericOnly {
		if kmsg, ok := msg.(tea.KeyMsg); ok {
			key := kmsg.String()
			if len(key) == 1 {
				if key[0] < '0' || key[0] > '9' {
					return t, nil
				}
			}
		}
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the label and input on one line.
func (t TextInput) View(width int) string {
	t.Model.SetWidth(max(10, width-labelWidth-4))
	return fieldLabel(t.Label, t.Model.Focused()) + t.Model.View()
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// SetValue replaces the input value. A value longer than the character
// limit raises the limit to fit it, so loaded text is never truncated.
func (t *TextInput) SetValue(v string) {
	if t.limit > 0 {
		t.Model.CharLimit = max(t.limit, utf8.RuneCountInString(v))
	}
	t.Model.SetValue(v)
}

// labelWidth is the column reserved for form labels so inputs line up.
const labelWidth = 28

// fieldLabel renders a form label, highlighted when focused.
func fieldLabel(label string, focused bool) string {
	if label == "" {
		return ""
	}
	if focused {
		return theme.Selected.Width(labelWidth).Render("▸ " + label)
	}
	return theme.Label.Width(labelWidth).Render("  " + label)
}

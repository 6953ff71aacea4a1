package components

import (
	"fmt"
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/cragcoach/internal/ui/theme"
)

// unsetLabel stands in for an empty picker value.
const unsetLabel = "not set"

// Picker selects exactly one of a fixed list of options with left/right.
type Picker struct {
	Label    string
	Options  []string
	Selected int
	focused  bool
}

// NewPicker creates a picker with value selected. A value not among the
// options, including "", is kept as an extra first option so it is never
// lost.
func NewPicker(label string, options []string, value string) Picker {
	p := Picker{Label: label, Options: slices.Clone(options)}
	p.SetValue(value)
	return p
}

// SetValue selects v, adding it as the first option when unknown. An empty
// v becomes an explicit unset entry.
func (p *Picker) SetValue(v string) {
	if i := slices.Index(p.Options, v); i >= 0 {
		p.Selected = i
		return
	}
	p.Options = append([]string{v}, p.Options...)
	p.Selected = 0
}

// Value returns the selected option, or "" when there are no options.
func (p Picker) Value() string {
	if p.Selected < 0 || p.Selected >= len(p.Options) {
		return ""
	}
	return p.Options[p.Selected]
}

func (p *Picker) Focus() tea.Cmd { p.focused = true; return nil }
func (p *Picker) Blur()          { p.focused = false }

// Update cycles the selection.
func (p Picker) Update(msg tea.Msg) (Picker, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(p.Options) == 0 {
		return p, nil
	}
	switch kmsg.String() {
	case "left", "h":
		p.Selected = (p.Selected - 1 + len(p.Options)) % len(p.Options)
	case "right", "l", "space":
		p.Selected = (p.Selected + 1) % len(p.Options)
	}
	return p, nil
}

// View renders the label and the current option between arrows.
func (p Picker) View() string {
	value := theme.Body.Render(p.Value())
	if p.Value() == "" {
		value = theme.Hint.Render(unsetLabel)
	}
	if p.focused {
		cur := theme.Selected.Render(p.Value())
		if p.Value() == "" {
			cur = theme.Hint.Render(unsetLabel)
		}
		value = theme.Hint.Render("◂ ") + cur + theme.Hint.Render(" ▸")
	}
	return fieldLabel(p.Label, p.focused) + value
}

// Checklist toggles any number of options. Left/right move the cursor and
// space toggles the option under it.
type Checklist struct {
	Label   string
	Options []string
	Checked map[string]bool
	Cursor  int
	focused bool
}

// NewChecklist creates a checklist with the named options checked. Names not
// among the options are ignored.
func NewChecklist(label string, options []string, checked []string) Checklist {
	c := Checklist{Label: label, Options: options}
	c.SetChecked(checked)
	return c
}

// SetChecked replaces the checked set.
func (c *Checklist) SetChecked(names []string) {
	c.Checked = make(map[string]bool, len(names))
	for _, n := range names {
		if slices.Contains(c.Options, n) {
			c.Checked[n] = true
		}
	}
}

// Values returns the checked options in option order.
func (c Checklist) Values() []string {
	var out []string
	for _, o := range c.Options {
		if c.Checked[o] {
			out = append(out, o)
		}
	}
	return out
}

func (c *Checklist) Focus() tea.Cmd { c.focused = true; return nil }
func (c *Checklist) Blur()          { c.focused = false }

// Update moves the cursor and toggles options.
func (c Checklist) Update(msg tea.Msg) (Checklist, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(c.Options) == 0 {
		return c, nil
	}
	switch kmsg.String() {
	case "left", "h":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "right", "l":
		if c.Cursor < len(c.Options)-1 {
			c.Cursor++
		}
	case "space", "x":
		name := c.Options[c.Cursor]
		if c.Checked[name] {
			delete(c.Checked, name)
		} else {
			c.Checked[name] = true
		}
	}
	return c, nil
}

// View renders the label followed by the options, wrapped to width.
func (c Checklist) View(width int) string {
	var b strings.Builder
	b.WriteString(fieldLabel(c.Label, c.focused))

	avail := max(20, width-labelWidth)
	lineLen := 0
	for i, o := range c.Options {
		box := "[ ]"
		if c.Checked[o] {
			box = "[x]"
		}
		item := fmt.Sprintf("%s %s", box, o)
		if lineLen > 0 && lineLen+len(item)+2 > avail {
			b.WriteString("\n" + strings.Repeat(" ", labelWidth))
			lineLen = 0
		}
		if lineLen > 0 {
			b.WriteString("  ")
			lineLen += 2
		}
		switch {
		case c.focused && i == c.Cursor:
			b.WriteString(theme.Selected.Underline(true).Render(item))
		case c.Checked[o]:
			b.WriteString(theme.Selected.Render(item))
		default:
			b.WriteString(theme.Body.Render(item))
		}
		lineLen += len(item)
	}
	return b.String()
}

// Stepper edits a bounded integer with left/right or digit keys.
type Stepper struct {
	Label    string
	Value    int
	Min, Max int
	// Format renders the value; nil renders a dot gauge.
	Format  func(v int) string
	focused bool
}

// NewStepper creates a stepper holding value clamped to [lo, hi].
func NewStepper(label string, value, lo, hi int, format func(int) string) Stepper {
	s := Stepper{Label: label, Min: lo, Max: hi, Format: format}
	s.SetValue(value)
	return s
}

// SetValue assigns v clamped to the stepper bounds.
func (s *Stepper) SetValue(v int) {
	s.Value = max(s.Min, min(v, s.Max))
}

func (s *Stepper) Focus() tea.Cmd { s.focused = true; return nil }
func (s *Stepper) Blur()          { s.focused = false }

// Update adjusts the value. A digit key within range sets it directly.
func (s Stepper) Update(msg tea.Msg) (Stepper, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	key := kmsg.String()
	switch key {
	case "left", "h", "-":
		s.SetValue(s.Value - 1)
	case "right", "l", "+":
		s.SetValue(s.Value + 1)
	default:
		if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
			if d := int(key[0] - '0'); d >= s.Min && d <= s.Max {
				s.Value = d
			}
		}
	}
	return s, nil
}

// View renders the label and the formatted value.
func (s Stepper) View() string {
	var value string
	if s.Format != nil {
		value = s.Format(s.Value)
	} else {
		value = strings.Repeat("●", s.Value-s.Min+1) + strings.Repeat("○", s.Max-s.Value) +
			fmt.Sprintf("  %d/%d", s.Value, s.Max)
	}
	if s.focused {
		return fieldLabel(s.Label, true) + theme.Selected.Render(value)
	}
	return fieldLabel(s.Label, false) + theme.Body.Render(value)
}

package components

import (
	"strings"

	"github.com/abhisek/cragcoach/internal/ui/theme"
)

// SectionTrack shows questionnaire progress as one segment per page.
// Pages up to and including Current are filled.
type SectionTrack struct {
	Current int
	Total   int
	Width   int
}

const trackGap = 1

// NewSectionTrack creates a track for page current of total.
func NewSectionTrack(current, total, width int) SectionTrack {
	return SectionTrack{Current: current, Total: total, Width: width}
}

// View renders the track.
func (t SectionTrack) View() string {
	if t.Total <= 0 {
		return ""
	}
	seg := (t.Width - trackGap*(t.Total-1)) / t.Total
	seg = max(seg, 2)

	parts := make([]string, t.Total)
	for i := range parts {
		bar := strings.Repeat(" ", seg)
		if i <= t.Current {
			parts[i] = theme.TrackDone.Render(bar)
		} else {
			parts[i] = theme.TrackTodo.Render(bar)
		}
	}
	return strings.Join(parts, strings.Repeat(" ", trackGap))
}

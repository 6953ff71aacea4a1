package questionnaire

import "fmt"

// Section is one page of the questionnaire.
type Section int

const (
	SectionPersonalInfo Section = iota
	SectionClimbingExperience
	SectionAbilitiesStyle
	SectionTrainingSetup
	SectionHealthRecovery
	SectionAdditionalInfo
)

// SectionCount is the number of questionnaire pages.
const SectionCount = 6

var sectionTitles = [SectionCount]string{
	"Personal Info",
	"Climbing Experience",
	"Abilities & Style",
	"Training Setup",
	"Health & Recovery",
	"Additional Info",
}

func (s Section) String() string {
	if s < 0 || int(s) >= SectionCount {
		return fmt.Sprintf("Section(%d)", int(s))
	}
	return sectionTitles[s]
}

// Pager tracks the current page. The zero value is on the first page.
type Pager struct {
	current int
}

// Current returns the section currently shown.
func (p *Pager) Current() Section { return Section(p.current) }

// Count returns the number of pages.
func (p *Pager) Count() int { return SectionCount }

func (p *Pager) IsFirst() bool { return p.current == 0 }
func (p *Pager) IsLast() bool  { return p.current == SectionCount-1 }

// Advance moves forward one page when not on the last page and canLeave
// holds. It reports whether the page changed.
func (p *Pager) Advance(canLeave bool) bool {
	if p.IsLast() || !canLeave {
		return false
	}
	p.current++
	return true
}

// Retreat moves back one page unless already on the first. It reports
// whether the page changed.
func (p *Pager) Retreat() bool {
	if p.IsFirst() {
		return false
	}
	p.current--
	return true
}

// Progress is the completed fraction, counting the current page as done.
func (p *Pager) Progress() float64 {
	return float64(p.current+1) / float64(SectionCount)
}

// PageLabel renders "Page n of N".
func (p *Pager) PageLabel() string {
	return fmt.Sprintf("Page %d of %d", p.current+1, SectionCount)
}

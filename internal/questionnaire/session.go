package questionnaire

import (
	"github.com/abhisek/cragcoach/internal/profile"
	"github.com/abhisek/cragcoach/internal/ratings"
)

// Session is the in-memory working copy of every questionnaire field plus
// the page position. It is never persisted.
type Session struct {
	Pager

	// Personal Info
	Name  string
	Email string

	// Climbing Experience
	CurrentClimbingGrade  string
	MaxBoulderGrade       string
	Goal                  string
	TrainingExperience    string
	RedpointingExperience string

	// Abilities & Style
	Ratings                []ratings.RatedAttribute
	PreferredClimbingStyle profile.Selection
	IndoorVsOutdoor        string

	// Training Setup
	TrainingFacilities   profile.Selection
	GeneralFitness       profile.Selection
	AccessToCoaches      string
	TimeForCrossTraining string

	// Health & Recovery
	InjuryHistory   string
	SleepHours      int
	WorkLifeBalance string
	MotivationLevel string

	// Additional Info
	Height          string
	Weight          string
	Age             string
	AdditionalNotes string
}

// NewSession returns a session on the first page with every field at its
// default.
func NewSession() *Session {
	return &Session{
		Ratings:                ratings.Defaults(),
		PreferredClimbingStyle: profile.NewSelection(),
		TrainingFacilities:     profile.NewSelection(),
		GeneralFitness:         profile.NewSelection(),
		SleepHours:             profile.DefaultSleepHours,
		Height:                 profile.DefaultHeight,
		Weight:                 profile.DefaultWeight,
		Age:                    profile.DefaultAge,
		RedpointingExperience:  profile.DefaultRedpointingExperience,
		WorkLifeBalance:        profile.DefaultWorkLifeBalance,
		MotivationLevel:        profile.DefaultMotivationLevel,
		AccessToCoaches:        profile.DefaultAccessToCoaches,
		TimeForCrossTraining:   profile.DefaultTimeForCrossTraining,
	}
}

// Advance moves to the next page. Leaving the first page requires
// IsSection1Valid; the other pages are ungated.
func (s *Session) Advance() bool {
	canLeave := true
	if s.Current() == SectionPersonalInfo {
		canLeave = IsSection1Valid(s)
	}
	return s.Pager.Advance(canLeave)
}

// CanAdvance reports whether Advance would move forward.
func (s *Session) CanAdvance() bool {
	if s.IsLast() {
		return false
	}
	if s.Current() == SectionPersonalInfo {
		return IsSection1Valid(s)
	}
	return true
}

// Rating returns the rating for the named attribute, or 0 if unknown.
func (s *Session) Rating(name string) int {
	for _, a := range s.Ratings {
		if a.Name == name {
			return a.Rating
		}
	}
	return 0
}

// SetRating assigns a clamped rating to the named attribute.
func (s *Session) SetRating(name string, rating int) {
	ratings.Set(s.Ratings, name, rating)
}

// RatingMap returns the ratings keyed by attribute name.
func (s *Session) RatingMap() map[string]int {
	m := make(map[string]int, len(s.Ratings))
	for _, a := range s.Ratings {
		m[a.Name] = a.Rating
	}
	return m
}

// SetSleepHours assigns the sleep hour, bounded to the picker range.
func (s *Session) SetSleepHours(h int) {
	if h < profile.MinSleepHours {
		h = profile.MinSleepHours
	}
	if h > profile.MaxSleepHours {
		h = profile.MaxSleepHours
	}
	s.SleepHours = h
}

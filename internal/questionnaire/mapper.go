package questionnaire

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/abhisek/cragcoach/internal/profile"
	"github.com/abhisek/cragcoach/internal/ratings"
)

// ResolveRatings picks the canonical rating mapping for p: its numeric
// attribute ratings when present, else its legacy strength/weakness lists.
func ResolveRatings(p *profile.Profile) ratings.Resolution {
	return ratings.Resolve(p.AttributeRatings, p.PerceivedStrengths, p.PerceivedWeaknesses)
}

// Hydrate copies a stored profile into the session fields. Enumerated
// fields that are empty in the profile fall back to their defaults;
// multi-select lists select only known catalog options. A nil profile
// leaves the session untouched. The rating resolution is returned so callers
// can report dropped entries.
func Hydrate(s *Session, p *profile.Profile) ratings.Resolution {
	if p == nil {
		return ratings.Resolution{Source: ratings.SourceNone, Ratings: map[string]int{}}
	}

	s.Name = p.Name
	s.Email = p.EmailValue()

	s.CurrentClimbingGrade = p.CurrentClimbingGrade
	s.MaxBoulderGrade = p.MaxBoulderGrade
	s.Goal = p.Goal
	s.TrainingExperience = p.TrainingExperience
	s.InjuryHistory = p.InjuryHistory
	s.IndoorVsOutdoor = p.IndoorVsOutdoor
	s.AdditionalNotes = p.AdditionalNotes

	s.Height = profile.OrDefault(p.Height, profile.DefaultHeight)
	s.Weight = profile.OrDefault(p.Weight, profile.DefaultWeight)
	s.Age = profile.OrDefault(p.Age, profile.DefaultAge)
	s.RedpointingExperience = profile.OrDefault(p.RedpointingExperience, profile.DefaultRedpointingExperience)
	s.WorkLifeBalance = profile.OrDefault(p.WorkLifeBalance, profile.DefaultWorkLifeBalance)
	s.MotivationLevel = profile.OrDefault(p.MotivationLevel, profile.DefaultMotivationLevel)
	s.AccessToCoaches = profile.OrDefault(p.AccessToCoaches, profile.DefaultAccessToCoaches)
	s.TimeForCrossTraining = profile.OrDefault(p.TimeForCrossTraining, profile.DefaultTimeForCrossTraining)

	s.TrainingFacilities = profile.SelectFromList(profile.TrainingFacilities, p.TrainingFacilities)
	s.GeneralFitness = profile.SelectFromList(profile.FitnessLevels, p.GeneralFitness)
	s.PreferredClimbingStyle = profile.SelectFromList(profile.ClimbingStyles, p.PreferredClimbingStyle)

	if h, ok := parseSleepHours(p.SleepRecovery); ok {
		s.SetSleepHours(h)
	}

	if len(s.Ratings) == 0 {
		s.Ratings = ratings.Defaults()
	}
	res := ResolveRatings(p)
	res.Apply(s.Ratings)
	return res
}

// parseSleepHours reads the hour count from the "<n> hours" encoding: the
// text before the first space.
func parseSleepHours(v string) (int, bool) {
	n, _, _ := strings.Cut(v, " ")
	h, err := strconv.Atoi(n)
	if err != nil {
		return 0, false
	}
	return h, true
}

// FormatSleepHours renders an hour count in the "<n> hours" encoding.
func FormatSleepHours(h int) string {
	return fmt.Sprintf("%d hours", h)
}

// Serialize builds the submission payload for s. identity is the account
// email the answers belong to; when empty the session email is used. The
// result always carries every answer key.
func Serialize(s *Session, identity string) profile.AnswerPayload {
	email := identity
	if email == "" {
		email = s.Email
	}

	payload := profile.NewPayload()
	payload[profile.KeyName] = s.Name
	payload[profile.KeyEmail] = email
	payload[profile.KeyCurrentClimbingGrade] = s.CurrentClimbingGrade
	payload[profile.KeyMaxBoulderGrade] = s.MaxBoulderGrade
	payload[profile.KeyGoal] = s.Goal
	payload[profile.KeyTrainingExperience] = s.TrainingExperience
	payload[profile.KeyAttributeRatings] = ratings.Serialize(s.Ratings)
	payload[profile.KeyPerceivedStrengths] = ratings.Strengths(s.Ratings)
	payload[profile.KeyPerceivedWeaknesses] = ratings.Weaknesses(s.Ratings)
	payload[profile.KeyTrainingFacilities] = s.TrainingFacilities.Join(profile.TrainingFacilities)
	payload[profile.KeyGeneralFitness] = s.GeneralFitness.Join(profile.FitnessLevels)
	payload[profile.KeyPreferredClimbingStyle] = s.PreferredClimbingStyle.Join(profile.ClimbingStyles)
	payload[profile.KeyInjuryHistory] = s.InjuryHistory
	payload[profile.KeyIndoorVsOutdoor] = s.IndoorVsOutdoor
	payload[profile.KeyAdditionalNotes] = s.AdditionalNotes
	payload[profile.KeyHeight] = s.Height
	payload[profile.KeyWeight] = s.Weight
	payload[profile.KeyAge] = s.Age
	payload[profile.KeyRedpointingExperience] = s.RedpointingExperience
	payload[profile.KeySleepRecovery] = FormatSleepHours(s.SleepHours)
	payload[profile.KeyWorkLifeBalance] = s.WorkLifeBalance
	payload[profile.KeyMotivationLevel] = s.MotivationLevel
	payload[profile.KeyAccessToCoaches] = s.AccessToCoaches
	payload[profile.KeyTimeForCrossTraining] = s.TimeForCrossTraining
	return payload
}

package questionnaire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/cragcoach/internal/profile"
	"github.com/abhisek/cragcoach/internal/ratings"
)

func storedProfile() *profile.Profile {
	p := &profile.Profile{
		Name:                   "Alex Honnold",
		CurrentClimbingGrade:   "5.12a",
		MaxBoulderGrade:        "V6",
		Goal:                   "Onsight 5.12",
		TrainingExperience:     "4",
		AttributeRatings:       "Power: 5, Endurance: 1",
		PerceivedStrengths:     "Technique",
		TrainingFacilities:     "Hangboard, Home Wall, Sauna",
		GeneralFitness:         "Running,Yoga",
		PreferredClimbingStyle: "Bouldering, Lead Climbing, Speed Climbing",
		InjuryHistory:          "A2 pulley, 2022",
		IndoorVsOutdoor:        "Mostly outdoor",
		SleepRecovery:          "7 hours",
		MotivationLevel:        "Very High",
	}
	p.SetEmail("alex@example.com")
	return p
}

func TestHydrateCopiesFields(t *testing.T) {
	s := NewSession()
	Hydrate(s, storedProfile())

	assert.Equal(t, "Alex Honnold", s.Name)
	assert.Equal(t, "alex@example.com", s.Email)
	assert.Equal(t, "5.12a", s.CurrentClimbingGrade)
	assert.Equal(t, "V6", s.MaxBoulderGrade)
	assert.Equal(t, "Onsight 5.12", s.Goal)
	assert.Equal(t, "4", s.TrainingExperience)
	assert.Equal(t, "A2 pulley, 2022", s.InjuryHistory)
	assert.Equal(t, "Mostly outdoor", s.IndoorVsOutdoor)
	assert.Equal(t, 7, s.SleepHours)
	assert.Equal(t, "Very High", s.MotivationLevel)
}

func TestHydrateDefaultsOnEmpty(t *testing.T) {
	s := NewSession()
	s.Height = "stale"
	Hydrate(s, &profile.Profile{})

	assert.Equal(t, profile.DefaultHeight, s.Height)
	assert.Equal(t, profile.DefaultWeight, s.Weight)
	assert.Equal(t, profile.DefaultAge, s.Age)
	assert.Equal(t, profile.DefaultRedpointingExperience, s.RedpointingExperience)
	assert.Equal(t, profile.DefaultWorkLifeBalance, s.WorkLifeBalance)
	assert.Equal(t, profile.DefaultMotivationLevel, s.MotivationLevel)
	assert.Equal(t, profile.DefaultAccessToCoaches, s.AccessToCoaches)
	assert.Equal(t, profile.DefaultTimeForCrossTraining, s.TimeForCrossTraining)
	assert.Equal(t, profile.DefaultSleepHours, s.SleepHours, "empty sleep keeps the current hour")
}

func TestHydrateNilProfileKeepsDefaults(t *testing.T) {
	s := NewSession()
	res := Hydrate(s, nil)
	assert.Equal(t, ratings.SourceNone, res.Source)
	assert.Equal(t, NewSession(), s)
}

func TestHydrateMultiSelect(t *testing.T) {
	s := NewSession()
	Hydrate(s, storedProfile())

	assert.Equal(t, []string{"Bouldering", "Lead Climbing"}, s.PreferredClimbingStyle.Names(profile.ClimbingStyles))
	assert.False(t, s.PreferredClimbingStyle.Has("Speed Climbing"))
	assert.Equal(t, []string{"Home Wall", "Hangboard"}, s.TrainingFacilities.Names(profile.TrainingFacilities))
	assert.Equal(t, []string{"Running", "Yoga"}, s.GeneralFitness.Names(profile.FitnessLevels))
}

func TestHydrateNumericRatingsWin(t *testing.T) {
	s := NewSession()
	res := Hydrate(s, storedProfile())

	assert.Equal(t, ratings.SourceNumeric, res.Source)
	assert.Equal(t, 5, s.Rating("Power"))
	assert.Equal(t, 1, s.Rating("Endurance"))
	assert.Equal(t, ratings.DefaultRating, s.Rating("Technique"), "legacy strengths must be ignored")
}

func TestHydrateLegacyFallback(t *testing.T) {
	s := NewSession()
	Hydrate(s, &profile.Profile{
		PerceivedStrengths:  "Power, Technique",
		PerceivedWeaknesses: "Endurance",
	})

	for name, got := range s.RatingMap() {
		want := 3
		switch name {
		case "Power", "Technique":
			want = 4
		case "Endurance":
			want = 2
		}
		assert.Equal(t, want, got, name)
	}
}

func TestHydrateMalformedRatingsTolerated(t *testing.T) {
	s := NewSession()
	res := Hydrate(s, &profile.Profile{AttributeRatings: "Power 5, : 3, Technique: 4"})

	assert.Len(t, res.Skipped, 2)
	assert.Equal(t, map[string]int{"Technique": 4}, res.Ratings)
	assert.Equal(t, 4, s.Rating("Technique"))
	assert.Equal(t, ratings.DefaultRating, s.Rating("Power"))
}

func TestHydrateSleepClampedToRange(t *testing.T) {
	tests := []struct {
		stored string
		want   int
	}{
		{"20 hours", profile.MaxSleepHours},
		{"2 hours", profile.MinSleepHours},
		{"9", 9},
	}
	for _, tt := range tests {
		s := NewSession()
		Hydrate(s, &profile.Profile{SleepRecovery: tt.stored})
		assert.Equal(t, tt.want, s.SleepHours, tt.stored)
		assert.Equal(t, FormatSleepHours(tt.want), Serialize(s, "a@b.c")[profile.KeySleepRecovery], tt.stored)
	}
}

func TestHydrateSleepLeadingSpaceUnparseable(t *testing.T) {
	s := NewSession()
	s.SleepHours = 6
	Hydrate(s, &profile.Profile{SleepRecovery: " 7 hours"})
	assert.Equal(t, 6, s.SleepHours)
}

func TestHydrateUnparseableSleepLeavesHour(t *testing.T) {
	s := NewSession()
	s.SleepHours = 9
	Hydrate(s, &profile.Profile{SleepRecovery: "lots"})
	assert.Equal(t, 9, s.SleepHours)
}

func TestSerializeHasAllKeys(t *testing.T) {
	payload := Serialize(NewSession(), "")
	assert.Empty(t, payload.Missing())
	assert.Len(t, payload, len(profile.AnswerKeys))
}

func TestSerializeEncodings(t *testing.T) {
	s := NewSession()
	s.Name = "Sam"
	s.Email = "typed@example.com"
	s.SleepHours = 6
	s.SetRating("Power", 5)
	s.SetRating("Footwork", 1)
	s.PreferredClimbingStyle = profile.NewSelection("Alpine", "Bouldering")

	payload := Serialize(s, "account@example.com")

	assert.Equal(t, "Sam", payload[profile.KeyName])
	assert.Equal(t, "account@example.com", payload[profile.KeyEmail])
	assert.Equal(t, "6 hours", payload[profile.KeySleepRecovery])
	assert.Equal(t, "Bouldering, Alpine", payload[profile.KeyPreferredClimbingStyle])
	assert.Equal(t, "Power", payload[profile.KeyPerceivedStrengths])
	assert.Equal(t, "Footwork", payload[profile.KeyPerceivedWeaknesses])
	assert.Equal(t,
		"Power: 5, Endurance: 3, Technique: 3, Finger Strength: 3, Power Endurance: 3, "+
			"Flexibility: 3, Core Strength: 3, Footwork: 1, Mental Game: 3, Route Reading: 3",
		payload[profile.KeyAttributeRatings])
}

func TestSerializeFallsBackToSessionEmail(t *testing.T) {
	s := NewSession()
	s.Email = "typed@example.com"
	assert.Equal(t, "typed@example.com", Serialize(s, "")[profile.KeyEmail])
}

func TestSerializeHydrateRoundTrip(t *testing.T) {
	s := NewSession()
	s.Name = "Lynn"
	s.Email = "lynn@example.com"
	s.CurrentClimbingGrade = "5.14"
	s.MaxBoulderGrade = "V10"
	s.Goal = "Free the Nose"
	s.SleepHours = 11
	for i, name := range ratings.Attributes {
		s.SetRating(name, (i%5)+1)
	}
	s.TrainingFacilities = profile.NewSelection("Campus Board", "Weights")
	s.GeneralFitness = profile.NewSelection("Hiking")
	s.PreferredClimbingStyle = profile.NewSelection("Trad Climbing", "Multi-pitch", "Alpine")

	payload := Serialize(s, "lynn@example.com")

	got := NewSession()
	Hydrate(got, profile.FromPayload(payload))

	require.Equal(t, s.RatingMap(), got.RatingMap())
	assert.Equal(t, s.TrainingFacilities, got.TrainingFacilities)
	assert.Equal(t, s.GeneralFitness, got.GeneralFitness)
	assert.Equal(t, s.PreferredClimbingStyle, got.PreferredClimbingStyle)
	assert.Equal(t, s.SleepHours, got.SleepHours)
	assert.Equal(t, s.Name, got.Name)
	assert.Equal(t, s.Goal, got.Goal)

	// A second pass is stable.
	assert.Equal(t, payload, Serialize(got, "lynn@example.com"))
}

func TestRatingsAlwaysInBounds(t *testing.T) {
	inputs := []string{
		"Power: 100, Endurance: -100",
		"Technique: 0",
		"Power: 3",
	}
	for _, in := range inputs {
		s := NewSession()
		Hydrate(s, &profile.Profile{AttributeRatings: in})
		for _, a := range s.Ratings {
			assert.GreaterOrEqual(t, a.Rating, ratings.MinRating, in)
			assert.LessOrEqual(t, a.Rating, ratings.MaxRating, in)
		}
	}
	s := NewSession()
	s.SetRating("Power", 12)
	assert.Equal(t, ratings.MaxRating, s.Rating("Power"))
}

package profile

// Enumerated answer choices. The questionnaire offers these as pickers; the
// stored value is the chosen string.
var (
	HeightOptions = []string{
		"Under 5'0\"", "5'0\" - 5'3\"", "5'4\" - 5'7\"", "5'8\" - 5'11\"", "6'0\" - 6'3\"", "Over 6'3\"",
	}
	WeightOptions = []string{
		"Under 120 lbs", "120-140 lbs", "140-160 lbs", "160-180 lbs", "180-200 lbs", "Over 200 lbs",
	}
	AgeOptions = []string{
		"Under 18", "18-24", "25-34", "35-44", "45-54", "55+",
	}
	RedpointingOptions = []string{
		"Never tried", "Beginner", "Intermediate", "Advanced", "Expert",
	}
	WorkLifeBalanceOptions = []string{
		"Very stressful", "Somewhat stressful", "Balanced", "Relaxed",
	}
	MotivationOptions = []string{
		"Low", "Moderate", "High", "Very High",
	}
	CoachAccessOptions = []string{
		"No", "Occasionally", "Yes, regularly",
	}
	CrossTrainingOptions = []string{
		"None", "1-2 hours/week", "3-4 hours/week", "5+ hours/week",
	}
	IndoorOutdoorOptions = []string{
		"Mostly indoor", "Mostly outdoor", "Both equally",
	}
)

// Defaults applied when a stored enumerated field is empty.
const (
	DefaultHeight                = "5'8\" - 5'11\""
	DefaultWeight                = "140-160 lbs"
	DefaultAge                   = "25-34"
	DefaultRedpointingExperience = "Beginner"
	DefaultWorkLifeBalance       = "Balanced"
	DefaultMotivationLevel       = "High"
	DefaultAccessToCoaches       = "No"
	DefaultTimeForCrossTraining  = "1-2 hours/week"
)

// Sleep hour picker range and default.
const (
	MinSleepHours     = 4
	MaxSleepHours     = 12
	DefaultSleepHours = 8
)

// OrDefault returns v, or def when v is empty.
func OrDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

package profile

// AnswerPayload is the flat key/value form of a profile exchanged with the
// answer submission service. A payload built for submission always carries
// every key in AnswerKeys, even when the value is empty.
type AnswerPayload map[string]string

// Answer payload keys.
const (
	KeyName                   = "name"
	KeyEmail                  = "email"
	KeyCurrentClimbingGrade   = "current_climbing_grade"
	KeyMaxBoulderGrade        = "max_boulder_grade"
	KeyGoal                   = "goal"
	KeyTrainingExperience     = "training_experience"
	KeyPerceivedStrengths     = "perceived_strengths"
	KeyPerceivedWeaknesses    = "perceived_weaknesses"
	KeyAttributeRatings       = "attribute_ratings"
	KeyTrainingFacilities     = "training_facilities"
	KeyGeneralFitness         = "general_fitness"
	KeyInjuryHistory          = "injury_history"
	KeyHeight                 = "height"
	KeyWeight                 = "weight"
	KeyAge                    = "age"
	KeyPreferredClimbingStyle = "preferred_climbing_style"
	KeyIndoorVsOutdoor        = "indoor_vs_outdoor"
	KeyRedpointingExperience  = "redpointing_experience"
	KeySleepRecovery          = "sleep_recovery"
	KeyWorkLifeBalance        = "work_life_balance"
	KeyMotivationLevel        = "motivation_level"
	KeyAccessToCoaches        = "access_to_coaches"
	KeyTimeForCrossTraining   = "time_for_cross_training"
	KeyAdditionalNotes        = "additional_notes"
)

// binding ties a payload key to the profile field it carries.
type binding struct {
	key   string
	field func(p *Profile) *string
}

// bindings lists every key except email, which is nullable on Profile and
// handled separately. Order matches AnswerKeys.
var bindings = []binding{
	{KeyName, func(p *Profile) *string { return &p.Name }},
	{KeyCurrentClimbingGrade, func(p *Profile) *string { return &p.CurrentClimbingGrade }},
	{KeyMaxBoulderGrade, func(p *Profile) *string { return &p.MaxBoulderGrade }},
	{KeyGoal, func(p *Profile) *string { return &p.Goal }},
	{KeyTrainingExperience, func(p *Profile) *string { return &p.TrainingExperience }},
	{KeyPerceivedStrengths, func(p *Profile) *string { return &p.PerceivedStrengths }},
	{KeyPerceivedWeaknesses, func(p *Profile) *string { return &p.PerceivedWeaknesses }},
	{KeyAttributeRatings, func(p *Profile) *string { return &p.AttributeRatings }},
	{KeyTrainingFacilities, func(p *Profile) *string { return &p.TrainingFacilities }},
	{KeyGeneralFitness, func(p *Profile) *string { return &p.GeneralFitness }},
	{KeyInjuryHistory, func(p *Profile) *string { return &p.InjuryHistory }},
	{KeyHeight, func(p *Profile) *string { return &p.Height }},
	{KeyWeight, func(p *Profile) *string { return &p.Weight }},
	{KeyAge, func(p *Profile) *string { return &p.Age }},
	{KeyPreferredClimbingStyle, func(p *Profile) *string { return &p.PreferredClimbingStyle }},
	{KeyIndoorVsOutdoor, func(p *Profile) *string { return &p.IndoorVsOutdoor }},
	{KeyRedpointingExperience, func(p *Profile) *string { return &p.RedpointingExperience }},
	{KeySleepRecovery, func(p *Profile) *string { return &p.SleepRecovery }},
	{KeyWorkLifeBalance, func(p *Profile) *string { return &p.WorkLifeBalance }},
	{KeyMotivationLevel, func(p *Profile) *string { return &p.MotivationLevel }},
	{KeyAccessToCoaches, func(p *Profile) *string { return &p.AccessToCoaches }},
	{KeyTimeForCrossTraining, func(p *Profile) *string { return &p.TimeForCrossTraining }},
	{KeyAdditionalNotes, func(p *Profile) *string { return &p.AdditionalNotes }},
}

// AnswerKeys is the complete, ordered key set of an AnswerPayload.
var AnswerKeys = []string{
	KeyName,
	KeyEmail,
	KeyCurrentClimbingGrade,
	KeyMaxBoulderGrade,
	KeyGoal,
	KeyTrainingExperience,
	KeyPerceivedStrengths,
	KeyPerceivedWeaknesses,
	KeyAttributeRatings,
	KeyTrainingFacilities,
	KeyGeneralFitness,
	KeyInjuryHistory,
	KeyHeight,
	KeyWeight,
	KeyAge,
	KeyPreferredClimbingStyle,
	KeyIndoorVsOutdoor,
	KeyRedpointingExperience,
	KeySleepRecovery,
	KeyWorkLifeBalance,
	KeyMotivationLevel,
	KeyAccessToCoaches,
	KeyTimeForCrossTraining,
	KeyAdditionalNotes,
}

// NewPayload returns a payload holding every answer key with an empty value.
func NewPayload() AnswerPayload {
	payload := make(AnswerPayload, len(AnswerKeys))
	for _, k := range AnswerKeys {
		payload[k] = ""
	}
	return payload
}

// Missing returns the answer keys absent from the payload, in key order.
func (a AnswerPayload) Missing() []string {
	var missing []string
	for _, k := range AnswerKeys {
		if _, ok := a[k]; !ok {
			missing = append(missing, k)
		}
	}
	return missing
}

// ToPayload projects p onto a complete payload without any transformation.
func ToPayload(p *Profile) AnswerPayload {
	payload := NewPayload()
	if p == nil {
		return payload
	}
	for _, b := range bindings {
		payload[b.key] = *b.field(p)
	}
	payload[KeyEmail] = p.EmailValue()
	return payload
}

// ApplyPayload writes every key present in payload onto p. Keys absent from
// the payload leave the corresponding field untouched.
func ApplyPayload(p *Profile, payload AnswerPayload) {
	for _, b := range bindings {
		if v, ok := payload[b.key]; ok {
			*b.field(p) = v
		}
	}
	if v, ok := payload[KeyEmail]; ok {
		p.SetEmail(v)
	}
}

// FromPayload builds a new profile from payload.
func FromPayload(payload AnswerPayload) *Profile {
	p := &Profile{}
	ApplyPayload(p, payload)
	return p
}

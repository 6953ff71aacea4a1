package profile

import "time"

// Profile is the persisted climbing-training profile of a single user.
// List-valued fields are stored comma-joined, exactly as they travel in an
// AnswerPayload.
type Profile struct {
	ID    int
	Name  string
	Email *string // nil when the profile has no email on record

	CurrentClimbingGrade string
	MaxBoulderGrade      string
	Goal                 string
	TrainingExperience   string // free-text year count

	AttributeRatings    string // "Power: 4, Endurance: 2, ..."
	PerceivedStrengths  string // legacy, comma-joined attribute names
	PerceivedWeaknesses string // legacy, comma-joined attribute names

	TrainingFacilities     string
	GeneralFitness         string
	PreferredClimbingStyle string

	InjuryHistory   string
	IndoorVsOutdoor string
	AdditionalNotes string

	Height                string
	Weight                string
	Age                   string
	RedpointingExperience string
	SleepRecovery         string // "<n> hours"
	WorkLifeBalance       string
	MotivationLevel       string
	AccessToCoaches       string
	TimeForCrossTraining  string

	UpdatedAt time.Time
}

// EmailValue returns the profile email, or "" when none is on record.
func (p *Profile) EmailValue() string {
	if p == nil || p.Email == nil {
		return ""
	}
	return *p.Email
}

// SetEmail stores email, clearing it when empty.
func (p *Profile) SetEmail(email string) {
	if email == "" {
		p.Email = nil
		return
	}
	p.Email = &email
}

// Clone returns a deep copy of p. Clone of nil is nil.
func (p *Profile) Clone() *Profile {
	if p == nil {
		return nil
	}
	cp := *p
	if p.Email != nil {
		e := *p.Email
		cp.Email = &e
	}
	return &cp
}

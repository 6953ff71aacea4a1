package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPayloadHasAllKeys(t *testing.T) {
	p := NewPayload()
	require.Len(t, p, 24)
	assert.Empty(t, p.Missing())
	for _, k := range AnswerKeys {
		assert.Equal(t, "", p[k], k)
	}
}

func TestBindingsCoverEveryKey(t *testing.T) {
	// Every key except email goes through a binding.
	assert.Len(t, bindings, len(AnswerKeys)-1)
	seen := map[string]bool{KeyEmail: true}
	for _, b := range bindings {
		assert.False(t, seen[b.key], "duplicate binding %s", b.key)
		seen[b.key] = true
	}
	for _, k := range AnswerKeys {
		assert.True(t, seen[k], "unbound key %s", k)
	}
}

func TestToPayloadNilProfile(t *testing.T) {
	p := ToPayload(nil)
	assert.Empty(t, p.Missing())
}

func TestApplyPayloadRoundTrip(t *testing.T) {
	src := &Profile{
		Name:                   "Alex",
		CurrentClimbingGrade:   "5.11a",
		MaxBoulderGrade:        "V5",
		Goal:                   "Send 5.12",
		TrainingFacilities:     "Hangboard, Home Wall",
		SleepRecovery:          "7 hours",
		AdditionalNotes:        "none",
		TimeForCrossTraining:   "None",
		PreferredClimbingStyle: "Bouldering",
	}
	src.SetEmail("alex@example.com")

	got := FromPayload(ToPayload(src))
	assert.Equal(t, src, got)
}

func TestApplyPayloadEmptyEmailClears(t *testing.T) {
	p := &Profile{}
	p.SetEmail("a@b.c")
	ApplyPayload(p, AnswerPayload{KeyEmail: ""})
	assert.Nil(t, p.Email)
	assert.Equal(t, "", p.EmailValue())
}

func TestApplyPayloadPartialLeavesOthers(t *testing.T) {
	p := &Profile{Goal: "old", Height: "tall"}
	ApplyPayload(p, AnswerPayload{KeyGoal: "new"})
	assert.Equal(t, "new", p.Goal)
	assert.Equal(t, "tall", p.Height)
}

func TestCloneIsDeep(t *testing.T) {
	p := &Profile{Name: "a"}
	p.SetEmail("x@y.z")
	cp := p.Clone()
	*cp.Email = "changed"
	assert.Equal(t, "x@y.z", p.EmailValue())

	var nilProfile *Profile
	assert.Nil(t, nilProfile.Clone())
}

func TestSelectFromList(t *testing.T) {
	tests := []struct {
		name string
		list string
		want []string
	}{
		{"known entries", "Bouldering, Lead Climbing", []string{"Bouldering", "Lead Climbing"}},
		{"unknown dropped", "Bouldering, Speed Climbing", []string{"Bouldering"}},
		{"case sensitive", "bouldering", nil},
		{"no spaces", "Top Rope,Alpine", []string{"Top Rope", "Alpine"}},
		{"empty", "", nil},
		{"stray commas", " , Bouldering ,, ", []string{"Bouldering"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := SelectFromList(ClimbingStyles, tt.list)
			assert.Equal(t, tt.want, sel.Names(ClimbingStyles))
		})
	}
}

func TestSelectionJoinUsesCatalogOrder(t *testing.T) {
	sel := NewSelection("Alpine", "Bouldering")
	assert.Equal(t, "Bouldering, Alpine", sel.Join(ClimbingStyles))

	sel.Toggle("Alpine")
	assert.False(t, sel.Has("Alpine"))
	sel.Toggle("Top Rope")
	assert.Equal(t, "Bouldering, Top Rope", sel.Join(ClimbingStyles))
}

func TestOrDefault(t *testing.T) {
	assert.Equal(t, DefaultAge, OrDefault("", DefaultAge))
	assert.Equal(t, "18-24", OrDefault("18-24", DefaultAge))
}

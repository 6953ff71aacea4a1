package profileview

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/cragcoach/internal/profile"
	"github.com/abhisek/cragcoach/internal/router"
)

func TestNilProfile(t *testing.T) {
	s := New(nil)
	if !strings.Contains(s.View(100, 30), "No profile yet") {
		t.Error("expected empty-state message")
	}
}

func TestRendersAnswersAndGauges(t *testing.T) {
	p := &profile.Profile{
		Name:             "Alex",
		Goal:             "Onsight 5.12",
		AttributeRatings: "Power: 5",
	}
	p.SetEmail("alex@example.com")

	out := New(p).render(80)
	for _, want := range []string{"Alex", "alex@example.com", "Onsight 5.12", "●●●●●  5/5", "Climbing Experience"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}
	if strings.Contains(out, "estimated") {
		t.Error("numeric ratings should not show the legacy note")
	}
}

func TestLegacyRatingsNote(t *testing.T) {
	out := New(&profile.Profile{PerceivedStrengths: "Power"}).render(80)
	if !strings.Contains(out, "estimated from your earlier strengths") {
		t.Error("expected legacy ratings note")
	}
}

func TestScrollClampsToContent(t *testing.T) {
	s := New(&profile.Profile{Name: "Alex"})
	for i := 0; i < 500; i++ {
		s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	s.View(100, 20)
	if s.offset >= 500 {
		t.Errorf("offset not clamped: %d", s.offset)
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if s.offset < 0 {
		t.Errorf("offset negative: %d", s.offset)
	}
}

func TestEnterPops(t *testing.T) {
	_, cmd := New(nil).Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", cmd())
	}
}

func TestNewClonesProfile(t *testing.T) {
	p := &profile.Profile{Name: "Alex"}
	s := New(p)
	p.Name = "Changed"
	if s.profile.Name != "Alex" {
		t.Error("screen should hold its own copy")
	}
}

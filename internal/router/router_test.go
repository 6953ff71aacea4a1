package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/cragcoach/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

func TestPush(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on pushed screen")
	}
}

func TestPop(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if r.Active().Title() != "first" {
		t.Errorf("expected active 'first', got %q", r.Active().Title())
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after pop at bottom, got %d", r.Depth())
	}
}

func TestReplace(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Replace(s2)

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after replace, got %d", r.Depth())
	}
	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on replaced screen")
	}
}

func TestReplaceScreenMsg(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Update(ReplaceScreenMsg{Screen: s2})

	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run via ReplaceScreenMsg")
	}
}

func TestReplacePreservesStackDepth(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)

	s3 := &stubScreen{title: "third"}
	r.Replace(s3)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "third" {
		t.Errorf("expected active 'third', got %q", r.Active().Title())
	}
}

// lifecycleScreen records Close and Resume calls.
type lifecycleScreen struct {
	stubScreen
	closed  int
	resumed int
}

func (s *lifecycleScreen) Close() { s.closed++ }
func (s *lifecycleScreen) Resume() tea.Cmd {
	s.resumed++
	return nil
}

func TestPopClosesAndResumes(t *testing.T) {
	bottom := &lifecycleScreen{stubScreen: stubScreen{title: "bottom"}}
	top := &lifecycleScreen{stubScreen: stubScreen{title: "top"}}
	r := New(bottom)
	r.Push(top)

	r.Update(PopScreenMsg{})

	if top.closed != 1 {
		t.Errorf("expected popped screen closed once, got %d", top.closed)
	}
	if bottom.resumed != 1 {
		t.Errorf("expected uncovered screen resumed once, got %d", bottom.resumed)
	}

	// Pop at the bottom neither closes nor resumes.
	r.Pop()
	if bottom.closed != 0 || bottom.resumed != 1 {
		t.Errorf("unexpected lifecycle calls at bottom: closed=%d resumed=%d", bottom.closed, bottom.resumed)
	}
}

func TestReplaceClosesPrevious(t *testing.T) {
	first := &lifecycleScreen{stubScreen: stubScreen{title: "first"}}
	r := New(first)
	r.Replace(&stubScreen{title: "second"})

	if first.closed != 1 {
		t.Errorf("expected replaced screen closed once, got %d", first.closed)
	}
}

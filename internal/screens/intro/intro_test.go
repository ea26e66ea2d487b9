package intro

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/interference/internal/router"
	"github.com/abhisek/interference/internal/screen"
	"github.com/abhisek/interference/internal/session"
)

// stubScreen is a minimal screen implementation for testing.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "assessment" }
func (s *stubScreen) Title() string                           { return "Assessment" }

func newTestIntro() (*IntroScreen, *session.State, *int) {
	state := session.NewState(nil)
	callCount := 0
	factory := func() screen.Screen {
		callCount++
		return &stubScreen{}
	}
	return New(state, nil, factory), state, &callCount
}

func TestEnterStartsSession(t *testing.T) {
	s, state, callCount := newTestIntro()

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	msg := cmd()
	replaceMsg, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	if replaceMsg.Screen == nil {
		t.Error("replace screen should not be nil")
	}
	if state.Phase != session.PhaseRunning {
		t.Errorf("phase = %v, want running", state.Phase)
	}
	if *callCount != 1 {
		t.Errorf("factory should be called once, got %d", *callCount)
	}
}

func TestStartOnlyOnce(t *testing.T) {
	s, _, callCount := newTestIntro()

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("second Enter should not produce a command")
	}
	if *callCount != 1 {
		t.Errorf("factory should be called exactly once, got %d", *callCount)
	}
}

func TestStartRejectedOutsideIntro(t *testing.T) {
	s, state, callCount := newTestIntro()
	state.Phase = session.PhaseResult

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("start in the wrong phase should not navigate")
	}
	if *callCount != 0 {
		t.Errorf("factory should not be called, got %d", *callCount)
	}
	if !strings.Contains(s.View(100, 40), "not allowed") {
		t.Error("expected the phase error to be shown")
	}
}

func TestOtherKeysIgnored(t *testing.T) {
	s, state, _ := newTestIntro()

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	if cmd != nil {
		t.Error("unexpected command for unrelated key")
	}
	if state.Phase != session.PhaseIntro {
		t.Errorf("phase = %v, want intro", state.Phase)
	}
}

func TestViewShowsIntroText(t *testing.T) {
	s, _, _ := newTestIntro()
	view := s.View(100, 40)
	for _, want := range []string{"Identify what is blocking progress", "25 short statements", "Start"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

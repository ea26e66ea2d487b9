package assessment

import (
	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/interference/internal/catalog"
	"github.com/abhisek/interference/internal/router"
	"github.com/abhisek/interference/internal/screen"
	"github.com/abhisek/interference/internal/session"
	"github.com/abhisek/interference/internal/ui/components"
	"github.com/abhisek/interference/internal/ui/layout"
)

// AssessmentScreen serves the questions one at a time.
type AssessmentScreen struct {
	state         *session.State
	sessionID     string
	log           *zap.Logger
	allowBack     bool
	resultFactory func() screen.Screen
	choice        components.Choice
	errMsg        string
	done          bool
}

var _ screen.Screen = (*AssessmentScreen)(nil)
var _ screen.KeyHintProvider = (*AssessmentScreen)(nil)
var _ screen.SessionScoped = (*AssessmentScreen)(nil)
var _ screen.StatusProvider = (*AssessmentScreen)(nil)

// New creates an AssessmentScreen for a running session. When the last
// answer is recorded it replaces itself with the screen from resultFactory.
func New(state *session.State, log *zap.Logger, allowBack bool, resultFactory func() screen.Screen) *AssessmentScreen {
	if log == nil {
		log = zap.NewNop()
	}
	s := &AssessmentScreen{
		state:         state,
		sessionID:     state.ID,
		log:           log,
		allowBack:     allowBack,
		resultFactory: resultFactory,
	}
	s.syncChoice()
	return s
}

func (s *AssessmentScreen) Init() tea.Cmd {
	return nil
}

func (s *AssessmentScreen) Title() string {
	return "Assessment"
}

// SessionID returns the ID of the session the screen was built for.
func (s *AssessmentScreen) SessionID() string {
	return s.sessionID
}

func (s *AssessmentScreen) Status() string {
	p := session.GetProgress(s.state)
	return progressLabel(p)
}

func (s *AssessmentScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓/1-4", Description: "Choose"},
		{Key: "Enter", Description: "Next"},
	}
	if s.allowBack {
		hints = append(hints, layout.KeyHint{Key: "←", Description: "Back"})
	}
	return append(hints,
		layout.KeyHint{Key: "Ctrl+R", Description: "Restart"},
		layout.KeyHint{Key: "Ctrl+C", Description: "Quit"},
	)
}

func (s *AssessmentScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || s.done {
		return s, nil
	}

	switch kmsg.String() {
	case "enter", "right", "l":
		return s.advance()
	case "left", "b", "h":
		if s.allowBack {
			s.back()
		}
		return s, nil
	}

	s.choice, _ = s.choice.Update(msg)
	return s, nil
}

// syncChoice points the selector at the displayed answer of the current
// question.
func (s *AssessmentScreen) syncChoice() {
	labels := make([]string, 0, len(catalog.AllAnswers()))
	for _, a := range catalog.AllAnswers() {
		labels = append(labels, a.Label())
	}

	selected := catalog.DefaultAnswer.Index()
	if _, a, err := session.Current(s.state); err == nil {
		selected = a.Index()
	}
	s.choice = components.NewChoice(labels, selected)
}

func (s *AssessmentScreen) advance() (screen.Screen, tea.Cmd) {
	q, _, err := session.Current(s.state)
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	answer := catalog.AllAnswers()[s.choice.Selected]

	if err := session.Advance(s.state, answer); err != nil {
		s.errMsg = err.Error()
		s.log.Error("advance failed",
			zap.String("question_id", q.ID),
			zap.Error(err))
		return s, nil
	}
	s.errMsg = ""
	s.log.Debug("answer recorded",
		zap.String("question_id", q.ID),
		zap.String("answer", string(answer)))

	if s.state.Phase != session.PhaseResult {
		s.syncChoice()
		return s, nil
	}

	s.done = true
	res := s.state.Result
	s.log.Info("session classified",
		zap.Bool("has_dominant", res.HasDominant()),
		zap.Stringer("dominant", res.Dominant),
		zap.Int("total_signals", res.TotalSignals),
		zap.Int("answered", res.Answered))

	next := s.resultFactory()
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (s *AssessmentScreen) back() {
	if err := session.Back(s.state); err != nil {
		s.errMsg = err.Error()
		return
	}
	s.errMsg = ""
	s.syncChoice()
}

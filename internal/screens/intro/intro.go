package intro

import (
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/interference/internal/catalog"
	"github.com/abhisek/interference/internal/router"
	"github.com/abhisek/interference/internal/screen"
	"github.com/abhisek/interference/internal/session"
	"github.com/abhisek/interference/internal/ui/components"
	"github.com/abhisek/interference/internal/ui/layout"
	"github.com/abhisek/interference/internal/ui/theme"
)

const (
	subtitle = "Identify what is blocking progress."
	tagline  = "Answer honestly. There are no wrong answers."
)

// IntroScreen explains the assessment and starts the session on Enter.
type IntroScreen struct {
	state       *session.State
	sessionID   string
	log         *zap.Logger
	nextFactory func() screen.Screen
	start       components.Button
	errMsg      string
	started     bool
}

var _ screen.Screen = (*IntroScreen)(nil)
var _ screen.KeyHintProvider = (*IntroScreen)(nil)
var _ screen.SessionScoped = (*IntroScreen)(nil)

// New creates an IntroScreen for state. On start it replaces itself with the
// screen produced by nextFactory.
func New(state *session.State, log *zap.Logger, nextFactory func() screen.Screen) *IntroScreen {
	if log == nil {
		log = zap.NewNop()
	}
	s := &IntroScreen{
		state:       state,
		sessionID:   state.ID,
		log:         log,
		nextFactory: nextFactory,
	}
	s.start = components.NewButton("Start", true, s.begin, "space")
	return s
}

func (s *IntroScreen) Title() string {
	return ""
}

// SessionID returns the ID of the session the screen was built for.
func (s *IntroScreen) SessionID() string {
	return s.sessionID
}

func (s *IntroScreen) Init() tea.Cmd {
	return nil
}

func (s *IntroScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Start"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *IntroScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.start, cmd = s.start.Update(msg)
	return s, cmd
}

// begin starts the session once; later presses are ignored.
func (s *IntroScreen) begin() tea.Cmd {
	if s.started {
		return nil
	}
	if err := session.Start(s.state); err != nil {
		s.errMsg = err.Error()
		s.log.Warn("start rejected", zap.Error(err), zap.Stringer("phase", s.state.Phase))
		return nil
	}
	s.started = true
	s.start.Active = false
	s.log.Info("session started",
		zap.Int("questions", len(s.state.Order)))

	next := s.nextFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (s *IntroScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, RenderBanner(width))
	sections = append(sections, "")
	sections = append(sections, theme.Title.Render(subtitle))
	sections = append(sections, "")

	cw := components.ContentWidth(width)
	body := theme.Body.Width(cw - 6).Render(
		"This assessment has " + strconv.Itoa(catalog.Size()) + " short statements shown in random order. " +
			"For each one, choose how often it applies: almost always, sometimes, rarely, or never.\n\n" +
			"When every statement is answered, the answers are tallied into six interference " +
			"patterns. A pattern is reported only when the evidence for it is strong enough; " +
			"otherwise the result says no single pattern dominates.")
	sections = append(sections, components.Card(body, cw))
	sections = append(sections, "")
	sections = append(sections, theme.Hint.Render(tagline))
	sections = append(sections, "")
	sections = append(sections, s.start.View())

	if s.errMsg != "" {
		sections = append(sections, "")
		sections = append(sections, theme.ErrorText.Render(s.errMsg))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.TrimPrefix(content, "\n"))
}

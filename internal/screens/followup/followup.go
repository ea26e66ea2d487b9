package followup

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/interference/internal/router"
	"github.com/abhisek/interference/internal/screen"
	"github.com/abhisek/interference/internal/session"
	"github.com/abhisek/interference/internal/ui/components"
	"github.com/abhisek/interference/internal/ui/layout"
	"github.com/abhisek/interference/internal/ui/theme"
)

const ideaLimit = 280

type focus int

const (
	focusIdea focus = iota
	focusRoute
)

// submitMsg is emitted by the route menu.
type submitMsg struct {
	Route session.Route
}

// FollowUpScreen collects an optional project idea and a route, then shows
// the next steps for the dominant interference.
type FollowUpScreen struct {
	state     *session.State
	sessionID string
	log       *zap.Logger
	idea      components.TextInput
	routes    components.Menu
	focus     focus
	plan      *session.FollowUpPlan
	errMsg    string
}

var _ screen.Screen = (*FollowUpScreen)(nil)
var _ screen.KeyHintProvider = (*FollowUpScreen)(nil)
var _ screen.SessionScoped = (*FollowUpScreen)(nil)

// New creates a FollowUpScreen with defaultRoute preselected. A plan
// already submitted in this session prefills the form instead.
func New(state *session.State, log *zap.Logger, defaultRoute session.Route) *FollowUpScreen {
	if log == nil {
		log = zap.NewNop()
	}
	items := make([]components.MenuItem, 0, len(session.AllRoutes()))
	for _, r := range session.AllRoutes() {
		items = append(items, components.MenuItem{
			Label: string(r),
			Action: func() tea.Cmd {
				return func() tea.Msg { return submitMsg{Route: r} }
			},
		})
	}
	idea := components.NewTextInput("Project idea (optional)", "What would you build if nothing was in the way?", ideaLimit)

	// Reopening after a submit starts from the previous plan.
	if prev := state.FollowUp; prev != nil {
		idea.SetValue(prev.Idea)
		defaultRoute = prev.Route
	}
	routes := components.NewMenu(items)
	if !routes.SelectLabel(string(defaultRoute)) {
		routes.SelectLabel(string(session.DefaultRoute))
	}
	routes.Inactive = true

	return &FollowUpScreen{
		state:     state,
		sessionID: state.ID,
		log:       log,
		idea:      idea,
		routes:    routes,
	}
}

func (s *FollowUpScreen) Init() tea.Cmd {
	return s.idea.Init()
}

func (s *FollowUpScreen) Title() string {
	return "Follow-up"
}

// SessionID returns the ID of the session the screen was built for.
func (s *FollowUpScreen) SessionID() string {
	return s.sessionID
}

func (s *FollowUpScreen) KeyHints() []layout.KeyHint {
	if s.plan != nil {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Done"},
			{Key: "Esc", Description: "Back"},
		}
	}
	if s.focus == focusIdea {
		return []layout.KeyHint{
			{Key: "Enter/Tab", Description: "Choose route"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Route"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Tab", Description: "Edit idea"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *FollowUpScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case submitMsg:
		return s.submit(msg.Route)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.focus == focusIdea {
		var cmd tea.Cmd
		s.idea, cmd = s.idea.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *FollowUpScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if key == "esc" {
		return s.close()
	}

	if s.plan != nil {
		if key == "enter" {
			return s.close()
		}
		return s, nil
	}

	switch {
	case key == "tab" || (key == "enter" && s.focus == focusIdea):
		return s, s.toggleFocus()
	case s.focus == focusIdea:
		var cmd tea.Cmd
		s.idea, cmd = s.idea.Update(msg)
		return s, cmd
	}

	var cmd tea.Cmd
	s.routes, cmd = s.routes.Update(msg)
	return s, cmd
}

func (s *FollowUpScreen) toggleFocus() tea.Cmd {
	if s.focus == focusIdea {
		s.focus = focusRoute
		s.idea.Blur()
		s.routes.Inactive = false
		return nil
	}
	s.focus = focusIdea
	s.routes.Inactive = true
	return s.idea.Focus()
}

func (s *FollowUpScreen) submit(route session.Route) (screen.Screen, tea.Cmd) {
	plan, err := session.SubmitFollowUp(s.state, s.idea.Value(), route)
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	s.plan = plan
	s.errMsg = ""
	s.log.Info("follow-up submitted",
		zap.Stringer("focus", plan.Focus),
		zap.String("route", string(plan.Route)),
		zap.Bool("has_idea", plan.Idea != ""))
	return s, nil
}

// close returns the session to the result phase and pops this screen.
func (s *FollowUpScreen) close() (screen.Screen, tea.Cmd) {
	if err := session.CloseFollowUp(s.state); err != nil {
		s.log.Warn("close follow-up", zap.Error(err))
	}
	return s, func() tea.Msg { return router.PopScreenMsg{} }
}

func (s *FollowUpScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	var sections []string

	focusLine := "Focus: no single interference"
	if s.state.Result.HasDominant() {
		focusLine = "Focus: " + s.state.Result.Dominant.Title()
	}
	sections = append(sections, theme.Verdict.Render(focusLine))
	sections = append(sections, "")

	if s.plan != nil {
		sections = append(sections, s.renderPlan(cw))
	} else {
		form := s.idea.View() + "\n\n" +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Route") + "\n" +
			strings.TrimSuffix(s.routes.View(), "\n")
		sections = append(sections, components.Card(form, cw))
	}

	if s.errMsg != "" {
		sections = append(sections, "")
		sections = append(sections, theme.ErrorText.Render(s.errMsg))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *FollowUpScreen) renderPlan(cw int) string {
	var b strings.Builder
	if s.plan.Idea != "" {
		b.WriteString(theme.Hint.Render("Idea"))
		b.WriteString("\n")
		b.WriteString(theme.Body.Width(cw - 6).Render(s.plan.Idea))
		b.WriteString("\n\n")
	}
	b.WriteString(theme.Hint.Render("Route"))
	b.WriteString("\n")
	b.WriteString(theme.Body.Render(string(s.plan.Route)))
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("Next steps"))
	b.WriteString("\n")
	for i, step := range s.plan.Steps {
		b.WriteString(theme.Body.Width(cw - 6).Render(fmt.Sprintf("%d. %s", i+1, step)))
		b.WriteString("\n")
	}
	return components.Card(strings.TrimSuffix(b.String(), "\n"), cw)
}

package result

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/interference/internal/diagnosis"
	"github.com/abhisek/interference/internal/router"
	"github.com/abhisek/interference/internal/screen"
	"github.com/abhisek/interference/internal/session"
	"github.com/abhisek/interference/internal/ui/components"
	"github.com/abhisek/interference/internal/ui/layout"
	"github.com/abhisek/interference/internal/ui/theme"
)

// ResultScreen displays the classification of a completed session.
type ResultScreen struct {
	state           *session.State
	sessionID       string
	log             *zap.Logger
	followUpFactory func() screen.Screen
	summary         *session.Summary
	menu            components.Menu
	errMsg          string
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)
var _ screen.SessionScoped = (*ResultScreen)(nil)
var _ screen.StatusProvider = (*ResultScreen)(nil)

// New creates a ResultScreen. The follow-up screen is pushed on top of it so
// that leaving the follow-up returns here.
func New(state *session.State, log *zap.Logger, followUpFactory func() screen.Screen) *ResultScreen {
	if log == nil {
		log = zap.NewNop()
	}
	s := &ResultScreen{
		state:           state,
		sessionID:       state.ID,
		log:             log,
		followUpFactory: followUpFactory,
	}
	s.menu = components.NewMenu([]components.MenuItem{
		{Label: "Turn this into a next step", Action: s.openFollowUp},
		{Label: "Retake the assessment", Action: retake},
	})

	summary, err := session.BuildSummary(state)
	if err != nil {
		s.errMsg = err.Error()
	}
	s.summary = summary
	return s
}

func (s *ResultScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultScreen) Title() string {
	return "Result"
}

// SessionID returns the ID of the session the screen was built for.
func (s *ResultScreen) SessionID() string {
	return s.sessionID
}

func (s *ResultScreen) Status() string {
	if s.summary == nil {
		return ""
	}
	return fmt.Sprintf("%d signals", s.summary.Report.TotalSignals)
}

func (s *ResultScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "F", Description: "Follow up"},
		{Key: "R", Description: "Retake"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "f":
			return s, s.openFollowUp()
		case "r":
			return s, retake()
		}
	}
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *ResultScreen) openFollowUp() tea.Cmd {
	if err := session.OpenFollowUp(s.state); err != nil {
		s.errMsg = err.Error()
		return nil
	}
	s.log.Info("follow-up opened")

	next := s.followUpFactory()
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

func retake() tea.Cmd {
	return func() tea.Msg { return screen.ResetSessionMsg{} }
}

func (s *ResultScreen) View(width, height int) string {
	if s.summary == nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.ErrorText.Render(s.errMsg))
	}
	rep := s.summary.Report
	cw := components.ContentWidth(width)

	var b strings.Builder

	if rep.Dominant.Valid() {
		b.WriteString(center(width, theme.Hint.Render("Dominant interference")))
		b.WriteString("\n")
		b.WriteString(center(width, theme.Verdict.Render(rep.Headline)))
	} else {
		b.WriteString(center(width, theme.NoVerdict.Render("No dominant pattern")))
	}
	b.WriteString("\n\n")

	diag := lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(rep.Diagnosis)
	b.WriteString(center(width, diag))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", min(cw, 60)))
	b.WriteString(center(width, lipgloss.NewStyle().Foreground(theme.TextDim).Render("Evidence")))
	b.WriteString("\n")
	b.WriteString(center(width, divider))
	b.WriteString("\n")

	if len(rep.Breakdown) == 0 {
		b.WriteString(center(width, theme.Hint.Render("No statements were marked as applying.")))
		b.WriteString("\n")
	} else {
		b.WriteString(center(width, renderBreakdown(rep.Breakdown, rep.Dominant.Valid(), layout.IsCompactWidth(width))))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(center(width, lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("%d of %d answers signalled an interference", rep.TotalSignals, s.summary.Answered))))
	b.WriteString("\n\n")

	b.WriteString(center(width, strings.TrimSuffix(s.menu.View(), "\n")))

	if s.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(center(width, theme.ErrorText.Render(s.errMsg)))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

// renderBreakdown lays out one row per category with evidence. The compact
// form drops the strength column. The first row is the dominant category
// when highlightFirst is set.
func renderBreakdown(lines []diagnosis.EvidenceLine, highlightFirst bool, compact bool) string {
	rows := make([]string, 0, len(lines))
	titleWidth := 0
	for _, l := range lines {
		titleWidth = max(titleWidth, lipgloss.Width(l.Title))
	}

	for i, l := range lines {
		row := fmt.Sprintf("%-*s  %d/%d", titleWidth, l.Title, l.Count, l.Total)
		if !compact {
			row += fmt.Sprintf("  %s", l.Strength)
		}
		style := theme.Unselected
		if i == 0 && highlightFirst {
			style = theme.Signal
		}
		rows = append(rows, style.Render(row))
	}
	return strings.Join(rows, "\n")
}

func center(width int, s string) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}

package assessment

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/interference/internal/session"
	"github.com/abhisek/interference/internal/ui/components"
	"github.com/abhisek/interference/internal/ui/theme"
)

func progressLabel(p session.Progress) string {
	return fmt.Sprintf("%d/%d", p.Answered, p.Total)
}

// View renders the current question, the answer options and progress.
func (s *AssessmentScreen) View(width, height int) string {
	q, _, err := session.Current(s.state)
	if err != nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  No question to show.")
	}

	p := session.GetProgress(s.state)
	cw := components.ContentWidth(width)

	var b strings.Builder

	counter := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("Question %d of %d", p.Position+1, p.Total))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, counter))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", cw))))
	b.WriteString("\n\n")

	questionStyle := lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, questionStyle.Render(q.Text)))
	b.WriteString("\n\n")

	options := strings.TrimSuffix(s.choice.View(), "\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, options))
	b.WriteString("\n\n")

	bar := components.NewAnswerMeter(p.Answered, p.Total, cw)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n")

	if p.IsLast() {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("Last question. Enter shows the result.")))
		b.WriteString("\n")
	}

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.ErrorText.Render(s.errMsg)))
		b.WriteString("\n")
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

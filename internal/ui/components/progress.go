package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/interference/internal/ui/theme"
)

const (
	meterAnswered = "■"
	meterPending  = "□"
)

// AnswerMeter shows how many questions of a fixed set have been answered.
// With room for one cell per question it draws one cell each; otherwise the
// cells are scaled down to fit.
type AnswerMeter struct {
	Answered int
	Total    int
	Width    int
}

// NewAnswerMeter creates a meter for answered out of total questions,
// clamping answered into [0, total].
func NewAnswerMeter(answered, total, width int) AnswerMeter {
	total = max(total, 0)
	return AnswerMeter{
		Answered: min(max(answered, 0), total),
		Total:    total,
		Width:    width,
	}
}

// Label returns the "n/total answered" caption.
func (m AnswerMeter) Label() string {
	return fmt.Sprintf("%d/%d answered", m.Answered, m.Total)
}

// Percent returns the answered share as a whole percentage.
func (m AnswerMeter) Percent() int {
	if m.Total == 0 {
		return 0
	}
	return m.Answered * 100 / m.Total
}

// cells returns how many cells to draw in total and how many are filled.
func (m AnswerMeter) cells(room int) (int, int) {
	if m.Total == 0 {
		return 0, 0
	}
	n := m.Total
	if room < n {
		n = max(room, 1)
	}
	return n, m.Answered * n / m.Total
}

func (m AnswerMeter) View() string {
	label := lipgloss.NewStyle().Foreground(theme.Text).Render(m.Label())
	pct := lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("%3d%%", m.Percent()))

	room := m.Width - lipgloss.Width(label) - lipgloss.Width(pct) - 4
	n, filled := m.cells(room)

	bar := lipgloss.NewStyle().Foreground(theme.Secondary).Render(strings.Repeat(meterAnswered, filled)) +
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat(meterPending, n-filled))

	return label + "  " + bar + "  " + pct
}

package session

import "github.com/abhisek/interference/internal/diagnosis"

// Summary holds the data displayed on the result screen.
type Summary struct {
	SessionID string
	Report    *diagnosis.Report
	Answered  int
	Total     int
}

// BuildSummary creates a Summary from a classified session.
func BuildSummary(s *State) (*Summary, error) {
	if err := requirePhase(s, "summary", PhaseResult, PhaseFollowUp); err != nil {
		return nil, err
	}
	return &Summary{
		SessionID: s.ID,
		Report:    diagnosis.NewReport(s.Result),
		Answered:  len(s.Answers),
		Total:     len(s.Order),
	}, nil
}

package session

// Progress is a snapshot of how far through the questions a session is.
type Progress struct {
	Position int // Zero-based index of the current question
	Total    int
	Answered int
}

// GetProgress returns the session's progress.
func GetProgress(s *State) Progress {
	return Progress{
		Position: s.Position,
		Total:    len(s.Order),
		Answered: len(s.Answers),
	}
}

// IsLast reports whether the current question is the final one.
func (p Progress) IsLast() bool {
	return p.Total > 0 && p.Position == p.Total-1
}

package session

import (
	"fmt"

	"github.com/abhisek/interference/internal/catalog"
	"github.com/abhisek/interference/internal/diagnosis"
)

// Start moves an intro session to running with a freshly shuffled order.
func Start(s *State) error {
	if err := requirePhase(s, "start", PhaseIntro); err != nil {
		return err
	}
	s.Order = NewOrder(s.orderShuffler())
	s.Answers = make(diagnosis.Answers)
	s.Position = 0
	s.Result = nil
	s.Phase = PhaseRunning
	return nil
}

// Current returns the question at the current position and the answer to
// display for it: the recorded answer, or catalog.DefaultAnswer.
func Current(s *State) (catalog.Question, catalog.Answer, error) {
	if err := requirePhase(s, "current", PhaseRunning); err != nil {
		return catalog.Question{}, "", err
	}
	if s.Position < 0 || s.Position >= len(s.Order) {
		return catalog.Question{}, "", fmt.Errorf("position %d outside order of %d", s.Position, len(s.Order))
	}
	q, err := catalog.GetQuestion(s.Order[s.Position])
	if err != nil {
		return catalog.Question{}, "", err
	}
	return q, DisplayedAnswer(s, q.ID), nil
}

// DisplayedAnswer returns the recorded answer for id or the default.
func DisplayedAnswer(s *State, id string) catalog.Answer {
	if a, ok := s.Answers[id]; ok {
		return a
	}
	return catalog.DefaultAnswer
}

// Advance records a for the current question and moves to the next one.
// Advancing past the last question classifies the full answer set and moves
// the session to PhaseResult. This is the only way a session is classified.
//
// An invalid answer is rejected and the session is left unchanged.
func Advance(s *State, a catalog.Answer) error {
	if err := requirePhase(s, "advance", PhaseRunning); err != nil {
		return err
	}
	if !a.Valid() {
		return fmt.Errorf("advance: %w: %q", catalog.ErrInvalidAnswer, string(a))
	}
	q, _, err := Current(s)
	if err != nil {
		return err
	}

	s.Answers[q.ID] = a

	if s.Position < len(s.Order)-1 {
		s.Position++
		return nil
	}
	return classify(s)
}

// Back moves to the previous question, keeping every recorded answer.
// No-op on the first question.
func Back(s *State) error {
	if err := requirePhase(s, "back", PhaseRunning); err != nil {
		return err
	}
	if s.Position > 0 {
		s.Position--
	}
	return nil
}

// classify runs the classifier over the complete answer set.
func classify(s *State) error {
	if err := ValidateOrder(s.Order); err != nil {
		return fmt.Errorf("%w: %w", ErrIncomplete, err)
	}
	for _, id := range s.Order {
		if _, ok := s.Answers[id]; !ok {
			return fmt.Errorf("%w: question %s unanswered (%d of %d)", ErrIncomplete, id, len(s.Answers), len(s.Order))
		}
	}

	result, err := diagnosis.Classify(s.Answers)
	if err != nil {
		return err
	}
	s.Result = result
	s.Phase = PhaseResult
	return nil
}

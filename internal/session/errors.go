package session

import (
	"errors"
	"fmt"
)

var (
	// ErrWrongPhase is returned when a transition is not allowed in the
	// session's current phase.
	ErrWrongPhase = errors.New("transition not allowed")

	// ErrIncomplete is returned if classification is reached without an
	// answer for every question. The workflow prevents this by construction;
	// seeing it means the state was modified outside the transition functions.
	ErrIncomplete = errors.New("answers incomplete")

	// ErrInvalidRoute is returned for a follow-up route outside AllRoutes.
	ErrInvalidRoute = errors.New("invalid follow-up route")
)

// PhaseError reports a transition attempted from the wrong phase.
type PhaseError struct {
	Op    string
	Phase Phase
}

func (e *PhaseError) Error() string {
	return fmt.Sprintf("%s: not allowed in %s phase", e.Op, e.Phase)
}

func (e *PhaseError) Unwrap() error { return ErrWrongPhase }

func requirePhase(s *State, op string, allowed ...Phase) error {
	for _, p := range allowed {
		if s.Phase == p {
			return nil
		}
	}
	return &PhaseError{Op: op, Phase: s.Phase}
}

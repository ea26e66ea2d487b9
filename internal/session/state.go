package session

import (
	"github.com/google/uuid"

	"github.com/abhisek/interference/internal/diagnosis"
)

// Phase represents the current phase of the session.
type Phase int

const (
	PhaseIntro    Phase = iota // No answers; waiting for start
	PhaseRunning               // Serving questions
	PhaseResult                // Classification computed, read-only
	PhaseFollowUp              // Optional follow-up flow after the result
)

func (p Phase) String() string {
	switch p {
	case PhaseIntro:
		return "intro"
	case PhaseRunning:
		return "running"
	case PhaseResult:
		return "result"
	case PhaseFollowUp:
		return "follow-up"
	}
	return "unknown"
}

// State is the full state of one assessment session. It is owned by a
// single caller and must not be shared between users.
type State struct {
	// ID is the UUID for this session; regenerated on reset.
	ID string

	// Phase is the current workflow phase.
	Phase Phase

	// Order is the display order, a permutation of every catalog question ID.
	Order []string

	// Answers holds at most one recorded answer per question ID.
	Answers diagnosis.Answers

	// Position is the index into Order of the question being shown.
	Position int

	// Result is set on entering PhaseResult and cleared on reset.
	Result *diagnosis.Result

	// FollowUp is the last submitted follow-up plan, if any.
	FollowUp *FollowUpPlan

	shuffler Shuffler
}

// NewState creates a session in the intro phase with a fresh question order.
// A nil shuffler uses the unseeded random shuffler.
func NewState(shuffler Shuffler) *State {
	s := &State{shuffler: shuffler}
	Reset(s)
	return s
}

// Reset discards everything recorded in s and returns it to the intro phase
// with a new ID and a new question order. Valid from any phase.
func Reset(s *State) {
	s.ID = uuid.New().String()
	s.Phase = PhaseIntro
	s.Order = NewOrder(s.orderShuffler())
	s.Answers = make(diagnosis.Answers)
	s.Position = 0
	s.Result = nil
	s.FollowUp = nil
}

func (s *State) orderShuffler() Shuffler {
	if s.shuffler == nil {
		s.shuffler = RandomShuffler()
	}
	return s.shuffler
}

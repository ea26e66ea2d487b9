package catalog

import (
	"fmt"
	"strings"
)

// Answer is a response on the frequency scale.
type Answer string

const (
	AnswerAlmostAlways Answer = "almost-always"
	AnswerSometimes    Answer = "sometimes"
	AnswerRarely       Answer = "rarely"
	AnswerNever        Answer = "never"
)

// DefaultAnswer is displayed for a question that has not been answered yet.
// It is deliberately a non-signal value.
const DefaultAnswer = AnswerRarely

// AllAnswers returns the answer options in display order.
func AllAnswers() []Answer {
	return []Answer{AnswerAlmostAlways, AnswerSometimes, AnswerRarely, AnswerNever}
}

// Valid reports whether a is on the scale.
func (a Answer) Valid() bool {
	switch a {
	case AnswerAlmostAlways, AnswerSometimes, AnswerRarely, AnswerNever:
		return true
	}
	return false
}

// Signal reports whether the answer counts as evidence of interference.
func (a Answer) Signal() bool {
	return a == AnswerAlmostAlways || a == AnswerSometimes
}

// Label returns the display label, e.g. "Almost always".
func (a Answer) Label() string {
	switch a {
	case AnswerAlmostAlways:
		return "Almost always"
	case AnswerSometimes:
		return "Sometimes"
	case AnswerRarely:
		return "Rarely"
	case AnswerNever:
		return "Never"
	}
	return string(a)
}

// Index returns the position of a in AllAnswers, or -1.
func (a Answer) Index() int {
	for i, opt := range AllAnswers() {
		if opt == a {
			return i
		}
	}
	return -1
}

// ParseAnswer converts user or file input into an Answer.
// Matching is case-insensitive and tolerates spaces or underscores in place of
// the hyphen. The True/False spellings map onto the ends of the scale.
func ParseAnswer(s string) (Answer, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer(" ", "-", "_", "-").Replace(norm)

	switch norm {
	case "true":
		return AnswerAlmostAlways, nil
	case "false":
		return AnswerNever, nil
	}

	a := Answer(norm)
	if !a.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidAnswer, s)
	}
	return a, nil
}

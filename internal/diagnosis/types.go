package diagnosis

import "github.com/abhisek/interference/internal/catalog"

// Answers maps question ID to the recorded answer. Missing IDs count as no
// signal.
type Answers map[string]catalog.Answer

// Result is the output of classifying an answer set.
type Result struct {
	// Dominant is the category that cleared both thresholds, or
	// catalog.CategoryNone.
	Dominant catalog.Category

	// Evidence counts signal answers per category. Categories with no
	// signal are absent.
	Evidence map[catalog.Category]int

	// Sizes is the number of questions mapped to each category by the
	// classifier that produced the result.
	Sizes map[catalog.Category]int

	// TotalSignals is the number of signal answers across all questions.
	TotalSignals int

	// Answered is the number of answers supplied.
	Answered int
}

// HasDominant reports whether a single category cleared the thresholds.
func (r *Result) HasDominant() bool {
	return r != nil && r.Dominant != catalog.CategoryNone
}

// Count returns the evidence count for c (0 when absent).
func (r *Result) Count(c catalog.Category) int {
	if r == nil {
		return 0
	}
	return r.Evidence[c]
}

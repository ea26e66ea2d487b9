package diagnosis

import (
	"fmt"
	"maps"
	"slices"

	"github.com/abhisek/interference/internal/catalog"
)

const (
	// MinCategoryEvidence is the minimum signal count for the top category.
	MinCategoryEvidence = 3

	// MinTotalSignals is the minimum number of signal answers overall before
	// any category is accepted as dominant.
	MinTotalSignals = 8
)

// Classifier turns an answer set into a Result. It holds only the
// question-to-category mapping and is safe to share.
type Classifier struct {
	topics map[string][]catalog.Category
	sizes  map[catalog.Category]int
}

// NewClassifier builds a classifier over the given questions.
func NewClassifier(questions []catalog.Question) *Classifier {
	topics := make(map[string][]catalog.Category, len(questions))
	sizes := make(map[catalog.Category]int)
	for _, q := range questions {
		topics[q.ID] = append([]catalog.Category(nil), q.Categories...)
		for _, cat := range q.Categories {
			sizes[cat]++
		}
	}
	return &Classifier{topics: topics, sizes: sizes}
}

var defaultClassifier = NewClassifier(catalog.AllQuestions())

// Classify runs the shipped catalog's classifier.
func Classify(answers Answers) (*Result, error) {
	return defaultClassifier.Classify(answers)
}

// Classify counts signal answers per category and picks the dominant one.
//
// Every signal answer adds one to each category its question maps to. The
// top category is the one with the highest count, ties going to the lower
// ordinal. It is dominant only if its count is at least MinCategoryEvidence
// and the answer set holds at least MinTotalSignals signals.
//
// Unknown question IDs and off-scale answers are rejected, never skipped.
func (c *Classifier) Classify(answers Answers) (*Result, error) {
	result := &Result{
		Dominant: catalog.CategoryNone,
		Evidence: make(map[catalog.Category]int),
		Sizes:    maps.Clone(c.sizes),
		Answered: len(answers),
	}

	// Sorted so the first reported error is stable.
	for _, id := range slices.Sorted(maps.Keys(answers)) {
		cats, ok := c.topics[id]
		if !ok {
			return nil, fmt.Errorf("classify: %w: %q", catalog.ErrUnknownQuestion, id)
		}
		a := answers[id]
		if !a.Valid() {
			return nil, fmt.Errorf("classify question %s: %w: %q", id, catalog.ErrInvalidAnswer, string(a))
		}
		if !a.Signal() {
			continue
		}
		result.TotalSignals++
		for _, cat := range cats {
			result.Evidence[cat]++
		}
	}

	top, count := topCategory(result.Evidence)
	if top != catalog.CategoryNone && count >= MinCategoryEvidence && result.TotalSignals >= MinTotalSignals {
		result.Dominant = top
	}
	return result, nil
}

// topCategory returns the highest-count category, ties resolved by ordinal.
// Returns CategoryNone for empty evidence.
func topCategory(evidence map[catalog.Category]int) (catalog.Category, int) {
	best, bestCount := catalog.CategoryNone, 0
	for _, c := range catalog.AllCategories() {
		if n := evidence[c]; n > bestCount {
			best, bestCount = c, n
		}
	}
	return best, bestCount
}

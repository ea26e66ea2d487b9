package catalog

import (
	"fmt"
	"strings"
)

// validateQuestions performs structural checks on a question set.
// Returns a combined error describing all problems found, or nil if valid.
func validateQuestions(questions []Question) error {
	var errs []string

	seen := make(map[string]bool, len(questions))
	populated := make(map[Category]bool)

	for _, q := range questions {
		if q.ID == "" {
			errs = append(errs, "question with empty ID")
		} else if seen[q.ID] {
			errs = append(errs, fmt.Sprintf("duplicate question ID: %q", q.ID))
		}
		seen[q.ID] = true

		if strings.TrimSpace(q.Text) == "" {
			errs = append(errs, fmt.Sprintf("question %q has empty text", q.ID))
		}
		if len(q.Categories) == 0 {
			errs = append(errs, fmt.Sprintf("question %q maps to no category", q.ID))
		}
		for _, c := range q.Categories {
			if !c.Valid() {
				errs = append(errs, fmt.Sprintf("question %q references unknown category %d", q.ID, int(c)))
				continue
			}
			populated[c] = true
		}
	}

	for _, c := range AllCategories() {
		if !populated[c] {
			errs = append(errs, fmt.Sprintf("category %q has no questions", c))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

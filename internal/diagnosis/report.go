package diagnosis

import (
	"cmp"
	"slices"

	"github.com/abhisek/interference/internal/catalog"
)

// NoSignalDiagnosis is the sentence used when no answer carried a signal.
const NoSignalDiagnosis = "No interference signal was reported across the questions."

// EvidenceLine is one row of the evidence breakdown.
type EvidenceLine struct {
	Category catalog.Category
	Title    string
	Count    int
	Total    int // Questions mapped to the category by the classifier
	Strength Strength
}

// Report is the renderable form of a Result.
type Report struct {
	Dominant     catalog.Category
	Headline     string
	Diagnosis    string
	Breakdown    []EvidenceLine
	TotalSignals int
	Answered     int
}

// NewReport builds the verdict text and evidence breakdown. The breakdown is
// sorted by count descending, then by category ordinal.
func NewReport(r *Result) *Report {
	rep := &Report{
		Dominant:     r.Dominant,
		Headline:     r.Dominant.Title(),
		Diagnosis:    r.Dominant.Diagnosis(),
		TotalSignals: r.TotalSignals,
		Answered:     r.Answered,
	}
	if len(r.Evidence) == 0 {
		rep.Diagnosis = NoSignalDiagnosis
	}

	for _, c := range catalog.AllCategories() {
		n := r.Count(c)
		if n == 0 {
			continue
		}
		rep.Breakdown = append(rep.Breakdown, EvidenceLine{
			Category: c,
			Title:    c.Title(),
			Count:    n,
			Total:    r.Sizes[c],
			Strength: StrengthFor(n),
		})
	}
	slices.SortStableFunc(rep.Breakdown, func(a, b EvidenceLine) int {
		return cmp.Compare(b.Count, a.Count)
	})
	return rep
}

package diagnosis

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/interference/internal/catalog"
)

func TestNewReport_Dominant(t *testing.T) {
	r, err := Classify(fullAnswers(
		"Q21", "Q22", "Q23", "Q24", "Q25",
		"Q1", "Q2", "Q5", "Q9", "Q13",
	))
	require.NoError(t, err)

	rep := NewReport(r)
	assert.Equal(t, "Threshold Fear", rep.Headline)
	assert.Equal(t, catalog.CategoryThresholdFear.Diagnosis(), rep.Diagnosis)

	want := []EvidenceLine{
		{Category: catalog.CategoryThresholdFear, Title: "Threshold Fear", Count: 5, Total: 5, Strength: StrengthStrong},
		{Category: catalog.CategoryMisalignment, Title: "Misalignment", Count: 2, Total: 4, Strength: StrengthWeak},
		{Category: catalog.CategoryPressureAvoidance, Title: "Pressure Avoidance", Count: 1, Total: 4, Strength: StrengthWeak},
		{Category: catalog.CategoryExecutionAvoidance, Title: "Execution Avoidance", Count: 1, Total: 4, Strength: StrengthWeak},
		{Category: catalog.CategoryResourceMisuse, Title: "Resource Misuse", Count: 1, Total: 4, Strength: StrengthWeak},
	}
	if diff := cmp.Diff(want, rep.Breakdown); diff != "" {
		t.Errorf("breakdown mismatch (-want +got):\n%s", diff)
	}
}

func TestNewReport_DistributedSignal(t *testing.T) {
	r, err := Classify(fullAnswers("Q1", "Q2", "Q3", "Q5", "Q9"))
	require.NoError(t, err)

	rep := NewReport(r)
	assert.Equal(t, catalog.CategoryNone, rep.Dominant)
	assert.Equal(t, catalog.NoDominantDiagnosis, rep.Diagnosis)
	require.Len(t, rep.Breakdown, 3)
	assert.Equal(t, StrengthModerate, rep.Breakdown[0].Strength)
}

func TestNewReport_NoSignal(t *testing.T) {
	r, err := Classify(fullAnswers())
	require.NoError(t, err)

	rep := NewReport(r)
	assert.Equal(t, NoSignalDiagnosis, rep.Diagnosis)
	assert.Empty(t, rep.Breakdown)
}

func TestNewReport_TotalsFollowClassifierQuestions(t *testing.T) {
	questions := []catalog.Question{
		{ID: "a", Categories: []catalog.Category{catalog.CategoryMisalignment, catalog.CategoryThresholdFear}},
		{ID: "b", Categories: []catalog.Category{catalog.CategoryMisalignment}},
	}
	r, err := NewClassifier(questions).Classify(Answers{
		"a": catalog.AnswerAlmostAlways,
		"b": catalog.AnswerSometimes,
	})
	require.NoError(t, err)

	want := []EvidenceLine{
		{Category: catalog.CategoryMisalignment, Title: "Misalignment", Count: 2, Total: 2, Strength: StrengthWeak},
		{Category: catalog.CategoryThresholdFear, Title: "Threshold Fear", Count: 1, Total: 1, Strength: StrengthWeak},
	}
	if diff := cmp.Diff(want, NewReport(r).Breakdown); diff != "" {
		t.Errorf("breakdown mismatch (-want +got):\n%s", diff)
	}
}

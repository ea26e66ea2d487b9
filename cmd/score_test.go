package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/interference/internal/catalog"
)

// writeAnswers writes an answers file marking the given IDs "almost-always"
// and every other listed ID "never".
func writeAnswers(t *testing.T, ids []string, signal ...string) string {
	t.Helper()
	var b strings.Builder
	b.WriteString("answers:\n")
	for _, id := range ids {
		a := "never"
		for _, s := range signal {
			if s == id {
				a = "almost-always"
			}
		}
		fmt.Fprintf(&b, "  %s: %s\n", id, a)
	}
	path := filepath.Join(t.TempDir(), "answers.yaml")
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o644))
	return path
}

func TestScoreFile_Dominant(t *testing.T) {
	path := writeAnswers(t, catalog.QuestionIDs(), "Q9", "Q10", "Q11", "Q12", "Q13", "Q14", "Q17", "Q21")

	rep, err := scoreFile(path, false)
	require.NoError(t, err)
	assert.Equal(t, catalog.CategoryExecutionAvoidance, rep.Dominant)

	var out bytes.Buffer
	printReport(&out, rep, formatText)
	assert.Contains(t, out.String(), "Dominant interference: Execution Avoidance")
	assert.Contains(t, out.String(), "8 of 25 answers signalled an interference")
}

func TestScoreFile_RequiresAllAnswers(t *testing.T) {
	path := writeAnswers(t, []string{"Q1", "Q2"}, "Q1")

	_, err := scoreFile(path, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "23 questions unanswered")

	rep, err := scoreFile(path, true)
	require.NoError(t, err)
	assert.False(t, rep.Dominant.Valid())
	assert.Equal(t, 2, rep.Answered)
}

func TestScoreFile_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"answers": {"Q99": "never"}}`), 0o644))

	_, err := scoreFile(path, true)
	assert.ErrorIs(t, err, catalog.ErrUnknownQuestion)
}

func TestPrintReport_NoSignal(t *testing.T) {
	path := writeAnswers(t, catalog.QuestionIDs())
	rep, err := scoreFile(path, false)
	require.NoError(t, err)

	var out bytes.Buffer
	printReport(&out, rep, formatMarkdown)
	assert.Contains(t, out.String(), "No dominant pattern")
	assert.NotContains(t, out.String(), "|", "no breakdown table without evidence")
}

func TestListQuestions(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, listQuestions(&out, "", formatText))
	assert.Contains(t, out.String(), "25 questions")

	out.Reset()
	require.NoError(t, listQuestions(&out, "threshold_fear", formatMarkdown))
	assert.Contains(t, out.String(), "5 questions")
	assert.Contains(t, out.String(), "Q21")
	assert.NotContains(t, out.String(), "| Q1 |")

	assert.Error(t, listQuestions(&out, "bogus", formatText))
}

func TestParseTableFormat(t *testing.T) {
	f, err := parseTableFormat("markdown")
	require.NoError(t, err)
	assert.Equal(t, formatMarkdown, f)

	_, err = parseTableFormat("html")
	assert.Error(t, err)
}

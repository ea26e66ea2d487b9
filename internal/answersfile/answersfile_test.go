package answersfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/interference/internal/catalog"
)

func fullYAML(value string) string {
	var b strings.Builder
	b.WriteString("answers:\n")
	for _, id := range catalog.QuestionIDs() {
		fmt.Fprintf(&b, "  %s: %s\n", id, value)
	}
	return b.String()
}

func TestParse_YAML(t *testing.T) {
	answers, err := Parse([]byte(fullYAML("sometimes")))
	require.NoError(t, err)
	assert.Len(t, answers, catalog.Size())
	assert.Equal(t, catalog.AnswerSometimes, answers["Q7"])
	assert.Empty(t, Missing(answers))
}

func TestParse_JSONWithLegacyBooleans(t *testing.T) {
	doc := `{"answers": {"Q1": true, "Q2": false, "Q3": "Almost always"}, "note": "retake"}`

	answers, err := Parse([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, catalog.AnswerAlmostAlways, answers["Q1"])
	assert.Equal(t, catalog.AnswerNever, answers["Q2"])
	assert.Equal(t, catalog.AnswerAlmostAlways, answers["Q3"])
	assert.Len(t, Missing(answers), 22)
}

func TestParse_SchemaViolations(t *testing.T) {
	tests := map[string]string{
		"missing answers": `{"note": "x"}`,
		"empty answers":   `{"answers": {}}`,
		"bad key":         `{"answers": {"question1": "never"}}`,
		"numeric value":   `{"answers": {"Q1": 3}}`,
		"extra top level": `{"answers": {"Q1": "never"}, "user": "me"}`,
		"not an object":   `["Q1", "never"]`,
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.ErrorIs(t, err, ErrSchema)
		})
	}
}

func TestParse_UnknownQuestion(t *testing.T) {
	_, err := Parse([]byte(`{"answers": {"Q26": "never"}}`))
	assert.ErrorIs(t, err, catalog.ErrUnknownQuestion)
}

func TestParse_OffScaleValue(t *testing.T) {
	_, err := Parse([]byte(`{"answers": {"Q1": "often"}}`))
	assert.ErrorIs(t, err, catalog.ErrInvalidAnswer)
}

func TestParse_FirstErrorIsStable(t *testing.T) {
	doc := []byte(`{"answers": {"Q9": "often", "Q30": "never", "Q1": "maybe", "Q27": "never"}}`)

	_, first := Parse(doc)
	require.ErrorIs(t, first, catalog.ErrInvalidAnswer)
	assert.Contains(t, first.Error(), "question Q1")

	for i := 0; i < 20; i++ {
		_, err := Parse(doc)
		require.EqualError(t, err, first.Error(), "run %d", i)
	}
}

func TestParse_MalformedYAML(t *testing.T) {
	_, err := Parse([]byte("answers: [Q1"))
	assert.ErrorContains(t, err, "decode answers")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answers.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fullYAML("never")), 0o644))

	answers, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, answers, 25)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

// Package answersfile reads a completed answer set from a YAML or JSON
// document, for scoring outside the interactive flow.
//
//	answers:
//	  Q1: sometimes
//	  Q2: never
//	  ...
package answersfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/interference/internal/catalog"
	"github.com/abhisek/interference/internal/diagnosis"
)

// ErrSchema is returned when a document does not match the answers schema.
var ErrSchema = errors.New("answers document does not match schema")

// Load reads and parses the answers document at path.
func Load(path string) (diagnosis.Answers, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read answers file: %w", err)
	}
	answers, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return answers, nil
}

// Parse decodes a YAML or JSON answers document, validates it against the
// schema, and converts every value onto the answer scale. Unknown question
// IDs and off-scale values are errors.
func Parse(data []byte) (diagnosis.Answers, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode answers: %w", err)
	}

	// Round-trip through JSON so the validator sees canonical JSON values.
	canonical, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("decode answers: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(canonical))
	if err != nil {
		return nil, fmt.Errorf("decode answers: %w", err)
	}

	schema, err := compiledSchema()
	if err != nil {
		return nil, fmt.Errorf("compile answers schema: %w", err)
	}
	if err := schema.Validate(inst); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchema, err)
	}

	var doc struct {
		Answers map[string]any `json:"answers"`
	}
	if err := json.Unmarshal(canonical, &doc); err != nil {
		return nil, fmt.Errorf("decode answers: %w", err)
	}

	answers := make(diagnosis.Answers, len(doc.Answers))
	// Sorted so the first reported error is stable.
	for _, id := range slices.Sorted(maps.Keys(doc.Answers)) {
		v := doc.Answers[id]
		if !catalog.Has(id) {
			return nil, fmt.Errorf("%w: %q", catalog.ErrUnknownQuestion, id)
		}
		a, err := catalog.ParseAnswer(fmt.Sprint(v))
		if err != nil {
			return nil, fmt.Errorf("question %s: %w", id, err)
		}
		answers[id] = a
	}
	return answers, nil
}

// Missing returns the catalog question IDs absent from answers, in catalog
// order.
func Missing(answers diagnosis.Answers) []string {
	var missing []string
	for _, id := range catalog.QuestionIDs() {
		if _, ok := answers[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}

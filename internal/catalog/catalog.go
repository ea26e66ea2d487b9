package catalog

import "fmt"

// registry indexes seedQuestions by ID.
var registry map[string]*Question

// byCategory indexes question IDs by category, in catalog order.
var byCategory map[Category][]string

func init() {
	if err := Validate(); err != nil {
		panic(err)
	}
	registry = make(map[string]*Question, len(seedQuestions))
	byCategory = make(map[Category][]string)
	for i := range seedQuestions {
		q := &seedQuestions[i]
		registry[q.ID] = q
		for _, c := range q.Categories {
			byCategory[c] = append(byCategory[c], q.ID)
		}
	}
}

// Size is the number of questions in the shipped catalog.
func Size() int {
	return len(seedQuestions)
}

// AllQuestions returns a copy of the catalog in declaration order.
func AllQuestions() []Question {
	out := make([]Question, len(seedQuestions))
	for i, q := range seedQuestions {
		q.Categories = append([]Category(nil), q.Categories...)
		out[i] = q
	}
	return out
}

// QuestionIDs returns all question IDs in declaration order.
func QuestionIDs() []string {
	ids := make([]string, len(seedQuestions))
	for i, q := range seedQuestions {
		ids[i] = q.ID
	}
	return ids
}

// GetQuestion returns the question with the given ID.
func GetQuestion(id string) (Question, error) {
	q, ok := registry[id]
	if !ok {
		return Question{}, fmt.Errorf("%w: %q", ErrUnknownQuestion, id)
	}
	return *q, nil
}

// Has reports whether id is a catalog question.
func Has(id string) bool {
	_, ok := registry[id]
	return ok
}

// QuestionsFor returns the IDs of questions contributing to c.
func QuestionsFor(c Category) []string {
	return append([]string(nil), byCategory[c]...)
}

// Validate checks the shipped catalog.
func Validate() error {
	return validateQuestions(seedQuestions)
}

package catalog

import "fmt"

// Category is an interference domain. The declaration order is significant:
// it is the tie-break order used by the classifier.
type Category int

const (
	CategoryNone Category = iota // No dominant category
	CategoryMisalignment
	CategoryPressureAvoidance
	CategoryExecutionAvoidance
	CategoryResourceMisuse
	CategoryRelationshipConstraint
	CategoryThresholdFear
)

// categoryInfo holds the static display copy for a category.
type categoryInfo struct {
	tag       string
	title     string
	diagnosis string
}

var categoryTable = map[Category]categoryInfo{
	CategoryMisalignment: {
		tag:       "misalignment",
		title:     "Misalignment",
		diagnosis: "Effort is being applied to a direction that does not justify continued investment, creating motion without progress.",
	},
	CategoryPressureAvoidance: {
		tag:       "pressure_avoidance",
		title:     "Pressure Avoidance",
		diagnosis: "Pressure is being avoided rather than absorbed, resulting in sustained operation below actual capacity.",
	},
	CategoryExecutionAvoidance: {
		tag:       "execution_avoidance",
		title:     "Execution Avoidance",
		diagnosis: "Time and attention are being used to reduce discomfort instead of producing forward movement.",
	},
	CategoryResourceMisuse: {
		tag:       "resource_misuse",
		title:     "Resource Misuse",
		diagnosis: "Resources are being spent to manage symptoms rather than resolve the conditions creating pressure.",
	},
	CategoryRelationshipConstraint: {
		tag:       "relationship_constraint",
		title:     "Relationship Constraint",
		diagnosis: "At least one relationship is being protected at the cost of honesty, expansion, or ambition.",
	},
	CategoryThresholdFear: {
		tag:       "threshold_fear",
		title:     "Threshold Fear",
		diagnosis: "Growth is being limited to avoid the responsibility and exposure that higher capacity would require.",
	},
}

// NoDominantDiagnosis is shown when no single category clears the threshold.
const NoDominantDiagnosis = "Multiple competing interferences are present, preventing a single corrective action from emerging."

// AllCategories returns the six categories in ordinal order.
func AllCategories() []Category {
	return []Category{
		CategoryMisalignment,
		CategoryPressureAvoidance,
		CategoryExecutionAvoidance,
		CategoryResourceMisuse,
		CategoryRelationshipConstraint,
		CategoryThresholdFear,
	}
}

// Valid reports whether c is one of the six real categories.
func (c Category) Valid() bool {
	_, ok := categoryTable[c]
	return ok
}

// String returns the machine tag, e.g. "pressure_avoidance".
func (c Category) String() string {
	if info, ok := categoryTable[c]; ok {
		return info.tag
	}
	if c == CategoryNone {
		return "none"
	}
	return fmt.Sprintf("category(%d)", int(c))
}

// Title returns the human-readable name.
func (c Category) Title() string {
	if info, ok := categoryTable[c]; ok {
		return info.title
	}
	return "No dominant pattern"
}

// Diagnosis returns the canned diagnostic sentence for the category.
// CategoryNone yields NoDominantDiagnosis.
func (c Category) Diagnosis() string {
	if info, ok := categoryTable[c]; ok {
		return info.diagnosis
	}
	return NoDominantDiagnosis
}

// ParseCategory resolves a tag such as "threshold_fear".
func ParseCategory(tag string) (Category, error) {
	for _, c := range AllCategories() {
		if categoryTable[c].tag == tag {
			return c, nil
		}
	}
	return CategoryNone, fmt.Errorf("%w: %q", ErrUnknownCategory, tag)
}

package diagnosis

// Strength is a qualitative bucket for an evidence count.
type Strength string

const (
	StrengthWeak     Strength = "weak"
	StrengthModerate Strength = "moderate"
	StrengthStrong   Strength = "strong"
)

// StrengthFor maps an evidence count to its label:
// strong at 5 or more, moderate at 3 or 4, weak otherwise.
func StrengthFor(n int) Strength {
	switch {
	case n >= 5:
		return StrengthStrong
	case n >= MinCategoryEvidence:
		return StrengthModerate
	default:
		return StrengthWeak
	}
}

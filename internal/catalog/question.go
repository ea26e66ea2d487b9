package catalog

// Question is one prompt of the instrument.
type Question struct {
	ID         string
	Text       string
	Categories []Category // Evidence targets; exactly one in the shipped set
}

// HasCategory reports whether q contributes evidence to c.
func (q Question) HasCategory(c Category) bool {
	for _, qc := range q.Categories {
		if qc == c {
			return true
		}
	}
	return false
}

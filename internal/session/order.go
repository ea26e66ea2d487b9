package session

import (
	"fmt"
	"math/rand/v2"

	"github.com/abhisek/interference/internal/catalog"
)

// Shuffler permutes a slice of question IDs in place.
type Shuffler interface {
	Shuffle(ids []string)
}

// ShufflerFunc adapts a function to the Shuffler interface.
type ShufflerFunc func(ids []string)

func (f ShufflerFunc) Shuffle(ids []string) { f(ids) }

// RandomShuffler returns a uniform shuffler backed by the runtime-seeded
// global source, so every session gets an independent order.
func RandomShuffler() Shuffler {
	return ShufflerFunc(func(ids []string) {
		rand.Shuffle(len(ids), func(i, j int) {
			ids[i], ids[j] = ids[j], ids[i]
		})
	})
}

// NewOrder returns a shuffled copy of the catalog question IDs.
func NewOrder(sh Shuffler) []string {
	ids := catalog.QuestionIDs()
	sh.Shuffle(ids)
	return ids
}

// ValidateOrder checks that order holds every catalog ID exactly once.
func ValidateOrder(order []string) error {
	if len(order) != catalog.Size() {
		return fmt.Errorf("order has %d questions, want %d", len(order), catalog.Size())
	}
	seen := make(map[string]bool, len(order))
	for _, id := range order {
		if !catalog.Has(id) {
			return fmt.Errorf("order: %w: %q", catalog.ErrUnknownQuestion, id)
		}
		if seen[id] {
			return fmt.Errorf("order repeats question %q", id)
		}
		seen[id] = true
	}
	return nil
}

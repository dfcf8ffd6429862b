// Package trait holds the weighted trait tables and the sampler that draws
// building descriptors from them
package trait

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrEmptyTable is returned for a table with no entries
	ErrEmptyTable = errors.New("weighted table is empty")

	// ErrInvalidWeight is returned for a table holding a non-positive weight
	ErrInvalidWeight = errors.New("weighted table has non-positive weight")

	// ErrWeightOverflow is returned when the weights do not sum within int range
	ErrWeightOverflow = errors.New("weighted table total overflows int")
)

// Entry pairs a trait value with its relative weight
type Entry[T comparable] struct {
	Value  T
	Weight int
}

// Table is an ordered discrete distribution over one trait axis
// Selection probability of an entry is Weight / Total()
type Table[T comparable] []Entry[T]

// Total returns the sum of all weights
// Only meaningful on a table that passed Validate
func (t Table[T]) Total() int {
	total := 0
	for _, e := range t {
		total += e.Weight
	}
	return total
}

// Validate rejects empty tables, non-positive weights and totals past math.MaxInt
func (t Table[T]) Validate() error {
	if len(t) == 0 {
		return ErrEmptyTable
	}
	total := 0
	for i, e := range t {
		if e.Weight <= 0 {
			return fmt.Errorf("%w: entry %d (%v) weight %d", ErrInvalidWeight, i, e.Value, e.Weight)
		}
		if total > math.MaxInt-e.Weight {
			return fmt.Errorf("%w: at entry %d (%v)", ErrWeightOverflow, i, e.Value)
		}
		total += e.Weight
	}
	return nil
}

// Probability returns the selection probability of v, 0 if absent
func (t Table[T]) Probability(v T) float64 {
	total := t.Total()
	if total <= 0 {
		return 0
	}
	w := 0
	for _, e := range t {
		if e.Value == v {
			w += e.Weight
		}
	}
	return float64(w) / float64(total)
}

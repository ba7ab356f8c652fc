// Package draws holds historical draw records and window selection.
package draws

import (
	"fmt"
	"sort"

	"github.com/verte-zerg/lotto/internal/model"
)

// RecordError reports a structurally invalid draw record.
type RecordError struct {
	Index  int
	Reason string
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("draw record %d: %s", e.Index, e.Reason)
}

// CheckNumbers verifies a number set has exactly count distinct values in [1, pool].
func CheckNumbers(numbers []int, count, pool int) error {
	if len(numbers) != count {
		return fmt.Errorf("expected %d numbers, got %d", count, len(numbers))
	}
	seen := make(map[int]bool, len(numbers))
	for _, n := range numbers {
		if n < 1 || n > pool {
			return fmt.Errorf("number %d outside pool [1, %d]", n, pool)
		}
		if seen[n] {
			return fmt.Errorf("duplicate number %d", n)
		}
		seen[n] = true
	}
	return nil
}

// Store is an ordered, chronologically ascending sequence of draws.
type Store struct {
	draws []model.Draw
}

// NewStore validates records and builds a store. Records must already be in
// chronological order; indexes are assigned by position.
func NewStore(records []model.Draw, cfg model.Config) (*Store, error) {
	out := make([]model.Draw, len(records))
	for i, d := range records {
		if err := CheckNumbers(d.Numbers, cfg.Select, cfg.Pool); err != nil {
			return nil, &RecordError{Index: i, Reason: err.Error()}
		}
		nums := make([]int, len(d.Numbers))
		copy(nums, d.Numbers)
		sort.Ints(nums)
		out[i] = model.Draw{Index: i, Date: d.Date, Numbers: nums}
	}
	return &Store{draws: out}, nil
}

// Len returns the number of draws in the store.
func (s *Store) Len() int {
	return len(s.draws)
}

// Window returns the trailing w draws, or all draws when w exceeds the total
// or is non-positive.
func (s *Store) Window(w int) []model.Draw {
	if w <= 0 || w >= len(s.draws) {
		return s.draws
	}
	return s.draws[len(s.draws)-w:]
}

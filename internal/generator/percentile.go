package generator

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

var (
	// ErrEmptySample is returned when a percentile is requested over no values.
	ErrEmptySample = errors.New("percentile of empty sample")
	// ErrInvalidPercentile is returned for percentiles outside [0, 100].
	ErrInvalidPercentile = errors.New("percentile must be between 0 and 100")
)

// Percentile returns the p-th percentile of values, interpolating linearly
// between the two closest ranks. values is not modified.
func Percentile(values []float64, p float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptySample
	}
	if p < 0 || p > 100 || math.IsNaN(p) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidPercentile, p)
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)

	pos := p / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo], nil
	}
	return sorted[lo] + (sorted[hi]-sorted[lo])*(pos-float64(lo)), nil
}

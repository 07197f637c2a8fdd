// Package smooth implements the single-pole exponential smoother applied
// by the iir tool to selected columns of a delimited stream.
package smooth

import (
	"math"
	"strconv"

	"github.com/pkg/errors"
)

// Smoother holds one exponential-moving-average accumulator per selected
// column. It is unprimed until the first row, which sets the accumulators
// verbatim; every later row updates them in place with window N:
//
//	avg = ((avg*N) - avg + v) / N
//
// The evaluation order is part of the observable output and must not be
// rewritten into the algebraically equal avg + (v-avg)/N form, which rounds
// differently.
type Smoother struct {
	window float64
	avgs   []float64
	primed bool
}

// New creates a Smoother with the given window. The window must be at
// least 1; 1 means no smoothing.
func New(window int) (*Smoother, error) {
	if window < 1 {
		return nil, errors.Errorf("smoothing window must be >= 1, got %d", window)
	}
	return &Smoother{window: float64(window)}, nil
}

// ErrWidthDrift reports a row whose projected width differed from the
// accumulator width. The update is still applied positionally up to the
// shorter length; the caller decides whether to diagnose.
var ErrWidthDrift = errors.New("projected field count differs from accumulator")

// Update feeds one row of values and returns the accumulators. The first
// row is copied verbatim. The returned slice aliases internal state and is
// valid until the next call.
func (s *Smoother) Update(values []float64) ([]float64, error) {
	if !s.primed {
		s.avgs = append(s.avgs[:0], values...)
		s.primed = true
		return s.avgs, nil
	}
	n := len(values)
	if len(s.avgs) < n {
		n = len(s.avgs)
	}
	for i := 0; i < n; i++ {
		s.avgs[i] = ((s.avgs[i] * s.window) - s.avgs[i] + values[i]) / s.window
	}
	if len(values) != len(s.avgs) {
		return s.avgs, errors.Wrapf(ErrWidthDrift, "got %d fields, have %d accumulators", len(values), len(s.avgs))
	}
	return s.avgs, nil
}

// ParseValue converts a field to a float. A field that does not parse is
// NaN, which then poisons its accumulator for the rest of the stream: the
// recurrence never recovers because avg*N - avg stays NaN.
func ParseValue(field string) float64 {
	v, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// ParseValues converts a row of fields.
func ParseValues(fields []string) []float64 {
	vals := make([]float64, len(fields))
	for i, f := range fields {
		vals[i] = ParseValue(f)
	}
	return vals
}

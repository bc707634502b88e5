package marshal

import (
	"fmt"
	"iter"
	"slices"

	"gonum.org/v1/gonum/mat"

	"github.com/genericmappingtools/gmt-go/pkg/gmt"
)

// Vector is a one-dimensional input accepted by VectorsToArrays. It is one of
// Buffer, Series or Sequence.
type Vector interface {
	array() (*mat.VecDense, error)
}

// Buffer is a numeric array that may be a strided view, such as the result
// of (*mat.Dense).ColView.
type Buffer struct {
	Data *mat.VecDense
}

func (b Buffer) array() (*mat.VecDense, error) {
	if b.Data == nil || b.Data.IsEmpty() {
		return nil, errEmpty
	}
	return b.Data, nil
}

// Series is a labeled one-dimensional column: values plus an optional name
// and row index. Only the values are handed to GMT.
type Series struct {
	Name   string
	Index  []string
	Values *mat.VecDense
}

func (s Series) array() (*mat.VecDense, error) {
	if s.Values == nil || s.Values.IsEmpty() {
		return nil, errEmpty
	}
	if s.Index != nil && len(s.Index) != s.Values.Len() {
		return nil, fmt.Errorf("%w: series %q has %d index labels for %d values",
			gmt.ErrInvalidInput, s.Name, len(s.Index), s.Values.Len())
	}
	return s.Values, nil
}

// Sequence is any ordered run of numbers. Build one with Floats, Ints, Range
// or Seq.
type Sequence struct {
	seq iter.Seq[float64]
	err error
}

func (s Sequence) array() (*mat.VecDense, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.seq == nil {
		return nil, errEmpty
	}
	data := slices.Collect(s.seq)
	if len(data) == 0 {
		return nil, errEmpty
	}
	return mat.NewVecDense(len(data), data), nil
}

// Floats wraps a float64 slice. The slice is copied on conversion.
func Floats(values []float64) Sequence {
	return Seq(slices.Values(values))
}

// Ints wraps an integer slice, converting every element to float64.
func Ints(values []int) Sequence {
	return Seq(func(yield func(float64) bool) {
		for _, v := range values {
			if !yield(float64(v)) {
				return
			}
		}
	})
}

// Range yields start, start+step, ... up to but excluding stop. A zero step
// is invalid.
func Range(start, stop, step int) Sequence {
	if step == 0 {
		return Sequence{err: fmt.Errorf("%w: range step must not be zero", gmt.ErrInvalidInput)}
	}
	return Seq(func(yield func(float64) bool) {
		for v := start; (step > 0 && v < stop) || (step < 0 && v > stop); v += step {
			if !yield(float64(v)) {
				return
			}
		}
	})
}

// Seq wraps an arbitrary iterator.
func Seq(seq iter.Seq[float64]) Sequence {
	return Sequence{seq: seq}
}

var errEmpty = fmt.Errorf("%w: empty vector", gmt.ErrInvalidInput)

// VectorsToArrays converts each vector into a contiguous array, preserving
// order and count. Inputs that are already contiguous buffers are returned
// without copying; strided views are copied.
func VectorsToArrays(vectors []Vector) ([]*mat.VecDense, error) {
	arrays := make([]*mat.VecDense, len(vectors))
	for i, v := range vectors {
		if v == nil {
			return nil, fmt.Errorf("vector %d: %w", i, errEmpty)
		}
		a, err := v.array()
		if err != nil {
			return nil, fmt.Errorf("vector %d: %w", i, err)
		}
		arrays[i] = AsContiguous(a)
	}
	return arrays, nil
}

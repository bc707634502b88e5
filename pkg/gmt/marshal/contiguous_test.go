package marshal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func TestAsContiguousKeepsContiguousVector(t *testing.T) {
	v := mat.NewVecDense(3, []float64{8, 9, 10})
	got := AsContiguous(v)
	assert.Same(t, v, got)
	assert.True(t, IsContiguous(got))
}

func TestAsContiguousCopiesColumnView(t *testing.T) {
	data := mat.NewDense(3, 2, []float64{1, 2, 3, 4, 5, 6})
	col := data.ColView(0).(*mat.VecDense)
	assert.False(t, IsContiguous(col))

	got := AsContiguous(col)
	assert.NotSame(t, col, got)
	assert.True(t, IsContiguous(got))
	assert.Equal(t, []float64{1, 3, 5}, got.RawVector().Data)

	// The copy does not alias the source.
	got.SetVec(0, 100)
	assert.Equal(t, 1.0, data.At(0, 0))
}

func TestAsContiguousMatrix(t *testing.T) {
	m := mat.NewDense(4, 5, nil)
	for i := range 4 {
		for j := range 5 {
			m.Set(i, j, float64(i*5+j))
		}
	}
	assert.True(t, IsContiguousMatrix(m))
	assert.Same(t, m, AsContiguousMatrix(m))

	view := m.Slice(1, 3, 1, 4).(*mat.Dense)
	assert.False(t, IsContiguousMatrix(view))

	got := AsContiguousMatrix(view)
	assert.True(t, IsContiguousMatrix(got))
	assert.True(t, mat.Equal(view, got))
	assert.Equal(t, []float64{6, 7, 8, 11, 12, 13}, got.RawMatrix().Data)
}

func TestSingleRowViewIsContiguous(t *testing.T) {
	m := mat.NewDense(3, 3, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
	row := m.Slice(1, 2, 0, 3).(*mat.Dense)
	assert.True(t, IsContiguousMatrix(row))
	assert.Same(t, row, AsContiguousMatrix(row))
}

package marshal

import "gonum.org/v1/gonum/mat"

// IsContiguous reports whether v's elements are adjacent in memory.
func IsContiguous(v *mat.VecDense) bool {
	if v.IsEmpty() || v.Len() <= 1 {
		return true
	}
	return v.RawVector().Inc == 1
}

// AsContiguous returns v itself when it is contiguous and a fresh contiguous
// copy otherwise.
func AsContiguous(v *mat.VecDense) *mat.VecDense {
	if IsContiguous(v) {
		return v
	}
	out := mat.NewVecDense(v.Len(), nil)
	out.CopyVec(v)
	return out
}

// IsContiguousMatrix reports whether m is laid out in row-major order with no
// gap between rows.
func IsContiguousMatrix(m *mat.Dense) bool {
	if m.IsEmpty() {
		return true
	}
	r, c := m.Dims()
	return r <= 1 || m.RawMatrix().Stride == c
}

// AsContiguousMatrix returns m itself when it is contiguous and a fresh
// row-major copy otherwise.
func AsContiguousMatrix(m *mat.Dense) *mat.Dense {
	if IsContiguousMatrix(m) {
		return m
	}
	return mat.DenseCopyOf(m)
}

// Package marshal converts Go-side numeric data into the contiguous buffers
// libgmt expects.
//
// GMT's C API takes raw pointers and assumes row-major (C) order with a unit
// stride. Vectors and matrices from gonum can be strided views (a column of a
// matrix, a sub-slice of a grid), so every conversion here ends with a
// copy-on-demand step: data that is already contiguous is returned as is, and
// anything else is copied into a fresh contiguous buffer.
//
// Two conversions are provided:
//
//   - VectorsToArrays turns a list of one-dimensional inputs (raw buffers,
//     labeled series or plain sequences) into contiguous *mat.VecDense values.
//   - DataArrayToMatrix turns a labeled 2-D grid into a contiguous *mat.Dense
//     plus its Region (west, east, south, north) and Increment (east-west,
//     north-south spacing).
//
// All functions allocate fresh outputs and never mutate their inputs, so they
// are safe to call concurrently.
package marshal

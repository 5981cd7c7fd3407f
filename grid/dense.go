// SPDX-License-Identifier: MIT

// Package grid - interop with gonum's dense float64 matrices.
//
// A Grid converts losslessly into a 3×3 *mat.Dense (every int32 is exactly
// representable as float64). The reverse direction is validated: the shape
// must be 3×3 and every value must be an integer within the int32 range.
package grid

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ToDense returns a newly allocated 3×3 *mat.Dense holding m's values.
// Complexity: O(1) (9 cells), one allocation.
func ToDense(m *Grid) *mat.Dense {
	data := make([]float64, 0, Size*Size) // row-major backing store
	for i := range m {
		for j := range m[i] {
			data = append(data, float64(m[i][j]))
		}
	}

	return mat.NewDense(Size, Size, data)
}

// FromDense converts any gonum matrix (including transposed views such as
// d.T()) into a Grid.
//
// Errors:
//   - ErrNilMatrix  if d is nil.
//   - ErrNonSquare  if rows != cols.
//   - ErrBadShape   if d is square but not Size×Size.
//   - ErrNotInteger if a value is fractional, NaN, ±Inf or outside int32.
func FromDense(d mat.Matrix) (Grid, error) {
	var g Grid
	if d == nil {
		return g, gridErrorf(opFromDense, ErrNilMatrix)
	}

	r, c := d.Dims()
	if r != c {
		return g, gridErrorf(opFromDense, fmt.Errorf("%dx%d: %w", r, c, ErrNonSquare))
	}
	if r != Size {
		return g, gridErrorf(opFromDense, fmt.Errorf("%dx%d: %w", r, c, ErrBadShape))
	}

	var v float64
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			v = d.At(i, j)
			if !isInt32(v) {
				return g, gridErrorf(opFromDense, fmt.Errorf("At(%d,%d)=%g: %w", i, j, v, ErrNotInteger))
			}
			g[i][j] = int32(v)
		}
	}

	return g, nil
}

// isInt32 reports whether v is an integral value representable as int32.
// NaN fails every comparison and ±Inf fails the range check.
func isInt32(v float64) bool {
	return v >= math.MinInt32 && v <= math.MaxInt32 && v == math.Trunc(v)
}

// SPDX-License-Identifier: MIT

package grid

import "fmt"

// FromRows builds a Grid from a row-major [][]int32, copying the values.
//
// Implementation:
//   - Stage 1 (Validate): exactly Size rows, else ErrBadShape.
//   - Stage 2 (Validate): every row has as many columns as there are rows,
//     else ErrNonSquare.
//   - Stage 3 (Execute): copy cells row by row.
//
// Errors are wrapped with the "FromRows" tag; match with errors.Is.
// The input slice is not retained.
func FromRows(rows [][]int32) (Grid, error) {
	var g Grid
	if len(rows) != Size {
		return g, gridErrorf(opFromRows, fmt.Errorf("%d rows: %w", len(rows), ErrBadShape))
	}
	for i, row := range rows {
		if len(row) != len(rows) {
			return g, gridErrorf(opFromRows, fmt.Errorf("row %d has %d columns: %w", i, len(row), ErrNonSquare))
		}
		copy(g[i][:], row)
	}

	return g, nil
}

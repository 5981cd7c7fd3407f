// SPDX-License-Identifier: MIT

// Package grid: domain types.
package grid

// Size is the number of rows and the number of columns of every Grid.
const Size = 3

// Grid is a 3×3 arrangement of signed integers addressed by (row, column).
// Grid[i] is row i; Grid[i][j] is the value in row i, column j.
// The zero value is the all-zero grid.
type Grid [Size][Size]int32

// At returns the value in row i, column j.
// Panics on out-of-range indices, exactly like indexing the array.
func (m *Grid) At(i, j int) int32 {
	return m[i][j]
}

// IsSymmetric reports whether m[i][j] == m[j][i] for every i, j.
// Only the strict upper triangle is compared.
// Complexity: O(1) (3 comparisons).
func (m *Grid) IsSymmetric() bool {
	var i, j int
	for i = 0; i < Size; i++ {
		for j = i + 1; j < Size; j++ {
			if m[i][j] != m[j][i] {
				return false
			}
		}
	}

	return true
}

// Rows returns a freshly allocated [][]int32 copy of m.
// The result does not alias m; it is the inverse of FromRows.
func (m *Grid) Rows() [][]int32 {
	out := make([][]int32, Size)
	for i := range m {
		row := make([]int32, Size)
		copy(row, m[i][:])
		out[i] = row
	}

	return out
}

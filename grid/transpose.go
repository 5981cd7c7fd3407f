// SPDX-License-Identifier: MIT

package grid

// Transpose returns a new grid with rows and columns of m swapped (mᵀ).
// m is received by value, so the caller's grid is never mutated.
//
// Implementation:
//   - Stage 1: start from a zero-filled result.
//   - Stage 2: for every (i, j) assign t[j][i] = m[i][j].
//
// Behavior highlights:
//   - Each cell assignment is independent; traversal order is fixed i→j.
//   - Transpose(Transpose(m)) == m for every m.
//   - Transpose(m) == m iff m.IsSymmetric().
//
// Complexity:
//   - Time O(1) (9 assignments), no heap allocation.
func Transpose(m Grid) Grid {
	var t Grid   // zero-filled result
	var i, j int // loop iterators
	for i = 0; i < Size; i++ {
		for j = 0; j < Size; j++ {
			t[j][i] = m[i][j]
		}
	}

	return t
}

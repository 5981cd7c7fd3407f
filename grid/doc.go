// SPDX-License-Identifier: MIT

// Package grid implements a fixed-size 3×3 grid of signed 32-bit integers
// together with its transpose and a plain-text printer.
//
// What & Why:
//
//	Grid is a value type ([3][3]int32). Passing a Grid copies every cell, so
//	Transpose can never observe or mutate its caller's data, and no grid is
//	ever shared between owners.
//
// Surface:
//
//   - Transpose(m)      — mᵀ, where Transpose(m)[j][i] == m[i][j].
//   - Print / Fprint    — one line per row, each value followed by a space.
//   - FromRows          — validated construction from a [][]int32.
//   - ToDense/FromDense — interop with gonum's mat.Dense.
//
// Complexity:
//
//	Every operation touches each of the 9 cells a constant number of times.
//
// Quick example:
//
//	m := grid.Grid{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
//	t := grid.Transpose(m)
//	grid.Print(&t)
//	// 1 4 7
//	// 2 5 8
//	// 3 6 9
package grid

// SPDX-License-Identifier: MIT
package grid_test

import (
	"fmt"

	"github.com/katalvlaran/lvgrid/grid"
)

// ExampleTranspose swaps rows and columns of a 3×3 grid.
func ExampleTranspose() {
	m := grid.Grid{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	t := grid.Transpose(m)

	fmt.Println(t[0], t[1], t[2])
	fmt.Println("involution:", grid.Transpose(t) == m)
	// Output:
	// [1 4 7] [2 5 8] [3 6 9]
	// involution: true
}

// ExampleGrid_String shows the printer layout; every value keeps its trailing space.
func ExampleGrid_String() {
	m := grid.Grid{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}

	fmt.Printf("%q\n", m.String())
	// Output:
	// "1 2 3 \n4 5 6 \n7 8 9 \n"
}

// ExampleFromRows rejects ragged input.
func ExampleFromRows() {
	_, err := grid.FromRows([][]int32{{1, 2, 3}, {4, 5}, {7, 8, 9}})
	fmt.Println(err)
	// Output:
	// FromRows: row 1 has 2 columns: grid: input is not square
}

// SPDX-License-Identifier: MIT
// Package grid_test contains shared fixtures for grid tests.

package grid_test

import (
	"math/rand"

	"github.com/katalvlaran/lvgrid/grid"
)

// seed keeps randomized property checks reproducible.
const seed = 42

// trials is the number of random grids per property check.
const trials = 256

// sampleGrid is the driver's fixed input.
var sampleGrid = grid.Grid{
	{101, 102, 103},
	{201, 202, 203},
	{301, 302, 303},
}

// sampleTransposed is sampleGrid with rows and columns swapped.
var sampleTransposed = grid.Grid{
	{101, 201, 301},
	{102, 202, 302},
	{103, 203, 303},
}

// randomGrid fills a Grid with values spanning the full int32 range.
func randomGrid(r *rand.Rand) grid.Grid {
	var g grid.Grid
	for i := range g {
		for j := range g[i] {
			g[i][j] = int32(r.Uint32())
		}
	}

	return g
}

// randomSymmetric mirrors the upper triangle of a random grid onto the lower one.
func randomSymmetric(r *rand.Rand) grid.Grid {
	g := randomGrid(r)
	for i := 0; i < grid.Size; i++ {
		for j := i + 1; j < grid.Size; j++ {
			g[j][i] = g[i][j]
		}
	}

	return g
}

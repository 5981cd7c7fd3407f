// SPDX-License-Identifier: MIT

// Command transpose prints a fixed 3×3 sample grid and its transpose.
//
// Scenario:
//
//	matrix:
//	101 102 103
//	201 202 203
//	301 302 303
//	transposed:
//	101 201 301
//	102 202 302
//	103 203 303
//
// (each printed value is followed by a single space). The program takes no
// arguments, flags or environment and exits 0. The only failure it can see
// is a write error on stdout, which is logged to stderr with exit status 1.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/lvgrid/grid"
)

// Labels printed before each grid.
const (
	labelMatrix     = "matrix:"
	labelTransposed = "transposed:"
)

// sample is the fixed input grid.
var sample = grid.Grid{
	{101, 102, 103},
	{201, 202, 203},
	{301, 302, 303},
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if err := run(os.Stdout, sample); err != nil {
		logger.Error("transpose: write output", "err", err)
		os.Exit(1)
	}
}

// run prints m under labelMatrix, then Transpose(m) under labelTransposed.
func run(w io.Writer, m grid.Grid) error {
	if _, err := fmt.Fprintln(w, labelMatrix); err != nil {
		return err
	}
	if err := grid.Fprint(w, &m); err != nil {
		return err
	}

	t := grid.Transpose(m)
	if _, err := fmt.Fprintln(w, labelTransposed); err != nil {
		return err
	}

	return grid.Fprint(w, &t)
}

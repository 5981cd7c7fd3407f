// SPDX-License-Identifier: MIT
// Package grid: sentinel error set.
// Only constructors that accept foreign data (FromRows, FromDense) can fail.
// Transpose and the printer operate on a well-formed Grid and have no error
// conditions; Fprint only forwards writer failures.

package grid

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "grid: ". Callers match with errors.Is;
// call sites add an operation tag through gridErrorf.

var (
	// ErrBadShape is returned when the input does not have exactly Size rows
	// and Size columns.
	ErrBadShape = errors.New("grid: invalid shape")

	// ErrNonSquare signals that the row lengths differ from the row count.
	ErrNonSquare = errors.New("grid: input is not square")

	// ErrNilMatrix indicates that a nil matrix was passed to FromDense.
	ErrNilMatrix = errors.New("grid: nil matrix")

	// ErrNotInteger signals a cell that is not an integral value within
	// the int32 range (including NaN and ±Inf).
	ErrNotInteger = errors.New("grid: value is not an int32")
)

// Operation tags used in wrapped errors.
const (
	opFromRows  = "FromRows"
	opFromDense = "FromDense"
)

// gridErrorf wraps err with an operation tag as "<tag>: <err>".
// err must be non-nil.
func gridErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// SPDX-License-Identifier: MIT

// Package grid - plain-text rendering.
//
// Format: exactly Size lines; each value is written in decimal followed by a
// single space, and every row ends with "\n":
//
//	1 2 3 \n
//	4 5 6 \n
//	7 8 9 \n
package grid

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtSep    = " "  // written after every value, including the last one
	_fmtRowEnd = "\n" // row terminator
)

// Print writes m to standard output in the format described above.
// The grid is only read and is not retained after the call.
// Write errors on stdout are ignored, mirroring fmt.Print.
func Print(m *Grid) {
	_ = Fprint(os.Stdout, m)
}

// Fprint writes m to w and returns the first write error, if any.
// Output is buffered and flushed once so w sees a single Write for the grid.
// Complexity: O(1) (9 values).
func Fprint(w io.Writer, m *Grid) error {
	bw := bufio.NewWriter(w)
	appendGrid(bw, m)

	return bw.Flush()
}

// String implements fmt.Stringer; it returns exactly what Fprint writes.
func (m *Grid) String() string {
	var sb strings.Builder
	appendGrid(&sb, m)

	return sb.String()
}

// appendGrid renders m into sb. Errors are deferred to the caller's Flush
// (bufio.Writer) or cannot happen (strings.Builder).
func appendGrid(sb io.StringWriter, m *Grid) {
	var i, j int
	for i = 0; i < Size; i++ {
		for j = 0; j < Size; j++ {
			_, _ = sb.WriteString(strconv.FormatInt(int64(m[i][j]), 10))
			_, _ = sb.WriteString(_fmtSep)
		}
		_, _ = sb.WriteString(_fmtRowEnd)
	}
}

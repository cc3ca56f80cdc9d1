// SPDX-License-Identifier: MIT

// Package matrix - text rendering.
//
// Format (stable; external tools may parse it):
//   - Vector: one element per line, "x\n".
//   - Dense:  one row per line, every element followed by a tab, "a\tb\tc\t\n".
//
// Render returns a lazy iter.Seq over the lines. The sequence is a pure
// function of the data: ranging over it twice yields the same lines.

package matrix

import (
	"io"
	"iter"
	"reflect"
	"strconv"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtSep     = "\t"
	_fmtLineEnd = "\n"
)

// formatElem renders one element. Integral T is exact; floating T uses %g
// style with the configured significant digits.
func formatElem[T Number](x T, precision int) string {
	if isIntegral[T]() {
		return strconv.FormatInt(int64(x), 10)
	}

	bitSize := 64
	if reflect.TypeOf(x).Kind() == reflect.Float32 {
		bitSize = 32 // shortest form must not expose widening noise
	}

	return strconv.FormatFloat(float64(x), 'g', precision, bitSize)
}

// Render yields one line per row: each element followed by "\t", then "\n".
// The empty matrix yields nothing.
//
//	for line := range m.Render() { fmt.Print(line) }
func (m *Dense[T]) Render(opts ...Option) iter.Seq[string] {
	o := gatherOptions(opts...)

	return func(yield func(string) bool) {
		var b strings.Builder
		for i := 0; i < m.r; i++ {
			b.Reset()
			for _, x := range m.Row(i) {
				b.WriteString(formatElem(x, o.precision))
				b.WriteString(_fmtSep)
			}
			b.WriteString(_fmtLineEnd)
			if !yield(b.String()) {
				return
			}
		}
	}
}

// Render yields one line per element, "x\n".
func (v *Vector[T]) Render(opts ...Option) iter.Seq[string] {
	o := gatherOptions(opts...)

	return func(yield func(string) bool) {
		for _, x := range v.data {
			if !yield(formatElem(x, o.precision) + _fmtLineEnd) {
				return
			}
		}
	}
}

// writeLines drains seq into w; shared by the WriteTo implementations.
func writeLines(w io.Writer, seq iter.Seq[string]) (int64, error) {
	var total int64
	for line := range seq {
		n, err := io.WriteString(w, line)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}

	return total, nil
}

// WriteTo implements io.WriterTo using the default rendering.
func (m *Dense[T]) WriteTo(w io.Writer) (int64, error) { return writeLines(w, m.Render()) }

// WriteTo implements io.WriterTo using the default rendering.
func (v *Vector[T]) WriteTo(w io.Writer) (int64, error) { return writeLines(w, v.Render()) }

// String implements fmt.Stringer: the concatenated default rendering.
func (m *Dense[T]) String() string { return joinLines(m.Render()) }

// String implements fmt.Stringer: the concatenated default rendering.
func (v *Vector[T]) String() string { return joinLines(v.Render()) }

func joinLines(seq iter.Seq[string]) string {
	var b strings.Builder
	for line := range seq {
		b.WriteString(line)
	}

	return b.String()
}

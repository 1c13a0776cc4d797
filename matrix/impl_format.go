// SPDX-License-Identifier: MIT

package matrix

import (
	"strconv"
	"strings"
)

// formatEntry renders e exactly, or as a fixed-point decimal when requested.
func formatEntry(e Entry, o Options) string {
	if o.decimals < 0 {
		return e.String()
	}

	return strconv.FormatFloat(e.Float64(), 'f', o.decimals, 64)
}

// writeEntries writes row joined by the separator.
func writeEntries(sb *strings.Builder, row []Entry, o Options) {
	for j, e := range row {
		if j > 0 {
			sb.WriteString(o.separator)
		}
		sb.WriteString(formatEntry(e, o))
	}
}

// Format renders m one row per line:
//
//	|1 2|
//	|3 4|
//
// There is no trailing newline; a matrix without rows renders as "".
// The output is for display only and is not a parse target.
func (m *Dense) Format(opts ...Option) string {
	o := gatherOptions(opts...)

	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(o.border)
		writeEntries(&sb, m.row(i), o)
		sb.WriteString(o.border)
	}

	return sb.String()
}

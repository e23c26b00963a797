// Package bench: fixed-width rendering of the two tabular reports.
//
// Both reports share one grid shape: a header row of order names over a row
// per size, sizes and orders laid out in first-insertion order. One report
// presents the time field (one decimal place), the other the checksum field.

package bench

import (
	"fmt"
	"strings"
)

// Formatting constants for the fixed-width grids.
const (
	headingWidth = 7  // width of the size column
	dataWidth    = 15 // width of each order column
)

// Underline fragments for the header separator row.
const (
	headingRule = "====="
	dataRule    = "=========="
)

// RenderTimes renders the average-time grid, values in microseconds with
// exactly one decimal place.
func (t *Table) RenderTimes() string {
	return t.renderGrid("TIMES (MICROSECONDS):", func(k Key) string {
		r, ok := t.entries[k]
		if !ok {
			return "-"
		}

		return fmt.Sprintf("%.1f", r.TimeUS)
	})
}

// RenderSums renders the checksum grid.
func (t *Table) RenderSums() string {
	return t.renderGrid("SUMS:", func(k Key) string {
		r, ok := t.entries[k]
		if !ok {
			return "-"
		}

		return fmt.Sprintf("%d", r.Sum)
	})
}

// renderGrid lays out one report: title, header row of order names, a
// separator, then one row per size with cell(k) in each order column.
// Missing entries render as "-" so a partial table stays readable.
//
// Complexity: O(rows · cols).
func (t *Table) renderGrid(title string, cell func(Key) string) string {
	var sb strings.Builder

	sb.WriteString("\n\n")
	sb.WriteString(title)
	sb.WriteString("\n\n")

	fmt.Fprintf(&sb, "%*s ", headingWidth, "N")
	for _, o := range t.orders {
		fmt.Fprintf(&sb, "%*s ", dataWidth, o.String())
	}
	sb.WriteByte('\n')

	fmt.Fprintf(&sb, "%*s ", headingWidth, headingRule)
	for range t.orders {
		fmt.Fprintf(&sb, "%*s ", dataWidth, dataRule)
	}
	sb.WriteByte('\n')

	for _, n := range t.sizes {
		fmt.Fprintf(&sb, "%*d ", headingWidth, n)
		for _, o := range t.orders {
			fmt.Fprintf(&sb, "%*s ", dataWidth, cell(Key{Size: n, Order: o}))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

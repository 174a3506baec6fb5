package table

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

const columnGap = "  "

// Format returns the rows padded according to the widest entry in each
// column. Cells may contain ANSI styling; widths are measured in cells.
func Format(rows [][]string, alignments []Alignment) []string {
	return Fit(rows, alignments, 0, -1)
}

// Fit formats rows like Format and, when width is positive and the rows are
// wider, truncates the cells of column shrink so every row fits. A negative
// shrink disables truncation.
func Fit(rows [][]string, alignments []Alignment, width, shrink int) []string {
	if len(rows) == 0 {
		return nil
	}
	widths := columnWidths(rows)
	if width > 0 && shrink >= 0 && shrink < len(widths) {
		total := ansi.StringWidth(columnGap) * (len(widths) - 1)
		for _, w := range widths {
			total += w
		}
		if over := total - width; over > 0 {
			rows = copyRows(rows)
			limit := widths[shrink] - over
			if limit < 1 {
				limit = 1
			}
			widths[shrink] = limit
			for _, row := range rows {
				if shrink < len(row) && ansi.StringWidth(row[shrink]) > limit {
					row[shrink] = truncate.StringWithTail(row[shrink], uint(limit), "…")
				}
			}
		}
	}
	out := make([]string, len(rows))
	for i, row := range rows {
		var b strings.Builder
		for c, cell := range row {
			if c > 0 {
				b.WriteString(columnGap)
			}
			pad := widths[c] - ansi.StringWidth(cell)
			if pad < 0 {
				pad = 0
			}
			if c < len(alignments) && alignments[c] == AlignRight {
				b.WriteString(strings.Repeat(" ", pad))
				b.WriteString(cell)
			} else {
				b.WriteString(cell)
				if c < len(row)-1 {
					b.WriteString(strings.Repeat(" ", pad))
				}
			}
		}
		out[i] = b.String()
	}
	return out
}

func columnWidths(rows [][]string) []int {
	cols := 0
	for _, row := range rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	widths := make([]int, cols)
	for _, row := range rows {
		for c, cell := range row {
			if w := ansi.StringWidth(cell); w > widths[c] {
				widths[c] = w
			}
		}
	}
	return widths
}

func copyRows(rows [][]string) [][]string {
	dup := make([][]string, len(rows))
	for i, row := range rows {
		dup[i] = append([]string(nil), row...)
	}
	return dup
}

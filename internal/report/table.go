// Package report prints stored registrations as aligned text tables.
package report

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Table lays out header and rows as a pipe table whose columns are padded to
// the widest cell by terminal display width, so wide runes like ₹ or CJK
// text stay aligned.
func Table(header []string, rows [][]string) []string {
	colCount := len(header)
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}

	colWidths := make([]int, colCount)
	measure := func(row []string) {
		for i := 0; i < len(row) && i < colCount; i++ {
			if w := runewidth.StringWidth(row[i]); w > colWidths[i] {
				colWidths[i] = w
			}
		}
	}
	measure(header)
	for _, row := range rows {
		measure(row)
	}

	// Separator needs at least "---".
	for i := range colWidths {
		if colWidths[i] < 3 {
			colWidths[i] = 3
		}
	}

	line := func(row []string) string {
		var sb strings.Builder
		sb.WriteString("|")
		for j := 0; j < colCount; j++ {
			content := ""
			if j < len(row) {
				content = row[j]
			}
			sb.WriteString(" ")
			sb.WriteString(runewidth.FillRight(content, colWidths[j]))
			sb.WriteString(" |")
		}
		return sb.String()
	}

	result := make([]string, 0, len(rows)+2)
	result = append(result, line(header))

	sep := make([]string, colCount)
	for j := range sep {
		sep[j] = strings.Repeat("-", colWidths[j])
	}
	result = append(result, line(sep))

	for _, row := range rows {
		result = append(result, line(row))
	}
	return result
}

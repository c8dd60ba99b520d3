package markdown

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

// Table rendering separators.
const (
	cellSeparator   = " | "
	headerSeparator = "-+-"
)

// IsSeparatorRow reports whether line is a table header/body separator:
// only dashes, colons, pipes and whitespace, with at least one dash.
func IsSeparatorRow(line string) bool {
	hasDash := false
	for _, r := range line {
		switch {
		case r == '-':
			hasDash = true
		case r == ':', r == '|', unicode.IsSpace(r):
		default:
			return false
		}
	}
	return hasDash
}

// SplitRow splits a pipe-delimited line into trimmed cells. An empty first
// or last cell, produced by leading or trailing pipes, is dropped; empty
// interior cells are kept.
func SplitRow(line string) []string {
	cells := strings.Split(line, "|")
	for i := range cells {
		cells[i] = strings.TrimSpace(cells[i])
	}
	if len(cells) > 0 && cells[0] == "" {
		cells = cells[1:]
	}
	if len(cells) > 0 && cells[len(cells)-1] == "" {
		cells = cells[:len(cells)-1]
	}
	return cells
}

// RenderTable lays rows out as fixed-width text. Each column is as wide as
// its widest cell (in terminal display cells), cells are right-padded and
// joined with " | ", and a dash separator follows the first row. Shorter
// rows omit their trailing columns.
func RenderTable(rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	var widths []int
	for _, row := range rows {
		for i, cell := range row {
			w := runewidth.StringWidth(cell)
			if i >= len(widths) {
				widths = append(widths, w)
			} else if w > widths[i] {
				widths[i] = w
			}
		}
	}

	lines := make([]string, 0, len(rows)+1)
	for i, row := range rows {
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j] = runewidth.FillRight(cell, widths[j])
		}
		lines = append(lines, strings.Join(cells, cellSeparator))

		if i == 0 {
			dashes := make([]string, len(widths))
			for j, w := range widths {
				dashes[j] = strings.Repeat("-", w)
			}
			lines = append(lines, strings.Join(dashes, headerSeparator))
		}
	}
	return strings.Join(lines, "\n")
}

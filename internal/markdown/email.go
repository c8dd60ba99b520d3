package markdown

import "strings"

// FormatForEmail rewrites Markdown as email-safe plain text. Enabled strip
// options are applied in a fixed order (bold, italic, code) until no pair
// remains, then, if RenderTablesAsText is set, every run of lines
// containing "|" is replaced by a fixed-width table. Other lines are kept verbatim and in place.
// Link syntax is left as written.
func FormatForEmail(markdown string, opts FormattingOptions) string {
	var markers []string
	if opts.StripBold {
		markers = append(markers, "**", "__")
	}
	if opts.StripItalic {
		markers = append(markers, "*", "_")
	}
	if opts.StripCode {
		markers = append(markers, "`")
	}

	lines := SplitLines(markdown)
	if len(markers) > 0 {
		for i, line := range lines {
			lines[i] = stripUntilStable(line, markers)
		}
	}
	if opts.RenderTablesAsText {
		lines = renderTableRegions(lines)
	}
	return strings.Join(lines, "\n")
}

// stripUntilStable repeats StripMarkers until the line stops changing. One
// pass can expose a new pair, as in "**a*b*" becoming "*ab*".
func stripUntilStable(line string, markers []string) string {
	for {
		next := StripMarkers(line, markers...)
		if next == line {
			return line
		}
		line = next
	}
}

// renderTableRegions replaces each contiguous run of pipe lines with its
// plain-text rendering. Separator rows are dropped.
func renderTableRegions(lines []string) []string {
	out := make([]string, 0, len(lines))
	var (
		rows     [][]string
		inRegion bool
	)
	flush := func() {
		if inRegion && len(rows) > 0 {
			out = append(out, RenderTable(rows))
		}
		rows = nil
		inRegion = false
	}

	for _, line := range lines {
		if !strings.Contains(line, "|") {
			flush()
			out = append(out, line)
			continue
		}
		inRegion = true
		if IsSeparatorRow(line) {
			continue
		}
		if cells := SplitRow(line); len(cells) > 0 {
			rows = append(rows, cells)
		}
	}
	flush()
	return out
}

package markdown

import (
	"regexp"
	"strings"
)

// Style identifies how an inline run is formatted.
type Style int

const (
	Plain Style = iota
	Bold
	Italic
	Strike
	Code
	Link
)

// String returns the lowercase style name.
func (s Style) String() string {
	switch s {
	case Plain:
		return "plain"
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	case Strike:
		return "strike"
	case Code:
		return "code"
	case Link:
		return "link"
	}
	return "unknown"
}

// Run is a contiguous fragment of text sharing one style.
// A Link run carries the display text only; the target is dropped.
type Run struct {
	Text  string
	Style Style
}

// delimiter is an emphasis marker and the style of the span it encloses.
type delimiter struct {
	marker string
	style  Style
}

// spanDelimiters are tried in this order at each position; the first one
// with a closing marker wins. Double markers precede single ones so "**"
// is never read as two italic markers.
var spanDelimiters = []delimiter{
	{"**", Bold},
	{"__", Bold},
	{"~~", Strike},
	{"`", Code},
	{"*", Italic},
	{"_", Italic},
}

// stripOrder is the fixed order of the plain-text fast path. Bold must
// precede italic because italic markers are a subset of bold markers.
var stripOrder = []string{"**", "__", "*", "_", "`", "~~"}

// linkPattern matches [text](url) with non-empty text and target.
var linkPattern = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)

// linkSpan is a link found in a line, addressed by byte offsets.
type linkSpan struct {
	start, end int
	text       string
	url        string
}

// lineText is one line of Markdown plus its link side table. Bytes inside a
// link span never act as emphasis markers.
type lineText struct {
	src    string
	links  []linkSpan
	starts map[int]int
}

func newLineText(src string) lineText {
	var links []linkSpan
	for _, m := range linkPattern.FindAllStringSubmatchIndex(src, -1) {
		links = append(links, linkSpan{
			start: m[0],
			end:   m[1],
			text:  src[m[2]:m[3]],
			url:   src[m[4]:m[5]],
		})
	}
	return withLinks(src, links)
}

func withLinks(src string, links []linkSpan) lineText {
	starts := make(map[int]int, len(links))
	for i, l := range links {
		starts[l.start] = i
	}
	return lineText{src: src, links: links, starts: starts}
}

// linkAt returns the link span starting at byte offset i.
func (l lineText) linkAt(i int) (linkSpan, bool) {
	idx, ok := l.starts[i]
	if !ok {
		return linkSpan{}, false
	}
	return l.links[idx], true
}

// closer returns the offset of the first marker after at least one byte of
// content starting at from, skipping link spans. Returns -1 if none.
func (l lineText) closer(from int, marker string) int {
	j := from
	for j < len(l.src) {
		if link, ok := l.linkAt(j); ok {
			j = link.end
			continue
		}
		if j > from && strings.HasPrefix(l.src[j:], marker) {
			return j
		}
		j++
	}
	return -1
}

// matchAt tries every delimiter at offset i and returns the first one whose
// span closes, with the offset of its closing marker.
func (l lineText) matchAt(i int) (delimiter, int, bool) {
	for _, d := range spanDelimiters {
		if !strings.HasPrefix(l.src[i:], d.marker) {
			continue
		}
		if j := l.closer(i+len(d.marker), d.marker); j >= 0 {
			return d, j, true
		}
	}
	return delimiter{}, 0, false
}

// resolve returns src[from:to] with every link span replaced by its display text.
func (l lineText) resolve(from, to int) string {
	var b strings.Builder
	i := from
	for _, link := range l.links {
		if link.start < from || link.end > to {
			continue
		}
		b.WriteString(l.src[i:link.start])
		b.WriteString(link.text)
		i = link.end
	}
	b.WriteString(l.src[i:to])
	return b.String()
}

// strip removes every balanced pair of marker, left to right and
// non-greedy, keeping the enclosed text. Link spans are carried over with
// their offsets shifted.
func (l lineText) strip(marker string) lineText {
	var (
		b     strings.Builder
		links []linkSpan
	)
	copyRange := func(from, to int) {
		for _, link := range l.links {
			if link.start >= from && link.end <= to {
				shift := b.Len() - from
				link.start += shift
				link.end += shift
				links = append(links, link)
			}
		}
		b.WriteString(l.src[from:to])
	}

	i, last := 0, 0
	for i < len(l.src) {
		if link, ok := l.linkAt(i); ok {
			i = link.end
			continue
		}
		if strings.HasPrefix(l.src[i:], marker) {
			if j := l.closer(i+len(marker), marker); j >= 0 {
				copyRange(last, i)
				copyRange(i+len(marker), j)
				i = j + len(marker)
				last = i
				continue
			}
		}
		i++
	}
	copyRange(last, len(l.src))
	return withLinks(b.String(), links)
}

// StripMarkers removes the given emphasis markers from line in order,
// leaving link syntax untouched. It is the textual counterpart of the
// strip options used by FormatForEmail.
func StripMarkers(line string, markers ...string) string {
	lt := newLineText(line)
	for _, m := range markers {
		lt = lt.strip(m)
	}
	return lt.src
}

// Tokenize splits one line into styled runs. Spans are matched leftmost
// first and never nest. When bold, italic and code stripping are all
// enabled the line collapses into a single Plain run with every marker
// removed. An empty line yields no runs.
func Tokenize(line string, opts FormattingOptions) []Run {
	if line == "" {
		return nil
	}
	lt := newLineText(line)

	if opts.StripsAllMarkers() {
		for _, m := range stripOrder {
			lt = lt.strip(m)
		}
		return []Run{{Text: lt.resolve(0, len(lt.src)), Style: Plain}}
	}

	var runs []Run
	i, last := 0, 0
	for i < len(lt.src) {
		if link, ok := lt.linkAt(i); ok {
			runs = appendPlain(runs, lt.resolve(last, i))
			runs = append(runs, Run{Text: link.text, Style: Link})
			i = link.end
			last = i
			continue
		}
		if d, j, ok := lt.matchAt(i); ok {
			runs = appendPlain(runs, lt.resolve(last, i))
			runs = append(runs, Run{
				Text:  lt.resolve(i+len(d.marker), j),
				Style: opts.effectiveStyle(d.style),
			})
			i = j + len(d.marker)
			last = i
			continue
		}
		i++
	}
	return appendPlain(runs, lt.resolve(last, len(lt.src)))
}

func appendPlain(runs []Run, text string) []Run {
	if text == "" {
		return runs
	}
	return append(runs, Run{Text: text, Style: Plain})
}

// RunsText concatenates the text of runs.
func RunsText(runs []Run) string {
	var b strings.Builder
	for _, r := range runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

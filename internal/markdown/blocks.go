package markdown

import "strings"

// Kind tags the concrete type of a Block.
type Kind int

const (
	KindHeading Kind = iota
	KindParagraph
	KindListItem
	KindTaskItem
	KindBlockQuote
	KindCodeBlock
	KindRule
	KindBlankLine
	KindTable
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case KindHeading:
		return "heading"
	case KindParagraph:
		return "paragraph"
	case KindListItem:
		return "list_item"
	case KindTaskItem:
		return "task_item"
	case KindBlockQuote:
		return "blockquote"
	case KindCodeBlock:
		return "code_block"
	case KindRule:
		return "rule"
	case KindBlankLine:
		return "blank_line"
	case KindTable:
		return "table"
	}
	return "unknown"
}

// Block is one structural unit of the output document.
// The set of implementations is closed; switch on the concrete type or Kind.
type Block interface {
	Kind() Kind
}

// Heading is an ATX heading. Level is always in [1,6]. Text is the literal
// source after the markers; inline markers are not interpreted.
type Heading struct {
	Level int
	Text  string
}

// Paragraph is a non-blank line that matched no other rule.
type Paragraph struct {
	Runs []Run
}

// ListItem is a bullet or ordered item. Marker is the source marker,
// "-" or "*" for bullets and the literal number with its dot ("3.") for
// ordered items.
type ListItem struct {
	Ordered bool
	Marker  string
	Runs    []Run
}

// TaskItem is a "- [ ]" or "- [x]" checklist entry.
type TaskItem struct {
	Checked bool
	Runs    []Run
}

// BlockQuote is a single "> " line.
type BlockQuote struct {
	Runs []Run
}

// CodeBlock holds the verbatim lines between two fences. Language is the
// info string after the opening fence, if any.
type CodeBlock struct {
	Language string
	Lines    []string
}

// Text returns the code lines joined with newlines.
func (c CodeBlock) Text() string {
	return strings.Join(c.Lines, "\n")
}

// Rule is a horizontal rule.
type Rule struct{}

// BlankLine is a zero-content spacer for an empty source line.
type BlankLine struct{}

// Cell is one table cell as inline runs.
type Cell []Run

// Text returns the cell's text without styling.
func (c Cell) Text() string {
	return RunsText(c)
}

// Table is one contiguous region of pipe-delimited lines. The first row is
// the header. Rows may be ragged.
type Table struct {
	Rows [][]Cell
}

// Columns returns the number of cells in the widest row.
func (t Table) Columns() int {
	n := 0
	for _, row := range t.Rows {
		if len(row) > n {
			n = len(row)
		}
	}
	return n
}

func (Heading) Kind() Kind    { return KindHeading }
func (Paragraph) Kind() Kind  { return KindParagraph }
func (ListItem) Kind() Kind   { return KindListItem }
func (TaskItem) Kind() Kind   { return KindTaskItem }
func (BlockQuote) Kind() Kind { return KindBlockQuote }
func (CodeBlock) Kind() Kind  { return KindCodeBlock }
func (Rule) Kind() Kind       { return KindRule }
func (BlankLine) Kind() Kind  { return KindBlankLine }
func (Table) Kind() Kind      { return KindTable }

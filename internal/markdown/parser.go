package markdown

import (
	"regexp"
	"strings"
)

const fence = "```"

// Precompiled line patterns, checked in dispatch order.
var (
	crlfOrCR       = regexp.MustCompile(`\r\n?`)
	headingPattern = regexp.MustCompile(`^(#{1,6}) (.*)$`)
	quotePattern   = regexp.MustCompile(`^> (.*)$`)
	rulePattern    = regexp.MustCompile(`^(?:-{3,}|\*{3,}|_{3,})$`)
	taskPattern    = regexp.MustCompile(`^\s*[-*] \[([ xX])\] (.*)$`)
	bulletPattern  = regexp.MustCompile(`^\s*([-*])\s+(.*)$`)
	orderedPattern = regexp.MustCompile(`^\s*(\d+\.)\s+(.*)$`)
)

type parseMode int

const (
	modeNormal parseMode = iota
	modeCodeBlock
	modeTable
)

// parser is the per-call state. Buffers belong to the current mode and are
// reset whenever the mode changes.
type parser struct {
	opts     FormattingOptions
	mode     parseMode
	language string
	code     []string
	rows     [][]Cell
	blocks   []Block
}

// ParseBlocks converts Markdown into blocks in a single forward pass. Every
// input line yields exactly one block, except lines folded into a code block
// or table. It never fails; an unterminated code block or table is flushed
// with whatever it accumulated.
func ParseBlocks(markdown string, opts FormattingOptions) []Block {
	p := &parser{opts: opts}
	for _, line := range SplitLines(markdown) {
		p.feed(line)
	}
	p.finish()
	return p.blocks
}

// SplitLines normalizes line endings and splits text into lines.
func SplitLines(text string) []string {
	return strings.Split(crlfOrCR.ReplaceAllString(text, "\n"), "\n")
}

func (p *parser) feed(line string) {
	switch p.mode {
	case modeCodeBlock:
		if isFence(line) {
			p.flushCode()
			return
		}
		p.code = append(p.code, line)
		return
	case modeTable:
		if strings.Contains(line, "|") {
			p.addRow(line)
			return
		}
		p.flushTable()
	}

	if isFence(line) {
		p.mode = modeCodeBlock
		p.language = strings.TrimSpace(strings.TrimLeft(line, "`"))
		return
	}
	if p.opts.RenderTablesAsText && strings.Contains(line, "|") {
		p.mode = modeTable
		p.addRow(line)
		return
	}
	p.blocks = append(p.blocks, p.dispatch(line))
}

// dispatch classifies a line outside code blocks and tables.
func (p *parser) dispatch(line string) Block {
	if m := headingPattern.FindStringSubmatch(line); m != nil {
		return Heading{Level: len(m[1]), Text: strings.TrimSpace(m[2])}
	}
	if m := quotePattern.FindStringSubmatch(line); m != nil {
		return BlockQuote{Runs: Tokenize(m[1], p.opts)}
	}
	if rulePattern.MatchString(strings.TrimSpace(line)) {
		return Rule{}
	}
	if m := taskPattern.FindStringSubmatch(line); m != nil {
		return TaskItem{
			Checked: strings.EqualFold(m[1], "x"),
			Runs:    Tokenize(m[2], p.opts),
		}
	}
	if m := bulletPattern.FindStringSubmatch(line); m != nil {
		return ListItem{Marker: m[1], Runs: Tokenize(m[2], p.opts)}
	}
	if m := orderedPattern.FindStringSubmatch(line); m != nil {
		return ListItem{Ordered: true, Marker: m[1], Runs: Tokenize(m[2], p.opts)}
	}
	if strings.TrimSpace(line) != "" {
		return Paragraph{Runs: Tokenize(line, p.opts)}
	}
	return BlankLine{}
}

func (p *parser) addRow(line string) {
	if IsSeparatorRow(line) {
		return
	}
	cells := SplitRow(line)
	if len(cells) == 0 {
		return
	}
	row := make([]Cell, len(cells))
	for i, c := range cells {
		row[i] = Tokenize(c, p.opts)
	}
	p.rows = append(p.rows, row)
}

func (p *parser) flushCode() {
	p.blocks = append(p.blocks, CodeBlock{Language: p.language, Lines: p.code})
	p.code = nil
	p.language = ""
	p.mode = modeNormal
}

func (p *parser) flushTable() {
	p.blocks = append(p.blocks, Table{Rows: p.rows})
	p.rows = nil
	p.mode = modeNormal
}

func (p *parser) finish() {
	switch p.mode {
	case modeCodeBlock:
		p.flushCode()
	case modeTable:
		p.flushTable()
	}
}

func isFence(line string) bool {
	return strings.HasPrefix(line, fence)
}

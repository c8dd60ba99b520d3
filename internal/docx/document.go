package docx

import (
	"bytes"
	"encoding/xml"
	"strconv"
	"strings"

	"github.com/alnah/go-md2docx/internal/markdown"
)

// Paragraph spacing in twips (1/20 pt).
const (
	listIndent = 720

	paragraphBefore = 100
	paragraphAfter  = 100
	blankBefore     = 120
	blankAfter      = 120
	codeBefore      = 200
	codeAfter       = 200
)

// headingSpacing is indexed by level-1.
var headingSpacing = [6][2]int{
	{240, 120},
	{200, 100},
	{180, 90},
	{160, 80},
	{140, 70},
	{140, 70},
}

const (
	bulletPrefix    = "• "
	taskOpenPrefix  = "☐ "
	taskCheckPrefix = "☒ "
)

// paraProps is the subset of w:pPr the renderer emits.
type paraProps struct {
	style         string
	bottomBorder  bool
	before, after int
	indent        int
}

// runProps is the subset of w:rPr the renderer emits.
type runProps struct {
	style                string
	font                 string
	bold, italic, strike bool
}

// docWriter accumulates word/document.xml.
type docWriter struct {
	buf  bytes.Buffer
	opts Options
}

// renderDocument returns word/document.xml for blocks.
func renderDocument(blocks []markdown.Block, opts Options) []byte {
	d := &docWriter{opts: opts}
	d.buf.WriteString(xmlHeader)
	d.buf.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)

	endsWithTable := false
	for _, b := range blocks {
		endsWithTable = d.block(b)
	}
	// A body must not end on a table or Word inserts a paragraph and
	// reports the file as modified.
	if endsWithTable {
		d.buf.WriteString("<w:p/>")
	}

	d.buf.WriteString(`<w:sectPr><w:pgSz w:w="12240" w:h="15840"/>`)
	d.buf.WriteString(`<w:pgMar w:top="1440" w:right="1440" w:bottom="1440" w:left="1440" w:header="720" w:footer="720" w:gutter="0"/>`)
	d.buf.WriteString(`</w:sectPr></w:body></w:document>`)
	return d.buf.Bytes()
}

// block renders one block and reports whether it emitted a table.
func (d *docWriter) block(b markdown.Block) bool {
	switch b := b.(type) {
	case markdown.Heading:
		sp := headingSpacing[clampLevel(b.Level)-1]
		d.openPara(paraProps{style: "Heading" + strconv.Itoa(clampLevel(b.Level)), before: sp[0], after: sp[1]})
		d.run(b.Text, runProps{})
		d.closePara()

	case markdown.Paragraph:
		d.openPara(paraProps{before: paragraphBefore, after: paragraphAfter})
		d.runs(b.Runs, false)
		d.closePara()

	case markdown.ListItem:
		prefix := bulletPrefix
		if b.Ordered {
			prefix = b.Marker + " "
		}
		d.openPara(paraProps{before: paragraphBefore, after: paragraphAfter, indent: listIndent})
		d.run(prefix, runProps{})
		d.runs(b.Runs, false)
		d.closePara()

	case markdown.TaskItem:
		prefix := taskOpenPrefix
		if b.Checked {
			prefix = taskCheckPrefix
		}
		d.openPara(paraProps{before: paragraphBefore, after: paragraphAfter, indent: listIndent})
		d.run(prefix, runProps{})
		d.runs(b.Runs, false)
		d.closePara()

	case markdown.BlockQuote:
		d.openPara(paraProps{style: "Quote"})
		d.runs(b.Runs, false)
		d.closePara()

	case markdown.CodeBlock:
		d.codeBlock(b)

	case markdown.Rule:
		d.openPara(paraProps{bottomBorder: true})
		d.closePara()

	case markdown.BlankLine:
		d.openPara(paraProps{before: blankBefore, after: blankAfter})
		d.closePara()

	case markdown.Table:
		if len(b.Rows) == 0 {
			return false
		}
		d.table(b)
		return true
	}
	return false
}

func (d *docWriter) codeBlock(cb markdown.CodeBlock) {
	rp := runProps{font: d.opts.CodeFont}
	d.openPara(paraProps{before: codeBefore, after: codeAfter})
	for i, line := range cb.Lines {
		if i > 0 {
			d.buf.WriteString("<w:r><w:br/></w:r>")
		}
		d.run(line, rp)
	}
	d.closePara()
}

func (d *docWriter) table(t markdown.Table) {
	cols := t.Columns()
	d.buf.WriteString(`<w:tbl><w:tblPr><w:tblStyle w:val="TableGrid"/><w:tblW w:w="0" w:type="auto"/></w:tblPr><w:tblGrid>`)
	for range cols {
		d.buf.WriteString(`<w:gridCol/>`)
	}
	d.buf.WriteString(`</w:tblGrid>`)

	for r, row := range t.Rows {
		d.buf.WriteString("<w:tr>")
		for c := range cols {
			d.buf.WriteString("<w:tc>")
			d.openPara(paraProps{})
			if c < len(row) {
				d.runs(row[c], r == 0)
			}
			d.closePara()
			d.buf.WriteString("</w:tc>")
		}
		d.buf.WriteString("</w:tr>")
	}
	d.buf.WriteString("</w:tbl>")
}

// runs renders inline runs. forceBold is set for table header cells.
func (d *docWriter) runs(runs []markdown.Run, forceBold bool) {
	for _, r := range runs {
		rp := d.propsFor(r.Style)
		if forceBold {
			rp.bold = true
		}
		d.run(r.Text, rp)
	}
}

func (d *docWriter) propsFor(s markdown.Style) runProps {
	switch s {
	case markdown.Bold:
		return runProps{bold: true}
	case markdown.Italic:
		return runProps{italic: true}
	case markdown.Strike:
		return runProps{strike: true}
	case markdown.Code:
		return runProps{font: d.opts.CodeFont}
	case markdown.Link:
		return runProps{style: "Hyperlink"}
	}
	return runProps{}
}

// run writes a single w:r. Tabs become w:tab elements.
func (d *docWriter) run(text string, rp runProps) {
	if text == "" {
		return
	}
	d.buf.WriteString("<w:r>")
	rp.write(&d.buf)
	for i, part := range strings.Split(text, "\t") {
		if i > 0 {
			d.buf.WriteString("<w:tab/>")
		}
		if part == "" {
			continue
		}
		d.buf.WriteString(`<w:t xml:space="preserve">`)
		escape(&d.buf, part)
		d.buf.WriteString("</w:t>")
	}
	d.buf.WriteString("</w:r>")
}

func (d *docWriter) openPara(pp paraProps) {
	d.buf.WriteString("<w:p>")
	pp.write(&d.buf)
}

func (d *docWriter) closePara() {
	d.buf.WriteString("</w:p>")
}

// write emits w:pPr children in schema order.
func (pp paraProps) write(b *bytes.Buffer) {
	if pp == (paraProps{}) {
		return
	}
	b.WriteString("<w:pPr>")
	if pp.style != "" {
		b.WriteString(`<w:pStyle w:val="`)
		escape(b, pp.style)
		b.WriteString(`"/>`)
	}
	if pp.bottomBorder {
		b.WriteString(`<w:pBdr><w:bottom w:val="single" w:sz="6" w:space="1" w:color="auto"/></w:pBdr>`)
	}
	if pp.before != 0 || pp.after != 0 {
		b.WriteString(`<w:spacing w:before="` + strconv.Itoa(pp.before) + `" w:after="` + strconv.Itoa(pp.after) + `"/>`)
	}
	if pp.indent != 0 {
		b.WriteString(`<w:ind w:left="` + strconv.Itoa(pp.indent) + `"/>`)
	}
	b.WriteString("</w:pPr>")
}

// write emits w:rPr children in schema order.
func (rp runProps) write(b *bytes.Buffer) {
	if rp == (runProps{}) {
		return
	}
	b.WriteString("<w:rPr>")
	if rp.style != "" {
		b.WriteString(`<w:rStyle w:val="`)
		escape(b, rp.style)
		b.WriteString(`"/>`)
	}
	if rp.font != "" {
		writeFonts(b, rp.font)
	}
	if rp.bold {
		b.WriteString("<w:b/>")
	}
	if rp.italic {
		b.WriteString("<w:i/>")
	}
	if rp.strike {
		b.WriteString("<w:strike/>")
	}
	b.WriteString("</w:rPr>")
}

func writeFonts(b *bytes.Buffer, font string) {
	b.WriteString(`<w:rFonts w:ascii="`)
	escape(b, font)
	b.WriteString(`" w:hAnsi="`)
	escape(b, font)
	b.WriteString(`" w:cs="`)
	escape(b, font)
	b.WriteString(`"/>`)
}

func clampLevel(level int) int {
	return min(max(level, 1), 6)
}

// escape writes s with XML special characters escaped. Characters that are
// not legal in XML become U+FFFD.
func escape(b *bytes.Buffer, s string) {
	_ = xml.EscapeText(b, []byte(s)) // bytes.Buffer writes never fail
}

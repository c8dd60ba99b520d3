package docx

import (
	"bytes"
	"strconv"
	"time"
)

// headingScale is the heading size as a percentage of the body size,
// indexed by level-1.
var headingScale = [6]int{200, 160, 135, 120, 110, 100}

// renderStyles returns word/styles.xml.
func renderStyles(opts Options) []byte {
	var b bytes.Buffer
	body := opts.FontSize * 2 // half-points

	b.WriteString(xmlHeader)
	b.WriteString(`<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">`)

	b.WriteString(`<w:docDefaults><w:rPrDefault><w:rPr>`)
	writeFonts(&b, opts.Font)
	b.WriteString(`<w:sz w:val="` + strconv.Itoa(body) + `"/><w:szCs w:val="` + strconv.Itoa(body) + `"/>`)
	b.WriteString(`</w:rPr></w:rPrDefault><w:pPrDefault><w:pPr><w:spacing w:after="0" w:line="276" w:lineRule="auto"/></w:pPr></w:pPrDefault></w:docDefaults>`)

	b.WriteString(`<w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"/><w:qFormat/></w:style>`)

	for i, scale := range headingScale {
		level := strconv.Itoa(i + 1)
		size := strconv.Itoa(body * scale / 100)
		b.WriteString(`<w:style w:type="paragraph" w:styleId="Heading` + level + `">`)
		b.WriteString(`<w:name w:val="heading ` + level + `"/><w:basedOn w:val="Normal"/><w:next w:val="Normal"/><w:qFormat/>`)
		b.WriteString(`<w:pPr><w:keepNext/><w:outlineLvl w:val="` + strconv.Itoa(i) + `"/></w:pPr>`)
		b.WriteString(`<w:rPr><w:b/><w:sz w:val="` + size + `"/><w:szCs w:val="` + size + `"/></w:rPr>`)
		b.WriteString(`</w:style>`)
	}

	b.WriteString(`<w:style w:type="paragraph" w:styleId="Quote"><w:name w:val="Quote"/><w:basedOn w:val="Normal"/><w:next w:val="Normal"/><w:qFormat/>`)
	b.WriteString(`<w:pPr><w:pBdr><w:left w:val="single" w:sz="18" w:space="8" w:color="BFBFBF"/></w:pBdr><w:spacing w:before="100" w:after="100"/><w:ind w:left="720"/></w:pPr>`)
	b.WriteString(`<w:rPr><w:i/><w:color w:val="595959"/></w:rPr></w:style>`)

	b.WriteString(`<w:style w:type="character" w:styleId="Hyperlink"><w:name w:val="Hyperlink"/>`)
	b.WriteString(`<w:rPr><w:color w:val="0563C1"/><w:u w:val="single"/></w:rPr></w:style>`)

	b.WriteString(`<w:style w:type="table" w:styleId="TableGrid"><w:name w:val="Table Grid"/><w:tblPr><w:tblBorders>`)
	for _, side := range []string{"top", "left", "bottom", "right", "insideH", "insideV"} {
		b.WriteString(`<w:` + side + ` w:val="single" w:sz="4" w:space="0" w:color="auto"/>`)
	}
	b.WriteString(`</w:tblBorders><w:tblCellMar><w:left w:w="108" w:type="dxa"/><w:right w:w="108" w:type="dxa"/></w:tblCellMar></w:tblPr></w:style>`)

	b.WriteString(`</w:styles>`)
	return b.Bytes()
}

// renderCoreProperties returns docProps/core.xml.
func renderCoreProperties(opts Options) []byte {
	var b bytes.Buffer
	b.WriteString(xmlHeader)
	b.WriteString(`<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties"`)
	b.WriteString(` xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:dcterms="http://purl.org/dc/terms/"`)
	b.WriteString(` xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">`)
	if opts.Title != "" {
		b.WriteString("<dc:title>")
		escape(&b, opts.Title)
		b.WriteString("</dc:title>")
	}
	b.WriteString("<dc:creator>md2docx</dc:creator>")
	if !opts.Created.IsZero() {
		ts := opts.Created.UTC().Format(time.RFC3339)
		b.WriteString(`<dcterms:created xsi:type="dcterms:W3CDTF">` + ts + `</dcterms:created>`)
		b.WriteString(`<dcterms:modified xsi:type="dcterms:W3CDTF">` + ts + `</dcterms:modified>`)
	}
	b.WriteString("</cp:coreProperties>")
	return b.Bytes()
}

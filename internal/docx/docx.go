// Package docx assembles parsed Markdown blocks into a WordprocessingML
// (.docx) package.
//
// The output is the smallest package Word, LibreOffice and Pages open
// without repair: content types, package relationships, the main document,
// a style sheet and core properties.
package docx

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/alnah/go-md2docx/internal/markdown"
)

// Default typography.
const (
	DefaultFont     = "Calibri"
	DefaultCodeFont = "Courier New"
	DefaultFontSize = 11 // points
)

// Font size bounds in points.
const (
	MinFontSize = 6
	MaxFontSize = 72
)

// ErrInvalidFontSize indicates a font size outside [MinFontSize, MaxFontSize].
var ErrInvalidFontSize = errors.New("invalid font size")

// Options controls typography and document metadata.
type Options struct {
	Font     string    // body font (default: Calibri)
	CodeFont string    // monospace font for code runs and blocks (default: Courier New)
	FontSize int       // body size in points (default: 11)
	Title    string    // core property dc:title
	Created  time.Time // core property dcterms:created; zero omits it
}

// withDefaults fills empty fields.
func (o Options) withDefaults() Options {
	if o.Font == "" {
		o.Font = DefaultFont
	}
	if o.CodeFont == "" {
		o.CodeFont = DefaultCodeFont
	}
	if o.FontSize == 0 {
		o.FontSize = DefaultFontSize
	}
	return o
}

// Validate checks the font size. Zero means default.
func (o Options) Validate() error {
	if o.FontSize != 0 && (o.FontSize < MinFontSize || o.FontSize > MaxFontSize) {
		return fmt.Errorf("%w: %d (must be between %d and %d)", ErrInvalidFontSize, o.FontSize, MinFontSize, MaxFontSize)
	}
	return nil
}

// Assembler writes blocks as a .docx package.
type Assembler struct{}

// Assemble writes the package for blocks to w.
func (a *Assembler) Assemble(w io.Writer, blocks []markdown.Block, opts Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	opts = opts.withDefaults()

	parts := []struct {
		name    string
		content []byte
	}{
		{"[Content_Types].xml", []byte(contentTypesXML)},
		{"_rels/.rels", []byte(packageRelsXML)},
		{"word/_rels/document.xml.rels", []byte(documentRelsXML)},
		{"word/document.xml", renderDocument(blocks, opts)},
		{"word/styles.xml", renderStyles(opts)},
		{"docProps/core.xml", renderCoreProperties(opts)},
	}

	zw := zip.NewWriter(w)
	for _, p := range parts {
		f, err := zw.Create(p.name)
		if err != nil {
			return fmt.Errorf("creating %s: %w", p.name, err)
		}
		if _, err := f.Write(p.content); err != nil {
			return fmt.Errorf("writing %s: %w", p.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("closing package: %w", err)
	}
	return nil
}

const contentTypesXML = xmlHeader +
	`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
	`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
	`<Default Extension="xml" ContentType="application/xml"/>` +
	`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
	`<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>` +
	`<Override PartName="/docProps/core.xml" ContentType="application/vnd.openxmlformats-package.core-properties+xml"/>` +
	`</Types>`

const packageRelsXML = xmlHeader +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
	`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties" Target="docProps/core.xml"/>` +
	`</Relationships>`

const documentRelsXML = xmlHeader +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>` +
	`</Relationships>`

const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

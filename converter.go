package md2docx

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/alnah/go-md2docx/internal/docx"
	"github.com/alnah/go-md2docx/internal/fileutil"
	"github.com/alnah/go-md2docx/internal/markdown"
	"github.com/alnah/go-md2docx/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.TextPreprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
	_ documentAssembler             = (*docx.Assembler)(nil)
)

// documentAssembler abstracts DOCX packaging.
type documentAssembler interface {
	Assemble(w io.Writer, blocks []markdown.Block, opts docx.Options) error
}

// Converter turns Markdown into DOCX documents and preview HTML.
// A Converter holds no per-call state and is safe for concurrent use.
type Converter struct {
	cfg                 converterConfig
	preprocessor        pipeline.MarkdownPreprocessor
	previewPreprocessor pipeline.MarkdownPreprocessor
	htmlConverter       pipeline.HTMLConverter
	assembler           documentAssembler
	now                 func() time.Time
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds typography and preview settings.
type converterConfig struct {
	font           string
	codeFont       string
	fontSize       int
	highlightStyle string
}

// WithFont sets the body font family (default: Calibri).
func WithFont(name string) Option {
	return func(c *Converter) {
		c.cfg.font = name
	}
}

// WithCodeFont sets the font family for code runs and code blocks
// (default: Courier New).
func WithCodeFont(name string) Option {
	return func(c *Converter) {
		c.cfg.codeFont = name
	}
}

// WithFontSize sets the body font size in points, 6 to 72 (default: 11).
// Out-of-range values make NewConverter fail with ErrInvalidFontSize.
func WithFontSize(points int) Option {
	return func(c *Converter) {
		c.cfg.fontSize = points
	}
}

// WithHighlightStyle sets the chroma style for code in the HTML preview
// (default: github). Unknown names make NewConverter fail with
// ErrInvalidHighlightStyle.
func WithHighlightStyle(name string) Option {
	return func(c *Converter) {
		c.cfg.highlightStyle = name
	}
}

// NewConverter creates a Converter with default configuration.
// Use options to customize typography and preview highlighting.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		preprocessor:        &pipeline.TextPreprocessor{},
		previewPreprocessor: &pipeline.TextPreprocessor{CompressBlankLines: true},
		assembler:           &docx.Assembler{},
		now:                 time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	if err := c.docxOptions("").Validate(); err != nil {
		return nil, err
	}

	// Create HTML converter if not injected (e.g., by tests)
	if c.htmlConverter == nil {
		hc, err := pipeline.NewGoldmarkConverter(c.cfg.highlightStyle)
		if err != nil {
			return nil, err
		}
		c.htmlConverter = hc
	}

	return c, nil
}

// Convert parses the Markdown and packages it as a DOCX document. When
// input.HTML is set the preview is rendered too.
// The context is checked between stages.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: internal error: %v", ErrConversion, r)
		}
	}()

	if err := validateInput(input); err != nil {
		return nil, err
	}

	mdContent := c.preprocessor.PreprocessMarkdown(ctx, input.Markdown)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	blocks := markdown.ParseBlocks(mdContent, input.Format)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	var buf bytes.Buffer
	if err := c.assembler.Assemble(&buf, blocks, c.docxOptions(documentTitle(blocks, input.SourceName))); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConversion, err)
	}

	res := &ConvertResult{
		DOCX:     buf.Bytes(),
		Blocks:   blocks,
		FileName: fileutil.OutputName(input.SourceName),
	}

	if input.HTML {
		html, err := c.preview(ctx, input)
		if err != nil {
			return nil, err
		}
		res.HTML = html
	}

	return res, nil
}

// Preview renders the Markdown as a standalone HTML document with
// highlighted code. Raw HTML in the source is not rendered.
func (c *Converter) Preview(ctx context.Context, input Input) ([]byte, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	return c.preview(ctx, input)
}

func (c *Converter) preview(ctx context.Context, input Input) ([]byte, error) {
	mdContent := c.previewPreprocessor.PreprocessMarkdown(ctx, input.Markdown)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	html, err := c.htmlConverter.ToHTML(ctx, sourceStem(input.SourceName), mdContent)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}
	return []byte(html), nil
}

func (c *Converter) docxOptions(title string) docx.Options {
	return docx.Options{
		Font:     c.cfg.font,
		CodeFont: c.cfg.codeFont,
		FontSize: c.cfg.fontSize,
		Title:    title,
		Created:  c.now(),
	}
}

// validateInput checks that required fields are present and valid.
//
// This is a TRUST BOUNDARY for direct library users who build Input manually.
// Only the source name is inspected for its type, never the content.
func validateInput(input Input) error {
	if input.SourceName != "" {
		if err := fileutil.ValidateSourceName(input.SourceName); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidFileType, err)
		}
	}
	if strings.TrimSpace(input.Markdown) == "" {
		return ErrEmptyMarkdown
	}
	return nil
}

// documentTitle returns the text of the first heading, falling back to the
// source name without its suffix.
func documentTitle(blocks []Block, sourceName string) string {
	for _, b := range blocks {
		if h, ok := b.(Heading); ok && h.Text != "" {
			return h.Text
		}
	}
	return sourceStem(sourceName)
}

// sourceStem returns the base name without its suffix, or "" for no source.
func sourceStem(sourceName string) string {
	if sourceName == "" {
		return ""
	}
	return strings.TrimSuffix(fileutil.OutputName(sourceName), fileutil.OutputSuffix)
}

// Parse splits Markdown into blocks without packaging them.
// It never fails; malformed constructs degrade to paragraphs.
func Parse(md string, opts FormattingOptions) []Block {
	return markdown.ParseBlocks(md, opts)
}

// FormatForEmail rewrites Markdown as plain text suitable for pasting into
// an email body: enabled strip options remove their markers, and with
// RenderTablesAsText each pipe table becomes a fixed-width text table.
// Links and strikethrough markers are left as written.
func FormatForEmail(md string, opts FormattingOptions) string {
	return markdown.FormatForEmail(md, opts)
}

// CopyForEmail formats md with FormatForEmail and writes it to cb.
// Blank input is rejected with ErrEmptyMarkdown.
func CopyForEmail(cb Clipboard, md string, opts FormattingOptions) error {
	if strings.TrimSpace(md) == "" {
		return ErrEmptyMarkdown
	}
	if err := cb.WriteAll(FormatForEmail(md, opts)); err != nil {
		return fmt.Errorf("%w: %v", ErrClipboard, err)
	}
	return nil
}

// ReadFile validates the file name and returns its content decoded to UTF-8.
func ReadFile(path string) (string, error) {
	if err := fileutil.ValidateSourceName(path); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidFileType, err)
	}

	data, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFileRead, err)
	}

	text, err := fileutil.DecodeText(data)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrFileRead, path, err)
	}
	return text, nil
}

// OutputName derives the DOCX file name for a source name:
// "notes.md" becomes "notes.docx" and an empty name becomes
// "converted-document.docx".
func OutputName(sourceName string) string {
	return fileutil.OutputName(sourceName)
}

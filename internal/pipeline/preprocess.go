package pipeline

import (
	"context"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

const byteOrderMark = "\uFEFF"

// Precompiled regex patterns.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Three or more newlines, i.e. two or more blank lines
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)
)

// MarkdownPreprocessor defines the contract for markdown preprocessing.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(ctx context.Context, content string) string
}

// TextPreprocessor prepares decoded Markdown for parsing: it drops a leading
// byte order mark, normalizes line endings to \n and composes Unicode to NFC
// so that visually identical input produces identical runs.
//
// CompressBlankLines additionally collapses runs of blank lines to one. The
// structured path leaves it off because every blank line is a block there.
type TextPreprocessor struct {
	CompressBlankLines bool
}

// PreprocessMarkdown applies all enabled transformations.
func (p *TextPreprocessor) PreprocessMarkdown(ctx context.Context, content string) string {
	if ctx.Err() != nil {
		return content
	}

	content = strings.TrimPrefix(content, byteOrderMark)
	content = normalizeLineEndings(content)
	content = norm.NFC.String(content)
	if p.CompressBlankLines {
		content = compressBlankLines(content)
	}
	return content
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// compressBlankLines limits consecutive blank lines to one.
func compressBlankLines(content string) string {
	return multipleBlankLines.ReplaceAllString(content, "\n\n")
}

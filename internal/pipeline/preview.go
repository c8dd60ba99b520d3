package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
)

// DefaultHighlightStyle is the chroma style used when none is configured.
const DefaultHighlightStyle = "github"

// Sentinel errors for preview rendering.
var (
	ErrHTMLConversion        = errors.New("HTML conversion failed")
	ErrUnknownHighlightStyle = errors.New("unknown highlight style")
)

// htmlTemplate wraps Goldmark's fragment output in a complete HTML5 document.
const htmlTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
</head>
<body>
%s
</body>
</html>`

// HTMLConverter abstracts Markdown to HTML conversion.
type HTMLConverter interface {
	ToHTML(ctx context.Context, title, content string) (string, error)
}

// GoldmarkConverter renders preview HTML using goldmark (pure Go).
// Raw HTML in the source is not rendered.
type GoldmarkConverter struct {
	md  goldmark.Markdown
	css string
}

// ValidateHighlightStyle checks that name is a registered chroma style.
// An empty name is accepted and means DefaultHighlightStyle.
func ValidateHighlightStyle(name string) error {
	if name == "" {
		return nil
	}
	if _, ok := styles.Registry[strings.ToLower(name)]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownHighlightStyle, name)
	}
	return nil
}

// HighlightStyles returns the registered chroma style names, sorted.
func HighlightStyles() []string {
	return styles.Names()
}

// NewGoldmarkConverter creates a GoldmarkConverter with GFM extensions and
// chroma highlighting in the given style.
func NewGoldmarkConverter(style string) (*GoldmarkConverter, error) {
	if err := ValidateHighlightStyle(style); err != nil {
		return nil, err
	}
	if style == "" {
		style = DefaultHighlightStyle
	}
	style = strings.ToLower(style)

	var css bytes.Buffer
	if err := chromahtml.New(chromahtml.WithClasses(true)).WriteCSS(&css, styles.Get(style)); err != nil {
		return nil, fmt.Errorf("%w: writing highlight CSS: %v", ErrHTMLConversion, err)
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,      // Tables, strikethrough, autolinks, task lists
			extension.Footnote, // [^1] footnotes
			highlighting.NewHighlighting(
				highlighting.WithStyle(style),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true), // CSS classes, stylesheet injected once in <head>
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			goldmarkhtml.WithHardWraps(), // One source line, one rendered line
			goldmarkhtml.WithXHTML(),
		),
	)
	return &GoldmarkConverter{md: md, css: css.String()}, nil
}

// ToHTML converts Markdown content to a standalone HTML5 document with the
// highlight stylesheet embedded. Supports context cancellation via goroutine
// + select since Goldmark doesn't natively support context.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, title, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if title == "" {
		title = "Preview"
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		doc := fmt.Sprintf(htmlTemplate, html.EscapeString(title), buf.String())
		done <- result{html: injectCSS(doc, c.css)}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}

// injectCSS inserts a <style> block before </head>, falling back to
// prepending when the document has no head.
func injectCSS(htmlContent, css string) string {
	if css == "" {
		return htmlContent
	}

	styleBlock := "<style>" + sanitizeCSS(css) + "</style>\n"
	if idx := strings.Index(strings.ToLower(htmlContent), "</head>"); idx != -1 {
		return htmlContent[:idx] + styleBlock + htmlContent[idx:]
	}
	return styleBlock + htmlContent
}

// sanitizeCSS escapes sequences that could break out of a <style> block.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}

// Package md2docx converts Markdown into Word documents (.docx) and into
// email-safe plain text.
//
// # Quick Start
//
// Create a converter and convert markdown:
//
//	conv, err := md2docx.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, md2docx.Input{
//	    Markdown:   "# Hello\n\n**World**",
//	    SourceName: "hello.md",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile(result.FileName, result.DOCX, 0644) // hello.docx
//
// # Conversion Pipeline
//
//  1. Preprocessing (byte order mark, line endings, NFC composition)
//  2. Line-oriented block parsing with inline tokenization
//  3. DOCX packaging (WordprocessingML zip)
//
// The parser is deliberately small: every source line becomes one block,
// except lines inside a fenced code block or a pipe table, which fold into
// a single block. Inline emphasis is matched leftmost-first and never nests,
// so "**_x_**" is bold text "_x_". Parsing never fails.
//
// # Formatting Options
//
// FormattingOptions strip bold, italic or inline-code styling and decide
// whether pipe lines form tables:
//
//	result, err := conv.Convert(ctx, md2docx.Input{
//	    Markdown: content,
//	    Format:   md2docx.FormattingOptions{StripBold: true, RenderTablesAsText: true},
//	})
//
// Strikethrough and links are never stripped; links keep their display text
// only.
//
// # Email Text
//
// FormatForEmail applies the same options textually, for pasting into a
// plain-text email body:
//
//	text := md2docx.FormatForEmail(content, md2docx.FormattingOptions{
//	    StripBold: true, StripItalic: true, StripCode: true,
//	})
//
// # Preview
//
// Converter.Preview renders the source with goldmark (GitHub Flavored
// Markdown, chroma syntax highlighting). Raw HTML is not rendered.
package md2docx

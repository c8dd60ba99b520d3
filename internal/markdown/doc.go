// Package markdown implements the line-oriented Markdown parser behind go-md2docx.
//
// Two pipelines share one inline tokenizer:
//   - ParseBlocks turns a Markdown string into an ordered sequence of typed
//     blocks (headings, paragraphs, list and task items, block quotes, code
//     blocks, rules, blank lines, tables) for the DOCX assembler.
//   - FormatForEmail is a purely textual pass that strips selected inline
//     markers and re-flows pipe tables as fixed-width plain text.
//
// Both honor the same FormattingOptions. The parser is single-pass and never
// fails: unrecognized lines become paragraphs and unterminated code blocks or
// tables are closed at end of input.
//
// Inline emphasis is matched leftmost-first and does not nest: in "**_x_**"
// only the outer bold span is recognized and its text is "_x_".
package markdown

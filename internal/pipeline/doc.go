// Package pipeline prepares Markdown text and renders the HTML preview.
//
// Preprocessing (byte order mark, line endings, NFC composition) runs
// before both the structured and the preview path. The preview itself is
// produced by goldmark with GFM extensions and chroma syntax highlighting;
// it is independent of the block parser that drives DOCX output.
package pipeline

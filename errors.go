package md2docx

import (
	"errors"

	"github.com/alnah/go-md2docx/internal/docx"
	"github.com/alnah/go-md2docx/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown   = errors.New("markdown content cannot be empty")
	ErrInvalidFileType = errors.New("invalid file type")
	ErrFileRead        = errors.New("failed to read file")
	ErrConversion      = errors.New("document conversion failed")
	ErrHTMLConversion  = errors.New("HTML preview conversion failed")
	ErrClipboard       = errors.New("clipboard write failed")

	// Option validation errors.
	ErrInvalidFontSize       = docx.ErrInvalidFontSize
	ErrInvalidHighlightStyle = pipeline.ErrUnknownHighlightStyle
)

package md2docx

import "github.com/alnah/go-md2docx/internal/markdown"

// FormattingOptions selects which inline markers lose their styling and
// whether pipe tables are captured. The zero value keeps everything.
type FormattingOptions = markdown.FormattingOptions

// Block is one structural unit of a parsed document. Switch on the
// concrete type (Heading, Paragraph, ...) or on Kind().
type Block = markdown.Block

// Block kinds and concrete types.
type (
	Kind       = markdown.Kind
	Heading    = markdown.Heading
	Paragraph  = markdown.Paragraph
	ListItem   = markdown.ListItem
	TaskItem   = markdown.TaskItem
	BlockQuote = markdown.BlockQuote
	CodeBlock  = markdown.CodeBlock
	Rule       = markdown.Rule
	BlankLine  = markdown.BlankLine
	Table      = markdown.Table
	Cell       = markdown.Cell
)

// Run is a styled inline text segment.
type Run = markdown.Run

// Style is the styling of a Run.
type Style = markdown.Style

// Inline styles.
const (
	Plain  = markdown.Plain
	Bold   = markdown.Bold
	Italic = markdown.Italic
	Strike = markdown.Strike
	Code   = markdown.Code
	Link   = markdown.Link
)

// Input contains conversion parameters.
type Input struct {
	Markdown   string            // Markdown content (required, not blank)
	SourceName string            // Source file name (optional); must end in .md, .markdown or .txt when set
	Format     FormattingOptions // Strip and table toggles
	HTML       bool              // Also render the HTML preview
}

// ConvertResult holds the outputs of a conversion.
type ConvertResult struct {
	DOCX     []byte  // WordprocessingML package
	HTML     []byte  // Preview document, only when Input.HTML is set
	Blocks   []Block // Parsed blocks the document was built from
	FileName string  // Suggested output file name
}

// Clipboard receives plain text for pasting into an email client.
type Clipboard interface {
	WriteAll(text string) error
}

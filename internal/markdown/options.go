package markdown

// FormattingOptions selects which inline markers lose their styling and
// whether pipe tables are captured. The zero value keeps all styling and
// treats pipe lines as paragraphs.
type FormattingOptions struct {
	StripBold          bool
	StripItalic        bool
	StripCode          bool
	RenderTablesAsText bool
}

// StripsAllMarkers reports whether bold, italic and code stripping are all
// enabled, which switches the tokenizer to its plain-text fast path.
func (o FormattingOptions) StripsAllMarkers() bool {
	return o.StripBold && o.StripItalic && o.StripCode
}

// effectiveStyle applies the strip options to the style of a matched span.
// Strike and Link are never stripped.
func (o FormattingOptions) effectiveStyle(s Style) Style {
	switch {
	case s == Bold && o.StripBold:
		return Plain
	case s == Italic && o.StripItalic:
		return Plain
	case s == Code && o.StripCode:
		return Plain
	}
	return s
}

package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"

	md2docx "github.com/alnah/go-md2docx"
	"github.com/alnah/go-md2docx/internal/config"
)

// ErrInvalidFlag wraps flag parsing failures so they map to a usage exit code.
var ErrInvalidFlag = errors.New("invalid flag")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// formatFlags holds the strip and table toggles. changed records which
// flags were given explicitly, so an explicit false can override config.
type formatFlags struct {
	stripBold    bool
	stripItalic  bool
	stripCode    bool
	stripAll     bool
	tablesAsText bool
	changed      map[string]bool
}

// documentFlags holds DOCX typography flags.
type documentFlags struct {
	font     string
	codeFont string
	fontSize int
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common   commonFlags
	format   formatFlags
	document documentFlags
	output   string
	workers  int
	html     bool
}

// emailFlags holds flags for the email command.
type emailFlags struct {
	common commonFlags
	format formatFlags
	copy   bool
}

// previewFlags holds flags for the preview command.
type previewFlags struct {
	common commonFlags
	output string
	style  string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addFormatFlags adds strip and table flags to a FlagSet.
func addFormatFlags(fs *flag.FlagSet, f *formatFlags) {
	fs.BoolVar(&f.stripBold, "strip-bold", false, "render bold spans as plain text")
	fs.BoolVar(&f.stripItalic, "strip-italic", false, "render italic spans as plain text")
	fs.BoolVar(&f.stripCode, "strip-code", false, "render inline code as plain text")
	fs.BoolVar(&f.stripAll, "strip-all", false, "strip bold, italic and inline code")
	fs.BoolVar(&f.tablesAsText, "tables-as-text", false, "capture pipe lines as tables")
}

// addDocumentFlags adds typography flags to a FlagSet.
func addDocumentFlags(fs *flag.FlagSet, f *documentFlags) {
	fs.StringVar(&f.font, "font", "", "body font family (default: Calibri)")
	fs.StringVar(&f.codeFont, "code-font", "", "code font family (default: Courier New)")
	fs.IntVar(&f.fontSize, "font-size", 0, "body font size in points, 6-72 (default: 11)")
}

// newFlagSet creates a FlagSet that reports errors instead of exiting.
func newFlagSet(name string, usage func(io.Writer), out io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)
	fs.Usage = func() { usage(out) }
	return fs
}

// parseFlagSet parses args and wraps failures with ErrInvalidFlag.
// flag.ErrHelp is returned unwrapped.
func parseFlagSet(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrInvalidFlag, err)
	}
	return nil
}

// changedFlags returns the names of flags set on the command line.
func changedFlags(fs *flag.FlagSet) map[string]bool {
	changed := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		changed[f.Name] = true
	})
	return changed
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string, stderr io.Writer) (*convertFlags, []string, error) {
	fs := newFlagSet("convert", printConvertUsage, stderr)
	f := &convertFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.BoolVar(&f.html, "html", false, "write the HTML preview alongside each document")

	addCommonFlags(fs, &f.common)
	addFormatFlags(fs, &f.format)
	addDocumentFlags(fs, &f.document)

	if err := parseFlagSet(fs, args); err != nil {
		return nil, nil, err
	}
	f.format.changed = changedFlags(fs)

	return f, fs.Args(), nil
}

// parseEmailFlags parses email command flags and returns positional args.
func parseEmailFlags(args []string, stderr io.Writer) (*emailFlags, []string, error) {
	fs := newFlagSet("email", printEmailUsage, stderr)
	f := &emailFlags{}

	fs.BoolVar(&f.copy, "copy", false, "copy to the system clipboard instead of printing")

	addCommonFlags(fs, &f.common)
	addFormatFlags(fs, &f.format)

	if err := parseFlagSet(fs, args); err != nil {
		return nil, nil, err
	}
	f.format.changed = changedFlags(fs)

	return f, fs.Args(), nil
}

// parsePreviewFlags parses preview command flags and returns positional args.
func parsePreviewFlags(args []string, stderr io.Writer) (*previewFlags, []string, error) {
	fs := newFlagSet("preview", printPreviewUsage, stderr)
	f := &previewFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output HTML file (default: stdout)")
	fs.StringVar(&f.style, "style", "", "syntax highlighting style (default: github)")

	addCommonFlags(fs, &f.common)

	if err := parseFlagSet(fs, args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// parseConfigFlags parses config command flags.
func parseConfigFlags(args []string, stderr io.Writer) (*commonFlags, error) {
	fs := newFlagSet("config", printConfigUsage, stderr)
	f := &commonFlags{}
	addCommonFlags(fs, f)

	if err := parseFlagSet(fs, args); err != nil {
		return nil, err
	}
	return f, nil
}

// mergeFormatFlags applies explicitly set format flags over config values.
// --strip-all turns on all three strip toggles.
func mergeFormatFlags(f *formatFlags, cfg *config.Config) {
	if f.changed["strip-bold"] {
		cfg.Format.StripBold = f.stripBold
	}
	if f.changed["strip-italic"] {
		cfg.Format.StripItalic = f.stripItalic
	}
	if f.changed["strip-code"] {
		cfg.Format.StripCode = f.stripCode
	}
	if f.stripAll {
		cfg.Format.StripBold = true
		cfg.Format.StripItalic = true
		cfg.Format.StripCode = true
	}
	if f.changed["tables-as-text"] {
		cfg.Format.TablesAsText = f.tablesAsText
	}
}

// mergeDocumentFlags applies non-empty typography flags over config values.
func mergeDocumentFlags(f *documentFlags, cfg *config.Config) {
	if f.font != "" {
		cfg.Document.Font = f.font
	}
	if f.codeFont != "" {
		cfg.Document.CodeFont = f.codeFont
	}
	if f.fontSize != 0 {
		cfg.Document.FontSize = f.fontSize
	}
}

// formatOptions converts config toggles to library options.
func formatOptions(cfg *config.Config) md2docx.FormattingOptions {
	return md2docx.FormattingOptions{
		StripBold:          cfg.Format.StripBold,
		StripItalic:        cfg.Format.StripItalic,
		StripCode:          cfg.Format.StripCode,
		RenderTablesAsText: cfg.Format.TablesAsText,
	}
}

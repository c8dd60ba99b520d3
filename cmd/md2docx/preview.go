package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	md2docx "github.com/alnah/go-md2docx"
	"github.com/alnah/go-md2docx/internal/fileutil"
	"github.com/alnah/go-md2docx/internal/hints"
)

// runPreviewCmd parses preview flags and renders the HTML preview.
func runPreviewCmd(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parsePreviewFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	return runPreview(ctx, positional, flags, env)
}

// runPreview writes the preview HTML to stdout or to --output.
func runPreview(ctx context.Context, positionalArgs []string, flags *previewFlags, env *Environment) error {
	cfg, err := resolveConfig(flags.common.config, env)
	if err != nil {
		return err
	}
	if flags.style != "" {
		cfg.Preview.HighlightStyle = flags.style
	}

	conv, err := newConverter(cfg)
	if err != nil {
		return err
	}

	var path string
	if len(positionalArgs) > 0 {
		path = positionalArgs[0]
	}
	md, sourceName, err := readSource(path, env)
	if err != nil {
		return err
	}

	html, err := conv.Preview(ctx, md2docx.Input{
		Markdown:   md,
		SourceName: sourceName,
		Format:     formatOptions(cfg),
	})
	if err != nil {
		return withInputHints(err)
	}

	if flags.output == "" {
		_, err := env.Stdout.Write(html)
		return err
	}

	if outDir := filepath.Dir(flags.output); outDir != "." {
		if err := os.MkdirAll(outDir, dirPermissions); err != nil {
			return fmt.Errorf("creating output directory: %w%s", err, hints.ForOutputDirectory())
		}
	}
	if err := fileutil.WriteFileAtomic(flags.output, html, filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Created %s\n", flags.output)
	}
	return nil
}

package main

import (
	"errors"
	"fmt"
	"strings"

	md2docx "github.com/alnah/go-md2docx"
	"github.com/alnah/go-md2docx/internal/hints"
)

// runEmailCmd parses email flags and formats the input as plain text.
func runEmailCmd(args []string, env *Environment) error {
	flags, positional, err := parseEmailFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	return runEmail(positional, flags, env)
}

// runEmail writes the email-safe rendering of the input to stdout, or to
// the clipboard with --copy.
func runEmail(positionalArgs []string, flags *emailFlags, env *Environment) error {
	cfg, err := resolveConfig(flags.common.config, env)
	if err != nil {
		return err
	}
	mergeFormatFlags(&flags.format, cfg)
	opts := formatOptions(cfg)

	var path string
	if len(positionalArgs) > 0 {
		path = positionalArgs[0]
	}
	md, _, err := readSource(path, env)
	if err != nil {
		return err
	}

	if flags.copy {
		if err := md2docx.CopyForEmail(env.Clipboard, md, opts); err != nil {
			if errors.Is(err, md2docx.ErrClipboard) {
				return fmt.Errorf("%w%s", err, hints.ForClipboard())
			}
			return withInputHints(err)
		}
		if !flags.common.quiet {
			fmt.Fprintln(env.Stderr, "Copied email text to clipboard")
		}
		return nil
	}

	if strings.TrimSpace(md) == "" {
		return withInputHints(md2docx.ErrEmptyMarkdown)
	}
	fmt.Fprintln(env.Stdout, md2docx.FormatForEmail(md, opts))
	return nil
}

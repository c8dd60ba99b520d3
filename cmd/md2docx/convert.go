package main

import (
	"context"
	"errors"
	"fmt"

	md2docx "github.com/alnah/go-md2docx"
	"github.com/alnah/go-md2docx/internal/config"
	"github.com/alnah/go-md2docx/internal/hints"
	"github.com/alnah/go-md2docx/internal/pipeline"
)

// runConvertCmd parses convert flags and runs the conversion.
func runConvertCmd(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseConvertFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	return runConvert(ctx, positional, flags, env)
}

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, env *Environment) error {
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	cfg, err := resolveConfig(flags.common.config, env)
	if err != nil {
		return err
	}

	// Merge CLI flags into config (CLI wins)
	mergeFormatFlags(&flags.format, cfg)
	mergeDocumentFlags(&flags.document, cfg)

	conv, err := newConverter(cfg)
	if err != nil {
		return err
	}

	outputDir := resolveOutputDir(flags.output, cfg)

	var files []FileToConvert
	inputPath := resolveInputPath(positionalArgs, cfg)
	if inputPath == stdinName {
		files = []FileToConvert{{InputPath: stdinName, OutputPath: resolveStdinOutputPath(outputDir)}}
	} else {
		files, err = discoverFiles(inputPath, outputDir)
		if err != nil {
			return fmt.Errorf("discovering files: %w", err)
		}
		if len(files) == 0 {
			return fmt.Errorf("%w: no markdown files found in %s", ErrNoInput, inputPath)
		}
	}

	workers := flags.workers
	if workers == 0 {
		workers = loadEnvConfig().Workers
	}
	workers = resolveWorkers(workers)
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Workers: %d\n", workers)
	}

	params := &conversionParams{
		format: formatOptions(cfg),
		html:   flags.html,
		env:    env,
	}

	results := convertBatch(ctx, conv, workers, files, params)

	failedCount := printResults(results, flags.common.quiet, flags.common.verbose, env)
	if failedCount == 0 {
		return nil
	}
	if len(results) == 1 {
		return firstError(results)
	}
	return fmt.Errorf("%d conversion(s) failed: %w", failedCount, firstError(results))
}

// newConverter creates a library converter from the effective config.
func newConverter(cfg *config.Config) (*md2docx.Converter, error) {
	conv, err := md2docx.NewConverter(
		md2docx.WithFont(cfg.Document.Font),
		md2docx.WithCodeFont(cfg.Document.CodeFont),
		md2docx.WithFontSize(cfg.Document.FontSize),
		md2docx.WithHighlightStyle(cfg.Preview.HighlightStyle),
	)
	if err != nil {
		if errors.Is(err, md2docx.ErrInvalidHighlightStyle) {
			return nil, fmt.Errorf("%w%s", err, hints.ForHighlightStyle(pipeline.HighlightStyles()))
		}
		return nil, err
	}
	return conv, nil
}

// resolveInputPath determines the input path from args or config.
// Without either, standard input is used.
func resolveInputPath(args []string, cfg *config.Config) string {
	if len(args) > 0 {
		return args[0]
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir
	}
	return stdinName
}

// resolveOutputDir determines the output directory from flag or config.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}

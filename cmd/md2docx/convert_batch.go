package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	md2docx "github.com/alnah/go-md2docx"
	"github.com/alnah/go-md2docx/internal/fileutil"
	"github.com/alnah/go-md2docx/internal/hints"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// ErrWriteOutput is returned when an output file cannot be written.
var ErrWriteOutput = errors.New("failed to write output file")

// CLIConverter is the interface for the conversion service.
type CLIConverter interface {
	Convert(ctx context.Context, input md2docx.Input) (*md2docx.ConvertResult, error)
}

// Compile-time interface implementation check.
var _ CLIConverter = (*md2docx.Converter)(nil)

// conversionParams groups parameters shared across batch/file conversion.
type conversionParams struct {
	format md2docx.FormattingOptions
	html   bool // Write the preview alongside the document
	env    *Environment
}

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Blocks     int
	Err        error
	Duration   time.Duration
}

// convertBatch processes files concurrently. The converter is shared: it
// holds no per-call state.
func convertBatch(ctx context.Context, conv CLIConverter, workers int, files []FileToConvert, params *conversionParams) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := workers
	if concurrency > len(files) {
		concurrency = len(files)
	}
	if concurrency < 1 {
		concurrency = 1
	}

	results := make([]ConversionResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ConversionResult{
						InputPath: files[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = convertFile(ctx, conv, files[idx], params)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// convertFile processes a single file and returns the result.
func convertFile(ctx context.Context, conv CLIConverter, f FileToConvert, params *conversionParams) ConversionResult {
	now := params.env.Now
	start := now()
	result := ConversionResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}
	fail := func(err error) ConversionResult {
		result.Err = err
		result.Duration = now().Sub(start)
		return result
	}

	content, sourceName, err := readSource(f.InputPath, params.env)
	if err != nil {
		return fail(err)
	}

	if outDir := filepath.Dir(f.OutputPath); outDir != "." {
		if err := os.MkdirAll(outDir, dirPermissions); err != nil {
			return fail(fmt.Errorf("creating output directory: %w%s", err, hints.ForOutputDirectory()))
		}
	}

	convResult, err := conv.Convert(ctx, md2docx.Input{
		Markdown:   content,
		SourceName: sourceName,
		Format:     params.format,
		HTML:       params.html,
	})
	if err != nil {
		return fail(withInputHints(err))
	}
	result.Blocks = len(convResult.Blocks)

	if err := fileutil.WriteFileAtomic(f.OutputPath, convResult.DOCX, filePermissions); err != nil {
		return fail(fmt.Errorf("%w: %v", ErrWriteOutput, err))
	}

	if params.html {
		if err := fileutil.WriteFileAtomic(htmlOutputPath(f.OutputPath), convResult.HTML, filePermissions); err != nil {
			return fail(fmt.Errorf("%w: %v", ErrWriteOutput, err))
		}
	}

	result.Duration = now().Sub(start)
	return result
}

// ResultSummary holds the count of succeeded and failed conversions.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed conversions.
func countResults(results []ConversionResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// firstError returns the first failure, for exit code classification.
func firstError(results []ConversionResult) error {
	for _, r := range results {
		if r.Err != nil {
			return r.Err
		}
	}
	return nil
}

// printResults outputs conversion results using the environment writers.
// Returns the number of failures.
func printResults(results []ConversionResult, quiet, verbose bool, env *Environment) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", displayName(r.InputPath), r.Err)
			continue
		}

		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%d blocks, %v)\n",
				displayName(r.InputPath), r.OutputPath, r.Blocks, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary.Failed
}

// displayName renders standard input readably in reports.
func displayName(path string) string {
	if path == "" || path == stdinName {
		return "<stdin>"
	}
	return path
}

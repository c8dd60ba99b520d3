package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	md2docx "github.com/alnah/go-md2docx"
	"github.com/alnah/go-md2docx/internal/fileutil"
)

// MaxWorkers bounds the --workers flag and clamps MD2DOCX_WORKERS.
const MaxWorkers = 32

// ErrInvalidWorkerCount is returned for a negative or excessive --workers value.
var ErrInvalidWorkerCount = errors.New("invalid worker count")

// FileToConvert represents a single file to process.
type FileToConvert struct {
	InputPath  string
	OutputPath string
}

// discoverFiles finds all Markdown files to convert. A file input must have
// an accepted suffix; a directory is walked for accepted suffixes only.
func discoverFiles(inputPath, outputDir string) ([]FileToConvert, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if err := fileutil.ValidateSourceName(inputPath); err != nil {
			return nil, withInputHints(fmt.Errorf("%w: %v", md2docx.ErrInvalidFileType, err))
		}
		outPath := resolveOutputPath(inputPath, outputDir, "")
		return []FileToConvert{{InputPath: inputPath, OutputPath: outPath}}, nil
	}

	var files []FileToConvert
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() || !fileutil.HasSourceSuffix(path) {
			return nil
		}
		outPath := resolveOutputPath(path, outputDir, inputPath)
		files = append(files, FileToConvert{InputPath: path, OutputPath: outPath})
		return nil
	})

	return files, err
}

// resolveOutputPath determines the DOCX output path for a source file.
// An outputDir ending in ".docx" names the output file itself; otherwise the
// directory layout below baseInputDir is mirrored under outputDir.
func resolveOutputPath(inputPath, outputDir, baseInputDir string) string {
	name := fileutil.OutputName(inputPath)

	if outputDir == "" {
		return filepath.Join(filepath.Dir(inputPath), name)
	}

	if strings.HasSuffix(strings.ToLower(outputDir), fileutil.OutputSuffix) {
		return outputDir
	}

	if baseInputDir != "" {
		relPath, err := filepath.Rel(baseInputDir, inputPath)
		if err == nil {
			return filepath.Join(outputDir, filepath.Dir(relPath), name)
		}
	}

	return filepath.Join(outputDir, name)
}

// resolveStdinOutputPath determines the output path for standard input,
// which has no source name to derive from.
func resolveStdinOutputPath(outputDir string) string {
	if strings.HasSuffix(strings.ToLower(outputDir), fileutil.OutputSuffix) {
		return outputDir
	}
	return filepath.Join(outputDir, fileutil.DefaultOutputName)
}

// htmlOutputPath returns the preview path corresponding to a DOCX path.
func htmlOutputPath(docxPath string) string {
	return strings.TrimSuffix(docxPath, filepath.Ext(docxPath)) + ".html"
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, MaxWorkers)
	}
	return nil
}

// resolveWorkers determines the batch concurrency.
// Priority: explicit value > GOMAXPROCS (adjusted by automaxprocs for containers).
// Explicit values above MaxWorkers are clamped.
func resolveWorkers(requested int) int {
	if requested > 0 {
		return min(requested, MaxWorkers)
	}

	n := runtime.GOMAXPROCS(0)
	if n < 1 {
		return 1
	}
	if n > 8 {
		return 8
	}
	return n
}

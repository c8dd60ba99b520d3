package main

// Notes:
// - discoverFiles / resolveOutputPath: we test suffix filtering, directory
//   mirroring and explicit .docx targets.
// - convertBatch: we use mockConverter; the real converter is exercised in
//   main_test.go.
// - printResults: we test quiet, verbose and summary output.

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	md2docx "github.com/alnah/go-md2docx"
)

// ---------------------------------------------------------------------------
// TestDiscoverFiles - Source discovery
// ---------------------------------------------------------------------------

func TestDiscoverFiles(t *testing.T) {
	t.Parallel()

	dir := setupTestDir(t, map[string]string{
		"a.md":              "a",
		"b.MARKDOWN":        "b",
		"notes/c.txt":       "c",
		"notes/deep/d.md":   "d",
		"image.png":         "x",
		"notes/readme.html": "x",
	})

	t.Run("directory walk keeps accepted suffixes", func(t *testing.T) {
		t.Parallel()

		files, err := discoverFiles(dir, "")
		if err != nil {
			t.Fatalf("discoverFiles() error = %v", err)
		}

		var got []string
		for _, f := range files {
			rel, _ := filepath.Rel(dir, f.OutputPath)
			got = append(got, filepath.ToSlash(rel))
		}
		sort.Strings(got)

		want := []string{"a.docx", "b.docx", "notes/c.docx", "notes/deep/d.docx"}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("outputs mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("single file", func(t *testing.T) {
		t.Parallel()

		in := filepath.Join(dir, "a.md")
		files, err := discoverFiles(in, "")
		if err != nil {
			t.Fatalf("discoverFiles() error = %v", err)
		}
		want := []FileToConvert{{InputPath: in, OutputPath: filepath.Join(dir, "a.docx")}}
		if diff := cmp.Diff(want, files); diff != "" {
			t.Errorf("files mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("single file with wrong suffix", func(t *testing.T) {
		t.Parallel()

		_, err := discoverFiles(filepath.Join(dir, "image.png"), "")
		if !errors.Is(err, md2docx.ErrInvalidFileType) {
			t.Errorf("error = %v, want ErrInvalidFileType", err)
		}
	})

	t.Run("missing path", func(t *testing.T) {
		t.Parallel()

		_, err := discoverFiles(filepath.Join(dir, "gone.md"), "")
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("error = %v, want os.ErrNotExist", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestResolveOutputPath - Output naming
// ---------------------------------------------------------------------------

func TestResolveOutputPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		outputDir string
		baseDir   string
		want      string
	}{
		{"next to source", "docs/a.md", "", "", filepath.Join("docs", "a.docx")},
		{"into directory", "docs/a.markdown", "out", "", filepath.Join("out", "a.docx")},
		{"explicit file", "docs/a.md", "report.DOCX", "", "report.DOCX"},
		{"mirrored layout", "docs/x/y/a.txt", "out", "docs", filepath.Join("out", "x", "y", "a.docx")},
		{"uppercase suffix", "A.MD", "", "", "A.docx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := resolveOutputPath(filepath.FromSlash(tt.input), filepath.FromSlash(tt.outputDir), filepath.FromSlash(tt.baseDir))
			if got != tt.want {
				t.Errorf("resolveOutputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveStdinOutputPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		outputDir string
		want      string
	}{
		{"", "converted-document.docx"},
		{"out", filepath.Join("out", "converted-document.docx")},
		{"memo.docx", "memo.docx"},
	}

	for _, tt := range tests {
		if got := resolveStdinOutputPath(tt.outputDir); got != tt.want {
			t.Errorf("resolveStdinOutputPath(%q) = %q, want %q", tt.outputDir, got, tt.want)
		}
	}
}

func TestHTMLOutputPath(t *testing.T) {
	t.Parallel()

	if got := htmlOutputPath(filepath.Join("out", "a.docx")); got != filepath.Join("out", "a.html") {
		t.Errorf("htmlOutputPath() = %q", got)
	}
}

// ---------------------------------------------------------------------------
// TestValidateWorkers - Worker bounds
// ---------------------------------------------------------------------------

func TestValidateWorkers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n       int
		wantErr bool
	}{
		{0, false},
		{1, false},
		{MaxWorkers, false},
		{-1, true},
		{MaxWorkers + 1, true},
	}

	for _, tt := range tests {
		err := validateWorkers(tt.n)
		if (err != nil) != tt.wantErr {
			t.Errorf("validateWorkers(%d) error = %v, wantErr %v", tt.n, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, ErrInvalidWorkerCount) {
			t.Errorf("validateWorkers(%d) error = %v, want ErrInvalidWorkerCount", tt.n, err)
		}
	}
}

func TestResolveWorkers(t *testing.T) {
	t.Parallel()

	if got := resolveWorkers(5); got != 5 {
		t.Errorf("resolveWorkers(5) = %d, want 5", got)
	}
	if got := resolveWorkers(0); got < 1 || got > 8 {
		t.Errorf("resolveWorkers(0) = %d, want 1..8", got)
	}
	if got := resolveWorkers(500); got != MaxWorkers {
		t.Errorf("resolveWorkers(500) = %d, want %d", got, MaxWorkers)
	}
}

// ---------------------------------------------------------------------------
// TestConvertBatch - Concurrent conversion
// ---------------------------------------------------------------------------

func TestConvertBatch(t *testing.T) {
	t.Parallel()

	t.Run("converts every file and writes outputs", func(t *testing.T) {
		t.Parallel()

		dir := setupTestDir(t, map[string]string{"a.md": "a", "b.md": "b", "c.md": "c"})
		out := filepath.Join(t.TempDir(), "nested", "out")
		files, err := discoverFiles(dir, out)
		if err != nil {
			t.Fatal(err)
		}

		conv := &mockConverter{}
		env, _, _ := newTestEnv("")
		params := &conversionParams{format: md2docx.FormattingOptions{StripBold: true}, html: true, env: env}

		results := convertBatch(context.Background(), conv, 2, files, params)

		if conv.calls() != 3 {
			t.Errorf("Convert called %d times, want 3", conv.calls())
		}
		for _, r := range results {
			if r.Err != nil {
				t.Errorf("%s: %v", r.InputPath, r.Err)
			}
			if r.Blocks != 2 {
				t.Errorf("%s: Blocks = %d, want 2", r.InputPath, r.Blocks)
			}
			if r.Duration != 0 {
				t.Errorf("%s: Duration = %v, want 0 with a fixed clock", r.InputPath, r.Duration)
			}
			assertFileExists(t, r.OutputPath)
			assertFileExists(t, htmlOutputPath(r.OutputPath))
		}
		for _, in := range conv.inputs {
			if !in.Format.StripBold || !in.HTML || in.SourceName == "" {
				t.Errorf("input not forwarded: %+v", in)
			}
		}
	})

	t.Run("converter errors are reported per file", func(t *testing.T) {
		t.Parallel()

		dir := setupTestDir(t, map[string]string{"a.md": "a", "b.md": "b"})
		files, _ := discoverFiles(dir, "")
		conv := &mockConverter{err: md2docx.ErrConversion}
		env, _, _ := newTestEnv("")

		results := convertBatch(context.Background(), conv, 4, files, &conversionParams{env: env})

		summary := countResults(results)
		if summary.Failed != 2 || summary.Succeeded != 0 {
			t.Errorf("summary = %+v, want 2 failed", summary)
		}
		if !errors.Is(firstError(results), md2docx.ErrConversion) {
			t.Errorf("firstError = %v, want ErrConversion", firstError(results))
		}
	})

	t.Run("canceled context skips conversion", func(t *testing.T) {
		t.Parallel()

		dir := setupTestDir(t, map[string]string{"a.md": "a"})
		files, _ := discoverFiles(dir, "")
		conv := &mockConverter{}
		env, _, _ := newTestEnv("")

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		results := convertBatch(ctx, conv, 1, files, &conversionParams{env: env})
		if !errors.Is(results[0].Err, context.Canceled) {
			t.Errorf("Err = %v, want context.Canceled", results[0].Err)
		}
		if conv.calls() != 0 {
			t.Errorf("Convert called %d times after cancel", conv.calls())
		}
	})

	t.Run("empty batch", func(t *testing.T) {
		t.Parallel()

		if got := convertBatch(context.Background(), &mockConverter{}, 2, nil, &conversionParams{}); got != nil {
			t.Errorf("convertBatch(nil) = %v, want nil", got)
		}
	})
}

// ---------------------------------------------------------------------------
// TestPrintResults - Report formatting
// ---------------------------------------------------------------------------

func TestPrintResults(t *testing.T) {
	t.Parallel()

	results := []ConversionResult{
		{InputPath: "a.md", OutputPath: "a.docx", Blocks: 3, Duration: 12 * time.Millisecond},
		{InputPath: "-", Err: errors.New("boom")},
	}

	tests := []struct {
		name       string
		quiet      bool
		verbose    bool
		wantStdout []string
		notStdout  []string
	}{
		{
			name:       "default",
			wantStdout: []string{"Created a.docx", "1 succeeded, 1 failed"},
		},
		{
			name:       "verbose",
			verbose:    true,
			wantStdout: []string{"a.md -> a.docx (3 blocks, 12ms)"},
		},
		{
			name:      "quiet",
			quiet:     true,
			notStdout: []string{"Created", "succeeded"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var stdout, stderr bytes.Buffer
			env := &Environment{Stdout: &stdout, Stderr: &stderr}

			failed := printResults(results, tt.quiet, tt.verbose, env)

			if failed != 1 {
				t.Errorf("printResults() = %d, want 1", failed)
			}
			if !strings.Contains(stderr.String(), "FAILED <stdin>: boom") {
				t.Errorf("stderr = %q, want failure line", stderr.String())
			}
			for _, want := range tt.wantStdout {
				if !strings.Contains(stdout.String(), want) {
					t.Errorf("stdout should contain %q, got %q", want, stdout.String())
				}
			}
			for _, unwanted := range tt.notStdout {
				if strings.Contains(stdout.String(), unwanted) {
					t.Errorf("stdout should not contain %q, got %q", unwanted, stdout.String())
				}
			}
		})
	}
}

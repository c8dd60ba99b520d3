package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	md2docx "github.com/alnah/go-md2docx"
	"github.com/alnah/go-md2docx/internal/config"
)

// ---------------------------------------------------------------------------
// Test Infrastructure - Fakes and fixtures
// ---------------------------------------------------------------------------

// mockConverter records inputs and returns canned output.
type mockConverter struct {
	mu     sync.Mutex
	inputs []md2docx.Input
	err    error
}

func (m *mockConverter) Convert(_ context.Context, input md2docx.Input) (*md2docx.ConvertResult, error) {
	m.mu.Lock()
	m.inputs = append(m.inputs, input)
	m.mu.Unlock()

	if m.err != nil {
		return nil, m.err
	}
	res := &md2docx.ConvertResult{
		DOCX:   []byte("PK mock"),
		Blocks: []md2docx.Block{md2docx.Paragraph{}, md2docx.BlankLine{}},
	}
	if input.HTML {
		res.HTML = []byte("<html></html>")
	}
	return res, nil
}

func (m *mockConverter) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.inputs)
}

// fakeClipboard stores the last write.
type fakeClipboard struct {
	text string
	err  error
}

func (c *fakeClipboard) WriteAll(text string) error {
	if c.err != nil {
		return c.err
	}
	c.text = text
	return nil
}

var errNoDisplay = errors.New("no display")

// newTestEnv returns an environment reading stdin from the given string and
// capturing output.
func newTestEnv(stdin string) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	env := &Environment{
		Now:       func() time.Time { return time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC) },
		Stdout:    &stdout,
		Stderr:    &stderr,
		Stdin:     strings.NewReader(stdin),
		Clipboard: &fakeClipboard{},
		Config:    config.DefaultConfig(),
	}
	return env, &stdout, &stderr
}

// setupTestDir creates a temp directory with the given file structure.
// Files map paths to content. Returns the temp directory path.
func setupTestDir(t *testing.T, files map[string]string) string {
	t.Helper()
	tempDir := t.TempDir()

	for path, content := range files {
		fullPath := filepath.Join(tempDir, path)
		if err := os.MkdirAll(filepath.Dir(fullPath), 0o750); err != nil {
			t.Fatalf("failed to create dir for %s: %v", path, err)
		}
		if err := os.WriteFile(fullPath, []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", path, err)
		}
	}

	return tempDir
}

// assertFileExists fails the test if path is not a regular file.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected file %s: %v", path, err)
		return
	}
	if info.IsDir() {
		t.Errorf("expected file, got directory: %s", path)
	}
}

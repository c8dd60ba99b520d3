package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestRunConfigCmd - Effective configuration dump
// ---------------------------------------------------------------------------

func TestRunConfigCmd(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "team.yaml")
	if err := os.WriteFile(path, []byte("format:\n  stripBold: true\npreview:\n  highlightStyle: monokai\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	env, stdout, _ := newTestEnv("")
	if err := runConfigCmd([]string{"-c", path}, env); err != nil {
		t.Fatalf("runConfigCmd() error = %v", err)
	}

	for _, want := range []string{"stripBold: true", "stripItalic: false", "highlightStyle: monokai"} {
		if !strings.Contains(stdout.String(), want) {
			t.Errorf("output should contain %q, got:\n%s", want, stdout.String())
		}
	}
}

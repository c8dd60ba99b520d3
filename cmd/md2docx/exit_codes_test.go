package main

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	md2docx "github.com/alnah/go-md2docx"
	"github.com/alnah/go-md2docx/internal/config"
)

// ---------------------------------------------------------------------------
// TestExitCodeFor - Error classification
// ---------------------------------------------------------------------------

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"unclassified", errors.New("boom"), ExitGeneral},
		{"conversion", md2docx.ErrConversion, ExitGeneral},
		{"clipboard", fmt.Errorf("%w: no xclip", md2docx.ErrClipboard), ExitClipboard},
		{"not exist", fmt.Errorf("discovering files: %w", fs.ErrNotExist), ExitIO},
		{"permission", fs.ErrPermission, ExitIO},
		{"file read", md2docx.ErrFileRead, ExitIO},
		{"stdin read", ErrReadInput, ExitIO},
		{"write", ErrWriteOutput, ExitIO},
		{"no input", ErrNoInput, ExitIO},
		{"config not found", fmt.Errorf("loading config: %w", config.ErrConfigNotFound), ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"field too long", config.ErrFieldTooLong, ExitUsage},
		{"field out of range", config.ErrFieldOutOfRange, ExitUsage},
		{"empty markdown", md2docx.ErrEmptyMarkdown, ExitUsage},
		{"file type", md2docx.ErrInvalidFileType, ExitUsage},
		{"font size", md2docx.ErrInvalidFontSize, ExitUsage},
		{"highlight style", md2docx.ErrInvalidHighlightStyle, ExitUsage},
		{"flag", ErrInvalidFlag, ExitUsage},
		{"workers", ErrInvalidWorkerCount, ExitUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

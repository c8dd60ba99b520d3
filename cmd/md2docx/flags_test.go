package main

import (
	"errors"
	"io"
	"testing"

	flag "github.com/spf13/pflag"

	md2docx "github.com/alnah/go-md2docx"
	"github.com/alnah/go-md2docx/internal/config"
)

// ---------------------------------------------------------------------------
// TestParseConvertFlags - Convert flag parsing
// ---------------------------------------------------------------------------

func TestParseConvertFlags(t *testing.T) {
	t.Parallel()

	flags, args, err := parseConvertFlags([]string{
		"docs", "-o", "out", "-w", "3", "--html", "--strip-all",
		"--font", "Georgia", "--font-size", "12", "-q",
	}, io.Discard)
	if err != nil {
		t.Fatalf("parseConvertFlags() error = %v", err)
	}

	if len(args) != 1 || args[0] != "docs" {
		t.Errorf("args = %v, want [docs]", args)
	}
	if flags.output != "out" || flags.workers != 3 || !flags.html || !flags.common.quiet {
		t.Errorf("flags = %+v", flags)
	}
	if !flags.format.stripAll || !flags.format.changed["strip-all"] {
		t.Error("--strip-all not recorded")
	}
	if flags.format.changed["strip-bold"] {
		t.Error("strip-bold reported as changed")
	}
	if flags.document.font != "Georgia" || flags.document.fontSize != 12 {
		t.Errorf("document flags = %+v", flags.document)
	}
}

func TestParseFlags_Errors(t *testing.T) {
	t.Parallel()

	if _, _, err := parseConvertFlags([]string{"--bogus"}, io.Discard); !errors.Is(err, ErrInvalidFlag) {
		t.Errorf("unknown flag error = %v, want ErrInvalidFlag", err)
	}
	if _, _, err := parseEmailFlags([]string{"-h"}, io.Discard); !errors.Is(err, flag.ErrHelp) {
		t.Errorf("help error = %v, want flag.ErrHelp", err)
	}
	if _, _, err := parsePreviewFlags([]string{"--style"}, io.Discard); !errors.Is(err, ErrInvalidFlag) {
		t.Errorf("missing value error = %v, want ErrInvalidFlag", err)
	}
	if _, err := parseConfigFlags([]string{"--workers", "2"}, io.Discard); !errors.Is(err, ErrInvalidFlag) {
		t.Errorf("foreign flag error = %v, want ErrInvalidFlag", err)
	}
}

// ---------------------------------------------------------------------------
// TestMergeFormatFlags - Flag over config priority
// ---------------------------------------------------------------------------

func TestMergeFormatFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		cfg  config.FormatConfig
		want config.FormatConfig
	}{
		{
			name: "no flags keeps config",
			cfg:  config.FormatConfig{StripBold: true, TablesAsText: true},
			want: config.FormatConfig{StripBold: true, TablesAsText: true},
		},
		{
			name: "explicit false overrides config",
			args: []string{"--strip-bold=false", "--tables-as-text=false"},
			cfg:  config.FormatConfig{StripBold: true, TablesAsText: true},
			want: config.FormatConfig{},
		},
		{
			name: "single strip",
			args: []string{"--strip-code"},
			want: config.FormatConfig{StripCode: true},
		},
		{
			name: "strip all",
			args: []string{"--strip-all"},
			want: config.FormatConfig{StripBold: true, StripItalic: true, StripCode: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			flags, _, err := parseEmailFlags(tt.args, io.Discard)
			if err != nil {
				t.Fatalf("parseEmailFlags() error = %v", err)
			}
			cfg := &config.Config{Format: tt.cfg}

			mergeFormatFlags(&flags.format, cfg)

			if cfg.Format != tt.want {
				t.Errorf("Format = %+v, want %+v", cfg.Format, tt.want)
			}
		})
	}
}

func TestMergeDocumentFlags(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{Document: config.DocumentConfig{Font: "Arial", CodeFont: "Menlo", FontSize: 10}}
	mergeDocumentFlags(&documentFlags{font: "Georgia", fontSize: 14}, cfg)

	want := config.DocumentConfig{Font: "Georgia", CodeFont: "Menlo", FontSize: 14}
	if cfg.Document != want {
		t.Errorf("Document = %+v, want %+v", cfg.Document, want)
	}
}

func TestFormatOptions(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{Format: config.FormatConfig{StripItalic: true, TablesAsText: true}}
	want := md2docx.FormattingOptions{StripItalic: true, RenderTablesAsText: true}
	if got := formatOptions(cfg); got != want {
		t.Errorf("formatOptions() = %+v, want %+v", got, want)
	}
}

// Package fileutil provides source-name validation, text decoding and file
// helpers for Markdown intake and DOCX output.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

// Sentinel errors for file utility operations.
var (
	ErrUnsupportedSuffix = errors.New("unsupported file suffix")
	ErrInvalidEncoding   = errors.New("content is not valid UTF-8 or UTF-16 text")
)

// DefaultOutputName is used when the input has no source name.
const DefaultOutputName = "converted-document.docx"

// OutputSuffix is the suffix of every structured output file.
const OutputSuffix = ".docx"

// SourceSuffixes lists the accepted input suffixes, lowercase.
var SourceSuffixes = []string{".md", ".markdown", ".txt"}

// ValidateSourceName checks that name ends with an accepted suffix.
// Only the name is inspected, never the content. Matching is
// case-insensitive.
func ValidateSourceName(name string) error {
	if HasSourceSuffix(name) {
		return nil
	}
	return fmt.Errorf("%w: %q (accepted: %s)", ErrUnsupportedSuffix, filepath.Base(name), strings.Join(SourceSuffixes, ", "))
}

// HasSourceSuffix reports whether name ends with an accepted suffix.
func HasSourceSuffix(name string) bool {
	return sourceSuffix(name) != ""
}

func sourceSuffix(name string) string {
	lower := strings.ToLower(name)
	for _, s := range SourceSuffixes {
		if strings.HasSuffix(lower, s) {
			return s
		}
	}
	return ""
}

// OutputName derives the output file name from a source name by replacing
// its accepted suffix with ".docx". An empty name yields DefaultOutputName.
//
// Examples:
//   - "notes.md"        -> "notes.docx"
//   - "dir/README.MD"   -> "README.docx"
//   - "draft.markdown"  -> "draft.docx"
//   - ""                -> "converted-document.docx"
//   - "data.csv"        -> "data.csv.docx"
func OutputName(sourceName string) string {
	base := filepath.Base(sourceName)
	if sourceName == "" || base == "." || base == string(filepath.Separator) {
		return DefaultOutputName
	}
	if s := sourceSuffix(base); s != "" {
		return base[:len(base)-len(s)] + OutputSuffix
	}
	return base + OutputSuffix
}

type byteOrder int

const (
	orderNone byteOrder = iota
	orderUTF8BOM
	orderUTF16LE
	orderUTF16BE
)

func detectByteOrder(data []byte) byteOrder {
	if len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF {
		return orderUTF8BOM
	}
	if len(data) >= 2 {
		switch {
		case data[0] == 0xFF && data[1] == 0xFE:
			return orderUTF16LE
		case data[0] == 0xFE && data[1] == 0xFF:
			return orderUTF16BE
		}
	}
	return orderNone
}

// DecodeText converts file bytes to a UTF-8 string. A UTF-8 byte order mark
// is dropped and UTF-16 input with a byte order mark is transcoded. Anything
// else must already be valid UTF-8.
func DecodeText(data []byte) (string, error) {
	switch detectByteOrder(data) {
	case orderUTF8BOM:
		data = data[3:]
	case orderUTF16LE:
		return decodeUTF16(data, unicode.LittleEndian)
	case orderUTF16BE:
		return decodeUTF16(data, unicode.BigEndian)
	}
	if !utf8.Valid(data) {
		return "", ErrInvalidEncoding
	}
	return string(data), nil
}

func decodeUTF16(data []byte, endian unicode.Endianness) (string, error) {
	out, err := unicode.UTF16(endian, unicode.ExpectBOM).NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	return string(out), nil
}

// WriteFileAtomic writes data to a temporary file in the target directory
// and renames it over path, so readers never observe a partial file.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	tmpFile, err := os.CreateTemp(filepath.Dir(path), ".md2docx-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}

	tmpPath := tmpFile.Name()
	cleanup := func() { _ = os.Remove(tmpPath) }

	if _, writeErr := tmpFile.Write(data); writeErr != nil {
		_ = tmpFile.Close()
		cleanup()
		return fmt.Errorf("writing temp file: %w", writeErr)
	}

	if closeErr := tmpFile.Close(); closeErr != nil {
		cleanup()
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Chmod(tmpPath, perm); err != nil {
		cleanup()
		return fmt.Errorf("setting permissions: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		cleanup()
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "work" -> false (name)
//   - "./work.yaml" -> true (relative path)
//   - "C:\cfg\work.yaml" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

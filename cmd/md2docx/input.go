package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	md2docx "github.com/alnah/go-md2docx"
	"github.com/alnah/go-md2docx/internal/fileutil"
	"github.com/alnah/go-md2docx/internal/hints"
)

// stdinName is the positional argument that selects standard input.
const stdinName = "-"

// Sentinel errors for input handling.
var (
	ErrNoInput   = errors.New("no input specified")
	ErrReadInput = errors.New("failed to read standard input")
)

// readSource returns the Markdown at path, or standard input when path is
// empty or "-". The second result is the source name for output naming,
// empty for standard input.
func readSource(path string, env *Environment) (string, string, error) {
	if path != "" && path != stdinName {
		md, err := md2docx.ReadFile(path)
		if err != nil {
			return "", "", withInputHints(err)
		}
		return md, path, nil
	}

	if isTerminal(env.Stdin) {
		return "", "", fmt.Errorf("%w: pass a file or pipe Markdown on stdin", ErrNoInput)
	}

	data, err := io.ReadAll(env.Stdin)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrReadInput, err)
	}
	md, err := fileutil.DecodeText(data)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrReadInput, err)
	}
	return md, "", nil
}

// isTerminal reports whether r is an interactive terminal, where waiting
// for input would hang.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

// withInputHints appends an actionable hint to input validation errors.
func withInputHints(err error) error {
	switch {
	case errors.Is(err, md2docx.ErrInvalidFileType):
		return fmt.Errorf("%w%s", err, hints.ForInvalidFileType())
	case errors.Is(err, md2docx.ErrEmptyMarkdown):
		return fmt.Errorf("%w%s", err, hints.ForEmptyInput())
	}
	return err
}

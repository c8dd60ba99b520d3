package main

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/atotto/clipboard"

	md2docx "github.com/alnah/go-md2docx"
	"github.com/alnah/go-md2docx/internal/config"
)

// errClipboardUnsupported is returned when no clipboard helper is available.
var errClipboardUnsupported = errors.New("no clipboard utility available")

// Environment holds injectable dependencies for testability.
// Includes I/O, time, clipboard access and the base configuration.
type Environment struct {
	Now       func() time.Time
	Stdout    io.Writer
	Stderr    io.Writer
	Stdin     io.Reader
	Clipboard md2docx.Clipboard
	Config    *config.Config // Base configuration when no config file is named
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:       time.Now,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		Stdin:     os.Stdin,
		Clipboard: systemClipboard{},
		Config:    config.DefaultConfig(),
	}
}

// systemClipboard writes to the OS clipboard.
type systemClipboard struct{}

// Compile-time interface implementation check.
var _ md2docx.Clipboard = systemClipboard{}

func (systemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return errClipboardUnsupported
	}
	return clipboard.WriteAll(text)
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2docx/internal/fileutil"
	"github.com/alnah/go-md2docx/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrFieldOutOfRange = errors.New("field out of range")
)

// AppDirName is the directory under the user config dir searched by LoadConfig.
const AppDirName = "go-md2docx"

// Field limits.
const (
	MaxPathLength      = 4096 // PATH_MAX on Linux
	MaxFontNameLength  = 100  // "Source Code Pro Semibold" and friends
	MaxStyleNameLength = 50   // chroma style names
	MinFontSize        = 6    // points
	MaxFontSize        = 72   // points
)

// Config holds all configuration for document generation.
type Config struct {
	Input    InputConfig    `yaml:"input"`
	Output   OutputConfig   `yaml:"output"`
	Format   FormatConfig   `yaml:"format"`
	Document DocumentConfig `yaml:"document"`
	Preview  PreviewConfig  `yaml:"preview"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default input directory (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
}

// FormatConfig holds the inline strip toggles and table handling.
type FormatConfig struct {
	StripBold    bool `yaml:"stripBold"`
	StripItalic  bool `yaml:"stripItalic"`
	StripCode    bool `yaml:"stripCode"`
	TablesAsText bool `yaml:"tablesAsText"`
}

// DocumentConfig defines DOCX typography.
type DocumentConfig struct {
	Font     string `yaml:"font"`     // Body font (empty = Calibri)
	CodeFont string `yaml:"codeFont"` // Code font (empty = Courier New)
	FontSize int    `yaml:"fontSize"` // Points, 6-72 (0 = 11)
}

// PreviewConfig defines HTML preview options.
type PreviewConfig struct {
	HighlightStyle string `yaml:"highlightStyle"` // chroma style name (empty = github)
}

// Validate checks field lengths and ranges.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("input.defaultDir", c.Input.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("document.font", c.Document.Font, MaxFontNameLength); err != nil {
		return err
	}
	if err := validateFieldLength("document.codeFont", c.Document.CodeFont, MaxFontNameLength); err != nil {
		return err
	}
	if c.Document.FontSize != 0 && (c.Document.FontSize < MinFontSize || c.Document.FontSize > MaxFontSize) {
		return fmt.Errorf("%w: document.fontSize must be between %d and %d, got %d",
			ErrFieldOutOfRange, MinFontSize, MaxFontSize, c.Document.FontSize)
	}
	if err := validateFieldLength("preview.highlightStyle", c.Preview.HighlightStyle, MaxStyleNameLength); err != nil {
		return err
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a neutral configuration: styling kept, pipe lines
// treated as paragraphs, library typography defaults.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SearchPaths returns the candidate files LoadConfig tries for a name, in
// order: current directory, then the user config directory.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, AppDirName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing file from SearchPaths.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}

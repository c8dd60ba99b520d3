package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-md2docx/internal/config"
	"github.com/alnah/go-md2docx/internal/fileutil"
	"github.com/alnah/go-md2docx/internal/hints"
)

// envPrefix is shared by every recognized environment variable.
const envPrefix = "MD2DOCX_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // MD2DOCX_CONFIG: config file name or path
	InputDir   string // MD2DOCX_INPUT_DIR: default input directory
	OutputDir  string // MD2DOCX_OUTPUT_DIR: default output directory
	Font       string // MD2DOCX_FONT: body font family
	Workers    int    // MD2DOCX_WORKERS: parallel workers

	// MD2DOCX_STRIP: comma list of bold, italic, code, or "all"
	StripBold   bool
	StripItalic bool
	StripCode   bool

	// MD2DOCX_TABLES_AS_TEXT: boolean; nil when unset or unparsable
	TablesAsText *bool
}

// knownEnvVars lists valid MD2DOCX_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MD2DOCX_CONFIG":         true,
	"MD2DOCX_INPUT_DIR":      true,
	"MD2DOCX_OUTPUT_DIR":     true,
	"MD2DOCX_FONT":           true,
	"MD2DOCX_WORKERS":        true,
	"MD2DOCX_STRIP":          true,
	"MD2DOCX_TABLES_AS_TEXT": true,
}

// loadEnvConfig reads configuration from environment variables.
// Invalid numeric and boolean values are ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("MD2DOCX_CONFIG"),
		InputDir:   os.Getenv("MD2DOCX_INPUT_DIR"),
		OutputDir:  os.Getenv("MD2DOCX_OUTPUT_DIR"),
		Font:       os.Getenv("MD2DOCX_FONT"),
	}

	if workers := os.Getenv("MD2DOCX_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	for _, item := range strings.Split(os.Getenv("MD2DOCX_STRIP"), ",") {
		switch strings.ToLower(strings.TrimSpace(item)) {
		case "bold":
			cfg.StripBold = true
		case "italic":
			cfg.StripItalic = true
		case "code":
			cfg.StripCode = true
		case "all":
			cfg.StripBold, cfg.StripItalic, cfg.StripCode = true, true, true
		}
	}

	if v := os.Getenv("MD2DOCX_TABLES_AS_TEXT"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.TablesAsText = &b
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized MD2DOCX_* variables.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, envPrefix) {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment values over config values.
// Priority: CLI flags > env vars > config file > defaults
// (CLI flags are applied later by the command).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.InputDir != "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.OutputDir != "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.Font != "" {
		cfg.Document.Font = env.Font
	}

	// Strip toggles only turn styling off; a config "true" is never undone.
	if env.StripBold {
		cfg.Format.StripBold = true
	}
	if env.StripItalic {
		cfg.Format.StripItalic = true
	}
	if env.StripCode {
		cfg.Format.StripCode = true
	}
	if env.TablesAsText != nil {
		cfg.Format.TablesAsText = *env.TablesAsText
	}
}

// resolveConfig builds the effective configuration for a command: the named
// config file (flag, then MD2DOCX_CONFIG) or the environment's base config,
// with environment overrides applied.
func resolveConfig(name string, env *Environment) (*config.Config, error) {
	ec := loadEnvConfig()
	if name == "" {
		name = ec.ConfigPath
	}

	var cfg *config.Config
	if name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name) {
				return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
			}
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	} else {
		base := config.DefaultConfig()
		if env.Config != nil {
			*base = *env.Config
		}
		cfg = base
	}

	applyEnvConfig(ec, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

package main

import (
	"fmt"

	"github.com/alnah/go-md2docx/internal/yamlutil"
)

// runConfigCmd prints the effective configuration as YAML, after config
// file and environment overrides are applied.
func runConfigCmd(args []string, env *Environment) error {
	flags, err := parseConfigFlags(args, env.Stderr)
	if err != nil {
		return err
	}

	cfg, err := resolveConfig(flags.config, env)
	if err != nil {
		return err
	}

	data, err := yamlutil.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	_, err = env.Stdout.Write(data)
	return err
}

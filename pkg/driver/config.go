// Package driver implements the host-facing plumbing around the
// interpreter core: a small YAML run configuration and a golden-fixture
// test runner, grounded on the teacher's pkg/driver/manifest.go (also a
// yaml.v3-backed config loader) but sized to what Mython actually needs
// — there is no build-target or dependency graph to describe, since the
// language has no import system.
package driver

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the name LoadDefaultRunConfig looks for in the
// current working directory.
const DefaultConfigFile = "mython.yml"

// RunConfig is the parsed contents of a mython.yml file: the handful of
// knobs the CLI driver exposes beyond a bare source path. It controls
// ambient CLI behavior only, never language semantics.
type RunConfig struct {
	// Entry is the Mython source file to run (or check) when none is
	// given on the command line.
	Entry string `yaml:"entry"`
	// IndentWidth documents the leading-space width the lexer enforces;
	// it is informational only (the lexer's own constant is normative)
	// and no CLI command reads it.
	IndentWidth int `yaml:"indent_width"`
	// Check, when true and no subcommand is given, makes the bare
	// `mython` invocation parse-only instead of evaluating Entry.
	Check bool `yaml:"check"`
	// REPLPrompt overrides the prompt string `mython repl` shows.
	REPLPrompt string `yaml:"repl_prompt"`
	// REPLAccentColor overrides the lipgloss accent color (e.g.
	// "#3B82F6") used for the REPL's prompt and header.
	REPLAccentColor string `yaml:"repl_accent_color"`
}

// LoadRunConfig reads and parses a mython.yml file at path.
func LoadRunConfig(path string) (*RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("driver: read config %s: %w", path, err)
	}
	cfg := &RunConfig{IndentWidth: 2}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("driver: parse config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadDefaultRunConfig loads DefaultConfigFile from the current working
// directory. Absence of the file is not an error — it reports a nil
// config so the caller falls back to flag/argument defaults, mirroring
// the teacher's errManifestNotFound fallback path in cmd/able/main.go.
func LoadDefaultRunConfig() (*RunConfig, error) {
	cfg, err := LoadRunConfig(DefaultConfigFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	return cfg, nil
}

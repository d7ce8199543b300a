// Package config is the configuration surface of the generator: a YAML
// schema mirrored by CLI flags, validation of the selection strategy, and
// compilation of the raw values into engine options.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"plantuml-generator/internal/scope"
)

// Supported descriptor providers.
const (
	LanguageJava = "java"
	LanguageGo   = "go"
)

// Config is the raw, user-facing configuration. Zero values mean "off" for
// every toggle and "no limit" for both visibility ceilings.
type Config struct {
	// Language selects the descriptor provider (java or go).
	Language string `yaml:"language"`

	// SourcePath is the source tree root for the java provider. The go
	// provider resolves roots as package patterns instead.
	SourcePath string `yaml:"source_path"`

	// ScopeRoots lists the package roots to scan, in order. Mutually
	// exclusive with IncludePattern.
	ScopeRoots []string `yaml:"scope_roots"`

	// IncludePattern selects types by qualified name across everything
	// discoverable. Mutually exclusive with ScopeRoots.
	IncludePattern string `yaml:"include_pattern"`

	// ExcludePattern drops types after root-based inclusion.
	ExcludePattern string `yaml:"exclude_pattern"`

	HideClasses []string `yaml:"hide_classes"`
	HideFields  bool     `yaml:"hide_fields"`
	HideMethods bool     `yaml:"hide_methods"`

	RemoveFields  bool `yaml:"remove_fields"`
	RemoveMethods bool `yaml:"remove_methods"`

	FieldBlacklist  string `yaml:"field_blacklist"`
	MethodBlacklist string `yaml:"method_blacklist"`

	ExcludedFieldClassifiers  []string `yaml:"excluded_field_classifiers"`
	ExcludedMethodClassifiers []string `yaml:"excluded_method_classifiers"`

	// MaxFieldVisibility and MaxMethodVisibility are visibility ceilings
	// (public, protected, package_private, private). Empty admits all.
	MaxFieldVisibility  string `yaml:"max_field_visibility"`
	MaxMethodVisibility string `yaml:"max_method_visibility"`

	SimplifyNames bool `yaml:"simplify_names"`

	// Direction is a layout statement rendered on its own line after the
	// @startuml marker.
	Direction string `yaml:"direction"`
}

// LoadFile loads and parses a YAML configuration file.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Config.
func Parse(data []byte) (*Config, error) {
	var cfg Config

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Language == "" {
		cfg.Language = LanguageJava
	}

	if cfg.SourcePath == "" {
		cfg.SourcePath = "."
	}
}

// Validate checks the selection strategy and provider choice. It does not
// compile patterns; Compile reports those failures.
func (c *Config) Validate() error {
	if c.Language != LanguageJava && c.Language != LanguageGo {
		return fmt.Errorf("unknown language %q (want %s or %s)", c.Language, LanguageJava, LanguageGo)
	}

	if c.IncludePattern != "" && len(c.ScopeRoots) > 0 {
		return errors.New("include_pattern and scope_roots are mutually exclusive")
	}

	if c.IncludePattern != "" && c.ExcludePattern != "" {
		return errors.New("exclude_pattern applies to the scope_roots strategy only")
	}

	if c.IncludePattern == "" && len(c.ScopeRoots) == 0 {
		return errors.New("either include_pattern or scope_roots must be set")
	}

	return nil
}

// Criteria returns the provider-independent selection criteria.
func (c *Config) Criteria() scope.Criteria {
	return scope.Criteria{
		Roots:          c.ScopeRoots,
		IncludePattern: c.IncludePattern,
		ExcludePattern: c.ExcludePattern,
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"plantuml-generator/internal/config"
	"plantuml-generator/internal/generator"
	"plantuml-generator/internal/scope"
	"plantuml-generator/internal/scope/gopkg"
	"plantuml-generator/internal/scope/javasrc"
)

var (
	genConfigPath string
	genOut        string
	genDump       bool

	genFlags config.Config
)

func init() {
	f := generateCmd.Flags()

	f.StringVar(&genConfigPath, "config", "", "YAML configuration file")
	f.StringVar(&genOut, "out", "", "output file (default stdout)")
	f.BoolVar(&genDump, "dump-descriptors", false, "dump the resolved descriptor set to stderr")

	f.StringVar(&genFlags.Language, "language", config.LanguageJava, "descriptor provider (java|go)")
	f.StringVar(&genFlags.SourcePath, "source-path", ".", "source tree root (java) or working directory (go)")
	f.StringSliceVar(&genFlags.ScopeRoots, "scope-root", nil, "package root to scan (repeatable)")
	f.StringVar(&genFlags.IncludePattern, "include-pattern", "", "qualified-name inclusion pattern (alternative to scope roots)")
	f.StringVar(&genFlags.ExcludePattern, "exclude-pattern", "", "qualified-name exclusion pattern")
	f.StringSliceVar(&genFlags.HideClasses, "hide-class", nil, "qualified class name to hide (repeatable)")
	f.BoolVar(&genFlags.HideFields, "hide-fields", false, "emit a hide fields toggle")
	f.BoolVar(&genFlags.HideMethods, "hide-methods", false, "emit a hide methods toggle")
	f.BoolVar(&genFlags.RemoveFields, "remove-fields", false, "drop all fields from the model")
	f.BoolVar(&genFlags.RemoveMethods, "remove-methods", false, "drop all methods from the model")
	f.StringVar(&genFlags.FieldBlacklist, "field-blacklist", "", "field-name exclusion pattern")
	f.StringVar(&genFlags.MethodBlacklist, "method-blacklist", "", "method-name exclusion pattern")
	f.StringSliceVar(&genFlags.ExcludedFieldClassifiers, "exclude-field-classifier", nil, "field classifier to exclude (none|static|abstract|abstract_static)")
	f.StringSliceVar(&genFlags.ExcludedMethodClassifiers, "exclude-method-classifier", nil, "method classifier to exclude (none|static|abstract|abstract_static)")
	f.StringVar(&genFlags.MaxFieldVisibility, "max-field-visibility", "", "field visibility ceiling (public|protected|package_private|private)")
	f.StringVar(&genFlags.MaxMethodVisibility, "max-method-visibility", "", "method visibility ceiling")
	f.BoolVar(&genFlags.SimplifyNames, "simplify-names", false, "use simple names and type-only parameters")
	f.StringVar(&genFlags.Direction, "direction", "", "direction token appended after @startuml")
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Resolve the type scope and render the class diagram",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := buildConfig(cmd)
		if err != nil {
			return err
		}

		if err := cfg.Validate(); err != nil {
			return err
		}

		opts, err := cfg.Compile()
		if err != nil {
			return err
		}

		resolver, err := buildResolver(cfg)
		if err != nil {
			return err
		}

		types, err := resolver.Resolve()
		if err != nil {
			return err
		}

		if genDump {
			spew.Fdump(os.Stderr, types)
		}

		text := generator.New(opts).Generate(types)

		if genOut == "" {
			fmt.Println(text)
			return nil
		}

		if err := os.WriteFile(genOut, []byte(text+"\n"), 0644); err != nil {
			return fmt.Errorf("failed to write diagram %s: %w", genOut, err)
		}

		fmt.Fprintf(os.Stderr, "wrote %s\n", genOut)

		return nil
	},
}

// buildConfig loads the YAML file when given and lets explicitly set flags
// override its values.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	if genConfigPath == "" {
		cfg := genFlags
		return &cfg, nil
	}

	cfg, err := config.LoadFile(genConfigPath)
	if err != nil {
		return nil, err
	}

	overrideChanged(cmd, cfg)

	return cfg, nil
}

func overrideChanged(cmd *cobra.Command, cfg *config.Config) {
	set := map[string]func(){
		"language":                  func() { cfg.Language = genFlags.Language },
		"source-path":               func() { cfg.SourcePath = genFlags.SourcePath },
		"scope-root":                func() { cfg.ScopeRoots = genFlags.ScopeRoots },
		"include-pattern":           func() { cfg.IncludePattern = genFlags.IncludePattern },
		"exclude-pattern":           func() { cfg.ExcludePattern = genFlags.ExcludePattern },
		"hide-class":                func() { cfg.HideClasses = genFlags.HideClasses },
		"hide-fields":               func() { cfg.HideFields = genFlags.HideFields },
		"hide-methods":              func() { cfg.HideMethods = genFlags.HideMethods },
		"remove-fields":             func() { cfg.RemoveFields = genFlags.RemoveFields },
		"remove-methods":            func() { cfg.RemoveMethods = genFlags.RemoveMethods },
		"field-blacklist":           func() { cfg.FieldBlacklist = genFlags.FieldBlacklist },
		"method-blacklist":          func() { cfg.MethodBlacklist = genFlags.MethodBlacklist },
		"exclude-field-classifier":  func() { cfg.ExcludedFieldClassifiers = genFlags.ExcludedFieldClassifiers },
		"exclude-method-classifier": func() { cfg.ExcludedMethodClassifiers = genFlags.ExcludedMethodClassifiers },
		"max-field-visibility":      func() { cfg.MaxFieldVisibility = genFlags.MaxFieldVisibility },
		"max-method-visibility":     func() { cfg.MaxMethodVisibility = genFlags.MaxMethodVisibility },
		"simplify-names":            func() { cfg.SimplifyNames = genFlags.SimplifyNames },
		"direction":                 func() { cfg.Direction = genFlags.Direction },
	}

	for name, apply := range set {
		if cmd.Flags().Changed(name) {
			apply()
		}
	}
}

func buildResolver(cfg *config.Config) (scope.Resolver, error) {
	switch cfg.Language {
	case config.LanguageJava:
		return javasrc.New(cfg.SourcePath, cfg.Criteria()), nil
	case config.LanguageGo:
		return gopkg.New(cfg.SourcePath, cfg.Criteria()), nil
	default:
		return nil, fmt.Errorf("unknown language %q", cfg.Language)
	}
}

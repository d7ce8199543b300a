// Package main provides the CLI entrypoint for plantuml-generator.
//
// plantuml-generator renders PlantUML class diagrams from resolved type
// metadata:
//   - Resolves a type scope from Java sources (tree-sitter) or Go packages
//   - Maps types to UML classes, inferring inheritance, realization,
//     aggregation and association relationships
//   - Serializes a deterministic, byte-stable diagram document
package main

import (
	"os"

	"github.com/spf13/cobra"

	"plantuml-generator/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "plantuml-generator",
	Short: "Generate PlantUML class diagrams from Java sources or Go packages",
}

func main() {
	rootCmd.Version = version.Version
	rootCmd.AddCommand(generateCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

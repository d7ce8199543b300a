// Package version carries the build version string, overridable at link
// time via -ldflags "-X plantuml-generator/internal/version.Version=...".
package version

// Version is the tool version reported by the CLI.
var Version = "0.1.0-dev"

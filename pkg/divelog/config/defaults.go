// Package config provides configuration management for the subsurface git
// dive log loader.
package config

// Default configuration values.
const (
	// DefaultBranch is the branch to resolve when the location string
	// carries none. Empty means the repository's HEAD.
	DefaultBranch = ""

	// DefaultFormat is the output format used when none is specified.
	DefaultFormat = "pretty"

	// DefaultConfigDir is the default configuration directory path.
	DefaultConfigDir = "~/.config/subsurface"

	// DefaultCacheEnabled controls whether the load cache is used.
	DefaultCacheEnabled = true
)

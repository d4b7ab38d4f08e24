package domain

import "time"

// PackageConfig is the parsed package configuration file.
type PackageConfig struct {
	// Path is the file the configuration was read from.
	Path string
	// Packages is the package list as declared.
	Packages PackageList
	// CacheTTL overrides Settings.CacheTTL when non-zero.
	CacheTTL time.Duration
	// Workers overrides Settings.Workers when non-zero.
	Workers int
	// FallbackBranch overrides Settings.FallbackBranch when non-empty.
	FallbackBranch string
}

// Apply returns s with the overrides from the configuration file applied.
func (c PackageConfig) Apply(s Settings) Settings {
	if c.CacheTTL > 0 {
		s.CacheTTL = c.CacheTTL
	}
	if c.FallbackBranch != "" {
		s.FallbackBranch = c.FallbackBranch
	}
	return s.WithWorkers(c.Workers)
}

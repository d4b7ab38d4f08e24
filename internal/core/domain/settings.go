package domain

import "time"

// Settings is the immutable runtime configuration for a run.
// It is built once at start-up and passed by value to each component.
type Settings struct {
	// CacheTTL is the maximum age of a trusted cache record.
	CacheTTL time.Duration
	// CacheDir is the directory holding cache records.
	CacheDir string
	// OracleTimeout bounds a single nix invocation.
	OracleTimeout time.Duration
	// Workers bounds the number of concurrent version lookups.
	Workers int
	// FallbackBranch labels a primary input whose URL carries no branch.
	FallbackBranch string
	// FallbackSystem is used when the current system cannot be detected.
	FallbackSystem string
	// DefaultInput receives the packages of a flat package list.
	DefaultInput string
	// PrimaryBase is the source used for branch-tracking lookups when the input has no forge coordinates.
	PrimaryBase string
	// BreakerThreshold is the number of consecutive oracle infrastructure failures that opens a source's breaker.
	BreakerThreshold int64
}

const (
	// DefaultCacheTTL is the default cache record lifetime.
	DefaultCacheTTL = time.Hour
	// DefaultOracleTimeout is the default timeout for one nix invocation.
	DefaultOracleTimeout = 60 * time.Second
	// DefaultWorkers is the default lookup concurrency.
	DefaultWorkers = 4
	// DefaultFallbackBranch is the branch assumed for a primary input without one.
	DefaultFallbackBranch = "nixos-unstable"
	// DefaultFallbackSystem is used when system detection fails.
	DefaultFallbackSystem = "x86_64-linux"
	// DefaultPrimaryBase is the nixpkgs source used in branch-tracking mode.
	DefaultPrimaryBase = "github:nixos/nixpkgs"
	// DefaultBreakerThreshold is the default breaker trip threshold.
	DefaultBreakerThreshold = 5
)

// DefaultSettings returns the settings used when nothing is overridden.
func DefaultSettings() Settings {
	return Settings{
		CacheTTL:         DefaultCacheTTL,
		CacheDir:         DefaultCachePath(),
		OracleTimeout:    DefaultOracleTimeout,
		Workers:          DefaultWorkers,
		FallbackBranch:   DefaultFallbackBranch,
		FallbackSystem:   DefaultFallbackSystem,
		DefaultInput:     DefaultInput,
		PrimaryBase:      DefaultPrimaryBase,
		BreakerThreshold: DefaultBreakerThreshold,
	}
}

// WithCacheDir returns a copy using dir for cache records.
func (s Settings) WithCacheDir(dir string) Settings {
	s.CacheDir = dir
	return s
}

// WithWorkers returns a copy with the given concurrency. Values below one are ignored.
func (s Settings) WithWorkers(n int) Settings {
	if n > 0 {
		s.Workers = n
	}
	return s
}

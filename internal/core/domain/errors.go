package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigNotFound is returned when no package configuration file can be located.
	ErrConfigNotFound = zerr.New("no config found, create freshness.toml in your project root or ~/.config/flake-freshness/freshness.toml")

	// ErrConfigReadFailed is returned when the package configuration file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the package configuration file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrNoPackageDefinitions is returned when a configuration file lists no packages.
	ErrNoPackageDefinitions = zerr.New("config must contain package definitions")

	// ErrInvalidSettings is returned when a settings override cannot be applied.
	ErrInvalidSettings = zerr.New("invalid settings")

	// ErrFlakeNotFound is returned when the flake file passed on the command line does not exist.
	ErrFlakeNotFound = zerr.New("flake.nix not found")

	// ErrMetadataUnavailable is returned when no input metadata could be extracted from the flake.
	ErrMetadataUnavailable = zerr.New("could not extract input information")

	// ErrMetadataQueryFailed is returned when the metadata oracle exits unsuccessfully.
	ErrMetadataQueryFailed = zerr.New("failed to get flake metadata")

	// ErrMetadataParseFailed is returned when the metadata oracle output is not valid JSON.
	ErrMetadataParseFailed = zerr.New("failed to parse flake metadata")

	// ErrVersionQueryFailed is returned when the version oracle cannot produce a version.
	ErrVersionQueryFailed = zerr.New("failed to evaluate package version")

	// ErrSystemQueryFailed is returned when the current system cannot be asked from nix.
	ErrSystemQueryFailed = zerr.New("failed to get current system")

	// ErrCommandFailed is returned when an external command exits with a non-zero status.
	ErrCommandFailed = zerr.New("command failed")

	// ErrCommandTimeout is returned when an external command exceeds its deadline.
	ErrCommandTimeout = zerr.New("command timed out")

	// ErrCommandUnavailable is returned when an external command cannot be started.
	ErrCommandUnavailable = zerr.New("command unavailable")

	// ErrSourceUnavailable is returned when the circuit breaker for a source is open.
	ErrSourceUnavailable = zerr.New("source temporarily unavailable")

	// ErrCacheCreateFailed is returned when the version cache directory cannot be created.
	ErrCacheCreateFailed = zerr.New("failed to create version cache directory")

	// ErrCacheWriteFailed is returned when a version cannot be written to the cache.
	ErrCacheWriteFailed = zerr.New("failed to write version cache entry")

	// ErrCacheMarshalFailed is returned when a cache value cannot be encoded.
	ErrCacheMarshalFailed = zerr.New("failed to marshal version cache entry")

	// ErrCacheRefusedSentinel is returned when a caller tries to cache a failed resolution.
	ErrCacheRefusedSentinel = zerr.New("refusing to cache unresolved version")

	// ErrCleanFailed is returned when the cache directory cannot be removed.
	ErrCleanFailed = zerr.New("failed to remove version cache")
)

package config

import (
	"os"
	"strconv"
	"time"

	"go.trai.ch/freshness/internal/core/domain"
	"go.trai.ch/zerr"
)

// Environment variables that override the default settings.
const (
	EnvCacheTTL = "FRESHNESS_CACHE_TTL"
	EnvCacheDir = "FRESHNESS_CACHE_DIR"
	EnvWorkers  = "FRESHNESS_WORKERS"
	EnvTimeout  = "FRESHNESS_TIMEOUT"
)

// SettingsFromEnv returns the default settings with environment overrides applied.
func SettingsFromEnv() (domain.Settings, error) {
	return settingsFromLookup(os.LookupEnv)
}

func settingsFromLookup(lookup func(string) (string, bool)) (domain.Settings, error) {
	s := domain.DefaultSettings()

	if v, ok := lookup(EnvCacheDir); ok && v != "" {
		s = s.WithCacheDir(v)
	}

	if v, ok := lookup(EnvCacheTTL); ok && v != "" {
		ttl, err := parseDuration(v)
		if err != nil {
			return domain.Settings{}, zerr.With(err, "env", EnvCacheTTL)
		}
		s.CacheTTL = ttl
	}

	if v, ok := lookup(EnvTimeout); ok && v != "" {
		timeout, err := parseDuration(v)
		if err != nil {
			return domain.Settings{}, zerr.With(err, "env", EnvTimeout)
		}
		s.OracleTimeout = timeout
	}

	if v, ok := lookup(EnvWorkers); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return domain.Settings{}, zerr.With(zerr.With(domain.ErrInvalidSettings, "env", EnvWorkers), "value", v)
		}
		s.Workers = n
	}

	return s, nil
}

// parseDuration accepts a Go duration ("90m") or a whole number of seconds ("3600").
func parseDuration(v string) (time.Duration, error) {
	if secs, err := strconv.Atoi(v); err == nil {
		if secs <= 0 {
			return 0, zerr.With(domain.ErrInvalidSettings, "value", v)
		}
		return time.Duration(secs) * time.Second, nil
	}

	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return 0, zerr.With(domain.ErrInvalidSettings, "value", v)
	}
	return d, nil
}

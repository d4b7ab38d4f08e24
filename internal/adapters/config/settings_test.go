package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/freshness/internal/adapters/config"
	"go.trai.ch/freshness/internal/core/domain"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
}

func TestSettingsFromLookup_Defaults(t *testing.T) {
	s, err := config.SettingsFromLookup(lookupFrom(nil))
	require.NoError(t, err)

	assert.Equal(t, time.Hour, s.CacheTTL)
	assert.Equal(t, domain.DefaultWorkers, s.Workers)
	assert.Equal(t, "nixos-unstable", s.FallbackBranch)
	assert.Equal(t, "nixpkgs", s.DefaultInput)
}

func TestSettingsFromLookup_Overrides(t *testing.T) {
	s, err := config.SettingsFromLookup(lookupFrom(map[string]string{
		config.EnvCacheTTL: "120",
		config.EnvCacheDir: "/tmp/fresh",
		config.EnvWorkers:  "2",
		config.EnvTimeout:  "5s",
	}))
	require.NoError(t, err)

	assert.Equal(t, 2*time.Minute, s.CacheTTL)
	assert.Equal(t, "/tmp/fresh", s.CacheDir)
	assert.Equal(t, 2, s.Workers)
	assert.Equal(t, 5*time.Second, s.OracleTimeout)
}

func TestSettingsFromLookup_Invalid(t *testing.T) {
	tests := map[string]string{
		config.EnvCacheTTL: "-1",
		config.EnvWorkers:  "zero",
		config.EnvTimeout:  "later",
	}

	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			_, err := config.SettingsFromLookup(lookupFrom(map[string]string{key: value}))
			require.Error(t, err)
			assert.Contains(t, err.Error(), domain.ErrInvalidSettings.Error())
		})
	}
}

package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/freshness/internal/adapters/config"
	"go.trai.ch/freshness/internal/core/domain"
	"go.trai.ch/freshness/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func newLoader(t *testing.T) (*config.Loader, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	return config.NewLoader(log), log
}

func TestLoader_Load_FlatTOML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "freshness.toml", `
[packages]
packages = ["hello", "git"]
`)
	loader, _ := newLoader(t)

	cfg, err := loader.Load(path)
	require.NoError(t, err)

	assert.Equal(t, domain.FlatList{"hello", "git"}, cfg.Packages)
	assert.Equal(t, domain.Grouping{{Input: "nixpkgs", Packages: []string{"hello", "git"}}},
		cfg.Packages.Grouping(domain.DefaultInput))
}

func TestLoader_Load_PerInputTOMLKeepsOrder(t *testing.T) {
	path := writeFile(t, t.TempDir(), "freshness.toml", `
[zeta]
packages = ["z1"]

[nixpkgs]
packages = ["hello", "git"]

[alpha]
packages = ["a1"]
`)
	loader, _ := newLoader(t)

	cfg, err := loader.Load(path)
	require.NoError(t, err)

	g := cfg.Packages.Grouping(domain.DefaultInput)
	assert.Equal(t, []string{"zeta", "nixpkgs", "alpha"}, g.Inputs())
	assert.Equal(t, 4, g.Total())
}

func TestLoader_Load_FlatWinsOverSections(t *testing.T) {
	path := writeFile(t, t.TempDir(), "freshness.toml", `
[home-manager]
packages = ["hm"]

[packages]
packages = ["hello"]
`)
	loader, _ := newLoader(t)

	cfg, err := loader.Load(path)
	require.NoError(t, err)
	assert.Equal(t, domain.FlatList{"hello"}, cfg.Packages)
}

func TestLoader_Load_SectionWithoutPackagesIsIgnored(t *testing.T) {
	path := writeFile(t, t.TempDir(), "freshness.toml", `
title = "mine"

[meta]
owner = "me"

[nixpkgs]
packages = ["hello"]
`)
	loader, log := newLoader(t)
	log.EXPECT().Warn("ignoring section [meta] without a packages list")

	cfg, err := loader.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"nixpkgs"}, cfg.Packages.Grouping(domain.DefaultInput).Inputs())
}

func TestLoader_Load_NoPackageDefinitions(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"empty toml", "freshness.toml", ""},
		{"empty flat list", "freshness.toml", "[packages]\npackages = []\n"},
		{"only empty sections", "freshness.toml", "[nixpkgs]\npackages = []\n"},
		{"empty yaml", "freshness.yaml", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), tt.file, tt.content)
			loader, _ := newLoader(t)

			_, err := loader.Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), domain.ErrNoPackageDefinitions.Error())
		})
	}
}

func TestLoader_Load_Malformed(t *testing.T) {
	path := writeFile(t, t.TempDir(), "freshness.toml", "[nixpkgs\npackages = [")
	loader, _ := newLoader(t)

	_, err := loader.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrConfigParseFailed.Error())
}

func TestLoader_Load_Missing(t *testing.T) {
	loader, _ := newLoader(t)

	_, err := loader.Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrConfigReadFailed.Error())
}

func TestLoader_Load_YAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "freshness.yaml", `
nixpkgs:
  packages: [hello, git]
home-manager:
  packages:
    - hm
`)
	loader, _ := newLoader(t)

	cfg, err := loader.Load(path)
	require.NoError(t, err)

	g := cfg.Packages.Grouping(domain.DefaultInput)
	assert.Equal(t, []string{"nixpkgs", "home-manager"}, g.Inputs())
	assert.Equal(t, []string{"hello", "git"}, g[0].Packages)
}

func TestLoader_Load_Settings(t *testing.T) {
	path := writeFile(t, t.TempDir(), "freshness.toml", `
[settings]
cache_ttl = "30m"
workers = 8
fallback_branch = "nixos-24.05"

[packages]
packages = ["hello"]
`)
	loader, _ := newLoader(t)

	cfg, err := loader.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 30*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 8, cfg.Workers)

	s := cfg.Apply(domain.DefaultSettings())
	assert.Equal(t, 30*time.Minute, s.CacheTTL)
	assert.Equal(t, 8, s.Workers)
	assert.Equal(t, "nixos-24.05", s.FallbackBranch)
}

func TestLoader_Load_InvalidSettings(t *testing.T) {
	path := writeFile(t, t.TempDir(), "freshness.toml", `
[settings]
cache_ttl = "soon"

[packages]
packages = ["hello"]
`)
	loader, _ := newLoader(t)

	_, err := loader.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrInvalidSettings.Error())
}

func TestLoader_Find(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "freshness.toml")
	second := writeFile(t, dir, "scripts/flake-freshness/freshness.toml", "")

	ctrl := gomock.NewController(t)
	loader := config.NewLoaderWithCandidates(mocks.NewMockLogger(ctrl), []string{first, second})

	got, err := loader.Find("")
	require.NoError(t, err)
	assert.Equal(t, second, got)

	writeFile(t, dir, "freshness.toml", "")
	got, err = loader.Find("")
	require.NoError(t, err)
	assert.Equal(t, first, got)
}

func TestLoader_Find_Override(t *testing.T) {
	dir := t.TempDir()
	custom := writeFile(t, dir, "custom.toml", "")
	loader, _ := newLoader(t)

	got, err := loader.Find(custom)
	require.NoError(t, err)
	assert.Equal(t, custom, got)

	_, err = loader.Find(filepath.Join(dir, "missing.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrConfigNotFound.Error())
}

func TestLoader_Find_NothingFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := config.NewLoaderWithCandidates(mocks.NewMockLogger(ctrl), []string{filepath.Join(t.TempDir(), "x.toml")})

	_, err := loader.Find("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrConfigNotFound.Error())
}

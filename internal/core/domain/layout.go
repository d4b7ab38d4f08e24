package domain

import (
	"os"
	"path/filepath"
)

const (
	// ToolDirName is the per-tool directory name under the cache and config homes.
	ToolDirName = "flake-freshness"

	// ConfigFileName is the name of the package configuration file.
	ConfigFileName = "freshness.toml"

	// ConfigFileNameYAML is the YAML flavour of the package configuration file.
	ConfigFileNameYAML = "freshness.yaml"

	// ScriptsDirName is the project directory that may hold a bundled configuration.
	ScriptsDirName = "scripts"

	// DefaultFlakeFile is the flake path used when none is given.
	DefaultFlakeFile = "flake.nix"

	// CacheFileExt is the extension of a version cache record.
	CacheFileExt = ".json"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultCachePath returns the directory that holds version cache records.
// It honours XDG_CACHE_HOME and falls back to ~/.cache.
func DefaultCachePath() string {
	if dir := os.Getenv("XDG_CACHE_HOME"); dir != "" {
		return filepath.Join(dir, ToolDirName)
	}
	return filepath.Join(homeDir(), ".cache", ToolDirName)
}

// DefaultUserConfigDir returns the per-user configuration directory.
func DefaultUserConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, ToolDirName)
	}
	return filepath.Join(homeDir(), ".config", ToolDirName)
}

// DefaultConfigPaths returns the package configuration locations in lookup order.
func DefaultConfigPaths() []string {
	userDir := DefaultUserConfigDir()
	scriptsDir := filepath.Join(ScriptsDirName, ToolDirName)
	return []string{
		ConfigFileName,
		ConfigFileNameYAML,
		filepath.Join(userDir, ConfigFileName),
		filepath.Join(userDir, ConfigFileNameYAML),
		filepath.Join(scriptsDir, ConfigFileName),
		filepath.Join(scriptsDir, ConfigFileNameYAML),
	}
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}

package config

// reservedSettingsKey is the top-level table holding run settings instead of packages.
const reservedSettingsKey = "settings"

// flatKey is the table that, when it holds a packages list, makes the file a flat list.
const flatKey = "packages"

// packageSection is one input table, e.g. [nixpkgs] packages = ["hello"].
type packageSection struct {
	Packages []string `toml:"packages" yaml:"packages"`
}

// settingsSection is the optional [settings] table.
type settingsSection struct {
	CacheTTL       string `toml:"cache_ttl"       yaml:"cache_ttl"`
	Workers        int    `toml:"workers"         yaml:"workers"`
	FallbackBranch string `toml:"fallback_branch" yaml:"fallback_branch"`
}

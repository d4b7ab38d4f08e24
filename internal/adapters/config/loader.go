// Package config locates and parses the package configuration and builds run settings.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/freshness/internal/core/domain"
	"go.trai.ch/freshness/internal/core/ports"
	"go.trai.ch/zerr"
)

// Loader implements ports.ConfigLoader for TOML and YAML package files.
type Loader struct {
	Logger     ports.Logger
	candidates []string
}

// NewLoader creates a Loader that searches the default locations.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger, candidates: domain.DefaultConfigPaths()}
}

// NewLoaderWithCandidates creates a Loader that searches the given locations in order.
func NewLoaderWithCandidates(logger ports.Logger, candidates []string) *Loader {
	return &Loader{Logger: logger, candidates: candidates}
}

// Find returns override when it exists, or the first existing default location.
func (l *Loader) Find(override string) (string, error) {
	if override != "" {
		if _, err := os.Stat(override); err != nil {
			return "", zerr.With(domain.ErrConfigNotFound, "path", override)
		}
		return override, nil
	}

	for _, candidate := range l.candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	return "", domain.ErrConfigNotFound
}

// Load parses the configuration at path. The format is chosen by file extension.
func (l *Loader) Load(path string) (*domain.PackageConfig, error) {
	//nolint:gosec // Path is chosen by the user or from the fixed candidate list
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var doc document
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		doc, err = parseYAML(data)
	default:
		doc, err = parseTOML(data)
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	list, err := doc.packageList()
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	cfg := &domain.PackageConfig{
		Path:           path,
		Packages:       list,
		Workers:        doc.settings.Workers,
		FallbackBranch: doc.settings.FallbackBranch,
	}

	if doc.settings.CacheTTL != "" {
		ttl, err := parseDuration(doc.settings.CacheTTL)
		if err != nil {
			return nil, zerr.With(zerr.With(err, "path", path), "key", "settings.cache_ttl")
		}
		cfg.CacheTTL = ttl
	}

	for _, name := range doc.ignored {
		l.Logger.Warn("ignoring section [" + name + "] without a packages list")
	}

	return cfg, nil
}

// namedSection is a package section together with its table name, in file order.
type namedSection struct {
	name    string
	section packageSection
}

// document is the format-neutral result of parsing a configuration file.
type document struct {
	flat     *packageSection
	sections []namedSection
	settings settingsSection
	ignored  []string
}

func (d document) packageList() (domain.PackageList, error) {
	if d.flat != nil {
		if len(d.flat.Packages) == 0 {
			return nil, domain.ErrNoPackageDefinitions
		}
		return domain.FlatList(d.flat.Packages), nil
	}

	var list domain.PerInputList
	for _, s := range d.sections {
		list = append(list, domain.PackageGroup{Input: s.name, Packages: s.section.Packages})
	}
	if len(list.Grouping("")) == 0 {
		return nil, domain.ErrNoPackageDefinitions
	}
	return list, nil
}

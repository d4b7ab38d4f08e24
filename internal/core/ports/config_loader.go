package ports

import "go.trai.ch/freshness/internal/core/domain"

// ConfigLoader locates and reads the package configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Find returns the configuration path, using override when it is non-empty.
	Find(override string) (string, error)
	// Load parses the configuration at path.
	Load(path string) (*domain.PackageConfig, error)
}

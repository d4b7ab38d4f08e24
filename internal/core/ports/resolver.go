package ports

import (
	"context"

	"go.trai.ch/freshness/internal/core/domain"
)

// VersionResolver resolves package versions, consulting the cache first.
//
//go:generate mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type VersionResolver interface {
	// Resolve never fails; an unresolvable version is reported as domain.NotFound.
	Resolve(ctx context.Context, sourceRef, attrPath, pkg string, useCache bool) domain.Version
}

package nix

import (
	"context"
	"fmt"
	"sync"

	"go.trai.ch/freshness/internal/core/domain"
	"go.trai.ch/freshness/internal/core/ports"
)

// Resolver resolves package versions through a cache and a version oracle.
// Oracle infrastructure failures are tracked per source host; once a host's
// breaker opens, lookups against it return NotFound without calling the oracle.
type Resolver struct {
	oracle   ports.VersionOracle
	cache    ports.VersionCache
	logger   ports.Logger
	breakers *breakerSet
	warned   sync.Map
}

// NewResolver creates a Resolver.
func NewResolver(
	oracle ports.VersionOracle,
	cache ports.VersionCache,
	logger ports.Logger,
	settings domain.Settings,
) *Resolver {
	return &Resolver{
		oracle:   oracle,
		cache:    cache,
		logger:   logger,
		breakers: newBreakerSet(settings.BreakerThreshold),
	}
}

// Resolve returns the version of pkg under attrPath in sourceRef. It never fails:
// any lookup problem yields domain.NotFound.
func (r *Resolver) Resolve(ctx context.Context, sourceRef, attrPath, pkg string, useCache bool) domain.Version {
	key := r.cache.KeyFor(sourceRef, attrPath, pkg)

	if useCache {
		if value, ok := r.cache.Read(key); ok {
			return domain.Resolved(value)
		}
	}

	value, ok := r.lookup(ctx, sourceRef, attrPath, pkg)
	if !ok {
		return domain.NotFound()
	}

	version := domain.ParseVersion(value)
	if !version.IsResolved() {
		return domain.NotFound()
	}
	if useCache {
		_ = r.cache.Write(key, value)
	}
	return version
}

// BreakerStates reports the breaker state of every source host seen so far.
func (r *Resolver) BreakerStates() map[string]string {
	return r.breakers.states()
}

func (r *Resolver) lookup(ctx context.Context, sourceRef, attrPath, pkg string) (string, bool) {
	host := sourceHost(sourceRef)
	breaker := r.breakers.get(host)

	if !breaker.Ready() {
		if _, seen := r.warned.LoadOrStore(host, struct{}{}); !seen {
			r.logger.Warn(fmt.Sprintf("%s: %s", domain.ErrSourceUnavailable.Error(), host))
		}
		return "", false
	}

	var (
		value     string
		lookupErr error
	)
	err := breaker.Call(func() error {
		value, lookupErr = r.oracle.Version(ctx, sourceRef, attrPath, pkg)
		if isInfrastructure(lookupErr) {
			return lookupErr
		}
		return nil
	}, 0)
	if err != nil || lookupErr != nil {
		return "", false
	}

	return value, true
}

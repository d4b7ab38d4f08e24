package nix_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/freshness/internal/adapters/cas"
	"go.trai.ch/freshness/internal/adapters/nix"
	"go.trai.ch/freshness/internal/core/domain"
	"go.trai.ch/freshness/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const (
	testRef  = "github:nixos/nixpkgs/abc123"
	testAttr = "legacyPackages.x86_64-linux"
)

func TestResolver_CacheHitSkipsOracle(t *testing.T) {
	ctrl := gomock.NewController(t)
	oracle := mocks.NewMockVersionOracle(ctrl)
	cache := mocks.NewMockVersionCache(ctrl)
	resolver := nix.NewResolver(oracle, cache, mocks.NewMockLogger(ctrl), domain.DefaultSettings())

	cache.EXPECT().KeyFor(testRef, testAttr, "ripgrep").Return("key")
	cache.EXPECT().Read("key").Return("14.1.0", true)

	v := resolver.Resolve(context.Background(), testRef, testAttr, "ripgrep", true)
	assert.Equal(t, "14.1.0", v.String())
	assert.True(t, v.IsResolved())
}

func TestResolver_MissQueriesOracleAndWrites(t *testing.T) {
	ctrl := gomock.NewController(t)
	oracle := mocks.NewMockVersionOracle(ctrl)
	cache := mocks.NewMockVersionCache(ctrl)
	resolver := nix.NewResolver(oracle, cache, mocks.NewMockLogger(ctrl), domain.DefaultSettings())

	gomock.InOrder(
		cache.EXPECT().KeyFor(testRef, testAttr, "ripgrep").Return("key"),
		cache.EXPECT().Read("key").Return("", false),
		oracle.EXPECT().Version(gomock.Any(), testRef, testAttr, "ripgrep").Return("14.1.0", nil),
		cache.EXPECT().Write("key", "14.1.0").Return(nil),
	)

	v := resolver.Resolve(context.Background(), testRef, testAttr, "ripgrep", true)
	assert.Equal(t, "14.1.0", v.String())
}

func TestResolver_NoCacheBypassesReadAndWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	oracle := mocks.NewMockVersionOracle(ctrl)
	cache := mocks.NewMockVersionCache(ctrl)
	resolver := nix.NewResolver(oracle, cache, mocks.NewMockLogger(ctrl), domain.DefaultSettings())

	cache.EXPECT().KeyFor(gomock.Any(), gomock.Any(), gomock.Any()).Return("key")
	oracle.EXPECT().Version(gomock.Any(), testRef, testAttr, "ripgrep").Return("14.1.0", nil)

	v := resolver.Resolve(context.Background(), testRef, testAttr, "ripgrep", false)
	assert.Equal(t, "14.1.0", v.String())
}

func TestResolver_FailureIsNotFoundAndNeverCached(t *testing.T) {
	tests := []struct {
		name  string
		value string
		err   error
	}{
		{name: "oracle error", err: domain.ErrVersionQueryFailed},
		{name: "empty output", value: ""},
		{name: "sentinel output", value: domain.NotFoundText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			oracle := mocks.NewMockVersionOracle(ctrl)
			cache := mocks.NewMockVersionCache(ctrl)
			resolver := nix.NewResolver(oracle, cache, mocks.NewMockLogger(ctrl), domain.DefaultSettings())

			cache.EXPECT().KeyFor(gomock.Any(), gomock.Any(), gomock.Any()).Return("key")
			cache.EXPECT().Read("key").Return("", false)
			oracle.EXPECT().Version(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(tt.value, tt.err)

			v := resolver.Resolve(context.Background(), testRef, testAttr, "ripgrep", true)
			assert.True(t, v.IsNotFound())
		})
	}
}

func TestResolver_WarmCacheIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	oracle := mocks.NewMockVersionOracle(ctrl)
	settings := domain.DefaultSettings().WithCacheDir(t.TempDir())
	store := cas.NewStore(settings)
	resolver := nix.NewResolver(oracle, store, mocks.NewMockLogger(ctrl), settings)

	oracle.EXPECT().Version(gomock.Any(), testRef, testAttr, "ripgrep").Return("14.1.0", nil).Times(1)

	first := resolver.Resolve(context.Background(), testRef, testAttr, "ripgrep", true)
	second := resolver.Resolve(context.Background(), testRef, testAttr, "ripgrep", true)
	assert.Equal(t, first, second)
	assert.Equal(t, "14.1.0", second.String())
}

func TestResolver_BreakerOpensOnInfrastructureFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	oracle := mocks.NewMockVersionOracle(ctrl)
	cache := mocks.NewMockVersionCache(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	settings := domain.DefaultSettings()
	settings.BreakerThreshold = 2
	resolver := nix.NewResolver(oracle, cache, logger, settings)

	cache.EXPECT().KeyFor(gomock.Any(), gomock.Any(), gomock.Any()).Return("key").AnyTimes()
	oracle.EXPECT().Version(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", errors.Join(domain.ErrCommandTimeout, errors.New("deadline"))).
		Times(2)
	logger.EXPECT().Warn(gomock.Any()).Times(1)

	for range 4 {
		v := resolver.Resolve(context.Background(), testRef, testAttr, "ripgrep", false)
		assert.True(t, v.IsNotFound())
	}
	assert.Equal(t, map[string]string{"github": "open"}, resolver.BreakerStates())
}

func TestResolver_MissingAttributesDoNotTripBreaker(t *testing.T) {
	ctrl := gomock.NewController(t)
	oracle := mocks.NewMockVersionOracle(ctrl)
	cache := mocks.NewMockVersionCache(ctrl)
	settings := domain.DefaultSettings()
	settings.BreakerThreshold = 2
	resolver := nix.NewResolver(oracle, cache, mocks.NewMockLogger(ctrl), settings)

	cache.EXPECT().KeyFor(gomock.Any(), gomock.Any(), gomock.Any()).Return("key").AnyTimes()
	oracle.EXPECT().Version(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", domain.ErrVersionQueryFailed).
		Times(4)

	for range 4 {
		resolver.Resolve(context.Background(), testRef, testAttr, "missing", false)
	}
	assert.Equal(t, map[string]string{"github": "closed"}, resolver.BreakerStates())
}

func TestSourceHost(t *testing.T) {
	tests := []struct {
		ref  string
		want string
	}{
		{"github:nixos/nixpkgs/abc", "github"},
		{"git+https://git.example.com/repo", "git.example.com"},
		{"https://example.com/archive.tar.gz", "example.com"},
		{"plain", "plain"},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			assert.Equal(t, tt.want, nix.SourceHost(tt.ref))
		})
	}
}

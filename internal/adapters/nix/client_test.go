package nix_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/freshness/internal/adapters/nix"
	"go.trai.ch/freshness/internal/core/domain"
	"go.trai.ch/freshness/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestClient_Version(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	client := nix.NewClient(runner, logger, domain.DefaultSettings())

	runner.EXPECT().
		Run(gomock.Any(), "nix", "eval", "github:nixos/nixpkgs/abc#legacyPackages.x86_64-linux.ripgrep.version", "--raw").
		Return("14.1.0", nil)

	v, err := client.Version(context.Background(), "github:nixos/nixpkgs/abc", "legacyPackages.x86_64-linux", "ripgrep")
	require.NoError(t, err)
	assert.Equal(t, "14.1.0", v)
}

func TestClient_Version_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)
	client := nix.NewClient(runner, mocks.NewMockLogger(ctrl), domain.DefaultSettings())

	runner.EXPECT().Run(gomock.Any(), "nix", gomock.Any()).
		Return("", errors.Join(domain.ErrCommandTimeout, errors.New("killed")))

	_, err := client.Version(context.Background(), "github:nixos/nixpkgs", "legacyPackages.x86_64-linux", "ripgrep")
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrVersionQueryFailed.Error())
	assert.ErrorIs(t, err, domain.ErrCommandTimeout)
}

func TestClient_Version_EmptyOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)
	client := nix.NewClient(runner, mocks.NewMockLogger(ctrl), domain.DefaultSettings())

	runner.EXPECT().Run(gomock.Any(), "nix", gomock.Any()).Return("", nil)

	_, err := client.Version(context.Background(), "github:nixos/nixpkgs", "legacyPackages.x86_64-linux", "ripgrep")
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrVersionQueryFailed.Error())
}

func TestClient_Metadata(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)
	client := nix.NewClient(runner, mocks.NewMockLogger(ctrl), domain.DefaultSettings())

	dir := t.TempDir()
	runner.EXPECT().Run(gomock.Any(), "nix", "flake", "metadata", "--json", dir).Return(`{"locks":{}}`, nil)

	raw, err := client.Metadata(context.Background(), dir)
	require.NoError(t, err)
	assert.JSONEq(t, `{"locks":{}}`, string(raw))
}

func TestClient_Metadata_RelativePath(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)
	client := nix.NewClient(runner, mocks.NewMockLogger(ctrl), domain.DefaultSettings())

	abs, err := filepath.Abs(".")
	require.NoError(t, err)
	runner.EXPECT().Run(gomock.Any(), "nix", "flake", "metadata", "--json", abs).
		Return("", errors.New("boom"))

	_, err = client.Metadata(context.Background(), ".")
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrMetadataQueryFailed.Error())
}

func TestClient_CurrentSystem(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)
	client := nix.NewClient(runner, mocks.NewMockLogger(ctrl), domain.DefaultSettings())

	runner.EXPECT().
		Run(gomock.Any(), "nix", "eval", "--impure", "--expr", "builtins.currentSystem", "--raw").
		Return("aarch64-darwin", nil)

	assert.Equal(t, "aarch64-darwin", client.CurrentSystem(context.Background()))
}

func TestClient_CurrentSystem_Fallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	client := nix.NewClient(runner, logger, domain.DefaultSettings())

	runner.EXPECT().Run(gomock.Any(), "nix", gomock.Any()).Return("", domain.ErrCommandUnavailable)
	logger.EXPECT().Warn(gomock.Any()).Times(1)

	assert.NotEmpty(t, client.CurrentSystem(context.Background()))
}

func TestHostSystem(t *testing.T) {
	tests := []struct {
		goos, goarch string
		want         string
	}{
		{"linux", "amd64", "x86_64-linux"},
		{"linux", "arm64", "aarch64-linux"},
		{"darwin", "amd64", "x86_64-darwin"},
		{"darwin", "arm64", "aarch64-darwin"},
		{"windows", "amd64", "fallback-system"},
	}

	for _, tt := range tests {
		t.Run(tt.goos+"/"+tt.goarch, func(t *testing.T) {
			assert.Equal(t, tt.want, nix.HostSystem(tt.goos, tt.goarch, "fallback-system"))
		})
	}
}

// Package nix talks to the nix CLI: version and metadata oracles, system
// detection, lock metadata extraction and cached version resolution.
package nix

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"

	"go.trai.ch/freshness/internal/core/domain"
	"go.trai.ch/freshness/internal/core/ports"
	"go.trai.ch/zerr"
)

const nixBinary = "nix"

// Client implements the version and metadata oracles and system detection on top
// of a ports.CommandRunner.
type Client struct {
	runner         ports.CommandRunner
	logger         ports.Logger
	fallbackSystem string
}

// NewClient creates a Client.
func NewClient(runner ports.CommandRunner, logger ports.Logger, settings domain.Settings) *Client {
	return &Client{
		runner:         runner,
		logger:         logger,
		fallbackSystem: settings.FallbackSystem,
	}
}

// Version runs nix eval {sourceRef}#{attrPath}.{pkg}.version --raw.
func (c *Client) Version(ctx context.Context, sourceRef, attrPath, pkg string) (string, error) {
	installable := fmt.Sprintf("%s#%s.%s.version", sourceRef, attrPath, pkg)

	out, err := c.runner.Run(ctx, nixBinary, "eval", installable, "--raw")
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrVersionQueryFailed.Error()), "installable", installable)
	}
	if out == "" {
		return "", zerr.With(zerr.With(domain.ErrVersionQueryFailed, "installable", installable), "reason", "empty output")
	}

	return out, nil
}

// Metadata runs nix flake metadata --json for the flake in dir.
func (c *Client) Metadata(ctx context.Context, dir string) ([]byte, error) {
	ref := dir
	if abs, err := filepath.Abs(dir); err == nil {
		ref = abs
	}

	out, err := c.runner.Run(ctx, nixBinary, "flake", "metadata", "--json", ref)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrMetadataQueryFailed.Error()), "flake", ref)
	}

	return []byte(out), nil
}

// CurrentSystem asks nix for builtins.currentSystem, falling back to the host
// platform and finally to the configured fallback system.
func (c *Client) CurrentSystem(ctx context.Context) string {
	out, err := c.runner.Run(ctx, nixBinary, "eval", "--impure", "--expr", "builtins.currentSystem", "--raw")
	if err == nil && out != "" {
		return out
	}

	system := hostSystem(runtime.GOOS, runtime.GOARCH, c.fallbackSystem)
	if err == nil {
		err = zerr.With(domain.ErrSystemQueryFailed, "reason", "empty output")
	}
	c.logger.Warn(fmt.Sprintf("%s, using %s: %v", domain.ErrSystemQueryFailed.Error(), system, err))
	return system
}

// hostSystem maps Go's GOOS/GOARCH to a nix system double.
func hostSystem(goos, goarch, fallback string) string {
	switch {
	case goos == "darwin" && goarch == "amd64":
		return "x86_64-darwin"
	case goos == "darwin" && goarch == "arm64":
		return "aarch64-darwin"
	case goos == "linux" && goarch == "amd64":
		return "x86_64-linux"
	case goos == "linux" && goarch == "arm64":
		return "aarch64-linux"
	default:
		return fallback
	}
}

package ports

import "context"

// VersionOracle asks nix for a package version.
//
//go:generate mockgen -source=oracle.go -destination=mocks/mock_oracle.go -package=mocks
type VersionOracle interface {
	// Version evaluates {sourceRef}#{attrPath}.{pkg}.version.
	Version(ctx context.Context, sourceRef, attrPath, pkg string) (string, error)
}

// MetadataOracle asks nix for the lock graph of a flake.
type MetadataOracle interface {
	// Metadata returns the raw JSON printed by nix flake metadata for the flake in dir.
	Metadata(ctx context.Context, dir string) ([]byte, error)
}

// SystemDetector reports the nix system double of the running host.
type SystemDetector interface {
	// CurrentSystem returns a system such as x86_64-linux. It never fails.
	CurrentSystem(ctx context.Context) string
}

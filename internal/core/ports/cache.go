package ports

// VersionCache is a time-bounded store of resolved versions.
// All operations are best-effort.
//
//go:generate mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type VersionCache interface {
	// Read returns the cached value for key if it exists and is younger than the TTL.
	Read(key string) (string, bool)
	// Write stores value under key and resets its age.
	Write(key, value string) error
	// KeyFor derives the storage key for a lookup.
	KeyFor(sourceRef, attrPath, pkg string) string
}

// Package cas implements the on-disk version cache.
package cas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/freshness/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	// maxKeyLen keeps record file names below common file system limits.
	maxKeyLen = 200
	// keepPrefixLen is the readable part kept from an over-long key.
	keepPrefixLen = 160
)

var keyReplacer = strings.NewReplacer("/", "_", ":", "_")

// Store implements ports.VersionCache using a file-per-key strategy.
// Record validity is derived from the file modification time.
type Store struct {
	dir string
	ttl time.Duration
}

// NewStore creates a Store rooted at settings.CacheDir.
func NewStore(settings domain.Settings) *Store {
	return &Store{
		dir: filepath.Clean(settings.CacheDir),
		ttl: settings.CacheTTL,
	}
}

// Dir returns the directory holding the records.
func (s *Store) Dir() string {
	return s.dir
}

// KeyFor derives a file-system safe key for a version lookup.
func (s *Store) KeyFor(sourceRef, attrPath, pkg string) string {
	key := keyReplacer.Replace(sourceRef + "-" + attrPath + "-" + pkg)
	if len(key) <= maxKeyLen {
		return key
	}
	return key[:keepPrefixLen] + "-" + strconv.FormatUint(xxhash.Sum64String(key), 16)
}

// Read returns the cached value for key when the record is younger than the TTL.
// Missing, expired or malformed records are misses.
func (s *Store) Read(key string) (string, bool) {
	path := s.path(key)

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", false
	}
	if time.Since(info.ModTime()) >= s.ttl {
		return "", false
	}

	//nolint:gosec // Path is constructed from the cache directory and a sanitized key
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}

	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return "", false
	}
	if value == "" || value == domain.NotFoundText {
		return "", false
	}

	return value, true
}

// Write stores value under key, replacing any previous record.
func (s *Store) Write(key, value string) error {
	if value == "" || value == domain.NotFoundText {
		return zerr.With(domain.ErrCacheRefusedSentinel, "key", key)
	}

	data, err := json.Marshal(value)
	if err != nil {
		return zerr.Wrap(err, domain.ErrCacheMarshalFailed.Error())
	}

	if err := os.MkdirAll(s.dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheCreateFailed.Error()), "dir", s.dir)
	}

	if err := atomicWriteFile(s.dir, s.path(key), data); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "key", key)
	}

	return nil
}

// Clear removes every record.
func (s *Store) Clear() error {
	if err := os.RemoveAll(s.dir); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCleanFailed.Error()), "dir", s.dir)
	}
	return nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+domain.CacheFileExt)
}

// atomicWriteFile writes data to a temp file in dir and renames it over path,
// so concurrent writers never leave a torn record behind.
func atomicWriteFile(dir, path string, data []byte) error {
	tmpFile, err := os.CreateTemp(dir, ".record-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()

	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}

	if err := tmpFile.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}

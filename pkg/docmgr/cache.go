package docmgr

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/coolbeans/ontograph/pkg/errors"
)

// CachedDocument records a downloaded copy of a remote document.
type CachedDocument struct {
	// Location is the URL the document was downloaded from.
	Location string `json:"location"`

	// Path is the local file holding the document body.
	Path string `json:"path"`

	// FetchedAt is when the download completed.
	FetchedAt time.Time `json:"fetched_at"`
}

// DiskCache is a persistent index of downloaded documents. Each entry is
// a JSON file keyed by a SHA-256 hash of the location; the document body
// lives beside it.
type DiskCache struct {
	cacheDir string
	cacheTTL time.Duration
}

// diskCacheEntry wraps a CachedDocument with an expiration timestamp.
type diskCacheEntry struct {
	Document  CachedDocument `json:"document"`
	ExpiresAt time.Time      `json:"expires_at"`
}

// NewDiskCache creates a disk cache in cacheDir, creating the directory
// if needed.
func NewDiskCache(cacheDir string, cacheTTL time.Duration) (*DiskCache, error) {
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "failed to create cache directory %s", cacheDir)
	}
	if cacheTTL <= 0 {
		cacheTTL = DefaultCacheTTL
	}

	return &DiskCache{
		cacheDir: cacheDir,
		cacheTTL: cacheTTL,
	}, nil
}

// Dir returns the cache directory.
func (cache *DiskCache) Dir() string { return cache.cacheDir }

// Get returns the cached document for location if it exists, has not
// expired, and its body is still on disk.
func (cache *DiskCache) Get(location string) (CachedDocument, bool) {
	entryPath := cache.pathFor(location)

	data, err := os.ReadFile(entryPath)
	if err != nil {
		return CachedDocument{}, false
	}

	var entry diskCacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return CachedDocument{}, false
	}

	if time.Now().After(entry.ExpiresAt) {
		// Expired: drop the stale index entry and body.
		cache.Remove(location)
		return CachedDocument{}, false
	}

	if _, err := os.Stat(entry.Document.Path); err != nil {
		_ = os.Remove(entryPath)
		return CachedDocument{}, false
	}

	return entry.Document, true
}

// Set records doc in the cache.
func (cache *DiskCache) Set(doc CachedDocument) error {
	entry := diskCacheEntry{
		Document:  doc,
		ExpiresAt: time.Now().Add(cache.cacheTTL),
	}

	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal cache entry")
	}

	entryPath := cache.pathFor(doc.Location)
	if err := os.WriteFile(entryPath, data, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write cache file %s", entryPath)
	}

	return nil
}

// Remove deletes the index entry and body for location.
func (cache *DiskCache) Remove(location string) {
	_ = os.Remove(cache.pathFor(location))
	_ = os.Remove(cache.BodyPath(location))
}

// Clear deletes every cached entry.
func (cache *DiskCache) Clear() error {
	entries, err := os.ReadDir(cache.cacheDir)
	if err != nil {
		return errors.Wrapf(err, "failed to list cache directory %s", cache.cacheDir)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if err := os.Remove(filepath.Join(cache.cacheDir, e.Name())); err != nil {
			return errors.Wrap(err, "failed to clear cache")
		}
	}
	return nil
}

// BodyPath returns where the document body for location is stored.
func (cache *DiskCache) BodyPath(location string) string {
	return filepath.Join(cache.cacheDir, cache.keyFor(location)+".doc")
}

// keyFor returns the SHA-256 hash of the location, used as the file name.
func (cache *DiskCache) keyFor(location string) string {
	hash := sha256.Sum256([]byte(location))
	return hex.EncodeToString(hash[:])
}

// pathFor returns the index file path for a location.
func (cache *DiskCache) pathFor(location string) string {
	return filepath.Join(cache.cacheDir, cache.keyFor(location)+".json")
}

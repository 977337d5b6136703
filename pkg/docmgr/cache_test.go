package docmgr

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const foafLocation = "http://xmlns.com/foaf/0.1/index.rdf"

// cacheDocument writes a body for location and records it.
func cacheDocument(t *testing.T, cache *DiskCache, location, body string) CachedDocument {
	t.Helper()
	doc := CachedDocument{
		Location:  location,
		Path:      cache.BodyPath(location),
		FetchedAt: time.Now(),
	}
	if err := os.WriteFile(doc.Path, []byte(body), 0o644); err != nil {
		t.Fatalf("failed to write body: %v", err)
	}
	if err := cache.Set(doc); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	return doc
}

func TestDiskCache_SetAndGet(t *testing.T) {
	cache, err := NewDiskCache(t.TempDir(), 1*time.Hour)
	if err != nil {
		t.Fatalf("NewDiskCache failed: %v", err)
	}

	stored := cacheDocument(t, cache, foafLocation, "<rdf:RDF/>")

	retrieved, found := cache.Get(foafLocation)
	if !found {
		t.Fatal("Get returned not found for cached location")
	}
	if retrieved.Location != stored.Location {
		t.Errorf("Location: got %q, want %q", retrieved.Location, stored.Location)
	}
	if retrieved.Path != stored.Path {
		t.Errorf("Path: got %q, want %q", retrieved.Path, stored.Path)
	}
}

func TestDiskCache_Miss(t *testing.T) {
	cache, err := NewDiskCache(t.TempDir(), 1*time.Hour)
	if err != nil {
		t.Fatalf("NewDiskCache failed: %v", err)
	}

	if _, found := cache.Get("http://nonexistent.example.com/doc"); found {
		t.Error("Get returned found for uncached location")
	}
}

func TestDiskCache_TTLExpiration(t *testing.T) {
	// 1 millisecond TTL for immediate expiration.
	cache, err := NewDiskCache(t.TempDir(), 1*time.Millisecond)
	if err != nil {
		t.Fatalf("NewDiskCache failed: %v", err)
	}

	doc := cacheDocument(t, cache, foafLocation, "<rdf:RDF/>")

	time.Sleep(5 * time.Millisecond)

	if _, found := cache.Get(foafLocation); found {
		t.Error("Get returned found for expired entry")
	}
	if _, err := os.Stat(cache.pathFor(foafLocation)); !os.IsNotExist(err) {
		t.Error("Expired index file was not removed")
	}
	if _, err := os.Stat(doc.Path); !os.IsNotExist(err) {
		t.Error("Expired body was not removed")
	}
}

func TestDiskCache_MissingBody(t *testing.T) {
	cache, err := NewDiskCache(t.TempDir(), 1*time.Hour)
	if err != nil {
		t.Fatalf("NewDiskCache failed: %v", err)
	}

	doc := cacheDocument(t, cache, foafLocation, "<rdf:RDF/>")
	if err := os.Remove(doc.Path); err != nil {
		t.Fatal(err)
	}

	if _, found := cache.Get(foafLocation); found {
		t.Error("Get returned found although the body is gone")
	}
}

func TestDiskCache_InvalidDir(t *testing.T) {
	invalidPath := filepath.Join(t.TempDir(), "nonexistent", "\x00invalid")
	if _, err := NewDiskCache(invalidPath, 1*time.Hour); err == nil {
		t.Error("Expected error for invalid cache directory, got nil")
	}
}

func TestDiskCache_KeyFor(t *testing.T) {
	cache, err := NewDiskCache(t.TempDir(), 1*time.Hour)
	if err != nil {
		t.Fatalf("NewDiskCache failed: %v", err)
	}

	key1 := cache.keyFor("http://example.com/doc1")
	key2 := cache.keyFor("http://example.com/doc1")
	if key1 != key2 {
		t.Errorf("Same location produced different keys: %q vs %q", key1, key2)
	}
	if key1 == cache.keyFor("http://example.com/doc2") {
		t.Error("Different locations produced the same key")
	}
	if len(key1) != 64 {
		t.Errorf("Key length: got %d, want 64", len(key1))
	}
}

func TestDiskCache_CorruptedFile(t *testing.T) {
	cache, err := NewDiskCache(t.TempDir(), 1*time.Hour)
	if err != nil {
		t.Fatalf("NewDiskCache failed: %v", err)
	}

	if err := os.WriteFile(cache.pathFor(foafLocation), []byte("not valid json"), 0o644); err != nil {
		t.Fatalf("Failed to write corrupted file: %v", err)
	}
	if _, found := cache.Get(foafLocation); found {
		t.Error("Get returned found for corrupted cache file")
	}
}

func TestDiskCache_Clear(t *testing.T) {
	cache, err := NewDiskCache(t.TempDir(), 1*time.Hour)
	if err != nil {
		t.Fatalf("NewDiskCache failed: %v", err)
	}
	cacheDocument(t, cache, foafLocation, "a")
	cacheDocument(t, cache, "http://example.com/other.ttl", "b")

	if err := cache.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	entries, _ := os.ReadDir(cache.Dir())
	if len(entries) != 0 {
		t.Errorf("Clear left %d files", len(entries))
	}
}

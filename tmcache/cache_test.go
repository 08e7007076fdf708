package tmcache

import (
	"path/filepath"
	"testing"
)

func openTestCache(t *testing.T) *Cache {
	t.Helper()
	cache, err := Open(filepath.Join(t.TempDir(), "memory", "memory.db"))
	if err != nil {
		t.Fatalf("Open() error: %s", err)
	}
	t.Cleanup(func() { cache.Close() })
	return cache
}

func TestCacheLookupMiss(t *testing.T) {
	cache := openTestCache(t)

	_, found, err := cache.Lookup("en", "id", "Hello World")
	if err != nil {
		t.Fatalf("Lookup() error: %s", err)
	}
	if found {
		t.Error("expect miss on empty cache")
	}
}

func TestCacheStoreAndLookup(t *testing.T) {
	cache := openTestCache(t)

	if err := cache.Store("en", "id", "Hello World", "Halo Dunia"); err != nil {
		t.Fatalf("Store() error: %s", err)
	}

	msgstr, found, err := cache.Lookup("en", "id", "Hello World")
	if err != nil {
		t.Fatalf("Lookup() error: %s", err)
	}
	if !found || msgstr != "Halo Dunia" {
		t.Errorf("Lookup() = %q, %v, want \"Halo Dunia\", true", msgstr, found)
	}

	// Same msgid for a different language pair is a separate entry.
	_, found, err = cache.Lookup("en", "de", "Hello World")
	if err != nil {
		t.Fatalf("Lookup() error: %s", err)
	}
	if found {
		t.Error("language pairs must not share entries")
	}
}

func TestCacheStoreReplaces(t *testing.T) {
	cache := openTestCache(t)

	if err := cache.Store("en", "id", "Hello", "Halo"); err != nil {
		t.Fatal(err)
	}
	if err := cache.Store("en", "id", "Hello", "Hai"); err != nil {
		t.Fatalf("replacing Store() error: %s", err)
	}

	msgstr, found, _ := cache.Lookup("en", "id", "Hello")
	if !found || msgstr != "Hai" {
		t.Errorf("Lookup() after replace = %q, want \"Hai\"", msgstr)
	}

	n, err := cache.Size()
	if err != nil {
		t.Fatalf("Size() error: %s", err)
	}
	if n != 1 {
		t.Errorf("Size() = %d, want 1", n)
	}
}

func TestCacheSize(t *testing.T) {
	cache := openTestCache(t)

	for _, msgid := range []string{"one", "two", "three"} {
		if err := cache.Store("en", "id", msgid, msgid); err != nil {
			t.Fatal(err)
		}
	}
	n, err := cache.Size()
	if err != nil {
		t.Fatalf("Size() error: %s", err)
	}
	if n != 3 {
		t.Errorf("Size() = %d, want 3", n)
	}
}

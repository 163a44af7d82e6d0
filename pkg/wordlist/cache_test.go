package wordlist

import (
	"path/filepath"
	"testing"
)

func TestCacheStore_SaveThenLoadRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")

	store, err := OpenCache(path)
	if err != nil {
		t.Fatalf("OpenCache() error = %v", err)
	}
	defer store.Close()

	l := FromSlice([]string{"cat", "dog", "jazz"})
	if err := store.Save(l); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Size() != l.Size() {
		t.Errorf("loaded.Size() = %d, want %d", loaded.Size(), l.Size())
	}
	if len(loaded.WordsOfLength(3)) != 2 {
		t.Errorf("len(loaded.WordsOfLength(3)) = %d, want 2", len(loaded.WordsOfLength(3)))
	}
}

func TestCacheStore_SaveReplacesPriorContents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")

	store, err := OpenCache(path)
	if err != nil {
		t.Fatalf("OpenCache() error = %v", err)
	}
	defer store.Close()

	if err := store.Save(FromSlice([]string{"cat", "dog"})); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := store.Save(FromSlice([]string{"art"})); err != nil {
		t.Fatalf("second Save() error = %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Size() != 1 {
		t.Errorf("loaded.Size() = %d, want 1 (second Save should replace, not append)", loaded.Size())
	}
}

func TestCacheStore_LengthCounts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")

	store, err := OpenCache(path)
	if err != nil {
		t.Fatalf("OpenCache() error = %v", err)
	}
	defer store.Close()

	if err := store.Save(FromSlice([]string{"cat", "dog", "jazz"})); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	counts, err := store.LengthCounts()
	if err != nil {
		t.Fatalf("LengthCounts() error = %v", err)
	}
	if counts[3] != 2 {
		t.Errorf("counts[3] = %d, want 2", counts[3])
	}
	if counts[4] != 1 {
		t.Errorf("counts[4] = %d, want 1", counts[4])
	}
}

func TestOpenCache_ReopensExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")

	first, err := OpenCache(path)
	if err != nil {
		t.Fatalf("OpenCache() error = %v", err)
	}
	if err := first.Save(FromSlice([]string{"cat"})); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	first.Close()

	second, err := OpenCache(path)
	if err != nil {
		t.Fatalf("second OpenCache() error = %v", err)
	}
	defer second.Close()

	loaded, err := second.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Size() != 1 {
		t.Errorf("loaded.Size() = %d, want 1", loaded.Size())
	}
}

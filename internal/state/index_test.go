package state

import (
	"sort"
	"sync"
	"testing"
)

func TestIndexRemoveRequiresMatchingValue(t *testing.T) {
	idx := NewIndex[int, string]()
	idx.Put(1, "first")
	if idx.Remove(1, "other") {
		t.Fatalf("expected remove with stale value to fail")
	}
	if v, ok := idx.Get(1); !ok || v != "first" {
		t.Fatalf("expected value to survive, got %q ok=%v", v, ok)
	}
	if !idx.Remove(1, "first") {
		t.Fatalf("expected remove with current value to succeed")
	}
	if idx.Len() != 0 {
		t.Fatalf("expected empty index, got %d", idx.Len())
	}
	if idx.Remove(1, "first") {
		t.Fatalf("expected second remove to be a no-op")
	}
}

func TestIndexDeleteAndSnapshots(t *testing.T) {
	idx := NewIndex[string, int]()
	idx.Put("a", 1)
	idx.Put("b", 2)
	keys := idx.Keys()
	sort.Strings(keys)
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Fatalf("unexpected keys %v", keys)
	}
	if !idx.Delete("a") || idx.Delete("a") {
		t.Fatalf("expected delete to report presence exactly once")
	}
	values := idx.Values()
	if len(values) != 1 || values[0] != 2 {
		t.Fatalf("unexpected values %v", values)
	}
}

func TestIndexConcurrentAccess(t *testing.T) {
	idx := NewIndex[int, int]()
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				key := w*100 + i
				idx.Put(key, key)
				idx.Get(key)
				idx.Remove(key, key)
			}
		}(w)
	}
	wg.Wait()
	if idx.Len() != 0 {
		t.Fatalf("expected all keys removed, got %d", idx.Len())
	}
}

// Package state holds the concurrent lookup tables shared by the menu runtime.
package state

import "sync"

// Index is a mutex-guarded map. Values are compared on Remove so a stale
// owner cannot evict a newer registration under the same key.
type Index[K comparable, V comparable] struct {
	mu    sync.RWMutex
	items map[K]V
}

// NewIndex returns an empty index.
func NewIndex[K comparable, V comparable]() *Index[K, V] {
	return &Index[K, V]{items: make(map[K]V)}
}

// Put stores v under k, replacing any previous value.
func (i *Index[K, V]) Put(k K, v V) {
	i.mu.Lock()
	i.items[k] = v
	i.mu.Unlock()
}

// Get returns the value stored under k.
func (i *Index[K, V]) Get(k K) (V, bool) {
	i.mu.RLock()
	v, ok := i.items[k]
	i.mu.RUnlock()
	return v, ok
}

// Remove deletes k only while it still maps to v.
func (i *Index[K, V]) Remove(k K, v V) bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	current, ok := i.items[k]
	if !ok || current != v {
		return false
	}
	delete(i.items, k)
	return true
}

// Delete removes k unconditionally.
func (i *Index[K, V]) Delete(k K) bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	if _, ok := i.items[k]; !ok {
		return false
	}
	delete(i.items, k)
	return true
}

// Len reports the number of stored keys.
func (i *Index[K, V]) Len() int {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return len(i.items)
}

// Keys returns a snapshot of the stored keys in no particular order.
func (i *Index[K, V]) Keys() []K {
	i.mu.RLock()
	defer i.mu.RUnlock()
	keys := make([]K, 0, len(i.items))
	for k := range i.items {
		keys = append(keys, k)
	}
	return keys
}

// Values returns a snapshot of the stored values in no particular order.
func (i *Index[K, V]) Values() []V {
	i.mu.RLock()
	defer i.mu.RUnlock()
	values := make([]V, 0, len(i.items))
	for _, v := range i.items {
		values = append(values, v)
	}
	return values
}

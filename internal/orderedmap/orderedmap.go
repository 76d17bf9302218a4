// Package orderedmap implements a map that remembers the order in which
// keys were inserted. Entity attributes are stored in one of these so that
// serialization follows insertion order while lookups stay O(1).
package orderedmap

import (
	"errors"
	"iter"
	"slices"
)

var (
	ErrDuplicateEntry = errors.New("duplicate entry")
	ErrEntryNotFound  = errors.New("entry not found")
)

type Map[K comparable, V any] struct {
	entries []K
	keys    map[K]V
}

func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{
		entries: make([]K, 0),
		keys:    make(map[K]V),
	}
}

// Set appends a new entry. It fails with ErrDuplicateEntry if the key
// is already present.
func (m *Map[K, V]) Set(key K, value V) error {
	_, exists := m.keys[key]
	if exists {
		return ErrDuplicateEntry
	}
	m.entries = append(m.entries, key)
	m.keys[key] = value
	return nil
}

func (m *Map[K, V]) Get(key K) (V, bool) {
	v, ok := m.keys[key]
	return v, ok
}

func (m *Map[K, V]) Has(key K) bool {
	_, ok := m.keys[key]
	return ok
}

// Delete removes the entry for key, reporting whether anything was removed.
func (m *Map[K, V]) Delete(key K) bool {
	if _, ok := m.keys[key]; !ok {
		return false
	}
	delete(m.keys, key)
	if i := slices.Index(m.entries, key); i >= 0 {
		m.entries = slices.Delete(m.entries, i, i+1)
	}
	return true
}

// Rename changes the key of an entry without moving it.
func (m *Map[K, V]) Rename(from, to K) error {
	v, ok := m.keys[from]
	if !ok {
		return ErrEntryNotFound
	}
	if _, exists := m.keys[to]; exists {
		return ErrDuplicateEntry
	}
	delete(m.keys, from)
	m.keys[to] = v
	m.entries[slices.Index(m.entries, from)] = to
	return nil
}

func (m *Map[K, V]) Len() int {
	return len(m.entries)
}

func (m *Map[K, V]) Range() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range m.entries {
			v := m.keys[k]
			if !yield(k, v) {
				break
			}
		}
	}
}

// Package treemap implements the key-ordered associative container
// surface shared by every binary-search-tree node store: navigation,
// range iteration, bounded views, set algebra and bulk mutation. The
// balancing strategy lives behind the tree.Store contract; nothing in
// this package assumes more than the BST ordering invariant.
package treemap

import (
	"errors"

	"github.com/benz9527/xtree/lib/infra"
	"github.com/benz9527/xtree/lib/tree"
)

var (
	ErrEmptyTree       = errors.New("[tree-map] there is no element")
	ErrInvalidRange    = errors.New("[tree-map] range mutation is not supported")
	ErrInvalidArgument = errors.New("[tree-map] invalid argument")
)

// Item is one (key, value) pair of a map.
type Item[K infra.OrderedKey, V any] struct {
	Key K
	Val V
}

// TreeMap owns one node store and keeps the factory around, because
// pure operations (Copy, set algebra) build their results through a
// fresh store of the same kind.
//
// A TreeMap is not safe for concurrent use; callers serialize access.
type TreeMap[K infra.OrderedKey, V any] struct {
	store    tree.Store[K, V]
	newStore func() tree.Store[K, V]
}

func New[K infra.OrderedKey, V any](newStore func() tree.Store[K, V]) *TreeMap[K, V] {
	return &TreeMap[K, V]{
		store:    newStore(),
		newStore: newStore,
	}
}

// spawn builds an empty map over the same kind of store.
func (m *TreeMap[K, V]) spawn() *TreeMap[K, V] {
	return New(m.newStore)
}

func (m *TreeMap[K, V]) Len() int64 {
	return m.store.Len()
}

func (m *TreeMap[K, V]) IsEmpty() bool {
	return m.store.Len() == 0
}

func (m *TreeMap[K, V]) Contains(key K) bool {
	_, err := m.Get(key)
	return err == nil
}

// Put inserts the pair or overwrites the value of an existing key.
func (m *TreeMap[K, V]) Put(key K, val V) {
	m.store.Insert(key, val)
}

// Delete removes the key, or reports tree.ErrKeyNotFound.
func (m *TreeMap[K, V]) Delete(key K) error {
	return m.store.Remove(key)
}

// Discard removes the key if it is present. Discarding an absent key
// is a no-op, so calling it twice never fails.
func (m *TreeMap[K, V]) Discard(key K) {
	if err := m.store.Remove(key); err != nil && !errors.Is(err, tree.ErrKeyNotFound) {
		// The store contract only permits ErrKeyNotFound here.
		panic(err)
	}
}

func (m *TreeMap[K, V]) Clear() {
	m.store.Clear()
}

// GetDefault returns the stored value, or def for an absent key.
func (m *TreeMap[K, V]) GetDefault(key K, def V) V {
	val, err := m.Get(key)
	if err != nil {
		return def
	}
	return val
}

// Pop removes the key and returns its value. With one default value
// given, an absent key yields that default instead of
// tree.ErrKeyNotFound. More than one default is ErrInvalidArgument.
func (m *TreeMap[K, V]) Pop(key K, def ...V) (V, error) {
	var zero V
	if len(def) > 1 {
		return zero, ErrInvalidArgument
	}
	val, err := m.Get(key)
	if err != nil {
		if len(def) == 1 {
			return def[0], nil
		}
		return zero, err
	}
	return val, m.store.Remove(key)
}

// SetDefault returns the stored value; an absent key is first inserted
// with def, which is then returned.
func (m *TreeMap[K, V]) SetDefault(key K, def V) V {
	val, err := m.Get(key)
	if err != nil {
		m.store.Insert(key, def)
		return def
	}
	return val
}

// Update copies every pair of the given maps into m, in argument
// order; later sources overwrite earlier ones per key.
func (m *TreeMap[K, V]) Update(others ...*TreeMap[K, V]) {
	for _, other := range others {
		for it := other.Iter(); it.Next(); {
			m.store.Insert(it.Key(), it.Val())
		}
	}
}

// UpdateItems inserts the items in order; duplicates overwrite.
func (m *TreeMap[K, V]) UpdateItems(items ...Item[K, V]) {
	for _, item := range items {
		m.store.Insert(item.Key, item.Val)
	}
}

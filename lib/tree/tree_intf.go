package tree

import (
	"errors"

	"github.com/benz9527/xtree/lib/infra"
)

var ErrKeyNotFound = errors.New("[tree] key not found")

// Node is the read-only navigation surface a store exposes per element.
// Left and Right return an untyped nil when the child is absent, so a
// plain == nil check is always safe for callers holding the interface.
type Node[K infra.OrderedKey, V any] interface {
	Key() K
	Val() V
	Left() Node[K, V]
	Right() Node[K, V]
}

// Store is the node-store capability contract: an owner of a binary
// search tree which keeps the BST invariant (left subtree keys < node
// key < right subtree keys, no duplicates) across Insert and Remove,
// and reports an exact live node count in O(1). How the store keeps
// its height bounded is its own concern; navigation layers built on
// top of it only rely on the ordering invariant.
type Store[K infra.OrderedKey, V any] interface {
	// Root returns the current root node, or nil for an empty store.
	Root() Node[K, V]
	// Len returns the exact number of live nodes.
	Len() int64
	// Insert adds the pair or overwrites the value of an existing key.
	Insert(key K, val V)
	// Remove deletes the key, or reports ErrKeyNotFound.
	Remove(key K) error
	// Clear resets the store to the empty tree.
	Clear()
}

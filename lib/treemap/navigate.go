package treemap

import (
	"github.com/benz9527/xtree/lib/infra"
	"github.com/benz9527/xtree/lib/tree"
)

// childFn selects one child of a node. Directional algorithms receive
// their child selectors and comparator as first-class parameters, so
// forward and backward variants share a single core.
type childFn[K infra.OrderedKey, V any] func(tree.Node[K, V]) tree.Node[K, V]

func leftOf[K infra.OrderedKey, V any](n tree.Node[K, V]) tree.Node[K, V] {
	return n.Left()
}

func rightOf[K infra.OrderedKey, V any](n tree.Node[K, V]) tree.Node[K, V] {
	return n.Right()
}

func lessThan[K infra.OrderedKey](a, b K) bool {
	return a < b
}

func greaterThan[K infra.OrderedKey](a, b K) bool {
	return b < a
}

// edgeNode walks to the extreme node in one direction, nil when empty.
func edgeNode[K infra.OrderedKey, V any](s tree.Store[K, V], toward childFn[K, V]) tree.Node[K, V] {
	aux := s.Root()
	for aux != nil {
		next := toward(aux)
		if next == nil {
			break
		}
		aux = next
	}
	return aux
}

// Get returns the value stored for key, or tree.ErrKeyNotFound.
func (m *TreeMap[K, V]) Get(key K) (V, error) {
	aux := m.store.Root()
	for aux != nil {
		if key == aux.Key() {
			return aux.Val(), nil
		}
		if key < aux.Key() {
			aux = aux.Left()
		} else {
			aux = aux.Right()
		}
	}
	var zero V
	return zero, tree.ErrKeyNotFound
}

// MinItem returns the pair with the smallest key, or ErrEmptyTree.
func (m *TreeMap[K, V]) MinItem() (Item[K, V], error) {
	return m.edgeItem(leftOf[K, V])
}

// MaxItem returns the pair with the largest key, or ErrEmptyTree.
func (m *TreeMap[K, V]) MaxItem() (Item[K, V], error) {
	return m.edgeItem(rightOf[K, V])
}

func (m *TreeMap[K, V]) MinKey() (K, error) {
	item, err := m.MinItem()
	return item.Key, err
}

func (m *TreeMap[K, V]) MaxKey() (K, error) {
	item, err := m.MaxItem()
	return item.Key, err
}

func (m *TreeMap[K, V]) edgeItem(toward childFn[K, V]) (Item[K, V], error) {
	aux := edgeNode(m.store, toward)
	if aux == nil {
		return Item[K, V]{}, ErrEmptyTree
	}
	return Item[K, V]{Key: aux.Key(), Val: aux.Val()}, nil
}

// SuccItem returns the pair whose key is the smallest one strictly
// greater than key. The key itself must be present; asking for the
// successor of an absent or maximal key is tree.ErrKeyNotFound.
func (m *TreeMap[K, V]) SuccItem(key K) (Item[K, V], error) {
	return m.nextItem(key, leftOf[K, V], rightOf[K, V], lessThan[K])
}

// PrevItem is the mirror of SuccItem and yields the predecessor pair.
func (m *TreeMap[K, V]) PrevItem(key K) (Item[K, V], error) {
	return m.nextItem(key, rightOf[K, V], leftOf[K, V], greaterThan[K])
}

func (m *TreeMap[K, V]) SuccKey(key K) (K, error) {
	item, err := m.SuccItem(key)
	return item.Key, err
}

func (m *TreeMap[K, V]) PrevKey(key K) (K, error) {
	item, err := m.PrevItem(key)
	return item.Key, err
}

// nextItem descends from the root towards key, remembering the closest
// ancestor passed on the descend side. Once the key's node is found,
// the advance-side subtree minimum overrides the ancestor candidate
// when it is closer to key. Symmetric selectors and comparator turn
// the same walk into the predecessor search.
func (m *TreeMap[K, V]) nextItem(key K, descend, advance childFn[K, V], less func(a, b K) bool) (Item[K, V], error) {
	var cand tree.Node[K, V]
	aux := m.store.Root()
	for aux != nil {
		if key == aux.Key() {
			break
		}
		if less(key, aux.Key()) {
			if cand == nil || less(aux.Key(), cand.Key()) {
				cand = aux
			}
			aux = descend(aux)
		} else {
			aux = advance(aux)
		}
	}

	if aux == nil { // stayed at a dead end, key is absent
		return Item[K, V]{}, tree.ErrKeyNotFound
	}
	if next := advance(aux); next != nil {
		for d := descend(next); d != nil; d = descend(next) {
			next = d
		}
		if cand == nil || less(next.Key(), cand.Key()) {
			cand = next
		}
	}
	if cand == nil { // key is the extreme of the whole tree
		return Item[K, V]{}, tree.ErrKeyNotFound
	}
	return Item[K, V]{Key: cand.Key(), Val: cand.Val()}, nil
}

// FloorItem returns the pair with the greatest key <= key, or
// tree.ErrKeyNotFound when every key is greater.
func (m *TreeMap[K, V]) FloorItem(key K) (Item[K, V], error) {
	return m.boundItem(key, leftOf[K, V], rightOf[K, V], lessThan[K])
}

// CeilingItem returns the pair with the smallest key >= key, or
// tree.ErrKeyNotFound when every key is smaller.
func (m *TreeMap[K, V]) CeilingItem(key K) (Item[K, V], error) {
	return m.boundItem(key, rightOf[K, V], leftOf[K, V], greaterThan[K])
}

func (m *TreeMap[K, V]) FloorKey(key K) (K, error) {
	item, err := m.FloorItem(key)
	return item.Key, err
}

func (m *TreeMap[K, V]) CeilingKey(key K) (K, error) {
	item, err := m.CeilingItem(key)
	return item.Key, err
}

// boundItem short-circuits on an exact match; otherwise it records the
// best inclusive bound passed while moving away from it, and a deeper
// candidate always beats a higher one because the comparison reapplies
// at every step.
func (m *TreeMap[K, V]) boundItem(key K, descend, advance childFn[K, V], less func(a, b K) bool) (Item[K, V], error) {
	var cand tree.Node[K, V]
	aux := m.store.Root()
	for aux != nil {
		if key == aux.Key() {
			return Item[K, V]{Key: aux.Key(), Val: aux.Val()}, nil
		}
		if less(key, aux.Key()) {
			aux = descend(aux)
		} else {
			if cand == nil || less(cand.Key(), aux.Key()) {
				cand = aux
			}
			aux = advance(aux)
		}
	}
	if cand == nil {
		return Item[K, V]{}, tree.ErrKeyNotFound
	}
	return Item[K, V]{Key: cand.Key(), Val: cand.Val()}, nil
}

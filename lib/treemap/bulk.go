package treemap

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/benz9527/xtree/lib/infra"
	"github.com/benz9527/xtree/lib/tree"
)

// Copy builds an independent map holding the same pairs. The walk is
// pre-order, so a copied balanced store re-inserts its items from the
// former root downward; the resulting shape is the new store's own
// business, only item-set equality is promised.
func (m *TreeMap[K, V]) Copy() *TreeMap[K, V] {
	res := m.spawn()
	m.Foreach(PreOrder, func(key K, val V) bool {
		res.Put(key, val)
		return true
	})
	return res
}

// FromKeys builds a map assigning val to every key; duplicates in keys
// collapse onto a single pair.
func FromKeys[K infra.OrderedKey, V any](newStore func() tree.Store[K, V], keys []K, val V) *TreeMap[K, V] {
	m := New(newStore)
	for _, key := range keys {
		m.Put(key, val)
	}
	return m
}

// RemoveItems deletes each of the keys. The keys are snapshotted into
// a set before the first deletion, so the input may alias a live
// iteration of this map. Each deletion commits independently; absent
// keys are reported together, after every present key has been
// removed.
func (m *TreeMap[K, V]) RemoveItems(keys []K) error {
	snapshot := make(map[K]struct{}, len(keys))
	for _, key := range keys {
		snapshot[key] = struct{}{}
	}
	var err error
	for key := range snapshot {
		if rmErr := m.store.Remove(key); rmErr != nil {
			err = multierr.Append(err, fmt.Errorf("remove key %v: %w", key, rmErr))
		}
	}
	return err
}

// RemoveRange deletes every key selected by opts, snapshotting the key
// slice before mutating.
func (m *TreeMap[K, V]) RemoveRange(opts ...IterOpt[K]) error {
	return m.RemoveItems(m.Keys(opts...))
}

// PopMin removes and returns the pair with the smallest key.
func (m *TreeMap[K, V]) PopMin() (Item[K, V], error) {
	item, err := m.MinItem()
	if err != nil {
		return item, err
	}
	return item, m.store.Remove(item.Key)
}

// PopMax removes and returns the pair with the largest key.
func (m *TreeMap[K, V]) PopMax() (Item[K, V], error) {
	item, err := m.MaxItem()
	if err != nil {
		return item, err
	}
	return item, m.store.Remove(item.Key)
}

// PopItem removes and returns an arbitrary pair: the leaf reached by
// always preferring the left child. Which key that is depends only on
// the store's current shape.
func (m *TreeMap[K, V]) PopItem() (Item[K, V], error) {
	aux := m.store.Root()
	if aux == nil {
		return Item[K, V]{}, ErrEmptyTree
	}
	for {
		if l := aux.Left(); l != nil {
			aux = l
			continue
		}
		if r := aux.Right(); r != nil {
			aux = r
			continue
		}
		break
	}
	item := Item[K, V]{Key: aux.Key(), Val: aux.Val()}
	return item, m.store.Remove(item.Key)
}

// NSmallest returns up to n pairs with the smallest keys in ascending
// order. With pop set the pairs are removed one by one via PopMin;
// otherwise the map is read through an iterator and left untouched.
// An n beyond the map size yields every pair.
func (m *TreeMap[K, V]) NSmallest(n int, pop bool) []Item[K, V] {
	return m.extremeItems(n, pop, Forward)
}

// NLargest is the mirror of NSmallest: up to n pairs with the largest
// keys in descending order, popped via PopMax when pop is set.
func (m *TreeMap[K, V]) NLargest(n int, pop bool) []Item[K, V] {
	return m.extremeItems(n, pop, Backward)
}

func (m *TreeMap[K, V]) extremeItems(n int, pop bool, dir Direction) []Item[K, V] {
	if int64(n) > m.Len() {
		n = int(m.Len())
	}
	if n <= 0 {
		return nil
	}
	items := make([]Item[K, V], 0, n)
	if pop {
		popFn := (*TreeMap[K, V]).PopMin
		if dir == Backward {
			popFn = (*TreeMap[K, V]).PopMax
		}
		for i := 0; i < n; i++ {
			item, err := popFn(m)
			if err != nil {
				break
			}
			items = append(items, item)
		}
		return items
	}
	var opts []IterOpt[K]
	if dir == Backward {
		opts = append(opts, WithIterBackward[K]())
	}
	for it := m.Iter(opts...); len(items) < n && it.Next(); {
		items = append(items, it.Item())
	}
	return items
}

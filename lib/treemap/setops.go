package treemap

import (
	"github.com/samber/lo"

	"github.com/benz9527/xtree/lib/infra"
)

// Set algebra over key universes. Every operation is pure: operands
// stay untouched and results are brand-new maps built through the same
// store factory as the receiver. The universes are materialized as
// hash sets, trading O(n) auxiliary memory for simple membership
// tests.

func (m *TreeMap[K, V]) universe() map[K]struct{} {
	u := make(map[K]struct{}, m.Len())
	for it := m.Iter(); it.Next(); {
		u[it.Key()] = struct{}{}
	}
	return u
}

func universes[K infra.OrderedKey, V any](trees []*TreeMap[K, V]) []map[K]struct{} {
	return lo.Map(trees, func(t *TreeMap[K, V], _ int) map[K]struct{} {
		return t.universe()
	})
}

func setHas[K infra.OrderedKey](key K) func(map[K]struct{}) bool {
	return func(s map[K]struct{}) bool {
		_, ok := s[key]
		return ok
	}
}

// Intersection returns the pairs of m whose keys are present in every
// other map; values always come from m itself.
func (m *TreeMap[K, V]) Intersection(others ...*TreeMap[K, V]) *TreeMap[K, V] {
	sets := universes(others)
	res := m.spawn()
	for it := m.Iter(); it.Next(); {
		if lo.EveryBy(sets, setHas[K](it.Key())) {
			res.Put(it.Key(), it.Val())
		}
	}
	return res
}

// Difference returns the pairs of m whose keys are absent from each of
// the other maps.
func (m *TreeMap[K, V]) Difference(others ...*TreeMap[K, V]) *TreeMap[K, V] {
	sets := universes(others)
	res := m.spawn()
	for it := m.Iter(); it.Next(); {
		if !lo.SomeBy(sets, setHas[K](it.Key())) {
			res.Put(it.Key(), it.Val())
		}
	}
	return res
}

// Union returns a map keyed by the union of all operands' keys. Each
// value comes from the first operand owning the key, checked in the
// order [m, others...].
func (m *TreeMap[K, V]) Union(others ...*TreeMap[K, V]) *TreeMap[K, V] {
	res := m.spawn()
	operands := append([]*TreeMap[K, V]{m}, others...)
	for _, t := range operands {
		for it := t.Iter(); it.Next(); {
			if !res.Contains(it.Key()) {
				res.Put(it.Key(), it.Val())
			}
		}
	}
	return res
}

// SymmetricDifference returns the pairs whose keys live in exactly one
// of m and other; each value comes from the map owning the key.
func (m *TreeMap[K, V]) SymmetricDifference(other *TreeMap[K, V]) *TreeMap[K, V] {
	mine, theirs := m.universe(), other.universe()
	res := m.spawn()
	for it := m.Iter(); it.Next(); {
		if !setHas[K](it.Key())(theirs) {
			res.Put(it.Key(), it.Val())
		}
	}
	for it := other.Iter(); it.Next(); {
		if !setHas[K](it.Key())(mine) {
			res.Put(it.Key(), it.Val())
		}
	}
	return res
}

// IsSubset reports whether every key of m is a key of other.
func (m *TreeMap[K, V]) IsSubset(other *TreeMap[K, V]) bool {
	theirs := other.universe()
	return lo.EveryBy(m.Keys(), func(key K) bool {
		_, ok := theirs[key]
		return ok
	})
}

// IsSuperset reports whether every key of other is a key of m.
func (m *TreeMap[K, V]) IsSuperset(other *TreeMap[K, V]) bool {
	return other.IsSubset(m)
}

// IsDisjoint reports whether m and other share no key.
func (m *TreeMap[K, V]) IsDisjoint(other *TreeMap[K, V]) bool {
	theirs := other.universe()
	return !lo.SomeBy(m.Keys(), func(key K) bool {
		_, ok := theirs[key]
		return ok
	})
}

package treemap

import (
	"github.com/benz9527/xtree/lib/infra"
	"github.com/benz9527/xtree/lib/tree"
)

// go install golang.org/x/tools/cmd/stringer@latest

//go:generate stringer -type=Direction
type Direction int8

const (
	Forward Direction = iota
	Backward
)

type iterRange[K infra.OrderedKey] struct {
	start *K
	end   *K
	dir   Direction
}

type IterOpt[K infra.OrderedKey] func(*iterRange[K])

// WithIterStart bounds the iteration to keys >= key.
func WithIterStart[K infra.OrderedKey](key K) IterOpt[K] {
	return func(r *iterRange[K]) {
		r.start = &key
	}
}

// WithIterEnd bounds the iteration to keys < key.
func WithIterEnd[K infra.OrderedKey](key K) IterOpt[K] {
	return func(r *iterRange[K]) {
		r.end = &key
	}
}

// WithIterBackward yields keys in strictly descending order.
func WithIterBackward[K infra.OrderedKey]() IterOpt[K] {
	return func(r *iterRange[K]) {
		r.dir = Backward
	}
}

// Iterator is a lazy, single-pass walk over the pairs of one store,
// driven by an explicit ancestor stack so the auxiliary memory stays
// O(height) without touching the call stack. Re-iterating means
// constructing a new Iterator; mutating the tree mid-walk is the
// caller's hazard to avoid.
type Iterator[K infra.OrderedKey, V any] struct {
	stack   []tree.Node[K, V]
	descend childFn[K, V]
	advance childFn[K, V]
	inRange func(K) bool
	key     K
	val     V
}

// Iter starts an iteration over m. Without options it covers the whole
// map in ascending key order; WithIterStart/WithIterEnd clip it to the
// half-open range [start, end) where an open start means "from the
// minimum key" and an open end means "through the maximum key"
// (inclusive, unlike a concrete end bound).
func (m *TreeMap[K, V]) Iter(opts ...IterOpt[K]) *Iterator[K, V] {
	var r iterRange[K]
	for _, o := range opts {
		o(&r)
	}
	return newIterator(m.store, r)
}

func newIterator[K infra.OrderedKey, V any](s tree.Store[K, V], r iterRange[K]) *Iterator[K, V] {
	it := &Iterator[K, V]{
		stack:   make([]tree.Node[K, V], 0, s.Len()>>1),
		descend: leftOf[K, V],
		advance: rightOf[K, V],
		inRange: rangePredicate(s, r.start, r.end),
	}
	if r.dir == Backward {
		it.descend, it.advance = rightOf[K, V], leftOf[K, V]
	}
	it.pushSpine(s.Root())
	return it
}

func rangePredicate[K infra.OrderedKey, V any](s tree.Store[K, V], start, end *K) func(K) bool {
	if start == nil && end == nil {
		return func(K) bool { return true }
	}
	if start == nil {
		minNode := edgeNode(s, leftOf[K, V])
		if minNode == nil {
			return func(K) bool { return false }
		}
		minKey := minNode.Key()
		start = &minKey
	}
	lo := *start
	if end == nil {
		return func(key K) bool { return lo <= key }
	}
	hi := *end
	return func(key K) bool { return lo <= key && key < hi }
}

func (it *Iterator[K, V]) pushSpine(n tree.Node[K, V]) {
	for ; n != nil; n = it.descend(n) {
		it.stack = append(it.stack, n)
	}
}

// Next advances to the following in-range pair and reports whether one
// exists. Key and Val hold the pair until the next call.
func (it *Iterator[K, V]) Next() bool {
	for len(it.stack) > 0 {
		top := it.stack[len(it.stack)-1]
		it.stack = it.stack[:len(it.stack)-1]
		it.pushSpine(it.advance(top))
		if it.inRange(top.Key()) {
			it.key, it.val = top.Key(), top.Val()
			return true
		}
	}
	return false
}

func (it *Iterator[K, V]) Key() K {
	return it.key
}

func (it *Iterator[K, V]) Val() V {
	return it.val
}

func (it *Iterator[K, V]) Item() Item[K, V] {
	return Item[K, V]{Key: it.key, Val: it.val}
}

// Items materializes the iteration selected by opts.
func (m *TreeMap[K, V]) Items(opts ...IterOpt[K]) []Item[K, V] {
	items := make([]Item[K, V], 0, m.Len())
	for it := m.Iter(opts...); it.Next(); {
		items = append(items, it.Item())
	}
	return items
}

// Keys materializes the keys of the iteration selected by opts.
func (m *TreeMap[K, V]) Keys(opts ...IterOpt[K]) []K {
	keys := make([]K, 0, m.Len())
	for it := m.Iter(opts...); it.Next(); {
		keys = append(keys, it.Key())
	}
	return keys
}

// Values materializes the values of the iteration selected by opts.
func (m *TreeMap[K, V]) Values(opts ...IterOpt[K]) []V {
	vals := make([]V, 0, m.Len())
	for it := m.Iter(opts...); it.Next(); {
		vals = append(vals, it.Val())
	}
	return vals
}

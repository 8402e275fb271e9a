package treemap

import (
	"github.com/benz9527/xtree/lib/infra"
	"github.com/benz9527/xtree/lib/tree"
)

type sliceBounds[K infra.OrderedKey] struct {
	start *K
	end   *K
}

type SliceOpt[K infra.OrderedKey] func(*sliceBounds[K])

// WithSliceStart bounds the view to keys >= key.
func WithSliceStart[K infra.OrderedKey](key K) SliceOpt[K] {
	return func(b *sliceBounds[K]) {
		b.start = &key
	}
}

// WithSliceEnd bounds the view to keys < key.
func WithSliceEnd[K infra.OrderedKey](key K) SliceOpt[K] {
	return func(b *sliceBounds[K]) {
		b.end = &key
	}
}

// TreeSlice is a read-through view of one map clipped to the half-open
// key range [start, end), where a nil bound is open. It copies no
// data: pairs deleted from the map disappear from the view as well.
type TreeSlice[K infra.OrderedKey, V any] struct {
	m     *TreeMap[K, V]
	start *K
	end   *K
}

// Slice builds a bounded view; without options it spans the whole map.
func (m *TreeMap[K, V]) Slice(opts ...SliceOpt[K]) *TreeSlice[K, V] {
	var b sliceBounds[K]
	for _, o := range opts {
		o(&b)
	}
	return &TreeSlice[K, V]{m: m, start: b.start, end: b.end}
}

// Slice re-slices the view. Bounds only narrow: the new start is the
// greater of the two starts, the new end the smaller of the two ends.
func (s *TreeSlice[K, V]) Slice(opts ...SliceOpt[K]) *TreeSlice[K, V] {
	var b sliceBounds[K]
	for _, o := range opts {
		o(&b)
	}
	start := s.start
	if b.start != nil && (start == nil || *start < *b.start) {
		start = b.start
	}
	end := s.end
	if b.end != nil && (end == nil || *b.end < *end) {
		end = b.end
	}
	return &TreeSlice[K, V]{m: s.m, start: start, end: end}
}

func (s *TreeSlice[K, V]) inBounds(key K) bool {
	if s.start != nil && key < *s.start {
		return false
	}
	if s.end != nil && !(key < *s.end) {
		return false
	}
	return true
}

// Get returns the value for key, or tree.ErrKeyNotFound when the key
// is absent from the map or lies outside the view's bounds.
func (s *TreeSlice[K, V]) Get(key K) (V, error) {
	if !s.inBounds(key) {
		var zero V
		return zero, tree.ErrKeyNotFound
	}
	return s.m.Get(key)
}

func (s *TreeSlice[K, V]) Contains(key K) bool {
	_, err := s.Get(key)
	return err == nil
}

// Put is unsupported: a bounded view only delegates reads, and value
// assignment targeted at a key range has no meaning.
func (s *TreeSlice[K, V]) Put(K, V) error {
	return ErrInvalidRange
}

func (s *TreeSlice[K, V]) iterOpts(dir Direction) []IterOpt[K] {
	opts := make([]IterOpt[K], 0, 3)
	if s.start != nil {
		opts = append(opts, WithIterStart[K](*s.start))
	}
	if s.end != nil {
		opts = append(opts, WithIterEnd[K](*s.end))
	}
	if dir == Backward {
		opts = append(opts, WithIterBackward[K]())
	}
	return opts
}

// Iter starts a lazy walk over the pairs inside the view's bounds.
func (s *TreeSlice[K, V]) Iter(dir Direction) *Iterator[K, V] {
	return s.m.Iter(s.iterOpts(dir)...)
}

func (s *TreeSlice[K, V]) Items(dir Direction) []Item[K, V] {
	return s.m.Items(s.iterOpts(dir)...)
}

func (s *TreeSlice[K, V]) Keys(dir Direction) []K {
	return s.m.Keys(s.iterOpts(dir)...)
}

func (s *TreeSlice[K, V]) Values(dir Direction) []V {
	return s.m.Values(s.iterOpts(dir)...)
}

package treemap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func pairMaps() (a, b *TreeMap[int, string]) {
	a = newIntStrMap()
	a.Put(1, "x")
	a.Put(2, "y")
	b = newIntStrMap()
	b.Put(2, "z")
	b.Put(3, "w")
	return a, b
}

func TestSetUnion(t *testing.T) {
	a, b := pairMaps()

	u := a.Union(b)
	require.Equal(t, []int{1, 2, 3}, u.Keys())
	// The first operand owning the key wins the value.
	require.Equal(t, "y", u.GetDefault(2, ""))
	require.Equal(t, "x", u.GetDefault(1, ""))
	require.Equal(t, "w", u.GetDefault(3, ""))

	// Operands stay untouched.
	require.Equal(t, []int{1, 2}, a.Keys())
	require.Equal(t, []int{2, 3}, b.Keys())
}

func TestSetIntersection(t *testing.T) {
	a, b := pairMaps()

	i := a.Intersection(b)
	require.Equal(t, []int{2}, i.Keys())
	require.Equal(t, "y", i.GetDefault(2, "")) // own value, never b's

	require.True(t, i.IsSubset(a))
	require.True(t, i.IsSubset(b))
}

func TestSetDifference(t *testing.T) {
	a, b := pairMaps()

	d := a.Difference(b)
	require.Equal(t, []int{1}, d.Keys())
	require.Equal(t, "x", d.GetDefault(1, ""))

	require.Empty(t, a.Difference(a.Copy()).Keys())
}

func TestSetSymmetricDifference(t *testing.T) {
	a, b := pairMaps()

	x := a.SymmetricDifference(b)
	require.Equal(t, []int{1, 3}, x.Keys())
	require.Equal(t, "x", x.GetDefault(1, ""))
	require.Equal(t, "w", x.GetDefault(3, ""))

	// Never contains a key present in both operands.
	for _, key := range x.Keys() {
		require.False(t, a.Contains(key) && b.Contains(key))
	}
}

func TestSetMultiOperand(t *testing.T) {
	a := newIntStrMap()
	a.UpdateItems(Item[int, string]{1, "a"}, Item[int, string]{2, "a"}, Item[int, string]{3, "a"})
	b := newIntStrMap()
	b.UpdateItems(Item[int, string]{2, "b"}, Item[int, string]{3, "b"}, Item[int, string]{4, "b"})
	c := newIntStrMap()
	c.UpdateItems(Item[int, string]{3, "c"}, Item[int, string]{5, "c"})

	require.Equal(t, []int{3}, a.Intersection(b, c).Keys())
	require.Equal(t, []int{1}, a.Difference(b, c).Keys())
	require.Equal(t, []int{1, 2, 3, 4, 5}, a.Union(b, c).Keys())
	// Key 4 is owned by b first, key 5 only by c.
	u := a.Union(b, c)
	require.Equal(t, "a", u.GetDefault(3, ""))
	require.Equal(t, "b", u.GetDefault(4, ""))
	require.Equal(t, "c", u.GetDefault(5, ""))
}

func TestSetPredicates(t *testing.T) {
	a, b := pairMaps()

	sub := newIntStrMap()
	sub.Put(2, "whatever")
	require.True(t, sub.IsSubset(a))
	require.True(t, a.IsSuperset(sub))
	require.False(t, a.IsSubset(sub))
	require.False(t, a.IsDisjoint(b))

	c := newIntStrMap()
	c.Put(42, "v")
	require.True(t, a.IsDisjoint(c))

	empty := newIntStrMap()
	require.True(t, empty.IsSubset(a))
	require.True(t, empty.IsDisjoint(a))
	require.True(t, a.IsSuperset(empty))
}

// Union keys always equal the set union of both key universes.
func TestSetUnionLaw(t *testing.T) {
	a, b := pairMaps()

	want := make(map[int]struct{})
	for _, key := range a.Keys() {
		want[key] = struct{}{}
	}
	for _, key := range b.Keys() {
		want[key] = struct{}{}
	}

	got := a.Union(b).Keys()
	require.Len(t, got, len(want))
	for _, key := range got {
		require.Contains(t, want, key)
	}
}

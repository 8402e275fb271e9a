package treemap

import (
	randv2 "math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/benz9527/xtree/lib/tree"
)

func TestNavigateMinMax(t *testing.T) {
	for _, sc := range storeCases() {
		t.Run(sc.name, func(tt *testing.T) {
			m := fixtureMap(sc.newStore)

			item, err := m.MinItem()
			require.NoError(tt, err)
			require.Equal(tt, Item[int, string]{1, "a"}, item)

			item, err = m.MaxItem()
			require.NoError(tt, err)
			require.Equal(tt, Item[int, string]{9, "i"}, item)

			key, err := m.MinKey()
			require.NoError(tt, err)
			require.Equal(tt, 1, key)

			key, err = m.MaxKey()
			require.NoError(tt, err)
			require.Equal(tt, 9, key)
		})
	}
}

func TestNavigateEmptyTree(t *testing.T) {
	m := newIntStrMap()

	_, err := m.MinItem()
	require.ErrorIs(t, err, ErrEmptyTree)
	_, err = m.MaxItem()
	require.ErrorIs(t, err, ErrEmptyTree)
	_, err = m.PopMin()
	require.ErrorIs(t, err, ErrEmptyTree)
	_, err = m.PopMax()
	require.ErrorIs(t, err, ErrEmptyTree)
	_, err = m.PopItem()
	require.ErrorIs(t, err, ErrEmptyTree)

	require.Equal(t, "default", m.GetDefault(1, "default"))
}

func TestNavigateSuccAndPrev(t *testing.T) {
	for _, sc := range storeCases() {
		t.Run(sc.name, func(tt *testing.T) {
			m := fixtureMap(sc.newStore)

			item, err := m.SuccItem(5)
			require.NoError(tt, err)
			require.Equal(tt, Item[int, string]{7, "g"}, item)

			item, err = m.PrevItem(5)
			require.NoError(tt, err)
			require.Equal(tt, Item[int, string]{4, "d"}, item)

			// Absent key.
			_, err = m.SuccItem(6)
			require.ErrorIs(tt, err, tree.ErrKeyNotFound)
			_, err = m.PrevItem(6)
			require.ErrorIs(tt, err, tree.ErrKeyNotFound)

			// No answer in that direction.
			_, err = m.SuccItem(9)
			require.ErrorIs(tt, err, tree.ErrKeyNotFound)
			_, err = m.PrevItem(1)
			require.ErrorIs(tt, err, tree.ErrKeyNotFound)
		})
	}
}

func TestNavigateFloorAndCeiling(t *testing.T) {
	for _, sc := range storeCases() {
		t.Run(sc.name, func(tt *testing.T) {
			m := fixtureMap(sc.newStore)

			item, err := m.FloorItem(6)
			require.NoError(tt, err)
			require.Equal(tt, Item[int, string]{5, "e"}, item)

			item, err = m.CeilingItem(6)
			require.NoError(tt, err)
			require.Equal(tt, Item[int, string]{7, "g"}, item)

			// Exact match short-circuits.
			item, err = m.FloorItem(7)
			require.NoError(tt, err)
			require.Equal(tt, Item[int, string]{7, "g"}, item)
			item, err = m.CeilingItem(7)
			require.NoError(tt, err)
			require.Equal(tt, Item[int, string]{7, "g"}, item)

			// No bound on that side.
			_, err = m.FloorItem(0)
			require.ErrorIs(tt, err, tree.ErrKeyNotFound)
			_, err = m.CeilingItem(10)
			require.ErrorIs(tt, err, tree.ErrKeyNotFound)

			key, err := m.FloorKey(100)
			require.NoError(tt, err)
			require.Equal(tt, 9, key)
			key, err = m.CeilingKey(-100)
			require.NoError(tt, err)
			require.Equal(tt, 1, key)
		})
	}
}

// For every key pair along the order, succ and prev invert each other.
func TestNavigateSuccPrevConsistency_Random(t *testing.T) {
	for _, sc := range storeCases() {
		t.Run(sc.name, func(tt *testing.T) {
			m := New(sc.newStore)
			seen := make(map[int]struct{})
			for m.Len() < 500 {
				key := randv2.Int() % 10_000
				if _, ok := seen[key]; ok {
					continue
				}
				seen[key] = struct{}{}
				m.Put(key, "v")
			}

			for _, key := range m.Keys() {
				succ, err := m.SuccItem(key)
				if err != nil {
					require.ErrorIs(tt, err, tree.ErrKeyNotFound)
					continue // key is the maximum
				}
				back, err := m.PrevKey(succ.Key)
				require.NoError(tt, err)
				require.Equal(tt, key, back)
			}
		})
	}
}

package treemap

import (
	randv2 "math/rand"
	"testing"

	gbtree "github.com/google/btree"
	tbtree "github.com/tidwall/btree"

	"github.com/benz9527/xtree/lib/tree"
)

// Baseline comparisons against the two B-tree libraries commonly used
// for ordered in-memory maps.

var benchVal = []byte(`abc`)

func benchRandomKeys(n int) []int {
	keys := make([]int, 0, n)
	for i := 0; i < n; i++ {
		keys = append(keys, randv2.Int())
	}
	return keys
}

func BenchmarkTreeMapInsert_Random(b *testing.B) {
	b.StopTimer()
	m := New(func() tree.Store[int, []byte] { return tree.NewRBTree[int, []byte]() })
	rngArr := benchRandomKeys(b.N)

	b.StartTimer()
	for i := 0; i < b.N; i++ {
		m.Put(rngArr[i], benchVal)
	}
}

func BenchmarkTreeMapInsert_Serial(b *testing.B) {
	b.StopTimer()
	m := New(func() tree.Store[int, []byte] { return tree.NewRBTree[int, []byte]() })

	b.StartTimer()
	for i := 0; i < b.N; i++ {
		m.Put(i, benchVal)
	}
}

func BenchmarkGoogleBTreeInsert_Random(b *testing.B) {
	b.StopTimer()
	bt := gbtree.NewG(32, func(a, c Item[int, []byte]) bool { return a.Key < c.Key })
	rngArr := benchRandomKeys(b.N)

	b.StartTimer()
	for i := 0; i < b.N; i++ {
		bt.ReplaceOrInsert(Item[int, []byte]{Key: rngArr[i], Val: benchVal})
	}
}

func BenchmarkTidwallBTreeInsert_Random(b *testing.B) {
	b.StopTimer()
	var bt tbtree.Map[int, []byte]
	rngArr := benchRandomKeys(b.N)

	b.StartTimer()
	for i := 0; i < b.N; i++ {
		bt.Set(rngArr[i], benchVal)
	}
}

func BenchmarkTreeMapAscend(b *testing.B) {
	b.StopTimer()
	m := New(func() tree.Store[int, []byte] { return tree.NewRBTree[int, []byte]() })
	for i := 0; i < 100_000; i++ {
		m.Put(i, benchVal)
	}

	b.StartTimer()
	for i := 0; i < b.N; i++ {
		for it := m.Iter(); it.Next(); {
		}
	}
}

func BenchmarkGoogleBTreeAscend(b *testing.B) {
	b.StopTimer()
	bt := gbtree.NewG(32, func(a, c Item[int, []byte]) bool { return a.Key < c.Key })
	for i := 0; i < 100_000; i++ {
		bt.ReplaceOrInsert(Item[int, []byte]{Key: i, Val: benchVal})
	}

	b.StartTimer()
	for i := 0; i < b.N; i++ {
		bt.Ascend(func(Item[int, []byte]) bool { return true })
	}
}

func BenchmarkTidwallBTreeAscend(b *testing.B) {
	b.StopTimer()
	var bt tbtree.Map[int, []byte]
	for i := 0; i < 100_000; i++ {
		bt.Set(i, benchVal)
	}

	b.StartTimer()
	for i := 0; i < b.N; i++ {
		bt.Scan(func(int, []byte) bool { return true })
	}
}

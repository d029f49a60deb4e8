package tree

import (
	randv2 "math/rand/v2"
	"testing"

	godsavl "github.com/emirpasic/gods/trees/avltree"
	godsrb "github.com/emirpasic/gods/trees/redblacktree"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

const benchKeySpace = 1 << 20

func benchKeys(n int) []int {
	keys := make([]int, 0, n)
	for i := 0; i < n; i++ {
		keys = append(keys, randv2.IntN(benchKeySpace))
	}
	return keys
}

func BenchmarkInsert(b *testing.B) {
	for _, tc := range []struct {
		name string
		ctor func(opts ...TreeOpt[int, int]) Tree[int, int]
	}{
		{"xtree-bs", NewBSTree[int, int]},
		{"xtree-avl", NewAVLTree[int, int]},
		{"xtree-rb", NewRBTree[int, int]},
	} {
		b.Run(tc.name, func(bb *testing.B) {
			keys := benchKeys(bb.N)
			tree := tc.ctor()
			bb.ResetTimer()
			for i := 0; i < bb.N; i++ {
				_, _ = tree.Insert(keys[i], i)
			}
		})
	}
	b.Run("gods-avl", func(bb *testing.B) {
		keys := benchKeys(bb.N)
		tree := godsavl.NewWithIntComparator()
		bb.ResetTimer()
		for i := 0; i < bb.N; i++ {
			tree.Put(keys[i], i)
		}
	})
	b.Run("gods-rb", func(bb *testing.B) {
		keys := benchKeys(bb.N)
		tree := godsrb.NewWithIntComparator()
		bb.ResetTimer()
		for i := 0; i < bb.N; i++ {
			tree.Put(keys[i], i)
		}
	})
	b.Run("llrb", func(bb *testing.B) {
		keys := benchKeys(bb.N)
		tree := llrb.New()
		bb.ResetTimer()
		for i := 0; i < bb.N; i++ {
			tree.ReplaceOrInsert(llrb.Int(keys[i]))
		}
	})
	b.Run("btree", func(bb *testing.B) {
		keys := benchKeys(bb.N)
		tree := btree.NewOrderedG[int](32)
		bb.ResetTimer()
		for i := 0; i < bb.N; i++ {
			tree.ReplaceOrInsert(keys[i])
		}
	})
}

func BenchmarkGet(b *testing.B) {
	const size = 100_000
	keys := benchKeys(size)
	for _, tc := range []struct {
		name string
		ctor func(opts ...TreeOpt[int, int]) Tree[int, int]
	}{
		{"xtree-avl", NewAVLTree[int, int]},
		{"xtree-rb", NewRBTree[int, int]},
	} {
		b.Run(tc.name, func(bb *testing.B) {
			tree := tc.ctor()
			for i, k := range keys {
				_, _ = tree.Insert(k, i)
			}
			bb.ResetTimer()
			for i := 0; i < bb.N; i++ {
				_, _ = tree.Get(keys[i%size])
			}
		})
	}
	b.Run("gods-avl", func(bb *testing.B) {
		tree := godsavl.NewWithIntComparator()
		for i, k := range keys {
			tree.Put(k, i)
		}
		bb.ResetTimer()
		for i := 0; i < bb.N; i++ {
			_, _ = tree.Get(keys[i%size])
		}
	})
	b.Run("gods-rb", func(bb *testing.B) {
		tree := godsrb.NewWithIntComparator()
		for i, k := range keys {
			tree.Put(k, i)
		}
		bb.ResetTimer()
		for i := 0; i < bb.N; i++ {
			_, _ = tree.Get(keys[i%size])
		}
	})
	b.Run("llrb", func(bb *testing.B) {
		tree := llrb.New()
		for _, k := range keys {
			tree.ReplaceOrInsert(llrb.Int(k))
		}
		bb.ResetTimer()
		for i := 0; i < bb.N; i++ {
			_ = tree.Get(llrb.Int(keys[i%size]))
		}
	})
	b.Run("btree", func(bb *testing.B) {
		tree := btree.NewOrderedG[int](32)
		for _, k := range keys {
			tree.ReplaceOrInsert(k)
		}
		bb.ResetTimer()
		for i := 0; i < bb.N; i++ {
			_, _ = tree.Get(keys[i%size])
		}
	})
}

func BenchmarkInsertRemove(b *testing.B) {
	for _, tc := range []struct {
		name string
		ctor func(opts ...TreeOpt[int, int]) Tree[int, int]
	}{
		{"xtree-avl", NewAVLTree[int, int]},
		{"xtree-rb", NewRBTree[int, int]},
	} {
		b.Run(tc.name, func(bb *testing.B) {
			keys := benchKeys(bb.N)
			tree := tc.ctor()
			bb.ResetTimer()
			for i := 0; i < bb.N; i++ {
				_, _ = tree.Insert(keys[i], i)
				if i&0x1 == 1 {
					_, _ = tree.Remove(keys[i>>1])
				}
			}
		})
	}
	b.Run("gods-rb", func(bb *testing.B) {
		keys := benchKeys(bb.N)
		tree := godsrb.NewWithIntComparator()
		bb.ResetTimer()
		for i := 0; i < bb.N; i++ {
			tree.Put(keys[i], i)
			if i&0x1 == 1 {
				tree.Remove(keys[i>>1])
			}
		}
	})
	b.Run("llrb", func(bb *testing.B) {
		keys := benchKeys(bb.N)
		tree := llrb.New()
		bb.ResetTimer()
		for i := 0; i < bb.N; i++ {
			tree.ReplaceOrInsert(llrb.Int(keys[i]))
			if i&0x1 == 1 {
				tree.Delete(llrb.Int(keys[i>>1]))
			}
		}
	})
}

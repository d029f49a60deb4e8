package tree

import (
	"iter"
	"sync"

	"github.com/benz9527/xtree/lib/infra"
)

// threadSafeTree serializes every call with one lock per tree instance.
// Read paths share the lock, mutations hold it exclusively.
// Nodes handed out are detached copies, they never see later rotations.
type threadSafeTree[K any, V any] struct {
	lock sync.RWMutex
	tree Tree[K, V]
}

var _ Tree[int, int] = (*threadSafeTree[int, int])(nil)

// NewThreadSafeTree wraps tree. The callbacks of Foreach, Walk and the
// iterators run under the read lock and must not mutate the same tree.
func NewThreadSafeTree[K any, V any](tree Tree[K, V]) Tree[K, V] {
	if tree == nil {
		panic("[xtree] nil tree to wrap")
	}
	if ts, ok := tree.(*threadSafeTree[K, V]); ok {
		return ts
	}
	return &threadSafeTree[K, V]{
		tree: tree,
	}
}

func (t *threadSafeTree[K, V]) snapshot(n Node[K, V], err error) (Node[K, V], error) {
	if err != nil || n == nil {
		return n, err
	}
	return &node[K, V]{
		key: n.Key(),
		val: n.Val(),
	}, nil
}

func (t *threadSafeTree[K, V]) Kind() TreeKind {
	return t.tree.Kind()
}

func (t *threadSafeTree[K, V]) Comparator() infra.KeyComparator[K] {
	return t.tree.Comparator()
}

func (t *threadSafeTree[K, V]) Len() int64 {
	t.lock.RLock()
	defer t.lock.RUnlock()
	return t.tree.Len()
}

// Root returns the live root, only meaningful for validation while
// no writer is running.
func (t *threadSafeTree[K, V]) Root() Node[K, V] {
	t.lock.RLock()
	defer t.lock.RUnlock()
	return t.tree.Root()
}

func (t *threadSafeTree[K, V]) Height() int {
	t.lock.RLock()
	defer t.lock.RUnlock()
	return t.tree.Height()
}

func (t *threadSafeTree[K, V]) Insert(key K, val V, ifNotPresent ...bool) (InsertResult, error) {
	t.lock.Lock()
	defer t.lock.Unlock()
	return t.tree.Insert(key, val, ifNotPresent...)
}

func (t *threadSafeTree[K, V]) Get(key K) (V, bool) {
	t.lock.RLock()
	defer t.lock.RUnlock()
	return t.tree.Get(key)
}

func (t *threadSafeTree[K, V]) Contains(key K) bool {
	t.lock.RLock()
	defer t.lock.RUnlock()
	return t.tree.Contains(key)
}

func (t *threadSafeTree[K, V]) Remove(key K) (Node[K, V], error) {
	t.lock.Lock()
	defer t.lock.Unlock()
	return t.tree.Remove(key)
}

func (t *threadSafeTree[K, V]) RemoveMin() (Node[K, V], error) {
	t.lock.Lock()
	defer t.lock.Unlock()
	return t.tree.RemoveMin()
}

func (t *threadSafeTree[K, V]) RemoveMax() (Node[K, V], error) {
	t.lock.Lock()
	defer t.lock.Unlock()
	return t.tree.RemoveMax()
}

func (t *threadSafeTree[K, V]) Min() (Node[K, V], error) {
	t.lock.RLock()
	defer t.lock.RUnlock()
	return t.snapshot(t.tree.Min())
}

func (t *threadSafeTree[K, V]) Max() (Node[K, V], error) {
	t.lock.RLock()
	defer t.lock.RUnlock()
	return t.snapshot(t.tree.Max())
}

func (t *threadSafeTree[K, V]) Successor(key K) (Node[K, V], error) {
	t.lock.RLock()
	defer t.lock.RUnlock()
	return t.snapshot(t.tree.Successor(key))
}

func (t *threadSafeTree[K, V]) Predecessor(key K) (Node[K, V], error) {
	t.lock.RLock()
	defer t.lock.RUnlock()
	return t.snapshot(t.tree.Predecessor(key))
}

func (t *threadSafeTree[K, V]) Floor(key K) (Node[K, V], error) {
	t.lock.RLock()
	defer t.lock.RUnlock()
	return t.snapshot(t.tree.Floor(key))
}

func (t *threadSafeTree[K, V]) Ceiling(key K) (Node[K, V], error) {
	t.lock.RLock()
	defer t.lock.RUnlock()
	return t.snapshot(t.tree.Ceiling(key))
}

func (t *threadSafeTree[K, V]) Foreach(action func(idx int64, key K, val V) bool) {
	t.lock.RLock()
	defer t.lock.RUnlock()
	t.tree.Foreach(action)
}

func (t *threadSafeTree[K, V]) Walk(order TraversalOrder, action func(node Node[K, V]) bool) {
	t.lock.RLock()
	defer t.lock.RUnlock()
	t.tree.Walk(order, action)
}

func (t *threadSafeTree[K, V]) locked(seq iter.Seq2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		t.lock.RLock()
		defer t.lock.RUnlock()
		seq(yield)
	}
}

func (t *threadSafeTree[K, V]) All() iter.Seq2[K, V] {
	return t.locked(t.tree.All())
}

func (t *threadSafeTree[K, V]) Backward() iter.Seq2[K, V] {
	return t.locked(t.tree.Backward())
}

func (t *threadSafeTree[K, V]) Range(from, to K) iter.Seq2[K, V] {
	return t.locked(t.tree.Range(from, to))
}

func (t *threadSafeTree[K, V]) Keys() []K {
	t.lock.RLock()
	defer t.lock.RUnlock()
	return t.tree.Keys()
}

func (t *threadSafeTree[K, V]) Values() []V {
	t.lock.RLock()
	defer t.lock.RUnlock()
	return t.tree.Values()
}

func (t *threadSafeTree[K, V]) Release() {
	t.lock.Lock()
	defer t.lock.Unlock()
	t.tree.Release()
}

package tree

import (
	"github.com/benz9527/xtree/lib/infra"
)

// bsTree is the plain binary search tree, without any rebalancing.
// Sorted input degrades it to a linked list.
type bsTree[K any, V any] struct {
	binaryTree[K, V]
}

func (tree *bsTree[K, V]) insertRebalance(*node[K, V]) {}

func (tree *bsTree[K, V]) removeSplice(y *node[K, V]) {
	child := y.left
	if child == nil {
		child = y.right
	}
	tree.transplant(y, child)
}

func NewBSTree[K infra.OrderedKey, V any](opts ...TreeOpt[K, V]) Tree[K, V] {
	return NewBSTreeWithComparator[K, V](infra.OrderedCompare[K], opts...)
}

func NewBSTreeWithComparator[K any, V any](cmp infra.KeyComparator[K], opts ...TreeOpt[K, V]) Tree[K, V] {
	tree := &bsTree[K, V]{}
	tree.policy = tree
	tree.init(BSTreeKind, cmp, opts...)
	return tree
}

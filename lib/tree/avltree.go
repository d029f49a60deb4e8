package tree

import (
	"github.com/benz9527/xtree/lib/infra"
)

// References:
// https://en.wikipedia.org/wiki/AVL_tree
// avl properties:
// p1. For every node, height(left) - height(right) is in {-1, 0, 1}.
// p2. A nil leaf height is 0, a leaf node height is 1.
// (Conclusion) The height is bounded by 1.44 * log2(n + 2).
type avlTree[K any, V any] struct {
	binaryTree[K, V]
}

func (tree *avlTree[K, V]) rotateLeft(x *node[K, V]) *node[K, V] {
	y := tree.leftRotate(x)
	x.updateHeight()
	y.updateHeight()
	return y
}

func (tree *avlTree[K, V]) rotateRight(x *node[K, V]) *node[K, V] {
	y := tree.rightRotate(x)
	x.updateHeight()
	y.updateHeight()
	return y
}

/*
X is the first unbalanced node, |bf(X)| == 2. Returns the new subtree root.

ll: left-left, bf(X) == 2 and bf(L) >= 0.

	      X                 L
	     /    r-rotate(X)  / \
	    L     ========>   Ll  X
	   /
	  Ll

lr: left-right, bf(X) == 2 and bf(L) < 0.

	    X                   X                 Lr
	   /    l-rotate(L)    /    r-rotate(X)  /  \
	  L     ========>     Lr    ========>   L    X
	   \                 /
	    Lr              L

rr: right-right, the mirror of ll.

rl: right-left, the mirror of lr.
*/
func (tree *avlTree[K, V]) rebalance(x *node[K, V]) *node[K, V] {
	switch bf := x.BalanceFactor(); {
	case bf > 2 || bf < -2:
		// impossible run to here
		tree.violate("avl balance factor out of [-2, 2]")
	case bf == 2:
		if /* lr */ x.left.BalanceFactor() < 0 {
			tree.rotateLeft(x.left)
		}
		return /* ll */ tree.rotateRight(x)
	case bf == -2:
		if /* rl */ x.right.BalanceFactor() > 0 {
			tree.rotateRight(x.right)
		}
		return /* rr */ tree.rotateLeft(x)
	default:
	}
	return x
}

// Walk up from the new leaf. The first rebalancing restores the subtree
// height from before the insertion, so nothing above changes any more.
func (tree *avlTree[K, V]) insertRebalance(z *node[K, V]) {
	for x := z.parent; x != nil; x = x.parent {
		oldHeight := x.height
		x.updateHeight()
		if bf := x.BalanceFactor(); bf > 1 || bf < -1 {
			tree.rebalance(x)
			return
		}
		if x.height == oldHeight {
			return
		}
	}
}

func (tree *avlTree[K, V]) removeSplice(y *node[K, V]) {
	child := y.left
	if child == nil {
		child = y.right
	}
	p := y.parent
	tree.transplant(y, child)
	tree.removeRebalance(p)
}

// Unlike insertion, a rotation may shrink the subtree, the walk goes on
// until a subtree keeps its former height or the root is passed.
func (tree *avlTree[K, V]) removeRebalance(x *node[K, V]) {
	for x != nil {
		oldHeight := x.height
		x.updateHeight()
		if bf := x.BalanceFactor(); bf > 1 || bf < -1 {
			x = tree.rebalance(x)
		}
		if x.height == oldHeight {
			return
		}
		x = x.parent
	}
}

func NewAVLTree[K infra.OrderedKey, V any](opts ...TreeOpt[K, V]) Tree[K, V] {
	return NewAVLTreeWithComparator[K, V](infra.OrderedCompare[K], opts...)
}

func NewAVLTreeWithComparator[K any, V any](cmp infra.KeyComparator[K], opts ...TreeOpt[K, V]) Tree[K, V] {
	tree := &avlTree[K, V]{}
	tree.policy = tree
	tree.init(AVLTreeKind, cmp, opts...)
	return tree
}

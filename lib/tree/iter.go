package tree

import (
	"iter"
)

// Inorder traversal by the succ links, no auxiliary stack.
func (tree *binaryTree[K, V]) Foreach(action func(idx int64, key K, val V) bool) {
	idx := int64(0)
	for aux := tree.root.minimum(); aux != nil; aux = aux.succ() {
		if !action(idx, aux.key, aux.val) {
			return
		}
		idx++
	}
}

// All is restartable, every range over it starts from the minimum again.
// Mutating the tree while ranging is undefined.
func (tree *binaryTree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for aux := tree.root.minimum(); aux != nil; aux = aux.succ() {
			if !yield(aux.key, aux.val) {
				return
			}
		}
	}
}

func (tree *binaryTree[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for aux := tree.root.maximum(); aux != nil; aux = aux.pred() {
			if !yield(aux.key, aux.val) {
				return
			}
		}
	}
}

func (tree *binaryTree[K, V]) Range(from, to K) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if tree.cmp(from, to) >= 0 {
			return
		}
		for aux := tree.ceiling(from, false); aux != nil && tree.cmp(aux.key, to) < 0; aux = aux.succ() {
			if !yield(aux.key, aux.val) {
				return
			}
		}
	}
}

func (tree *binaryTree[K, V]) Keys() []K {
	keys := make([]K, 0, tree.Len())
	for key := range tree.All() {
		keys = append(keys, key)
	}
	return keys
}

func (tree *binaryTree[K, V]) Values() []V {
	vals := make([]V, 0, tree.Len())
	for _, val := range tree.All() {
		vals = append(vals, val)
	}
	return vals
}

// Walk visits the nodes in the given depth first order until action returns false.
func (tree *binaryTree[K, V]) Walk(order TraversalOrder, action func(node Node[K, V]) bool) {
	if tree.root == nil || action == nil {
		return
	}
	switch order {
	case PreOrder:
		stack := make([]*node[K, V], 0, 64)
		stack = append(stack, tree.root)
		for size := len(stack); size > 0; size = len(stack) {
			aux := stack[size-1]
			stack = stack[:size-1]
			if !action(aux) {
				return
			}
			if aux.right != nil {
				stack = append(stack, aux.right)
			}
			if aux.left != nil {
				stack = append(stack, aux.left)
			}
		}
	case InOrder:
		for aux := tree.root.minimum(); aux != nil; aux = aux.succ() {
			if !action(aux) {
				return
			}
		}
	case PostOrder:
		// Leftmost leaf first, then climb: a node is visited after the
		// subtree on its right is done.
		for aux := tree.root.postFirst(); aux != nil; aux = aux.postNext() {
			if !action(aux) {
				return
			}
		}
	default:
	}
}

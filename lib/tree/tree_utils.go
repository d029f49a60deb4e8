package tree

import (
	"fmt"

	"go.uber.org/multierr"
)

// tree rule validation utilities.

// References:
// https://github1s.com/minghu6/rust-minghu6/blob/master/coll_st/src/bst/rb.rs

func isRedNode[K any, V any](n Node[K, V]) bool {
	if n == nil {
		return false
	}
	rb, ok := n.(RBNode[K, V])
	return ok && rb.Color() == Red
}

func isBlackNode[K any, V any](n Node[K, V]) bool {
	return !isRedNode[K, V](n)
}

// OrderValidate checks the in-order keys are strictly increasing
// under the tree comparator.
func OrderValidate[K any, V any](tree Tree[K, V]) error {
	var (
		prev    K
		hasPrev bool
		merr    error
		cmp     = tree.Comparator()
	)
	tree.Walk(InOrder, func(n Node[K, V]) bool {
		if hasPrev && cmp(prev, n.Key()) >= 0 {
			merr = multierr.Append(merr, fmt.Errorf("%w: key %v after key %v", ErrOrderViolation, n.Key(), prev))
		}
		prev, hasPrev = n.Key(), true
		return true
	})
	return merr
}

// LinkValidate checks every child points back to its parent and the
// reachable nodes match Len.
func LinkValidate[K any, V any](tree Tree[K, V]) error {
	root := tree.Root()
	if root == nil {
		if tree.Len() != 0 {
			return fmt.Errorf("%w: empty root with len %d", ErrSizeViolation, tree.Len())
		}
		return nil
	}

	var merr error
	if root.Parent() != nil {
		merr = multierr.Append(merr, fmt.Errorf("%w: root %v has a parent", ErrLinkViolation, root.Key()))
	}
	count := int64(0)
	tree.Walk(PreOrder, func(n Node[K, V]) bool {
		count++
		if l := n.Left(); l != nil && l.Parent() != n {
			merr = multierr.Append(merr, fmt.Errorf("%w: left child %v of %v", ErrLinkViolation, l.Key(), n.Key()))
		}
		if r := n.Right(); r != nil && r.Parent() != n {
			merr = multierr.Append(merr, fmt.Errorf("%w: right child %v of %v", ErrLinkViolation, r.Key(), n.Key()))
		}
		return true
	})
	if count != tree.Len() {
		merr = multierr.Append(merr, fmt.Errorf("%w: reachable %d, len %d", ErrSizeViolation, count, tree.Len()))
	}
	return merr
}

// AVLBalanceValidate recomputes every subtree height, compares it with
// the cached one and checks the balance factor bounds.
func AVLBalanceValidate[K any, V any](tree Tree[K, V]) error {
	var (
		merr  error
		check func(n Node[K, V]) int
	)
	check = func(n Node[K, V]) int {
		if n == nil {
			return 0
		}
		lh, rh := check(n.Left()), check(n.Right())
		height := max(lh, rh) + 1
		avl, ok := n.(AVLNode[K, V])
		if !ok {
			merr = multierr.Append(merr, fmt.Errorf("%w: node %v is not an avl node", ErrHeightViolation, n.Key()))
			return height
		}
		if avl.Height() != height {
			merr = multierr.Append(merr, fmt.Errorf("%w: node %v cached %d, real %d", ErrHeightViolation, n.Key(), avl.Height(), height))
		}
		if bf := lh - rh; bf > 1 || bf < -1 {
			merr = multierr.Append(merr, fmt.Errorf("%w: node %v balance factor %d", ErrBalanceViolation, n.Key(), bf))
		}
		return height
	}
	check(tree.Root())
	return merr
}

// Inorder traversal to validate the rbtree properties.
func RedViolationValidate[K any, V any](tree Tree[K, V]) error {
	root := tree.Root()
	if root == nil {
		return nil
	}
	if isRedNode[K, V](root) {
		return ErrRootColorViolation
	}

	var err error
	tree.Walk(InOrder, func(n Node[K, V]) bool {
		if isRedNode[K, V](n) && (isRedNode[K, V](n.Left()) || isRedNode[K, V](n.Right())) {
			err = fmt.Errorf("%w: red node %v has a red child", ErrRedViolation, n.Key())
			return false
		}
		return true
	})
	return err
}

// BFS traversal to load all nodes missing at least one child.
func bfsLeaves[K any, V any](tree Tree[K, V]) []Node[K, V] {
	root := tree.Root()
	if root == nil {
		return nil
	}

	leaves := make([]Node[K, V], 0, tree.Len()>>1+1)
	queue := make([]Node[K, V], 0, tree.Len()>>1+1)
	defer func() {
		clear(queue)
	}()
	queue = append(queue, root)

	for len(queue) > 0 {
		aux := queue[0]
		l, r := aux.Left(), aux.Right()
		if /* nil leaves, keep one */ l == nil || r == nil {
			leaves = append(leaves, aux)
		}
		if l != nil {
			queue = append(queue, l)
		}
		if r != nil {
			queue = append(queue, r)
		}
		queue = queue[1:]
	}
	return leaves
}

func blackDepth[K any, V any](n Node[K, V]) int {
	depth := 0
	for aux := n; aux != nil; aux = aux.Parent() {
		if isBlackNode[K, V](aux) {
			depth++
		}
	}
	return depth
}

/*
<X> is a RED node.
[X] is a BLACK node (or NIL).

	        [13]
			/  \
		 <8>    [15]
		 / \    /  \
	  [6] [11] [14] [17]
	  /              /
	<1>            [16]

2-3-4 tree like:

	       <8> --- [13] --- <15>
		  /  \             /    \
		 /    \           /      \
	  <1>-[6][11]      [14] <16>-[17]

Each nil leaf to root node black depth are equal.
*/
func BlackViolationValidate[K any, V any](tree Tree[K, V]) error {
	leaves := bfsLeaves[K, V](tree)
	if leaves == nil {
		return nil
	}

	depth := blackDepth[K, V](leaves[0])
	for i := 1; i < len(leaves); i++ {
		if d := blackDepth[K, V](leaves[i]); d != depth {
			return fmt.Errorf("%w: node %v black depth %d, expected %d", ErrBlackViolation, leaves[i].Key(), d, depth)
		}
	}
	return nil
}

// Validate runs all the validations matching the tree kind and
// combines the found violations.
func Validate[K any, V any](tree Tree[K, V]) error {
	merr := multierr.Combine(
		OrderValidate[K, V](tree),
		LinkValidate[K, V](tree),
	)
	switch tree.Kind() {
	case AVLTreeKind:
		merr = multierr.Append(merr, AVLBalanceValidate[K, V](tree))
	case RBTreeKind:
		merr = multierr.Append(merr,
			multierr.Combine(
				RedViolationValidate[K, V](tree),
				BlackViolationValidate[K, V](tree),
			),
		)
	default:
	}
	return merr
}

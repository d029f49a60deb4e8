package tree

import (
	"fmt"
	"sync/atomic"

	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/benz9527/xtree/lib/infra"
	"github.com/benz9527/xtree/lib/xlog"
)

// balancer is the balancing policy of a tree kind.
type balancer[K any, V any] interface {
	// insertRebalance fixes the tree after z was attached as a new leaf.
	insertRebalance(z *node[K, V])
	// removeSplice removes y, which has at most one child, from the tree
	// and restores the policy invariants. y is unlinked by the caller.
	removeSplice(y *node[K, V])
}

// binaryTree holds the state and the paths shared by every tree kind.
// The kinds only differ by their balancer.
type binaryTree[K any, V any] struct {
	policy            balancer[K, V]
	root              *node[K, V]
	count             int64
	kind              TreeKind
	cmp               infra.KeyComparator[K]
	isDesc            bool
	isRmBorrowPred    bool
	isReplaceDisabled bool
	isStatsEnabled    bool
	meterProvider     metric.MeterProvider
	stats             *treeStats
	logger            xlog.XLogger
	releaseHook       func(key K, val V)
}

func (tree *binaryTree[K, V]) init(kind TreeKind, cmp infra.KeyComparator[K], opts ...TreeOpt[K, V]) {
	if cmp == nil {
		panic("[xtree] nil key comparator")
	}
	tree.kind = kind
	tree.cmp = cmp
	for _, o := range opts {
		o(tree)
	}
	if tree.isDesc {
		tree.cmp = infra.ReverseComparator(cmp)
	}
	if tree.isStatsEnabled {
		tree.stats = newTreeStats(tree.meterProvider, kind)
	}
	if tree.logger != nil {
		tree.logger = tree.logger.Named("xtree." + kind.String())
	}
}

// violate reports a broken internal invariant. Never returns.
func (tree *binaryTree[K, V]) violate(msg string) {
	err := fmt.Errorf("%w: %s", ErrInvariantViolation, msg)
	if tree.logger != nil {
		tree.logger.Error(err, "[xtree] tree corrupted",
			zap.String("kind", tree.kind.String()),
			zap.Int64("len", tree.Len()),
			zap.Stringer("stack", infra.Callers(1)),
		)
	}
	panic(err)
}

func (tree *binaryTree[K, V]) Kind() TreeKind {
	return tree.kind
}

func (tree *binaryTree[K, V]) Comparator() infra.KeyComparator[K] {
	return tree.cmp
}

func (tree *binaryTree[K, V]) Len() int64 {
	return atomic.LoadInt64(&tree.count)
}

func (tree *binaryTree[K, V]) Root() Node[K, V] {
	return asNode(tree.root)
}

// Height is the number of nodes on the longest root to leaf path.
func (tree *binaryTree[K, V]) Height() int {
	if tree.root == nil {
		return 0
	}
	height := 0
	level := []*node[K, V]{tree.root}
	for len(level) > 0 {
		height++
		next := make([]*node[K, V], 0, len(level)<<1)
		for _, n := range level {
			if n.left != nil {
				next = append(next, n.left)
			}
			if n.right != nil {
				next = append(next, n.right)
			}
		}
		level = next
	}
	return height
}

/*
		 |                         |
		 X                         S
		/ \     leftRotate(X)     / \
	   L   S    ============>    X   Sd
		  / \                   / \
		Sc   Sd                L   Sc
*/
func (tree *binaryTree[K, V]) leftRotate(x *node[K, V]) *node[K, V] {
	if x == nil || x.right == nil {
		tree.violate("left rotate node x is nil or x.right is nil")
	}

	p, y := x.parent, x.right
	dir := x.direction()
	x.right, y.left = y.left, x

	x.fixLink()
	y.fixLink()

	switch dir {
	case Root:
		tree.root = y
	case Left:
		p.left = y
	case Right:
		p.right = y
	default:
		tree.violate("unknown node direction to left-rotate")
	}
	y.parent = p
	tree.stats.RecordRotate(Left)
	return y
}

/*
			 |                         |
			 X                         S
			/ \     rightRotate(S)    / \
	       L   S    <============    X   R
			  / \                   / \
			Sc   Sd               Sc   Sd
*/
func (tree *binaryTree[K, V]) rightRotate(x *node[K, V]) *node[K, V] {
	if x == nil || x.left == nil {
		tree.violate("right rotate node x is nil or x.left is nil")
	}

	p, y := x.parent, x.left
	dir := x.direction()
	x.left, y.right = y.right, x

	x.fixLink()
	y.fixLink()

	switch dir {
	case Root:
		tree.root = y
	case Left:
		p.left = y
	case Right:
		p.right = y
	default:
		tree.violate("unknown node direction to right-rotate")
	}
	y.parent = p
	tree.stats.RecordRotate(Right)
	return y
}

// transplant replaces the subtree rooted at u by the subtree rooted at v.
func (tree *binaryTree[K, V]) transplant(u, v *node[K, V]) {
	switch u.direction() {
	case Root:
		tree.root = v
	case Left:
		u.parent.left = v
	case Right:
		u.parent.right = v
	default:
	}
	if v != nil {
		v.parent = u.parent
	}
}

// locate returns the node of key, or the parent to attach key under
// together with the last compare result.
func (tree *binaryTree[K, V]) locate(key K) (x *node[K, V], res int64) {
	for aux := tree.root; aux != nil; {
		x = aux
		if res = tree.cmp(key, aux.key); res == 0 {
			return x, 0
		} else if res < 0 {
			aux = aux.left
		} else {
			aux = aux.right
		}
	}
	return x, res
}

// attach inserts a new leaf or replaces the value of an existing key.
// The new leaf is returned, nil if nothing was attached.
func (tree *binaryTree[K, V]) attach(key K, val V, ifNotPresent ...bool) (*node[K, V], InsertResult, error) {
	y, res := tree.locate(key)
	if /* equal */ y != nil && res == 0 {
		if /* disabled */ tree.isReplaceDisabled || (len(ifNotPresent) > 0 && ifNotPresent[0]) {
			return nil, Inserted, ErrDuplicateKey
		}
		y.val = val
		tree.stats.RecordReplace()
		return nil, Replaced, nil
	}

	// The node is fully built before any link changes.
	z := &node[K, V]{
		key:    key,
		val:    val,
		parent: y,
		height: 1,
	}
	if y == nil {
		tree.root = z
	} else if /* less */ res < 0 {
		y.left = z
	} else /* greater */ {
		y.right = z
	}
	atomic.AddInt64(&tree.count, 1)
	tree.stats.RecordInsert()
	return z, Inserted, nil
}

// borrow moves the entry of the in-order neighbour into z when z has two
// children. The returned node has at most one child and is the one to splice.
func (tree *binaryTree[K, V]) borrow(z *node[K, V]) *node[K, V] {
	if z.left == nil || z.right == nil {
		return z
	}
	var y *node[K, V]
	if tree.isRmBorrowPred {
		y = z.pred()
	} else {
		y = z.succ()
	}
	// Swap key & value.
	z.key, z.val = y.key, y.val
	return y
}

func (tree *binaryTree[K, V]) Insert(key K, val V, ifNotPresent ...bool) (InsertResult, error) {
	z, res, err := tree.attach(key, val, ifNotPresent...)
	if err != nil || z == nil {
		return res, err
	}
	tree.policy.insertRebalance(z)
	return res, nil
}

func (tree *binaryTree[K, V]) removeNode(z *node[K, V]) Node[K, V] {
	res := z.detached()
	y := tree.borrow(z)
	tree.policy.removeSplice(y)
	y.unlink()
	atomic.AddInt64(&tree.count, -1)
	tree.stats.RecordRemove()
	return res
}

func (tree *binaryTree[K, V]) Remove(key K) (Node[K, V], error) {
	z := tree.search(key)
	if z == nil {
		return nil, ErrKeyNotFound
	}
	return tree.removeNode(z), nil
}

func (tree *binaryTree[K, V]) RemoveMin() (Node[K, V], error) {
	if tree.root == nil {
		return nil, ErrEmptyTree
	}
	return tree.removeNode(tree.root.minimum()), nil
}

func (tree *binaryTree[K, V]) RemoveMax() (Node[K, V], error) {
	if tree.root == nil {
		return nil, ErrEmptyTree
	}
	return tree.removeNode(tree.root.maximum()), nil
}

func (tree *binaryTree[K, V]) search(key K) *node[K, V] {
	x, res := tree.locate(key)
	if x == nil || res != 0 {
		return nil
	}
	return x
}

func (tree *binaryTree[K, V]) Get(key K) (V, bool) {
	if x := tree.search(key); x != nil {
		return x.val, true
	}
	var zero V
	return zero, false
}

func (tree *binaryTree[K, V]) Contains(key K) bool {
	return tree.search(key) != nil
}

func (tree *binaryTree[K, V]) Min() (Node[K, V], error) {
	if tree.root == nil {
		return nil, ErrEmptyTree
	}
	return tree.root.minimum(), nil
}

func (tree *binaryTree[K, V]) Max() (Node[K, V], error) {
	if tree.root == nil {
		return nil, ErrEmptyTree
	}
	return tree.root.maximum(), nil
}

// ceiling finds the smallest node with key >= key, or > key if strict.
func (tree *binaryTree[K, V]) ceiling(key K, strict bool) *node[K, V] {
	var candidate *node[K, V]
	for aux := tree.root; aux != nil; {
		res := tree.cmp(key, aux.key)
		if res < 0 || (res == 0 && !strict) {
			if res == 0 {
				return aux
			}
			candidate = aux
			aux = aux.left
		} else {
			aux = aux.right
		}
	}
	return candidate
}

// floor finds the greatest node with key <= key, or < key if strict.
func (tree *binaryTree[K, V]) floor(key K, strict bool) *node[K, V] {
	var candidate *node[K, V]
	for aux := tree.root; aux != nil; {
		res := tree.cmp(key, aux.key)
		if res > 0 || (res == 0 && !strict) {
			if res == 0 {
				return aux
			}
			candidate = aux
			aux = aux.right
		} else {
			aux = aux.left
		}
	}
	return candidate
}

func (tree *binaryTree[K, V]) neighbour(n *node[K, V]) (Node[K, V], error) {
	if tree.root == nil {
		return nil, ErrEmptyTree
	}
	if n == nil {
		return nil, ErrKeyNotFound
	}
	return n, nil
}

func (tree *binaryTree[K, V]) Successor(key K) (Node[K, V], error) {
	return tree.neighbour(tree.ceiling(key, true))
}

func (tree *binaryTree[K, V]) Predecessor(key K) (Node[K, V], error) {
	return tree.neighbour(tree.floor(key, true))
}

func (tree *binaryTree[K, V]) Ceiling(key K) (Node[K, V], error) {
	return tree.neighbour(tree.ceiling(key, false))
}

func (tree *binaryTree[K, V]) Floor(key K) (Node[K, V], error) {
	return tree.neighbour(tree.floor(key, false))
}

// Release detaches every node exactly once. The tree stays usable and empty.
func (tree *binaryTree[K, V]) Release() {
	aux := tree.root
	tree.root = nil
	released := int64(0)
	if aux == nil {
		return
	}

	stack := make([]*node[K, V], 0, 64)
	defer func() {
		clear(stack)
	}()

	stack = append(stack, aux)
	for size := len(stack); size > 0; size = len(stack) {
		aux = stack[size-1]
		stack = stack[:size-1]
		l, r := aux.left, aux.right
		aux.unlink()
		if l != nil {
			stack = append(stack, l)
		}
		if r != nil {
			stack = append(stack, r)
		}
		if tree.releaseHook != nil {
			tree.releaseHook(aux.key, aux.val)
		}
		released++
	}
	atomic.StoreInt64(&tree.count, 0)
	tree.stats.RecordRelease(released)
	if tree.logger != nil {
		tree.logger.Debug("[xtree] released",
			zap.String("kind", tree.kind.String()),
			zap.Int64("nodes", released),
		)
	}
}

package tree

// node is shared by all tree kinds. height is only maintained by
// the avl tree and color only by the rbtree.
type node[K any, V any] struct {
	parent *node[K, V]
	left   *node[K, V]
	right  *node[K, V]
	key    K
	val    V
	height int32
	color  RBColor
}

var (
	_ RBNode[int, int]  = (*node[int, int])(nil)
	_ AVLNode[int, int] = (*node[int, int])(nil)
)

func (n *node[K, V]) Key() K {
	return n.key
}

func (n *node[K, V]) Val() V {
	return n.val
}

func (n *node[K, V]) Color() RBColor {
	if n == nil {
		return Black
	}
	return n.color
}

func (n *node[K, V]) Height() int {
	if n == nil {
		return 0
	}
	return int(n.height)
}

func (n *node[K, V]) BalanceFactor() int {
	if n == nil {
		return 0
	}
	return n.left.Height() - n.right.Height()
}

// Left, Right and Parent never return a typed nil inside the interface.

func (n *node[K, V]) Left() Node[K, V] {
	if n == nil || n.left == nil {
		return nil
	}
	return n.left
}

func (n *node[K, V]) Right() Node[K, V] {
	if n == nil || n.right == nil {
		return nil
	}
	return n.right
}

func (n *node[K, V]) Parent() Node[K, V] {
	if n == nil || n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *node[K, V]) isRed() bool {
	return n != nil && n.color == Red
}

// Nil leaves are black.
func (n *node[K, V]) isBlack() bool {
	return n == nil || n.color == Black
}

func (n *node[K, V]) isRoot() bool {
	return n != nil && n.parent == nil
}

func (n *node[K, V]) direction() RBDirection {
	if n == nil {
		// impossible run to here
		panic( /* debug assertion */ "[xtree] nil leaf node without direction")
	}

	if n.isRoot() {
		return Root
	}
	if n == n.parent.left {
		return Left
	}
	return Right
}

func (n *node[K, V]) sibling() *node[K, V] {
	switch n.direction() {
	case Left:
		return n.parent.right
	case Right:
		return n.parent.left
	default:
	}
	return nil
}

func (n *node[K, V]) fixLink() {
	if n.left != nil {
		n.left.parent = n
	}
	if n.right != nil {
		n.right.parent = n
	}
}

// updateHeight recomputes the avl height from the children.
func (n *node[K, V]) updateHeight() {
	lh, rh := n.left.Height(), n.right.Height()
	if lh > rh {
		n.height = int32(lh + 1)
	} else {
		n.height = int32(rh + 1)
	}
}

func (n *node[K, V]) minimum() *node[K, V] {
	aux := n
	for ; aux != nil && aux.left != nil; aux = aux.left {
	}
	return aux
}

func (n *node[K, V]) maximum() *node[K, V] {
	aux := n
	for ; aux != nil && aux.right != nil; aux = aux.right {
	}
	return aux
}

// The pred node of the current node is its previous node in sorted order
func (n *node[K, V]) pred() *node[K, V] {
	x := n
	if x == nil {
		return nil
	}
	if x.left != nil {
		return x.left.maximum()
	}

	aux := x.parent
	// Backtrack to father node that is the x's pred.
	for aux != nil && x == aux.left {
		x = aux
		aux = aux.parent
	}
	return aux
}

// The succ node of the current node is its next node in sorted order.
func (n *node[K, V]) succ() *node[K, V] {
	x := n
	if x == nil {
		return nil
	}
	if x.right != nil {
		return x.right.minimum()
	}

	aux := x.parent
	// Backtrack to father node that is the x's succ.
	for aux != nil && x == aux.right {
		x = aux
		aux = aux.parent
	}
	return aux
}

// detached copies the entry out of the tree.
func (n *node[K, V]) detached() *node[K, V] {
	return &node[K, V]{
		key: n.key,
		val: n.val,
	}
}

func (n *node[K, V]) unlink() {
	n.parent, n.left, n.right = nil, nil, nil
}

func asNode[K any, V any](n *node[K, V]) Node[K, V] {
	if n == nil {
		return nil
	}
	return n
}

// postFirst is the first node of the subtree in post-order.
func (n *node[K, V]) postFirst() *node[K, V] {
	aux := n
	for aux != nil {
		if aux.left != nil {
			aux = aux.left
		} else if aux.right != nil {
			aux = aux.right
		} else {
			return aux
		}
	}
	return nil
}

// postNext is the next node in post-order, the walk ends at the root.
func (n *node[K, V]) postNext() *node[K, V] {
	p := n.parent
	if p == nil {
		return nil
	}
	if n == p.left && p.right != nil {
		return p.right.postFirst()
	}
	return p
}

package tree

import (
	"github.com/benz9527/xtree/lib/infra"
)

type rbTree[K any, V any] struct {
	binaryTree[K, V]
}

// References:
// https://elixir.bootlin.com/linux/latest/source/lib/rbtree.c
// rbtree properties:
// https://en.wikipedia.org/wiki/Red%E2%80%93black_tree#Properties
// p1. Every node is either red or black.
// p2. All NIL nodes are considered black.
// p3. A red node does not have a red child. (red-violation)
// p4. Every path from a given node to any of its descendant
//   NIL nodes goes through the same number of black nodes. (black-violation)
// p5. The root is black.
// (Conclusion) If a node X has exactly one child, it must be a red child,
//   because if it were black, its NIL descendants would sit at a different
//   black depth than X's NIL child, violating p4.
// So the shortest path nodes are black nodes. Otherwise,
// the path must contain red node.
// The longest path nodes' number is 2 * shortest path nodes' number.

func (tree *rbTree[K, V]) rotate(x *node[K, V], dir RBDirection) *node[K, V] {
	switch dir {
	case Left:
		return tree.leftRotate(x)
	case Right:
		return tree.rightRotate(x)
	default:
		// impossible run to here
		tree.violate("rbtree rotate without direction")
	}
	return nil
}

func (dir RBDirection) opposite() RBDirection {
	return -dir
}

/*
New node X is red by default.

<X> is a RED node.
[X] is a BLACK node (or NIL).
{X} is either a RED node or a BLACK node.

i1: Empty rbtree, X becomes the root and is painted to black.

im1: Current node X's parent P is black, hold p3 and p4.

im2: Current node X's parent P is red and P is root, repaint P into black.

im3: If both the parent P and the uncle U are red, grandpa G is black.
(red-violation)
After repainted G into red may be still red-violation.
Recursive to fix grandpa.

	    [G]             <G>
	    / \             / \
	  <P> <U>  ====>  [P] [U]
	  /               /
	<X>             <X>

im4: The parent P is red but the uncle U is black. (red-violation)
X is opposite direction to P. Rotate P to opposite direction.
After rotation may be still red-violation. Here must enter im5 to fix.

	  [G]                 [G]
	  / \    rotate(P)    / \
	<P> [U]  ========>  <X> [U]
	  \                 /
	  <X>             <P>

im5: Handle im4 scenario, current node is the same direction as parent.

	    [G]                 <P>               [P]
	    / \    rotate(G)    / \    repaint    / \
	  <P> [U]  ========>  <X> [G]  ======>  <X> <G>
	  /                         \                 \
	<X>                         [U]               [U]
*/
func (tree *rbTree[K, V]) insertRebalance(x *node[K, V]) {
	x.color = Red
	for {
		p := x.parent
		if /* i1 */ p == nil {
			x.color = Black
			return
		}
		if /* im1 */ p.isBlack() {
			return
		}
		gp := p.parent
		if /* im2 */ gp == nil {
			p.color = Black
			return
		}

		if uncle := p.sibling(); /* im3 */ uncle.isRed() {
			p.color = Black
			uncle.color = Black
			gp.color = Red
			x = gp
			continue
		}

		if dir := x.direction(); /* im4 */ dir != p.direction() {
			tree.rotate(p, dir.opposite())
			x, p = p, x // enter im5 to fix
		}

		/* im5 */
		tree.rotate(gp, p.direction().opposite())
		p.color = Black
		gp.color = Red
		return
	}
}

/*
Y is the node to splice out, it has at most one child after borrowing
the pred or succ entry (see binaryTree.borrow).

r1: Y is the root without child, the tree becomes empty.

r2: Y has one child C. C must be red and Y black (see conclusion).
Replace Y by C and repaint C into black.

r3: (1) Y is a red leaf node, remove directly.

r3: (2) Y is a black leaf node, we have to rebalance before remove.
(black-violation)
*/
func (tree *rbTree[K, V]) removeSplice(y *node[K, V]) {
	child := y.left
	if child == nil {
		child = y.right
	}

	if /* r2 */ child != nil {
		tree.transplant(y, child)
		if y.isBlack() {
			if child.isBlack() {
				// impossible run to here
				tree.violate("rbtree single child of a black node is black, violate (r2)")
			}
			child.color = Black
		}
		return
	}

	if /* r1 */ y.isRoot() {
		tree.root = nil
		return
	}

	if /* r3 (2) */ y.isBlack() {
		tree.removeRebalance(y)
	}
	tree.transplant(y, nil)
}

/*
<X> is a RED node.
[X] is a BLACK node (or NIL).
{X} is either a RED node or a BLACK node.

X carries the double black. Sc is the same direction to X and it is X's
sibling's child node. Sd is the opposite direction to X and it is X's
sibling's child node.

rm1: Current node X's sibling S is red, so the parent P, nephew node Sc and Sd
must be black. (Otherwise, red-violation)
Rotate P to X's direction, repaint S into black, P into red.
Enter rm2-rm5 with the new sibling.

	  [P]                   <S>               [S]
	  / \    l-rotate(P)    / \    repaint    / \
	[X] <S>  ==========>  [P] [Sd]  ======>  <P> [Sd]
	    / \               / \               / \
	 [Sc] [Sd]          [X] [Sc]          [X] [Sc]

rm2: Current node X's parent P is red, the sibling S, nephew node Sc and Sd
is black.
Repaint S into red and P into black.

	  <P>             [P]
	  / \             / \
	[X] [S]  ====>  [X] <S>
	    / \             / \
	 [Sc] [Sd]       [Sc] [Sd]

rm3: All of current node X's parent P, the sibling S, nephew node Sc and Sd
are black.
Unable to satisfy p3 and p4. We have to paint the S into red to satisfy
p4 locally. Then recursive to handle P.

	  [P]             [P]
	  / \             / \
	[X] [S]  ====>  [X] <S>
	    / \             / \
	 [Sc] [Sd]       [Sc] [Sd]

rm4: Current node X's sibling S is black, nephew node Sc is red and Sd
is black. Ignore X's parent P's color (red or black is okay)
Rotate S to the opposite direction of X.
Repaint S into red, Sc into black. Enter into rm5 to fix.

	                        {P}                {P}
	  {P}                   / \                / \
	  / \    r-rotate(S)  [X] <Sc>   repaint  [X] [Sc]
	[X] [S]  ==========>        \    ======>       \
	    / \                     [S]                <S>
	  <Sc> [Sd]                   \                  \
	                              [Sd]               [Sd]

rm5: Current node X's sibling S is black, nephew node Sd is red.
Ignore X's parent P's and Sc's color.
Rotate P to X's direction, S takes P's color, P and Sd are painted black.

	  {P}                   [S]                {S}
	  / \    l-rotate(P)    / \     repaint    / \
	[X] [S]  ==========>  {P} <Sd>  ======>  [P] [Sd]
	    / \               / \                / \
	 {Sc} <Sd>          [X] {Sc}           [X] {Sc}
*/
func (tree *rbTree[K, V]) removeRebalance(x *node[K, V]) {
	for !x.isRoot() {
		dir := x.direction()
		sibling := x.sibling()
		if sibling == nil {
			// impossible run to here
			tree.violate("rbtree double black node without sibling")
		}

		if /* rm1 */ sibling.isRed() {
			tree.rotate(x.parent, dir)
			sibling.color = Black
			x.parent.color = Red
			sibling = x.sibling()
		}

		var sc, sd *node[K, V]
		if dir == Left {
			sc, sd = sibling.left, sibling.right
		} else {
			sc, sd = sibling.right, sibling.left
		}

		if sc.isBlack() && sd.isBlack() {
			sibling.color = Red
			if /* rm2 */ x.parent.isRed() {
				x.parent.color = Black
				return
			}
			/* rm3 */
			x = x.parent
			continue
		}

		if /* rm4 */ sd.isBlack() {
			tree.rotate(sibling, dir.opposite())
			sc.color = Black
			sibling.color = Red
			sibling, sd = sc, sibling
		}

		/* rm5 */
		tree.rotate(x.parent, dir)
		sibling.color = x.parent.color
		x.parent.color = Black
		sd.color = Black
		return
	}
}

func NewRBTree[K infra.OrderedKey, V any](opts ...TreeOpt[K, V]) Tree[K, V] {
	return NewRBTreeWithComparator[K, V](infra.OrderedCompare[K], opts...)
}

func NewRBTreeWithComparator[K any, V any](cmp infra.KeyComparator[K], opts ...TreeOpt[K, V]) Tree[K, V] {
	tree := &rbTree[K, V]{}
	tree.policy = tree
	tree.init(RBTreeKind, cmp, opts...)
	return tree
}

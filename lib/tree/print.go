package tree

import (
	"fmt"
	"io"
	"strings"
)

/*
Fprint writes the tree sideways, the right subtree on top and one
node per line. The root is on the first column.

	    [9]
	<8>
	    [7]
	        <6>

rbtree nodes are printed as <X> (red) or [X] (black), avl nodes carry
their height and balance factor, X(h:2,bf:-1).
*/
func Fprint[K any, V any](w io.Writer, tree Tree[K, V]) error {
	var (
		err  error
		walk func(n Node[K, V], depth int)
	)
	kind := tree.Kind()
	walk = func(n Node[K, V], depth int) {
		if n == nil || err != nil {
			return
		}
		walk(n.Right(), depth+1)
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, "%s%s\n", strings.Repeat("    ", depth), formatNode[K, V](kind, n))
		walk(n.Left(), depth+1)
	}
	walk(tree.Root(), 0)
	return err
}

func formatNode[K any, V any](kind TreeKind, n Node[K, V]) string {
	switch kind {
	case RBTreeKind:
		if isRedNode[K, V](n) {
			return fmt.Sprintf("<%v>", n.Key())
		}
		return fmt.Sprintf("[%v]", n.Key())
	case AVLTreeKind:
		if avl, ok := n.(AVLNode[K, V]); ok {
			return fmt.Sprintf("%v(h:%d,bf:%d)", n.Key(), avl.Height(), avl.BalanceFactor())
		}
	default:
	}
	return fmt.Sprintf("%v", n.Key())
}

package tree

import (
	"iter"

	"github.com/benz9527/xtree/lib/infra"
)

// go install golang.org/x/tools/cmd/stringer@latest

//go:generate stringer -type=RBColor
type RBColor uint8

const (
	Black RBColor = iota
	Red
)

//go:generate stringer -type=RBDirection
type RBDirection int8

const (
	Left RBDirection = -1 + iota
	Root
	Right
)

type TreeKind uint8

const (
	BSTreeKind TreeKind = iota
	AVLTreeKind
	RBTreeKind
)

func (kind TreeKind) String() string {
	switch kind {
	case AVLTreeKind:
		return "avl"
	case RBTreeKind:
		return "rb"
	case BSTreeKind:
		fallthrough
	default:
	}
	return "bs"
}

type InsertResult uint8

const (
	Inserted InsertResult = iota
	Replaced
)

type TraversalOrder uint8

const (
	PreOrder TraversalOrder = iota
	InOrder
	PostOrder
)

type TreeErr string

const (
	ErrKeyNotFound        TreeErr = "[xtree] key not found"
	ErrEmptyTree          TreeErr = "[xtree] empty tree"
	ErrDuplicateKey       TreeErr = "[xtree] duplicate key, replace disabled"
	ErrInvariantViolation TreeErr = "[xtree] invariant violation"

	ErrOrderViolation     TreeErr = "[xtree] order violation"
	ErrLinkViolation      TreeErr = "[xtree] parent link violation"
	ErrSizeViolation      TreeErr = "[xtree] size violation"
	ErrBalanceViolation   TreeErr = "[xtree] avl balance violation"
	ErrHeightViolation    TreeErr = "[xtree] avl height violation"
	ErrRootColorViolation TreeErr = "[xtree] rbtree root color violation"
	ErrRedViolation       TreeErr = "[xtree] rbtree red violation"
	ErrBlackViolation     TreeErr = "[xtree] rbtree black violation"
)

func (err TreeErr) Error() string {
	return string(err)
}

// Node is a read-only view of a tree node.
// It is only valid until the next mutation of the owning tree.
type Node[K any, V any] interface {
	Key() K
	Val() V
	Left() Node[K, V]
	Right() Node[K, V]
	Parent() Node[K, V]
}

type RBNode[K any, V any] interface {
	Node[K, V]
	Color() RBColor
}

type AVLNode[K any, V any] interface {
	Node[K, V]
	// Height is the cached subtree height, a leaf is 1.
	Height() int
	// BalanceFactor is height(left) - height(right).
	BalanceFactor() int
}

// Tree is an ordered map with unique keys.
// Not thread safe, see NewThreadSafeTree.
type Tree[K any, V any] interface {
	Kind() TreeKind
	// Comparator is the effective key order, reversed by WithDesc.
	Comparator() infra.KeyComparator[K]
	Len() int64
	Root() Node[K, V]
	Height() int

	// Insert adds or replaces the value of key.
	// ifNotPresent (or WithReplaceDisabled) rejects an existing key with
	// ErrDuplicateKey and leaves the tree untouched.
	Insert(key K, val V, ifNotPresent ...bool) (InsertResult, error)
	Get(key K) (V, bool)
	Contains(key K) bool
	// Remove returns a detached copy of the removed entry.
	Remove(key K) (Node[K, V], error)
	RemoveMin() (Node[K, V], error)
	RemoveMax() (Node[K, V], error)

	Min() (Node[K, V], error)
	Max() (Node[K, V], error)
	// Successor returns the entry with the smallest key strictly greater than key.
	Successor(key K) (Node[K, V], error)
	// Predecessor returns the entry with the greatest key strictly less than key.
	Predecessor(key K) (Node[K, V], error)
	// Floor returns the entry with the greatest key less than or equal to key.
	Floor(key K) (Node[K, V], error)
	// Ceiling returns the entry with the smallest key greater than or equal to key.
	Ceiling(key K) (Node[K, V], error)

	Foreach(action func(idx int64, key K, val V) bool)
	Walk(order TraversalOrder, action func(node Node[K, V]) bool)
	All() iter.Seq2[K, V]
	Backward() iter.Seq2[K, V]
	// Range yields the entries in [from, to).
	Range(from, to K) iter.Seq2[K, V]
	Keys() []K
	Values() []V

	Release()
}

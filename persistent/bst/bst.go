package bst

/*
Remarks:
--------

- 'cow' stands for copy-on-write and is used throughout the code for variables holding
  clones of nodes.

- A new modified incarnation of a tree always is reflected by a new tree.root. Old roots
  stay valid indefinitely; subtrees untouched by a modification are shared between
  incarnations, never copied.

*/

import (
	"strings"

	"github.com/npillmayer/pds"
	"github.com/npillmayer/pds/seq"
)

// Tree is an immutable binary search tree over an ordered element type.
// The zero value is an empty tree, ready to use, i.e. this is legal:
//
//     tree := bst.Tree[string]{}.With("m")
//
// returning a tree containing the single value "m".
//
// For every node of a tree, all values in its left subtree are strictly
// less than the node's value and all values in its right subtree are
// strictly greater. Duplicates are silently dropped on insertion.
//
// A Tree value is never mutated in place. Any number of goroutines may
// traverse the same incarnation concurrently; there is no mutating
// primitive to guard against.
type Tree[T pds.Ordered] struct {
	root *node[T]
}

// node is one variant of a tree: a nil *node is the empty tree, anything
// else carries a value and owns two subtrees. Nodes are immutable after
// construction and may be shared by any number of tree incarnations.
type node[T pds.Ordered] struct {
	value T
	left  *node[T]
	right *node[T]
}

// Immutable constructs a tree from the given values, inserting them in
// argument order.
//
//     tree := bst.Immutable("m", "a", "z")
//
func Immutable[T pds.Ordered](values ...T) Tree[T] {
	tree := Tree[T]{}
	for _, value := range values {
		tree = tree.With(value)
	}
	return tree
}

// --- API -------------------------------------------------------------------

// Size returns the total number of values in the tree. The count is not
// cached; every call walks the complete structure.
func (tree Tree[T]) Size() int {
	return tree.root.size()
}

// Contains reports whether value is present in the tree, descending by
// the natural ordering of T.
func (tree Tree[T]) Contains(value T) bool {
	return tree.root.contains(value)
}

// With returns a tree with value inserted. The receiver is left
// unchanged: the path from the root to the insertion point is copied,
// everything else is shared between both incarnations. Inserting a value
// which is already present is a no-op and returns the receiver as is.
func (tree Tree[T]) With(value T) Tree[T] {
	cow := tree.root.withInserted(value)
	if cow == tree.root {
		tracer().Debugf("insert %v: already present, no modification", value)
		return tree
	}
	tracer().Debugf("insert %v: new root = %p", value, cow)
	return Tree[T]{root: cow}
}

// Inorder returns a lazy sequence of the tree's values in ascending
// order. Every call produces a fresh sequence; traversal state is not
// shared between calls.
func (tree Tree[T]) Inorder() seq.Seq[T] {
	return inorder(tree.root, nil)
}

// String renders the tree structure in a fully parenthesized form: the
// empty tree renders as "()", a node as "(" + left + value + right + ")"
// where empty children render as empty strings, not as "()". A tree
// holding "a", "m", "z" thus renders as "((a)m(z))".
func (tree Tree[T]) String() string {
	if tree.root == nil {
		return "()"
	}
	var sb strings.Builder
	tree.root.render(&sb)
	return sb.String()
}

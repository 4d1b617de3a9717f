package bst

import (
	"fmt"
	"strings"

	"github.com/npillmayer/pds"
	"github.com/npillmayer/pds/seq"
)

func (n *node[T]) size() int {
	if n == nil {
		return 0
	}
	return 1 + n.left.size() + n.right.size()
}

func (n *node[T]) contains(value T) bool {
	for n != nil {
		switch {
		case value < n.value:
			n = n.left
		case value > n.value:
			n = n.right
		default:
			return true
		}
	}
	return false
}

// withInserted returns the root of an incarnation of n's subtree which
// contains value. The spine down to the insertion point is newly
// allocated, with untouched children carried over by reference. If value
// is already present, n itself is returned, short-circuiting the cloning
// of the spine all the way up to Tree.With.
func (n *node[T]) withInserted(value T) *node[T] {
	if n == nil {
		return &node[T]{value: value}
	}
	switch {
	case value < n.value:
		cow := n.left.withInserted(value)
		if cow == n.left {
			return n
		}
		return &node[T]{value: n.value, left: cow, right: n.right}
	case value > n.value:
		cow := n.right.withInserted(value)
		if cow == n.right {
			return n
		}
		return &node[T]{value: n.value, left: n.left, right: cow}
	}
	return n // duplicates are dropped, not re-inserted
}

// inorder produces a lazy ascending traversal of n, continuing with tail
// once n is exhausted. Construction is O(1); forcing the sequence pays
// for the descent step by step.
func inorder[T pds.Ordered](n *node[T], tail seq.Seq[T]) seq.Seq[T] {
	if n == nil {
		return tail
	}
	return seq.Lazy(func() (T, seq.Seq[T]) {
		s := inorder(n.left, seq.Cons(n.value, inorder(n.right, tail)))
		return s.First(), s.Rest()
	})
}

func (n *node[T]) render(sb *strings.Builder) {
	sb.WriteByte('(')
	if n.left != nil {
		n.left.render(sb)
	}
	fmt.Fprintf(sb, "%v", n.value)
	if n.right != nil {
		n.right.render(sb)
	}
	sb.WriteByte(')')
}

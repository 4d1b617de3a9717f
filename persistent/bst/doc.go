/*
Package bst implements a persistent (immutable) binary search tree.

Deriving a modified incarnation of a tree leaves the original intact:
both incarnations share every untouched subtree. The tree is deliberately
left unbalanced; no rotations are performed, which keeps the structural
sharing easy to follow. Worst-case descent therefore is O(n) for
adversarial insertion order.
*/
package bst

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pds.bst'.
func tracer() tracing.Trace {
	return tracing.Select("pds.bst")
}

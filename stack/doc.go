/*
Package stack implements a bounded growable stack of strings.

The stack owns every string it holds: Push stores an independent copy of
its argument, Pop hands the stored copy over to the caller and drops the
stack's own reference. The working buffer grows by doubling while pushing
and shrinks again as elements are removed, between a fixed initial
capacity and a hard ceiling on the number of elements.

A Stack is a single-owner mutable structure and not safe for concurrent
use; callers needing shared access have to synchronize externally.
*/
package stack

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pds.stack'.
func tracer() tracing.Trace {
	return tracing.Select("pds.stack")
}

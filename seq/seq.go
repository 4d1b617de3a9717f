/*
Package seq provides lazy, immutable sequences.

A sequence is consumed step by step with First and Rest. A nil Seq is the
empty sequence. Lazy sequences force their producer at most once, so a
Seq may safely be traversed several times and shared between consumers.
*/
package seq

import (
	"fmt"
	"strings"

	"github.com/npillmayer/pds/maybe"
)

// Seq is a lazy immutable sequence of values of type T. The nil interface
// value is the empty sequence; callers test for it with s == nil.
type Seq[T any] interface {
	First() T
	Rest() Seq[T]
}

// Cons prepends a value to a sequence.
func Cons[T any](first T, rest Seq[T]) Seq[T] {
	return &cons[T]{first: first, rest: rest}
}

type cons[T any] struct {
	first T
	rest  Seq[T]
}

func (c *cons[T]) First() T     { return c.first }
func (c *cons[T]) Rest() Seq[T] { return c.rest }

// Lazy defers production of a sequence step until it is first consumed.
// force is called at most once; its result is memoized.
func Lazy[T any](force func() (T, Seq[T])) Seq[T] {
	return &lazySeq[T]{force: force}
}

type lazySeq[T any] struct {
	first T
	rest  Seq[T]
	force func() (T, Seq[T])
}

func (l *lazySeq[T]) memoize() {
	if l.force != nil {
		l.first, l.rest = l.force()
		l.force = nil
	}
}

func (l *lazySeq[T]) First() T {
	l.memoize()
	return l.first
}

func (l *lazySeq[T]) Rest() Seq[T] {
	l.memoize()
	return l.rest
}

// --- Helpers ---------------------------------------------------------------

// Head returns the first value of s, or Nothing for the empty sequence.
func Head[T any](s Seq[T]) maybe.Maybe[T] {
	if s == nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(s.First())
}

// Count walks s to its end and returns the number of values. It will not
// return for infinite sequences.
func Count[T any](s Seq[T]) int {
	n := 0
	for ; s != nil; s = s.Rest() {
		n++
	}
	return n
}

// Collect drains s into a freshly allocated slice.
func Collect[T any](s Seq[T]) []T {
	var values []T
	for ; s != nil; s = s.Rest() {
		values = append(values, s.First())
	}
	return values
}

// Take returns a lazy sequence of at most the first n values of s.
func Take[T any](s Seq[T], n int) Seq[T] {
	if s == nil || n <= 0 {
		return nil
	}
	return Lazy(func() (T, Seq[T]) {
		return s.First(), Take(s.Rest(), n-1)
	})
}

// Format renders s between the given delimiters, values separated by
// blanks, e.g. Format(s, "[", "]") ⇒ "[1 2 3]".
func Format[T any](s Seq[T], start, end string) string {
	var sb strings.Builder
	sb.WriteString(start)
	for ; s != nil; s = s.Rest() {
		if sb.Len() > len(start) {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, s.First())
	}
	sb.WriteString(end)
	return sb.String()
}

// Values drains s into a channel, suitable for ranging over. The caller
// has to consume the channel completely or the producing goroutine will
// be left dangling.
func Values[T any](s Seq[T]) <-chan T {
	values := make(chan T)
	go func() {
		for ; s != nil; s = s.Rest() {
			values <- s.First()
		}
		close(values)
	}()
	return values
}

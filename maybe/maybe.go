package maybe

import "fmt"

// Maybe is an optional value of type T: either Just(x) or Nothing.
// It is modelled after Elm's Maybe type and supports a limited form of
// pattern matching via Match:
//
//     var v int
//     switch m := x.Match(); m {
//     case m.Just(&v):
//         // v now holds the wrapped value
//     case m.Nothing():
//         // x was empty
//     }
//
type Maybe[T any] interface {
	Match() Matcher[T]
	WithDefault(T) T
	Map(func(T) T) Maybe[T]
}

type maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps a value of type T.
func Just[T any](x T) Maybe[T] {
	return maybe[T]{value: x, tag: true}
}

// Nothing is the empty Maybe for type T.
func Nothing[T any]() Maybe[T] {
	return maybe[T]{tag: false}
}

// Match returns a pattern-matching helper for m.
func (m maybe[T]) Match() Matcher[T] {
	return matcher[T]{m: m}
}

// WithDefault unwraps m, substituting def for Nothing.
func (m maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

// Map applies f to the wrapped value, if any. Nothing stays Nothing.
func (m maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

func (m maybe[T]) String() string {
	if m.tag {
		return fmt.Sprintf("Just(%v)", m.value)
	}
	return "Nothing"
}

// IsNothing reports whether x is empty.
func IsNothing[T any](x Maybe[T]) bool {
	switch m := x.Match(); m {
	case m.Nothing():
		return true
	}
	return false
}

// AndThen chains a computation which itself may produce Nothing.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	var v T
	switch m := x.Match(); m {
	case m.Just(&v):
		return f(v)
	case m.Nothing():
	}
	return Nothing[S]()
}

// Map is the free-function variant of Maybe.Map.
func Map[T any](f func(T) T, x Maybe[T]) Maybe[T] {
	var v T
	switch m := x.Match(); m {
	case m.Just(&v):
		return Just(f(v))
	case m.Nothing():
	}
	return x
}

// --- Matching --------------------------------------------------------------

// Matcher is the pattern object returned by Maybe.Match. Exactly one of
// its constructor patterns compares equal to the matcher itself, which
// is what drives the switch-statement idiom shown on Maybe.
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T any] struct {
	m maybe[T]
}

func (mm matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.tag {
		*v = mm.m.value
		return mm
	}
	return nil
}

func (mm matcher[T]) Nothing() Matcher[T] {
	if !mm.m.tag {
		return mm
	}
	return nil
}

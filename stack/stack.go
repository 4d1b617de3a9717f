package stack

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/pds"
	"github.com/npillmayer/pds/maybe"
)

// Capacity limits of a Stack.
const (
	InitialCapacity = 16    // buffer slots allocated by New
	MaxCapacity     = 32768 // hard ceiling on the number of elements
	MaxElementSize  = 256   // elements of this many bytes or more are rejected
)

// Errors returned by stack operations. Each one signals a locally
// detectable precondition violation; none of them damages the stack.
var (
	ErrStackFull       = errors.New("stack: already holding the maximum number of elements")
	ErrStackEmpty      = errors.New("stack: empty")
	ErrElementTooLarge = errors.New("stack: element exceeds maximum element size")
)

// Stack is a bounded growable stack of strings. Use New to create one;
// the zero value has no buffer and behaves like a destroyed stack.
//
// Invariant: 0 ≤ top ≤ capacity ≤ MaxCapacity.
type Stack struct {
	elements []string
	top      int // logical length; elements[top:] are free slots
	capacity int
}

// New creates an empty stack with InitialCapacity buffer slots.
func New() *Stack {
	return &Stack{
		elements: make([]string, InitialCapacity),
		capacity: InitialCapacity,
	}
}

// --- API -------------------------------------------------------------------

// Size returns the number of elements currently held.
func (s *Stack) Size() int {
	return s.top
}

// IsEmpty reports whether the stack holds no elements.
func (s *Stack) IsEmpty() bool {
	return s.top == 0
}

// IsFull reports whether the stack reached the hard MaxCapacity ceiling.
// A full working buffer does not count as full; it will grow on the next
// push.
func (s *Stack) IsFull() bool {
	return s.top == MaxCapacity
}

// Push stores an owned copy of item on top of the stack, growing the
// buffer by doubling when it is exhausted. The stored copy never aliases
// caller memory. Push fails with ErrStackFull once MaxCapacity elements
// are held and with ErrElementTooLarge for items of MaxElementSize bytes
// or more; in both cases the stack is left unchanged.
func (s *Stack) Push(item string) error {
	if s.IsFull() {
		return ErrStackFull
	}
	if len(item) >= MaxElementSize {
		return ErrElementTooLarge
	}
	if s.top == s.capacity {
		s.reallocate(s.capacity * 2)
	}
	s.elements[s.top] = strings.Clone(item)
	s.top++
	return nil
}

// Pop removes the top element and transfers ownership of the stored copy
// to the caller; the freed slot is cleared. Popping from an empty stack
// fails with ErrStackEmpty.
//
// Shrinking is done with hysteresis: once the length has fallen to a
// quarter of the buffer capacity, the buffer is halved, but never below
// InitialCapacity. (The naive variant of this exercise shrinks on every
// single pop, which thrashes at capacity boundaries and may even halve
// the buffer below the live length; that variant is deliberately not
// reproduced here.)
func (s *Stack) Pop() (string, error) {
	if s.IsEmpty() {
		return "", ErrStackEmpty
	}
	s.top--
	popped := s.elements[s.top]
	s.elements[s.top] = "" // drop the stack's reference; the copy now belongs to the caller
	if s.top <= s.capacity/4 && s.capacity/2 >= InitialCapacity {
		s.reallocate(s.capacity / 2)
	}
	return popped, nil
}

// Peek returns the top element without removing it, or Nothing for an
// empty stack. Ownership stays with the stack.
func (s *Stack) Peek() maybe.Maybe[string] {
	if s.IsEmpty() {
		return maybe.Nothing[string]()
	}
	return maybe.Just(s.elements[s.top-1])
}

// Destroy releases the buffer together with every remaining element.
// Calling Destroy again is a no-op. Using the stack afterwards is out of
// contract; operations degrade to empty-stack behavior instead of
// crashing.
func (s *Stack) Destroy() {
	tracer().Debugf("destroy: releasing %d elements, %d slots", s.top, s.capacity)
	s.elements = nil
	s.top = 0
	s.capacity = 0
}

// --- Internals -------------------------------------------------------------

// reallocate moves the live elements into a buffer of newCapacity slots,
// clamped to [InitialCapacity, MaxCapacity].
func (s *Stack) reallocate(newCapacity int) {
	newCapacity = pds.Max(InitialCapacity, pds.Min(newCapacity, MaxCapacity))
	assertThat(s.top <= newCapacity, "capacity %d would truncate %d live elements", newCapacity, s.top)
	tracer().Debugf("reallocate: %d ⇒ %d slots (%d live)", s.capacity, newCapacity, s.top)
	buf := make([]string, newCapacity)
	copy(buf, s.elements[:s.top])
	s.elements = buf
	s.capacity = newCapacity
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("stack: "+msg, msgargs...)
		panic(msg)
	}
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lazy

// Seq is an immutable, lazily evaluated linked sequence.
//
// A Seq is either empty or a cons cell: a realized head value and a
// memoized tail. The zero value is the empty sequence, so every Seq[T]{}
// compares as empty regardless of where it came from.
//
// Seq is a small value wrapping a pointer to its first cell; copying a Seq
// never copies elements. A cell holds a strong reference to its realized
// tail, never to its predecessor. A consumer that drops every reference to
// the first cell of a chain makes that cell, and the prefix it alone
// reaches, eligible for garbage collection. This is what lets a program walk
// an infinite sequence in bounded memory.
//
// A chain may be infinite. Operations that must see the whole chain
// (ToSlice, Len, Reverse, Fold and friends) do not terminate on infinite
// input; bound the chain with Take first.
type Seq[T any] struct {
	n *node[T]
}

// node is a cons cell. head never changes after construction; tail is
// forced at most once and then shared by every holder of the cell.
type node[T any] struct {
	head T
	tail *Thunk[Seq[T]]
}

// Empty returns the empty sequence.
func Empty[T any]() Seq[T] {
	return Seq[T]{}
}

// Cons returns a sequence with the given head whose tail is produced by
// tail on first access. tail is not invoked by Cons.
// Panics with ErrInvalidArgument if tail is nil.
func Cons[T any](head T, tail func() Seq[T]) Seq[T] {
	if tail == nil {
		invalidArgument("tail function is nil")
	}
	return Seq[T]{n: &node[T]{head: head, tail: Delay(tail)}}
}

// Push returns a sequence with the given head in front of an already
// realized tail.
func Push[T any](head T, tail Seq[T]) Seq[T] {
	return Seq[T]{n: &node[T]{head: head, tail: Ready(tail)}}
}

// link returns a cell around an existing tail thunk.
func link[T any](head T, tail *Thunk[Seq[T]]) Seq[T] {
	return Seq[T]{n: &node[T]{head: head, tail: tail}}
}

// IsEmpty reports whether s has no elements.
func (s Seq[T]) IsEmpty() bool {
	return s.n == nil
}

// NonEmpty reports whether s has at least one element.
func (s Seq[T]) NonEmpty() bool {
	return s.n != nil
}

// Head returns the first element.
// Panics with ErrEmptyAccess if s is empty.
func (s Seq[T]) Head() T {
	if s.n == nil {
		emptyAccess("head")
	}
	return s.n.head
}

// Tail returns the sequence after the first element, evaluating it on
// first access. Later calls on the same sequence return the identical
// cached tail without invoking the producing function again.
// Panics with ErrEmptyAccess if s is empty.
func (s Seq[T]) Tail() Seq[T] {
	if s.n == nil {
		emptyAccess("tail")
	}
	return s.n.tail.Force()
}

// TryHead returns the first element and true, or zero and false if s is
// empty.
func (s Seq[T]) TryHead() (T, bool) {
	if s.n == nil {
		var zero T
		return zero, false
	}
	return s.n.head, true
}

// Uncons splits s into its head and tail.
// Returns (zero, empty, false) if s is empty.
func (s Seq[T]) Uncons() (T, Seq[T], bool) {
	if s.n == nil {
		var zero T
		return zero, s, false
	}
	return s.n.head, s.n.tail.Force(), true
}

// TailEvaluated reports whether the tail of s has been realized.
// The empty sequence reports false.
func (s Seq[T]) TailEvaluated() bool {
	return s.n != nil && s.n.tail.Evaluated()
}

// Same reports whether s and other are the same cell.
// Two empty sequences are the same.
func (s Seq[T]) Same(other Seq[T]) bool {
	return s.n == other.n
}

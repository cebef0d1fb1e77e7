// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lazy

import (
	"iter"
	"runtime"
)

// Eager bridge: conversions between sequences and strict collections or
// external iterators.
//
// Every operation below that consumes a sequence walks it to the end. On
// an infinite sequence it never returns; this is the documented contract,
// not a fault to be detected. Bound the input with Take or TakeWhile
// first.

// Number is the constraint for Sum.
type Number interface {
	Integer | ~float32 | ~float64 | ~complex64 | ~complex128
}

// FromSlice returns a sequence of the elements of values.
// values is copied, so later writes to it do not show through. Cells are
// built as the sequence is walked.
func FromSlice[T any](values []T) Seq[T] {
	vs := make([]T, len(values))
	copy(vs, values)
	return derive(0, func(i int) (T, int, bool) {
		if i >= len(vs) {
			var zero T
			return zero, i, false
		}
		return vs[i], i + 1, true
	})
}

// puller adapts a pull-style iterator. stop is called once the iterator
// reports exhaustion, or by a cleanup once the puller is unreachable.
type puller[T any] struct {
	next    func() (T, bool)
	stop    func()
	cleanup runtime.Cleanup
}

func (p *puller[T]) step(_ struct{}) (T, struct{}, bool) {
	v, ok := p.next()
	if !ok && p.stop != nil {
		p.cleanup.Stop()
		p.stop()
		p.stop = nil
	}
	return v, struct{}{}, ok
}

// FromPull returns a sequence of the values produced by next.
//
// The first value is pulled by FromPull; each later one when the preceding
// tail is forced, so every value is pulled exactly once no matter how many
// times the sequence is walked. stop may be nil. When non-nil it is called
// once: when next reports exhaustion, or, if the sequence is abandoned
// before that, on a cleanup goroutine after its unrealized remainder has
// become unreachable.
// Panics with ErrInvalidArgument if next is nil.
func FromPull[T any](next func() (T, bool), stop func()) Seq[T] {
	if next == nil {
		invalidArgument("pull function is nil")
	}
	p := &puller[T]{next: next, stop: stop}
	if stop != nil {
		p.cleanup = runtime.AddCleanup(p, func(stop func()) { stop() }, stop)
	}
	return derive(struct{}{}, p.step)
}

// FromSeq returns a sequence of the values of an external iterator.
// src is driven through iter.Pull; see FromPull for when values are
// pulled and when the iterator is stopped. A single-use src is consumed
// only once.
// Panics with ErrInvalidArgument if src is nil.
func FromSeq[T any](src iter.Seq[T]) Seq[T] {
	if src == nil {
		invalidArgument("source iterator is nil")
	}
	next, stop := iter.Pull(src)
	return FromPull(next, stop)
}

// ToSlice realizes s into a new slice.
// Never returns on an infinite sequence.
func (s Seq[T]) ToSlice() []T {
	var out []T
	for ; s.n != nil; s = s.n.tail.Force() {
		out = append(out, s.n.head)
	}
	return out
}

// Len returns the number of elements of s.
// Never returns on an infinite sequence.
func (s Seq[T]) Len() int {
	n := 0
	for ; s.n != nil; s = s.n.tail.Force() {
		n++
	}
	return n
}

// Reverse returns the elements of s in reverse order.
// Never returns on an infinite sequence.
func (s Seq[T]) Reverse() Seq[T] {
	var r Seq[T]
	for ; s.n != nil; s = s.n.tail.Force() {
		r = Push(s.n.head, r)
	}
	return r
}

// Last returns the last element of s.
// Panics with ErrEmptyAccess if s is empty. Never returns on an infinite
// sequence.
func (s Seq[T]) Last() T {
	if s.n == nil {
		emptyAccess("last")
	}
	for {
		next := s.n.tail.Force()
		if next.n == nil {
			return s.n.head
		}
		s = next
	}
}

// ElementAt returns the element at zero-based index i.
// Panics with ErrInvalidArgument if i is negative and with ErrEmptyAccess
// if s has no more than i elements.
func (s Seq[T]) ElementAt(i int) T {
	if i < 0 {
		invalidArgument("index %d is negative", i)
	}
	return s.Skip(i).Head()
}

// Fold combines the elements of s from left to right with f, starting
// from acc.
// Never returns on an infinite sequence.
// Panics with ErrInvalidArgument if f is nil.
func Fold[T, A any](s Seq[T], acc A, f func(A, T) A) A {
	if f == nil {
		invalidArgument("fold function is nil")
	}
	for ; s.n != nil; s = s.n.tail.Force() {
		acc = f(acc, s.n.head)
	}
	return acc
}

// Reduce combines the elements of s from left to right with f, starting
// from the first element.
// Panics with ErrEmptyAccess if s is empty and with ErrInvalidArgument if
// f is nil. Never returns on an infinite sequence.
func (s Seq[T]) Reduce(f func(T, T) T) T {
	if f == nil {
		invalidArgument("reduce function is nil")
	}
	if s.n == nil {
		emptyAccess("reduce")
	}
	return Fold(s.n.tail.Force(), s.n.head, f)
}

// Sum returns the sum of the elements of s; the empty sequence sums to 0.
// Never returns on an infinite sequence.
func Sum[T Number](s Seq[T]) T {
	var sum T
	for ; s.n != nil; s = s.n.tail.Force() {
		sum += s.n.head
	}
	return sum
}

// Any reports whether some element satisfies pred. It stops at the first
// match, so it returns on an infinite sequence that has one.
// Panics with ErrInvalidArgument if pred is nil.
func (s Seq[T]) Any(pred func(T) bool) bool {
	_, ok := s.Find(pred)
	return ok
}

// Every reports whether all elements satisfy pred. It stops at the first
// mismatch; on an infinite sequence without one it never returns.
// Panics with ErrInvalidArgument if pred is nil.
func (s Seq[T]) Every(pred func(T) bool) bool {
	if pred == nil {
		invalidArgument("predicate is nil")
	}
	for ; s.n != nil; s = s.n.tail.Force() {
		if !pred(s.n.head) {
			return false
		}
	}
	return true
}

// Find returns the first element satisfying pred and true, or zero and
// false if there is none. On an infinite sequence without a match it
// never returns.
// Panics with ErrInvalidArgument if pred is nil.
func (s Seq[T]) Find(pred func(T) bool) (T, bool) {
	if pred == nil {
		invalidArgument("predicate is nil")
	}
	for ; s.n != nil; s = s.n.tail.Force() {
		if pred(s.n.head) {
			return s.n.head, true
		}
	}
	var zero T
	return zero, false
}

// Contains reports whether v occurs in s.
func Contains[T comparable](s Seq[T], v T) bool {
	return s.Any(func(e T) bool { return e == v })
}

// Equal reports whether a and b hold equal elements in the same order.
// It stops at the first difference; two infinite equal sequences never
// compare. Shared suffixes are recognized by identity without being
// walked.
func Equal[T comparable](a, b Seq[T]) bool {
	for {
		if a.n == b.n {
			return true
		}
		if a.n == nil || b.n == nil || a.n.head != b.n.head {
			return false
		}
		a, b = a.n.tail.Force(), b.n.tail.Force()
	}
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lazy

import "iter"

// Iteration adapters for consumers that walk a sequence one element at a
// time.
//
// All and Enumerate let a sequence be ranged over. The returned iterator
// holds s, so s and everything realized from it stay reachable for as long
// as the iterator does. Cursor holds only its current position, and is the
// adapter to use when walking an unbounded sequence in bounded memory.

// All returns an iterator over the elements of s. It may be ranged over
// any number of times; later passes read the memoized cells.
func (s Seq[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := s; cur.n != nil; cur = cur.n.tail.Force() {
			if !yield(cur.n.head) {
				return
			}
		}
	}
}

// Enumerate returns an iterator over the zero-based index and value of
// every element of s.
func (s Seq[T]) Enumerate() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for cur := s; cur.n != nil; cur = cur.n.tail.Force() {
			if !yield(i, cur.n.head) {
				return
			}
			i++
		}
	}
}

// Cursor walks a sequence one element at a time.
//
// A cursor references only the cell of the element it returned last.
// Cells before it are reclaimable once nothing else references them.
// Advancing past an element forces that element's tail only on the next
// call, so a cursor never realizes more than the caller consumed.
//
// A Cursor is not safe for concurrent use.
type Cursor[T any] struct {
	cur     Seq[T]
	pending bool
}

// Cursor returns a cursor positioned before the first element of s.
func (s Seq[T]) Cursor() *Cursor[T] {
	return &Cursor[T]{cur: s}
}

// Next returns the next element and true, or zero and false once the
// sequence is exhausted.
func (c *Cursor[T]) Next() (T, bool) {
	c.advance()
	if c.cur.n == nil {
		var zero T
		return zero, false
	}
	c.pending = true
	return c.cur.n.head, true
}

// Rest returns the elements not yet returned by Next.
func (c *Cursor[T]) Rest() Seq[T] {
	c.advance()
	return c.cur
}

func (c *Cursor[T]) advance() {
	if c.pending {
		c.cur = c.cur.n.tail.Force()
		c.pending = false
	}
}

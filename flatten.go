// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lazy

import "iter"

// Flatten concatenates the inner sequences of s in order.
//
// The flattening keeps a cursor into the current inner sequence. When the
// cursor is exhausted the outer sequence advances by one and a cursor into
// the next inner sequence is opened; the chain ends when the outer
// sequence does. Empty inner sequences are skipped eagerly, so an infinite
// run of empty inner sequences never yields the next cell.
func Flatten[T any](s Seq[Seq[T]]) Seq[T] {
	return derive(nested[T]{outer: at(s), inner: nowhere[T]}, func(st nested[T]) (T, nested[T], bool) {
		cur, outer := st.inner(), st.outer
		for cur.n == nil {
			o := outer()
			if o.n == nil {
				var zero T
				return zero, st, false
			}
			cur, outer = o.n.head, o.Tail
		}
		return cur.n.head, nested[T]{outer: outer, inner: cur.Tail}, true
	})
}

// FlatMap maps every element of s to a sequence and concatenates the
// results. It is the monadic bind of Seq: FlatMap(With(a), f) equals f(a).
// Panics with ErrInvalidArgument if f is nil.
func FlatMap[A, B any](s Seq[A], f func(A) Seq[B]) Seq[B] {
	if f == nil {
		invalidArgument("flat-map function is nil")
	}
	return Flatten(Map(s, f))
}

// FlatMapSeq maps every element of s to an external iterator and
// concatenates the values they produce. Each iterator is pulled one value
// at a time as result cells are realized.
// Panics with ErrInvalidArgument if f is nil.
func FlatMapSeq[A, B any](s Seq[A], f func(A) iter.Seq[B]) Seq[B] {
	if f == nil {
		invalidArgument("flat-map function is nil")
	}
	return Flatten(Map(s, func(a A) Seq[B] {
		return FromSeq(f(a))
	}))
}

// Concat returns the elements of every sequence in seqs in order.
// Only the first non-empty sequence is inspected up front; later ones are
// reached when the preceding ones are exhausted.
func Concat[T any](seqs ...Seq[T]) Seq[T] {
	return Flatten(FromSlice(seqs))
}

// Append returns the elements of s followed by the elements of other.
// other is not inspected until s is exhausted; from there on the result
// shares the cells of other.
func (s Seq[T]) Append(other Seq[T]) Seq[T] {
	if s.n == nil {
		return other
	}
	n := s.n
	return Cons(n.head, func() Seq[T] {
		return n.tail.Force().Append(other)
	})
}

// Prepend returns v followed by the elements of s.
func (s Seq[T]) Prepend(v T) Seq[T] {
	return Push(v, s)
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lazy

import "iter"

// Pair holds two values.
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// MakePair returns Pair{a, b} with full type inference.
func MakePair[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{Fst: a, Snd: b}
}

// Zip pairs the elements of a and b positionally.
// The result is as long as the shorter input; the longer input is not
// forced past that point.
func Zip[A, B any](a Seq[A], b Seq[B]) Seq[Pair[A, B]] {
	return ZipWith(a, b, MakePair[A, B])
}

// ZipWith combines the elements of a and b positionally with f.
// The result ends as soon as either input ends. a is checked first, so
// an exhausted a never realizes another element of b.
// Panics with ErrInvalidArgument if f is nil.
func ZipWith[A, B, C any](a Seq[A], b Seq[B], f func(A, B) C) Seq[C] {
	if f == nil {
		invalidArgument("zip function is nil")
	}
	return derive(zipping[A, B]{a: at(a), b: at(b)}, func(st zipping[A, B]) (C, zipping[A, B], bool) {
		var zero C
		ca := st.a()
		if ca.n == nil {
			return zero, st, false
		}
		cb := st.b()
		if cb.n == nil {
			return zero, st, false
		}
		return f(ca.n.head, cb.n.head), zipping[A, B]{a: ca.Tail, b: cb.Tail}, true
	})
}

// ZipSeq pairs the elements of s with the values of an external iterator.
// The result ends when either side is exhausted. Values are pulled from
// src one at a time, as result cells are realized.
func ZipSeq[A, B any](s Seq[A], src iter.Seq[B]) Seq[Pair[A, B]] {
	if s.n == nil {
		return Seq[Pair[A, B]]{}
	}
	return Zip(s, FromSeq(src))
}

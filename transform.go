// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lazy

// Map applies f to every element of s.
// f runs once per element, when the output cell holding its result is
// built; later accesses read the memoized cell.
// Panics with ErrInvalidArgument if f is nil.
func Map[A, B any](s Seq[A], f func(A) B) Seq[B] {
	if f == nil {
		invalidArgument("map function is nil")
	}
	return derive(at(s), func(in position[A]) (B, position[A], bool) {
		cur := in()
		if cur.n == nil {
			var zero B
			return zero, nil, false
		}
		return f(cur.n.head), cur.Tail, true
	})
}

// MapIndexed is Map where f also receives the zero-based index of the
// element.
// Panics with ErrInvalidArgument if f is nil.
func MapIndexed[A, B any](s Seq[A], f func(int, A) B) Seq[B] {
	if f == nil {
		invalidArgument("map function is nil")
	}
	return derive(indexed[A]{in: at(s)}, func(st indexed[A]) (B, indexed[A], bool) {
		cur := st.in()
		if cur.n == nil {
			var zero B
			return zero, st, false
		}
		return f(st.i, cur.n.head), indexed[A]{in: cur.Tail, i: st.i + 1}, true
	})
}

// Scan returns the running results of folding f over s, starting from
// seed. The seed itself is not emitted: Scan(With(1, 2, 3), 0, add)
// yields 1, 3, 6.
// Panics with ErrInvalidArgument if f is nil.
func Scan[T, A any](s Seq[T], seed A, f func(A, T) A) Seq[A] {
	if f == nil {
		invalidArgument("scan function is nil")
	}
	return derive(folding[T, A]{in: at(s), acc: seed}, func(st folding[T, A]) (A, folding[T, A], bool) {
		cur := st.in()
		if cur.n == nil {
			return st.acc, st, false
		}
		acc := f(st.acc, cur.n.head)
		return acc, folding[T, A]{in: cur.Tail, acc: acc}, true
	})
}

// Where returns the elements of s satisfying pred.
//
// Non-matching elements are skipped eagerly while the next match is
// searched for. On an infinite s in which no further element matches,
// realizing the next cell never returns.
// Panics with ErrInvalidArgument if pred is nil.
func (s Seq[T]) Where(pred func(T) bool) Seq[T] {
	if pred == nil {
		invalidArgument("predicate is nil")
	}
	return derive(at(s), func(in position[T]) (T, position[T], bool) {
		cur := in()
		for cur.n != nil && !pred(cur.n.head) {
			cur = cur.n.tail.Force()
		}
		if cur.n == nil {
			var zero T
			return zero, nil, false
		}
		return cur.n.head, cur.Tail, true
	})
}

// WhereIndexed is Where where pred also receives the zero-based position
// of the element in s. Skipped elements consume their positions, unlike
// MapIndexed, whose index counts the cells it has produced.
// Panics with ErrInvalidArgument if pred is nil.
func (s Seq[T]) WhereIndexed(pred func(int, T) bool) Seq[T] {
	if pred == nil {
		invalidArgument("predicate is nil")
	}
	return derive(indexed[T]{in: at(s)}, func(st indexed[T]) (T, indexed[T], bool) {
		cur, i := st.in(), st.i
		for cur.n != nil && !pred(i, cur.n.head) {
			cur = cur.n.tail.Force()
			i++
		}
		if cur.n == nil {
			var zero T
			return zero, st, false
		}
		return cur.n.head, indexed[T]{in: cur.Tail, i: i + 1}, true
	})
}

// Take returns the first n elements of s, or all of s if it is shorter.
// Take never forces a tail beyond the returned prefix: the tail of the
// n-th input element is left untouched. n <= 0 yields the empty sequence.
func (s Seq[T]) Take(n int) Seq[T] {
	return derive(counted[T]{in: at(s), n: n}, func(st counted[T]) (T, counted[T], bool) {
		if st.n <= 0 {
			var zero T
			return zero, st, false
		}
		cur := st.in()
		if cur.n == nil {
			var zero T
			return zero, st, false
		}
		return cur.n.head, counted[T]{in: cur.Tail, n: st.n - 1}, true
	})
}

// TakeWhile returns the longest prefix of s whose elements satisfy pred.
// Panics with ErrInvalidArgument if pred is nil.
func (s Seq[T]) TakeWhile(pred func(T) bool) Seq[T] {
	if pred == nil {
		invalidArgument("predicate is nil")
	}
	return derive(at(s), func(in position[T]) (T, position[T], bool) {
		cur := in()
		if cur.n == nil || !pred(cur.n.head) {
			var zero T
			return zero, nil, false
		}
		return cur.n.head, cur.Tail, true
	})
}

// Skip returns s without its first n elements. The result shares its
// cells with s. n <= 0 returns s.
func (s Seq[T]) Skip(n int) Seq[T] {
	for ; n > 0 && s.n != nil; n-- {
		s = s.n.tail.Force()
	}
	return s
}

// SkipWhile returns s without its longest prefix satisfying pred.
// The result shares its cells with s.
// Panics with ErrInvalidArgument if pred is nil.
func (s Seq[T]) SkipWhile(pred func(T) bool) Seq[T] {
	if pred == nil {
		invalidArgument("predicate is nil")
	}
	for s.n != nil && pred(s.n.head) {
		s = s.n.tail.Force()
	}
	return s
}

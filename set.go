// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lazy

// Set operations.
//
// Each operation owns a key set threaded through its chain. The set is
// created by the call that builds the chain, advanced as cells are
// realized, and never shared with another chain, even one built from the
// same source. It is the only mutable state in the package besides thunk
// evaluation, and like thunks it assumes single-goroutine realization.
//
// Elements whose keys are already in the set are skipped eagerly, so on an
// infinite input with no further new key, realizing the next cell never
// returns. Except and Intersect realize their second operand in full
// before the first result and never return if it is infinite.

// Distinct returns the elements of s with duplicates removed, keeping
// first occurrences in order.
func Distinct[T comparable](s Seq[T]) Seq[T] {
	return DistinctBy(s, identity[T])
}

// DistinctBy is Distinct comparing elements by key.
// Panics with ErrInvalidArgument if key is nil.
func DistinctBy[T any, K comparable](s Seq[T], key func(T) K) Seq[T] {
	if key == nil {
		invalidArgument("key function is nil")
	}
	return screen(s, key, make(map[K]struct{}))
}

// Except returns the distinct elements of a that do not occur in b.
func Except[T comparable](a, b Seq[T]) Seq[T] {
	return ExceptBy(a, b, identity[T])
}

// ExceptBy is Except comparing elements by key.
// Panics with ErrInvalidArgument if key is nil.
func ExceptBy[T any, K comparable](a, b Seq[T], key func(T) K) Seq[T] {
	if key == nil {
		invalidArgument("key function is nil")
	}
	return screen(a, key, keySet(b, key))
}

// Intersect returns the distinct elements of a that also occur in b, in
// the order of a.
func Intersect[T comparable](a, b Seq[T]) Seq[T] {
	return IntersectBy(a, b, identity[T])
}

// IntersectBy is Intersect comparing elements by key.
// Panics with ErrInvalidArgument if key is nil.
func IntersectBy[T any, K comparable](a, b Seq[T], key func(T) K) Seq[T] {
	if key == nil {
		invalidArgument("key function is nil")
	}
	st := screening[T, K]{in: at(a), seen: keySet(b, key)}
	// seen holds the keys still wanted; an emitted key is removed.
	return derive(st, func(st screening[T, K]) (T, screening[T, K], bool) {
		cur := st.in()
		for cur.n != nil {
			k := key(cur.n.head)
			if _, ok := st.seen[k]; ok {
				delete(st.seen, k)
				return cur.n.head, screening[T, K]{in: cur.Tail, seen: st.seen}, true
			}
			cur = cur.n.tail.Force()
		}
		var zero T
		return zero, st, false
	})
}

// Union returns the distinct elements of a followed by the distinct
// elements of b not in a. Both operands are consumed lazily.
func Union[T comparable](a, b Seq[T]) Seq[T] {
	return Distinct(Concat(a, b))
}

// UnionBy is Union comparing elements by key.
// Panics with ErrInvalidArgument if key is nil.
func UnionBy[T any, K comparable](a, b Seq[T], key func(T) K) Seq[T] {
	return DistinctBy(Concat(a, b), key)
}

// screen yields the elements of s whose keys are not in seen, adding each
// yielded key to seen.
func screen[T any, K comparable](s Seq[T], key func(T) K, seen map[K]struct{}) Seq[T] {
	return derive(screening[T, K]{in: at(s), seen: seen}, func(st screening[T, K]) (T, screening[T, K], bool) {
		cur := st.in()
		for cur.n != nil {
			k := key(cur.n.head)
			if _, dup := st.seen[k]; !dup {
				st.seen[k] = struct{}{}
				return cur.n.head, screening[T, K]{in: cur.Tail, seen: st.seen}, true
			}
			cur = cur.n.tail.Force()
		}
		var zero T
		return zero, st, false
	})
}

// keySet realizes s in full and returns the set of its keys.
func keySet[T any, K comparable](s Seq[T], key func(T) K) map[K]struct{} {
	set := make(map[K]struct{})
	for ; s.n != nil; s = s.n.tail.Force() {
		set[key(s.n.head)] = struct{}{}
	}
	return set
}

func identity[T any](v T) T { return v }

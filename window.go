// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lazy

// Sliding returns windows of size consecutive elements of s, the start of
// each window step elements after the previous one. Every window is a
// fresh slice owned by the caller.
//
// Windows are full except possibly the last, which is emitted only if it
// holds elements the previous window did not: Sliding(1..5, 2, 2) yields
// [1 2] [3 4] [5], while Sliding(1..5, 3, 1) stops at [3 4 5].
// Building a window realizes size-1 tails past its first element.
// Panics with ErrInvalidArgument if size or step is not positive.
func Sliding[T any](s Seq[T], size, step int) Seq[[]T] {
	if size <= 0 {
		invalidArgument("window size %d is not positive", size)
	}
	if step <= 0 {
		invalidArgument("window step %d is not positive", step)
	}
	return derive(windowing[T]{in: at(s), first: true}, func(st windowing[T]) ([]T, windowing[T], bool) {
		start := st.in()
		if start.n == nil {
			return nil, st, false
		}
		window := make([]T, 0, size)
		for cur := start; ; {
			window = append(window, cur.n.head)
			if len(window) == size {
				break
			}
			cur = cur.n.tail.Force()
			if cur.n == nil {
				break
			}
		}
		if len(window) < size {
			if !st.first && len(window) <= size-step {
				return nil, st, false
			}
			return window, windowing[T]{in: nowhere[T]}, true
		}
		return window, windowing[T]{in: func() Seq[T] { return start.Skip(step) }}, true
	})
}

// Grouped splits s into consecutive chunks of size elements; the last
// chunk holds the remainder. It is Sliding(s, size, size).
// Panics with ErrInvalidArgument if size is not positive.
func Grouped[T any](s Seq[T], size int) Seq[[]T] {
	return Sliding(s, size, size)
}

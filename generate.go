// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lazy

// Integer is the constraint for Range and Count.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// With returns a finite sequence of the given values.
// The whole chain is built eagerly; there is nothing to defer in a literal
// list.
func With[T any](values ...T) Seq[T] {
	var s Seq[T]
	for i := len(values) - 1; i >= 0; i-- {
		s = Push(values[i], s)
	}
	return s
}

// Iterate returns the infinite sequence start, f(start), f(f(start)), ...
// Each application of f runs when the preceding tail is forced.
// Panics with ErrInvalidArgument if f is nil.
func Iterate[T any](start T, f func(T) T) Seq[T] {
	if f == nil {
		invalidArgument("iterate function is nil")
	}
	return iterate(start, f)
}

func iterate[T any](v T, f func(T) T) Seq[T] {
	return Cons(v, func() Seq[T] {
		return iterate(f(v), f)
	})
}

// From returns the infinite sequence starting at seed in which every tail
// begins with step applied to the preceding head. It is Iterate with the
// arguments named for generator use.
// Panics with ErrInvalidArgument if step is nil.
func From[T any](seed T, step func(T) T) Seq[T] {
	if step == nil {
		invalidArgument("step function is nil")
	}
	return iterate(seed, step)
}

// Count returns the infinite sequence start, start+1, start+2, ...
// The values wrap around on overflow of T.
func Count[T Integer](start T) Seq[T] {
	return iterate(start, func(v T) T { return v + 1 })
}

// Range returns the finite sequence start, start+1, ..., end-1.
// start >= end yields the empty sequence.
func Range[T Integer](start, end T) Seq[T] {
	return Unfold(start, func(v T) (T, T, bool) {
		return v, v + 1, v < end
	})
}

// Repeat returns the infinite sequence v, v, v, ...
// The chain is a single cell whose tail is itself, so it occupies
// constant memory.
func Repeat[T any](v T) Seq[T] {
	n := &node[T]{head: v}
	n.tail = Ready(Seq[T]{n: n})
	return Seq[T]{n: n}
}

// Cycle returns the infinite repetition of values. The cycle is built
// eagerly and closed onto itself. No values yields the empty sequence.
func Cycle[T any](values ...T) Seq[T] {
	if len(values) == 0 {
		return Seq[T]{}
	}
	first := &node[T]{head: values[0]}
	last := first
	for _, v := range values[1:] {
		n := &node[T]{head: v}
		last.tail = Ready(Seq[T]{n: n})
		last = n
	}
	last.tail = Ready(Seq[T]{n: first})
	return Seq[T]{n: first}
}

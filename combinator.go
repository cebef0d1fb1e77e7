// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lazy

// Every combinator in the package is an instance of one construction rule:
// compute one output head from the current input state, then defer the
// rest behind a tail thunk that applies the same step to the successor
// state. derive is that rule. A combinator is a small state struct plus a
// step function.
//
// States hold deferred input positions (the method value s.Tail) rather
// than realized tails, so producing output head k never forces input
// tail k. A tail thunk closes over the successor state and the step only;
// it never refers to the output chain being built.

// position is a deferred input position. Calling it realizes the position.
type position[T any] func() Seq[T]

// at returns a position that is already realized.
func at[T any](s Seq[T]) position[T] {
	return func() Seq[T] { return s }
}

// nowhere is the position of an exhausted input.
func nowhere[T any]() Seq[T] { return Seq[T]{} }

// derive builds the output chain for state. step returns the next output
// head and the successor state, or ok == false to end the chain.
func derive[S, T any](state S, step func(S) (T, S, bool)) Seq[T] {
	v, next, ok := step(state)
	if !ok {
		return Seq[T]{}
	}
	return Cons(v, func() Seq[T] {
		return derive(next, step)
	})
}

// Unfold builds a sequence from a seed state. step returns the next
// element and the successor state, or ok == false to end the sequence.
// The first element is computed by Unfold; each later one when the
// preceding tail is forced.
// Panics with ErrInvalidArgument if step is nil.
//
// Example:
//
//	// 0, 1, 1, 2, 3, 5, ...
//	fib := Unfold(Pair[int, int]{0, 1}, func(p Pair[int, int]) (int, Pair[int, int], bool) {
//	    return p.Fst, Pair[int, int]{p.Snd, p.Fst + p.Snd}, true
//	})
func Unfold[S, T any](seed S, step func(S) (T, S, bool)) Seq[T] {
	if step == nil {
		invalidArgument("unfold step is nil")
	}
	return derive(seed, step)
}

// Combinator states.

// indexed is an input position with the source index of its head.
type indexed[T any] struct {
	in position[T]
	i  int
}

// counted is an input position with a remaining element budget.
type counted[T any] struct {
	in position[T]
	n  int
}

// folding is an input position with an accumulator.
type folding[T, A any] struct {
	in  position[T]
	acc A
}

// zipping holds the positions of both zipped inputs.
type zipping[A, B any] struct {
	a position[A]
	b position[B]
}

// nested holds the outer position and the cursor into the current inner
// sequence of a flattening.
type nested[T any] struct {
	outer position[Seq[T]]
	inner position[T]
}

// screening is an input position with the key set owned by one set
// operation chain.
type screening[T any, K comparable] struct {
	in   position[T]
	seen map[K]struct{}
}

// windowing is the start of the next window.
type windowing[T any] struct {
	in    position[T]
	first bool
}

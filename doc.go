// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package lazy provides immutable, lazily evaluated linked sequences in Go.
//
// The core type [Seq] is a cons list whose tail is computed on first access
// and cached afterwards. Because tails are deferred, a sequence may be
// infinite; because cells only point forward, a consumer that lets go of the
// front of a chain lets the garbage collector reclaim it while it walks on.
//
// # Design Philosophy
//
// lazy provides:
//   - A memoized deferred computation, [Thunk], forced at most once
//   - An immutable cons cell whose tail is a [Thunk]
//   - Combinators that all follow one construction rule: compute one output
//     head, defer the rest behind a tail that re-applies the same step
//
// Evaluation is synchronous and pull-based. Nothing advances a chain except
// a call that needs the next cell, and that call runs the deferred work to
// completion on the calling goroutine. There is no cancellation token: a
// consumer stops by no longer asking for tails and dropping its reference.
//
// # Thunks
//
//   - [Delay]: Deferred computation for single-goroutine use
//   - [DelayShared]: Deferred computation with an exactly-once, lock-guarded force
//   - [Ready]: Already evaluated thunk
//   - [Thunk.Force]: Evaluate on first use, return the cached value afterwards
//   - [Thunk.Evaluated]: Report whether the value is cached
//
// A producing function that panics leaves its thunk unevaluated; the next
// force runs it again. Failures are not cached.
//
// # Sequences
//
// The zero value of [Seq] is the empty sequence.
//
//   - [Empty]: The empty sequence
//   - [Cons]: Head plus deferred tail (the tail function is not called)
//   - [Push]: Head plus realized tail
//   - [Seq.IsEmpty], [Seq.NonEmpty]: Emptiness predicates
//   - [Seq.Head], [Seq.Tail]: Accessors (panic with [ErrEmptyAccess] on empty)
//   - [Seq.TryHead], [Seq.Uncons]: Non-panicking accessors
//   - [Seq.TailEvaluated]: Report whether the tail is realized
//   - [Seq.Same]: Cell identity
//
// # Constructors
//
//   - [With]: Finite sequence from literal values (eager)
//   - [Iterate], [From]: x, f(x), f(f(x)), ...
//   - [Unfold]: Sequence from a seed state and a step function
//   - [Count]: Infinite integers from a start
//   - [Range]: Half-open integer range
//   - [Repeat], [Cycle]: Constant-memory infinite repetition
//
// # Combinators
//
// Every combinator builds a new chain and leaves its inputs untouched.
// No combinator inspects more input than it needs for one output head.
//
// Mapping:
//
//   - [Map], [MapIndexed]: Transform elements
//   - [Scan]: Running fold
//   - [FlatMap], [FlatMapSeq]: Map to sequences or iterators and concatenate
//
// Filtering and bounding:
//
//   - [Seq.Where], [Seq.WhereIndexed]: Keep matching elements
//   - [Seq.Take], [Seq.TakeWhile]: Prefixes
//   - [Seq.Skip], [Seq.SkipWhile]: Suffixes (share cells with the input)
//
// Combining:
//
//   - [Zip], [ZipWith], [ZipSeq]: Pair positionally; the shorter input wins
//   - [Concat], [Seq.Append], [Seq.Prepend], [Flatten]: Concatenation
//
// Set operations, each with a keyed By variant:
//
//   - [Distinct], [Except], [Intersect], [Union]
//
// Windowing:
//
//   - [Sliding], [Grouped]: Windows as fresh slices
//
// Filter-style operators ([Seq.Where], [Distinct], [Except], [Intersect],
// [Flatten] over empty inner sequences) skip non-matching input eagerly.
// Realizing the next cell of such an operator over an infinite input in
// which nothing matches any more never returns. This is a documented
// property of the operators, not a detectable error.
//
// # Eager Bridge
//
// Conversions from external data:
//
//   - [FromSlice]: Copy of a slice, walked lazily
//   - [FromSeq]: Values of an [iter.Seq], pulled one at a time
//   - [FromPull]: Values of a pull function
//
// Conversions to strict values. These walk the whole sequence and never
// return on an infinite one:
//
//   - [Seq.ToSlice], [Seq.Len], [Seq.Reverse], [Seq.Last]
//   - [Fold], [Seq.Reduce], [Sum]
//   - [Seq.Every], [Equal]
//
// [Seq.Any], [Seq.Find], [Contains] and [Seq.ElementAt] stop as soon as
// they have their answer.
//
// # Iteration
//
//   - [Seq.All]: [iter.Seq] over the elements
//   - [Seq.Enumerate]: [iter.Seq2] over index and element
//   - [Cursor]: Position-only walker for bounded-memory traversal
//
// # Concurrency
//
// Sequences are built for single-goroutine consumption. Thunks made by
// [Delay] and the key sets of set operations are unsynchronized. To hand a
// chain to several goroutines, call [Seq.Shared], which re-links it with
// [DelayShared] tails.
//
// # Diagnostics
//
//   - [Trace]: Log every realized cell through zerolog
//
// # Errors
//
// Misuse panics at the call site with an error wrapping one of:
//
//   - [ErrEmptyAccess]: Head, Tail, Last, Reduce or ElementAt past the end
//   - [ErrInvalidArgument]: A nil function or an out-of-range count
//
// Panics raised by caller-supplied functions propagate unchanged to the
// goroutine forcing the cell that called them.
//
// # Example
//
//	fib := lazy.Map(
//		lazy.Iterate(lazy.MakePair(0, 1), func(p lazy.Pair[int, int]) lazy.Pair[int, int] {
//			return lazy.MakePair(p.Snd, p.Fst+p.Snd)
//		}),
//		func(p lazy.Pair[int, int]) int { return p.Fst },
//	)
//	fmt.Println(fib.Take(10).ToSlice())
//	// [0 1 1 2 3 5 8 13 21 34]
package lazy

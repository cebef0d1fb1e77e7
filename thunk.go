// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lazy

import (
	"sync"
	"sync/atomic"
)

// Thunk is a deferred computation forced at most once.
//
// A thunk is either unevaluated, holding its producing function, or
// evaluated, holding the produced value. The first successful Force
// moves it from the first state to the second and drops the producing
// function, so the function's captured environment can be reclaimed.
//
// A thunk created with Delay is not safe for concurrent forcing: it is
// meant for single-goroutine consumption. Use DelayShared when a thunk
// must be forced from several goroutines.
//
// If the producing function panics, the thunk stays unevaluated and the
// next Force invokes the function again. Failures are never cached.
type Thunk[T any] struct {
	done atomic.Uint32
	mu   *sync.Mutex // nil unless created by DelayShared
	f    func() T
	v    T
}

// Delay creates an unevaluated thunk from f.
// Panics with ErrInvalidArgument if f is nil.
func Delay[T any](f func() T) *Thunk[T] {
	if f == nil {
		invalidArgument("thunk function is nil")
	}
	return &Thunk[T]{f: f}
}

// DelayShared creates an unevaluated thunk whose Force is an exactly-once
// transition safe for concurrent use. A goroutine that loses the race
// waits for the winner and reads the cached value.
// Panics with ErrInvalidArgument if f is nil.
func DelayShared[T any](f func() T) *Thunk[T] {
	if f == nil {
		invalidArgument("thunk function is nil")
	}
	return &Thunk[T]{f: f, mu: new(sync.Mutex)}
}

// Ready creates an already evaluated thunk holding v.
func Ready[T any](v T) *Thunk[T] {
	t := &Thunk[T]{v: v}
	t.done.Store(1)
	return t
}

// Evaluated reports whether the thunk has been forced successfully.
func (t *Thunk[T]) Evaluated() bool {
	return t.done.Load() == 1
}

// Force evaluates the thunk on first use and returns the cached value on
// every later use. The producing function runs at most once per
// successful evaluation.
//
// Forcing a thunk from inside its own producing function recurses
// without bound (or deadlocks, for shared thunks).
func (t *Thunk[T]) Force() T {
	if t.done.Load() == 1 {
		return t.v
	}
	if t.mu != nil {
		return t.forceSlow()
	}
	v := t.f()
	t.v = v
	t.f = nil
	t.done.Store(1)
	return v
}

func (t *Thunk[T]) forceSlow() T {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.done.Load() == 0 {
		t.v = t.f()
		t.f = nil
		t.done.Store(1)
	}
	return t.v
}

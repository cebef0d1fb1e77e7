// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import "code.hybscloud.com/lazy"

func naturals() lazy.Seq[uint64] {
	return lazy.Count[uint64](0)
}

// fibonacci is defined by zipping the sequence with its own tail.
func fibonacci() lazy.Seq[uint64] {
	var fib lazy.Seq[uint64]
	fib = lazy.Cons(0, func() lazy.Seq[uint64] {
		return lazy.Cons(1, func() lazy.Seq[uint64] {
			return lazy.ZipWith(fib, fib.Tail(), func(a, b uint64) uint64 { return a + b })
		})
	})
	return fib
}

func primes() lazy.Seq[uint64] {
	return sieve(lazy.Count[uint64](2))
}

func sieve(s lazy.Seq[uint64]) lazy.Seq[uint64] {
	p := s.Head()
	return lazy.Cons(p, func() lazy.Seq[uint64] {
		return sieve(s.Tail().Where(func(v uint64) bool { return v%p != 0 }))
	})
}

func pascal() lazy.Seq[[]uint64] {
	rows := lazy.Iterate(lazy.With[uint64](1), func(row lazy.Seq[uint64]) lazy.Seq[uint64] {
		return lazy.ZipWith(row.Prepend(0), row.Append(lazy.With[uint64](0)), func(a, b uint64) uint64 {
			return a + b
		})
	})
	return lazy.Map(rows, lazy.Seq[uint64].ToSlice)
}

// collatz returns the trajectory of n down to 1.
func collatz(n uint64) lazy.Seq[uint64] {
	return lazy.Unfold(n, func(v uint64) (uint64, uint64, bool) {
		switch {
		case v == 0:
			return 0, 0, false
		case v == 1:
			return 1, 0, true
		case v%2 == 0:
			return v, v / 2, true
		default:
			return v, 3*v + 1, true
		}
	})
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lazy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"code.hybscloud.com/lazy"
)

func TestIterate(t *testing.T) {
	calls := 0
	double := func(x int) int {
		calls++
		return x * 2
	}
	s := lazy.Iterate(1, double)
	assert.Equal(t, 0, calls, "Iterate must not apply f up front")
	assert.Equal(t, []int{1, 2, 4, 8, 16}, s.Take(5).ToSlice())
	assert.Equal(t, 4, calls)

	s.Take(5).ToSlice()
	assert.Equal(t, 4, calls, "replaying a realized prefix must not reapply f")
}

func TestFrom(t *testing.T) {
	s := lazy.From("a", func(v string) string { return v + "a" })
	assert.Equal(t, []string{"a", "aa", "aaa"}, s.Take(3).ToSlice())
}

func TestNilGenerators(t *testing.T) {
	requirePanicsWith(t, lazy.ErrInvalidArgument, func() { lazy.Iterate[int](0, nil) })
	requirePanicsWith(t, lazy.ErrInvalidArgument, func() { lazy.From[int](0, nil) })
	requirePanicsWith(t, lazy.ErrInvalidArgument, func() {
		lazy.Unfold[int, int](0, nil)
	})
}

func TestCount(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3, 4, 5}, lazy.Count(1).Take(5).ToSlice())
	assert.Equal(t, []uint8{254, 255, 0}, lazy.Count[uint8](254).Take(3).ToSlice())
}

func TestRange(t *testing.T) {
	assert.Equal(t, []int{2, 3, 4}, lazy.Range(2, 5).ToSlice())
	assert.True(t, lazy.Range(5, 5).IsEmpty())
	assert.True(t, lazy.Range(5, 1).IsEmpty())
	assert.Equal(t, []int64{-1, 0}, lazy.Range[int64](-1, 1).ToSlice())
}

func TestRepeat(t *testing.T) {
	s := lazy.Repeat("x")
	assert.Equal(t, []string{"x", "x", "x"}, s.Take(3).ToSlice())
	assert.True(t, s.Tail().Same(s), "Repeat is a single self-referential cell")
}

func TestCycle(t *testing.T) {
	s := lazy.Cycle(1, 2, 3)
	assert.Equal(t, []int{1, 2, 3, 1, 2, 3, 1}, s.Take(7).ToSlice())
	assert.True(t, s.Skip(3).Same(s))
	assert.True(t, lazy.Cycle[int]().IsEmpty())
}

func TestUnfold(t *testing.T) {
	// Collatz sequence from 6 down to 1.
	s := lazy.Unfold(6, func(n int) (int, int, bool) {
		switch {
		case n == 0:
			return 0, 0, false
		case n == 1:
			return 1, 0, true
		case n%2 == 0:
			return n, n / 2, true
		default:
			return n, 3*n + 1, true
		}
	})
	assert.Equal(t, []int{6, 3, 10, 5, 16, 8, 4, 2, 1}, s.ToSlice())
}

func fibonacci() lazy.Seq[int] {
	pairs := lazy.Iterate(lazy.MakePair(0, 1), func(p lazy.Pair[int, int]) lazy.Pair[int, int] {
		return lazy.MakePair(p.Snd, p.Fst+p.Snd)
	})
	return lazy.Map(pairs, func(p lazy.Pair[int, int]) int { return p.Fst })
}

func TestFibonacciPairedRecurrence(t *testing.T) {
	assert.Equal(t, []int{0, 1, 1, 2, 3, 5, 8, 13, 21, 34}, fibonacci().Take(10).ToSlice())
}

func TestFibonacciSelfReferential(t *testing.T) {
	// fib = 0 : 1 : zipWith (+) fib (tail fib)
	var fib lazy.Seq[int]
	fib = lazy.Cons(0, func() lazy.Seq[int] {
		return lazy.Cons(1, func() lazy.Seq[int] {
			return lazy.ZipWith(fib, fib.Tail(), func(a, b int) int { return a + b })
		})
	})
	assert.Equal(t, []int{0, 1, 1, 2, 3, 5, 8, 13, 21, 34}, fib.Take(10).ToSlice())
}

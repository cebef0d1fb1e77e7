// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lazy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"code.hybscloud.com/lazy"
)

func TestSliding(t *testing.T) {
	tests := []struct {
		name       string
		n          int
		size, step int
		want       [][]int
	}{
		{"step one", 5, 3, 1, [][]int{{1, 2, 3}, {2, 3, 4}, {3, 4, 5}}},
		{"overlapping", 5, 3, 2, [][]int{{1, 2, 3}, {3, 4, 5}}},
		{"chunks with remainder", 5, 2, 2, [][]int{{1, 2}, {3, 4}, {5}}},
		{"gaps", 5, 2, 3, [][]int{{1, 2}, {4, 5}}},
		{"gaps with remainder", 4, 2, 3, [][]int{{1, 2}, {4}}},
		{"shorter than window", 2, 3, 1, [][]int{{1, 2}}},
		{"exact fit", 3, 3, 1, [][]int{{1, 2, 3}}},
		{"empty", 0, 2, 1, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lazy.Sliding(lazy.Range(1, tt.n+1), tt.size, tt.step).ToSlice()
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSlidingOnInfiniteInput(t *testing.T) {
	src, forced := probe()
	windows := lazy.Sliding(src, 3, 1)
	assert.Equal(t, []int{0, 1, 2}, windows.Head())
	assert.Equal(t, 2, *forced, "the first window realizes size-1 tails")

	sums := lazy.Map(windows, func(w []int) int { return w[0] + w[1] + w[2] })
	assert.Equal(t, []int{3, 6, 9, 12}, sums.Take(4).ToSlice())
}

func TestSlidingWindowsAreIndependent(t *testing.T) {
	windows := lazy.Sliding(lazy.Range(0, 4), 2, 1)
	first := windows.Head()
	first[0] = 100
	assert.Equal(t, []int{1, 2}, windows.Tail().Head())
	assert.Equal(t, 100, windows.Head()[0], "a window is realized once and then shared")
}

func TestGrouped(t *testing.T) {
	got := lazy.Grouped(lazy.With("a", "b", "c", "d", "e"), 2).ToSlice()
	assert.Equal(t, [][]string{{"a", "b"}, {"c", "d"}, {"e"}}, got)
}

func TestSlidingInvalidArguments(t *testing.T) {
	requirePanicsWith(t, lazy.ErrInvalidArgument, func() { lazy.Sliding(lazy.Count(0), 0, 1) })
	requirePanicsWith(t, lazy.ErrInvalidArgument, func() { lazy.Sliding(lazy.Count(0), 2, 0) })
	requirePanicsWith(t, lazy.ErrInvalidArgument, func() { lazy.Grouped(lazy.Count(0), -1) })
}

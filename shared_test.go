// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lazy_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/lazy"
)

func TestSharedConcurrentWalkers(t *testing.T) {
	var steps atomic.Int32
	src := lazy.Iterate(0, func(v int) int {
		steps.Add(1)
		return v + 1
	})
	shared := src.Shared()

	const walkers = 16
	const n = 500
	results := make([][]int, walkers)
	var wg sync.WaitGroup
	wg.Add(walkers)
	for w := range walkers {
		go func() {
			defer wg.Done()
			results[w] = shared.Take(n).ToSlice()
		}()
	}
	wg.Wait()

	want := lazy.Range(0, n).ToSlice()
	for w := range walkers {
		require.Equal(t, want, results[w], "walker %d", w)
	}
	assert.Equal(t, int32(n-1), steps.Load(), "every source step runs exactly once")
}

func TestSharedKeepsElements(t *testing.T) {
	assert.True(t, lazy.Empty[int]().Shared().IsEmpty())
	assert.Equal(t, []string{"a", "b"}, lazy.With("a", "b").Shared().ToSlice())

	s := lazy.Count(0).Shared()
	assert.True(t, s.Tail().Same(s.Tail()))
}

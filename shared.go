// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lazy

// Shared returns a sequence with the elements of s whose tails may be
// forced from several goroutines at once.
//
// Each cell of the result is forced exactly once under a lock; goroutines
// losing the race read the cached tail. Forcing a cell of the result
// forces the matching cell of s, so s itself must not be walked
// concurrently by anything else. Functions supplied to the combinators
// that built s run on whichever goroutine wins, one at a time.
func (s Seq[T]) Shared() Seq[T] {
	if s.n == nil {
		return s
	}
	n := s.n
	return link(n.head, DelayShared(func() Seq[T] {
		return n.tail.Force().Shared()
	}))
}

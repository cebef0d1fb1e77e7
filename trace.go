// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lazy

import "github.com/rs/zerolog"

// Trace returns s unchanged except that every realized cell is logged to
// logger at debug level, tagged with name. Since cells are memoized, each
// element is logged once, at the moment it is computed; the end of a
// finite sequence is logged as well. This makes the evaluation order of a
// lazy pipeline observable.
// Panics with ErrInvalidArgument if logger is nil.
func Trace[T any](s Seq[T], logger *zerolog.Logger, name string) Seq[T] {
	if logger == nil {
		invalidArgument("logger is nil")
	}
	return derive(indexed[T]{in: at(s)}, func(st indexed[T]) (T, indexed[T], bool) {
		cur := st.in()
		if cur.n == nil {
			logger.Debug().Str("seq", name).Int("count", st.i).Msg("exhausted")
			var zero T
			return zero, st, false
		}
		logger.Debug().Str("seq", name).Int("index", st.i).Interface("head", cur.n.head).Msg("realized")
		return cur.n.head, indexed[T]{in: cur.Tail, i: st.i + 1}, true
	})
}

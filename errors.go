// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lazy

import "github.com/rotisserie/eris"

// Error kinds raised by the package.
//
// Both kinds signal programming errors and are raised with panic at the
// call site, never deferred into a thunk. The panic value is an error
// wrapping one of the sentinels below, so a recovering caller can classify
// it with errors.Is.
var (
	// ErrEmptyAccess is raised when Head or Tail is called on the empty sequence.
	ErrEmptyAccess = eris.New("lazy: access to empty sequence")

	// ErrInvalidArgument is raised when a required function argument is nil
	// or a numeric argument is out of range.
	ErrInvalidArgument = eris.New("lazy: invalid argument")
)

func emptyAccess(op string) {
	panic(eris.Wrapf(ErrEmptyAccess, "%s of empty sequence", op))
}

func invalidArgument(format string, args ...any) {
	panic(eris.Wrapf(ErrInvalidArgument, format, args...))
}

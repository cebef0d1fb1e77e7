// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lazy

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestThunkLockOnlyWhenShared(t *testing.T) {
	assert.Nil(t, Delay(func() int { return 1 }).mu)
	assert.Nil(t, Ready(1).mu)
	assert.NotNil(t, DelayShared(func() int { return 1 }).mu)
	assert.True(t, Cons(1, Empty[int]).n.tail.mu == nil, "cells built by Cons carry no lock")
}

func TestThunkSize(t *testing.T) {
	// padded state word, lock pointer, producer and value
	want := 3*unsafe.Sizeof(uintptr(0)) + unsafe.Sizeof(int(0))
	assert.LessOrEqual(t, unsafe.Sizeof(Thunk[int]{}), want)
}

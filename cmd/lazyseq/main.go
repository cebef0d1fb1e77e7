// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command lazyseq prints prefixes of classic infinite series built from
// lazy sequences.
//
// Usage:
//
//	lazyseq fib --count 20
//	lazyseq primes --trace --log-level debug
//	LAZYSEQ_COUNT=6 lazyseq pascal
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package succinct

import "fmt"

// debugAssert panics with a wrapped BitVecError when debugAsserts is
// compiled in and cond is false. debugAsserts is a compile-time constant
// (see debug_on.go / debug_off.go), so in a normal build the compiler
// eliminates this entirely rather than paying a branch per call on every
// rank/select/build path.
func debugAssert(cond bool, op string, index int, err error) {
	if !debugAsserts || cond {
		return
	}
	panic(fmt.Errorf("internal consistency check failed: %w", wrapErr(op, index, err)))
}

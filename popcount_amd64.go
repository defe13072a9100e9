// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build amd64
// +build amd64

package succinct

import "golang.org/x/sys/cpu"

// hasFastPopcount reports whether the CPU supports the POPCNT instruction,
// the condition under which the compiler intrinsifies math/bits.OnesCount32
// into a single instruction rather than a software fallback. DenseBitVec's
// build pass uses this to decide whether it's worth unrolling popcount over
// four blocks at a time (amortizing loop overhead) or just calling
// popcount32 block by block.
func hasFastPopcount() bool {
	return cpu.X86.HasPOPCNT
}

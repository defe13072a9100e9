// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !amd64
// +build !amd64

package succinct

// hasFastPopcount reports whether the current architecture has a hardware
// popcount the Go compiler is known to intrinsify. Off amd64 we have no
// cheap way to probe this, so we conservatively report false and always
// take the block-at-a-time path.
func hasFastPopcount() bool {
	return false
}

// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build debug
// +build debug

package succinct

// debugAsserts enables the consistency checks in debugAssert. Build with
// -tags debug to turn them on.
const debugAsserts = true

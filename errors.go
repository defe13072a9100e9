// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package succinct

import (
	"errors"
	"fmt"
)

// BitVecError represents an error raised while building or querying a bit
// vector. It includes contextual information about where the error
// occurred.
type BitVecError struct {
	Op    string // operation that failed (e.g. "rank1", "IntBuffer.push")
	Index int    // offending index/count, -1 if not applicable
	Err   error  // underlying sentinel error
}

func (e *BitVecError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("succinct: %s(%d): %v", e.Op, e.Index, e.Err)
	}
	return fmt.Sprintf("succinct: %s: %v", e.Op, e.Err)
}

func (e *BitVecError) Unwrap() error {
	return e.Err
}

// Sentinel errors, one per distinct failure kind a builder or query can hit.
var (
	// ErrIndexOutOfRange indicates an index argument fell outside its
	// required range.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrUniverseTooLarge indicates a universe size of 2^32 or more.
	ErrUniverseTooLarge = errors.New("universe size must be less than 2^32")

	// ErrNonMonotone indicates a builder received non-monotonically
	// increasing 1-bit positions where monotonicity is required.
	ErrNonMonotone = errors.New("non-monotone input")

	// ErrBitWidthExceeded indicates an IntBuffer value does not fit in its
	// configured bit width.
	ErrBitWidthExceeded = errors.New("value exceeds bit width")

	// ErrCapacityExceeded indicates a push past an IntBuffer's fixed
	// capacity.
	ErrCapacityExceeded = errors.New("push past capacity")

	// ErrSelectMiss indicates select1(n) or select0(n) was called with n
	// outside [0, count).
	ErrSelectMiss = errors.New("select index outside count")

	// ErrMultiplicityUnsupported indicates rank0/select0 was requested on
	// a multiset whose multiplicity exceeds 1 somewhere.
	ErrMultiplicityUnsupported = errors.New("rank0/select0 unsupported under multiplicity")

	// ErrSamplingParameter indicates a DenseBitVec sampling power fell
	// outside [5, 31].
	ErrSamplingParameter = errors.New("sampling parameter out of [5, 31]")
)

// wrapErr wraps err with operation context.
func wrapErr(op string, index int, err error) error {
	if err == nil {
		return nil
	}
	return &BitVecError{Op: op, Index: index, Err: err}
}

// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package succinct

import "math/bits"

// SparseBitVec is an Elias-Fano encoded bit vector: a sorted sequence of
// 1-bit positions split into a unary-coded high-bits DenseBitVec and a
// packed low-bits IntBuffer.
type SparseBitVec struct {
	universeSize    int
	numOnes         int
	numUniqueOnes   int
	hasMultiplicity bool
	lowBits         int // w
	high            *DenseBitVec
	low             *IntBuffer
}

// SparseBitVecBuilder accumulates 1-bit positions in non-decreasing order,
// admitting duplicates for multiplicity.
type SparseBitVecBuilder struct {
	universeSize int
	positions    []int
}

// NewSparseBitVecBuilder creates a builder over the given universe size.
func NewSparseBitVecBuilder(universeSize int) (*SparseBitVecBuilder, error) {
	if universeSize < 0 || universeSize >= (1<<32) {
		return nil, wrapErr("SparseBitVecBuilder.new", universeSize, ErrUniverseTooLarge)
	}
	return &SparseBitVecBuilder{universeSize: universeSize}, nil
}

// One records count (default 1) additional 1-bits at index, non-decreasing
// across calls.
func (b *SparseBitVecBuilder) One(index int, count ...int) error {
	n := 1
	if len(count) > 0 {
		n = count[0]
	}
	if index < 0 || index >= b.universeSize {
		return wrapErr("SparseBitVecBuilder.one", index, ErrIndexOutOfRange)
	}
	if n <= 0 {
		return nil
	}
	if len(b.positions) > 0 && index < b.positions[len(b.positions)-1] {
		return wrapErr("SparseBitVecBuilder.one", index, ErrNonMonotone)
	}
	for i := 0; i < n; i++ {
		b.positions = append(b.positions, index)
	}
	return nil
}

// lowBitWidth computes w = floor(log2(max(floor(universeSize/numOnes), 1))).
func lowBitWidth(universeSize, numOnes int) int {
	if numOnes == 0 {
		return 0
	}
	avgGap := universeSize / numOnes
	if avgGap < 1 {
		avgGap = 1
	}
	return bits.Len(uint(avgGap)) - 1
}

// Build freezes the builder into an immutable SparseBitVec.
func (b *SparseBitVecBuilder) Build() (*SparseBitVec, error) {
	numOnes := len(b.positions)
	unique := 0
	hasMulti := false
	for i, p := range b.positions {
		if i == 0 || p != b.positions[i-1] {
			unique++
		} else {
			hasMulti = true
		}
	}

	w := lowBitWidth(b.universeSize, numOnes)

	highLen := numOnes + (b.universeSize >> uint(w))
	highBuilder, err := NewDenseBitVecBuilder(highLen)
	if err != nil {
		return nil, err
	}
	low, err := NewIntBuffer(numOnes, w)
	if err != nil {
		return nil, err
	}

	mask := oneMask(w)
	for k, p := range b.positions {
		highIdx := k + (p >> uint(w))
		debugAssert(highIdx < highLen, "SparseBitVecBuilder.build", highIdx, ErrIndexOutOfRange)
		if err := highBuilder.One(highIdx); err != nil {
			return nil, err
		}
		if err := low.Push(uint32(p) & mask); err != nil {
			return nil, err
		}
	}
	high, err := highBuilder.Build()
	if err != nil {
		return nil, err
	}

	return &SparseBitVec{
		universeSize:    b.universeSize,
		numOnes:         numOnes,
		numUniqueOnes:   unique,
		hasMultiplicity: hasMulti,
		lowBits:         w,
		high:            high,
		low:             low,
	}, nil
}

func (s *SparseBitVec) UniverseSize() int    { return s.universeSize }
func (s *SparseBitVec) NumOnes() int         { return s.numOnes }
func (s *SparseBitVec) NumUniqueOnes() int   { return s.numUniqueOnes }
func (s *SparseBitVec) NumZeros() int        { return s.universeSize - s.numUniqueOnes }
func (s *SparseBitVec) NumUniqueZeros() int  { return s.universeSize - s.numUniqueOnes }
func (s *SparseBitVec) HasMultiplicity() bool { return s.hasMultiplicity }

// Rank1 locates the bucket containing i via the high bits, then runs a
// bucketed search over the low bits.
func (s *SparseBitVec) Rank1(i int) int {
	if s.numOnes == 0 {
		return 0
	}
	ci := clampIndex(i, s.universeSize)
	if ci == s.universeSize {
		return s.numOnes
	}

	w := uint(s.lowBits)
	q := ci >> w
	r := ci & int(oneMask(s.lowBits))

	lo := 0
	if q > 0 {
		if sel, ok := s.high.TrySelect0(q - 1); ok {
			lo = sel - (q - 1)
		} else {
			lo = s.numOnes
		}
	}
	hi := s.numOnes
	if sel, ok := s.high.TrySelect0(q); ok {
		hi = sel - q
	}
	if hi < lo {
		hi = lo
	}

	count := partitionPoint(hi-lo, func(k int) bool {
		v, _ := s.low.Get(lo + k)
		return int(v) < r
	})
	return lo + count
}

func (s *SparseBitVec) Rank0(i int) (int, error) {
	if s.hasMultiplicity {
		return 0, wrapErr("SparseBitVec.rank0", i, ErrMultiplicityUnsupported)
	}
	return defaultRank0(s.universeSize, s.Rank1, i), nil
}

// TrySelect1 recovers the n-th position by combining the high-bits quotient
// with the stored low bits.
func (s *SparseBitVec) TrySelect1(n int) (int, bool) {
	if n < 0 || n >= s.numOnes {
		return 0, false
	}
	h, ok := s.high.TrySelect1(n)
	if !ok {
		return 0, false
	}
	quotient, err := s.high.Rank0(h)
	if err != nil {
		return 0, false
	}
	low, err := s.low.Get(n)
	if err != nil {
		return 0, false
	}
	return (quotient << uint(s.lowBits)) | int(low), true
}

func (s *SparseBitVec) Select1(n int) (int, error) {
	return selectOrErr("SparseBitVec.select1", n, s.TrySelect1)
}

func (s *SparseBitVec) TrySelect0(n int) (int, bool) {
	if s.hasMultiplicity {
		return 0, false
	}
	return defaultTrySelect(s.universeSize, s.NumZeros(), func(i int) int {
		return defaultRank0(s.universeSize, s.Rank1, i)
	}, n)
}

func (s *SparseBitVec) Select0(n int) (int, error) {
	if s.hasMultiplicity {
		return 0, wrapErr("SparseBitVec.select0", n, ErrMultiplicityUnsupported)
	}
	return selectOrErr("SparseBitVec.select0", n, s.TrySelect0)
}

func (s *SparseBitVec) Get(i int) int {
	return defaultGet(s.Rank1, i)
}

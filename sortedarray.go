// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package succinct

// SortedArrayBitVec is the reference bit-vector implementation: a sorted
// list of 1-bit positions, admitting duplicates (multiplicity). Slow but
// trivially correct; used by the test suite as ground truth for every
// other representation.
type SortedArrayBitVec struct {
	positions       []int
	universeSize    int
	numUniqueOnes   int
	hasMultiplicity bool
}

// SortedArrayBitVecBuilder accumulates 1-bit positions in non-decreasing
// order.
type SortedArrayBitVecBuilder struct {
	universeSize int
	positions    []int
}

// NewSortedArrayBitVecBuilder creates a builder over the given universe
// size.
func NewSortedArrayBitVecBuilder(universeSize int) (*SortedArrayBitVecBuilder, error) {
	if universeSize < 0 || universeSize >= (1<<32) {
		return nil, wrapErr("SortedArrayBitVecBuilder.new", universeSize, ErrUniverseTooLarge)
	}
	return &SortedArrayBitVecBuilder{universeSize: universeSize}, nil
}

// One records count (default 1) additional 1-bits at index. index must be
// non-decreasing across calls relative to the builder's prior insertions.
func (b *SortedArrayBitVecBuilder) One(index int, count ...int) error {
	n := 1
	if len(count) > 0 {
		n = count[0]
	}
	if index < 0 || index >= b.universeSize {
		return wrapErr("SortedArrayBitVecBuilder.one", index, ErrIndexOutOfRange)
	}
	if n <= 0 {
		return nil
	}
	if len(b.positions) > 0 && index < b.positions[len(b.positions)-1] {
		return wrapErr("SortedArrayBitVecBuilder.one", index, ErrNonMonotone)
	}
	for i := 0; i < n; i++ {
		b.positions = append(b.positions, index)
	}
	return nil
}

// Build freezes the builder into an immutable SortedArrayBitVec.
func (b *SortedArrayBitVecBuilder) Build() *SortedArrayBitVec {
	unique := 0
	hasMulti := false
	for i, p := range b.positions {
		if i == 0 || p != b.positions[i-1] {
			unique++
		} else {
			hasMulti = true
		}
	}
	return &SortedArrayBitVec{
		positions:       b.positions,
		universeSize:    b.universeSize,
		numUniqueOnes:   unique,
		hasMultiplicity: hasMulti,
	}
}

func (s *SortedArrayBitVec) UniverseSize() int    { return s.universeSize }
func (s *SortedArrayBitVec) NumOnes() int         { return len(s.positions) }
func (s *SortedArrayBitVec) NumUniqueOnes() int   { return s.numUniqueOnes }
func (s *SortedArrayBitVec) NumZeros() int        { return s.universeSize - s.numUniqueOnes }
func (s *SortedArrayBitVec) NumUniqueZeros() int   { return s.universeSize - s.numUniqueOnes }
func (s *SortedArrayBitVec) HasMultiplicity() bool { return s.hasMultiplicity }

// Rank1 returns the number of 1-bits strictly before position i, counting
// multiplicity.
func (s *SortedArrayBitVec) Rank1(i int) int {
	ci := clampIndex(i, s.universeSize)
	return partitionPoint(len(s.positions), func(k int) bool {
		return s.positions[k] < ci
	})
}

func (s *SortedArrayBitVec) Rank0(i int) (int, error) {
	if s.hasMultiplicity {
		return 0, wrapErr("SortedArrayBitVec.rank0", i, ErrMultiplicityUnsupported)
	}
	return defaultRank0(s.universeSize, s.Rank1, i), nil
}

func (s *SortedArrayBitVec) TrySelect1(n int) (int, bool) {
	if n < 0 || n >= len(s.positions) {
		return 0, false
	}
	return s.positions[n], true
}

func (s *SortedArrayBitVec) Select1(n int) (int, error) {
	return selectOrErr("SortedArrayBitVec.select1", n, s.TrySelect1)
}

func (s *SortedArrayBitVec) TrySelect0(n int) (int, bool) {
	if s.hasMultiplicity {
		return 0, false
	}
	return defaultTrySelect(s.universeSize, s.NumZeros(), func(i int) int {
		return defaultRank0(s.universeSize, s.Rank1, i)
	}, n)
}

func (s *SortedArrayBitVec) Select0(n int) (int, error) {
	if s.hasMultiplicity {
		return 0, wrapErr("SortedArrayBitVec.select0", n, ErrMultiplicityUnsupported)
	}
	return selectOrErr("SortedArrayBitVec.select0", n, s.TrySelect0)
}

func (s *SortedArrayBitVec) Get(i int) int {
	return defaultGet(s.Rank1, i)
}

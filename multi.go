// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package succinct

// MultiBitVec composes two single-occupancy bit vectors to support
// repeated 1-bits: occupancy records each unique 1-bit position; multiplicity
// records, at the index of each unique occupancy, the cumulative count of
// occurrences through that occupancy.
type MultiBitVec struct {
	universeSize    int
	totalCount      int
	numUniqueOnes   int
	maxMultiplicity int
	occupancy       *SparseBitVec
	multiplicity    *SparseBitVec
}

type multiEntry struct {
	index, count int
}

// MultiBitVecBuilder accumulates (index, count) insertions in non-decreasing
// index order, merging repeated calls at the same index.
type MultiBitVecBuilder struct {
	universeSize int
	entries      []multiEntry
}

// NewMultiBitVecBuilder creates a builder over the given universe size.
func NewMultiBitVecBuilder(universeSize int) (*MultiBitVecBuilder, error) {
	if universeSize < 0 || universeSize >= (1<<32) {
		return nil, wrapErr("MultiBitVecBuilder.new", universeSize, ErrUniverseTooLarge)
	}
	return &MultiBitVecBuilder{universeSize: universeSize}, nil
}

// One records count (default 1) additional occurrences at index, merging
// into the current entry when index repeats the previous call's index.
func (b *MultiBitVecBuilder) One(index int, count ...int) error {
	n := 1
	if len(count) > 0 {
		n = count[0]
	}
	if index < 0 || index >= b.universeSize {
		return wrapErr("MultiBitVecBuilder.one", index, ErrIndexOutOfRange)
	}
	if n <= 0 {
		return nil
	}
	if last := len(b.entries) - 1; last >= 0 {
		if index < b.entries[last].index {
			return wrapErr("MultiBitVecBuilder.one", index, ErrNonMonotone)
		}
		if index == b.entries[last].index {
			b.entries[last].count += n
			return nil
		}
	}
	b.entries = append(b.entries, multiEntry{index: index, count: n})
	return nil
}

// Build freezes the builder into an immutable MultiBitVec.
func (b *MultiBitVecBuilder) Build() (*MultiBitVec, error) {
	occBuilder, err := NewSparseBitVecBuilder(b.universeSize)
	if err != nil {
		return nil, err
	}

	totalCount := 0
	maxMultiplicity := 0
	for _, e := range b.entries {
		if err := occBuilder.One(e.index); err != nil {
			return nil, err
		}
		totalCount += e.count
		if e.count > maxMultiplicity {
			maxMultiplicity = e.count
		}
	}
	numUniqueOnes := len(b.entries)

	multBuilder, err := NewSparseBitVecBuilder(totalCount + numUniqueOnes)
	if err != nil {
		return nil, err
	}
	cumCount := 0
	for _, e := range b.entries {
		cumCount += e.count
		if err := multBuilder.One(cumCount); err != nil {
			return nil, err
		}
	}

	occupancy, err := occBuilder.Build()
	if err != nil {
		return nil, err
	}
	multiplicity, err := multBuilder.Build()
	if err != nil {
		return nil, err
	}

	return &MultiBitVec{
		universeSize:    b.universeSize,
		totalCount:      totalCount,
		numUniqueOnes:   numUniqueOnes,
		maxMultiplicity: maxMultiplicity,
		occupancy:       occupancy,
		multiplicity:    multiplicity,
	}, nil
}

func (m *MultiBitVec) UniverseSize() int   { return m.universeSize }
func (m *MultiBitVec) NumOnes() int        { return m.totalCount }
func (m *MultiBitVec) NumUniqueOnes() int  { return m.numUniqueOnes }
func (m *MultiBitVec) NumZeros() int       { return m.universeSize - m.numUniqueOnes }
func (m *MultiBitVec) NumUniqueZeros() int { return m.universeSize - m.numUniqueOnes }
func (m *MultiBitVec) HasMultiplicity() bool {
	return m.maxMultiplicity > 1
}

// Rank1 computes rank1(i) = multiplicity.select1(occupancy.rank1(i) - 1).
func (m *MultiBitVec) Rank1(i int) int {
	q := m.occupancy.Rank1(i)
	if q == 0 {
		return 0
	}
	v, ok := m.multiplicity.TrySelect1(q - 1)
	if !ok {
		return 0
	}
	return v
}

func (m *MultiBitVec) Rank0(i int) (int, error) {
	if m.maxMultiplicity > 1 {
		return 0, wrapErr("MultiBitVec.rank0", i, ErrMultiplicityUnsupported)
	}
	return defaultRank0(m.universeSize, m.Rank1, i), nil
}

// TrySelect1 computes trySelect1(n) = occupancy.trySelect1(multiplicity.rank1(n+1)).
func (m *MultiBitVec) TrySelect1(n int) (int, bool) {
	if n < 0 || n >= m.totalCount {
		return 0, false
	}
	q := m.multiplicity.Rank1(n + 1)
	return m.occupancy.TrySelect1(q)
}

func (m *MultiBitVec) Select1(n int) (int, error) {
	return selectOrErr("MultiBitVec.select1", n, m.TrySelect1)
}

func (m *MultiBitVec) TrySelect0(n int) (int, bool) {
	return m.occupancy.TrySelect0(n)
}

func (m *MultiBitVec) Select0(n int) (int, error) {
	if m.maxMultiplicity > 1 {
		return 0, wrapErr("MultiBitVec.select0", n, ErrMultiplicityUnsupported)
	}
	return selectOrErr("MultiBitVec.select0", n, m.TrySelect0)
}

func (m *MultiBitVec) Get(i int) int {
	return defaultGet(m.Rank1, i)
}

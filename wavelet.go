// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package succinct

import "math/bits"

// waveletLevel holds one level of a WaveletMatrix: the bit vector splitting
// elements by that level's bit, the number of zeros it holds (the offset at
// which the "went right" elements begin), and the bit mask itself.
type waveletLevel struct {
	bv  *DenseBitVec
	nz  int
	bit uint32
}

// ranks returns the zero-count and one-count strictly before i at this
// level, the building block every wavelet-matrix query composes from.
func (lv *waveletLevel) ranks(i int) (zeros, ones int) {
	ones = lv.bv.Rank1(i)
	return i - ones, ones
}

// WaveletMatrix indexes a sequence of integer symbols in [0, maxSymbol] for
// rank/select/quantile/locate queries, built as a stack of per-level bit
// vectors.
type WaveletMatrix struct {
	numLevels int
	length    int
	maxSymbol uint32
	levels    []waveletLevel
}

// WaveletMatrixBuilder accumulates symbols in sequence order.
type WaveletMatrixBuilder struct {
	maxSymbol uint32
	values    []uint32
}

// NewWaveletMatrixBuilder creates a builder over symbols in [0, maxSymbol].
func NewWaveletMatrixBuilder(maxSymbol uint32) *WaveletMatrixBuilder {
	return &WaveletMatrixBuilder{maxSymbol: maxSymbol}
}

// Push appends a symbol to the sequence.
func (b *WaveletMatrixBuilder) Push(v uint32) error {
	if v > b.maxSymbol {
		return wrapErr("WaveletMatrixBuilder.push", int(v), ErrBitWidthExceeded)
	}
	b.values = append(b.values, v)
	return nil
}

func numLevelsFor(maxSymbol uint32) int {
	n := bits.Len(uint(maxSymbol))
	if n < 1 {
		n = 1
	}
	return n
}

// reverseLowBits reverses the low n bits of x, mapping a wavelet-tree node's
// natural (tree-order) id at a given level to its matrix-order position, or
// back again since the permutation is an involution.
func reverseLowBits(x uint32, n int) uint32 {
	var result uint32
	for i := 0; i < n; i++ {
		result = (result << 1) | (x & 1)
		x >>= 1
	}
	return result
}

// Build freezes the builder into an immutable WaveletMatrix, choosing the
// small- or large-alphabet construction depending on which uses less space
// for this alphabet and sequence length.
func (b *WaveletMatrixBuilder) Build() (*WaveletMatrix, error) {
	n := len(b.values)
	numLevels := numLevelsFor(b.maxSymbol)

	var levels []waveletLevel
	var err error
	if n >= (1 << uint(numLevels)) {
		levels, err = b.buildSmallAlphabet(numLevels)
	} else {
		levels, err = b.buildLargeAlphabet(numLevels)
	}
	if err != nil {
		return nil, err
	}

	return &WaveletMatrix{
		numLevels: numLevels,
		length:    n,
		maxSymbol: b.maxSymbol,
		levels:    levels,
	}, nil
}

// buildLargeAlphabet builds a level at a time via repeated stable partition
// of a working copy of the input, space proportional to input length rather
// than alphabet size.
func (b *WaveletMatrixBuilder) buildLargeAlphabet(numLevels int) ([]waveletLevel, error) {
	n := len(b.values)
	maxLevel := numLevels - 1

	working := make([]uint32, n)
	copy(working, b.values)

	levels := make([]waveletLevel, numLevels)
	for l := 0; l < numLevels; l++ {
		bitMask := uint32(1) << uint(maxLevel-l)
		bv, err := stablePartitionBit(working, bitMask)
		if err != nil {
			return nil, err
		}
		denseBv := buildDenseBitVec(maybePadded(bv, paddingThreshold), n, DefaultRankSamplesPow2, DefaultSelectSamplesPow2)
		levels[l] = waveletLevel{bv: denseBv, nz: denseBv.NumZeros(), bit: bitMask}
	}
	return levels, nil
}

// buildSmallAlphabet is a histogram-driven build: a per-symbol histogram,
// successively halved into per-level node counts, gives each node's
// matrix-order starting offset so the input can be scattered into each
// level's bitmap in one pass, without ever materializing a reordered copy
// of the input (space proportional to the alphabet).
func (b *WaveletMatrixBuilder) buildSmallAlphabet(numLevels int) ([]waveletLevel, error) {
	n := len(b.values)
	maxLevel := numLevels - 1
	alphabetSize := 1 << uint(numLevels)

	hist := make([]int, alphabetSize)
	for _, v := range b.values {
		hist[v]++
	}

	// histByLevel[l] holds, for each of the 2^l tree-order node ids at
	// level l, the count of input elements descending into that node.
	histByLevel := make([][]int, numLevels+1)
	histByLevel[numLevels] = hist
	for l := numLevels - 1; l >= 0; l-- {
		prev := histByLevel[l+1]
		cur := make([]int, 1<<uint(l))
		for i := range cur {
			cur[i] = prev[2*i] + prev[2*i+1]
		}
		histByLevel[l] = cur
	}

	levels := make([]waveletLevel, numLevels)
	for l := 0; l < numLevels; l++ {
		shift := maxLevel - l
		bitMask := uint32(1) << uint(shift)
		numNodes := 1 << uint(l)
		nodeCount := histByLevel[l]

		cursor := make([]int, numNodes)
		pos := 0
		for matrixIdx := 0; matrixIdx < numNodes; matrixIdx++ {
			nodeID := int(reverseLowBits(uint32(matrixIdx), l))
			cursor[nodeID] = pos
			pos += nodeCount[nodeID]
		}

		bv, err := NewBitBuffer(n)
		if err != nil {
			return nil, err
		}
		for _, v := range b.values {
			nodeID := int(v >> uint(shift+1))
			p := cursor[nodeID]
			if (v>>uint(shift))&1 == 1 {
				bv.SetOne(p)
			}
			cursor[nodeID] = p + 1
		}

		denseBv := buildDenseBitVec(maybePadded(bv, paddingThreshold), n, DefaultRankSamplesPow2, DefaultSelectSamplesPow2)
		levels[l] = waveletLevel{bv: denseBv, nz: denseBv.NumZeros(), bit: bitMask}
	}
	return levels, nil
}

func (w *WaveletMatrix) Len() int          { return w.length }
func (w *WaveletMatrix) MaxSymbol() uint32 { return w.maxSymbol }
func (w *WaveletMatrix) NumLevels() int    { return w.numLevels }

// locate descends levels 0..numLevels-ignoreBits-1, narrowing [s,e) to
// sym's range at the bottom level and accumulating the count of elements
// strictly smaller than sym along the way.
func (w *WaveletMatrix) locate(sym uint32, s, e, ignoreBits int) (int, int, int) {
	precedingCount := 0
	limit := w.numLevels - ignoreBits
	for l := 0; l < limit; l++ {
		lv := &w.levels[l]
		s0, s1 := lv.ranks(s)
		e0, e1 := lv.ranks(e)
		if sym&lv.bit == 0 {
			s, e = s0, e0
		} else {
			precedingCount += e0 - s0
			s, e = lv.nz+s1, lv.nz+e1
		}
	}
	return s, e, precedingCount
}

// Count returns the number of occurrences of sym within [s, e).
func (w *WaveletMatrix) Count(sym uint32, s, e int) int {
	bs, be, _ := w.locate(sym, s, e, 0)
	return be - bs
}

// PrecedingCount returns the number of elements within [s, e) strictly less
// than sym.
func (w *WaveletMatrix) PrecedingCount(sym uint32, s, e int) int {
	_, _, pc := w.locate(sym, s, e, 0)
	return pc
}

// Quantile returns the (k+1)-th smallest symbol in [s, e) (0-indexed k) and
// its occurrence count within the range.
func (w *WaveletMatrix) Quantile(k, s, e int) (uint32, int) {
	var symbol uint32
	for l := 0; l < w.numLevels; l++ {
		lv := &w.levels[l]
		s0, s1 := lv.ranks(s)
		e0, e1 := lv.ranks(e)
		leftCount := e0 - s0
		if k < leftCount {
			s, e = s0, e0
		} else {
			k -= leftCount
			symbol |= lv.bit
			s, e = lv.nz+s1, lv.nz+e1
		}
	}
	return symbol, e - s
}

// selectUpwards bubbles a bottom-level index back up to the top level,
// skipping the bottom-most ignoreBits levels.
func (w *WaveletMatrix) selectUpwards(index, ignoreBits int) (int, error) {
	if ignoreBits >= w.numLevels {
		return index, nil
	}
	for l := w.numLevels - ignoreBits - 1; l >= 0; l-- {
		lv := &w.levels[l]
		if index < lv.nz {
			v, err := lv.bv.Select0(index)
			if err != nil {
				return 0, err
			}
			index = v
		} else {
			v, err := lv.bv.Select1(index - lv.nz)
			if err != nil {
				return 0, err
			}
			index = v
		}
	}
	return index, nil
}

// Select returns the position of the k-th (0-indexed) occurrence of sym
// within [s, e), ignoring the bottom-most ignoreBits levels.
func (w *WaveletMatrix) Select(sym uint32, k, s, e, ignoreBits int) (int, bool, error) {
	bs, be, _ := w.locate(sym, s, e, ignoreBits)
	if be-bs <= k {
		return 0, false, nil
	}
	idx, err := w.selectUpwards(bs+k, ignoreBits)
	if err != nil {
		return 0, false, err
	}
	return idx, true, nil
}

// SelectFromEnd is Select counting from the end of the range.
func (w *WaveletMatrix) SelectFromEnd(sym uint32, k, s, e, ignoreBits int) (int, bool, error) {
	bs, be, _ := w.locate(sym, s, e, ignoreBits)
	if be-bs <= k {
		return 0, false, nil
	}
	idx, err := w.selectUpwards(be-k-1, ignoreBits)
	if err != nil {
		return 0, false, err
	}
	return idx, true, nil
}

// Get returns the symbol at position i.
func (w *WaveletMatrix) Get(i int) (uint32, error) {
	var symbol uint32
	idx := i
	for l := 0; l < w.numLevels; l++ {
		lv := &w.levels[l]
		if lv.bv.Get(idx) == 0 {
			r0, err := lv.bv.Rank0(idx)
			if err != nil {
				return 0, err
			}
			idx = r0
		} else {
			symbol |= lv.bit
			idx = lv.nz + lv.bv.Rank1(idx)
		}
	}
	return symbol, nil
}

// SimpleMajority returns the symbol occupying more than half of [s, e), if
// one exists.
func (w *WaveletMatrix) SimpleMajority(s, e int) (uint32, bool) {
	length := e - s
	if length <= 0 {
		return 0, false
	}
	sym, count := w.Quantile(length/2, s, e)
	if count > length/2 {
		return sym, true
	}
	return 0, false
}

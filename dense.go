// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package succinct

// DenseBitVec is a two-level sampled rank/select index over a
// (Padded)BitBuffer, in the style of Navarro-Providel. It is the central
// structure of the package: every composite representation (SparseBitVec,
// RLEBitVec, WaveletMatrix) is ultimately built from one or more
// DenseBitVecs.
type DenseBitVec struct {
	buf          blockBuffer
	universeSize int
	numOnes      int
	numZeros     int

	rankPow2   int
	selectPow2 int

	rank1Samples   []int
	select1Samples []uint32
	select0Samples []uint32
}

// DenseBitVecOptions configures the sampling density of a DenseBitVec.
// Both fields must be in [5, 31]; zero value means "use the default".
type DenseBitVecOptions struct {
	RankSamplesPow2   int
	SelectSamplesPow2 int
}

// Default sampling rates used when DenseBitVecOptions isn't supplied.
const (
	DefaultRankSamplesPow2   = 10
	DefaultSelectSamplesPow2 = 10

	// paddingThreshold bounds the fraction of a buffer's blocks that may
	// remain stored after trimming homogeneous padding; above it
	// DenseBitVec.Build keeps the untrimmed buffer.
	paddingThreshold = 0.25
)

// DenseBitVecBuilder accumulates 1-bits over a fixed universe size.
type DenseBitVecBuilder struct {
	buf          *BitBuffer
	universeSize int
}

// NewDenseBitVecBuilder creates a builder over universeSize bits, all
// initially zero.
func NewDenseBitVecBuilder(universeSize int) (*DenseBitVecBuilder, error) {
	buf, err := NewBitBuffer(universeSize)
	if err != nil {
		return nil, err
	}
	return &DenseBitVecBuilder{buf: buf, universeSize: universeSize}, nil
}

// One sets count (default 1) 1-bits at index. DenseBitVec has no
// multiplicity of its own, so count greater than 1 is rejected; repeated
// calls at the same index are legal and idempotent.
func (b *DenseBitVecBuilder) One(index int, count ...int) error {
	n := 1
	if len(count) > 0 {
		n = count[0]
	}
	if index < 0 || index >= b.universeSize {
		return wrapErr("DenseBitVecBuilder.one", index, ErrIndexOutOfRange)
	}
	if n > 1 {
		return wrapErr("DenseBitVecBuilder.one", n, ErrMultiplicityUnsupported)
	}
	if n == 1 {
		b.buf.SetOne(index)
	}
	return nil
}

// Build freezes the builder into an immutable DenseBitVec.
func (b *DenseBitVecBuilder) Build(opts ...DenseBitVecOptions) (*DenseBitVec, error) {
	rankPow2 := DefaultRankSamplesPow2
	selectPow2 := DefaultSelectSamplesPow2
	if len(opts) > 0 {
		if opts[0].RankSamplesPow2 != 0 {
			rankPow2 = opts[0].RankSamplesPow2
		}
		if opts[0].SelectSamplesPow2 != 0 {
			selectPow2 = opts[0].SelectSamplesPow2
		}
	}
	if rankPow2 < 5 || rankPow2 > 31 {
		return nil, wrapErr("DenseBitVecBuilder.build", rankPow2, ErrSamplingParameter)
	}
	if selectPow2 < 5 || selectPow2 > 31 {
		return nil, wrapErr("DenseBitVecBuilder.build", selectPow2, ErrSamplingParameter)
	}

	buf := maybePadded(b.buf, paddingThreshold)
	return buildDenseBitVec(buf, b.universeSize, rankPow2, selectPow2), nil
}

// buildDenseBitVec does the one-pass-per-metric construction shared by
// DenseBitVecBuilder.Build (which SparseBitVec, and through it RLEBitVec,
// uses for its unary high bits) and by WaveletMatrix's per-level builds.
func buildDenseBitVec(buf blockBuffer, universeSize, rankPow2, selectPow2 int) *DenseBitVec {
	numBlocks := buf.NumBlocks()
	basicBlocksPerRank1Sample := 1 << uint(rankPow2-5)

	validBitsInBlock := func(blockIdx int) int {
		if blockIdx < numBlocks-1 {
			return wordBits
		}
		remaining := universeSize - blockIdx*wordBits
		if remaining < 0 {
			return 0
		}
		if remaining > wordBits {
			return wordBits
		}
		return remaining
	}

	// First pass: total ones/zeros, needed to bound select sampling. With a
	// hardware popcount the four-at-a-time unroll amortizes loop overhead;
	// without one there's nothing to amortize, so fall back to one block
	// at a time.
	totalOnes := 0
	if hasFastPopcount() {
		i := 0
		for ; i+4 <= numBlocks; i += 4 {
			totalOnes += popcount32(buf.GetBlock(i) & oneMask(validBitsInBlock(i)))
			totalOnes += popcount32(buf.GetBlock(i+1) & oneMask(validBitsInBlock(i+1)))
			totalOnes += popcount32(buf.GetBlock(i+2) & oneMask(validBitsInBlock(i+2)))
			totalOnes += popcount32(buf.GetBlock(i+3) & oneMask(validBitsInBlock(i+3)))
		}
		for ; i < numBlocks; i++ {
			totalOnes += popcount32(buf.GetBlock(i) & oneMask(validBitsInBlock(i)))
		}
	} else {
		for i := 0; i < numBlocks; i++ {
			totalOnes += popcount32(buf.GetBlock(i) & oneMask(validBitsInBlock(i)))
		}
	}
	totalZeros := universeSize - totalOnes

	// Second pass: build the sampled indexes.
	rank1Samples := make([]int, 0, numBlocks/basicBlocksPerRank1Sample+1)
	var select1Samples, select0Samples []uint32

	cumulativeBits := 0
	cumulativeOnes := 0
	cumulativeZeros := 0
	onesThreshold := 0
	zerosThreshold := 0

	for blockIdx := 0; blockIdx < numBlocks; blockIdx++ {
		if blockIdx%basicBlocksPerRank1Sample == 0 {
			rank1Samples = append(rank1Samples, cumulativeOnes)
		}

		valid := validBitsInBlock(blockIdx)
		block := buf.GetBlock(blockIdx) & oneMask(valid)
		blockOnes := popcount32(block)
		blockZeros := valid - blockOnes

		for onesThreshold < totalOnes && cumulativeOnes+blockOnes > onesThreshold {
			correction := onesThreshold - cumulativeOnes
			select1Samples = append(select1Samples, uint32(cumulativeBits)|uint32(correction))
			onesThreshold += 1 << uint(selectPow2)
		}
		for zerosThreshold < totalZeros && cumulativeZeros+blockZeros > zerosThreshold {
			correction := zerosThreshold - cumulativeZeros
			select0Samples = append(select0Samples, uint32(cumulativeBits)|uint32(correction))
			zerosThreshold += 1 << uint(selectPow2)
		}

		cumulativeOnes += blockOnes
		cumulativeZeros += blockZeros
		cumulativeBits += wordBits
	}

	return &DenseBitVec{
		buf:            buf,
		universeSize:   universeSize,
		numOnes:        totalOnes,
		numZeros:       totalZeros,
		rankPow2:       rankPow2,
		selectPow2:     selectPow2,
		rank1Samples:   rank1Samples,
		select1Samples: select1Samples,
		select0Samples: select0Samples,
	}
}

func (d *DenseBitVec) UniverseSize() int    { return d.universeSize }
func (d *DenseBitVec) NumOnes() int         { return d.numOnes }
func (d *DenseBitVec) NumZeros() int        { return d.numZeros }
func (d *DenseBitVec) NumUniqueOnes() int   { return d.numOnes }
func (d *DenseBitVec) NumUniqueZeros() int  { return d.numZeros }
func (d *DenseBitVec) HasMultiplicity() bool { return false }

// Rank1 returns the number of 1-bits strictly before position i.
func (d *DenseBitVec) Rank1(i int) int {
	if i <= 0 {
		return 0
	}
	if i >= d.universeSize {
		return d.numOnes
	}

	sampleIdx := i >> uint(d.rankPow2)
	count := d.rank1Samples[sampleIdx]
	b0 := sampleIdx << uint(d.rankPow2-5)
	target := blockIndex(i)

	for b := b0; b < target; b++ {
		count += popcount32(d.buf.GetBlock(b))
	}
	lastBlock := d.buf.GetBlock(target) & oneMask(blockBitOffset(i))
	count += popcount32(lastBlock)
	return count
}

func (d *DenseBitVec) Rank0(i int) (int, error) {
	return defaultRank0(d.universeSize, d.Rank1, i), nil
}

// TrySelect1 sampled select algorithm.
func (d *DenseBitVec) TrySelect1(n int) (int, bool) {
	if n < 0 || n >= d.numOnes {
		return 0, false
	}

	k := n >> uint(d.selectPow2)
	sample := d.select1Samples[k]
	basicBlockIndex := int(sample >> 5)
	correction := int(sample & 31)
	threshold := k << uint(d.selectPow2)
	count := threshold - correction

	for {
		rankBucket := (basicBlockIndex << 5) >> uint(d.rankPow2)
		nextBucket := rankBucket + 1
		if nextBucket >= len(d.rank1Samples) {
			break
		}
		nextCount := d.rank1Samples[nextBucket]
		if nextCount > n {
			break
		}
		count = nextCount
		basicBlockIndex = nextBucket << uint(d.rankPow2-5)
	}

	for {
		block := d.buf.GetBlock(basicBlockIndex)
		bc := popcount32(block)
		if count+bc <= n {
			count += bc
			basicBlockIndex++
			continue
		}
		return basicBlockIndex*wordBits + select1InWord(block, n-count), true
	}
}

func (d *DenseBitVec) Select1(n int) (int, error) {
	return selectOrErr("DenseBitVec.select1", n, d.TrySelect1)
}

// TrySelect0 mirrors TrySelect1, operating over the complement of each
// block and the zeros-sample array.
func (d *DenseBitVec) TrySelect0(n int) (int, bool) {
	if n < 0 || n >= d.numZeros {
		return 0, false
	}

	k := n >> uint(d.selectPow2)
	sample := d.select0Samples[k]
	basicBlockIndex := int(sample >> 5)
	correction := int(sample & 31)
	threshold := k << uint(d.selectPow2)
	count := threshold - correction

	for {
		rankBucket := (basicBlockIndex << 5) >> uint(d.rankPow2)
		nextBucket := rankBucket + 1
		if nextBucket >= len(d.rank1Samples) {
			break
		}
		bitsAtBucket := nextBucket << uint(d.rankPow2)
		nextCount := bitsAtBucket - d.rank1Samples[nextBucket]
		if nextCount > n {
			break
		}
		count = nextCount
		basicBlockIndex = nextBucket << uint(d.rankPow2-5)
	}

	for {
		block := ^d.buf.GetBlock(basicBlockIndex)
		bc := popcount32(block)
		if count+bc <= n {
			count += bc
			basicBlockIndex++
			continue
		}
		return basicBlockIndex*wordBits + select1InWord(block, n-count), true
	}
}

func (d *DenseBitVec) Select0(n int) (int, error) {
	return selectOrErr("DenseBitVec.select0", n, d.TrySelect0)
}

func (d *DenseBitVec) Get(i int) int {
	return defaultGet(d.Rank1, i)
}

// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package succinct

// PaddedBitBuffer is an immutable, read-only view over a BitBuffer that
// trims a block-aligned run of identical blocks (all zero or all one) from
// each end, saving memory for buffers with long homogeneous runs at their
// endpoints.
type PaddedBitBuffer struct {
	left         int      // number of leading pad blocks
	stored       []uint32 // the middle, as-is
	numBlocks    int      // total block count, == left + len(stored) + right pad blocks
	padWord      uint32   // 0 or ^uint32(0)
	universeSize int
}

// UniverseSize returns the logical bit length of the buffer.
func (p *PaddedBitBuffer) UniverseSize() int { return p.universeSize }

// NumBlocks returns the total (unpadded-equivalent) block count.
func (p *PaddedBitBuffer) NumBlocks() int { return p.numBlocks }

// GetBlock returns the k-th 32-bit block, reconstructing pad blocks
// outside the stored middle region.
func (p *PaddedBitBuffer) GetBlock(k int) uint32 {
	if k < p.left || k >= p.left+len(p.stored) {
		return p.padWord
	}
	return p.stored[k-p.left]
}

// Get returns the bit at index i, 0 or 1.
func (p *PaddedBitBuffer) Get(i int) int {
	return int((p.GetBlock(blockIndex(i)) >> uint(blockBitOffset(i))) & 1)
}

// maybePadded finds the longest leading and trailing run of blocks equal
// to a single pad
// word, keeping whichever of {zero, one} padding yields fewer stored
// blocks (ties favor zero padding), and returns a PaddedBitBuffer view if
// the surviving middle fits within threshold*numBlocks blocks. Otherwise it
// returns the original BitBuffer unchanged.
func maybePadded(b *BitBuffer, threshold float64) blockBuffer {
	n := b.NumBlocks()
	if n == 0 {
		return b
	}

	zeroLeft, zeroRight := padRun(b, 0)
	oneLeft, oneRight := padRun(b, ^uint32(0))

	zeroStored := n - zeroLeft - zeroRight
	oneStored := n - oneLeft - oneRight

	padWord := uint32(0)
	left, right := zeroLeft, zeroRight
	if oneStored < zeroStored {
		padWord = ^uint32(0)
		left, right = oneLeft, oneRight
	}

	storedLen := n - left - right
	if float64(storedLen) > threshold*float64(n) {
		return b
	}

	stored := make([]uint32, storedLen)
	copy(stored, b.blocks[left:left+storedLen])

	return &PaddedBitBuffer{
		left:         left,
		stored:       stored,
		numBlocks:    n,
		padWord:      padWord,
		universeSize: b.universeSize,
	}
}

// padRun returns the count of leading and trailing blocks of b equal to
// pad.
func padRun(b *BitBuffer, pad uint32) (left, right int) {
	n := b.NumBlocks()
	for left < n && b.blocks[left] == pad {
		left++
	}
	if left == n {
		// Entirely pad; everything is both leading and trailing, but we
		// must not double count: treat it as fully left-padded.
		return n, 0
	}
	for right < n-left && b.blocks[n-1-right] == pad {
		right++
	}
	return left, right
}

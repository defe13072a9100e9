// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package succinct

// RLEBitVec is a run-length bit vector: a sequence of "01-runs" (z_i zeros
// followed by o_i ones) stored as two SparseBitVecs over cumulative counts.
// It does not admit multiplicity.
type RLEBitVec struct {
	universeSize int
	numOnes      int
	numZeros     int
	z            *SparseBitVec // cumulative zero counts after each run
	zo           *SparseBitVec // cumulative zero+one counts after each run
}

type rleRun struct {
	zeros, ones int
}

// RLEBitVecBuilder accumulates 01-runs, coalescing adjacent runs as they arrive.
type RLEBitVecBuilder struct {
	runs []rleRun
}

// NewRLEBitVecBuilder creates an empty run builder.
func NewRLEBitVecBuilder() *RLEBitVecBuilder {
	return &RLEBitVecBuilder{}
}

// Run appends a (zeros, ones) run. A run with no zeros is merged into the
// previous run's ones; a run with no ones is merged into the previous run
// only when that run holds zeros alone. Empty runs are silently ignored.
func (b *RLEBitVecBuilder) Run(zeros, ones int) error {
	if zeros < 0 || ones < 0 {
		return wrapErr("RLEBitVecBuilder.run", -1, ErrIndexOutOfRange)
	}
	if zeros == 0 && ones == 0 {
		return nil
	}
	if zeros == 0 {
		if len(b.runs) == 0 {
			b.runs = append(b.runs, rleRun{0, ones})
		} else {
			b.runs[len(b.runs)-1].ones += ones
		}
		return nil
	}
	if ones == 0 {
		if n := len(b.runs); n > 0 && b.runs[n-1].ones == 0 {
			b.runs[n-1].zeros += zeros
		} else {
			b.runs = append(b.runs, rleRun{zeros, 0})
		}
		return nil
	}
	b.runs = append(b.runs, rleRun{zeros, ones})
	return nil
}

// Build freezes the builder into an immutable RLEBitVec.
func (b *RLEBitVecBuilder) Build() (*RLEBitVec, error) {
	totalZeros, totalOnes := 0, 0
	for _, r := range b.runs {
		totalZeros += r.zeros
		totalOnes += r.ones
	}
	universeSize := totalZeros + totalOnes

	zBuilder, err := NewSparseBitVecBuilder(totalZeros + 1)
	if err != nil {
		return nil, err
	}
	zoBuilder, err := NewSparseBitVecBuilder(universeSize + 1)
	if err != nil {
		return nil, err
	}

	cumZ, cumZO := 0, 0
	for _, r := range b.runs {
		cumZ += r.zeros
		cumZO += r.zeros + r.ones
		debugAssert(cumZ <= totalZeros, "RLEBitVecBuilder.build", cumZ, ErrIndexOutOfRange)
		debugAssert(cumZO <= universeSize, "RLEBitVecBuilder.build", cumZO, ErrIndexOutOfRange)
		if err := zBuilder.One(cumZ); err != nil {
			return nil, err
		}
		if err := zoBuilder.One(cumZO); err != nil {
			return nil, err
		}
	}

	z, err := zBuilder.Build()
	if err != nil {
		return nil, err
	}
	zo, err := zoBuilder.Build()
	if err != nil {
		return nil, err
	}

	return &RLEBitVec{
		universeSize: universeSize,
		numOnes:      totalOnes,
		numZeros:     totalZeros,
		z:            z,
		zo:           zo,
	}, nil
}

func (r *RLEBitVec) UniverseSize() int    { return r.universeSize }
func (r *RLEBitVec) NumOnes() int         { return r.numOnes }
func (r *RLEBitVec) NumZeros() int        { return r.numZeros }
func (r *RLEBitVec) NumUniqueOnes() int   { return r.numOnes }
func (r *RLEBitVec) NumUniqueZeros() int  { return r.numZeros }
func (r *RLEBitVec) HasMultiplicity() bool { return false }

// selectOrZero returns sel(n) if n >= 0 and it exists, else 0. Run boundary
// arithmetic repeatedly needs this "or 0" fallback for the j-1 case.
func selectOrZero(bv *SparseBitVec, n int) int {
	if n < 0 {
		return 0
	}
	v, ok := bv.TrySelect1(n)
	if !ok {
		return 0
	}
	return v
}

// Rank1 locates the run containing i and adjusts for the zeros/ones split
// within that run.
func (r *RLEBitVec) Rank1(i int) int {
	if i <= 0 {
		return 0
	}
	if i >= r.universeSize {
		return r.numOnes
	}

	j := r.zo.Rank1(i)
	numCumZeros := selectOrZero(r.z, j)
	numPrecZeros := selectOrZero(r.z, j-1)
	blockStart := selectOrZero(r.zo, j-1)
	numPrecOnes := blockStart - numPrecZeros
	onesStart := blockStart + (numCumZeros - numPrecZeros)

	delta := i - onesStart
	if delta < 0 {
		delta = 0
	}
	return numPrecOnes + delta
}

func (r *RLEBitVec) Rank0(i int) (int, error) {
	return defaultRank0(r.universeSize, r.Rank1, i), nil
}

// TrySelect1 binary searches for the run containing the n-th one, then
// offsets into it.
func (r *RLEBitVec) TrySelect1(n int) (int, bool) {
	if n < 0 || n >= r.numOnes {
		return 0, false
	}
	numRuns := r.z.NumOnes()
	j := partitionPoint(numRuns, func(k int) bool {
		zo, _ := r.zo.TrySelect1(k)
		z, _ := r.z.TrySelect1(k)
		return zo-z <= n
	})
	zj, ok := r.z.TrySelect1(j)
	if !ok {
		return 0, false
	}
	return zj + n, true
}

func (r *RLEBitVec) Select1(n int) (int, error) {
	return selectOrErr("RLEBitVec.select1", n, r.TrySelect1)
}

// TrySelect0 locates the run containing the n-th zero via the cumulative
// zero-counts index.
func (r *RLEBitVec) TrySelect0(n int) (int, bool) {
	if n < 0 || n >= r.numZeros {
		return 0, false
	}
	j := r.z.Rank1(n + 1)
	if j == 0 {
		return n, true
	}
	zoPrev := selectOrZero(r.zo, j-1)
	zPrev := selectOrZero(r.z, j-1)
	return zoPrev + (n - zPrev), true
}

func (r *RLEBitVec) Select0(n int) (int, error) {
	return selectOrErr("RLEBitVec.select0", n, r.TrySelect0)
}

func (r *RLEBitVec) Get(i int) int {
	return defaultGet(r.Rank1, i)
}

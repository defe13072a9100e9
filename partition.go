// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package succinct

// stablePartitionBit stably partitions values by bitMask: elements whose
// bitMask bit is 0 are compacted in place (preserving order), elements whose
// bit is 1 are appended afterward (also preserving order), borrowing a
// scratch buffer from the level-scratch pool rather than allocating fresh
// each level. It returns a BitBuffer recording, for each original index in
// values' pre-partition order, whether that element went right.
func stablePartitionBit(values []uint32, bitMask uint32) (*BitBuffer, error) {
	n := len(values)
	bv, err := NewBitBuffer(n)
	if err != nil {
		return nil, err
	}

	ones := getLevelScratch(n)
	writeIdx := 0
	for i, v := range values {
		if v&bitMask != 0 {
			bv.SetOne(i)
			ones = append(ones, v)
		} else {
			values[writeIdx] = v
			writeIdx++
		}
	}
	copy(values[writeIdx:], ones)
	putLevelScratch(ones)

	return bv, nil
}

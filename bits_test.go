package succinct

import "testing"

func TestOneMask(t *testing.T) {
	cases := []struct {
		n    int
		want uint32
	}{
		{0, 0},
		{-3, 0},
		{1, 1},
		{4, 0xf},
		{31, 0x7fffffff},
		{32, 0xffffffff},
		{40, 0xffffffff},
	}
	for _, c := range cases {
		if got := oneMask(c.n); got != c.want {
			t.Errorf("oneMask(%d) = %#x, want %#x", c.n, got, c.want)
		}
	}
}

func TestBlockIndexAndOffset(t *testing.T) {
	cases := []struct {
		i, idx, off int
	}{
		{0, 0, 0},
		{31, 0, 31},
		{32, 1, 0},
		{63, 1, 31},
		{64, 2, 0},
	}
	for _, c := range cases {
		if got := blockIndex(c.i); got != c.idx {
			t.Errorf("blockIndex(%d) = %d, want %d", c.i, got, c.idx)
		}
		if got := blockBitOffset(c.i); got != c.off {
			t.Errorf("blockBitOffset(%d) = %d, want %d", c.i, got, c.off)
		}
	}
}

func TestSelect1InWord(t *testing.T) {
	x := uint32(0b1011010) // bits set at 1, 3, 4, 6
	cases := []struct {
		k    int
		want int
	}{
		{0, 1},
		{1, 3},
		{2, 4},
		{3, 6},
		{4, wordBits},
	}
	for _, c := range cases {
		if got := select1InWord(x, c.k); got != c.want {
			t.Errorf("select1InWord(%#b, %d) = %d, want %d", x, c.k, got, c.want)
		}
	}
	if got := select1InWord(0, 0); got != wordBits {
		t.Errorf("select1InWord(0, 0) = %d, want %d", got, wordBits)
	}
}

func TestPartitionPoint(t *testing.T) {
	values := []int{1, 3, 3, 5, 8, 8, 8, 9}
	for target := -1; target <= 10; target++ {
		got := partitionPoint(len(values), func(i int) bool { return values[i] < target })
		want := 0
		for want < len(values) && values[want] < target {
			want++
		}
		if got != want {
			t.Errorf("partitionPoint target=%d = %d, want %d", target, got, want)
		}
	}
}

func TestPopcountTrailingLeadingZeros(t *testing.T) {
	if popcount32(0b1011) != 3 {
		t.Errorf("popcount32 wrong")
	}
	if trailingZeros32(0) != 32 {
		t.Errorf("trailingZeros32(0) should be 32")
	}
	if trailingZeros32(0b1000) != 3 {
		t.Errorf("trailingZeros32(0b1000) should be 3")
	}
	if leadingZeros32(0) != 32 {
		t.Errorf("leadingZeros32(0) should be 32")
	}
	if leadingZeros32(1) != 31 {
		t.Errorf("leadingZeros32(1) should be 31")
	}
}

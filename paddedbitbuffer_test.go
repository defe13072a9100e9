package succinct

import "testing"

func TestMaybePaddedAllZero(t *testing.T) {
	b, err := NewBitBuffer(256)
	if err != nil {
		t.Fatal(err)
	}
	view := maybePadded(b, 0.25)
	pbb, ok := view.(*PaddedBitBuffer)
	if !ok {
		t.Fatalf("expected a PaddedBitBuffer view for an all-zero buffer, got %T", view)
	}
	if pbb.UniverseSize() != 256 {
		t.Errorf("UniverseSize = %d, want 256", pbb.UniverseSize())
	}
	for i := 0; i < pbb.NumBlocks(); i++ {
		if pbb.GetBlock(i) != 0 {
			t.Errorf("GetBlock(%d) = %#x, want 0", i, pbb.GetBlock(i))
		}
	}
	for i := 0; i < 256; i++ {
		if pbb.Get(i) != 0 {
			t.Errorf("Get(%d) = %d, want 0", i, pbb.Get(i))
		}
	}
}

func TestMaybePaddedMiddleSurvives(t *testing.T) {
	b, err := NewBitBuffer(320) // 10 blocks
	if err != nil {
		t.Fatal(err)
	}
	// Leave the middle block (index 5) non-homogeneous; everything else
	// is all-zero padding.
	b.SetOne(5*32 + 3)

	view := maybePadded(b, 0.25)
	pbb, ok := view.(*PaddedBitBuffer)
	if !ok {
		t.Fatalf("expected PaddedBitBuffer, got %T", view)
	}
	if pbb.GetBlock(5) != b.GetBlock(5) {
		t.Errorf("GetBlock(5) = %#x, want %#x", pbb.GetBlock(5), b.GetBlock(5))
	}
	for i := 0; i < 320; i++ {
		if got, want := pbb.Get(i), b.Get(i); got != want {
			t.Errorf("Get(%d) = %d, want %d", i, got, want)
		}
	}
}

func TestMaybePaddedOverThreshold(t *testing.T) {
	b, err := NewBitBuffer(320)
	if err != nil {
		t.Fatal(err)
	}
	// Set a bit in half the blocks so no long homogeneous run survives
	// the threshold; the original buffer should be returned unchanged.
	for i := 0; i < 10; i += 2 {
		b.SetOne(i*32 + 1)
	}
	view := maybePadded(b, 0.25)
	if _, ok := view.(*BitBuffer); !ok {
		t.Errorf("expected the original BitBuffer back, got %T", view)
	}
}

func TestMaybePaddedEmpty(t *testing.T) {
	b, err := NewBitBuffer(0)
	if err != nil {
		t.Fatal(err)
	}
	view := maybePadded(b, 0.25)
	if view.NumBlocks() != 0 {
		t.Errorf("NumBlocks = %d, want 0", view.NumBlocks())
	}
}

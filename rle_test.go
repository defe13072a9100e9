package succinct

import "testing"

// expandRuns turns a run list into an explicit position list for oracle
// comparison: zeros then ones, repeated per run.
func expandRuns(runs [][2]int) (positions []int, universe int) {
	pos := 0
	for _, r := range runs {
		pos += r[0]
		for i := 0; i < r[1]; i++ {
			positions = append(positions, pos)
			pos++
		}
	}
	return positions, pos
}

func buildRLE(t *testing.T, runs [][2]int) *RLEBitVec {
	t.Helper()
	b := NewRLEBitVecBuilder()
	for _, r := range runs {
		if err := b.Run(r[0], r[1]); err != nil {
			t.Fatal(err)
		}
	}
	bv, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	return bv
}

func TestRLEAgainstOracle(t *testing.T) {
	runs := [][2]int{{3, 2}, {0, 4}, {5, 0}, {1, 1}, {0, 3}, {10, 1}}
	positions, universe := expandRuns(runs)

	rle := buildRLE(t, runs)
	oracle := buildSortedArray(t, universe, positions)

	if rle.UniverseSize() != universe {
		t.Fatalf("UniverseSize = %d, want %d", rle.UniverseSize(), universe)
	}
	if rle.NumOnes() != oracle.NumOnes() {
		t.Fatalf("NumOnes = %d, want %d", rle.NumOnes(), oracle.NumOnes())
	}
	if rle.HasMultiplicity() {
		t.Error("RLEBitVec must never report multiplicity")
	}

	for i := 0; i <= universe; i++ {
		if got, want := rle.Rank1(i), oracle.Rank1(i); got != want {
			t.Errorf("Rank1(%d) = %d, want %d", i, got, want)
		}
	}
	for n := 0; n < oracle.NumOnes(); n++ {
		got, err := rle.Select1(n)
		if err != nil {
			t.Fatalf("Select1(%d): %v", n, err)
		}
		want, _ := oracle.Select1(n)
		if got != want {
			t.Errorf("Select1(%d) = %d, want %d", n, got, want)
		}
	}
	for n := 0; n < rle.NumZeros(); n++ {
		got, err := rle.Select0(n)
		if err != nil {
			t.Fatalf("Select0(%d): %v", n, err)
		}
		want, err := oracle.Select0(n)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("Select0(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestRLEWorkedExample(t *testing.T) {
	// a single run of a billion zeros followed by a billion ones, then a
	// million more ones merged into the same run by coalescing.
	b := NewRLEBitVecBuilder()
	if err := b.Run(1_000_000_000, 1_000_000_000); err != nil {
		t.Fatal(err)
	}
	if err := b.Run(0, 1_000_000); err != nil {
		t.Fatal(err)
	}
	rle, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}

	if rle.UniverseSize() != 2_001_000_000 {
		t.Fatalf("UniverseSize = %d, want 2001000000", rle.UniverseSize())
	}
	if got := rle.Rank1(1_000_000_001); got != 1 {
		t.Errorf("Rank1(1e9+1) = %d, want 1", got)
	}
	if got, err := rle.Select0(999_999_999); err != nil || got != 999_999_999 {
		t.Errorf("Select0(1e9-1) = %d, %v, want 999999999, nil", got, err)
	}
	if got, err := rle.Select1(1_000_999_999); err != nil || got != 2_000_999_999 {
		t.Errorf("Select1(1000999999) = %d, %v, want 2000999999, nil", got, err)
	}
}

func TestRLECoalescing(t *testing.T) {
	b := NewRLEBitVecBuilder()
	if err := b.Run(2, 3); err != nil {
		t.Fatal(err)
	}
	if err := b.Run(0, 2); err != nil {
		t.Fatal(err) // merges into the previous run's ones
	}
	if err := b.Run(4, 0); err != nil {
		t.Fatal(err) // starts a new zero run since the previous run had ones
	}
	if err := b.Run(3, 0); err != nil {
		t.Fatal(err) // merges into the previous zero-only run
	}
	if err := b.Run(0, 0); err != nil {
		t.Fatal(err) // silently ignored
	}
	rle, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	// runs: (2 zeros, 5 ones), (7 zeros, 0 ones) -> universe 14, 5 ones
	if rle.UniverseSize() != 14 {
		t.Fatalf("UniverseSize = %d, want 14", rle.UniverseSize())
	}
	if rle.NumOnes() != 5 {
		t.Fatalf("NumOnes = %d, want 5", rle.NumOnes())
	}
}

func TestRLEBuilderRejectsNegative(t *testing.T) {
	b := NewRLEBitVecBuilder()
	if err := b.Run(-1, 0); err == nil {
		t.Error("expected error for negative zeros")
	}
	if err := b.Run(0, -1); err == nil {
		t.Error("expected error for negative ones")
	}
}

func TestRLEEmpty(t *testing.T) {
	b := NewRLEBitVecBuilder()
	rle, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	if rle.UniverseSize() != 0 {
		t.Errorf("UniverseSize = %d, want 0", rle.UniverseSize())
	}
	if _, err := rle.Select1(0); err == nil {
		t.Error("expected error selecting from an empty RLE bit vector")
	}
}

package succinct

import "testing"

func buildMulti(t *testing.T, universe int, entries [][2]int) *MultiBitVec {
	t.Helper()
	b, err := NewMultiBitVecBuilder(universe)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if err := b.One(e[0], e[1]); err != nil {
			t.Fatal(err)
		}
	}
	mv, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	return mv
}

func expandMultiEntries(entries [][2]int) []int {
	var positions []int
	for _, e := range entries {
		for i := 0; i < e[1]; i++ {
			positions = append(positions, e[0])
		}
	}
	return positions
}

func TestMultiAgainstOracle(t *testing.T) {
	entries := [][2]int{{1, 1}, {4, 3}, {10, 1}, {17, 5}, {63, 2}}
	universe := 64
	mv := buildMulti(t, universe, entries)
	oracle := buildSortedArray(t, universe, expandMultiEntries(entries))

	if mv.NumOnes() != oracle.NumOnes() {
		t.Fatalf("NumOnes = %d, want %d", mv.NumOnes(), oracle.NumOnes())
	}
	if mv.NumUniqueOnes() != oracle.NumUniqueOnes() {
		t.Fatalf("NumUniqueOnes = %d, want %d", mv.NumUniqueOnes(), oracle.NumUniqueOnes())
	}
	if !mv.HasMultiplicity() {
		t.Error("expected HasMultiplicity true")
	}

	for i := 0; i <= universe; i++ {
		if got, want := mv.Rank1(i), oracle.Rank1(i); got != want {
			t.Errorf("Rank1(%d) = %d, want %d", i, got, want)
		}
	}
	for n := 0; n < oracle.NumOnes(); n++ {
		got, err := mv.Select1(n)
		if err != nil {
			t.Fatalf("Select1(%d): %v", n, err)
		}
		want, _ := oracle.Select1(n)
		if got != want {
			t.Errorf("Select1(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestMultiTrySelect0NotGatedByMultiplicity(t *testing.T) {
	mv := buildMulti(t, 20, [][2]int{{2, 3}, {10, 1}})
	// trySelect0 is a direct alias of occupancy.trySelect0 regardless of
	// multiplicity; unlike Rank0/Select0 it never fails fast.
	if v, ok := mv.TrySelect0(0); !ok || v != 0 {
		t.Errorf("TrySelect0(0) = %d,%v want 0,true", v, ok)
	}
	if _, err := mv.Rank0(5); err == nil {
		t.Error("expected ErrMultiplicityUnsupported from Rank0")
	}
	if _, err := mv.Select0(0); err == nil {
		t.Error("expected ErrMultiplicityUnsupported from Select0")
	}
}

func TestMultiNoMultiplicityRank0Select0(t *testing.T) {
	mv := buildMulti(t, 20, [][2]int{{2, 1}, {10, 1}})
	if mv.HasMultiplicity() {
		t.Error("expected HasMultiplicity false when every count is 1")
	}
	if r0, err := mv.Rank0(5); err != nil || r0 != 4 {
		t.Errorf("Rank0(5) = %d,%v want 4,nil", r0, err)
	}
	if v, err := mv.Select0(0); err != nil || v != 0 {
		t.Errorf("Select0(0) = %d,%v want 0,nil", v, err)
	}
}

func TestMultiBuilderMergesRepeatedIndex(t *testing.T) {
	b, err := NewMultiBitVecBuilder(20)
	if err != nil {
		t.Fatal(err)
	}
	if err := b.One(5); err != nil {
		t.Fatal(err)
	}
	if err := b.One(5, 2); err != nil {
		t.Fatal(err)
	}
	if err := b.One(8); err != nil {
		t.Fatal(err)
	}
	mv, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	if mv.NumOnes() != 4 {
		t.Fatalf("NumOnes = %d, want 4", mv.NumOnes())
	}
	if mv.NumUniqueOnes() != 2 {
		t.Fatalf("NumUniqueOnes = %d, want 2", mv.NumUniqueOnes())
	}
}

func TestMultiBuilderRejectsNonMonotoneAndOutOfRange(t *testing.T) {
	b, err := NewMultiBitVecBuilder(10)
	if err != nil {
		t.Fatal(err)
	}
	if err := b.One(10); err == nil {
		t.Error("expected error for index == universe size")
	}
	if err := b.One(5); err != nil {
		t.Fatal(err)
	}
	if err := b.One(4); err == nil {
		t.Error("expected error for non-monotone index")
	}
}

func TestMultiEmpty(t *testing.T) {
	mv := buildMulti(t, 16, nil)
	if mv.NumOnes() != 0 {
		t.Errorf("NumOnes = %d, want 0", mv.NumOnes())
	}
	if mv.Rank1(8) != 0 {
		t.Errorf("Rank1(8) = %d, want 0", mv.Rank1(8))
	}
}

package cube

import "testing"

func TestParseMoveRoundTrip(t *testing.T) {
	for m := Move(0); m < NumMoves; m++ {
		s := m.String()
		got, ok := ParseMove(s)
		if !ok || got != m {
			t.Fatalf("ParseMove(%q) = %v, %v; want %v, true", s, got, ok, m)
		}
	}
}

func TestParseMoveRejectsGarbage(t *testing.T) {
	if _, ok := ParseMove("Q"); ok {
		t.Fatal("ParseMove accepted an invalid move string")
	}
}

func TestFormatAndParseMoves(t *testing.T) {
	seq := []Move{U1, R3, F2m, D1, L3}
	s := FormatMoves(seq)
	if s != "U R' F2 D L'" {
		t.Fatalf("FormatMoves = %q", s)
	}
	parsed, ok := ParseMoves(s)
	if !ok || len(parsed) != len(seq) {
		t.Fatalf("ParseMoves(%q) = %v, %v", s, parsed, ok)
	}
	for i := range seq {
		if parsed[i] != seq[i] {
			t.Fatalf("ParseMoves[%d] = %v, want %v", i, parsed[i], seq[i])
		}
	}
}

func TestInverseIsInvolution(t *testing.T) {
	for m := Move(0); m < NumMoves; m++ {
		if m.Inverse().Inverse() != m {
			t.Fatalf("inverse of inverse of %s is not %s", m, m)
		}
	}
}

func TestPhase2MovesExcludeQuarterTurnsOfMiddleFaces(t *testing.T) {
	for _, m := range []Move{L1, L3, R1, R3, F1, F3, B1, B3} {
		if Phase2Index[m] != -1 {
			t.Fatalf("phase-2 move set should not include %s", m)
		}
	}
	for _, m := range Phase2Moves {
		if Phase2Index[m] == -1 {
			t.Fatalf("Phase2Index missing entry for %s", m)
		}
	}
}

// TestMoveVsGeometricModel checks property 12: applyCW's facelet
// permutation agrees with the move adjacency table as an independent
// literal (transcribed separately from the cycles cube.go hardcodes), so a
// transcription slip in either place shows up as a mismatch.
func TestMoveVsGeometricModel(t *testing.T) {
	literalCycles := map[Face][3][4]int{
		U: {{idx(F, 0), idx(L, 0), idx(B, 0), idx(R, 0)}, {idx(F, 1), idx(L, 1), idx(B, 1), idx(R, 1)}, {idx(F, 2), idx(L, 2), idx(B, 2), idx(R, 2)}},
		D: {{idx(F, 6), idx(R, 6), idx(B, 6), idx(L, 6)}, {idx(F, 7), idx(R, 7), idx(B, 7), idx(L, 7)}, {idx(F, 8), idx(R, 8), idx(B, 8), idx(L, 8)}},
		L: {{idx(U, 0), idx(F, 0), idx(D, 0), idx(B, 8)}, {idx(U, 3), idx(F, 3), idx(D, 3), idx(B, 5)}, {idx(U, 6), idx(F, 6), idx(D, 6), idx(B, 2)}},
		R: {{idx(U, 2), idx(B, 6), idx(D, 2), idx(F, 2)}, {idx(U, 5), idx(B, 3), idx(D, 5), idx(F, 5)}, {idx(U, 8), idx(B, 0), idx(D, 8), idx(F, 8)}},
		F: {{idx(U, 6), idx(R, 0), idx(D, 2), idx(L, 8)}, {idx(U, 7), idx(R, 3), idx(D, 1), idx(L, 5)}, {idx(U, 8), idx(R, 6), idx(D, 0), idx(L, 2)}},
		B: {{idx(U, 2), idx(L, 0), idx(D, 6), idx(R, 8)}, {idx(U, 1), idx(L, 3), idx(D, 7), idx(R, 5)}, {idx(U, 0), idx(L, 6), idx(D, 8), idx(R, 2)}},
	}
	literalFaceCycles := map[Face][2][4]int{
		U: {{idx(U, 0), idx(U, 2), idx(U, 8), idx(U, 6)}, {idx(U, 1), idx(U, 5), idx(U, 7), idx(U, 3)}},
		D: {{idx(D, 0), idx(D, 2), idx(D, 8), idx(D, 6)}, {idx(D, 1), idx(D, 5), idx(D, 7), idx(D, 3)}},
		L: {{idx(L, 0), idx(L, 2), idx(L, 8), idx(L, 6)}, {idx(L, 1), idx(L, 5), idx(L, 7), idx(L, 3)}},
		R: {{idx(R, 0), idx(R, 2), idx(R, 8), idx(R, 6)}, {idx(R, 1), idx(R, 5), idx(R, 7), idx(R, 3)}},
		F: {{idx(F, 0), idx(F, 2), idx(F, 8), idx(F, 6)}, {idx(F, 1), idx(F, 5), idx(F, 7), idx(F, 3)}},
		B: {{idx(B, 0), idx(B, 2), idx(B, 8), idx(B, 6)}, {idx(B, 1), idx(B, 5), idx(B, 7), idx(B, 3)}},
	}

	for f := Face(0); f < 6; f++ {
		c := NewSolved()
		for i := range c.Facelets {
			c.Facelets[i] = Color(i % NumColors)
		}
		before := c.Facelets
		want := before

		for _, cyc := range literalFaceCycles[f] {
			a, b, c2, d := cyc[0], cyc[1], cyc[2], cyc[3]
			want[b], want[c2], want[d], want[a] = before[a], before[b], before[c2], before[d]
		}
		mid := want
		for _, cyc := range literalCycles[f] {
			a, b, c2, d := cyc[0], cyc[1], cyc[2], cyc[3]
			want[b], want[c2], want[d], want[a] = mid[a], mid[b], mid[c2], mid[d]
		}

		c.applyCW(f)
		if c.Facelets != want {
			t.Fatalf("applyCW(%s) disagrees with the independently transcribed adjacency table", f)
		}
	}
}

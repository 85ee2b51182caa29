package cube

import "testing"

func TestSolvedPieceArrays(t *testing.T) {
	c := NewSolved()
	cp := c.CPArray()
	co := c.COArray()
	ep := c.EPArray()
	eo := c.EOArray()
	for i := 0; i < 8; i++ {
		if cp[i] != i {
			t.Errorf("CPArray()[%d] = %d, want %d", i, cp[i], i)
		}
		if co[i] != 0 {
			t.Errorf("COArray()[%d] = %d, want 0", i, co[i])
		}
	}
	for i := 0; i < 12; i++ {
		if ep[i] != i {
			t.Errorf("EPArray()[%d] = %d, want %d", i, ep[i], i)
		}
		if eo[i] != 0 {
			t.Errorf("EOArray()[%d] = %d, want 0", i, eo[i])
		}
	}
}

func TestSingleMovePermutesExactlyFourCornersAndEdges(t *testing.T) {
	c := NewSolved()
	c.Apply(R1)
	cp := c.CPArray()
	ep := c.EPArray()

	movedCorners := 0
	for i, p := range cp {
		if p != i {
			movedCorners++
		}
	}
	if movedCorners != 4 {
		t.Errorf("R moved %d corners, want 4", movedCorners)
	}

	movedEdges := 0
	for i, p := range ep {
		if p != i {
			movedEdges++
		}
	}
	if movedEdges != 4 {
		t.Errorf("R moved %d edges, want 4", movedEdges)
	}
}

func TestScrambleIsIrreducible(t *testing.T) {
	c := NewSolved()
	moves := c.ScrambleSource(100, deterministicRand(42))
	for i := 1; i < len(moves); i++ {
		a, b := moves[i-1].Face(), moves[i].Face()
		if a == b {
			t.Fatalf("consecutive moves on the same face at %d: %s %s", i, moves[i-1], moves[i])
		}
		if opposite(a, b) && b < a {
			t.Fatalf("opposite-face pair out of order at %d: %s %s", i, moves[i-1], moves[i])
		}
	}
}

package cube

import (
	"math/rand"
	"testing"
)

func deterministicRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// TestFaceletIndexRoundTrip checks property 1: every global index decodes
// to a (face, row, col) triple and back without loss.
func TestFaceletIndexRoundTrip(t *testing.T) {
	for i := 0; i < NumFacelets; i++ {
		f := Face(i / 9)
		pos := i % 9
		if got := idx(f, pos); got != i {
			t.Fatalf("idx(%s, %d) = %d, want %d", f, pos, got, i)
		}
	}
}

// TestCenterInvariance checks property 2 across a long move sequence.
func TestCenterInvariance(t *testing.T) {
	c := NewSolved()
	moves := allMovesRepeated(50)
	for _, m := range moves {
		c.Apply(m)
		for f := Face(0); f < 6; f++ {
			if c.Facelets[idx(f, 4)] != f.HomeColor() {
				t.Fatalf("center of face %s changed to %s after move %s", f, c.Facelets[idx(f, 4)], m)
			}
		}
	}
}

// TestMoveInverse checks property 3 for every one of the 18 moves.
func TestMoveInverse(t *testing.T) {
	for m := Move(0); m < NumMoves; m++ {
		c := NewSolved()
		c.Scramble(1) // perturb so identity isn't trivially true
		before := c.State()
		c.Apply(m)
		c.Apply(m.Inverse())
		if c.State() != before {
			t.Fatalf("move %s then its inverse is not the identity", m)
		}
	}
}

// TestPeriod checks property 4: four CW quarter turns, or two half turns,
// return a face to its start state.
func TestPeriod(t *testing.T) {
	quarterOf := map[Face]Move{U: U1, D: D1, L: L1, R: R1, F: F1, B: B1}
	halfOf := map[Face]Move{U: U2m, D: D2m, L: L2m, R: R2m, F: F2m, B: B2m}

	for f := Face(0); f < 6; f++ {
		c := NewSolved()
		start := c.State()
		for i := 0; i < 4; i++ {
			c.Apply(quarterOf[f])
		}
		if c.State() != start {
			t.Fatalf("four quarter turns of %s is not identity", f)
		}

		c2 := NewSolved()
		start2 := c2.State()
		for i := 0; i < 2; i++ {
			c2.Apply(halfOf[f])
		}
		if c2.State() != start2 {
			t.Fatalf("two half turns of %s is not identity", f)
		}
	}
}

// TestColorCount checks property 5 after a long random sequence.
func TestColorCount(t *testing.T) {
	c := NewSolved()
	c.ScrambleSource(200, deterministicRand(7))
	var count [NumColors]int
	for _, col := range c.Facelets {
		count[col]++
	}
	for col, n := range count {
		if n != 9 {
			t.Fatalf("color %s appears %d times, want 9", Color(col), n)
		}
	}
}

// TestCubieInvariants checks property 6 after a long random sequence.
func TestCubieInvariants(t *testing.T) {
	c := NewSolved()
	c.ScrambleSource(200, deterministicRand(11))
	if err := c.IsSolvable(); err != nil {
		t.Fatalf("scrambled cube failed solvability invariants: %v", err)
	}
}

// TestCoordinateOnSolved checks property 7.
func TestCoordinateOnSolved(t *testing.T) {
	c := NewSolved()
	if c.CoCoord() != 0 {
		t.Errorf("CoCoord on solved = %d, want 0", c.CoCoord())
	}
	if c.EoCoord() != 0 {
		t.Errorf("EoCoord on solved = %d, want 0", c.EoCoord())
	}
	if c.SliceCoord() != 0 {
		t.Errorf("SliceCoord on solved = %d, want 0", c.SliceCoord())
	}
	if c.CpCoord() != 0 {
		t.Errorf("CpCoord on solved = %d, want 0", c.CpCoord())
	}
	if c.EpCoord() != 0 {
		t.Errorf("EpCoord on solved = %d, want 0", c.EpCoord())
	}
	if c.SpCoord() != 0 {
		t.Errorf("SpCoord on solved = %d, want 0", c.SpCoord())
	}
}

// TestUnsolvabilityDetection checks property 11's cube-layer half: swapping
// two stickers on different pieces makes IsSolvable report a violation.
func TestUnsolvabilityDetection(t *testing.T) {
	c := NewSolved()
	c.Facelets[idx(U, 8)], c.Facelets[idx(F, 0)] = c.Facelets[idx(F, 0)], c.Facelets[idx(U, 8)]
	if err := c.IsSolvable(); err == nil {
		t.Fatal("expected IsSolvable to reject a single sticker swap")
	}
}

func TestIsSolved(t *testing.T) {
	c := NewSolved()
	if !c.IsSolved() {
		t.Fatal("fresh cube reports not solved")
	}
	c.Apply(U1)
	if c.IsSolved() {
		t.Fatal("cube after U reports solved")
	}
}

func allMovesRepeated(n int) []Move {
	moves := make([]Move, 0, n)
	for i := 0; i < n; i++ {
		moves = append(moves, Move(i%NumMoves))
	}
	return moves
}

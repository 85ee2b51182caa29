package cfen

import (
	"testing"

	"github.com/delford/twophase-cube/internal/cube"
)

func TestRoundTripSolvedCube(t *testing.T) {
	c := cube.NewSolved()
	s := Generate(c)

	parsed, err := Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", s, err)
	}
	got, err := parsed.ToCube()
	if err != nil {
		t.Fatalf("ToCube failed: %v", err)
	}
	if got.State() != c.State() {
		t.Fatal("round trip through CFEN changed the cube state")
	}
}

func TestSolvedCubeCFENIsNineRuns(t *testing.T) {
	c := cube.NewSolved()
	want := "W9/B9/R9/Y9/G9/O9"
	if got := Generate(c); got != want {
		t.Fatalf("Generate(solved) = %q, want %q", got, want)
	}
}

func TestParseRejectsWrongFaceCount(t *testing.T) {
	if err := Validate("W9/B9/R9"); err == nil {
		t.Fatal("expected an error for too few faces")
	}
}

func TestParseRejectsWrongStickerCount(t *testing.T) {
	if err := Validate("W8/B9/R9/Y9/G9/O9"); err == nil {
		t.Fatal("expected an error for a short face")
	}
}

func TestWildcardMatches(t *testing.T) {
	c := cube.NewSolved()
	c.Apply(cube.U1)
	pattern, err := Parse("?9/?3B6/?3R6/Y9/?3G6/?3O6")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !pattern.Matches(c) {
		t.Fatal("wildcards over the U face and the side-face top rows should match after a U turn")
	}
}

func TestToCubeRejectsWildcard(t *testing.T) {
	pattern, err := Parse("?9/B9/R9/Y9/G9/O9")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if _, err := pattern.ToCube(); err == nil {
		t.Fatal("expected ToCube to reject a wildcard sticker")
	}
}

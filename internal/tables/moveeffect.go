// Package tables builds the process-wide transition and pruning tables the
// two-phase search consumes, and holds them behind a single lazily built,
// immutable singleton (§4.3/§4.4).
package tables

import "github.com/delford/twophase-cube/internal/cube"

// pieceState is the full piece-level representation the move-effect
// composition rule of §4.3 operates on.
type pieceState struct {
	CP [8]int
	CO [8]int
	EP [12]int
	EO [12]int
}

func identityState() pieceState {
	var s pieceState
	for i := range s.CP {
		s.CP[i] = i
	}
	for i := range s.EP {
		s.EP[i] = i
	}
	return s
}

// moveEffect records one move's effect on a solved cube: out.cp[i] =
// in.cp[move.cp[i]], out.co[i] = (in.co[move.cp[i]] + move.co[i]) mod 3, and
// analogously for edges. Computed once by applying the move to a freshly
// solved cube and reading back its piece arrays.
type moveEffect struct {
	CP [8]int
	CO [8]int
	EP [12]int
	EO [12]int
}

func buildMoveEffects() [cube.NumMoves]moveEffect {
	var effects [cube.NumMoves]moveEffect
	for m := cube.Move(0); m < cube.NumMoves; m++ {
		c := cube.NewSolved()
		c.Apply(m)
		effects[m].CP = c.CPArray()
		effects[m].CO = c.COArray()
		effects[m].EP = c.EPArray()
		effects[m].EO = c.EOArray()
	}
	return effects
}

// apply composes move effect e onto piece state s, producing the state
// after the move.
func apply(e moveEffect, s pieceState) pieceState {
	var out pieceState
	for i := 0; i < 8; i++ {
		out.CP[i] = s.CP[e.CP[i]]
		out.CO[i] = (s.CO[e.CP[i]] + e.CO[i]) % 3
	}
	for i := 0; i < 12; i++ {
		out.EP[i] = s.EP[e.EP[i]]
		out.EO[i] = (s.EO[e.EP[i]] + e.EO[i]) % 2
	}
	return out
}

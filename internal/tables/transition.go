package tables

import (
	"github.com/delford/twophase-cube/internal/coord"
	"github.com/delford/twophase-cube/internal/cube"
)

// buildCoMove fills co_move: new CO after each of the 18 moves, for every
// CO value.
func buildCoMove(effects [cube.NumMoves]moveEffect) [coord.NumCO][cube.NumMoves]uint16 {
	var table [coord.NumCO][cube.NumMoves]uint16
	for v := 0; v < coord.NumCO; v++ {
		s := identityState()
		full := coord.DecodeCO(v)
		copy(s.CO[:], full[:])
		for m := cube.Move(0); m < cube.NumMoves; m++ {
			out := apply(effects[m], s)
			var co [7]int
			copy(co[:], out.CO[:7])
			table[v][m] = uint16(coord.EncodeCO(co))
		}
	}
	return table
}

// buildEoMove fills eo_move: new EO after each of the 18 moves.
func buildEoMove(effects [cube.NumMoves]moveEffect) [coord.NumEO][cube.NumMoves]uint16 {
	var table [coord.NumEO][cube.NumMoves]uint16
	for v := 0; v < coord.NumEO; v++ {
		s := identityState()
		full := coord.DecodeEO(v)
		copy(s.EO[:], full[:])
		for m := cube.Move(0); m < cube.NumMoves; m++ {
			out := apply(effects[m], s)
			var eo [11]int
			copy(eo[:], out.EO[:11])
			table[v][m] = uint16(coord.EncodeEO(eo))
		}
	}
	return table
}

// buildSliceMove fills slice_move: new SLICE after each of the 18 moves.
// Only the edge permutation component matters; orientation is irrelevant to
// the is-slice pattern.
func buildSliceMove(effects [cube.NumMoves]moveEffect) [coord.NumSlice][cube.NumMoves]uint16 {
	var table [coord.NumSlice][cube.NumMoves]uint16
	for v := 0; v < coord.NumSlice; v++ {
		s := identityState()
		s.EP = coord.DecodeSlice(v)
		for m := cube.Move(0); m < cube.NumMoves; m++ {
			out := apply(effects[m], s)
			table[v][m] = uint16(coord.EncodeSlice(out.EP))
		}
	}
	return table
}

// buildCpMove fills cp_move: new CP after each of the 10 phase-2 moves.
func buildCpMove(effects [cube.NumMoves]moveEffect) [coord.NumCP][len(cube.Phase2Moves)]uint16 {
	var table [coord.NumCP][len(cube.Phase2Moves)]uint16
	for v := 0; v < coord.NumCP; v++ {
		s := identityState()
		s.CP = coord.DecodeCP(v)
		for j, m := range cube.Phase2Moves {
			out := apply(effects[m], s)
			table[v][j] = uint16(coord.EncodeCP(out.CP))
		}
	}
	return table
}

// buildEpMove fills ep_move: new EP (non-slice edges) after each of the 10
// phase-2 moves. Positions 8..11 are seeded with piece ids 8..11 as
// placeholders; phase-2 moves never move a slice edge into a non-slice
// position, so those slots are never read by the composition at positions
// 0..7.
func buildEpMove(effects [cube.NumMoves]moveEffect) [coord.NumEP][len(cube.Phase2Moves)]uint16 {
	var table [coord.NumEP][len(cube.Phase2Moves)]uint16
	for v := 0; v < coord.NumEP; v++ {
		s := identityState()
		full := coord.DecodeEP(v)
		copy(s.EP[:8], full[:])
		s.EP[8], s.EP[9], s.EP[10], s.EP[11] = 8, 9, 10, 11
		for j, m := range cube.Phase2Moves {
			out := apply(effects[m], s)
			var ep [8]int
			copy(ep[:], out.EP[:8])
			table[v][j] = uint16(coord.EncodeEP(ep))
		}
	}
	return table
}

// buildSpMove fills sp_move: new SP (slice edges) after each of the 10
// phase-2 moves.
func buildSpMove(effects [cube.NumMoves]moveEffect) [coord.NumSP][len(cube.Phase2Moves)]uint8 {
	var table [coord.NumSP][len(cube.Phase2Moves)]uint8
	for v := 0; v < coord.NumSP; v++ {
		s := identityState()
		s.EP[0], s.EP[1], s.EP[2], s.EP[3] = 0, 1, 2, 3
		s.EP[4], s.EP[5], s.EP[6], s.EP[7] = 4, 5, 6, 7
		sp := coord.DecodeSP(v)
		for i, p := range sp {
			s.EP[8+i] = p + 8
		}
		for j, m := range cube.Phase2Moves {
			out := apply(effects[m], s)
			var sp2 [4]int
			for i := 0; i < 4; i++ {
				sp2[i] = out.EP[8+i] - 8
			}
			table[v][j] = uint8(coord.EncodeSP(sp2))
		}
	}
	return table
}

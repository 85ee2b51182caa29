package cube

import "github.com/delford/twophase-cube/internal/coord"

// CoCoord returns the corner-orientation solver coordinate of the current
// state, or -1 if any corner position is unreadable.
func (c *Cube) CoCoord() int {
	full := c.COArray()
	var co [7]int
	for i := 0; i < 7; i++ {
		if full[i] < 0 {
			return -1
		}
		co[i] = full[i]
	}
	return coord.EncodeCO(co)
}

// EoCoord returns the edge-orientation solver coordinate of the current
// state, or -1 if any edge position is unreadable.
func (c *Cube) EoCoord() int {
	full := c.EOArray()
	var eo [11]int
	for i := 0; i < 11; i++ {
		if full[i] < 0 {
			return -1
		}
		eo[i] = full[i]
	}
	return coord.EncodeEO(eo)
}

// SliceCoord returns the phase-1 slice-placement coordinate of the current
// state, or -1 if any edge position is unreadable.
func (c *Cube) SliceCoord() int {
	ep := c.EPArray()
	for _, p := range ep {
		if p < 0 {
			return -1
		}
	}
	return coord.EncodeSlice(ep)
}

// CpCoord returns the phase-2 corner-permutation coordinate, or -1 if any
// corner position is unreadable.
func (c *Cube) CpCoord() int {
	cp := c.CPArray()
	for _, p := range cp {
		if p < 0 {
			return -1
		}
	}
	return coord.EncodeCP(cp)
}

// EpCoord returns the phase-2 non-slice edge permutation coordinate. The
// caller must only call this when the cube is already in the G1 subgroup
// (slice edges occupy positions 8..11), so that the non-slice positions
// hold exactly piece ids 0..7.
func (c *Cube) EpCoord() int {
	full := c.EPArray()
	var ep [8]int
	for i := 0; i < 8; i++ {
		if full[i] < 0 || full[i] > 7 {
			return -1
		}
		ep[i] = full[i]
	}
	return coord.EncodeEP(ep)
}

// SpCoord returns the phase-2 slice edge permutation coordinate among
// positions 8..11. The caller must only call this within G1.
func (c *Cube) SpCoord() int {
	full := c.EPArray()
	var sp [4]int
	for i := 0; i < 4; i++ {
		p := full[8+i]
		if p < 8 {
			return -1
		}
		sp[i] = p - 8
	}
	return coord.EncodeSP(sp)
}

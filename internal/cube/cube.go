package cube

// NumFacelets is the size of the flat facelet array: six faces of nine.
const NumFacelets = 54

// Cube is a facelet-level 3x3x3 state: 54 colors, nine per face, laid out
// row-major per face with global index face*9 + row*3 + col.
type Cube struct {
	Facelets [NumFacelets]Color
}

// idx is the global facelet index for (f, pos) where pos is 0..8 row-major.
func idx(f Face, pos int) int {
	return int(f)*9 + pos
}

// NewSolved returns a freshly solved cube.
func NewSolved() *Cube {
	c := &Cube{}
	c.Reset()
	return c
}

// Reset writes each face block to that face's home color.
func (c *Cube) Reset() {
	for f := Face(0); f < 6; f++ {
		color := f.HomeColor()
		for pos := 0; pos < 9; pos++ {
			c.Facelets[idx(f, pos)] = color
		}
	}
}

// Clone returns an independent copy.
func (c *Cube) Clone() *Cube {
	cp := *c
	return &cp
}

// State returns the current facelet array.
func (c *Cube) State() [NumFacelets]Color {
	return c.Facelets
}

// SetState overwrites the facelet array verbatim. The caller is responsible
// for checking IsSolvable afterward if that matters to them.
func (c *Cube) SetState(state [NumFacelets]Color) {
	c.Facelets = state
}

// IsSolved reports whether every face's nine facelets equal its center.
func (c *Cube) IsSolved() bool {
	for f := Face(0); f < 6; f++ {
		center := c.Facelets[idx(f, 4)]
		for pos := 0; pos < 9; pos++ {
			if c.Facelets[idx(f, pos)] != center {
				return false
			}
		}
	}
	return true
}

// cycle4 rotates four facelets: the color at a moves to b, b to c, c to d,
// and d to a (a->b->c->d->a).
func (c *Cube) cycle4(a, b, c2, d int) {
	tmp := c.Facelets[d]
	c.Facelets[d] = c.Facelets[c2]
	c.Facelets[c2] = c.Facelets[b]
	c.Facelets[b] = c.Facelets[a]
	c.Facelets[a] = tmp
}

// applyCW performs one clockwise quarter turn of face f: the two in-place
// 4-cycles on the face itself, then the three neighbor 4-cycles from §6.
func (c *Cube) applyCW(f Face) {
	c.cycle4(idx(f, 0), idx(f, 2), idx(f, 8), idx(f, 6))
	c.cycle4(idx(f, 1), idx(f, 5), idx(f, 7), idx(f, 3))

	cycles := neighborCycles[f]
	for _, cyc := range cycles {
		c.cycle4(cyc[0], cyc[1], cyc[2], cyc[3])
	}
}

// Apply mutates the cube to reflect move m.
func (c *Cube) Apply(m Move) {
	f := m.Face()
	for i := 0; i < m.quarterTurns(); i++ {
		c.applyCW(f)
	}
}

// ApplyMoves applies a sequence of moves in order.
func (c *Cube) ApplyMoves(moves []Move) {
	for _, m := range moves {
		c.Apply(m)
	}
}

// neighborCycles holds, per face, the three 4-cycles of adjacent facelets a
// clockwise turn of that face induces (§6). Positions are global facelet
// indices.
var neighborCycles = [6][3][4]int{
	U: {
		{idx(F, 0), idx(L, 0), idx(B, 0), idx(R, 0)},
		{idx(F, 1), idx(L, 1), idx(B, 1), idx(R, 1)},
		{idx(F, 2), idx(L, 2), idx(B, 2), idx(R, 2)},
	},
	D: {
		{idx(F, 6), idx(R, 6), idx(B, 6), idx(L, 6)},
		{idx(F, 7), idx(R, 7), idx(B, 7), idx(L, 7)},
		{idx(F, 8), idx(R, 8), idx(B, 8), idx(L, 8)},
	},
	L: {
		{idx(U, 0), idx(F, 0), idx(D, 0), idx(B, 8)},
		{idx(U, 3), idx(F, 3), idx(D, 3), idx(B, 5)},
		{idx(U, 6), idx(F, 6), idx(D, 6), idx(B, 2)},
	},
	R: {
		{idx(U, 2), idx(B, 6), idx(D, 2), idx(F, 2)},
		{idx(U, 5), idx(B, 3), idx(D, 5), idx(F, 5)},
		{idx(U, 8), idx(B, 0), idx(D, 8), idx(F, 8)},
	},
	F: {
		{idx(U, 6), idx(R, 0), idx(D, 2), idx(L, 8)},
		{idx(U, 7), idx(R, 3), idx(D, 1), idx(L, 5)},
		{idx(U, 8), idx(R, 6), idx(D, 0), idx(L, 2)},
	},
	B: {
		{idx(U, 2), idx(L, 0), idx(D, 6), idx(R, 8)},
		{idx(U, 1), idx(L, 3), idx(D, 7), idx(R, 5)},
		{idx(U, 0), idx(L, 6), idx(D, 8), idx(R, 2)},
	},
}

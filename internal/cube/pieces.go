package cube

// CornerNames gives the canonical order of the eight corner cubies.
var CornerNames = [8]string{"URF", "UFL", "ULB", "UBR", "DFR", "DLF", "DBL", "DRB"}

// EdgeNames gives the canonical order of the twelve edge cubies.
var EdgeNames = [12]string{"UR", "UF", "UL", "UB", "DR", "DF", "DL", "DB", "FR", "FL", "BL", "BR"}

// cornerFacelets[i] holds the three global facelet indices of corner i, in
// the fixed clockwise order with the U/D facelet first (§6).
var cornerFacelets = [8][3]int{
	{idx(U, 8), idx(R, 0), idx(F, 2)}, // URF
	{idx(U, 6), idx(F, 0), idx(L, 2)}, // UFL
	{idx(U, 0), idx(L, 0), idx(B, 2)}, // ULB
	{idx(U, 2), idx(B, 0), idx(R, 2)}, // UBR
	{idx(D, 2), idx(F, 8), idx(R, 6)}, // DFR
	{idx(D, 0), idx(L, 8), idx(F, 6)}, // DLF
	{idx(D, 6), idx(B, 8), idx(L, 6)}, // DBL
	{idx(D, 8), idx(R, 8), idx(B, 6)}, // DRB
}

// edgeFacelets[i] holds the two global facelet indices of edge i, U/D or
// F/B facelet first (§6).
var edgeFacelets = [12][2]int{
	{idx(U, 5), idx(R, 1)}, // UR
	{idx(U, 7), idx(F, 1)}, // UF
	{idx(U, 3), idx(L, 1)}, // UL
	{idx(U, 1), idx(B, 1)}, // UB
	{idx(D, 5), idx(R, 7)}, // DR
	{idx(D, 1), idx(F, 7)}, // DF
	{idx(D, 3), idx(L, 7)}, // DL
	{idx(D, 7), idx(B, 7)}, // DB
	{idx(F, 5), idx(R, 3)}, // FR
	{idx(F, 3), idx(L, 5)}, // FL
	{idx(B, 5), idx(L, 3)}, // BL
	{idx(B, 3), idx(R, 5)}, // BR
}

// cornerColorSet[i] is the unsolved-independent set of three colors that
// identify corner cubie i, derived from where its facelets sit when solved.
var cornerColorSet = func() [8][3]Color {
	var set [8][3]Color
	for i, fl := range cornerFacelets {
		for j, f := range fl {
			set[i][j] = Face(f / 9).HomeColor()
		}
	}
	return set
}()

var edgeColorSet = func() [12][2]Color {
	var set [12][2]Color
	for i, fl := range edgeFacelets {
		for j, f := range fl {
			set[i][j] = Face(f / 9).HomeColor()
		}
	}
	return set
}()

// isUDColor reports whether c is White or Yellow, the colors that live on a
// U or D center.
func isUDColor(c Color) bool { return c == U.HomeColor() || c == D.HomeColor() }

// isFBColor reports whether c is Red or Orange, the colors that live on an
// F or B center.
func isFBColor(c Color) bool { return c == F.HomeColor() || c == B.HomeColor() }

func sameSet3(a, b [3]Color) bool {
	var countA, countB [NumColors]int
	for i := 0; i < 3; i++ {
		countA[a[i]]++
		countB[b[i]]++
	}
	return countA == countB
}

func sameSet2(a, b [2]Color) bool {
	var countA, countB [NumColors]int
	for i := 0; i < 2; i++ {
		countA[a[i]]++
		countB[b[i]]++
	}
	return countA == countB
}

// CornerPermutation decodes which corner cubie currently occupies position
// i (0..7), by matching the facelet colors at i's fixed positions against
// each cubie's color set. Returns -1 if no cubie matches (invalid state).
func (c *Cube) CornerPermutation(i int) int {
	fl := cornerFacelets[i]
	colors := [3]Color{c.Facelets[fl[0]], c.Facelets[fl[1]], c.Facelets[fl[2]]}
	for j, set := range cornerColorSet {
		if sameSet3(set, colors) {
			return j
		}
	}
	return -1
}

// CornerOrientation decodes the orientation (0, 1, or 2) of the cubie
// currently at corner position i: the clockwise index, within the fixed
// facelet order, of the facelet carrying a U/D-type color. Returns -1 if
// no facelet at this position carries a U/D color (invalid state).
func (c *Cube) CornerOrientation(i int) int {
	fl := cornerFacelets[i]
	for k := 0; k < 3; k++ {
		if isUDColor(c.Facelets[fl[k]]) {
			return k
		}
	}
	return -1
}

// EdgePermutation decodes which edge cubie currently occupies position i
// (0..11). Returns -1 if no cubie matches.
func (c *Cube) EdgePermutation(i int) int {
	fl := edgeFacelets[i]
	colors := [2]Color{c.Facelets[fl[0]], c.Facelets[fl[1]]}
	for j, set := range edgeColorSet {
		if sameSet2(set, colors) {
			return j
		}
	}
	return -1
}

// EdgeOrientation decodes the flip state (0 or 1) of the edge cubie at
// position i, judged by which cubie it is: 0 iff the first facelet of the
// position carries a U/D-type color when the cubie is one of the first eight
// (non-slice) edges, or an F/B-type color when it is one of the four slice
// edges. Returns -1 if no cubie matches (invalid state).
func (c *Cube) EdgeOrientation(i int) int {
	first := c.Facelets[edgeFacelets[i][0]]
	p := c.EdgePermutation(i)
	if p < 0 {
		return -1
	}
	if p < 8 {
		if isUDColor(first) {
			return 0
		}
		return 1
	}
	if isFBColor(first) {
		return 0
	}
	return 1
}

// CPArray returns the full corner permutation array, cp[i] = -1 on an
// invalid facelet configuration.
func (c *Cube) CPArray() [8]int {
	var cp [8]int
	for i := range cp {
		cp[i] = c.CornerPermutation(i)
	}
	return cp
}

// COArray returns the full corner orientation array.
func (c *Cube) COArray() [8]int {
	var co [8]int
	for i := range co {
		co[i] = c.CornerOrientation(i)
	}
	return co
}

// EPArray returns the full edge permutation array.
func (c *Cube) EPArray() [12]int {
	var ep [12]int
	for i := range ep {
		ep[i] = c.EdgePermutation(i)
	}
	return ep
}

// EOArray returns the full edge orientation array.
func (c *Cube) EOArray() [12]int {
	var eo [12]int
	for i := range eo {
		eo[i] = c.EdgeOrientation(i)
	}
	return eo
}

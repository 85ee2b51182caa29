package cube

// Face is one of the six fixed face orientations. The ordering U, D, L, R,
// F, B is load-bearing: it is the "face index 0..5" the move-pruning rule
// in the search engine compares against, and it lines up Color(f) with the
// home color of Face(f).
type Face int

const (
	U Face = iota
	D
	L
	R
	F
	B
)

func (f Face) String() string {
	return faceNames[f]
}

var faceNames = [6]string{"U", "D", "L", "R", "F", "B"}

// HomeColor is the fixed color painted on the center facelet of f.
func (f Face) HomeColor() Color {
	return Color(f)
}

// opposite reports whether a and b name the two faces on the same axis.
func opposite(a, b Face) bool {
	return a/2 == b/2 && a != b
}

// Package cube implements the facelet-level state of a 3x3x3 twisty cube:
// move application, solvability validation, and extraction of the piece
// permutation/orientation arrays and solver coordinates.
package cube

// Color is one of the six fixed sticker colors. The ordering is an
// implementation choice but is stable across the process and matches the
// Face home-color assignment one-for-one: Color(f) is the home color of
// Face(f).
type Color int

const (
	White  Color = iota // home of U
	Yellow              // home of D
	Green               // home of L
	Blue                // home of R
	Red                 // home of F
	Orange              // home of B
)

func (c Color) String() string {
	return colorNames[c]
}

var colorNames = [6]string{"W", "Y", "G", "B", "R", "O"}

// NumColors is the number of distinct sticker colors.
const NumColors = 6

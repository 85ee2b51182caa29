package cube

import "strings"

// Move is one of the eighteen face turns, enumerated face-major in the
// fixed order U, U', U2, D, D', D2, L, L', L2, R, R', R2, F, F', F2, B, B',
// B2 (index 0..17). Turn kind (CW, CCW, 180) is move % 3.
type Move int

const (
	U1 Move = iota
	U3
	U2m
	D1
	D3
	D2m
	L1
	L3
	L2m
	R1
	R3
	R2m
	F1
	F3
	F2m
	B1
	B3
	B2m
)

// NumMoves is the size of the full 18-move set.
const NumMoves = 18

// turnCW, turnCCW, turnHalf are the turn-kind values m%3 takes.
const (
	turnCW = iota
	turnCCW
	turnHalf
)

// Face returns the face a move turns.
func (m Move) Face() Face {
	return Face(int(m) / 3)
}

func (m Move) turn() int {
	return int(m) % 3
}

// Inverse flips CW<->CCW for quarter turns; half turns are self-inverse.
func (m Move) Inverse() Move {
	switch m.turn() {
	case turnCW:
		return m + 1
	case turnCCW:
		return m - 1
	default:
		return m
	}
}

// quarterTurns is how many clockwise quarter-turns of Face() realize m.
func (m Move) quarterTurns() int {
	switch m.turn() {
	case turnCW:
		return 1
	case turnCCW:
		return 3
	default:
		return 2
	}
}

var moveNames = [18]string{
	"U", "U'", "U2",
	"D", "D'", "D2",
	"L", "L'", "L2",
	"R", "R'", "R2",
	"F", "F'", "F2",
	"B", "B'", "B2",
}

func (m Move) String() string {
	if m < 0 || int(m) >= NumMoves {
		return "?"
	}
	return moveNames[m]
}

// ParseMove parses one canonical move string ("R", "R'", "R2", ...).
func ParseMove(s string) (Move, bool) {
	for i, name := range moveNames {
		if name == s {
			return Move(i), true
		}
	}
	return 0, false
}

// FormatMoves joins a move sequence using canonical names, space separated.
func FormatMoves(moves []Move) string {
	names := make([]string, len(moves))
	for i, m := range moves {
		names[i] = m.String()
	}
	return strings.Join(names, " ")
}

// ParseMoves parses a whitespace-separated sequence of canonical move names.
func ParseMoves(s string) ([]Move, bool) {
	fields := strings.Fields(s)
	moves := make([]Move, 0, len(fields))
	for _, f := range fields {
		m, ok := ParseMove(f)
		if !ok {
			return nil, false
		}
		moves = append(moves, m)
	}
	return moves, true
}

// Phase2Moves is the 10-move generator set of the G1 subgroup, in the fixed
// order the phase-2 tables index by.
var Phase2Moves = [10]Move{U1, U3, U2m, D1, D3, D2m, L2m, R2m, F2m, B2m}

// Phase2Index maps an absolute Move to its index in Phase2Moves, or -1.
var Phase2Index = func() [18]int {
	var idx [18]int
	for i := range idx {
		idx[i] = -1
	}
	for i, m := range Phase2Moves {
		idx[m] = i
	}
	return idx
}()

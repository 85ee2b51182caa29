package cube

import "math/rand"

// Scramble applies n random legal moves and returns the sequence applied.
// Each move obeys the same move-pruning rule the search engine uses: no
// face is turned twice in a row, and of an opposite-face pair only the
// larger-indexed face may follow the smaller-indexed one. This keeps every
// scramble irreducible - no move ever undoes or merges with its
// predecessor.
func (c *Cube) Scramble(n int) []Move {
	return c.ScrambleSource(n, rand.New(rand.NewSource(rand.Int63())))
}

// ScrambleSource is Scramble with an explicit random source, for
// deterministic tests.
func (c *Cube) ScrambleSource(n int, r *rand.Rand) []Move {
	moves := make([]Move, 0, n)
	last := Face(-1)
	for i := 0; i < n; i++ {
		var m Move
		for {
			m = Move(r.Intn(NumMoves))
			f := m.Face()
			if f == last {
				continue
			}
			if last >= 0 && opposite(f, last) && f < last {
				continue
			}
			break
		}
		c.Apply(m)
		moves = append(moves, m)
		last = m.Face()
	}
	return moves
}

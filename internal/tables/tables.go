package tables

import (
	"sync"

	"github.com/delford/twophase-cube/internal/coord"
	"github.com/delford/twophase-cube/internal/cube"
)

// Tables holds every precomputed transition and pruning table the search
// engine reads. Once built it is immutable and safe for concurrent reads
// from any number of solves (§5).
type Tables struct {
	CoMove    [coord.NumCO][cube.NumMoves]uint16
	EoMove    [coord.NumEO][cube.NumMoves]uint16
	SliceMove [coord.NumSlice][cube.NumMoves]uint16

	CpMove [coord.NumCP][len(cube.Phase2Moves)]uint16
	EpMove [coord.NumEP][len(cube.Phase2Moves)]uint16
	SpMove [coord.NumSP][len(cube.Phase2Moves)]uint8

	// PruneCoSlice and PruneEoSlice are flattened [co*NumSlice+slice] and
	// [eo*NumSlice+slice] phase-1 distance tables.
	PruneCoSlice []uint8
	PruneEoSlice []uint8

	// PruneCpSp and PruneEpSp are flattened [cp*NumSP+sp] and
	// [ep*NumSP+sp] phase-2 distance tables.
	PruneCpSp []uint8
	PruneEpSp []uint8
}

var (
	once     sync.Once
	instance *Tables
)

// Get returns the process-wide table set, building it on the first call.
// Every later caller, regardless of how many race the first call, observes
// the fully built tables with no further synchronization cost.
func Get() *Tables {
	once.Do(func() {
		instance = build()
	})
	return instance
}

func build() *Tables {
	effects := buildMoveEffects()

	t := &Tables{
		CoMove:    buildCoMove(effects),
		EoMove:    buildEoMove(effects),
		SliceMove: buildSliceMove(effects),
		CpMove:    buildCpMove(effects),
		EpMove:    buildEpMove(effects),
		SpMove:    buildSpMove(effects),
	}

	t.PruneCoSlice = bfsPair(coord.NumCO, coord.NumSlice, cube.NumMoves,
		func(v, m int) int { return int(t.CoMove[v][m]) },
		func(v, m int) int { return int(t.SliceMove[v][m]) },
	)
	t.PruneEoSlice = bfsPair(coord.NumEO, coord.NumSlice, cube.NumMoves,
		func(v, m int) int { return int(t.EoMove[v][m]) },
		func(v, m int) int { return int(t.SliceMove[v][m]) },
	)
	t.PruneCpSp = bfsPair(coord.NumCP, coord.NumSP, len(cube.Phase2Moves),
		func(v, m int) int { return int(t.CpMove[v][m]) },
		func(v, m int) int { return int(t.SpMove[v][m]) },
	)
	t.PruneEpSp = bfsPair(coord.NumEP, coord.NumSP, len(cube.Phase2Moves),
		func(v, m int) int { return int(t.EpMove[v][m]) },
		func(v, m int) int { return int(t.SpMove[v][m]) },
	)

	return t
}

// Phase1Heuristic returns the admissible lower bound on remaining phase-1
// moves at coordinates (co, eo, slice).
func (t *Tables) Phase1Heuristic(co, eo, slice int) int {
	a := int(t.PruneCoSlice[co*coord.NumSlice+slice])
	b := int(t.PruneEoSlice[eo*coord.NumSlice+slice])
	if a > b {
		return a
	}
	return b
}

// Phase2Heuristic returns the admissible lower bound on remaining phase-2
// moves at coordinates (cp, ep, sp).
func (t *Tables) Phase2Heuristic(cp, ep, sp int) int {
	a := int(t.PruneCpSp[cp*coord.NumSP+sp])
	b := int(t.PruneEpSp[ep*coord.NumSP+sp])
	if a > b {
		return a
	}
	return b
}

// Package solver implements the two-phase (Kociemba-style) iterative
// deepening search: phase 1 restores the G1 subgroup, phase 2 restores the
// solved state from within it (§4.5).
package solver

import (
	"sync/atomic"

	"github.com/delford/twophase-cube/internal/cube"
	"github.com/delford/twophase-cube/internal/tables"
)

const (
	// kMaxPhase1 bounds the phase-1 search depth; consistent with
	// published two-phase results and the overall 31-move ceiling.
	kMaxPhase1 = 12
	// kMaxTotal is the hard ceiling on total solution length.
	kMaxTotal = 31
)

// Solve searches for a move sequence that brings c to the solved state. It
// does not mutate c. On the solved cube it returns an empty, non-nil
// sequence; on an unsolvable cube it also returns empty.
func Solve(c *cube.Cube) []cube.Move {
	return SolveWithProgress(c, nil, nil)
}

// SolveWithProgress is Solve with an optional cancellation flag and
// progress sink for long-running or backgrounded searches. Either may be
// nil, in which case a private, unobserved instance is used.
func SolveWithProgress(c *cube.Cube, cancel *atomic.Bool, progress *Progress) []cube.Move {
	if cancel == nil {
		cancel = new(atomic.Bool)
	}
	if progress == nil {
		progress = new(Progress)
	}

	if c.IsSolved() {
		return []cube.Move{}
	}
	if err := c.IsSolvable(); err != nil {
		return []cube.Move{}
	}
	if cancel.Load() {
		return []cube.Move{}
	}

	progress.Depth.Store(-1)
	tb := tables.Get()

	start := c.Clone()
	s := &searcher{tables: tb, cancel: cancel, progress: progress, start: start}

	co, eo, slice := start.CoCoord(), start.EoCoord(), start.SliceCoord()

	for d1 := 0; d1 <= kMaxPhase1; d1++ {
		progress.Depth.Store(int32(d1))
		if cancel.Load() {
			return []cube.Move{}
		}
		path := make([]cube.Move, 0, d1)
		if sol := s.phase1(co, eo, slice, d1, -1, path); sol != nil {
			return sol
		}
	}
	return []cube.Move{}
}

// searcher bundles the state one solve call needs; it holds no mutable
// shared state beyond the caller-supplied cancel flag and progress sink, so
// a fresh instance per call is free to race against any other solve.
type searcher struct {
	tables   *tables.Tables
	cancel   *atomic.Bool
	progress *Progress
	start    *cube.Cube
}

// moveAllowed applies the move-pruning rule: no face may follow itself, and
// of an opposite-face pair the smaller-indexed face may not directly follow
// the larger-indexed one. last < 0 means no move has been made yet.
func moveAllowed(last, f cube.Face) bool {
	if last < 0 {
		return true
	}
	if f == last {
		return false
	}
	if f/2 == last/2 && f < last {
		return false
	}
	return true
}

// phase1 searches for a path of length exactly remaining more moves that
// lands in G1 (CO=0, EO=0, SLICE=0), then hands off to phase 2.
func (s *searcher) phase1(co, eo, slice, remaining int, lastFace cube.Face, path []cube.Move) []cube.Move {
	if s.cancel.Load() {
		return nil
	}
	s.progress.Nodes.Add(1)

	if h := s.tables.Phase1Heuristic(co, eo, slice); h > remaining {
		return nil
	}

	if remaining == 0 {
		if co == 0 && eo == 0 && slice == 0 {
			return s.enterPhase2(path)
		}
		return nil
	}

	for m := cube.Move(0); m < cube.NumMoves; m++ {
		f := m.Face()
		if !moveAllowed(lastFace, f) {
			continue
		}
		nco := int(s.tables.CoMove[co][m])
		neo := int(s.tables.EoMove[eo][m])
		nslice := int(s.tables.SliceMove[slice][m])

		path = append(path, m)
		if sol := s.phase1(nco, neo, nslice, remaining-1, f, path); sol != nil {
			return sol
		}
		path = path[:len(path)-1]
	}
	return nil
}

// enterPhase2 replays the phase-1 path on a clone of the original cube to
// read the exact CP/EP/SP coordinates (not tracked during phase 1, since
// the spec defines cp_move/ep_move/sp_move only at phase-2's 10-move
// width), then runs phase-2 IDA* within the remaining move budget.
func (s *searcher) enterPhase2(path []cube.Move) []cube.Move {
	budget := kMaxTotal - len(path)
	if budget < 0 {
		return nil
	}

	working := s.start.Clone()
	working.ApplyMoves(path)
	cp, ep, sp := working.CpCoord(), working.EpCoord(), working.SpCoord()

	for d2 := 0; d2 <= budget; d2++ {
		if s.cancel.Load() {
			return nil
		}
		p2 := make([]cube.Move, 0, d2)
		if sol := s.phase2(cp, ep, sp, d2, -1, p2); sol != nil {
			full := make([]cube.Move, 0, len(path)+len(sol))
			full = append(full, path...)
			full = append(full, sol...)
			return full
		}
	}
	return nil
}

// phase2 searches for a path of length exactly remaining more phase-2
// moves that reaches the fully solved state (CP=0, EP=0, SP=0).
func (s *searcher) phase2(cp, ep, sp, remaining int, lastFace cube.Face, path []cube.Move) []cube.Move {
	if s.cancel.Load() {
		return nil
	}
	s.progress.Nodes.Add(1)

	if h := s.tables.Phase2Heuristic(cp, ep, sp); h > remaining {
		return nil
	}

	if remaining == 0 {
		if cp == 0 && ep == 0 && sp == 0 {
			out := make([]cube.Move, len(path))
			copy(out, path)
			return out
		}
		return nil
	}

	for j, m := range cube.Phase2Moves {
		f := m.Face()
		if !moveAllowed(lastFace, f) {
			continue
		}
		ncp := int(s.tables.CpMove[cp][j])
		nep := int(s.tables.EpMove[ep][j])
		nsp := int(s.tables.SpMove[sp][j])

		path = append(path, m)
		if sol := s.phase2(ncp, nep, nsp, remaining-1, f, path); sol != nil {
			return sol
		}
		path = path[:len(path)-1]
	}
	return nil
}

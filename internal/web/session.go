package web

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/delford/twophase-cube/internal/cube"
	"github.com/delford/twophase-cube/internal/solver"
)

// solveSession tracks one in-flight or completed solve, identified by a
// uuid. The search runs on its own goroutine; handlers only ever read
// atomics or the done flag guarded by Server.mu.
type solveSession struct {
	id        string
	recordID  string
	scramble  string
	cancel    atomic.Bool
	progress  solver.Progress
	startedAt time.Time

	done     bool
	solution []cube.Move
	duration time.Duration
}

func newSession(scramble string) *solveSession {
	return &solveSession{
		id:        uuid.NewString(),
		scramble:  scramble,
		startedAt: time.Now(),
	}
}

// run executes the search to completion and records the result. Call on
// its own goroutine; s itself is safe for the caller to poll concurrently
// via atomics, but done/solution/duration are only safe to read after the
// caller observes done via the same mutex the Server uses.
func (s *solveSession) run(c *cube.Cube, finish func(sess *solveSession)) {
	solution := solver.SolveWithProgress(c, &s.cancel, &s.progress)
	s.solution = solution
	s.duration = time.Since(s.startedAt)
	finish(s)
}

package solver

import "sync/atomic"

// Progress is written only by the searching goroutine and read by any
// number of observers; every field is a word-sized atomic so no additional
// synchronization is required, and cross-field consistency is not
// guaranteed or needed (§5).
type Progress struct {
	// Nodes is a monotonic count of DFS node expansions.
	Nodes atomic.Uint64
	// Depth is -1 while tables are being built on first call, then the
	// current phase-1 target depth as each outer iteration begins.
	Depth atomic.Int32
}

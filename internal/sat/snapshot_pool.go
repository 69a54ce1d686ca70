package sat

import "sync"

// Snapshot/Restore is the rollback primitive GetUnits and GetAllUnits lean
// on most heavily (every propagation attempt takes one), so snapshot
// buffers are pooled instead of allocated fresh each time. The teacher pools
// clause literals in clauses_alloc.go with a four-size-class scheme, because
// a CDCL clause database holds clauses of widely varying, unpredictable
// length. A lambda snapshot has none of that variance: every snapshot taken
// during one search is capped at the same bound, the formula's variable
// count n, so a single pool that grows its slice to n once and reuses it
// from then on replaces the teacher's size-classed scheme entirely (the
// Non-goals already disclaim guaranteeing optimal complexity, so trading the
// size classes' tighter-capacity guarantee for a simpler pool is in scope).
var snapshotPool = sync.Pool{
	New: func() any {
		s := make([]Literal, 0)
		return &s
	},
}

// allocSnapshotSlice returns an empty slice with at least the given capacity.
func allocSnapshotSlice(capa int) *[]Literal {
	ref := snapshotPool.Get().(*[]Literal)
	if cap(*ref) < capa {
		s := make([]Literal, 0, capa)
		ref = &s
	}
	return ref
}

// freeSnapshotSlice returns a snapshot slice to the pool.
func freeSnapshotSlice(s *[]Literal) {
	*s = (*s)[:0]
	snapshotPool.Put(s)
}

package sat

// Lambda is the partial assignment maintained during search: an ordered
// sequence of encoded literals with O(1) membership tests. Invariants
// maintained by callers (never enforced here, since propagation conflicts
// are the normal way lambda is kept consistent, not exceptions):
//
//   - I1: no literal appears twice.
//   - I2: no literal and its opposite both appear.
//   - I3: at termination |lambda| = n and every clause is satisfied.
//
// The driver (engine.go) appends new candidates with Add. Propagation
// (propagate.go) prepends forced literals with Prepend, matching the
// documented (and preserved, SPEC_FULL.md §9) insertion-order asymmetry of
// the original design: order affects iteration inside one GetAllUnits
// fixpoint but never correctness.
type Lambda struct {
	n     int
	order []Literal
	in    []bool // indexed by Literal, size 2n+1
}

// NewLambda returns an empty partial assignment for a formula over n
// variables.
func NewLambda(n int) *Lambda {
	return &Lambda{
		n:  n,
		in: make([]bool, 2*n+1),
	}
}

// Len returns the number of literals currently assigned.
func (la *Lambda) Len() int {
	return len(la.order)
}

// Contains reports whether l is currently in lambda.
func (la *Lambda) Contains(l Literal) bool {
	return la.in[l]
}

// OppositeIn reports whether Opposite(l) is currently in lambda.
func (la *Lambda) OppositeIn(l Literal) bool {
	return la.in[l.Opposite(la.n)]
}

// Add appends l to the end of the assignment order. Used by the search
// driver when it extends lambda with a new candidate literal.
func (la *Lambda) Add(l Literal) {
	la.order = append(la.order, l)
	la.in[l] = true
}

// Prepend inserts l at the front of the assignment order. Used by the unit
// propagators, which treat newly forced literals as more significant than
// whatever is already assigned.
func (la *Lambda) Prepend(l Literal) {
	la.order = append(la.order, 0)
	copy(la.order[1:], la.order[:len(la.order)-1])
	la.order[0] = l
	la.in[l] = true
}

// PopLast removes and returns the most recently added literal.
func (la *Lambda) PopLast() Literal {
	l := la.order[len(la.order)-1]
	la.order = la.order[:len(la.order)-1]
	la.in[l] = false
	return l
}

// Literals returns the current assignment order. The returned slice aliases
// lambda's internal storage and must be treated as read-only by the caller.
func (la *Lambda) Literals() []Literal {
	return la.order
}

// Snapshot returns an independent copy of the current assignment, suitable
// for a later Restore. GetUnits and GetAllUnits take a snapshot on entry and
// restore it on any conflict path, so no partial mutation ever leaks to the
// caller (SPEC_FULL.md §5 rollback discipline). The backing slice comes
// from a single shared pool (snapshot_pool.go); callers must pass it to
// ReleaseSnapshot once they are done with it, whether or not it was used to
// Restore.
func (la *Lambda) Snapshot() []Literal {
	ref := allocSnapshotSlice(len(la.order))
	*ref = append((*ref)[:0], la.order...)
	return *ref
}

// ReleaseSnapshot returns a snapshot slice obtained from Snapshot to the
// pool. Safe to call even after the slice was passed to Restore.
func (la *Lambda) ReleaseSnapshot(snapshot []Literal) {
	freeSnapshotSlice(&snapshot)
}

// Restore resets lambda to a previously captured Snapshot.
func (la *Lambda) Restore(snapshot []Literal) {
	for _, l := range la.order {
		la.in[l] = false
	}
	la.order = append(la.order[:0], snapshot...)
	for _, l := range la.order {
		la.in[l] = true
	}
}

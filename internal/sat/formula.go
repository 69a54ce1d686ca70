package sat

import "fmt"

// Formula holds a 3-CNF instance as three parallel arrays of signed DIMACS
// literals, one entry per clause: clause k is (A[k], B[k], C[k]). Literal 0
// never appears; AddClause pads under-specified clauses by duplicating the
// preceding literal, so every clause is effectively a 3-tuple even though it
// may be semantically 1- or 2-arity.
//
// Formula is the build target for the DIMACS reader (§4.11): it only needs
// to know how many variables exist and which signed literals make up each
// clause. Literal encoding into the 1..2n adjacency space happens later, in
// BuildAdjacency, not here — this keeps Formula a plain data holder that an
// external parser package can populate without importing the propagation
// machinery.
type Formula struct {
	N int // number of variables, 1..N

	A []int
	B []int
	C []int
}

// NewFormula returns an empty formula over n variables.
func NewFormula(n int) *Formula {
	return &Formula{N: n}
}

// NumVariables returns the number of variables the formula is over.
func (f *Formula) NumVariables() int {
	return f.N
}

// AddVariable grows the formula by one variable and returns its 1-based id.
// It exists so Formula can serve directly as a DIMACS build target, matching
// the incremental AddVariable/AddClause shape external parsers expect.
func (f *Formula) AddVariable() int {
	f.N++
	return f.N
}

// NumClauses returns the number of clauses currently in the formula.
func (f *Formula) NumClauses() int {
	return len(f.A)
}

// Clause returns the three signed literals of clause k (0-indexed).
func (f *Formula) Clause(k int) (a, b, c int) {
	return f.A[k], f.B[k], f.C[k]
}

// AddClause appends a clause made of 1 to 3 non-zero signed literals. Clauses
// with fewer than three literals are padded by duplicating the last literal
// given, per the documented (and intentionally preserved, see §9 of
// SPEC_FULL.md) DIMACS parser convention. Reports an error for an empty or
// over-long clause rather than silently truncating.
func (f *Formula) AddClause(lits []int) error {
	clause := make([]int, 0, 3)
	for _, l := range lits {
		if l == 0 {
			continue
		}
		clause = append(clause, l)
	}
	switch {
	case len(clause) == 0:
		return fmt.Errorf("sat: clause has no non-zero literals")
	case len(clause) > 3:
		return fmt.Errorf("sat: clause has %d literals, NanoSat only supports 3-CNF", len(clause))
	}
	for len(clause) < 3 {
		clause = append(clause, clause[len(clause)-1])
	}

	f.A = append(f.A, clause[0])
	f.B = append(f.B, clause[1])
	f.C = append(f.C, clause[2])
	return nil
}

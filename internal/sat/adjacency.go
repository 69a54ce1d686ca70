package sat

// BuildAdjacency builds the positive-view adjacency index and the
// opposite-adjacency index used by the unit-propagation primitives (C2).
//
// adj[l] is a flat sequence of companion literals: for every clause
// containing l, the other two literals of that clause are appended in
// clause order. |adj[l]| is always even (P2); entries adj[l][2i] and
// adj[l][2i+1] are the two companions of one occurrence of l.
//
// adjOpp[l] is adj[Opposite(l)] re-encoded, with each pair normalized so
// the more-constrained literal sits in the second slot (see the pair-swap
// rule below). This is a documented invariant, not an optimization that
// can be silently skipped: skipping it changes complexity-counter values
// even though it does not change correctness (SPEC_FULL.md §9).
func BuildAdjacency(f *Formula) (adj [][]Literal, adjOpp [][]Literal) {
	n := f.N
	size := 2*n + 1 // literals live in 1..2n; index 0 is unused

	// others[i] lists the positions of the other two literals, in clause order.
	others := [3][2]int{{1, 2}, {0, 2}, {0, 1}}

	adj = make([][]Literal, size)
	for k := 0; k < f.NumClauses(); k++ {
		a, b, c := f.Clause(k)
		enc := [3]Literal{Encode(a, n), Encode(b, n), Encode(c, n)}
		for i := 0; i < 3; i++ {
			j, k2 := others[i][0], others[i][1]
			adj[enc[i]] = append(adj[enc[i]], enc[j], enc[k2])
		}
	}

	adjOpp = make([][]Literal, size)
	for l := 1; l <= 2*n; l++ {
		src := adj[Literal(l).Opposite(n)]
		cp := make([]Literal, len(src))
		copy(cp, src)
		adjOpp[l] = cp
	}

	for l := 1; l <= 2*n; l++ {
		normalizePairs(adjOpp[l], n)
	}

	return adj, adjOpp
}

// normalizePairs applies the pair-swap rule of §4.2 step 3 in place: for
// each pair (x, y), if Opposite(x) appears among the left column (any pair's
// x), swap the pair; then if Opposite(y) (post-swap) appears among the right
// column (any pair's y), swap again.
func normalizePairs(pairs []Literal, n int) {
	for i := 0; i+1 < len(pairs); i += 2 {
		x, y := pairs[i], pairs[i+1]

		if leftColumnContains(pairs, x.Opposite(n)) {
			x, y = y, x
		}
		if rightColumnContains(pairs, y.Opposite(n)) {
			x, y = y, x
		}

		pairs[i], pairs[i+1] = x, y
	}
}

func leftColumnContains(pairs []Literal, target Literal) bool {
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i] == target {
			return true
		}
	}
	return false
}

func rightColumnContains(pairs []Literal, target Literal) bool {
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] == target {
			return true
		}
	}
	return false
}

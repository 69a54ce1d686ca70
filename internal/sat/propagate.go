package sat

// FindUnits scans adjOpp[anchor] for pairs whose partner clause is already
// falsified except for one literal, and pushes that literal onto frontier
// (C5, §4.4). It never mutates lambda.
//
// Each pair (x, y) in adjOpp[anchor] represents a clause whose third literal
// is anchor's opposite; if one of x, y is already falsified by the current
// assignment, the other is forced.
func FindUnits(adjOpp [][]Literal, lambda *Lambda, anchor Literal, n int, fr *frontier, stats *Stats) {
	stats.FindUnitsCalls++
	pairs := adjOpp[anchor]
	stats.W += float64(len(pairs))

	for i := 0; i+1 < len(pairs); i += 2 {
		x, y := pairs[i], pairs[i+1]

		if lambda.Contains(x.Opposite(n)) && !lambda.Contains(y) && !fr.Contains(y) {
			fr.Push(y)
		}
		if lambda.Contains(y.Opposite(n)) && !lambda.Contains(x) && !fr.Contains(x) {
			fr.Push(x)
		}
	}
}

// GetUnits propagates from anchor to a local fixpoint (C6, §4.5). It returns
// false on conflict, restoring lambda to its value at entry (P4); only
// active when |lambda| > 1, since a single assigned literal cannot yet
// conflict with itself.
func GetUnits(adjOpp [][]Literal, lambda *Lambda, anchor Literal, n int, fr *frontier, stats *Stats) bool {
	stats.GetUnitsCalls++

	if lambda.Len() <= 1 {
		return true
	}

	snapshot := lambda.Snapshot()
	defer lambda.ReleaseSnapshot(snapshot)
	fr.Reset()
	FindUnits(adjOpp, lambda, anchor, n, fr, stats)

	for {
		u, ok := fr.Pop()
		if !ok {
			break
		}
		if lambda.Contains(u.Opposite(n)) || fr.Contains(u.Opposite(n)) {
			lambda.Restore(snapshot)
			return false
		}
		lambda.Prepend(u)
		FindUnits(adjOpp, lambda, u, n, fr, stats)
	}

	return true
}

// GetOppUnits derives units along the opposite-literal neighborhood of
// anchor (C7, §4.6). It returns false on any conflicting pair; unlike
// GetUnits it does not itself restore lambda on failure: a failed GetUnits
// call rolls back its own mutations, but literals added by earlier
// successful GetUnits calls stay in lambda until the caller (GetAllUnits)
// restores its snapshot.
func GetOppUnits(adjOpp [][]Literal, lambda *Lambda, anchor Literal, n int, fr *frontier, stats *Stats) bool {
	stats.GetOppUnitsCalls++
	pairs := adjOpp[anchor]
	stats.W += float64(len(pairs))

	for i := 0; i+1 < len(pairs); i += 2 {
		x, y := pairs[i], pairs[i+1]

		if lambda.Contains(x.Opposite(n)) && lambda.Contains(y.Opposite(n)) {
			return false // neither x nor y can be satisfied: clause is dead
		}
		if lambda.Contains(x) || lambda.Contains(y) {
			continue // pair already covered
		}
		if !GetUnits(adjOpp, lambda, x, n, fr, stats) && !GetUnits(adjOpp, lambda, y, n, fr, stats) {
			return false
		}
	}

	return true
}

// GetAllUnits runs GetUnits over every literal currently in lambda to a
// fixpoint, then GetOppUnits over the (possibly larger) result (C, §4.7).
// On success, every currently unit-propagable literal is in lambda and no
// clause is yet violated (P3).
func GetAllUnits(adjOpp [][]Literal, lambda *Lambda, n int, fr *frontier, stats *Stats) bool {
	snapshot := lambda.Snapshot()
	defer lambda.ReleaseSnapshot(snapshot)

	for _, l := range snapshot {
		if !GetUnits(adjOpp, lambda, l, n, fr, stats) {
			lambda.Restore(snapshot)
			return false
		}
	}

	afterUnits := lambda.Snapshot()
	defer lambda.ReleaseSnapshot(afterUnits)
	for _, l := range afterUnits {
		if !GetOppUnits(adjOpp, lambda, l, n, fr, stats) {
			lambda.Restore(snapshot)
			return false
		}
	}

	return true
}

package sat

import "math"

// Stats accumulates the empirical work counter and call counts that the
// Complexity Counter (C10) uses to derive a diagnostic order. None of this
// feeds back into correctness; it exists purely to report how hard a run
// was (§4.10).
type Stats struct {
	// W is the monotone work counter: incremented by |lambda| at each
	// SaveState and by |adjOpp[l]| during FindUnits and GetOppUnits.
	W float64

	FindUnitsCalls   int64
	GetUnitsCalls    int64
	GetOppUnitsCalls int64

	// LambdaHistory[i] and HeadHistory[i] record |lambda| and the current
	// candidate literal at the end of main-loop iteration i.
	LambdaHistory []int
	HeadHistory   []Literal

	pace EMA
}

// NewStats returns a zeroed Stats with a moderately smoothed pace EMA.
func NewStats() *Stats {
	return &Stats{pace: NewEMA(0.9)}
}

// RecordIteration appends one main-loop iteration's (|lambda|, head) pair to
// the history and folds the iteration's work delta into the pace EMA.
func (s *Stats) RecordIteration(lambdaLen int, head Literal, workDelta float64) {
	s.LambdaHistory = append(s.LambdaHistory, lambdaLen)
	s.HeadHistory = append(s.HeadHistory, head)
	s.pace.Add(workDelta)
}

// Pace returns the exponentially smoothed work-per-iteration figure.
func (s *Stats) Pace() float64 {
	return s.pace.Val()
}

// Iterations returns the number of recorded main-loop iterations.
func (s *Stats) Iterations() int {
	return len(s.LambdaHistory)
}

// WorkPerLoop returns the arithmetic mean of work per main-loop iteration,
// one of the fields reported in results*.csv (SPEC_FULL.md §4.13).
func (s *Stats) WorkPerLoop() float64 {
	if n := s.Iterations(); n > 0 {
		return s.W / float64(n)
	}
	return 0
}

// Order returns the empirical complexity order log_n(W): a rough exponent,
// never a theoretical bound (§4.10). Returns 0 for the degenerate n<=1 case.
func Order(w float64, n int) float64 {
	if n <= 1 || w <= 0 {
		return 0
	}
	return math.Log(w) / math.Log(float64(n))
}

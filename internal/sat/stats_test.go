package sat

import "testing"

func TestStats_recordIteration(t *testing.T) {
	s := NewStats()
	s.RecordIteration(1, 4, 2.0)
	s.RecordIteration(2, 5, 4.0)

	if s.Iterations() != 2 {
		t.Errorf("Iterations() = %d, want 2", s.Iterations())
	}
	if len(s.LambdaHistory) != 2 || s.LambdaHistory[1] != 2 {
		t.Errorf("LambdaHistory = %v, want [1 2]", s.LambdaHistory)
	}
	if len(s.HeadHistory) != 2 || s.HeadHistory[1] != 5 {
		t.Errorf("HeadHistory = %v, want [4 5]", s.HeadHistory)
	}
}

func TestStats_workPerLoop(t *testing.T) {
	s := NewStats()
	s.W = 10
	s.RecordIteration(1, 1, 10)
	s.RecordIteration(2, 2, 0)

	if got := s.WorkPerLoop(); got != 5 {
		t.Errorf("WorkPerLoop() = %v, want 5", got)
	}
}

func TestStats_workPerLoop_noIterations(t *testing.T) {
	s := NewStats()
	if got := s.WorkPerLoop(); got != 0 {
		t.Errorf("WorkPerLoop() = %v, want 0", got)
	}
}

func TestOrder(t *testing.T) {
	if got := Order(0, 5); got != 0 {
		t.Errorf("Order(0, 5) = %v, want 0", got)
	}
	if got := Order(10, 1); got != 0 {
		t.Errorf("Order(10, 1) = %v, want 0 for degenerate n<=1", got)
	}
	// log_2(8) == 3
	if got := Order(8, 2); got < 2.999 || got > 3.001 {
		t.Errorf("Order(8, 2) = %v, want ~3", got)
	}
}

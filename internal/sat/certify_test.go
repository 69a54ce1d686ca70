package sat

import "testing"

func TestCertify_satisfyingAssignment(t *testing.T) {
	f := NewFormula(3)
	_ = f.AddClause([]int{1, 2, 3})
	_ = f.AddClause([]int{-1, 2, -3})

	la := NewLambda(3)
	la.Add(Encode(1, 3))
	la.Add(Encode(2, 3))
	la.Add(Encode(-3, 3))

	if !Certify(f, la) {
		t.Errorf("Certify() = false, want true")
	}
}

func TestCertify_incompleteAssignment(t *testing.T) {
	f := NewFormula(3)
	_ = f.AddClause([]int{1, 2, 3})

	la := NewLambda(3)
	la.Add(Encode(1, 3))

	if Certify(f, la) {
		t.Errorf("Certify() = true, want false for an incomplete assignment")
	}
}

func TestCertify_unsatisfiedClause(t *testing.T) {
	f := NewFormula(3)
	_ = f.AddClause([]int{1, 2, 3})

	la := NewLambda(3)
	la.Add(Encode(-1, 3))
	la.Add(Encode(-2, 3))
	la.Add(Encode(-3, 3))

	if Certify(f, la) {
		t.Errorf("Certify() = true, want false: clause (1 2 3) is falsified")
	}
}

func TestCertify_inconsistentAssignment(t *testing.T) {
	f := NewFormula(2)
	_ = f.AddClause([]int{1, 2, 2})

	la := NewLambda(2)
	la.Add(Encode(1, 2))
	la.Add(Encode(-1, 2))

	if Certify(f, la) {
		t.Errorf("Certify() = true, want false: 1 and -1 both assigned")
	}
}

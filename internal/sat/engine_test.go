package sat

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func buildFormula(t *testing.T, n int, clauses [][]int) *Formula {
	t.Helper()
	f := NewFormula(n)
	for _, c := range clauses {
		if err := f.AddClause(c); err != nil {
			t.Fatalf("AddClause(%v) error = %v", c, err)
		}
	}
	return f
}

func TestRunEngine_B1_singleTautologicalLiteral(t *testing.T) {
	f := buildFormula(t, 1, [][]int{{1, 1, 1}})
	e := NewEngine(f, DefaultOptions)
	res := e.RunEngine(1)

	if res.Status != Sat {
		t.Fatalf("Status = %v, want Sat", res.Status)
	}
	if len(res.Model) != 1 || res.Model[0] != 1 {
		t.Errorf("Model = %v, want [1]", res.Model)
	}
}

func TestRunEngine_B2_tautologyClause(t *testing.T) {
	f := buildFormula(t, 1, [][]int{{1, -1, 1}})
	e := NewEngine(f, DefaultOptions)
	res := e.RunEngine(1)

	if res.Status != Sat {
		t.Fatalf("Status = %v, want Sat", res.Status)
	}
}

func TestRunEngine_B3_contradictoryPairIsUnsat(t *testing.T) {
	f := buildFormula(t, 1, [][]int{{1, 1, 1}, {-1, -1, -1}})
	for start := Literal(1); start <= 2; start++ {
		e := NewEngine(f, DefaultOptions)
		res := e.RunEngine(start)
		if res.Status != Unsat {
			t.Errorf("RunEngine(%d).Status = %v, want Unsat", start, res.Status)
		}
	}
}

func TestRunEngine_B4_manyAssignmentsSatisfy(t *testing.T) {
	f := buildFormula(t, 3, [][]int{{1, 2, 3}, {-1, -2, -3}})
	e := NewEngine(f, DefaultOptions)
	res := e.RunEngine(1)

	if res.Status != Sat {
		t.Fatalf("Status = %v, want Sat", res.Status)
	}
	if !Certify(f, lambdaFromModel(res)) {
		t.Errorf("Certify(): want the reported model to satisfy the formula")
	}
}

func TestRunEngine_scenario1_trivialSAT(t *testing.T) {
	f := buildFormula(t, 3, [][]int{{1, 2, 3}, {-1, -2, 3}})
	e := NewEngine(f, DefaultOptions)
	res := e.RunEngine(1)

	if res.Status != Sat {
		t.Fatalf("Status = %v, want Sat", res.Status)
	}
	if !containsSigned(res.Model, 3) {
		t.Errorf("Model = %v, want 3 present (positive)", res.Model)
	}
}

func TestRunEngine_scenario2_forcedChain(t *testing.T) {
	f := buildFormula(t, 2, [][]int{{1, 2, 2}, {-1, 2, 2}})
	e := NewEngine(f, DefaultOptions)
	res := e.RunEngine(1)

	if res.Status != Sat {
		t.Fatalf("Status = %v, want Sat", res.Status)
	}
	if !containsSigned(res.Model, 2) {
		t.Errorf("Model = %v, want 2 forced true", res.Model)
	}
}

func TestRunEngine_scenario3_pigeonholeUnsat(t *testing.T) {
	f := buildFormula(t, 2, [][]int{
		{1, 1, 1},
		{-1, -1, -1},
		{2, 2, 2},
		{-2, -2, -2},
	})
	e := NewEngine(f, DefaultOptions)
	res := e.RunEngine(1)

	if res.Status != Unsat {
		t.Fatalf("Status = %v, want Unsat", res.Status)
	}
}

func TestRunEngine_scenario4_polarityFlipRecovery(t *testing.T) {
	f := buildFormula(t, 3, [][]int{{1, 2, 3}, {-1, 2, 3}, {1, -2, 3}})
	e := NewEngine(f, DefaultOptions)
	res := e.RunEngine(Encode(-3, 3))

	if res.Status != Sat {
		t.Fatalf("Status = %v, want Sat after backtracking", res.Status)
	}
	if !containsSigned(res.Model, 3) {
		t.Errorf("Model = %v, want positive 3 forced", res.Model)
	}
}

func TestRunEngine_scenario6_exhaustiveCoversEveryStart(t *testing.T) {
	f := buildFormula(t, 3, [][]int{{1, 2, 3}})
	e := NewEngine(f, DefaultOptions)
	results := e.RunAll()

	if len(results) != 6 {
		t.Fatalf("RunAll() returned %d results, want 6", len(results))
	}

	minOrder, maxOrder := results[0].ComplexityOrder, results[0].ComplexityOrder
	for _, res := range results {
		if res.Status != Sat {
			t.Errorf("BaseLiteral %d: Status = %v, want Sat (trivially satisfiable formula)", res.BaseLiteral, res.Status)
		}
		if res.ComplexityOrder < minOrder {
			minOrder = res.ComplexityOrder
		}
		if res.ComplexityOrder > maxOrder {
			maxOrder = res.ComplexityOrder
		}
	}
	if minOrder > maxOrder {
		t.Errorf("minOrder %v > maxOrder %v", minOrder, maxOrder)
	}
}

func TestRunEngine_R3_deterministicAcrossRuns(t *testing.T) {
	f := buildFormula(t, 3, [][]int{{1, 2, 3}, {-1, 2, 3}, {1, -2, 3}})

	e1 := NewEngine(f, DefaultOptions)
	res1 := e1.RunEngine(1)

	e2 := NewEngine(f, DefaultOptions)
	res2 := e2.RunEngine(1)

	if res1.TotalWork != res2.TotalWork {
		t.Errorf("TotalWork differs across runs: %v vs %v", res1.TotalWork, res2.TotalWork)
	}
	if diff := cmp.Diff(res1.Model, res2.Model); diff != "" {
		t.Errorf("Model differs across runs (-run1 +run2):\n%s", diff)
	}
}

func lambdaFromModel(res *Result) *Lambda {
	la := NewLambda(res.N)
	for _, signed := range res.Model {
		la.Add(Encode(signed, res.N))
	}
	return la
}

func containsSigned(model []int, signed int) bool {
	for _, l := range model {
		if l == signed {
			return true
		}
	}
	return false
}


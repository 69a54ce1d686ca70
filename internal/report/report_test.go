package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/arwyn/nanosat/internal/sat"
)

func TestReporter_ResultPrintsHeaderOnce(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, 3, false)

	res := &sat.Result{
		Status:          sat.Sat,
		BaseLiteral:     1,
		N:               3,
		Elapsed:         10 * time.Millisecond,
		ComplexityOrder: 1.5,
		MDBSize:         4,
	}
	r.Result(res)
	r.Result(res)

	out := buf.String()
	if strings.Count(out, "literal") != 1 {
		t.Errorf("header printed %d times, want 1", strings.Count(out, "literal"))
	}
	if strings.Count(out, "SAT") < 2 {
		t.Errorf("output = %q, want two result lines", out)
	}
}

func TestReporter_PrintSolAppendsModel(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, 1, true)

	res := &sat.Result{
		Status: sat.Sat,
		N:      1,
		Model:  []int{1},
	}
	r.Result(res)

	if !strings.Contains(buf.String(), "solution:") {
		t.Errorf("output = %q, want a solution line", buf.String())
	}
}

func TestReporter_Summary(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, 1, false)

	results := []*sat.Result{
		{Status: sat.Sat},
		{Status: sat.Unsat},
		{Status: sat.Unknown},
	}
	r.Summary(results)

	out := buf.String()
	if !strings.Contains(out, "total runs: 3") {
		t.Errorf("output = %q, want total runs: 3", out)
	}
}

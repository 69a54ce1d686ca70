// Package report prints one line of search results per starting literal to
// the console, in the teacher's c-prefixed fixed-width idiom
// (printSeparator/printSearchHeader/printSearchStats in internal/sat's
// original solver.go) rather than through a logging framework (C12, §4.12).
package report

import (
	"fmt"
	"io"

	"github.com/arwyn/nanosat/internal/sat"
)

// Reporter writes console progress lines for a batch of Engine runs.
type Reporter struct {
	w          io.Writer
	printSol   bool
	n          int
	headerDone bool
}

// New returns a Reporter that writes to w. printSol controls whether the
// decoded solution literals are appended to SAT lines (the CLI's "sol"
// token, §4.16).
func New(w io.Writer, n int, printSol bool) *Reporter {
	return &Reporter{w: w, n: n, printSol: printSol}
}

func (r *Reporter) Separator() {
	fmt.Fprintln(r.w, "c -------------------------------------------------------------------------------------")
}

func (r *Reporter) Header() {
	r.Separator()
	fmt.Fprintln(r.w, "c         literal       status           order      wall time           mdb size")
	r.Separator()
	r.headerDone = true
}

// Result prints one fixed-width line for res.
func (r *Reporter) Result(res *sat.Result) {
	if !r.headerDone {
		r.Header()
	}
	fmt.Fprintf(
		r.w,
		"c %15d %12s %15.3f %14.3fs %18d\n",
		res.BaseLiteral.Decode(res.N),
		res.Status.String(),
		res.ComplexityOrder,
		res.Elapsed.Seconds(),
		res.MDBSize,
	)
	if r.printSol && res.Status == sat.Sat {
		fmt.Fprintf(r.w, "c solution: %v\n", res.Model)
	}
}

// Summary prints one aggregate line of SAT/NON-SAT/unknown counts for
// results, between separators. The batch runner and the CLI do not call it.
func (r *Reporter) Summary(results []*sat.Result) {
	r.Separator()
	satCount, unsatCount, unknownCount := 0, 0, 0
	for _, res := range results {
		switch res.Status {
		case sat.Sat:
			satCount++
		case sat.Unsat:
			unsatCount++
		default:
			unknownCount++
		}
	}
	fmt.Fprintf(r.w, "c total runs: %d  sat: %d  non-sat: %d  unknown: %d\n", len(results), satCount, unsatCount, unknownCount)
	r.Separator()
}

// Package resultfile writes one per-formula result file under a results
// directory (C14, §4.14 of SPEC_FULL.md): on SAT, every clause rewritten so
// its first literal is the one the model actually satisfies, plus a runtime
// footer; on UNSAT, the literal string "NON SAT,...". The one-clause-per-
// line text idiom is grounded on the teacher's model-file format
// (internal/dimacs/models.go's ParseModels), read here in reverse: we write
// the format that package was built to read.
package resultfile

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/arwyn/nanosat/internal/sat"
)

// Write creates <resultsDir>/<base>.txt for formula, describing res.
// base is typically the formula's filename without its directory or
// extension.
func Write(resultsDir, base string, f *sat.Formula, res *sat.Result, elapsed time.Duration) error {
	if err := os.MkdirAll(resultsDir, 0o755); err != nil {
		return fmt.Errorf("resultfile: creating %q: %w", resultsDir, err)
	}

	path := filepath.Join(resultsDir, base+".txt")
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("resultfile: creating %q: %w", path, err)
	}
	defer out.Close()

	if res.Status != sat.Sat {
		fmt.Fprintf(out, "NON SAT,%s\n", res.Status)
		return nil
	}

	satisfied := make(map[int]bool, len(res.Model))
	for _, l := range res.Model {
		satisfied[l] = true
	}

	for k := 0; k < f.NumClauses(); k++ {
		a, b, c := f.Clause(k)
		a, b, c = leadSatisfied(a, b, c, satisfied)
		fmt.Fprintf(out, "%d %d %d\n", a, b, c)
	}
	fmt.Fprintf(out, "c runtime_sec,%f\n", elapsed.Seconds())

	return nil
}

// leadSatisfied reorders a, b, c so that whichever one is present in
// satisfied comes first. If none is (shouldn't happen for a certified
// model) the triple is returned unchanged.
func leadSatisfied(a, b, c int, satisfied map[int]bool) (int, int, int) {
	switch {
	case satisfied[a]:
		return a, b, c
	case satisfied[b]:
		return b, a, c
	case satisfied[c]:
		return c, a, b
	default:
		return a, b, c
	}
}

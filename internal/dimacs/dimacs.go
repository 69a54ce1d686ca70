// Package dimacs loads 3-CNF formulas from DIMACS CNF files into a
// sat.Formula, and reads auxiliary "model" files used by the test fixtures
// (C11, §4.11). Parsing itself is delegated to the external
// github.com/rhartert/dimacs library rather than hand-rolled, matching the
// teacher's own parsers/parsers.go rather than its internal/dimacs package
// (which predates that dependency and scans DIMACS by hand).
package dimacs

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"

	extdimacs "github.com/rhartert/dimacs"

	"github.com/arwyn/nanosat/internal/sat"
)

// FormulaBuilder is the subset of *sat.Formula that LoadDIMACS needs to
// populate. Declaring it narrowly (rather than importing *sat.Formula
// directly) keeps this package honest about what it actually uses, matching
// the teacher's SATSolver interface in parsers/parsers.go.
type FormulaBuilder interface {
	AddVariable() int
	AddClause(lits []int) error
}

func reader(filename string, gzipped bool) (io.ReadCloser, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	rc := io.ReadCloser(file)
	if gzipped {
		rc, err = gzip.NewReader(rc)
		if err != nil {
			return nil, err
		}
	}
	return rc, nil
}

// Warning reports a non-fatal anomaly seen while loading a DIMACS file.
// NanoSat tolerates under-specified clauses by padding them (Formula.AddClause,
// §9's resolution of spec.md's clause-padding Open Question), but that
// tolerance should be visible to the caller rather than silently rewriting
// the instance, so LoadDIMACS collects one Warning per padded clause instead
// of treating it as an error.
type Warning struct {
	ClauseIndex int // 0-based index of the affected clause
	Message     string
}

func (w Warning) String() string {
	return fmt.Sprintf("clause %d: %s", w.ClauseIndex, w.Message)
}

// LoadDIMACS parses the DIMACS CNF file at filename and loads its clauses
// into target. gzipped should be set for .cnf.gz fixtures. It returns one
// Warning per clause that required padding, in clause order, regardless of
// whether parsing ultimately succeeds.
func LoadDIMACS(filename string, gzipped bool, target FormulaBuilder) ([]Warning, error) {
	r, err := reader(filename, gzipped)
	if err != nil {
		return nil, fmt.Errorf("dimacs: opening %q: %w", filename, err)
	}
	defer r.Close()

	b := &builder{target: target}
	if err := extdimacs.ReadBuilder(r, b); err != nil {
		return b.warnings, err
	}
	return b.warnings, nil
}

// builder adapts a FormulaBuilder to extdimacs.Builder, additionally
// detecting clause padding before it reaches target: a clause pads when it
// carries fewer than 3 non-zero literals, the same condition
// Formula.AddClause pads on.
type builder struct {
	target      FormulaBuilder
	clauseIndex int
	warnings    []Warning
}

func (b *builder) Problem(problem string, nVars, nClauses int) error {
	if problem != "cnf" {
		return fmt.Errorf("dimacs: instances of type %q are not supported", problem)
	}
	for i := 0; i < nVars; i++ {
		b.target.AddVariable()
	}
	return nil
}

func (b *builder) Clause(tmpClause []int) error {
	defer func() { b.clauseIndex++ }()

	nonZero := 0
	for _, l := range tmpClause {
		if l != 0 {
			nonZero++
		}
	}
	if nonZero > 0 && nonZero < 3 {
		b.warnings = append(b.warnings, Warning{
			ClauseIndex: b.clauseIndex,
			Message:     fmt.Sprintf("clause has %d literal(s), padded to 3 by duplicating the last literal", nonZero),
		})
	}

	return b.target.AddClause(tmpClause)
}

func (b *builder) Comment(_ string) error {
	return nil // ignore comments
}

// LoadFormula is a convenience wrapper that allocates and returns a fresh
// *sat.Formula for filename. As with LoadDIMACS, gzipped selects gzip
// decompression; it is not inferred from the file name.
func LoadFormula(filename string, gzipped bool) (*sat.Formula, []Warning, error) {
	f := sat.NewFormula(0)
	warnings, err := LoadDIMACS(filename, gzipped, f)
	if err != nil {
		return nil, warnings, err
	}
	return f, warnings, nil
}

package dimacs

import (
	"fmt"

	extdimacs "github.com/rhartert/dimacs"
)

// ReadModels parses a DIMACS-clause-shaped fixture file where each "clause"
// line is actually one satisfying model: a full list of signed literals, one
// per variable, in variable order, as in this package's
// testdata/test_instance.model. The end-to-end suite (nanosat_test.go) does
// not read model files: it records an expected status per formula and
// certifies the reported model instead. Adapted from the teacher's
// parsers.ReadModels, which returned []bool per model; sat.Result.Model
// holds signed literals, so models here do too.
func ReadModels(filename string) ([][]int, error) {
	r, err := reader(filename, false)
	if err != nil {
		return nil, fmt.Errorf("dimacs: opening %q: %w", filename, err)
	}
	defer r.Close()

	b := &modelBuilder{}
	if err := extdimacs.ReadBuilder(r, b); err != nil {
		return nil, err
	}
	return b.models, nil
}

type modelBuilder struct {
	models [][]int
}

func (b *modelBuilder) Problem(problem string, nVars, nClauses int) error {
	return fmt.Errorf("dimacs: model files should not have a problem line")
}

func (b *modelBuilder) Comment(_ string) error {
	return nil
}

func (b *modelBuilder) Clause(tmpClause []int) error {
	model := make([]int, len(tmpClause))
	copy(model, tmpClause)
	b.models = append(b.models, model)
	return nil
}

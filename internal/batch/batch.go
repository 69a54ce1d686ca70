// Package batch drives NanoSat over one formula or a whole directory of
// them for the CLI's "all" mode (C15, §4.15). Directory discovery reuses the
// teacher's own filepath.WalkDir idiom from yass_test.go's listTestCases,
// repointed from test fixture discovery to CLI batch discovery.
package batch

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/arwyn/nanosat/internal/dimacs"
	"github.com/arwyn/nanosat/internal/report"
	"github.com/arwyn/nanosat/internal/resultfile"
	"github.com/arwyn/nanosat/internal/sat"
	"github.com/arwyn/nanosat/internal/statlog"
)

// Options configures one batch run (CLI tokens, §4.16).
type Options struct {
	Exhaustive  bool // exh
	StopOnFail  bool // stp
	Record      bool // rec
	PrintSol    bool // sol
	ResultsDir  string
	StatsCSV    string
	Leaderboard int // size of the hardest-instances leaderboard; 0 disables
}

// FindCNF returns every *.cnf file under dir, sorted by WalkDir's natural
// lexical traversal order.
func FindCNF(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !strings.HasSuffix(path, ".cnf") {
			return nil
		}
		files = append(files, path)
		return nil
	})
	return files, err
}

// Run processes every file in files, in order, resetting all engine state
// between formulas (§5: no state crosses formula boundaries). It prints
// progress via rep, optionally logs every run to a CSV (rec), writes a
// per-formula result file, pauses on UNSAT (stp), and returns the bounded
// hardest-instances leaderboard.
func Run(files []string, opts Options, rep *report.Reporter) (*Leaderboard, error) {
	var logger *statlog.Logger
	if opts.Record && opts.StatsCSV != "" {
		l, err := statlog.Open(opts.StatsCSV)
		if err != nil {
			return nil, fmt.Errorf("batch: %w", err)
		}
		logger = l
		defer logger.Close()
	}

	var lb *Leaderboard
	if opts.Leaderboard > 0 {
		lb = NewLeaderboard(opts.Leaderboard)
	}

	stdin := bufio.NewScanner(os.Stdin)

	for _, path := range files {
		gzipped := strings.HasSuffix(path, ".gz")
		f, warnings, err := dimacs.LoadFormula(path, gzipped)
		if err != nil {
			fmt.Fprintf(os.Stderr, "c skipping %q: %s\n", path, err)
			continue
		}
		for _, w := range warnings {
			fmt.Fprintf(os.Stderr, "c %s: %s\n", path, w)
		}

		engine := sat.NewEngine(f, sat.DefaultOptions)

		var results []*sat.Result
		if opts.Exhaustive {
			results = engine.RunAll()
		} else {
			results = []*sat.Result{engine.RunEngine(1)}
		}

		base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		hardest := 0.0

		for _, res := range results {
			rep.Result(res)
			if logger != nil {
				logger.Record(path, res)
			}
			if err := resultfile.Write(opts.ResultsDir, base, f, res, res.Elapsed); err != nil {
				fmt.Fprintf(os.Stderr, "c could not write result file for %q: %s\n", path, err)
			}
			if res.ComplexityOrder > hardest {
				hardest = res.ComplexityOrder
			}
			if res.Status == sat.Unsat && opts.StopOnFail {
				fmt.Fprintf(os.Stderr, "c %s: NON-SAT, press enter to continue\n", path)
				stdin.Scan()
			}
		}

		if lb != nil {
			lb.Add(path, hardest)
		}
	}

	return lb, nil
}

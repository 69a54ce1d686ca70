package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/arwyn/nanosat/internal/batch"
	"github.com/arwyn/nanosat/internal/report"
)

// config is the parsed command line: a positional filename (or "all") plus
// case-insensitive substring-matched tokens, not a conventional -flag
// grammar (C16, §4.16). flag/pflag/cobra all assume -name/--name syntax and
// cannot express this, so argument parsing here is done directly over
// os.Args, the same way the teacher's config is built from flag.Args() but
// without flag itself.
type config struct {
	target     string // formula filename, or "all"
	exhaustive bool   // exh
	stopOnFail bool   // stp
	record     bool   // rec
	printSol   bool   // sol
}

func parseConfig(args []string) (*config, error) {
	cfg := &config{}

	for _, arg := range args {
		lower := strings.ToLower(arg)
		matchedToken := false

		if strings.Contains(lower, "exh") {
			cfg.exhaustive = true
			matchedToken = true
		}
		if strings.Contains(lower, "stp") {
			cfg.stopOnFail = true
			matchedToken = true
		}
		if strings.Contains(lower, "rec") {
			cfg.record = true
			matchedToken = true
		}
		if strings.Contains(lower, "sol") {
			cfg.printSol = true
			matchedToken = true
		}
		if matchedToken {
			continue
		}

		if cfg.target != "" {
			return nil, fmt.Errorf("unexpected extra argument %q", arg)
		}
		cfg.target = arg
	}

	if cfg.target == "" {
		return nil, fmt.Errorf("missing instance file or the %q token", "all")
	}
	return cfg, nil
}

const (
	resultsDir      = "results"
	statsCSV        = "results.csv"
	leaderboardSize = 10
)

func run(cfg *config) error {
	var files []string
	if strings.EqualFold(cfg.target, "all") {
		found, err := batch.FindCNF(".")
		if err != nil {
			return fmt.Errorf("could not walk working directory: %w", err)
		}
		files = found
	} else {
		files = []string{cfg.target}
	}

	if len(files) == 0 {
		return fmt.Errorf("no .cnf instance found")
	}

	rep := report.New(os.Stdout, 0, cfg.printSol)
	opts := batch.Options{
		Exhaustive:  cfg.exhaustive,
		StopOnFail:  cfg.stopOnFail,
		Record:      cfg.record,
		PrintSol:    cfg.printSol,
		ResultsDir:  resultsDir,
		StatsCSV:    statsCSV,
		Leaderboard: leaderboardSize,
	}

	lb, err := batch.Run(files, opts, rep)
	if err != nil {
		return err
	}

	if lb != nil {
		entries := lb.Hardest()
		if len(entries) > 0 {
			fmt.Println("c hardest instances (by complexity order):")
			for i, e := range entries {
				fmt.Printf("c %3d. %-40s order=%.3f\n", i+1, e.FileName, e.ComplexityOrder)
			}
		}
	}

	return nil
}

func main() {
	cfg, err := parseConfig(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}

// Package statlog appends one row per search run to a results CSV (C13,
// §4.13 of SPEC_FULL.md). No third-party CSV library appears anywhere in
// the retrieved corpus, so this is one of the few places NanoSat falls back
// to the standard library's encoding/csv rather than an ecosystem package
// (see DESIGN.md).
package statlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/arwyn/nanosat/internal/sat"
)

var header = []string{
	"FileName",
	"n",
	"m",
	"BaseLiteral",
	"CPUms",
	"ComplexityOrder",
	"TotalWork",
	"MainLoopOrder",
	"WorkPerLoop",
	"GetOppUnitsCalls",
	"GetUnitsCalls",
	"FindUnitsCalls",
	"Solution",
}

// Logger appends result rows to an underlying CSV writer. I/O failures are
// recorded but never propagated up to the caller as fatal: a broken stats
// file must never abort a search (§7's best-effort logging discipline).
type Logger struct {
	w       *csv.Writer
	closer  io.Closer
	lastErr error
}

// Open creates (or truncates) filename and writes the CSV header row.
func Open(filename string) (*Logger, error) {
	f, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("statlog: creating %q: %w", filename, err)
	}
	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		return nil, fmt.Errorf("statlog: writing header: %w", err)
	}
	w.Flush()
	return &Logger{w: w, closer: f}, nil
}

// Record appends one row for res, solved from filename. It never returns an
// error; instead, failures are recorded and surfaced via Err so the caller
// can decide, once, whether logging is still usable — matching the
// best-effort discipline the rest of the ambient stack follows.
func (l *Logger) Record(filename string, res *sat.Result) {
	solution := "NON SAT"
	if res.Status == sat.Sat {
		solution = formatModel(res.Model)
	}

	row := []string{
		filename,
		strconv.Itoa(res.N),
		strconv.Itoa(res.M),
		strconv.Itoa(res.BaseLiteral.Decode(res.N)),
		strconv.FormatFloat(float64(res.Elapsed.Microseconds())/1000, 'f', 3, 64),
		strconv.FormatFloat(res.ComplexityOrder, 'f', 6, 64),
		strconv.FormatFloat(res.TotalWork, 'f', 2, 64),
		strconv.FormatFloat(res.MainLoopOrder, 'f', 6, 64),
		strconv.FormatFloat(res.WorkPerLoop, 'f', 2, 64),
		strconv.FormatInt(res.GetOppUnitsCalls, 10),
		strconv.FormatInt(res.GetUnitsCalls, 10),
		strconv.FormatInt(res.FindUnitsCalls, 10),
		solution,
	}

	if err := l.w.Write(row); err != nil {
		l.lastErr = err
		return
	}
	l.w.Flush()
	if err := l.w.Error(); err != nil {
		l.lastErr = err
	}
}

// Err returns the last I/O error observed by Record, if any.
func (l *Logger) Err() error {
	return l.lastErr
}

// Close flushes and closes the underlying file.
func (l *Logger) Close() error {
	l.w.Flush()
	return l.closer.Close()
}

func formatModel(model []int) string {
	s := ""
	for i, l := range model {
		if i > 0 {
			s += " "
		}
		s += strconv.Itoa(l)
	}
	return s
}

package sat

import "time"

// Options bounds an optional resource budget on a single RunEngine call.
// Both fields are disabled by non-positive values, which is the default:
// the base spec's search always runs to completion or UNSAT, never timing
// out. This mirrors (and is grounded on) the teacher's
// Options/shouldStop/DefaultOptions pattern in solver.go, repurposed from
// bounding conflicts to bounding NanoSat's complexity-counter work.
type Options struct {
	// MaxComplexity stops the search once the work counter W reaches this
	// value. <= 0 disables the bound.
	MaxComplexity float64

	// Timeout stops the search once this much wall-clock time has elapsed.
	// <= 0 disables the bound.
	Timeout time.Duration
}

// DefaultOptions runs a search to completion with no resource budget.
var DefaultOptions = Options{MaxComplexity: -1, Timeout: -1}

// Engine is a per-formula search context (C8). Per SPEC_FULL.md §9's
// "global state" design note, everything the original treated as
// process-wide state — n, m, the clause arrays, adjOpp, lambda, the header
// set — is bundled here with a clearly bounded lifetime: build once from a
// Formula, call RunEngine any number of times, discard.
type Engine struct {
	f      *Formula
	n      int
	adj    [][]Literal
	adjOpp [][]Literal
	opts   Options

	// Mutable search state. Reset at the start of every RunEngine call so
	// that calling RunEngine repeatedly on the same Engine (as exhaustive
	// mode does, once per candidate starting literal) is always safe and
	// never leaks state between attempts.
	lambda       *Lambda
	header       *ResetSet
	headerCursor Literal
	mdb          *MDB
	stats        *Stats
	fr           *frontier

	xk   Literal
	flip bool

	startTime time.Time
}

// NewEngine builds the (immutable) adjacency indexes for f and returns a
// ready-to-run search context.
func NewEngine(f *Formula, opts Options) *Engine {
	adj, adjOpp := BuildAdjacency(f)
	return &Engine{
		f:      f,
		n:      f.N,
		adj:    adj,
		adjOpp: adjOpp,
		opts:   opts,
	}
}

// Result is the outcome of one RunEngine call.
type Result struct {
	Status      Status
	BaseLiteral Literal
	N           int
	M           int

	// Model holds the signed assignment (Model[v-1] is variable v's
	// satisfying literal) when Status == Sat. Empty otherwise.
	Model []int

	Elapsed          time.Duration
	TotalWork        float64
	ComplexityOrder  float64
	MainLoopOrder    float64
	WorkPerLoop      float64
	Iterations       int
	MDBSize          int
	FindUnitsCalls   int64
	GetUnitsCalls    int64
	GetOppUnitsCalls int64
}

// nextCyclic advances a literal by one step around the 1..twoN ring.
func nextCyclic(x Literal, twoN int) Literal {
	return Literal(int(x)%twoN) + 1
}

// RunEngine seeds lambda with start, then grows it one literal per
// iteration, flipping polarity on conflict and restarting with a new header
// when the current one is exhausted, until lambda reaches n literals or all
// 2n headers have been tried (C8, §4.8).
func (e *Engine) RunEngine(start Literal) *Result {
	twoN := 2 * e.n

	e.startTime = time.Now()
	e.lambda = NewLambda(e.n)
	e.header = NewResetSet(twoN + 1)
	e.mdb = NewMDB()
	e.stats = NewStats()
	if e.fr == nil {
		e.fr = newFrontier(e.n)
	}
	e.flip = false
	e.xk = start
	e.headerCursor = start

	e.lambda.Add(start)
	e.header.Add(int(start))

	budgetHit := false

	for e.lambda.Len() < e.n {
		if e.shouldStop() {
			budgetHit = true
			break
		}

		if e.lambda.Len() == 0 {
			if !e.incrementHeader() {
				break // all 2n headers exhausted: UNSAT for this run
			}
			continue
		}

		// 1. Advance Xk to a concrete candidate not already assigned.
		for e.lambda.Contains(e.xk) || e.lambda.OppositeIn(e.xk) {
			e.xk = nextCyclic(e.xk, twoN)
		}

		// 2. Append Xk to lambda.
		e.lambda.Add(e.xk)

		// 3. Evaluate.
		workBefore := e.stats.W
		e.stats.W += float64(e.lambda.Len())
		sat := e.mdb.SaveState(e.lambda) && GetAllUnits(e.adjOpp, e.lambda, e.n, e.fr, e.stats)

		if !sat || (e.lambda.Len() == e.n && !Certify(e.f, e.lambda)) {
			// 4. Conflict (or a complete-but-uncertified assignment):
			// flip polarity, and if both polarities have now been tried,
			// back up one more level.
			removed := e.lambda.PopLast()
			e.flip = !e.flip
			e.xk = removed.Opposite(e.n)

			if !e.flip {
				if e.lambda.Len() > 0 {
					e.lambda.PopLast()
				}
				if e.lambda.Len() == 1 {
					e.header.Add(int(e.xk))
					e.header.Add(int(e.xk.Opposite(e.n)))
				}
			}
		} else {
			// 5. Progress: memoize the post-propagation state too.
			e.stats.W += float64(e.lambda.Len())
			e.mdb.SaveState(e.lambda)
			e.flip = false
		}

		// 6. Stats.
		e.stats.RecordIteration(e.lambda.Len(), e.xk, e.stats.W-workBefore)
	}

	return e.result(start, budgetHit)
}

// shouldStop reports whether the optional resource budget has been hit.
func (e *Engine) shouldStop() bool {
	if e.opts.MaxComplexity > 0 && e.stats.W >= e.opts.MaxComplexity {
		return true
	}
	if e.opts.Timeout > 0 && time.Since(e.startTime) >= e.opts.Timeout {
		return true
	}
	return false
}

// incrementHeader marks the next unused literal (cyclically, starting from
// headerCursor) as a used header, sets Xk to it, and appends it to lambda.
// Returns false once every one of the 2n literals has served as a header.
func (e *Engine) incrementHeader() bool {
	twoN := 2 * e.n
	for i := 0; i < twoN; i++ {
		e.headerCursor = nextCyclic(e.headerCursor, twoN)
		if !e.header.Contains(int(e.headerCursor)) {
			e.header.Add(int(e.headerCursor))
			e.xk = e.headerCursor
			e.lambda.Add(e.xk)
			return true
		}
	}
	return false
}

func (e *Engine) result(start Literal, budgetHit bool) *Result {
	status := Unsat
	switch {
	case budgetHit:
		status = Unknown
	case e.lambda.Len() == e.n && Certify(e.f, e.lambda):
		status = Sat
	}

	var model []int
	if status == Sat {
		model = make([]int, e.n)
		for _, l := range e.lambda.Literals() {
			model[l.VarID(e.n)-1] = l.Decode(e.n)
		}
	}

	iterations := e.stats.Iterations()
	mainLoopOrder := Order(float64(iterations), e.n)

	return &Result{
		Status:           status,
		BaseLiteral:      start,
		N:                e.n,
		M:                e.f.NumClauses(),
		Model:            model,
		Elapsed:          time.Since(e.startTime),
		TotalWork:        e.stats.W,
		ComplexityOrder:  Order(e.stats.W, e.n),
		MainLoopOrder:    mainLoopOrder,
		WorkPerLoop:      e.stats.WorkPerLoop(),
		Iterations:       iterations,
		MDBSize:          e.mdb.Len(),
		FindUnitsCalls:   e.stats.FindUnitsCalls,
		GetUnitsCalls:    e.stats.GetUnitsCalls,
		GetOppUnitsCalls: e.stats.GetOppUnitsCalls,
	}
}

// RunAll tries every one of the 2n possible starting literals independently
// (each with its own fresh lambda/header/MDB via RunEngine), for the CLI's
// exhaustive ("exh") mode. Per SPEC_FULL.md §9, this does not deduplicate
// solutions that share literals across different starting points — that is
// documented as a reporting concern, not a correctness one.
func (e *Engine) RunAll() []*Result {
	twoN := 2 * e.n
	results := make([]*Result, 0, twoN)
	for l := 1; l <= twoN; l++ {
		results = append(results, e.RunEngine(Literal(l)))
	}
	return results
}

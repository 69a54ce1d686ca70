package batch

import "github.com/rhartert/yagh"

// Leaderboard keeps the capacity hardest formulas seen so far, ranked by
// reported complexity order (C15 enrichment, §4.15). It reuses
// github.com/rhartert/yagh's indexed heap — the same library the teacher
// uses in internal/sat/ordering.go for activity-ordered variable selection
// — repurposed here from a decision heuristic to a bounded top-K ranking,
// since NanoSat's header-cycling driver has no variable order of its own to
// serve that heap with.
type Leaderboard struct {
	capacity int
	heap     *yagh.IntMap[float64]
	entries  map[int]Entry
	size     int
	nextIdx  int
}

// Entry describes one ranked formula.
type Entry struct {
	FileName        string
	ComplexityOrder float64
}

// NewLeaderboard returns a leaderboard that retains at most capacity
// entries, evicting the easiest one whenever it would grow past that.
func NewLeaderboard(capacity int) *Leaderboard {
	return &Leaderboard{
		capacity: capacity,
		heap:     yagh.New[float64](0),
		entries:  make(map[int]Entry),
	}
}

// Add records one formula's result. Complexity order that does not make the
// current top-capacity is discarded immediately.
func (lb *Leaderboard) Add(filename string, complexityOrder float64) {
	idx := lb.nextIdx
	lb.nextIdx++

	lb.heap.GrowBy(1)
	lb.heap.Put(idx, complexityOrder)
	lb.entries[idx] = Entry{FileName: filename, ComplexityOrder: complexityOrder}
	lb.size++

	if lb.size > lb.capacity {
		evicted, ok := lb.heap.Pop() // smallest complexity order leaves first
		if ok {
			delete(lb.entries, evicted.Elem)
			lb.size--
		}
	}
}

// Hardest drains the leaderboard and returns its entries ordered from
// hardest to easiest. Calling it consumes the leaderboard: build a fresh
// one per batch run.
func (lb *Leaderboard) Hardest() []Entry {
	ordered := make([]Entry, 0, lb.size)
	for {
		e, ok := lb.heap.Pop()
		if !ok {
			break
		}
		ordered = append(ordered, lb.entries[e.Elem])
	}
	// heap.Pop() yields ascending complexity order; reverse for hardest-first.
	for i, j := 0, len(ordered)-1; i < j; i, j = i+1, j-1 {
		ordered[i], ordered[j] = ordered[j], ordered[i]
	}
	return ordered
}

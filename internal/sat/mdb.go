package sat

import (
	"crypto/md5"
	"encoding/hex"
	"sort"
	"strconv"
	"strings"
)

// MDB (Memory Data Base) memoizes the set of lambda states already visited
// during a search so that paths converging on the same assignment are
// pruned (§4.3). The fingerprint is content-addressed over the *set* of
// currently assigned literals, not their insertion order.
//
// The spec allows any collision-resistant hash, or even a canonical byte
// encoding used directly as the key, as long as "same set -> same key"
// holds (SPEC_FULL.md §9). MD5 is kept here because it is what the original
// design used and crypto/md5 is the idiomatic standard-library choice for a
// non-cryptographic content fingerprint — no hashing library appears
// anywhere in the retrieved corpus to justify pulling one in.
type MDB struct {
	seen map[string]int

	// scratch buffers reused across calls to avoid reallocating on every
	// SaveState.
	scratch []Literal
	builder strings.Builder
}

// NewMDB returns an empty memoization table.
func NewMDB() *MDB {
	return &MDB{seen: make(map[string]int)}
}

// Len returns the number of distinct states recorded so far.
func (m *MDB) Len() int {
	return len(m.seen)
}

// Fingerprint returns the content-addressed key for the current contents of
// lambda: MD5 of the sorted literal list, comma-joined, hex-encoded.
func (m *MDB) Fingerprint(lambda *Lambda) string {
	m.scratch = append(m.scratch[:0], lambda.Literals()...)
	sort.Slice(m.scratch, func(i, j int) bool { return m.scratch[i] < m.scratch[j] })

	m.builder.Reset()
	for i, l := range m.scratch {
		if i > 0 {
			m.builder.WriteByte(',')
		}
		m.builder.WriteString(strconv.Itoa(int(l)))
	}

	sum := md5.Sum([]byte(m.builder.String()))
	return hex.EncodeToString(sum[:])
}

// SaveState inserts the fingerprint of the current lambda if it is not
// already present, returning true on first insertion and false if the state
// is a repeat. A repeat must be treated by the driver as a conflict for
// progress purposes (§4.3).
func (m *MDB) SaveState(lambda *Lambda) bool {
	fp := m.Fingerprint(lambda)
	if _, ok := m.seen[fp]; ok {
		return false
	}
	m.seen[fp] = lambda.Len()
	return true
}

package walkpath

import "github.com/mibar/jtc/internal/value"

// Iterator is the resumable-cursor view over a compiled Program's matches
// (spec.md §4.2 contract: current/advance/at_end/reset/counter/
// namespace). It is a thin cursor over an eagerly materialized match
// list — see Enumerate's doc comment for why eager enumeration satisfies
// the contract here — with the match list itself cached and invalidated
// on Reset, per §4.2's "cache is invalidated when the iterator is
// reset."
type Iterator struct {
	doc     *value.Document
	prog    *Program
	cache   []*Match
	primed  bool
	pos     int
	lastErr error
}

// New returns an iterator over prog's matches against doc. Compilation
// errors surface from Compile; errors discovered while walking (e.g. a
// malformed search regex) are reported by Err, and AtEnd is then true.
func New(doc *value.Document, prog *Program) *Iterator {
	return &Iterator{doc: doc, prog: prog}
}

func (it *Iterator) ensurePrimed() {
	if it.primed {
		return
	}
	matches, err := Enumerate(it.doc, it.prog)
	it.cache = matches
	it.lastErr = err
	it.primed = true
	it.pos = 0
}

// Err returns any error raised while materializing the match list.
func (it *Iterator) Err() error {
	it.ensurePrimed()
	return it.lastErr
}

// AtEnd reports whether the cursor has exhausted every match.
func (it *Iterator) AtEnd() bool {
	it.ensurePrimed()
	return it.lastErr != nil || it.pos >= len(it.cache)
}

// Current returns the match the cursor currently points at.
func (it *Iterator) Current() (*Match, bool) {
	it.ensurePrimed()
	if it.pos >= len(it.cache) {
		return nil, false
	}
	return it.cache[it.pos], true
}

// Advance moves the cursor to the next match, returning false at end.
func (it *Iterator) Advance() bool {
	it.ensurePrimed()
	if it.pos >= len(it.cache) {
		return false
	}
	it.pos++
	return it.pos < len(it.cache)
}

// Reset rewinds the cursor and drops the cached match list, so the next
// Current/Advance call re-enumerates against the document's present
// state.
func (it *Iterator) Reset() {
	it.primed = false
	it.cache = nil
	it.pos = 0
	it.lastErr = nil
}

// Counter returns the enumeration index of the i-th lexeme for the
// match the cursor currently points at, or -1 if that lexeme is not a
// generator or is not active for this match (spec.md §4.2).
func (it *Iterator) Counter(i int) int {
	m, ok := it.Current()
	if !ok || i < 0 || i >= len(m.Counters) {
		return -1
	}
	return m.Counters[i]
}

// Namespace returns the namespace snapshot bound to the cursor's current
// match.
func (it *Iterator) Namespace() Namespace {
	m, ok := it.Current()
	if !ok {
		return EmptyNamespace()
	}
	return m.Position.Namespace
}

// All drains every remaining match into a slice, advancing the cursor
// to the end. Used by the interleaving scheduler, whose input contract
// (spec.md §4.3) is a fully enumerated FIFO per walk.
func (it *Iterator) All() ([]*Match, error) {
	it.ensurePrimed()
	if it.lastErr != nil {
		return nil, it.lastErr
	}
	remaining := it.cache[it.pos:]
	it.pos = len(it.cache)
	return remaining, nil
}

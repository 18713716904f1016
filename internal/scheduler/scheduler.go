// Package scheduler implements the interleaving scheduler (C4): given N
// walk iterators, each already drained into a FIFO of positions, emit
// positions in a relevance-grouped order rather than simply concatenating
// each walk's results (spec.md §4.3).
//
// Grounded on the teacher's generic ring-buffer internal/queue.Queue,
// reused here to hold each walk's drained Match values exactly as it
// holds tree_shaker's node-removal frontier.
package scheduler

import (
	"github.com/mibar/jtc/internal/queue"
	"github.com/mibar/jtc/internal/walkpath"
)

// Subscriber receives each emitted position along with the width of the
// tie group it was selected from (spec.md §4.3 "group_size").
type Subscriber func(pos walkpath.Position, groupSize int)

// Run drains every FIFO in fifos, delivering positions to sub in the
// front-offsets matrix order described by spec.md §4.3. When sequential
// is true, it degenerates to concatenating each FIFO in its original
// index order with a group size of 1.
func Run(fifos []queue.Queue[*walkpath.Match], sequential bool, sub Subscriber) {
	if sequential {
		runSequential(fifos, sub)
		return
	}
	runInterleaved(fifos, sub)
}

func runSequential(fifos []queue.Queue[*walkpath.Match], sub Subscriber) {
	for _, f := range fifos {
		for {
			m, ok := f.Dequeue()
			if !ok {
				break
			}
			sub(m.Position, 1)
		}
	}
}

// NewFIFOs packs a set of already-enumerated match slices — one per walk
// — into FIFOs in the shape Run expects.
func NewFIFOs(perWalkMatches [][]*walkpath.Match) []queue.Queue[*walkpath.Match] {
	out := make([]queue.Queue[*walkpath.Match], len(perWalkMatches))
	for i, matches := range perWalkMatches {
		q := queue.New[*walkpath.Match]()
		for _, m := range matches {
			q.Enqueue(m)
		}
		out[i] = q
	}
	return out
}

func runInterleaved(fifos []queue.Queue[*walkpath.Match], sub Subscriber) {
	for {
		actual := actualIndices(fifos)
		if len(actual) == 0 {
			return
		}
		if len(actual) == 1 {
			emitHead(fifos, actual[0], 1, sub)
			continue
		}

		candidates := actual
		column := 0
		for {
			groupSize := len(candidates)

			if column >= minCounterLen(fifos, candidates) {
				// At least one tied candidate's row is exhausted at this
				// column: it can never be discriminated from the others by
				// going deeper (its offsets run out here for good), so stop
				// and apply the lowest-index tiebreak over the candidates
				// still tied at this round (spec.md §4.3 step 4), rather
				// than keep comparing against candidates whose rows simply
				// happen to run longer.
				emitHead(fifos, lowestIndex(candidates), groupSize, sub)
				break
			}

			positive, negative := partitionByColumn(fifos, candidates, column)
			var next []int
			if len(positive) > 0 {
				next = keepMinimum(fifos, positive, column)
			} else {
				next = negative
			}

			if len(next) == 1 {
				emitHead(fifos, next[0], groupSize, sub)
				break
			}
			candidates = next
			column++
		}
	}
}

// actualIndices returns the indices of non-empty FIFOs.
func actualIndices(fifos []queue.Queue[*walkpath.Match]) []int {
	var out []int
	for i, f := range fifos {
		if !f.IsEmpty() {
			out = append(out, i)
		}
	}
	return out
}

func headCounter(fifos []queue.Queue[*walkpath.Match], idx, column int) (int, bool) {
	m, ok := fifos[idx].Peek()
	if !ok {
		return -1, false
	}
	if column >= len(m.Counters) {
		return -1, false
	}
	return m.Counters[column], true
}

// partitionByColumn splits candidates into the positive bucket (offset
// present and >= 0) and the negative bucket (offset absent or negative)
// at the given column.
func partitionByColumn(fifos []queue.Queue[*walkpath.Match], candidates []int, column int) (positive, negative []int) {
	for _, idx := range candidates {
		v, ok := headCounter(fifos, idx, column)
		if ok && v >= 0 {
			positive = append(positive, idx)
		} else {
			negative = append(negative, idx)
		}
	}
	return positive, negative
}

// keepMinimum narrows candidates to those whose column value equals the
// minimum among them.
func keepMinimum(fifos []queue.Queue[*walkpath.Match], candidates []int, column int) []int {
	minVal := -1
	for _, idx := range candidates {
		v, _ := headCounter(fifos, idx, column)
		if minVal == -1 || v < minVal {
			minVal = v
		}
	}
	var out []int
	for _, idx := range candidates {
		if v, _ := headCounter(fifos, idx, column); v == minVal {
			out = append(out, idx)
		}
	}
	return out
}

// minCounterLen returns the narrowest Counters slice among candidates' head
// matches — the number of columns every still-tied candidate can actually
// be compared on this round, since a candidate whose row ends early can
// never be discriminated from the rest by comparing columns it doesn't have.
func minCounterLen(fifos []queue.Queue[*walkpath.Match], candidates []int) int {
	minLen := -1
	for _, idx := range candidates {
		if m, ok := fifos[idx].Peek(); ok && (minLen == -1 || len(m.Counters) < minLen) {
			minLen = len(m.Counters)
		}
	}
	if minLen == -1 {
		return 0
	}
	return minLen
}

func lowestIndex(candidates []int) int {
	min := candidates[0]
	for _, idx := range candidates[1:] {
		if idx < min {
			min = idx
		}
	}
	return min
}

func emitHead(fifos []queue.Queue[*walkpath.Match], idx, groupSize int, sub Subscriber) {
	m, ok := fifos[idx].Dequeue()
	if !ok {
		return
	}
	sub(m.Position, groupSize)
}

// Package mutate implements the mutation algebra (C5): insert, update,
// merge, swap, purge and compare, all operating on walkpath.Position
// destinations against a value.Document (spec.md §4.4).
//
// Grounded on the teacher's internal/tree/tree.go mutation methods
// (Remove's BFS cascade, reused unmodified via value.Document) for the
// structural side, and on spec.md §4.4's shape-matrices for the
// insert/update/merge semantics themselves — no example repo implements an
// insert/update/merge algebra over a dynamic JSON tree, so that part is a
// fresh transcription of the spec's own tables.
package mutate

import (
	"fmt"

	"github.com/mibar/jtc/internal/value"
)

// MutationRefused reports a mutation that the shape-matrix rules forbid,
// e.g. inserting onto a label lexeme, or updating a label position with a
// non-string source (spec.md §4.4 Insert/Update).
type MutationRefused struct {
	Op     string
	Reason string
}

func (e *MutationRefused) Error() string {
	return fmt.Sprintf("mutation refused: %s: %s", e.Op, e.Reason)
}

// CompareMismatch carries the two pruned diff trees of a failed comparison
// under the json_1/json_2 labels (spec.md §4.4 Compare). Compare itself
// does not return it: Compare reports the outcome through its ok result,
// and this type is an error value a caller may build from the two diffs.
type CompareMismatch struct {
	Json1 *value.Node
	Json2 *value.Node
}

func (e *CompareMismatch) Error() string {
	return "compared values differ"
}

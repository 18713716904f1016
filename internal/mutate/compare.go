package mutate

import "github.com/mibar/jtc/internal/value"

// Compare walks a (base) and b (comparator) in lockstep, computing two sets
// of differing-node identities by mutual tree-walk (spec.md §4.4 Compare).
// It returns ok=true when the trees are structurally equal; otherwise it
// returns the two pruned diff trees, one per side, containing only the
// differing substructure.
func Compare(a, b *value.Node) (diff1, diff2 *value.Node, ok bool) {
	d1, d2 := compareNodes(a, b)
	if d1 == nil && d2 == nil {
		return nil, nil, true
	}
	return d1, d2, false
}

// compareNodes returns (nil, nil) when a and b are structurally equal;
// otherwise it returns the pruned-to-differences view of each side.
func compareNodes(a, b *value.Node) (*value.Node, *value.Node) {
	if a.Kind() != b.Kind() {
		// Type mismatch at this position: both nodes go to their
		// respective diff sets wholesale.
		return a.Clone(), b.Clone()
	}
	switch a.Kind() {
	case value.Object:
		return compareObjects(a, b)
	case value.Array:
		return compareArrays(a, b)
	default:
		if value.Equal(a, b) {
			return nil, nil
		}
		return a.Clone(), b.Clone()
	}
}

// compareObjects compares label-by-label over the union of both objects'
// keys, emitting a diff object on each side containing only the labels
// that differ (present-on-one-side-only counts as differing).
func compareObjects(a, b *value.Node) (*value.Node, *value.Node) {
	diffA := value.NewObject()
	diffB := value.NewObject()
	seen := make(map[string]bool)

	for _, label := range unionLabels(a, b, seen) {
		aVal, aHas := a.ObjectGet(label)
		bVal, bHas := b.ObjectGet(label)
		switch {
		case aHas && bHas:
			dA, dB := compareNodes(aVal, bVal)
			if dA != nil {
				diffA.ObjectSet(label, dA)
			}
			if dB != nil {
				diffB.ObjectSet(label, dB)
			}
		case aHas:
			diffA.ObjectSet(label, aVal.Clone())
		case bHas:
			diffB.ObjectSet(label, bVal.Clone())
		}
	}

	return emptyToNil(diffA), emptyToNil(diffB)
}

func unionLabels(a, b *value.Node, seen map[string]bool) []string {
	var out []string
	for _, l := range a.ObjectLabels() {
		if !seen[l] {
			seen[l] = true
			out = append(out, l)
		}
	}
	for _, l := range b.ObjectLabels() {
		if !seen[l] {
			seen[l] = true
			out = append(out, l)
		}
	}
	return out
}

// compareArrays compares index-by-index; extra elements past the shorter
// side's length contribute wholesale to the longer side's diff.
func compareArrays(a, b *value.Node) (*value.Node, *value.Node) {
	diffA := value.NewArray()
	diffB := value.NewArray()
	aChildren := a.ArrayChildren()
	bChildren := b.ArrayChildren()
	n := len(aChildren)
	if len(bChildren) < n {
		n = len(bChildren)
	}

	for i := 0; i < n; i++ {
		dA, dB := compareNodes(aChildren[i], bChildren[i])
		if dA != nil {
			diffA.ArrayAppend(dA)
		}
		if dB != nil {
			diffB.ArrayAppend(dB)
		}
	}
	for i := n; i < len(aChildren); i++ {
		diffA.ArrayAppend(aChildren[i].Clone())
	}
	for i := n; i < len(bChildren); i++ {
		diffB.ArrayAppend(bChildren[i].Clone())
	}

	return emptyToNil(diffA), emptyToNil(diffB)
}

func emptyToNil(n *value.Node) *value.Node {
	if n.Len() == 0 {
		return nil
	}
	return n
}

// Wrap packages the two diff trees under the json_1/json_2 labels jtc's
// -c (compare) mode emits (spec.md §4.4 Compare).
func Wrap(diff1, diff2 *value.Node) *value.Node {
	out := value.NewObject()
	if diff1 == nil {
		diff1 = value.NewNull()
	}
	if diff2 == nil {
		diff2 = value.NewNull()
	}
	out.ObjectSet("json_1", diff1)
	out.ObjectSet("json_2", diff2)
	return out
}

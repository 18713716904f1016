package mutate

import (
	"github.com/google/uuid"

	"github.com/mibar/jtc/internal/set"
	"github.com/mibar/jtc/internal/value"
	"github.com/mibar/jtc/internal/walkpath"
)

// Purge removes each walked node from its parent (spec.md §4.4 Purge).
// Positions whose node was already invalidated by an earlier purge in the
// same batch (e.g. a parent removed before a child) are skipped rather
// than erroring, since the cascade already detached them.
func Purge(doc *value.Document, positions []walkpath.Position) {
	for _, pos := range positions {
		if !pos.IsValid() {
			continue
		}
		removeOne(doc, pos)
	}
}

func removeOne(doc *value.Document, pos walkpath.Position) {
	if pos.Parent == nil {
		doc.MarkDead(pos.Node)
		return
	}
	if pos.Parent.IsArray() {
		idx := pos.Parent.ArrayIndexOf(pos.Node)
		if idx >= 0 {
			doc.RemoveFromArray(pos.Parent, idx)
		}
		return
	}
	if label, ok := pos.Label(); ok {
		doc.RemoveFromObject(pos.Parent, label)
	}
}

// DoublePurge inverts Purge's semantics (option -pp): compute the set of
// walked-node identities, then recursively delete every node that is
// neither walked nor an ancestor of a walked node (spec.md §4.4 Purge).
func DoublePurge(doc *value.Document, positions []walkpath.Position) {
	keep := set.New[uuid.UUID]()
	ancestors := set.New[uuid.UUID]()
	for _, pos := range positions {
		if !pos.IsValid() {
			continue
		}
		keep.Add(pos.Node.Identity())
		for _, n := range pos.Ancestors() {
			ancestors.Add(n.Identity())
		}
	}
	pruneExcept(doc, doc.Root(), keep, ancestors)
}

// pruneExcept walks n's children, deleting any subtree whose root is
// neither a kept (walked) node nor an ancestor of one, and recursing into
// surviving ancestor subtrees to prune deeper.
func pruneExcept(doc *value.Document, n *value.Node, keep, ancestors set.Set[uuid.UUID]) {
	switch n.Kind() {
	case value.Object:
		for _, label := range n.ObjectLabels() {
			child, _ := n.ObjectGet(label)
			if keep.Has(child.Identity()) {
				continue
			}
			if ancestors.Has(child.Identity()) {
				pruneExcept(doc, child, keep, ancestors)
				continue
			}
			doc.RemoveFromObject(n, label)
		}
	case value.Array:
		for _, child := range n.ArrayChildren() {
			if keep.Has(child.Identity()) {
				continue
			}
			if ancestors.Has(child.Identity()) {
				pruneExcept(doc, child, keep, ancestors)
				continue
			}
			idx := n.ArrayIndexOf(child)
			if idx >= 0 {
				doc.RemoveFromArray(n, idx)
			}
		}
	}
}

package mutate

import (
	"github.com/mibar/jtc/internal/walkpath"
)

// Swap exchanges the values at two walked positions pair-by-index (spec.md
// §4.4 Swap): a and b must have been enumerated to equal-length FIFOs by
// the caller; Swap walks both in lockstep and swaps each pair in place,
// stopping at the first pair containing an invalidated position.
func Swap(a, b []*walkpath.Match) error {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		posA := a[i].Position
		posB := b[i].Position
		if !posA.IsValid() || !posB.IsValid() {
			return &walkpath.WalkInvalidated{Path: posA.Path.Joined("/")}
		}
		if err := swapPair(posA, posB); err != nil {
			return err
		}
	}
	return nil
}

func swapPair(a, b walkpath.Position) error {
	if a.Doc != b.Doc {
		return &MutationRefused{Op: "swap", Reason: "positions belong to different documents"}
	}
	doc := a.Doc
	aIdx, aIsIndex := arrayIndexOf(a)
	bIdx, bIsIndex := arrayIndexOf(b)
	aLabel, _ := a.Label()
	bLabel, _ := b.Label()

	nodeA, nodeB := a.Node, b.Node
	if err := replaceAt(doc, a.Parent, aLabel, aIdx, aIsIndex, nodeB.Clone()); err != nil {
		return err
	}
	return replaceAt(doc, b.Parent, bLabel, bIdx, bIsIndex, nodeA.Clone())
}

func arrayIndexOf(p walkpath.Position) (int, bool) {
	if p.Parent == nil || !p.Parent.IsArray() {
		return 0, false
	}
	return p.Parent.ArrayIndexOf(p.Node), true
}

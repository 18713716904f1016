package walkpath

import "github.com/mibar/jtc/internal/value"

// Position is a cursor into a document identifying one Node (spec.md
// §3.2). It is deliberately decoupled from value.Node's no-ancestor
// invariant: Parent and Path are captured by the iterator as it descends,
// never stored on the Node itself.
type Position struct {
	Doc       *value.Document
	Path      value.Path
	Node      *value.Node
	Parent    *value.Node
	Namespace Namespace

	// ancestors is the full chain from the document root to Node
	// (inclusive), snapshotted at emission time. It exists purely to let
	// internal/mutate's double-purge tell "ancestor of a walked node"
	// apart from "unrelated node" without Node itself holding a parent
	// reference (spec.md §3.1).
	ancestors []*value.Node
}

// Ancestors returns the chain of nodes from the document root down to and
// including Node, in root-to-leaf order.
func (p Position) Ancestors() []*value.Node {
	out := make([]*value.Node, len(p.ancestors))
	copy(out, p.ancestors)
	return out
}

// IsRoot reports whether p addresses the document root.
func (p Position) IsRoot() bool { return len(p.Path.Steps) == 0 }

// Label returns the position's label and true if its parent is an Object
// (i.e. the last path step is a label step).
func (p Position) Label() (string, bool) {
	if len(p.Path.Steps) == 0 {
		return "", false
	}
	last := p.Path.Steps[len(p.Path.Steps)-1]
	if !last.IsLabel {
		return "", false
	}
	return last.Label, true
}

// IsValid reports whether p still addresses a live node: no ancestor of
// p, including p.Node itself, has been removed or replaced since p was
// obtained (spec.md §3.2). Dead-marking is cascaded by
// value.Document.markDead down to every descendant of a removed subtree,
// so a single Dead() check on the leaf node is sufficient.
func (p Position) IsValid() bool {
	return p.Node != nil && !p.Node.Dead()
}

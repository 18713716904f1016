package value

import "github.com/mibar/jtc/internal/queue"

// Document owns the root of a value tree plus a generation counter bumped
// on every structural mutation (spec.md §9 design note: Positions are a
// (tree_handle, path_vector, generation) triple).
type Document struct {
	root *Node
	gen  int
}

// NewDocument wraps root in a Document.
func NewDocument(root *Node) *Document {
	if root == nil {
		panic("value: cannot create a document with a nil root")
	}
	return &Document{root: root}
}

func (d *Document) Root() *Node { return d.root }

// SetRoot replaces the document's root wholesale (used when the top-level
// value itself is updated).
func (d *Document) SetRoot(n *Node) {
	if d.root != n {
		d.markDead(d.root)
	}
	d.root = n
	d.bump()
}

func (d *Document) Generation() int { return d.gen }

func (d *Document) bump() { d.gen++ }

// Bump is the exported form used by mutation operations in internal/mutate
// that reshape a node in place (e.g. merges) without detaching anything
// through Remove/Replace.
func (d *Document) Bump() { d.bump() }

// markDead cascades a "detached" flag breadth-first over n and its
// descendants, exactly like the teacher's (*tree[T]).Remove BFS cascade,
// reused here over internal/queue.Queue[*Node] instead of tree-shaker's
// ID-keyed node map.
func (d *Document) markDead(n *Node) {
	if n == nil || n.dead {
		return
	}
	q := queue.New[*Node]()
	q.Enqueue(n)
	for !q.IsEmpty() {
		cur, ok := q.Dequeue()
		if !ok {
			break
		}
		if cur.dead {
			continue
		}
		cur.dead = true
		switch cur.kind {
		case Object:
			for _, label := range cur.obj.order {
				if child, ok := cur.obj.values[label]; ok {
					q.Enqueue(child)
				}
			}
		case Array:
			for _, child := range cur.arr {
				q.Enqueue(child)
			}
		}
	}
}

// RemoveFromObject detaches the child labeled label from parent, marking
// it (and its descendants) dead and bumping the document generation.
func (d *Document) RemoveFromObject(parent *Node, label string) (*Node, bool) {
	parent.mustBe(Object)
	child, ok := parent.obj.get(label)
	if !ok {
		return nil, false
	}
	parent.obj.delete(label)
	d.markDead(child)
	d.bump()
	return child, true
}

// RemoveFromArray detaches the element at index i from parent.
func (d *Document) RemoveFromArray(parent *Node, i int) (*Node, bool) {
	parent.mustBe(Array)
	child, ok := parent.ArrayRemoveAt(i)
	if !ok {
		return nil, false
	}
	d.markDead(child)
	d.bump()
	return child, true
}

// ReplaceInObject swaps the value stored at label, marking the old value
// dead.
func (d *Document) ReplaceInObject(parent *Node, label string, replacement *Node) {
	parent.mustBe(Object)
	if old, ok := parent.obj.get(label); ok {
		d.markDead(old)
	}
	parent.obj.set(label, replacement)
	d.bump()
}

// ReplaceInArray swaps the element at index i, marking the old value dead.
func (d *Document) ReplaceInArray(parent *Node, i int, replacement *Node) bool {
	parent.mustBe(Array)
	if old, ok := parent.ArrayGet(i); ok {
		d.markDead(old)
	}
	ok := parent.ArraySet(i, replacement)
	if ok {
		d.bump()
	}
	return ok
}

// MarkDead exposes the cascade for callers outside the package (e.g. the
// mutation algebra purging an already-detached subtree).
func (d *Document) MarkDead(n *Node) { d.markDead(n) }

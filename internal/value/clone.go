package value

// Clone returns a deep copy of n with fresh identities, so a value taken
// from one place in a document (e.g. a walk match used as an insert
// source) never aliases the original when attached elsewhere (spec.md
// §3.1: a tree is acyclic, and every node lives in exactly one place).
func (n *Node) Clone() *Node {
	switch n.kind {
	case Object:
		return &Node{kind: Object, identity: newIdentity(), obj: n.obj.clone()}
	case Array:
		children := make([]*Node, len(n.arr))
		for i, c := range n.arr {
			children[i] = c.Clone()
		}
		return &Node{kind: Array, identity: newIdentity(), arr: children}
	case String:
		return &Node{kind: String, identity: newIdentity(), str: n.str}
	case Number:
		return &Node{kind: Number, identity: newIdentity(), num: n.num}
	case Boolean:
		return &Node{kind: Boolean, identity: newIdentity(), boolean: n.boolean}
	case Null:
		return &Node{kind: Null, identity: newIdentity()}
	default:
		return &Node{kind: Neither, identity: newIdentity()}
	}
}

package walkpath

import "github.com/mibar/jtc/internal/value"

// Namespace is a per-walk mapping from capture key to bound value (spec.md
// §3.4). The root namespace is empty; the current match is always bound
// to the empty key "". There is no teacher equivalent — the value model
// gives no place to hang per-walk state, so this is a new, small type.
type Namespace map[string]*value.Node

// EmptyNamespace returns a fresh namespace with no bindings.
func EmptyNamespace() Namespace { return Namespace{} }

// WithCurrent returns a copy of ns with the empty key bound to n, leaving
// ns itself unmodified (each Position owns its own snapshot).
func (ns Namespace) WithCurrent(n *value.Node) Namespace {
	out := ns.clone()
	out[""] = n
	return out
}

// Bind returns a copy of ns with key bound to n.
func (ns Namespace) Bind(key string, n *value.Node) Namespace {
	out := ns.clone()
	out[key] = n
	return out
}

// Get returns the node bound to key, if any.
func (ns Namespace) Get(key string) (*value.Node, bool) {
	n, ok := ns[key]
	return n, ok
}

func (ns Namespace) clone() Namespace {
	out := make(Namespace, len(ns)+1)
	for k, v := range ns {
		out[k] = v
	}
	return out
}

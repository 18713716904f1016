package value

import (
	"fmt"

	"github.com/google/uuid"
)

// Node is a tagged JSON value (spec.md §3.1). The zero value is not valid;
// use the New* constructors.
type Node struct {
	kind Kind

	// identity is stamped on every node, of any kind, and used purely for
	// position-invalidation bookkeeping (spec.md §4.4 Ordering and
	// invalidation, §9 design notes); it never reaches serialized output.
	identity uuid.UUID
	dead     bool

	obj *object
	arr []*Node

	str string

	num numberValue

	boolean bool
}

func newIdentity() uuid.UUID { return uuid.New() }

// NewObject returns an empty Object node.
func NewObject() *Node {
	return &Node{kind: Object, identity: newIdentity(), obj: newObject()}
}

// NewArray returns an empty Array node.
func NewArray() *Node {
	return &Node{kind: Array, identity: newIdentity(), arr: nil}
}

// NewString returns a String node.
func NewString(s string) *Node {
	return &Node{kind: String, identity: newIdentity(), str: s}
}

// NewBool returns a Boolean node.
func NewBool(b bool) *Node {
	return &Node{kind: Boolean, identity: newIdentity(), boolean: b}
}

// NewNull returns a Null node.
func NewNull() *Node {
	return &Node{kind: Null, identity: newIdentity()}
}

// NewNeither returns the interpolator's "no value" sentinel.
func NewNeither() *Node {
	return &Node{kind: Neither, identity: newIdentity()}
}

// NewNumberFromText parses literal as a JSON number, preserving its
// original textual form (SPEC_FULL.md C1 supplement: round-tripping a
// number that was never mutated keeps its source spelling).
func NewNumberFromText(literal string) (*Node, error) {
	nv, err := parseNumberText(literal)
	if err != nil {
		return nil, err
	}
	return &Node{kind: Number, identity: newIdentity(), num: nv}, nil
}

// NewNumberFromFloat builds a Number node from a float64, formatting it
// canonically (used when a number is synthesized rather than parsed).
func NewNumberFromFloat(f float64) *Node {
	return &Node{kind: Number, identity: newIdentity(), num: numberFromFloat(f)}
}

func (n *Node) Kind() Kind { return n.kind }

func (n *Node) IsObject() bool  { return n.kind == Object }
func (n *Node) IsArray() bool   { return n.kind == Array }
func (n *Node) IsString() bool  { return n.kind == String }
func (n *Node) IsNumber() bool  { return n.kind == Number }
func (n *Node) IsBoolean() bool { return n.kind == Boolean }
func (n *Node) IsNull() bool    { return n.kind == Null }
func (n *Node) IsNeither() bool { return n.kind == Neither }
func (n *Node) IsAtom() bool {
	switch n.kind {
	case String, Number, Boolean, Null:
		return true
	default:
		return false
	}
}
func (n *Node) IsIterable() bool { return n.kind == Object || n.kind == Array }

// IsLeaf reports whether n has no children (atoms, or empty object/array).
func (n *Node) IsLeaf() bool {
	switch n.kind {
	case Object:
		return n.obj.len() == 0
	case Array:
		return len(n.arr) == 0
	default:
		return true
	}
}

// Len returns the number of children for Object/Array, 0 for atoms.
func (n *Node) Len() int {
	switch n.kind {
	case Object:
		return n.obj.len()
	case Array:
		return len(n.arr)
	default:
		return 0
	}
}

// StringValue returns the scalar for a String node.
func (n *Node) StringValue() string {
	n.mustBe(String)
	return n.str
}

// BoolValue returns the scalar for a Boolean node.
func (n *Node) BoolValue() bool {
	n.mustBe(Boolean)
	return n.boolean
}

// NumberText returns the original literal text of a Number node.
func (n *Node) NumberText() string {
	n.mustBe(Number)
	return n.num.text
}

// NumberFloat returns the float64 approximation of a Number node.
func (n *Node) NumberFloat() float64 {
	n.mustBe(Number)
	return n.num.float
}

// Identity returns the node's internal bookkeeping identity. Never
// serialized; used only by position invalidation (internal/walkpath) and
// double-purge set membership (internal/mutate).
func (n *Node) Identity() uuid.UUID { return n.identity }

// Dead reports whether the node has been detached from its document by a
// mutation (spec.md §4.4 Ordering and invalidation).
func (n *Node) Dead() bool { return n.dead }

func (n *Node) mustBe(k Kind) {
	if n.kind != k {
		panic(fmt.Sprintf("value: node is %s, not %s", n.kind, k))
	}
}

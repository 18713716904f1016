package value

// Equal reports structural equality between a and b: object comparison
// ignores key order, array comparison is positional, atoms compare by
// value (spec.md §3.1, §4.4 Compare "atoms: structural equality").
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case Object:
		if a.obj.len() != b.obj.len() {
			return false
		}
		for _, label := range a.obj.order {
			av, _ := a.obj.get(label)
			bv, ok := b.obj.get(label)
			if !ok || !Equal(av, bv) {
				return false
			}
		}
		return true
	case Array:
		if len(a.arr) != len(b.arr) {
			return false
		}
		for i := range a.arr {
			if !Equal(a.arr[i], b.arr[i]) {
				return false
			}
		}
		return true
	case String:
		return a.str == b.str
	case Number:
		return a.num.float == b.num.float
	case Boolean:
		return a.boolean == b.boolean
	case Null:
		return true
	default: // Neither
		return true
	}
}

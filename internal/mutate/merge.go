package mutate

import "github.com/mibar/jtc/internal/value"

// coerceToArray wraps n in a one-element array unless it is already an
// Array or Object (which both count as "iterable" for merge purposes).
func coerceToArray(n *value.Node) *value.Node {
	if n.IsIterable() {
		return n
	}
	arr := value.NewArray()
	arr.ArrayAppend(n.Clone())
	return arr
}

// mergeValues implements the shared shape-matrix for insert-with-merge and
// update-with-merge (spec.md §4.4); overwrite selects which clash rule
// applies to scalar/atom collisions: true overwrites (update-merge), false
// coalesces into [d_old, s_new] (insert-merge).
func mergeValues(dst, src *value.Node, overwrite bool) *value.Node {
	switch {
	case dst.Kind() == value.Array && src.Kind() == value.Array:
		return mergeArrayArray(dst, src)
	case dst.Kind() == value.Object && src.Kind() == value.Object:
		return mergeObjectObject(dst, src, overwrite)
	case dst.Kind() == value.Array && src.Kind() == value.Object:
		// Array D, Object S: same as Array-Array, iterating S's children
		// in insertion order.
		return mergeArrayArray(dst, objectValuesAsArray(src))
	case dst.Kind() == value.Object && src.Kind() == value.Array:
		return mergeObjectArray(dst, src, overwrite)
	default:
		return dst
	}
}

func objectValuesAsArray(o *value.Node) *value.Node {
	arr := value.NewArray()
	for _, label := range o.ObjectLabels() {
		child, _ := o.ObjectGet(label)
		arr.ArrayAppend(child)
	}
	return arr
}

func mergeArrayArray(dst, src *value.Node) *value.Node {
	result := dst.Clone()
	for _, child := range src.ArrayChildren() {
		result.ArrayAppend(child.Clone())
	}
	return result
}

func mergeObjectObject(dst, src *value.Node, overwrite bool) *value.Node {
	result := dst.Clone()
	for _, label := range src.ObjectLabels() {
		sVal, _ := src.ObjectGet(label)
		if dVal, exists := result.ObjectGet(label); exists {
			result.ObjectSet(label, resolveClash(dVal, sVal, overwrite))
			continue
		}
		result.ObjectSet(label, sVal.Clone())
	}
	return result
}

// resolveClash implements the clashing-label rule shared by insert-merge
// and update-merge: both-Object clashes recurse regardless of overwrite,
// everything else either overwrites or coalesces into [d_old, s_new].
func resolveClash(dVal, sVal *value.Node, overwrite bool) *value.Node {
	if dVal.Kind() == value.Object && sVal.Kind() == value.Object {
		return mergeObjectObject(dVal, sVal, overwrite)
	}
	if overwrite {
		return sVal.Clone()
	}
	coalesced := value.NewArray()
	coalesced.ArrayAppend(dVal.Clone())
	coalesced.ArrayAppend(sVal.Clone())
	return coalesced
}

// mergeObjectArray implements the Object D, Array S cell: element-wise
// walk D's children, extending each with the corresponding S element
// using array-merge semantics. Extra S elements past len(D) are dropped,
// since there is no D child slot left to extend into.
func mergeObjectArray(dst, src *value.Node, overwrite bool) *value.Node {
	result := dst.Clone()
	labels := result.ObjectLabels()
	srcChildren := src.ArrayChildren()
	for i, label := range labels {
		if i >= len(srcChildren) {
			break
		}
		dVal, _ := result.ObjectGet(label)
		merged := mergeValues(coerceToArray(dVal), coerceToArray(srcChildren[i]), overwrite)
		result.ObjectSet(label, merged)
	}
	return result
}

// replaceAt writes result back at the position a destination previously
// occupied, whether that position was the document root, an object label,
// or an array index.
func replaceAt(doc *value.Document, parent *value.Node, label string, index int, isArrayIndex bool, result *value.Node) error {
	if parent == nil {
		doc.SetRoot(result)
		return nil
	}
	if isArrayIndex {
		doc.ReplaceInArray(parent, index, result)
		return nil
	}
	doc.ReplaceInObject(parent, label, result)
	return nil
}

package mutate

import "github.com/mibar/jtc/internal/value"

// Insert applies the insert shape-matrix (spec.md §4.4 Insert without
// merge) at dst, attaching a clone of src so the source value never
// aliases the destination tree.
func Insert(doc *value.Document, dst *value.Node, label string, hasLabel bool, src *value.Node) error {
	if hasLabel {
		return insertLabeled(doc, dst, label, src)
	}
	switch dst.Kind() {
	case value.Array:
		dst.ArrayAppend(src.Clone())
		doc.Bump()
		return nil
	case value.Object:
		return insertIntoObject(doc, dst, src)
	default:
		// atom destination: no change (spec.md §4.4 Insert table).
		return nil
	}
}

// insertLabeled handles the `k:v` labeled-insert column: destination array
// gets {k:v} appended, destination object gets D[k]=v set iff absent.
func insertLabeled(doc *value.Document, dst *value.Node, label string, src *value.Node) error {
	switch dst.Kind() {
	case value.Array:
		entry := value.NewObject()
		entry.ObjectSet(label, src.Clone())
		dst.ArrayAppend(entry)
		doc.Bump()
		return nil
	case value.Object:
		if _, exists := dst.ObjectGet(label); exists {
			return nil
		}
		dst.ObjectSet(label, src.Clone())
		doc.Bump()
		return nil
	default:
		return &MutationRefused{Op: "insert", Reason: "cannot attach a labeled value to an atom"}
	}
}

// insertIntoObject implements the Object-destination, Object-source cell:
// merge in labels that don't clash, leaving existing labels untouched.
// Object D against Array S or an atom source is a no-op per the table.
func insertIntoObject(doc *value.Document, dst *value.Node, src *value.Node) error {
	if src.Kind() != value.Object {
		return nil
	}
	for _, label := range src.ObjectLabels() {
		if _, exists := dst.ObjectGet(label); exists {
			continue
		}
		child, _ := src.ObjectGet(label)
		dst.ObjectSet(label, child.Clone())
	}
	doc.Bump()
	return nil
}

// InsertMerge applies the insert-with-merge shape-matrix (spec.md §4.4
// Insert with merge). The destination is coerced to Array if it isn't
// already Array or Object; the source is coerced to Array if it isn't
// iterable. Clashing scalar labels coalesce into [d_old, s_new].
func InsertMerge(doc *value.Document, parent *value.Node, label string, index int, isArrayIndex bool, dst *value.Node, src *value.Node) error {
	result := mergeValues(coerceToArray(dst), coerceToArray(src), false)
	return replaceAt(doc, parent, label, index, isArrayIndex, result)
}

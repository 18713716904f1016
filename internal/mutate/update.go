package mutate

import "github.com/mibar/jtc/internal/value"

// Update replaces the value at a destination with src (spec.md §4.4
// Update without merge). If the destination is a label position (the
// walk-path's last lexeme addressed an object's label rather than its
// value), src must be a String and the operation renames the object entry
// instead of replacing a value. UpdateMerge has no label-position form:
// it always replaces the destination value.
func Update(doc *value.Document, parent *value.Node, label string, index int, isArrayIndex bool, isLabelPosition bool, src *value.Node) error {
	if isLabelPosition {
		if src.Kind() != value.String {
			return &MutationRefused{Op: "update", Reason: "renaming a label requires a string source"}
		}
		if !parent.ObjectRename(label, src.StringValue()) {
			return &MutationRefused{Op: "update", Reason: "label to rename no longer exists"}
		}
		doc.Bump()
		return nil
	}
	return replaceAt(doc, parent, label, index, isArrayIndex, src.Clone())
}

// UpdateMerge applies the same shape-matrix as InsertMerge, but clashing
// scalars overwrite instead of coalescing into an array (spec.md §4.4
// Update with merge).
func UpdateMerge(doc *value.Document, parent *value.Node, label string, index int, isArrayIndex bool, dst *value.Node, src *value.Node) error {
	coercedDst := coerceToArray(dst)
	coercedSrc := coerceToArray(src)
	result := mergeValues(coercedDst, coercedSrc, true)
	return replaceAt(doc, parent, label, index, isArrayIndex, result)
}

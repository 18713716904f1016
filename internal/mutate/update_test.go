package mutate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mibar/jtc/internal/value"
)

func TestUpdateReplacesObjectLabelValue(t *testing.T) {
	root := value.NewObject()
	root.ObjectSet("a", value.NewNumberFromFloat(1))
	doc := value.NewDocument(root)

	err := Update(doc, root, "a", 0, false, false, value.NewNumberFromFloat(99))
	require.NoError(t, err)

	a, _ := doc.Root().ObjectGet("a")
	require.Equal(t, 99.0, a.NumberFloat())
}

func TestUpdateReplacesArrayElement(t *testing.T) {
	root := value.NewArray()
	root.ArrayAppend(value.NewNumberFromFloat(1))
	root.ArrayAppend(value.NewNumberFromFloat(2))
	doc := value.NewDocument(root)

	err := Update(doc, root, "", 1, true, false, value.NewNumberFromFloat(42))
	require.NoError(t, err)

	second, _ := root.ArrayGet(1)
	require.Equal(t, 42.0, second.NumberFloat())
}

func TestUpdateLabelPositionRenamesEntry(t *testing.T) {
	root := value.NewObject()
	root.ObjectSet("old", value.NewString("value"))
	doc := value.NewDocument(root)

	err := Update(doc, root, "old", 0, false, true, value.NewString("renamed"))
	require.NoError(t, err)

	_, stillThere := root.ObjectGet("old")
	require.False(t, stillThere)
	v, ok := root.ObjectGet("renamed")
	require.True(t, ok)
	require.Equal(t, "value", v.StringValue())
}

func TestUpdateLabelPositionRejectsNonStringSource(t *testing.T) {
	root := value.NewObject()
	root.ObjectSet("old", value.NewString("value"))
	doc := value.NewDocument(root)

	err := Update(doc, root, "old", 0, false, true, value.NewNumberFromFloat(1))
	require.Error(t, err)
	var refused *MutationRefused
	require.ErrorAs(t, err, &refused)
}

func TestUpdateMergeOverwritesClashingScalars(t *testing.T) {
	root := value.NewObject()
	root.ObjectSet("x", value.NewNumberFromFloat(1))
	doc := value.NewDocument(root)

	src := value.NewObject()
	src.ObjectSet("x", value.NewNumberFromFloat(2))

	err := UpdateMerge(doc, nil, "", 0, false, root, src)
	require.NoError(t, err)

	x, _ := doc.Root().ObjectGet("x")
	require.True(t, x.IsNumber())
	require.Equal(t, 2.0, x.NumberFloat())
}

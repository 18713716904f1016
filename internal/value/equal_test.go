package value

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEqualObjectsIgnoreOrder(t *testing.T) {
	a := NewObject()
	a.ObjectSet("x", NewNumberFromFloat(1))
	a.ObjectSet("y", NewNumberFromFloat(2))

	b := NewObject()
	b.ObjectSet("y", NewNumberFromFloat(2))
	b.ObjectSet("x", NewNumberFromFloat(1))

	require.True(t, Equal(a, b))
}

func TestEqualArraysArePositional(t *testing.T) {
	a := NewArray()
	a.ArrayAppend(NewNumberFromFloat(1))
	a.ArrayAppend(NewNumberFromFloat(2))

	b := NewArray()
	b.ArrayAppend(NewNumberFromFloat(2))
	b.ArrayAppend(NewNumberFromFloat(1))

	require.False(t, Equal(a, b))
}

func TestEqualAtoms(t *testing.T) {
	require.True(t, Equal(NewString("x"), NewString("x")))
	require.False(t, Equal(NewString("x"), NewString("y")))
	require.True(t, Equal(NewBool(true), NewBool(true)))
	require.True(t, Equal(NewNull(), NewNull()))
	require.False(t, Equal(NewNull(), NewBool(false)))
}

func TestEqualNumbersCompareValueNotText(t *testing.T) {
	a, _ := NewNumberFromText("1.0")
	b, _ := NewNumberFromText("1.00")
	require.True(t, Equal(a, b))
}

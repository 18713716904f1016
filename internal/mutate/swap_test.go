package mutate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mibar/jtc/internal/value"
	"github.com/mibar/jtc/internal/walkpath"
)

func swapDoc() *value.Document {
	root := value.NewObject()
	root.ObjectSet("a", value.NewNumberFromFloat(1))
	root.ObjectSet("b", value.NewNumberFromFloat(2))
	return value.NewDocument(root)
}

func walk(t *testing.T, doc *value.Document, path string) []*walkpath.Match {
	t.Helper()
	prog, err := walkpath.Compile(path)
	require.NoError(t, err)
	matches, err := walkpath.Enumerate(doc, prog)
	require.NoError(t, err)
	return matches
}

func TestSwapExchangesTwoPositions(t *testing.T) {
	doc := swapDoc()
	a := walk(t, doc, "[a]")
	b := walk(t, doc, "[b]")

	err := Swap(a, b)
	require.NoError(t, err)

	newA, _ := doc.Root().ObjectGet("a")
	newB, _ := doc.Root().ObjectGet("b")
	require.Equal(t, 2.0, newA.NumberFloat())
	require.Equal(t, 1.0, newB.NumberFloat())
}

func TestSwapIsItsOwnInverse(t *testing.T) {
	doc := swapDoc()
	for i := 0; i < 2; i++ {
		a := walk(t, doc, "[a]")
		b := walk(t, doc, "[b]")
		require.NoError(t, Swap(a, b))
	}

	finalA, _ := doc.Root().ObjectGet("a")
	finalB, _ := doc.Root().ObjectGet("b")
	require.Equal(t, 1.0, finalA.NumberFloat())
	require.Equal(t, 2.0, finalB.NumberFloat())
}

func TestSwapStopsAtInvalidatedPosition(t *testing.T) {
	doc := swapDoc()
	a := walk(t, doc, "[a]")
	b := walk(t, doc, "[b]")

	doc.RemoveFromObject(doc.Root(), "a")

	err := Swap(a, b)
	require.Error(t, err)
	var inv *walkpath.WalkInvalidated
	require.ErrorAs(t, err, &inv)
}

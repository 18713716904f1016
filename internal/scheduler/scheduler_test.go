package scheduler

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mibar/jtc/internal/value"
	"github.com/mibar/jtc/internal/walkpath"
)

func matchWithCounters(label string, counters ...int) *walkpath.Match {
	return &walkpath.Match{
		Position: walkpath.Position{Node: value.NewString(label)},
		Counters: counters,
	}
}

func TestRunSequentialConcatenatesInOrder(t *testing.T) {
	fifos := NewFIFOs([][]*walkpath.Match{
		{matchWithCounters("a1"), matchWithCounters("a2")},
		{matchWithCounters("b1")},
	})

	var order []string
	var sizes []int
	Run(fifos, true, func(pos walkpath.Position, groupSize int) {
		order = append(order, pos.Node.StringValue())
		sizes = append(sizes, groupSize)
	})

	require.Equal(t, []string{"a1", "a2", "b1"}, order)
	require.Equal(t, []int{1, 1, 1}, sizes)
}

func TestRunInterleavedPicksMinimumPositiveOffset(t *testing.T) {
	// Walk 0's head is ahead (counter 1); walk 1's head is earliest
	// (counter 0), so walk 1 should be emitted first.
	fifos := NewFIFOs([][]*walkpath.Match{
		{matchWithCounters("slow", 1)},
		{matchWithCounters("fast", 0)},
	})

	var order []string
	Run(fifos, false, func(pos walkpath.Position, groupSize int) {
		order = append(order, pos.Node.StringValue())
	})

	require.Equal(t, []string{"fast", "slow"}, order)
}

func TestRunInterleavedFallsBackToNegativeBucket(t *testing.T) {
	// Neither walk has an active generator at column 0 (-1, -1); with no
	// positive offsets, the negative bucket carries forward and the
	// columns run out, so the lowest original index wins.
	fifos := NewFIFOs([][]*walkpath.Match{
		{matchWithCounters("x", -1)},
		{matchWithCounters("y", -1)},
	})

	var order []string
	var sizes []int
	Run(fifos, false, func(pos walkpath.Position, groupSize int) {
		order = append(order, pos.Node.StringValue())
		sizes = append(sizes, groupSize)
	})

	require.Equal(t, []string{"x", "y"}, order)
	require.Equal(t, 2, sizes[0])
}

func TestRunInterleavedDrainsAllFIFOs(t *testing.T) {
	fifos := NewFIFOs([][]*walkpath.Match{
		{matchWithCounters("a", 0), matchWithCounters("b", 1)},
		{matchWithCounters("c", 0), matchWithCounters("d", 2)},
	})

	var order []string
	Run(fifos, false, func(pos walkpath.Position, groupSize int) {
		order = append(order, pos.Node.StringValue())
	})

	require.Len(t, order, 4)
	require.ElementsMatch(t, []string{"a", "b", "c", "d"}, order)
}

func TestRunInterleavedMultiColumnTieBreak(t *testing.T) {
	// Both walks tie at column 0 (counter 0); column 1 discriminates.
	fifos := NewFIFOs([][]*walkpath.Match{
		{matchWithCounters("second", 0, 1)},
		{matchWithCounters("first", 0, 0)},
	})

	var order []string
	Run(fifos, false, func(pos walkpath.Position, groupSize int) {
		order = append(order, pos.Node.StringValue())
	})

	require.Equal(t, []string{"first", "second"}, order)
}

func TestRunEmptyFIFOsProducesNoEmissions(t *testing.T) {
	fifos := NewFIFOs([][]*walkpath.Match{{}, {}})
	called := false
	Run(fifos, false, func(pos walkpath.Position, groupSize int) { called = true })
	require.False(t, called)
}

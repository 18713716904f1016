package guide

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTextContainsAllSections(t *testing.T) {
	text := Text()
	require.Contains(t, text, "WALK-PATH SYNTAX")
	require.Contains(t, text, "USAGE NOTES")
	require.Contains(t, text, "EXAMPLES")
}

func TestTextDocumentsSearchSuffixes(t *testing.T) {
	text := Text()
	for _, suffix := range []string{"r  string equality", "R  string matched", "L  object label matched", "e  any leaf"} {
		require.True(t, strings.Contains(text, suffix), "missing suffix doc: %s", suffix)
	}
}

func TestTextIsStableAcrossCalls(t *testing.T) {
	require.Equal(t, Text(), Text())
}

package walkpath

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompileOffsetPlainAndBack(t *testing.T) {
	prog, err := Compile("[2][-1]")
	require.NoError(t, err)
	require.Len(t, prog.Lexemes, 2)
	require.Equal(t, OffsetPlain{N: 2}, prog.Lexemes[0])
	require.Equal(t, OffsetBack{N: 1}, prog.Lexemes[1])
}

func TestCompileOffsetFromRootAndIterableAndRange(t *testing.T) {
	prog, err := Compile("[^2][+1][1:3]")
	require.NoError(t, err)
	require.Equal(t, OffsetFromRoot{N: 2}, prog.Lexemes[0])
	require.Equal(t, OffsetIterable{Start: 1}, prog.Lexemes[1])
	one, three := 1, 3
	require.Equal(t, OffsetRange{Lo: &one, Hi: &three}, prog.Lexemes[2])
}

func TestCompileOffsetLabelAndEmptyLabel(t *testing.T) {
	prog, err := Compile("[name][]")
	require.NoError(t, err)
	require.Equal(t, OffsetLabel{Label: "name"}, prog.Lexemes[0])
	require.Equal(t, OffsetEmptyLabel{}, prog.Lexemes[1])
}

func TestCompileRecursiveSearchDefaults(t *testing.T) {
	prog, err := Compile("<John Smith>")
	require.NoError(t, err)
	s, ok := prog.Lexemes[0].(*Search)
	require.True(t, ok)
	require.Equal(t, RecursiveStrings, s.Kind)
	require.Equal(t, "John Smith", s.Body)
	require.Equal(t, QualifierIndex{K: 0}, s.Qualifier)
	require.True(t, s.Recursive)
}

func TestCompileNonRecursiveSearchWithSuffixAndQualifier(t *testing.T) {
	prog, err := Compile(">[0-9]2R<")
	require.NoError(t, err)
	s, ok := prog.Lexemes[0].(*Search)
	require.True(t, ok)
	require.Equal(t, RecursiveRegex, s.Kind)
	require.Equal(t, "[0-9]", s.Body)
	require.Equal(t, QualifierIndex{K: 2}, s.Qualifier)
	require.False(t, s.Recursive)
}

func TestCompileSearchWithFromIndexQualifier(t *testing.T) {
	prog, err := Compile("<active+3b>")
	require.NoError(t, err)
	s := prog.Lexemes[0].(*Search)
	require.Equal(t, Boolean, s.Kind)
	require.Equal(t, "active", s.Body)
	require.Equal(t, QualifierFromIndex{K: 3}, s.Qualifier)
	require.True(t, s.IsGenerator())
}

func TestCompileSearchWithRangeQualifier(t *testing.T) {
	prog, err := Compile("<_o>")
	require.NoError(t, err)
	s := prog.Lexemes[0].(*Search)
	require.Equal(t, AnyObject, s.Kind)
	require.Equal(t, "_", s.Body)

	prog2, err := Compile("<421:4d>")
	require.NoError(t, err)
	s2 := prog2.Lexemes[0].(*Search)
	require.Equal(t, NumberExact, s2.Kind)
	require.Equal(t, "42", s2.Body)
	require.Equal(t, QualifierRange{K1: 1, K2: 4}, s2.Qualifier)
}

func TestCompileAttachedLabelPrefix(t *testing.T) {
	prog, err := Compile("[name]:<John>")
	require.NoError(t, err)
	require.Len(t, prog.Lexemes, 1)
	s, ok := prog.Lexemes[0].(*Search)
	require.True(t, ok)
	require.NotNil(t, s.AttachedLabel)
	require.Equal(t, "name", *s.AttachedLabel)
}

func TestCompileEscapedClosingBracket(t *testing.T) {
	prog, err := Compile(`<a\>z>`)
	require.NoError(t, err)
	s := prog.Lexemes[0].(*Search)
	require.Equal(t, "a>z", s.Body)
}

func TestCompileEmptyWalkPathErrors(t *testing.T) {
	_, err := Compile("")
	require.Error(t, err)
	var wpe *WalkPathError
	require.ErrorAs(t, err, &wpe)
}

func TestCompileUnclosedLexemeErrors(t *testing.T) {
	_, err := Compile("[abc")
	require.Error(t, err)
}

func TestCompileEmptySearchBodyRejectedForInvalidSuffix(t *testing.T) {
	_, err := Compile("<d>")
	require.Error(t, err)
}

func TestCompileEmptySearchBodyAllowedForRSuffix(t *testing.T) {
	prog, err := Compile("<r>")
	require.NoError(t, err)
	s := prog.Lexemes[0].(*Search)
	require.Equal(t, RecursiveStrings, s.Kind)
	require.Equal(t, "", s.Body)
}

func TestProgramHasGenerator(t *testing.T) {
	prog, err := Compile("[0][+1]")
	require.NoError(t, err)
	require.True(t, prog.HasGenerator())

	prog2, err := Compile("[0][1]")
	require.NoError(t, err)
	require.False(t, prog2.HasGenerator())
}

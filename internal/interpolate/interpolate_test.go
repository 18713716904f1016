package interpolate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mibar/jtc/internal/value"
	"github.com/mibar/jtc/internal/walkpath"
)

func samplePath() value.Path {
	p := value.Path{}
	p = p.Child(value.LabelStep("people"))
	p = p.Child(value.IndexStep(0))
	p = p.Child(value.LabelStep("name"))
	return p
}

func TestExpandEmptyKeyUsesCurrentValue(t *testing.T) {
	ns := walkpath.EmptyNamespace().WithCurrent(value.NewString("Alice"))
	n, err := Expand(`{}`, ns, value.Path{})
	require.NoError(t, err)
	// "Alice" is not valid JSON on its own, so the reparse fails and
	// Expand falls back to the Neither sentinel.
	require.True(t, n.IsNeither())
}

func TestExpandStringStripsQuotesForDisplayForm(t *testing.T) {
	ns := walkpath.EmptyNamespace().WithCurrent(value.NewString("Alice"))
	text, err := ExpandString(`hello, {}!`, ns, value.Path{})
	require.NoError(t, err)
	require.Equal(t, "hello, Alice!", text)
}

func TestExpandStringKeepsQuotesForRawForm(t *testing.T) {
	ns := walkpath.EmptyNamespace().WithCurrent(value.NewString("Alice"))
	text, err := ExpandString(`{{}}`, ns, value.Path{})
	require.NoError(t, err)
	require.Equal(t, `"Alice"`, text)
}

func TestExpandStringNumericCurrentValue(t *testing.T) {
	ns := walkpath.EmptyNamespace().WithCurrent(value.NewNumberFromFloat(42))
	text, err := ExpandString(`{}`, ns, value.Path{})
	require.NoError(t, err)
	require.Equal(t, "42", text)
}

func TestExpandStringDollarPathJoinsWithUnderscore(t *testing.T) {
	text, err := ExpandString(`{$path}`, walkpath.EmptyNamespace(), samplePath())
	require.NoError(t, err)
	require.Equal(t, "people_0_name", text)
}

func TestExpandStringDollarPATHProducesArrayLiteral(t *testing.T) {
	text, err := ExpandString(`{$PATH}`, walkpath.EmptyNamespace(), samplePath())
	require.NoError(t, err)
	require.Equal(t, `["people","0","name"]`, text)
}

func TestExpandStringNamespaceKey(t *testing.T) {
	ns := walkpath.EmptyNamespace().Bind("captured", value.NewString("value"))
	text, err := ExpandString(`[{captured}]`, ns, value.Path{})
	require.NoError(t, err)
	require.Equal(t, "[value]", text)
}

func TestExpandStringUndefinedKeyErrors(t *testing.T) {
	_, err := ExpandString(`{missing}`, walkpath.EmptyNamespace(), value.Path{})
	require.Error(t, err)
	var undef *UndefinedKeyError
	require.ErrorAs(t, err, &undef)
}

func TestExpandParsesJSONObjectTemplate(t *testing.T) {
	ns := walkpath.EmptyNamespace().WithCurrent(value.NewNumberFromFloat(7))
	n, err := Expand(`{"value": {}}`, ns, value.Path{})
	require.NoError(t, err)
	require.True(t, n.IsObject())
	v, ok := n.ObjectGet("value")
	require.True(t, ok)
	require.Equal(t, 7.0, v.NumberFloat())
}

func TestExpandStringUnterminatedBraceIsLiteral(t *testing.T) {
	text, err := ExpandString(`no closing {brace`, walkpath.EmptyNamespace(), value.Path{})
	require.NoError(t, err)
	require.Equal(t, "no closing {brace", text)
}

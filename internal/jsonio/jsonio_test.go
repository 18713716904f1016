package jsonio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mibar/jtc/internal/value"
)

func TestDecodePreservesObjectOrder(t *testing.T) {
	n, err := DecodeBytes([]byte(`{"z":1,"a":2,"m":3}`), Options{})
	require.NoError(t, err)
	require.Equal(t, []string{"z", "a", "m"}, n.ObjectLabels())
}

func TestDecodeArrayAndAtoms(t *testing.T) {
	n, err := DecodeBytes([]byte(`[1,"two",true,null]`), Options{})
	require.NoError(t, err)
	require.True(t, n.IsArray())
	require.Equal(t, 4, n.Len())

	children := n.ArrayChildren()
	require.Equal(t, "1", children[0].NumberText())
	require.Equal(t, "two", children[1].StringValue())
	require.True(t, children[2].BoolValue())
	require.True(t, children[3].IsNull())
}

func TestDecodeNestedPreservesNumberText(t *testing.T) {
	n, err := DecodeBytes([]byte(`{"id":9007199254740993}`), Options{})
	require.NoError(t, err)
	idNode, ok := n.ObjectGet("id")
	require.True(t, ok)
	require.Equal(t, "9007199254740993", idNode.NumberText())
}

func TestDecodeInvalidJSONReturnsParseError(t *testing.T) {
	_, err := DecodeBytes([]byte(`{invalid`), Options{})
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
}

func TestDecodeTrailingGarbageRejected(t *testing.T) {
	_, err := DecodeBytes([]byte(`{"a":1} garbage`), Options{})
	require.Error(t, err)
}

func TestParseErrorExcerptIncludesCaret(t *testing.T) {
	src := []byte(`{"a": 1, "b": @@@invalid@@@}`)
	_, err := DecodeBytes(src, Options{})
	require.Error(t, err)
	msg := err.Error()
	require.True(t, strings.Contains(msg, "^"))
}

func TestEncodeCompactRoundTrip(t *testing.T) {
	n, err := DecodeBytes([]byte(`{"a":1,"b":[1,2,3]}`), Options{})
	require.NoError(t, err)
	out := EncodeCompact(n)
	require.Equal(t, `{"a":1,"b":[1,2,3]}`, string(out))
}

func TestEncodePrettyIndents(t *testing.T) {
	n := value.NewObject()
	n.ObjectSet("a", value.NewNumberFromFloat(1))
	out := EncodePretty(n, 2)
	require.Equal(t, "{\n  \"a\": 1\n}", string(out))
}

func TestEncodeEmptyObjectAndArray(t *testing.T) {
	require.Equal(t, "{}", string(EncodeCompact(value.NewObject())))
	require.Equal(t, "[]", string(EncodeCompact(value.NewArray())))
}

func TestStringifyWrapsAsJSONString(t *testing.T) {
	n, _ := DecodeBytes([]byte(`{"a":1}`), Options{})
	out := Stringify(n)
	require.Equal(t, `"{\"a\":1}"`, string(out))
}

func TestStrictSolidusRejectsUnescaped(t *testing.T) {
	_, err := DecodeBytes([]byte(`{"a":"x/y"}`), Options{StrictSolidus: true})
	require.Error(t, err)
}

func TestDecodeStreamBytesSplitsConcatenatedDocuments(t *testing.T) {
	docs, err := DecodeStreamBytes([]byte(`{"a":1} {"b":2}  [1,2,3]`), Options{})
	require.NoError(t, err)
	require.Len(t, docs, 3)
	require.True(t, docs[0].IsObject())
	require.True(t, docs[1].IsObject())
	require.True(t, docs[2].IsArray())
}

func TestDecodeStreamBytesEmptyInputYieldsNoDocuments(t *testing.T) {
	docs, err := DecodeStreamBytes([]byte(``), Options{})
	require.NoError(t, err)
	require.Empty(t, docs)
}

func TestDecodeStreamBytesPropagatesMalformedDocumentError(t *testing.T) {
	_, err := DecodeStreamBytes([]byte(`{"a":1} {"b":}`), Options{})
	require.Error(t, err)
}

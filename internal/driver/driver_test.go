package driver

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const familyJSON = `{
  "Relation": [
    {
      "parent": "John Smith",
      "children": ["Sophia", "Olivia"]
    },
    {
      "parent": "Anna Johnson",
      "children": ["John"]
    }
  ]
}`

func run(t *testing.T, input string, args ...string) (stdout, stderr string, code int) {
	t.Helper()
	var out, errBuf bytes.Buffer
	d := New(strings.NewReader(input), &out, &errBuf)
	code = d.Run(args)
	return out.String(), errBuf.String(), code
}

func TestWalkPrintsArrayOfChildren(t *testing.T) {
	out, _, code := run(t, familyJSON, "-w", "[Relation][0][children]")
	require.Equal(t, ExitSuccess, code)
	require.JSONEq(t, `["Sophia","Olivia"]`, out)
}

func TestInterleavedWalksEmitInScheduledOrder(t *testing.T) {
	out, _, code := run(t, familyJSON,
		"-w", "[Relation][+0][parent]",
		"-w", "[Relation][+0][children][+0]")
	require.Equal(t, ExitSuccess, code)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Equal(t, []string{
		`"John Smith"`,
		`"Sophia"`,
		`"Olivia"`,
		`"Anna Johnson"`,
		`"John"`,
	}, lines)
}

func TestInsertAppendsToMatchedArray(t *testing.T) {
	out, _, code := run(t, familyJSON,
		"-w", `[parent]:<^John>R[-1][children]`,
		"-i", `"James"`)
	require.Equal(t, ExitSuccess, code)
	require.Contains(t, out, "James")
	require.Contains(t, out, "Sophia")
}

func TestUpdateReplacesMatchedString(t *testing.T) {
	out, _, code := run(t, familyJSON, "-w", "<John Smith>", "-u", `"Jane Smith"`)
	require.Equal(t, ExitSuccess, code)
	require.Contains(t, out, "Jane Smith")
	require.NotContains(t, out, "John Smith")
}

func TestWrapWithLabelsGroupsByLabel(t *testing.T) {
	out, _, code := run(t, familyJSON, "-w", "[Relation][+0][parent]", "-j", "-l")
	require.Equal(t, ExitSuccess, code)
	require.JSONEq(t, `[{"parent":["John Smith","Anna Johnson"]}]`, out)
}

func TestCompareReportsMismatchWithExitFour(t *testing.T) {
	var out, errBuf bytes.Buffer
	d := New(strings.NewReader(`{"a":1,"b":2}`), &out, &errBuf)
	code := d.Run([]string{"-c", `{"a":1,"b":3}`})
	require.Equal(t, ExitCompareDifferences, code)
	require.Contains(t, out.String(), "\"json_1\": {\n    \"b\": 2\n  }")
	require.Contains(t, out.String(), "\"json_2\": {\n    \"b\": 3\n  }")
}

func TestCompareEqualTreesExitsZero(t *testing.T) {
	var out, errBuf bytes.Buffer
	d := New(strings.NewReader(`{"a":1}`), &out, &errBuf)
	code := d.Run([]string{"-c", `{"a":1}`})
	require.Equal(t, ExitSuccess, code)
	require.Empty(t, out.String())
}

func TestGuideFlagPrintsGuideWithoutReadingInput(t *testing.T) {
	out, _, code := run(t, "not even json", "-g")
	require.Equal(t, ExitSuccess, code)
	require.Contains(t, out, "WALK-PATH SYNTAX")
}

func TestMissingWalkForInsertIsFatal(t *testing.T) {
	_, errOut, code := run(t, familyJSON, "-i", `"x"`)
	require.Equal(t, ExitWalkPathRequired, code)
	require.NotEmpty(t, errOut)
}

func TestMalformedInputIsJSONParseError(t *testing.T) {
	_, errOut, code := run(t, `{"a":}`, "-w", "[a]")
	require.Equal(t, ExitJSONParseError, code)
	require.NotEmpty(t, errOut)
}

func TestUnterminatedExecClauseExitsMissingCloser(t *testing.T) {
	_, errOut, code := run(t, familyJSON, "-w", "[Relation]", "-e", "echo", "hi")
	require.Equal(t, ExitMissingExecCloser, code)
	require.NotEmpty(t, errOut)
}

func TestPurgeRemovesWalkedNode(t *testing.T) {
	out, _, code := run(t, familyJSON, "-w", "[Relation][1]", "-p")
	require.Equal(t, ExitSuccess, code)
	require.NotContains(t, out, "Anna Johnson")
	require.Contains(t, out, "John Smith")
}

func TestDoublePurgeKeepsOnlyWalkedAncestry(t *testing.T) {
	out, _, code := run(t, familyJSON, "-w", "[Relation][0][parent]", "-p", "-p")
	require.Equal(t, ExitSuccess, code)
	require.Contains(t, out, "John Smith")
	require.NotContains(t, out, "Anna Johnson")
	require.NotContains(t, out, "Sophia")
}

func TestEmptyObjectWalkYieldsNoEmissions(t *testing.T) {
	out, _, code := run(t, `{}`, "-w", "[+0]")
	require.Equal(t, ExitSuccess, code)
	require.Empty(t, strings.TrimSpace(out))
}

func TestAtomRootDisablesWalk(t *testing.T) {
	out, _, code := run(t, `42`, "-w", "[0]")
	require.Equal(t, ExitSuccess, code)
	require.Empty(t, strings.TrimSpace(out))
}

func TestRawFlagPrintsCompactJSON(t *testing.T) {
	out, _, code := run(t, familyJSON, "-w", "[Relation][0][children]", "-r")
	require.Equal(t, ExitSuccess, code)
	require.Equal(t, `["Sophia","Olivia"]`, strings.TrimSpace(out))
}

func TestCountOnlyPrintsJustTheCount(t *testing.T) {
	out, _, code := run(t, familyJSON, "-w", "[Relation][+0][parent]", "-z", "-z")
	require.Equal(t, ExitSuccess, code)
	require.Equal(t, "2", strings.TrimSpace(out))
}

func TestCommonPrefixShorthandMatchesEquivalentWalk(t *testing.T) {
	outShort, _, codeShort := run(t, familyJSON, "-x", "[Relation][0]", "-y", "[parent]")
	outLong, _, codeLong := run(t, familyJSON, "-w", "[Relation][0][parent]")
	require.Equal(t, codeLong, codeShort)
	require.Equal(t, outLong, outShort)
}

func TestStreamModeProcessesEachDocumentIndependently(t *testing.T) {
	input := `{"name":"Alice"} {"name":"Bob"}`
	out, _, code := run(t, input, "-a", "-w", "[name]")
	require.Equal(t, ExitSuccess, code)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Equal(t, []string{`"Alice"`, `"Bob"`}, lines)
}

func TestStreamModeWithWrapCollectsIntoOneArray(t *testing.T) {
	input := `{"name":"Alice"} {"name":"Bob"}`
	out, _, code := run(t, input, "-a", "-J", "-w", "[name]", "-u", `"X"`)
	require.Equal(t, ExitSuccess, code)
	require.JSONEq(t, `[{"name":"X"},{"name":"X"}]`, out)
}

func TestStreamModePropagatesMalformedDocumentAsParseError(t *testing.T) {
	_, errOut, code := run(t, `{"a":1} {"b":}`, "-a", "-w", "[a]")
	require.Equal(t, ExitJSONParseError, code)
	require.NotEmpty(t, errOut)
}

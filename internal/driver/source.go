package driver

import (
	"os"
	"strings"

	"github.com/mibar/jtc/internal/jsonio"
	"github.com/mibar/jtc/internal/value"
	"github.com/mibar/jtc/internal/walkpath"
)

// resolveSource implements -i/-u/-c's operand resolution (spec.md §6):
// try the operand as a file path, then as a JSON literal, then as a
// walk-path evaluated against doc, taking its first match. The first
// interpretation that succeeds wins.
func resolveSource(raw string, doc *value.Document, opts jsonio.Options) (*value.Node, error) {
	if data, err := os.ReadFile(raw); err == nil {
		return jsonio.DecodeBytes(data, opts)
	}

	if n, err := jsonio.DecodeBytes([]byte(raw), opts); err == nil {
		return n, nil
	}

	prog, err := walkpath.Compile(raw)
	if err != nil {
		return nil, err
	}
	matches, err := walkpath.Enumerate(doc, prog)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return value.NewNeither(), nil
	}
	return matches[0].Position.Node, nil
}

// resultToNode turns an -e subprocess's raw stdout into a value: a
// successful JSON reparse wins outright; otherwise the text is
// normalized (CRLF/CR to LF) and re-quoted as a JSON string (see
// SPEC_FULL.md's resolution of spec.md §9's open question on this case).
func resultToNode(raw []byte) *value.Node {
	if n, err := jsonio.DecodeBytes(raw, jsonio.Options{}); err == nil {
		return n
	}
	text := strings.ReplaceAll(string(raw), "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return value.NewString(text)
}

package jsonio

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/mibar/jtc/internal/value"
)

// EncodePretty renders n as indented JSON using indentWidth spaces per
// level (the CLI's -t flag).
func EncodePretty(n *value.Node, indentWidth int) []byte {
	var buf bytes.Buffer
	writeValue(&buf, n, strings.Repeat(" ", indentWidth), 0, true)
	return buf.Bytes()
}

// EncodeCompact renders n as single-line JSON with no inserted whitespace
// (the CLI's -r flag).
func EncodeCompact(n *value.Node) []byte {
	var buf bytes.Buffer
	writeValue(&buf, n, "", 0, false)
	return buf.Bytes()
}

// Stringify renders n as compact JSON and then re-quotes that text as a
// single JSON string literal (the CLI's -rr flag).
func Stringify(n *value.Node) []byte {
	compact := EncodeCompact(n)
	quoted, _ := json.Marshal(string(compact))
	return quoted
}

func writeValue(buf *bytes.Buffer, n *value.Node, indent string, depth int, pretty bool) {
	if n == nil {
		buf.WriteString("null")
		return
	}
	switch n.Kind() {
	case value.Object:
		writeObject(buf, n, indent, depth, pretty)
	case value.Array:
		writeArray(buf, n, indent, depth, pretty)
	case value.String:
		writeString(buf, n.StringValue())
	case value.Number:
		buf.WriteString(n.NumberText())
	case value.Boolean:
		if n.BoolValue() {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case value.Null, value.Neither:
		buf.WriteString("null")
	}
}

func writeObject(buf *bytes.Buffer, n *value.Node, indent string, depth int, pretty bool) {
	labels := n.ObjectLabels()
	if len(labels) == 0 {
		buf.WriteString("{}")
		return
	}
	buf.WriteByte('{')
	for i, label := range labels {
		if i > 0 {
			buf.WriteByte(',')
		}
		if pretty {
			buf.WriteByte('\n')
			buf.WriteString(strings.Repeat(indent, depth+1))
		}
		writeString(buf, label)
		buf.WriteByte(':')
		if pretty {
			buf.WriteByte(' ')
		}
		child, _ := n.ObjectGet(label)
		writeValue(buf, child, indent, depth+1, pretty)
	}
	if pretty {
		buf.WriteByte('\n')
		buf.WriteString(strings.Repeat(indent, depth))
	}
	buf.WriteByte('}')
}

func writeArray(buf *bytes.Buffer, n *value.Node, indent string, depth int, pretty bool) {
	children := n.ArrayChildren()
	if len(children) == 0 {
		buf.WriteString("[]")
		return
	}
	buf.WriteByte('[')
	for i, child := range children {
		if i > 0 {
			buf.WriteByte(',')
		}
		if pretty {
			buf.WriteByte('\n')
			buf.WriteString(strings.Repeat(indent, depth+1))
		}
		writeValue(buf, child, indent, depth+1, pretty)
	}
	if pretty {
		buf.WriteByte('\n')
		buf.WriteString(strings.Repeat(indent, depth))
	}
	buf.WriteByte(']')
}

func writeString(buf *bytes.Buffer, s string) {
	b, _ := json.Marshal(s)
	buf.Write(b)
}

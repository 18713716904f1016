// Package interpolate implements the template interpolator (C6): textual
// substitution of `{key}`/`{{key}}` tokens against a walk's namespace and
// path, followed by an attempt to reparse the result as JSON (spec.md
// §4.5).
//
// No teacher file has an equivalent — tree-shaker has no template layer —
// so the tokenizer and substitution procedure are new code transcribing
// spec.md §4.5's algorithm directly. Unicode normalization before
// substitution reuses golang.org/x/text/unicode/norm, the same library
// internal/walkpath uses for its own string-search equality, so that a
// namespace value built from combining characters interpolates identically
// to its precomposed form.
package interpolate

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/mibar/jtc/internal/jsonio"
	"github.com/mibar/jtc/internal/value"
	"github.com/mibar/jtc/internal/walkpath"
)

// UndefinedKeyError reports a template key with no binding in the walk's
// namespace and no reserved meaning.
type UndefinedKeyError struct {
	Key string
}

func (e *UndefinedKeyError) Error() string {
	return "interpolate: undefined key " + e.Key
}

const (
	pathJoinSep = "_"
)

// Expand substitutes every token in template against ns and path, then
// attempts to reparse the substituted text as JSON. A result that fails to
// parse is not an error (spec.md §4.5): it yields a Neither node, the
// sentinel for "no value produced".
func Expand(template string, ns walkpath.Namespace, path value.Path) (*value.Node, error) {
	text, err := ExpandString(template, ns, path)
	if err != nil {
		return nil, err
	}
	n, err := jsonio.DecodeBytes([]byte(text), jsonio.Options{})
	if err != nil {
		return value.NewNeither(), nil
	}
	return n, nil
}

// ExpandString substitutes every token in template and returns the raw
// text without attempting a JSON reparse — used when the caller wants a
// shell command line (internal/driver's -e dispatch) rather than a value.
func ExpandString(template string, ns walkpath.Namespace, path value.Path) (string, error) {
	tokens, err := tokenize(template)
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	for _, tok := range tokens {
		if !tok.isKey {
			buf.WriteString(tok.text)
			continue
		}
		n, err := resolve(tok.text, ns, path)
		if err != nil {
			return "", err
		}
		if tok.raw {
			buf.WriteString(renderLiteral(n))
		} else {
			buf.WriteString(renderDisplay(n))
		}
	}
	return buf.String(), nil
}

// resolve looks up a template key's bound value, honoring reserved-key
// precedence: $path and $PATH are resolved first regardless of namespace
// contents, ordinary namespace keys next, and the empty key ("" — the
// current walked value) last, matching the expansion order spec.md §4.5
// describes.
func resolve(key string, ns walkpath.Namespace, path value.Path) (*value.Node, error) {
	switch key {
	case "$path":
		return value.NewString(path.Joined(pathJoinSep)), nil
	case "$PATH":
		arr := value.NewArray()
		for _, step := range path.AsStringSlice() {
			arr.ArrayAppend(value.NewString(step))
		}
		return arr, nil
	case "":
		n, ok := ns.Get("")
		if !ok {
			return value.NewNeither(), nil
		}
		return n, nil
	default:
		n, ok := ns.Get(key)
		if !ok {
			return nil, &UndefinedKeyError{Key: key}
		}
		return n, nil
	}
}

// renderDisplay is the `{key}` form: the value's literal JSON form, with
// outer quotation marks stripped when the value is a JSON string.
func renderDisplay(n *value.Node) string {
	if n.IsString() {
		return normalize(n.StringValue())
	}
	return string(jsonio.EncodeCompact(n))
}

// renderLiteral is the `{{key}}` form: always the raw JSON literal,
// quotes included for strings.
func renderLiteral(n *value.Node) string {
	if n.IsString() {
		return string(jsonio.EncodeCompact(value.NewString(normalize(n.StringValue()))))
	}
	return string(jsonio.EncodeCompact(n))
}

func normalize(s string) string {
	return norm.NFC.String(s)
}

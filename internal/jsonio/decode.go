package jsonio

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"github.com/mibar/jtc/internal/value"
)

// Options controls input parsing leniency, wired from the CLI's -q/-qq
// flags (SPEC_FULL.md C7 supplement).
type Options struct {
	// StrictSolidus rejects an unescaped "/" inside a JSON string (the
	// original tool's -q mode); the default (false) accepts either form,
	// matching Go's own json package.
	StrictSolidus bool
}

// Decode parses a single JSON document from r into a value.Node tree,
// preserving object key insertion order (encoding/json's map decoding
// does not, so this streams tokens and builds the tree by hand).
func Decode(r io.Reader, opts Options) (*value.Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return DecodeBytes(data, opts)
}

// DecodeBytes is like Decode but takes the full input up front, which is
// required to build a ParseError excerpt on failure.
func DecodeBytes(data []byte, opts Options) (*value.Node, error) {
	if opts.StrictSolidus {
		if idx := findUnescapedSolidus(data); idx >= 0 {
			return nil, &ParseError{Message: "unescaped '/' not permitted in strict mode", Offset: int64(idx), Source: data}
		}
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	n, err := decodeValue(dec)
	if err != nil {
		return nil, wrapDecodeErr(err, data, dec)
	}

	// Ensure no trailing garbage beyond a single JSON value.
	if _, err := dec.Token(); err != io.EOF {
		if err == nil {
			return nil, &ParseError{Message: "unexpected trailing content after JSON value", Offset: dec.InputOffset(), Source: data}
		}
		return nil, wrapDecodeErr(err, data, dec)
	}

	return n, nil
}

// DecodeStreamBytes parses a concatenated sequence of top-level JSON
// documents (the CLI's -a stream mode) and returns one value.Node per
// document, in order.
func DecodeStreamBytes(data []byte, opts Options) ([]*value.Node, error) {
	if opts.StrictSolidus {
		if idx := findUnescapedSolidus(data); idx >= 0 {
			return nil, &ParseError{Message: "unescaped '/' not permitted in strict mode", Offset: int64(idx), Source: data}
		}
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var docs []*value.Node
	for {
		n, err := decodeValue(dec)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, wrapDecodeErr(err, data, dec)
		}
		docs = append(docs, n)
	}
	return docs, nil
}

func wrapDecodeErr(err error, data []byte, dec *json.Decoder) error {
	var syn *json.SyntaxError
	if errors.As(err, &syn) {
		return &ParseError{Message: syn.Error(), Offset: syn.Offset, Source: data}
	}
	var te *json.UnmarshalTypeError
	if errors.As(err, &te) {
		return &ParseError{Message: te.Error(), Offset: te.Offset, Source: data}
	}
	return &ParseError{Message: err.Error(), Offset: dec.InputOffset(), Source: data}
}

func decodeValue(dec *json.Decoder) (*value.Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return buildFromToken(dec, tok)
}

func buildFromToken(dec *json.Decoder, tok json.Token) (*value.Node, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		default:
			return nil, &ParseError{Message: "unexpected delimiter " + t.String()}
		}
	case string:
		return value.NewString(t), nil
	case json.Number:
		return value.NewNumberFromText(string(t))
	case bool:
		return value.NewBool(t), nil
	case nil:
		return value.NewNull(), nil
	default:
		return nil, &ParseError{Message: "unrecognized JSON token"}
	}
}

func decodeObject(dec *json.Decoder) (*value.Node, error) {
	obj := value.NewObject()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, &ParseError{Message: "object key is not a string"}
		}
		val, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		obj.ObjectSet(key, val)
	}
	// consume closing '}'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return obj, nil
}

func decodeArray(dec *json.Decoder) (*value.Node, error) {
	arr := value.NewArray()
	for dec.More() {
		val, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		arr.ArrayAppend(val)
	}
	// consume closing ']'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return arr, nil
}

// findUnescapedSolidus returns the byte offset of the first unescaped '/'
// found inside a JSON string literal, or -1 if none.
func findUnescapedSolidus(data []byte) int {
	inString := false
	escaped := false
	for i, b := range data {
		if !inString {
			if b == '"' {
				inString = true
			}
			continue
		}
		if escaped {
			escaped = false
			continue
		}
		switch b {
		case '\\':
			escaped = true
		case '"':
			inString = false
		case '/':
			return i
		}
	}
	return -1
}

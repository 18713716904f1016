package driver

import (
	"bytes"
	"strconv"

	"github.com/mibar/jtc/internal/interpolate"
	"github.com/mibar/jtc/internal/jsonio"
	"github.com/mibar/jtc/internal/value"
	"github.com/mibar/jtc/internal/walkpath"
)

// emission is one walked result ready for output: its position (for
// label/path lookups) and the value to print, already substituted
// through -T if one was given.
type emission struct {
	pos   walkpath.Position
	value *value.Node
}

// renderEmissions builds the final output for a batch of walked
// positions, honoring -j/-jj/-l/-z/-zz/-r/-rr and the default pretty
// printer (spec.md §6).
func renderEmissions(items []emission, opts *Options) []byte {
	if opts.CountOnly {
		return []byte(strconv.Itoa(len(items)))
	}
	if opts.Count {
		var buf bytes.Buffer
		buf.WriteString(strconv.Itoa(len(items)))
		buf.WriteByte('\n')
		buf.Write(renderEmissions(items, withoutCountFlags(opts)))
		return buf.Bytes()
	}

	if opts.WrapObject {
		return renderOne(labelGroupedObject(items), opts)
	}
	if opts.WrapArray {
		if opts.Labels {
			// -j -l: group into the same label-keyed object -jj builds,
			// but -j still wraps the overall result in an array (spec.md
			// §8 end-to-end scenario 5).
			arr := value.NewArray()
			arr.ArrayAppend(labelGroupedObject(items))
			return renderOne(arr, opts)
		}
		return renderArrayWrap(items, opts)
	}

	var buf bytes.Buffer
	for i, e := range items {
		if i > 0 {
			buf.WriteByte('\n')
		}
		if opts.Labels {
			if label, ok := e.pos.Label(); ok {
				buf.WriteString(label)
				buf.WriteString(": ")
			}
		}
		buf.Write(renderOne(e.value, opts))
	}
	return buf.Bytes()
}

func withoutCountFlags(opts *Options) *Options {
	clone := *opts
	clone.Count = false
	clone.CountOnly = false
	return &clone
}

func renderOne(n *value.Node, opts *Options) []byte {
	switch {
	case opts.Stringify:
		return jsonio.Stringify(n)
	case opts.Raw:
		return jsonio.EncodeCompact(n)
	default:
		return jsonio.EncodePretty(n, opts.IndentWidth)
	}
}

func renderArrayWrap(items []emission, opts *Options) []byte {
	arr := value.NewArray()
	for _, e := range items {
		arr.ArrayAppend(e.value)
	}
	return renderOne(arr, opts)
}

// labelGroupedObject implements the -jj / -j-with--l grouping (spec.md
// §6, §8 end-to-end scenario 5): results are grouped into an object keyed
// by each position's label, falling back to its 0-based position among
// the emitted results when it has none (array elements, the document
// root). Clashing labels coalesce their values into an array under that
// one key.
func labelGroupedObject(items []emission) *value.Node {
	obj := value.NewObject()
	coalesced := make(map[string]bool)
	for i, e := range items {
		key, ok := e.pos.Label()
		if !ok {
			key = strconv.Itoa(i)
		}
		if existing, has := obj.ObjectGet(key); has && coalesced[key] {
			existing.ArrayAppend(e.value)
			continue
		} else if has {
			merged := value.NewArray()
			merged.ArrayAppend(existing)
			merged.ArrayAppend(e.value)
			obj.ObjectSet(key, merged)
			coalesced[key] = true
			continue
		}
		obj.ObjectSet(key, e.value)
	}
	return obj
}

// applyTemplate substitutes -T's template against each position's
// namespace (current value bound under the empty key) and path,
// replacing the emitted value with the interpolation result.
func applyTemplate(pos walkpath.Position, template string) (*value.Node, error) {
	ns := pos.Namespace.WithCurrent(pos.Node)
	return interpolate.Expand(template, ns, pos.Path)
}

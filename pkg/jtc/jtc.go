// Package jtc is the library facade over the walk-path engine: a fluent
// builder (From(input).Walk(path).Print()) for embedding walk/insert/
// update/purge/compare operations in Go code without shelling out to the
// CLI (cmd/jtc).
//
// Grounded on the teacher's pkg/shaker/shaker.go: a thin package-level
// Shake/MustShake/From surface plus a block of re-exported types so
// callers never need to import the engine's internal packages directly.
package jtc

import (
	"bytes"

	"github.com/mibar/jtc/internal/jsonio"
	"github.com/mibar/jtc/internal/mutate"
	"github.com/mibar/jtc/internal/scheduler"
	"github.com/mibar/jtc/internal/value"
	"github.com/mibar/jtc/internal/walkpath"
)

// Re-exported types, so callers of this package never need to import
// internal/value or internal/walkpath directly.
type (
	Node            = value.Node
	WalkPathError   = walkpath.WalkPathError
	WalkInvalidated = walkpath.WalkInvalidated
	MutationRefused = mutate.MutationRefused
	CompareMismatch = mutate.CompareMismatch
)

// Print is the package-level equivalent of From(input).Walk(paths...).Print().
func Print(input []byte, paths ...string) ([]byte, error) {
	return From(input).Walk(paths...).Print()
}

// MustPrint is Print, panicking on error.
func MustPrint(input []byte, paths ...string) []byte {
	out, err := Print(input, paths...)
	if err != nil {
		panic(err)
	}
	return out
}

func compileWalks(doc *value.Document, walks []string) ([][]*walkpath.Match, error) {
	perWalk := make([][]*walkpath.Match, len(walks))
	for i, w := range walks {
		prog, err := walkpath.Compile(w)
		if err != nil {
			return nil, err
		}
		matches, err := walkpath.Enumerate(doc, prog)
		if err != nil {
			return nil, err
		}
		perWalk[i] = matches
	}
	return perWalk, nil
}

func scheduledPositions(perWalk [][]*walkpath.Match, sequential bool) []walkpath.Position {
	fifos := scheduler.NewFIFOs(perWalk)
	var out []walkpath.Position
	scheduler.Run(fifos, sequential, func(pos walkpath.Position, groupSize int) {
		out = append(out, pos)
	})
	return out
}

func printWalks(input []byte, walks []string, sequential bool, opts jsonio.Options) ([]byte, error) {
	doc, err := decodeDocument(input, opts)
	if err != nil {
		return nil, err
	}
	perWalk, err := compileWalks(doc, walks)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	for i, pos := range scheduledPositions(perWalk, sequential) {
		if !pos.IsValid() {
			continue
		}
		if i > 0 {
			buf.WriteByte('\n')
		}
		buf.Write(jsonio.EncodePretty(pos.Node, 2))
	}
	return buf.Bytes(), nil
}

type mutateOp func(doc *value.Document, pos walkpath.Position, src *value.Node) error

func insertAt(doc *value.Document, pos walkpath.Position, src *value.Node) error {
	return mutate.Insert(doc, pos.Node, "", false, src)
}

func updateAt(doc *value.Document, pos walkpath.Position, src *value.Node) error {
	label, _ := pos.Label()
	idx, isArrayIdx := arrayIndexOf(pos)
	return mutate.Update(doc, pos.Parent, label, idx, isArrayIdx, false, src)
}

func arrayIndexOf(pos walkpath.Position) (int, bool) {
	if pos.Parent == nil || !pos.Parent.IsArray() {
		return 0, false
	}
	return pos.Parent.ArrayIndexOf(pos.Node), true
}

func mutateWalks(input []byte, walks []string, sequential bool, opts jsonio.Options, op mutateOp, srcRaw string) ([]byte, error) {
	doc, err := decodeDocument(input, opts)
	if err != nil {
		return nil, err
	}
	src, err := resolveOperand(srcRaw, doc, opts)
	if err != nil {
		return nil, err
	}

	perWalk, err := compileWalks(doc, walks)
	if err != nil {
		return nil, err
	}
	for _, pos := range scheduledPositions(perWalk, sequential) {
		if !pos.IsValid() {
			continue
		}
		if err := op(doc, pos, src); err != nil {
			return nil, err
		}
	}
	return jsonio.EncodePretty(doc.Root(), 2), nil
}

func purgeWalks(input []byte, walks []string, sequential bool, opts jsonio.Options, double bool) ([]byte, error) {
	doc, err := decodeDocument(input, opts)
	if err != nil {
		return nil, err
	}
	perWalk, err := compileWalks(doc, walks)
	if err != nil {
		return nil, err
	}

	var positions []walkpath.Position
	for _, pos := range scheduledPositions(perWalk, sequential) {
		positions = append(positions, pos)
	}
	if double {
		mutate.DoublePurge(doc, positions)
	} else {
		mutate.Purge(doc, positions)
	}
	return jsonio.EncodePretty(doc.Root(), 2), nil
}

func compareWalk(input []byte, walks []string, opts jsonio.Options, otherRaw string) ([]byte, bool, error) {
	doc, err := decodeDocument(input, opts)
	if err != nil {
		return nil, false, err
	}
	other, err := resolveOperand(otherRaw, doc, opts)
	if err != nil {
		return nil, false, err
	}

	target := doc.Root()
	if len(walks) > 0 {
		perWalk, err := compileWalks(doc, walks)
		if err != nil {
			return nil, false, err
		}
		positions := scheduledPositions(perWalk, false)
		if len(positions) > 0 {
			target = positions[0].Node
		}
	}

	diff1, diff2, ok := mutate.Compare(target, other)
	if ok {
		return nil, true, nil
	}
	return jsonio.EncodePretty(mutate.Wrap(diff1, diff2), 2), false, nil
}

func decodeDocument(input []byte, opts jsonio.Options) (*value.Document, error) {
	root, err := jsonio.DecodeBytes(input, opts)
	if err != nil {
		return nil, err
	}
	return value.NewDocument(root), nil
}

// resolveOperand implements -i/-u/-c's operand resolution: a JSON literal
// wins if it parses, otherwise raw is evaluated as a walk-path against
// doc and its first match is used.
func resolveOperand(raw string, doc *value.Document, opts jsonio.Options) (*value.Node, error) {
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

// Package walkpath implements the walk-path compiler (C2) and the walk
// iterator engine (C3): lexing a walk-path string into an ordered lexeme
// program (spec.md §4.1), then executing that program as a depth-first,
// restartable, resumable generator over a value tree (spec.md §4.2).
//
// Grounded on the teacher's internal/jsonpath/parser.go recursive-descent
// scanner (parser struct{ src string; pos int }, skipSpaces/startsWith/
// parseInt helpers) and its internal/jsonpath/selector.go one-struct-
// per-kind Selector dispatch, adapted from JSONPath's dot/bracket grammar
// to jtc's [...]/<...>/>...< bracketed-lexeme grammar.
package walkpath

import "fmt"

// WalkPathError reports a malformed walk-path string (spec.md §7).
type WalkPathError struct {
	Path    string
	Pos     int
	Message string
}

func (e *WalkPathError) Error() string {
	return fmt.Sprintf("walk-path error at position %d in %q: %s", e.Pos, e.Path, e.Message)
}

// WalkInvalidated reports that a previously collected Position no longer
// addresses a live node (spec.md §7, §4.4 Ordering and invalidation).
type WalkInvalidated struct {
	Path string
}

func (e *WalkInvalidated) Error() string {
	return fmt.Sprintf("walk position invalidated: %s", e.Path)
}

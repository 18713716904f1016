package jtc

import "github.com/mibar/jtc/internal/jsonio"

// Builder accumulates input-level options before a walk is chosen.
// Grounded on the teacher's pkg/shaker/builder.go Builder/Prefix fork
// pattern: From returns a Builder, and each terminal verb (here Walk)
// forks into its own builder type carrying the accumulated walk-paths.
type Builder struct {
	input      []byte
	sequential bool
	strict     bool
}

// From starts a query against input.
func From(input []byte) *Builder {
	return &Builder{input: input}
}

// Sequential disables interleaved scheduling across multiple walks
// (the CLI's -n).
func (b *Builder) Sequential() *Builder {
	b.sequential = true
	return b
}

// Strict enables strict quoted-solidus JSON parsing (the CLI's -q).
func (b *Builder) Strict() *Builder {
	b.strict = true
	return b
}

// Walk forks into a WalkBuilder carrying one or more walk-paths.
func (b *Builder) Walk(paths ...string) *WalkBuilder {
	return &WalkBuilder{builder: b, walks: append([]string{}, paths...)}
}

// WalkBuilder carries a resolved set of walk-paths, ready for a terminal
// verb: Print, Insert, Update, Purge or Compare. Grounded on the
// teacher's IncludeBuilder/ExcludeBuilder: a second fork whose further
// Include calls accumulate rather than replace, mirrored here by Walk
// appending to the existing list.
type WalkBuilder struct {
	builder *Builder
	walks   []string
}

// Walk appends further walk-paths to the ones already accumulated.
func (wb *WalkBuilder) Walk(paths ...string) *WalkBuilder {
	wb.walks = append(wb.walks, paths...)
	return wb
}

func (wb *WalkBuilder) jsonOptions() jsonio.Options {
	return jsonio.Options{StrictSolidus: wb.builder.strict}
}

// Print walks the input and returns each matched value, pretty-printed
// and newline-joined in scheduled order.
func (wb *WalkBuilder) Print() ([]byte, error) {
	return printWalks(wb.builder.input, wb.walks, wb.builder.sequential, wb.jsonOptions())
}

// MustPrint is Print, panicking on error.
func (wb *WalkBuilder) MustPrint() []byte {
	out, err := wb.Print()
	if err != nil {
		panic(err)
	}
	return out
}

// Insert inserts src at every matched position and returns the mutated
// document (the CLI's -i).
func (wb *WalkBuilder) Insert(src string) ([]byte, error) {
	return mutateWalks(wb.builder.input, wb.walks, wb.builder.sequential, wb.jsonOptions(), insertAt, src)
}

// MustInsert is Insert, panicking on error.
func (wb *WalkBuilder) MustInsert(src string) []byte {
	out, err := wb.Insert(src)
	if err != nil {
		panic(err)
	}
	return out
}

// Update replaces every matched position with src and returns the
// mutated document (the CLI's -u).
func (wb *WalkBuilder) Update(src string) ([]byte, error) {
	return mutateWalks(wb.builder.input, wb.walks, wb.builder.sequential, wb.jsonOptions(), updateAt, src)
}

// MustUpdate is Update, panicking on error.
func (wb *WalkBuilder) MustUpdate(src string) []byte {
	out, err := wb.Update(src)
	if err != nil {
		panic(err)
	}
	return out
}

// Purge removes every matched position and returns the mutated document
// (the CLI's -p).
func (wb *WalkBuilder) Purge() ([]byte, error) {
	return purgeWalks(wb.builder.input, wb.walks, wb.builder.sequential, wb.jsonOptions(), false)
}

// MustPurge is Purge, panicking on error.
func (wb *WalkBuilder) MustPurge() []byte {
	out, err := wb.Purge()
	if err != nil {
		panic(err)
	}
	return out
}

// Compare compares the first matched position against other and returns
// the two diff trees wrapped under json_1/json_2, or nil with ok=true
// when equal (the CLI's -c).
func (wb *WalkBuilder) Compare(other string) (diff []byte, ok bool, err error) {
	return compareWalk(wb.builder.input, wb.walks, wb.jsonOptions(), other)
}

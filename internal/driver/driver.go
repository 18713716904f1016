// Package driver implements the command-line surface (C7): flag parsing,
// input/output resolution, dispatch into the walk-path, scheduler and
// mutation packages, and the exit-code taxonomy of spec.md §6.
//
// Grounded on eykd-prosemark-go/cmd/root.go's single entry-point style
// (parse, read, dispatch, write, return a code rather than calling
// os.Exit directly) adapted from cobra's Command.RunE to a plain Run
// method so it can be exercised from tests without spawning a process.
package driver

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mibar/jtc/internal/guide"
	"github.com/mibar/jtc/internal/jsonio"
	"github.com/mibar/jtc/internal/mutate"
	"github.com/mibar/jtc/internal/scheduler"
	"github.com/mibar/jtc/internal/value"
	"github.com/mibar/jtc/internal/walkpath"
)

// Driver holds the I/O streams a run is wired to, so tests can supply
// buffers in place of the process's real stdin/stdout/stderr.
type Driver struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// New returns a Driver wired to the given streams.
func New(stdin io.Reader, stdout, stderr io.Writer) *Driver {
	return &Driver{Stdin: stdin, Stdout: stdout, Stderr: stderr}
}

// Run parses argv (excluding the program name) and performs one jtc
// invocation, returning the process exit code (spec.md §6).
func (d *Driver) Run(argv []string) int {
	execTemplate, rest, err := extractExecClause(argv)
	if err != nil {
		fmt.Fprintln(d.Stderr, err)
		return ExitMissingExecCloser
	}

	opts := &Options{ExecTemplate: execTemplate}
	cmd := newCommand(opts)
	cmd.SetOut(d.Stdout)
	cmd.SetErr(d.Stderr)
	if err := cmd.ParseFlags(rest); err != nil {
		fmt.Fprintln(d.Stderr, err)
		return ExitOptionError
	}
	finalize(opts, cmd.Flags())

	log := NewLogger(d.Stderr, opts.DebugLevel)

	if opts.ShowGuide {
		fmt.Fprintln(d.Stdout, guide.Text())
		return ExitSuccess
	}

	if positional := cmd.Flags().Args(); len(positional) > 0 {
		opts.InputFile = positional[0]
	}

	raw, err := d.readInput(opts.InputFile)
	if err != nil {
		fmt.Fprintln(d.Stderr, err)
		return ExitOptionError
	}

	jsonOpts := jsonio.Options{StrictSolidus: opts.StrictSolidus}

	walks := opts.Walks()
	needsWalk := opts.HasInsert || opts.HasUpdate || opts.Swap || opts.HasPurge || opts.HasTemplate || opts.HasExec
	if needsWalk && len(walks) == 0 {
		fmt.Fprintln(d.Stderr, "jtc: at least one -w is required for this operation")
		return ExitWalkPathRequired
	}

	if opts.AllStream {
		return d.runStream(raw, jsonOpts, walks, opts, log)
	}

	root, err := jsonio.DecodeBytes(raw, jsonOpts)
	if err != nil {
		fmt.Fprintln(d.Stderr, err)
		return ExitJSONParseError
	}
	doc := value.NewDocument(root)

	if opts.HasCompare {
		return d.runCompare(doc, walks, opts, log)
	}

	perWalk, err := compileAndEnumerate(doc, walks)
	if err != nil {
		return exitForCompileErr(d.Stderr, err)
	}

	switch {
	case opts.HasInsert:
		d.mutateEach(doc, perWalk, opts, log, mutateInsert)
	case opts.HasUpdate:
		d.mutateEach(doc, perWalk, opts, log, mutateUpdate)
	case opts.Swap:
		d.runSwap(doc, perWalk, log)
	case opts.HasPurge:
		d.runPurge(doc, perWalk, opts)
	default:
		d.printWalked(doc, perWalk, opts, log)
		return ExitSuccess
	}

	return d.writeDocument(doc, opts)
}

// runStream implements -a: each concatenated top-level JSON document is
// walked and mutated independently, as if jtc had been invoked once per
// document; -J then wraps the resulting documents into a single array
// instead of printing them newline-separated. -f (in-place rewrite) is
// ignored in stream mode (spec.md §6), since there is no single output
// document to divert to the input file.
func (d *Driver) runStream(raw []byte, jsonOpts jsonio.Options, walks []string, opts *Options, log *Logger) int {
	docs, err := jsonio.DecodeStreamBytes(raw, jsonOpts)
	if err != nil {
		fmt.Fprintln(d.Stderr, err)
		return ExitJSONParseError
	}

	var wrapped *value.Node
	if opts.WrapAllStream {
		wrapped = value.NewArray()
	}

	for _, root := range docs {
		doc := value.NewDocument(root)

		perWalk, err := compileAndEnumerate(doc, walks)
		if err != nil {
			return exitForCompileErr(d.Stderr, err)
		}

		switch {
		case opts.HasInsert:
			d.mutateEach(doc, perWalk, opts, log, mutateInsert)
		case opts.HasUpdate:
			d.mutateEach(doc, perWalk, opts, log, mutateUpdate)
		case opts.Swap:
			d.runSwap(doc, perWalk, log)
		case opts.HasPurge:
			d.runPurge(doc, perWalk, opts)
		default:
			d.printWalked(doc, perWalk, opts, log)
			continue
		}

		if wrapped != nil {
			wrapped.ArrayAppend(doc.Root())
		} else {
			fmt.Fprintln(d.Stdout, string(renderOne(doc.Root(), opts)))
		}
	}

	if wrapped != nil {
		fmt.Fprintln(d.Stdout, string(renderOne(wrapped, opts)))
	}
	return ExitSuccess
}

func (d *Driver) readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(d.Stdin)
	}
	return os.ReadFile(path)
}

func compileAndEnumerate(doc *value.Document, walks []string) ([][]*walkpath.Match, error) {
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

// exitForCompileErr reports err and picks its exit band: a walk-path
// error whose message came from a bad regex inside a search lexeme
// (wrapped that way by walkpath.matchesPredicate) gets its own band so a
// caller can tell "bad walk-path syntax" from "bad regex" without
// parsing stderr.
func exitForCompileErr(stderr io.Writer, err error) int {
	fmt.Fprintln(stderr, err)
	if wpe, ok := err.(*walkpath.WalkPathError); ok && strings.Contains(wpe.Message, "invalid regex") {
		return ExitRegexError
	}
	return ExitWalkCompileError
}

// scheduledPositions drains perWalk through the scheduler, honoring -n,
// and returns every position in emission order.
func scheduledPositions(perWalk [][]*walkpath.Match, sequential bool) []walkpath.Position {
	fifos := scheduler.NewFIFOs(perWalk)
	var out []walkpath.Position
	scheduler.Run(fifos, sequential, func(pos walkpath.Position, groupSize int) {
		out = append(out, pos)
	})
	return out
}

type mutateFn func(doc *value.Document, pos walkpath.Position, opts *Options, log *Logger, src *value.Node) error

func (d *Driver) mutateEach(doc *value.Document, perWalk [][]*walkpath.Match, opts *Options, log *Logger, fn mutateFn) {
	arg := opts.InsertArg
	if opts.HasUpdate {
		arg = opts.UpdateArg
	}

	for _, pos := range scheduledPositions(perWalk, opts.Sequential) {
		if !pos.IsValid() {
			log.Warnf("walk position invalidated: %s", pos.Path.Joined("/"))
			continue
		}

		src, err := d.resolveOperand(doc, pos, arg, opts)
		if err != nil {
			log.Warnf("%v", err)
			continue
		}

		if err := fn(doc, pos, opts, log, src); err != nil {
			log.Warnf("%v", err)
		}
	}
}

// resolveOperand resolves -i/-u's argument to a value, running it through
// -e's shell-exec first when -e was given.
func (d *Driver) resolveOperand(doc *value.Document, pos walkpath.Position, arg string, opts *Options) (*value.Node, error) {
	if opts.HasExec {
		out, err := runExec(opts.ExecTemplate, pos.Namespace, pos.Path)
		if err != nil {
			return nil, err
		}
		return resultToNode(out), nil
	}
	return resolveSource(arg, doc, jsonio.Options{StrictSolidus: opts.StrictSolidus})
}

func mutateInsert(doc *value.Document, pos walkpath.Position, opts *Options, log *Logger, src *value.Node) error {
	label, _ := pos.Label()
	if opts.Merge {
		idx, isArrayIdx := arrayIndexOf(pos)
		return mutate.InsertMerge(doc, pos.Parent, label, idx, isArrayIdx, pos.Node, src)
	}
	return mutate.Insert(doc, pos.Node, "", false, src)
}

// mutateUpdate replaces the walked value. A Position does not record which
// lexeme produced it, so the label-rename form of mutate.Update is never
// requested here.
func mutateUpdate(doc *value.Document, pos walkpath.Position, opts *Options, log *Logger, src *value.Node) error {
	label, _ := pos.Label()
	idx, isArrayIdx := arrayIndexOf(pos)
	if opts.Merge {
		return mutate.UpdateMerge(doc, pos.Parent, label, idx, isArrayIdx, pos.Node, src)
	}
	return mutate.Update(doc, pos.Parent, label, idx, isArrayIdx, false, src)
}

// arrayIndexOf reports pos's index within its parent array, mirroring
// internal/mutate's own unexported helper of the same shape since
// Position does not carry that index directly.
func arrayIndexOf(pos walkpath.Position) (int, bool) {
	if pos.Parent == nil || !pos.Parent.IsArray() {
		return 0, false
	}
	return pos.Parent.ArrayIndexOf(pos.Node), true
}

func (d *Driver) runSwap(doc *value.Document, perWalk [][]*walkpath.Match, log *Logger) {
	if len(perWalk) != 2 {
		fmt.Fprintln(d.Stderr, "jtc: -s requires exactly two -w walk-paths")
		return
	}
	if err := mutate.Swap(perWalk[0], perWalk[1]); err != nil {
		log.Warnf("%v", err)
	}
}

func (d *Driver) runPurge(doc *value.Document, perWalk [][]*walkpath.Match, opts *Options) {
	var positions []walkpath.Position
	for _, fifo := range perWalk {
		for _, m := range fifo {
			positions = append(positions, m.Position)
		}
	}
	if opts.DoublePurge {
		mutate.DoublePurge(doc, positions)
		return
	}
	mutate.Purge(doc, positions)
}

func (d *Driver) runCompare(doc *value.Document, walks []string, opts *Options, log *Logger) int {
	other, err := resolveSource(opts.CompareArg, doc, jsonio.Options{StrictSolidus: opts.StrictSolidus})
	if err != nil {
		fmt.Fprintln(d.Stderr, err)
		return ExitOptionError
	}

	target := doc.Root()
	if len(walks) > 0 {
		perWalk, err := compileAndEnumerate(doc, walks)
		if err != nil {
			return exitForCompileErr(d.Stderr, err)
		}
		positions := scheduledPositions(perWalk, opts.Sequential)
		if len(positions) == 0 {
			fmt.Fprintln(d.Stderr, "jtc: -c walk-path matched nothing")
			return ExitWalkPathRequired
		}
		target = positions[0].Node
	}

	diff1, diff2, ok := mutate.Compare(target, other)
	if ok {
		return ExitSuccess
	}

	if opts.WrapArray || opts.WrapObject {
		fmt.Fprintln(d.Stdout, string(renderOne(mutate.Wrap(diff1, diff2), opts)))
	} else {
		fmt.Fprintln(d.Stdout, string(renderOne(wrapLabeled("json_1", diff1), opts)))
		fmt.Fprintln(d.Stdout, string(renderOne(wrapLabeled("json_2", diff2), opts)))
	}
	return ExitCompareDifferences
}

func wrapLabeled(label string, n *value.Node) *value.Node {
	if n == nil {
		n = value.NewNull()
	}
	obj := value.NewObject()
	obj.ObjectSet(label, n)
	return obj
}

func (d *Driver) printWalked(doc *value.Document, perWalk [][]*walkpath.Match, opts *Options, log *Logger) {
	var items []emission
	for _, pos := range scheduledPositions(perWalk, opts.Sequential) {
		if !pos.IsValid() {
			log.Warnf("walk position invalidated: %s", pos.Path.Joined("/"))
			continue
		}
		v := pos.Node
		if opts.HasTemplate {
			rendered, err := applyTemplate(pos, opts.Template)
			if err != nil {
				log.Warnf("%v", err)
				continue
			}
			v = rendered
		}
		items = append(items, emission{pos: pos, value: v})
	}
	fmt.Fprintln(d.Stdout, string(renderEmissions(items, opts)))
}

func (d *Driver) writeDocument(doc *value.Document, opts *Options) int {
	out := renderOne(doc.Root(), opts)
	if opts.InPlace && opts.InputFile != "" && opts.InputFile != "-" {
		if err := os.WriteFile(opts.InputFile, append(bytes.TrimRight(out, "\n"), '\n'), 0o644); err != nil {
			fmt.Fprintln(d.Stderr, err)
			return ExitOptionError
		}
		return ExitSuccess
	}
	fmt.Fprintln(d.Stdout, string(out))
	return ExitSuccess
}

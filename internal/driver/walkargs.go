package driver

import "github.com/spf13/pflag"

// walkEventKind distinguishes the three flags that can contribute to the
// final list of walk-paths.
type walkEventKind byte

const (
	walkEventW walkEventKind = iota
	walkEventX
	walkEventY
)

type walkEvent struct {
	kind walkEventKind
	text string
}

// walkArgs collects every occurrence of -w, -x and -y in the order pflag
// encounters them on the command line. pflag calls Set on a flag's Value
// once per occurrence, in encounter order, regardless of which flag
// letter produced it — that ordering guarantee is what lets -x/-y
// shorthand (spec.md §6) be resolved correctly even when interleaved with
// plain -w occurrences.
type walkArgs struct {
	events []walkEvent
}

// pflagValue adapts one (collector, kind) pair to pflag.Value so each of
// -w/-x/-y can share the same ordered event log while still being
// registered as its own flag.
type pflagValue struct {
	args *walkArgs
	kind walkEventKind
}

func (v *pflagValue) String() string { return "" }
func (v *pflagValue) Type() string   { return "stringArray" }
func (v *pflagValue) Set(s string) error {
	v.args.events = append(v.args.events, walkEvent{kind: v.kind, text: s})
	return nil
}

// register wires -w, -x and -y onto fs, all backed by the same walkArgs.
func (a *walkArgs) register(fs *pflag.FlagSet) {
	fs.VarP(&pflagValue{args: a, kind: walkEventW}, "walk", "w", "walk-path (repeatable)")
	fs.VarP(&pflagValue{args: a, kind: walkEventX}, "common", "x", "common walk-path prefix for following -y")
	fs.VarP(&pflagValue{args: a, kind: walkEventY}, "partial", "y", "partial walk-path, appended to the last -x")
}

// expand resolves the recorded -w/-x/-y events into the final ordered
// list of walk-path strings: a -w contributes itself verbatim; a -y
// contributes the concatenation of the most recently seen -x (or "" if
// none came before it) with its own text.
func (a *walkArgs) expand() []string {
	var out []string
	prefix := ""
	for _, ev := range a.events {
		switch ev.kind {
		case walkEventW:
			out = append(out, ev.text)
		case walkEventX:
			prefix = ev.text
		case walkEventY:
			out = append(out, prefix+ev.text)
		}
	}
	return out
}

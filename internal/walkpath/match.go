package walkpath

import (
	"strconv"

	"golang.org/x/text/unicode/norm"

	"github.com/mibar/jtc/internal/jsonio"
	"github.com/mibar/jtc/internal/value"
)

// Match is one produced position together with the generator-lexeme
// enumeration indices active when it was produced (spec.md §4.2
// "counter method").
type Match struct {
	Position Position
	Counters []int
}

// Enumerate runs prog against doc's root and returns every matching
// position in the program's deterministic depth-first order (spec.md
// §4.2). The scheduler's own contract (§4.3) takes fully enumerated
// FIFOs as input, so eager enumeration here — rather than a literal
// suspend/resume coroutine — satisfies the iterator contract without
// giving up determinism or the counter bookkeeping generator lexemes
// need.
func Enumerate(doc *value.Document, prog *Program) ([]*Match, error) {
	root := doc.Root()
	counters := make([]int, len(prog.Lexemes))
	for i := range counters {
		counters[i] = -1
	}
	ctx := &matchCtx{doc: doc, prog: prog, counters: counters, regexes: newRegexCache()}
	if err := ctx.step(0, []*value.Node{root}, value.Path{}, EmptyNamespace()); err != nil {
		return nil, err
	}
	return ctx.results, nil
}

type matchCtx struct {
	doc      *value.Document
	prog     *Program
	counters []int
	results  []*Match
	regexes  *regexCache
}

func (ctx *matchCtx) emit(path value.Path, ancestors []*value.Node, ns Namespace) {
	node := ancestors[len(ancestors)-1]
	var parent *value.Node
	if len(ancestors) >= 2 {
		parent = ancestors[len(ancestors)-2]
	}
	snapshot := make([]int, len(ctx.counters))
	copy(snapshot, ctx.counters)
	ancestorsCopy := make([]*value.Node, len(ancestors))
	copy(ancestorsCopy, ancestors)
	pos := Position{Doc: ctx.doc, Path: path, Node: node, Parent: parent, Namespace: ns.WithCurrent(node), ancestors: ancestorsCopy}
	ctx.results = append(ctx.results, &Match{Position: pos, Counters: snapshot})
}

// step executes the lexeme at idx against the node at the tip of
// ancestors, recursing to idx+1 on every local success and emitting a
// Match once idx reaches the end of the program. Local failure (a
// lexeme that cannot resolve from the current node) simply returns nil
// without emitting — which is the program's own backtracking, since a
// generator lexeme higher in the call stack owns the enclosing loop.
func (ctx *matchCtx) step(idx int, ancestors []*value.Node, path value.Path, ns Namespace) error {
	if idx == len(ctx.prog.Lexemes) {
		ctx.emit(path, ancestors, ns)
		return nil
	}
	node := ancestors[len(ancestors)-1]

	switch l := ctx.prog.Lexemes[idx].(type) {
	case OffsetPlain:
		child, step, ok := nthChild(node, l.N)
		if !ok {
			return nil
		}
		return ctx.step(idx+1, appendNode(ancestors, child), path.Child(step), ns)

	case OffsetBack:
		newLen := len(ancestors) - l.N
		if newLen < 1 {
			return nil
		}
		newPath, ok := path.Prefix(newLen - 1)
		if !ok {
			return nil
		}
		return ctx.step(idx+1, ancestors[:newLen], newPath, ns)

	case OffsetFromRoot:
		newLen := l.N + 1
		if newLen > len(ancestors) {
			return nil
		}
		newPath, ok := path.Prefix(l.N)
		if !ok {
			return nil
		}
		return ctx.step(idx+1, ancestors[:newLen], newPath, ns)

	case OffsetLabel:
		return ctx.stepLabel(idx, ancestors, path, ns, l.Label)

	case OffsetEmptyLabel:
		return ctx.stepLabel(idx, ancestors, path, ns, "")

	case OffsetIterable:
		return ctx.stepIterable(idx, ancestors, path, ns, l.Start)

	case OffsetRange:
		return ctx.stepRange(idx, ancestors, path, ns, l.Lo, l.Hi)

	case *Search:
		return ctx.stepSearch(idx, ancestors, path, ns, l)

	default:
		return nil
	}
}

func (ctx *matchCtx) stepLabel(idx int, ancestors []*value.Node, path value.Path, ns Namespace, label string) error {
	node := ancestors[len(ancestors)-1]
	if !node.IsObject() {
		return nil
	}
	child, ok := node.ObjectGet(label)
	if !ok {
		return nil
	}
	return ctx.step(idx+1, appendNode(ancestors, child), path.Child(value.LabelStep(label)), ns)
}

func (ctx *matchCtx) stepIterable(idx int, ancestors []*value.Node, path value.Path, ns Namespace, start int) error {
	node := ancestors[len(ancestors)-1]
	gi := 0
	switch {
	case node.IsArray():
		children := node.ArrayChildren()
		for i := start; i < len(children); i++ {
			ctx.counters[idx] = gi
			if err := ctx.step(idx+1, appendNode(ancestors, children[i]), path.Child(value.IndexStep(i)), ns); err != nil {
				return err
			}
			gi++
		}
	case node.IsObject():
		labels := node.ObjectLabels()
		for i := start; i < len(labels); i++ {
			child, _ := node.ObjectGet(labels[i])
			ctx.counters[idx] = gi
			if err := ctx.step(idx+1, appendNode(ancestors, child), path.Child(value.LabelStep(labels[i])), ns); err != nil {
				return err
			}
			gi++
		}
	}
	ctx.counters[idx] = -1
	return nil
}

func (ctx *matchCtx) stepRange(idx int, ancestors []*value.Node, path value.Path, ns Namespace, lo, hi *int) error {
	node := ancestors[len(ancestors)-1]
	var length int
	switch {
	case node.IsArray(), node.IsObject():
		length = node.Len()
	default:
		return nil
	}
	from := resolveSliceBound(lo, length, 0)
	to := resolveSliceBound(hi, length, length)

	gi := 0
	if node.IsArray() {
		children := node.ArrayChildren()
		for i := from; i < to && i < len(children); i++ {
			ctx.counters[idx] = gi
			if err := ctx.step(idx+1, appendNode(ancestors, children[i]), path.Child(value.IndexStep(i)), ns); err != nil {
				return err
			}
			gi++
		}
	} else {
		labels := node.ObjectLabels()
		for i := from; i < to && i < len(labels); i++ {
			child, _ := node.ObjectGet(labels[i])
			ctx.counters[idx] = gi
			if err := ctx.step(idx+1, appendNode(ancestors, child), path.Child(value.LabelStep(labels[i])), ns); err != nil {
				return err
			}
			gi++
		}
	}
	ctx.counters[idx] = -1
	return nil
}

func (ctx *matchCtx) stepSearch(idx int, ancestors []*value.Node, path value.Path, ns Namespace, s *Search) error {
	candidates := collectCandidates(ancestors, path, s.Recursive)
	filtered := make([]searchCandidate, 0, len(candidates))
	for _, c := range candidates {
		ok, err := matchesPredicate(ctx.regexes, c, s)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		if s.AttachedLabel != nil && !(c.step.IsLabel && c.step.Label == *s.AttachedLabel) {
			continue
		}
		filtered = append(filtered, c)
	}

	switch q := s.Qualifier.(type) {
	case QualifierIndex:
		if q.K < 0 || q.K >= len(filtered) {
			return nil
		}
		c := filtered[q.K]
		return ctx.step(idx+1, c.ancestors, c.path, ns)

	case QualifierFromIndex:
		start := q.K
		if start < 0 {
			start = 0
		}
		gi := 0
		for i := start; i < len(filtered); i++ {
			ctx.counters[idx] = gi
			if err := ctx.step(idx+1, filtered[i].ancestors, filtered[i].path, ns); err != nil {
				return err
			}
			gi++
		}
		ctx.counters[idx] = -1
		return nil

	case QualifierRange:
		lo, hi := q.K1, q.K2
		if lo < 0 {
			lo = 0
		}
		if hi > len(filtered) {
			hi = len(filtered)
		}
		gi := 0
		for i := lo; i < hi; i++ {
			ctx.counters[idx] = gi
			if err := ctx.step(idx+1, filtered[i].ancestors, filtered[i].path, ns); err != nil {
				return err
			}
			gi++
		}
		ctx.counters[idx] = -1
		return nil

	default:
		return nil
	}
}

func appendNode(ancestors []*value.Node, child *value.Node) []*value.Node {
	out := make([]*value.Node, len(ancestors)+1)
	copy(out, ancestors)
	out[len(ancestors)] = child
	return out
}

func nthChild(node *value.Node, n int) (*value.Node, value.Step, bool) {
	switch {
	case node.IsObject():
		labels := node.ObjectLabels()
		if n < 0 || n >= len(labels) {
			return nil, value.Step{}, false
		}
		child, _ := node.ObjectGet(labels[n])
		return child, value.LabelStep(labels[n]), true
	case node.IsArray():
		child, ok := node.ArrayGet(n)
		if !ok {
			return nil, value.Step{}, false
		}
		return child, value.IndexStep(n), true
	default:
		return nil, value.Step{}, false
	}
}

// unicodeEqual compares two strings under NFC normal form, so a walked
// string built from combining characters matches a search body spelled
// with the precomposed equivalent (spec.md §4.2 string search).
func unicodeEqual(a, b string) bool {
	if a == b {
		return true
	}
	return norm.NFC.String(a) == norm.NFC.String(b)
}

func resolveSliceBound(b *int, length, def int) int {
	if b == nil {
		return def
	}
	v := *b
	if v < 0 {
		v += length
	}
	if v < 0 {
		v = 0
	}
	if v > length {
		v = length
	}
	return v
}

// searchCandidate is one node visited while scanning for a Search match,
// carrying enough state (the full ancestor chain) to resume the program
// from it regardless of how deep a recursive search descended.
type searchCandidate struct {
	node      *value.Node
	path      value.Path
	ancestors []*value.Node
	step      value.Step
}

// collectCandidates walks node's children (and, if recursive, every
// descendant) in document order: objects by insertion order, arrays by
// index.
func collectCandidates(baseAncestors []*value.Node, basePath value.Path, recursive bool) []searchCandidate {
	var out []searchCandidate
	var walk func(curAncestors []*value.Node, curPath value.Path)
	walk = func(curAncestors []*value.Node, curPath value.Path) {
		cur := curAncestors[len(curAncestors)-1]
		switch {
		case cur.IsObject():
			for _, label := range cur.ObjectLabels() {
				child, _ := cur.ObjectGet(label)
				childAncestors := appendNode(curAncestors, child)
				childPath := curPath.Child(value.LabelStep(label))
				out = append(out, searchCandidate{node: child, path: childPath, ancestors: childAncestors, step: value.LabelStep(label)})
				if recursive {
					walk(childAncestors, childPath)
				}
			}
		case cur.IsArray():
			for i, child := range cur.ArrayChildren() {
				childAncestors := appendNode(curAncestors, child)
				childPath := curPath.Child(value.IndexStep(i))
				out = append(out, searchCandidate{node: child, path: childPath, ancestors: childAncestors, step: value.IndexStep(i)})
				if recursive {
					walk(childAncestors, childPath)
				}
			}
		}
	}
	walk(baseAncestors, basePath)
	return out
}

func matchesPredicate(regexes *regexCache, c searchCandidate, s *Search) (bool, error) {
	n := c.node
	switch s.Kind {
	case RecursiveStrings:
		return n.IsString() && unicodeEqual(n.StringValue(), s.Body), nil
	case RecursiveRegex:
		re, err := regexes.compile(s.Body)
		if err != nil {
			return false, &WalkPathError{Message: "invalid regex in search body: " + err.Error()}
		}
		return n.IsString() && re.MatchString(n.StringValue()), nil
	case Label:
		return c.step.IsLabel && unicodeEqual(c.step.Label, s.Body), nil
	case LabelRegex:
		re, err := regexes.compile(s.Body)
		if err != nil {
			return false, &WalkPathError{Message: "invalid regex in search body: " + err.Error()}
		}
		return c.step.IsLabel && re.MatchString(c.step.Label), nil
	case NumberExact:
		if !n.IsNumber() {
			return false, nil
		}
		want, err := strconv.ParseFloat(s.Body, 64)
		if err != nil {
			return false, nil
		}
		return n.NumberFloat() == want, nil
	case NumberRegex:
		if !n.IsNumber() {
			return false, nil
		}
		re, err := regexes.compile(s.Body)
		if err != nil {
			return false, &WalkPathError{Message: "invalid regex in search body: " + err.Error()}
		}
		return re.MatchString(n.NumberText()), nil
	case Boolean:
		if !n.IsBoolean() {
			return false, nil
		}
		switch s.Body {
		case "any", "":
			return true, nil
		case "true":
			return n.BoolValue(), nil
		case "false":
			return !n.BoolValue(), nil
		default:
			return false, nil
		}
	case Null:
		return n.IsNull(), nil
	case AnyAtom:
		return n.IsAtom(), nil
	case AnyObject:
		return n.IsObject(), nil
	case AnyArray:
		return n.IsArray(), nil
	case WideAny:
		return true, nil
	case EndNode:
		return n.IsLeaf(), nil
	case JSONLiteral:
		lit, err := jsonio.DecodeBytes([]byte(s.Body), jsonio.Options{})
		if err != nil {
			return false, nil
		}
		return value.Equal(n, lit), nil
	default:
		return false, nil
	}
}

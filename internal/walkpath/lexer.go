package walkpath

import (
	"regexp"
	"strconv"
	"strings"
)

// Compile lexes a walk-path string into an ordered Program (spec.md
// §4.1). Lexemes are bracketed ([...] offsets, <...> recursive searches,
// >...< non-recursive searches); ASCII whitespace between lexemes is
// ignored.
func Compile(raw string) (*Program, error) {
	lx := &lexer{src: raw}
	var lexemes []Lexeme
	for {
		lx.skipSpace()
		if lx.pos >= len(lx.src) {
			break
		}
		lex, err := lx.next()
		if err != nil {
			return nil, err
		}
		lexemes = append(lexemes, lex)
	}
	if len(lexemes) == 0 {
		return nil, &WalkPathError{Path: raw, Pos: 0, Message: "empty walk-path"}
	}
	return &Program{Lexemes: lexemes, Raw: raw}, nil
}

type lexer struct {
	src string
	pos int
}

func (lx *lexer) skipSpace() {
	for lx.pos < len(lx.src) && strings.IndexByte(" \t\n\r\v\f", lx.src[lx.pos]) >= 0 {
		lx.pos++
	}
}

func (lx *lexer) errorf(msg string) error {
	return &WalkPathError{Path: lx.src, Pos: lx.pos, Message: msg}
}

func (lx *lexer) next() (Lexeme, error) {
	ch := lx.src[lx.pos]
	switch ch {
	case '[':
		body, err := lx.readBracket('[', ']')
		if err != nil {
			return nil, err
		}
		offsetLex := classifyOffset(body)
		label, isLabel := offsetLex.(OffsetLabel)
		if isLabel && lx.pos < len(lx.src) && lx.src[lx.pos] == ':' {
			lx.pos++ // consume ':'
			lx.skipSpace()
			if lx.pos >= len(lx.src) {
				return nil, lx.errorf("attached-label prefix not followed by a search lexeme")
			}
			next, err := lx.next()
			if err != nil {
				return nil, err
			}
			search, ok := next.(*Search)
			if !ok {
				return nil, lx.errorf("attached-label prefix must be followed by a search lexeme")
			}
			lbl := label.Label
			search.AttachedLabel = &lbl
			return search, nil
		}
		return offsetLex, nil
	case '<':
		body, err := lx.readBracket('<', '>')
		if err != nil {
			return nil, err
		}
		return lx.classifySearch(body, true)
	case '>':
		body, err := lx.readBracket('>', '<')
		if err != nil {
			return nil, err
		}
		return lx.classifySearch(body, false)
	default:
		return nil, lx.errorf("unexpected character '" + string(ch) + "', expected '[', '<' or '>'")
	}
}

// readBracket consumes the lexeme starting at the current open bracket
// and returns its unescaped body; a closing bracket inside the body must
// be escaped with a preceding backslash.
func (lx *lexer) readBracket(open, closeCh byte) (string, error) {
	lx.pos++ // consume open
	var buf []byte
	for lx.pos < len(lx.src) {
		c := lx.src[lx.pos]
		if c == '\\' && lx.pos+1 < len(lx.src) && lx.src[lx.pos+1] == closeCh {
			buf = append(buf, closeCh)
			lx.pos += 2
			continue
		}
		if c == closeCh {
			lx.pos++
			return string(buf), nil
		}
		buf = append(buf, c)
		lx.pos++
	}
	return "", lx.errorf("unclosed lexeme, expected '" + string(closeCh) + "'")
}

var (
	rePlain     = regexp.MustCompile(`^-?[0-9]+$`)
	reFromRoot  = regexp.MustCompile(`^\^\+?[0-9]+$`)
	reIterable  = regexp.MustCompile(`^\+[0-9]+$`)
	reRange     = regexp.MustCompile(`^[+-]?[0-9]*:[+-]?[0-9]*$`)
	reQualRange = regexp.MustCompile(`^([0-9]+):([0-9]+)$`)
	reQualFrom  = regexp.MustCompile(`^\+([0-9]+)$`)
	reQualIndex = regexp.MustCompile(`^[0-9]+$`)
)

// classifyOffset classifies an already-unescaped [...] body per spec.md
// §4.1's offset grammar.
func classifyOffset(body string) Lexeme {
	switch {
	case body == "":
		return OffsetEmptyLabel{}
	case rePlain.MatchString(body):
		n, _ := strconv.Atoi(body)
		if n < 0 {
			return OffsetBack{N: -n}
		}
		return OffsetPlain{N: n}
	case reFromRoot.MatchString(body):
		numStr := strings.TrimPrefix(strings.TrimPrefix(body, "^"), "+")
		n, _ := strconv.Atoi(numStr)
		return OffsetFromRoot{N: n}
	case reIterable.MatchString(body):
		n, _ := strconv.Atoi(strings.TrimPrefix(body, "+"))
		return OffsetIterable{Start: n}
	case reRange.MatchString(body):
		parts := strings.SplitN(body, ":", 2)
		return OffsetRange{Lo: parseOptionalInt(parts[0]), Hi: parseOptionalInt(parts[1])}
	default:
		return OffsetLabel{Label: body}
	}
}

func parseOptionalInt(s string) *int {
	if s == "" {
		return nil
	}
	n, _ := strconv.Atoi(s)
	return &n
}

const searchSuffixes = "rRlLdDbnaoijwe"

// classifySearch classifies an already-unescaped <...>/>...< body into a
// Search lexeme. A trailing character from searchSuffixes is always read
// as an explicit suffix letter (default is 'r' when absent); to search for
// a body that itself ends in one of those letters, write an explicit
// suffix or qualifier after it ("Bobr" or "Bob0" for the string "Bob").
func (lx *lexer) classifySearch(body string, recursive bool) (*Search, error) {
	rest := body
	kind := RecursiveStrings
	if len(rest) > 0 && strings.ContainsRune(searchSuffixes, rune(rest[len(rest)-1])) {
		kind = SearchKind(rest[len(rest)-1])
		rest = rest[:len(rest)-1]
	}

	var qualifier Qualifier = QualifierIndex{K: 0}
	if q, newRest, ok := stripTrailingQualifier(rest); ok {
		qualifier = q
		rest = newRest
	}

	if rest == "" && !emptyBodyAllowed(kind) {
		return nil, lx.errorf("empty search body not permitted for suffix '" + string(rune(kind)) + "'")
	}

	return &Search{Kind: kind, Body: rest, Qualifier: qualifier, Recursive: recursive}, nil
}

// trailingQualifierMatch finds the shortest trailing suffix of s that fully
// matches re, scanning candidate start positions from the end of s
// backward. A trailing qualifier must be read as the shortest suffix that
// satisfies its grammar, not the longest: a number qualifier following a
// numeric search body (e.g. "421:4" meaning body "42", range 1:4) would
// otherwise have its leading digit run swallowed whole by a greedy match
// starting at position 0.
func trailingQualifierMatch(s string, re *regexp.Regexp) (match []string, bodyEnd int, ok bool) {
	for start := len(s); start >= 0; start-- {
		if m := re.FindStringSubmatch(s[start:]); m != nil {
			return m, start, true
		}
	}
	return nil, 0, false
}

func stripTrailingQualifier(s string) (Qualifier, string, bool) {
	if m, bodyEnd, ok := trailingQualifierMatch(s, reQualRange); ok {
		lo, _ := strconv.Atoi(m[1])
		hi, _ := strconv.Atoi(m[2])
		return QualifierRange{K1: lo, K2: hi}, s[:bodyEnd], true
	}
	if m, bodyEnd, ok := trailingQualifierMatch(s, reQualFrom); ok {
		k, _ := strconv.Atoi(m[1])
		return QualifierFromIndex{K: k}, s[:bodyEnd], true
	}
	if m, bodyEnd, ok := trailingQualifierMatch(s, reQualIndex); ok {
		k, _ := strconv.Atoi(m[0])
		return QualifierIndex{K: k}, s[:bodyEnd], true
	}
	return nil, s, false
}

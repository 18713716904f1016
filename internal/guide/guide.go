// Package guide holds the built-in reference text printed by the `-g`
// flag (spec.md §6 "Guide text"): the walk-path grammar, usage notes for
// combining flags, and a few worked examples.
//
// Grounded on original_source/lib/jtc_guide.hpp's three-section guide
// (walk-path syntax, usage notes, examples), reworded in this project's
// own voice and flag names rather than carried over verbatim.
package guide

import "strings"

// Text is the full guide printed by `-g`.
func Text() string {
	return strings.Join([]string{walkPathSyntax, usageNotes, examples}, "\n\n")
}

const walkPathSyntax = `WALK-PATH SYNTAX

A walk-path is a sequence of lexemes that addresses one or more nodes in a
JSON document. There are two kinds of lexeme:

  offsets  [...]   address a node by label, index, or relative position
  searches <...>   scan the tree under a node for a match, recursively;
                    >...< performs the same search over immediate
                    children only (non-recursive)

Offset lexemes
  []        matches a child stored under the empty label
  [text]    selects the child labeled "text"
  [n]       selects the n-th child of an array or object (0-based)
  [-n]      backs off n levels up the tree from the current position
  [^n]      re-anchors n levels down from the document root
  [+n]      an iterable offset: selects every child from index n onward,
            turning the walk into a generator that emits one match per
            child
  [a:b]     a Python-style range, selecting children [a, b); either bound
            may be omitted or negative, counting from the end

If the bracket contents don't parse as one of the above, the offset falls
back to a plain text label — [ 1] and [1 ] address the labels " 1" and
"1 ", not the index 1.

Search lexemes
  <text>       recursive search for a JSON string equal to "text"
  >text<       the same search restricted to immediate children
  <textS>      a one-letter suffix at the end of the body narrows what
               "text" is matched against; the suffixes are:
                 r  string equality (default)
                 R  string matched as a regular expression
                 l  object label equality
                 L  object label matched as a regular expression
                 d  number equality
                 D  number matched as a regular expression (against its
                    literal text)
                 b  boolean value; the body must be "true", "false", or
                    "any"
                 n  null values (body ignored)
                 a  any atom (string, number, boolean, null)
                 o  any object
                 i  any array
                 j  a specific JSON value, given as the lexeme's body
                 w  any value at all
                 e  any leaf (atom, or an empty object/array)
  <textNS>     a qualifier written just before the suffix (or at the end
               of the body when there is no suffix) selects which
               match(es) to take:
                 N      the N-th match only (0-based)
                 +N     every match from the N-th onward (a generator)
                 N1:N2  matches in the range [N1, N2) (a generator)

The last character of a search body is always read as a suffix when it
is one of the letters above, so <Bob> is read as a boolean search. Add
an explicit suffix or qualifier to search for such text: <Bobr> or
<Bob0> finds the string "Bob".

Bracket characters that belong to the lexeme body rather than closing it
must be escaped with a backslash: [a\]b] addresses the label "a]b", and
<tag\>x> searches for the string "tag>x".

A label can be attached ahead of a search to restrict it to values stored
under that label: [age]:<30d> matches the number 30 only where it is the
value of an "age" field.`

const usageNotes = `USAGE NOTES

Multiple -w: results from more than one -w are, by default, interleaved
by relevance across all walks; -n forces strictly sequential emission,
one walk fully drained before the next starts.

-j / -l: -j wraps walked results into a JSON array; -jj groups them into
objects keyed by label instead. -l requests labels in the output; -j
combined with -l groups the results into an object keyed by label,
inside the array.

-i, -u, -s, -p are mutually exclusive; when more than one is given, the
first in that order wins and the others are ignored. -pp (with no -i,
-u or -s) purges everything except the walked destinations and their
ancestors.

-i and -u accept one argument, resolved in this order: a file path, then
a JSON literal, then a walk-path evaluated against the input document.

-e takes a shell command from the arguments that follow it, up to an
escaped semicolon, \;. Every occurrence of {key} or {{key}} in the
command line is interpolated with the walked value before the
subprocess runs, and the command's output becomes the source of the
insert/update. -i or -u must still be given to pick the operation;
its own argument is not used when -e is present.

-m toggles merge semantics for whichever of -i/-u is active: insert
without -m can only append into an array or object; with -m, any
destination type is coerced to an iterable and its contents are merged
with the source recursively. Update without -m overwrites the
destination outright; with -m, clashing scalar fields overwrite instead
of appending.

-x/-y: -x sets a common path prefix; each following -y is appended to
the most recent -x to synthesize a -w. -x1 -yA -yB -x2 -y3C expands to
-w1A -w1B -w23C — useful when several walks share a long common
prefix.`

const examples = `EXAMPLES

Given example.json:
    {
      "people": [
        { "name": "John Smith", "age": 31, "city": "New York" },
        { "name": "Anna Johnson", "age": 28, "city": "Chicago" }
      ]
    }

Select the first person's name:
    jtc -w '[people][0][name]' example.json
    "John Smith"

Select every person's name:
    jtc -w '[people][+0][name]' example.json
    "John Smith"
    "Anna Johnson"

Select every name together with every city, interleaved by record:
    jtc -w '[people][+0][name]' -w '[people][+0][city]' example.json
    "John Smith"
    "New York"
    "Anna Johnson"
    "Chicago"

The same walks, written with the common-prefix shorthand:
    jtc -x '[people][+0]' -y '[name]' -y '[city]' example.json`

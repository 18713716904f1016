package walkpath

import "regexp"

// regexCache memoizes compiled regular expressions within a single
// Enumerate call: a recursive search lexeme with an R/L/D suffix
// re-evaluates its body's regex against every candidate node, so without
// caching the same pattern would be recompiled once per candidate
// (spec.md §4.2 "the iterator may cache ... to avoid quadratic
// re-scans").
type regexCache struct {
	compiled map[string]*regexp.Regexp
}

func newRegexCache() *regexCache {
	return &regexCache{compiled: make(map[string]*regexp.Regexp)}
}

func (c *regexCache) compile(pattern string) (*regexp.Regexp, error) {
	if re, ok := c.compiled[pattern]; ok {
		return re, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	c.compiled[pattern] = re
	return re, nil
}

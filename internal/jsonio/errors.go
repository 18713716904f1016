// Package jsonio is the boundary between raw UTF-8 JSON bytes and the
// internal/value tree. spec.md §1 calls the low-level JSON
// tokenizer/printer an external collaborator of the core; this package is
// the minimal stdlib implementation needed to have a runnable CLI, kept
// deliberately outside internal/value, internal/walkpath, and the other
// "hard core" packages so the core never depends on encoding/json.
package jsonio

import (
	"fmt"
	"strings"
)

// excerptWindow is the bounded excerpt width from spec.md §7 ParseError.
const excerptWindow = 67

// ParseError reports a malformed JSON document with a UTF-8-aware
// location pointer: a line excerpt plus a caret offset, the excerpt
// window bounded to excerptWindow characters centered on the error
// (spec.md §7).
type ParseError struct {
	Message string
	Offset  int64
	Source  []byte
}

func (e *ParseError) Error() string {
	excerpt, caret := locate(e.Source, int(e.Offset))
	return fmt.Sprintf("parse error at byte %d: %s\n%s\n%s^", e.Offset, e.Message, excerpt, strings.Repeat(" ", caret))
}

// locate returns the excerptWindow-wide rune window of the line containing
// offset, centered on offset, plus the caret's rune column within that
// window.
func locate(source []byte, offset int) (string, int) {
	if offset < 0 {
		offset = 0
	}
	if offset > len(source) {
		offset = len(source)
	}

	lineStart := 0
	if idx := lastIndexByte(source[:offset], '\n'); idx >= 0 {
		lineStart = idx + 1
	}
	lineEnd := len(source)
	if idx := indexByte(source[offset:], '\n'); idx >= 0 {
		lineEnd = offset + idx
	}

	line := string(source[lineStart:lineEnd])
	runes := []rune(line)
	runeCol := len([]rune(string(source[lineStart:offset])))

	half := excerptWindow / 2
	start := runeCol - half
	if start < 0 {
		start = 0
	}
	end := start + excerptWindow
	if end > len(runes) {
		end = len(runes)
		start = end - excerptWindow
		if start < 0 {
			start = 0
		}
	}

	return string(runes[start:end]), runeCol - start
}

func lastIndexByte(b []byte, c byte) int {
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] == c {
			return i
		}
	}
	return -1
}

func indexByte(b []byte, c byte) int {
	for i, v := range b {
		if v == c {
			return i
		}
	}
	return -1
}

package driver

// Exit codes (spec.md §6). Codes above 10 are banded by originating
// subsystem so the kind of failure is recoverable from the code alone:
// 1x option-parsing failures, 2x JSON-parse failures, 3x walk-path
// compile failures, 4x regex-engine failures from within a search
// lexeme.
const (
	ExitSuccess            = 0
	ExitWalkPathRequired   = 1
	ExitWalkInvalidated    = 2
	ExitMissingExecCloser  = 3
	ExitCompareDifferences = 4

	// ExitOptionError, ExitJSONParseError, ExitWalkCompileError and
	// ExitRegexError each occupy their own disjoint band so a caller
	// scripting against the exit code can tell a bad flag from bad input
	// from a bad walk-path from a bad regex without parsing stderr.
	ExitOptionError      = 10
	ExitJSONParseError   = 20
	ExitWalkCompileError = 30
	ExitRegexError       = 40
)

package driver

import (
	"bytes"
	"errors"
	"os/exec"
	"strings"

	"github.com/mibar/jtc/internal/interpolate"
	"github.com/mibar/jtc/internal/value"
	"github.com/mibar/jtc/internal/walkpath"
)

// execClauseTerminator is the token that closes an -e clause, mirroring
// find(1)'s `-exec ... \;` convention that the original tool borrowed.
const execClauseTerminator = `\;`

// errMissingExecCloser signals exit code 3 (spec.md §6): an -e clause was
// opened but never closed with \;.
var errMissingExecCloser = errors.New("driver: -e clause missing trailing \\; terminator")

// extractExecClause pulls an -e ... \; clause out of a raw argument list
// before cobra/pflag ever sees it: pflag's single-value flags can't
// express "consume every token up to a sentinel", so the clause is
// spliced out by hand and the rest of the arguments are parsed normally.
// It returns the command template (the tokens between -e and \;, space-
// joined) and the remaining arguments with the clause removed.
func extractExecClause(args []string) (template string, rest []string, err error) {
	for i, a := range args {
		if a != "-e" && a != "--exec" {
			continue
		}
		for j := i + 1; j < len(args); j++ {
			if args[j] == execClauseTerminator {
				template = strings.Join(args[i+1:j], " ")
				rest = append(append([]string{}, args[:i]...), args[j+1:]...)
				return template, rest, nil
			}
		}
		return "", nil, errMissingExecCloser
	}
	return "", args, nil
}

// runExec expands template's interpolation tokens against ns/path, runs
// the result as a shell command, and returns its captured stdout. A
// subprocess that fails or prints nothing is a CliError (spec.md §7): the
// caller is expected to warn and skip rather than abort.
func runExec(template string, ns walkpath.Namespace, path value.Path) ([]byte, error) {
	command, err := interpolate.ExpandString(template, ns, path)
	if err != nil {
		return nil, err
	}
	command = interpolate.ShellQuote(command)
	cmd := exec.Command("sh", "-c", command)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, &CliError{Command: command, Stderr: stderr.String(), Err: err}
	}
	out := bytes.TrimRight(stdout.Bytes(), "\n")
	if len(out) == 0 {
		return nil, &CliError{Command: command, Stderr: stderr.String(), Err: errors.New("produced no output")}
	}
	return out, nil
}

// CliError reports an -e subprocess failure (spec.md §7).
type CliError struct {
	Command string
	Stderr  string
	Err     error
}

func (e *CliError) Error() string {
	if e.Stderr != "" {
		return "exec " + e.Command + ": " + e.Err.Error() + ": " + e.Stderr
	}
	return "exec " + e.Command + ": " + e.Err.Error()
}

func (e *CliError) Unwrap() error { return e.Err }

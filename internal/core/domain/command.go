package domain

import (
	"strings"
)

// CommandSpec describes one external process invocation.
type CommandSpec struct {
	// Name is the executable, resolved via PATH when not absolute.
	Name string
	// Args are passed verbatim; no shell is involved.
	Args []string
	// Dir is the working directory of the process.
	Dir string
	// Env holds KEY=VALUE overrides applied on top of the inherited environment.
	Env map[string]string
}

// String renders the command line for diagnostics, quoting arguments that
// contain whitespace or shell metacharacters.
func (c CommandSpec) String() string {
	parts := make([]string, 0, len(c.Args)+1)
	parts = append(parts, quoteArg(c.Name))
	for _, a := range c.Args {
		parts = append(parts, quoteArg(a))
	}
	return strings.Join(parts, " ")
}

func quoteArg(s string) string {
	if s == "" {
		return "''"
	}
	if !strings.ContainsAny(s, " \t\n'\"$`\\*?()") {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// ProcessResult is what an external process reports back: its exit status and
// its combined stdout/stderr split into lines in arrival order.
type ProcessResult struct {
	ExitCode int
	Output   []string
}

// Succeeded reports a zero exit status.
func (r ProcessResult) Succeeded() bool {
	return r.ExitCode == 0
}

package domain

import (
	"strings"
)

// BuildFailure reports a failed external process. The command line and its
// captured output are kept verbatim so the operator can diagnose the toolchain.
type BuildFailure struct {
	Stage   Stage
	Command string
	Output  []string
}

// NewBuildFailure creates a BuildFailure for the given stage.
func NewBuildFailure(stage Stage, command string, output []string) *BuildFailure {
	return &BuildFailure{
		Stage:   stage,
		Command: command,
		Output:  output,
	}
}

// Error renders the command followed by its indented output.
func (f *BuildFailure) Error() string {
	var b strings.Builder
	b.WriteString("build command failed")
	if f.Stage != "" {
		b.WriteString(" during ")
		b.WriteString(string(f.Stage))
	}
	b.WriteString(": ")
	b.WriteString(f.Command)
	b.WriteString("\nOutput:\n")
	for _, line := range f.Output {
		b.WriteString("    ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// Is reports ErrBuildFailed as a match so callers can classify without errors.As.
func (f *BuildFailure) Is(target error) bool {
	return target == ErrBuildFailed //nolint:errorlint // sentinel identity
}

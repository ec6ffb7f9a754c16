// Package shell provides the process runner adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"

	"go.trai.ch/unifw/internal/core/domain"
	"go.trai.ch/unifw/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner implements ports.ProcessRunner using os/exec.
type Runner struct {
	logger ports.Logger
}

var _ ports.ProcessRunner = (*Runner)(nil)

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{
		logger: logger,
	}
}

// Run starts the command, waits for it to exit and returns its exit code and
// combined output. Each completed output line is also forwarded to the vertex
// carried by ctx, if any.
func (r *Runner) Run(ctx context.Context, spec domain.CommandSpec) (domain.ProcessResult, error) {
	if spec.Name == "" {
		return domain.ProcessResult{}, zerr.New("empty command")
	}

	cmdEnv := resolveEnvironment(os.Environ(), spec.Env)

	executable := spec.Name
	if !filepath.IsAbs(executable) && !strings.ContainsRune(executable, filepath.Separator) {
		if lp, err := lookPath(executable, cmdEnv); err == nil {
			executable = lp
		}
	}

	cmd := exec.CommandContext(ctx, executable, spec.Args...) //nolint:gosec // command built by the toolchain adapters

	// Restore the original command name in Args[0]
	if len(cmd.Args) > 0 {
		cmd.Args[0] = spec.Name
	}
	if spec.Dir != "" {
		cmd.Dir = spec.Dir
	}
	cmd.Env = cmdEnv

	out := &lineWriter{}
	if v, ok := ports.VertexFromContext(ctx); ok {
		out.forward = v.Stdout()
	}
	cmd.Stdout = out
	cmd.Stderr = out

	err := cmd.Run()
	out.Flush()

	result := domain.ProcessResult{Output: out.Lines()}
	if err == nil {
		return result, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		if result.ExitCode < 0 {
			// Killed by a signal.
			result.ExitCode = -1
		}
		return result, nil
	}

	r.logger.Warn("failed to start " + spec.Name)
	return result, zerr.With(zerr.Wrap(err, "failed to start command"), "command", spec.String())
}

// lineWriter collects combined stdout and stderr as lines, in arrival order.
type lineWriter struct {
	mu      sync.Mutex
	buf     bytes.Buffer
	lines   []string
	forward io.Writer
}

func (w *lineWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf.Write(p)
	for {
		line, err := w.buf.ReadString('\n')
		if err != nil {
			// Partial line; keep it for the next write.
			w.buf.Reset()
			w.buf.WriteString(line)
			break
		}
		w.emit(strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"))
	}
	return len(p), nil
}

// Flush emits a trailing line that was not newline-terminated.
func (w *lineWriter) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.buf.Len() > 0 {
		w.emit(w.buf.String())
		w.buf.Reset()
	}
}

func (w *lineWriter) emit(line string) {
	w.lines = append(w.lines, line)
	if w.forward != nil {
		_, _ = io.WriteString(w.forward, line+"\n")
	}
}

// Lines returns the collected lines.
func (w *lineWriter) Lines() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]string(nil), w.lines...)
}

// resolveEnvironment applies overrides on top of the inherited environment.
func resolveEnvironment(sysEnv []string, overrides map[string]string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(overrides))
	order := make([]string, 0, len(sysEnv)+len(overrides))
	for _, entry := range sysEnv {
		k, v, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if _, seen := envMap[k]; !seen {
			order = append(order, k)
		}
		envMap[k] = v
	}
	for k, v := range overrides {
		if _, seen := envMap[k]; !seen {
			order = append(order, k)
		}
		envMap[k] = v
	}

	result := make([]string, 0, len(order))
	for _, k := range order {
		result = append(result, k+"="+envMap[k])
	}
	return result
}

// lookPath searches for an executable in the directories named by the PATH entry of env.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			path = strings.TrimPrefix(e, "PATH=")
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if err := findExecutable(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}

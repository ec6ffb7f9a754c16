// Package lipo merges and inspects multi-architecture binaries with the lipo tool.
package lipo

import (
	"context"
	"strings"

	"go.trai.ch/unifw/internal/core/domain"
	"go.trai.ch/unifw/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultTool is the slice-merging executable.
const DefaultTool = "lipo"

// Tool implements ports.BinaryCombiner and ports.SliceInspector.
type Tool struct {
	runner ports.ProcessRunner
	name   string
}

var (
	_ ports.BinaryCombiner = (*Tool)(nil)
	_ ports.SliceInspector = (*Tool)(nil)
)

// New creates a Tool running name, or DefaultTool when name is empty.
func New(runner ports.ProcessRunner, name string) *Tool {
	if name == "" {
		name = DefaultTool
	}
	return &Tool{runner: runner, name: name}
}

// Combine writes one binary at output holding every slice of inputs.
// Inputs are passed in order; duplicate architectures are left to the tool.
func (t *Tool) Combine(ctx context.Context, inputs []string, output string) error {
	if len(inputs) == 0 {
		return zerr.With(zerr.Wrap(domain.ErrDegenerateInput, "cannot create binary"), "output", output)
	}

	args := make([]string, 0, len(inputs)+3)
	args = append(args, "-create", "-output", output)
	args = append(args, inputs...)

	return t.run(ctx, domain.StageCombine, domain.CommandSpec{Name: t.name, Args: args}, nil)
}

// Architectures returns the slices of the binary at path, in the order the tool reports them.
func (t *Tool) Architectures(ctx context.Context, path string) ([]string, error) {
	var archs []string
	err := t.run(ctx, domain.StageInspect, domain.CommandSpec{Name: t.name, Args: []string{"-info", path}},
		func(output []string) {
			archs = ParseInfo(output)
		})
	if err != nil {
		return nil, err
	}
	return archs, nil
}

func (t *Tool) run(ctx context.Context, stage domain.Stage, cmd domain.CommandSpec, onSuccess func([]string)) error {
	res, err := t.runner.Run(ctx, cmd)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to run lipo"), "stage", string(stage))
	}
	if !res.Succeeded() {
		return zerr.With(domain.NewBuildFailure(stage, cmd.String(), res.Output), "exit_code", res.ExitCode)
	}
	if onSuccess != nil {
		onSuccess(res.Output)
	}
	return nil
}

// ParseInfo extracts architecture names from "lipo -info" output, which reads either
// "Architectures in the fat file: X are: a b" or "Non-fat file: X is architecture: a".
func ParseInfo(output []string) []string {
	var archs []string
	for _, line := range output {
		idx := strings.LastIndex(line, ":")
		if idx < 0 {
			continue
		}
		head := line[:idx]
		if !strings.HasSuffix(head, " are") && !strings.HasSuffix(head, " is architecture") {
			continue
		}
		archs = append(archs, strings.Fields(line[idx+1:])...)
	}
	return archs
}

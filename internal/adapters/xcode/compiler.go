// Package xcode invokes the platform build tool to produce one build tree per environment.
package xcode

import (
	"context"
	"path/filepath"

	"go.trai.ch/unifw/internal/core/domain"
	"go.trai.ch/unifw/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// DefaultTool is the build tool executable.
	DefaultTool = "xcodebuild"
	// DefaultConfiguration is the release-style configuration requested for every build.
	DefaultConfiguration = "Release"
)

// Compiler implements ports.Compiler on top of a ProcessRunner.
type Compiler struct {
	runner ports.ProcessRunner
	logger ports.Logger
	tool   string
}

var _ ports.Compiler = (*Compiler)(nil)

// NewCompiler creates a Compiler running tool, or DefaultTool when tool is empty.
func NewCompiler(runner ports.ProcessRunner, logger ports.Logger, tool string) *Compiler {
	if tool == "" {
		tool = DefaultTool
	}
	return &Compiler{runner: runner, logger: logger, tool: tool}
}

// Command builds the invocation for req without running it.
func (c *Compiler) Command(req ports.CompileRequest) domain.CommandSpec {
	outputDir := req.OutputDir
	if !filepath.IsAbs(outputDir) {
		outputDir = req.Root.Path(outputDir)
	}
	configuration := req.Configuration
	if configuration == "" {
		configuration = DefaultConfiguration
	}

	settings := BuildSettings(req.Platform, req.Environment, req.Archs)

	args := make([]string, 0, len(req.Definitions)+len(settings)+len(req.ExtraArgs)+9)
	args = append(args, req.Definitions...)
	args = append(args, settings...)
	args = append(args, req.ExtraArgs...)
	args = append(args,
		"CONFIGURATION_BUILD_DIR="+outputDir,
		"clean", "build",
		"-configuration", configuration,
		"-target", req.Target,
		"-project", req.Root.ProjectPath(req.Project),
	)

	return domain.CommandSpec{
		Name: c.tool,
		Args: args,
		Dir:  string(req.Root),
		Env:  req.Env,
	}
}

// Compile runs a clean build of req.Target into req.OutputDir. A non-zero exit
// fails with a *domain.BuildFailure carrying the command and its full output.
func (c *Compiler) Compile(ctx context.Context, req ports.CompileRequest) error {
	cmd := c.Command(req)
	stage := domain.StageForEnvironment(req.Environment)

	c.logger.Info("building " + req.Target + " for " + req.Environment.String())

	res, err := c.runner.Run(ctx, cmd)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to run build tool"), "stage", string(stage))
	}
	if !res.Succeeded() {
		failure := domain.NewBuildFailure(stage, cmd.String(), res.Output)
		return zerr.With(failure, "exit_code", res.ExitCode)
	}
	return nil
}

// BuildSettings returns the environment specific settings for a compile: the
// SDK, the requested architectures and the fixed bitcode/warning flags.
func BuildSettings(platform domain.Platform, env domain.Environment, archs domain.ArchitectureSet) []string {
	settings := make([]string, 0, 4)
	if sdk := platform.SDK(env); sdk != "" {
		settings = append(settings, "-sdk", sdk)
	}
	if len(archs) > 0 {
		settings = append(settings, "ARCHS="+archs.String())
	}
	return append(settings, "OTHER_CFLAGS=-fembed-bitcode -Qunused-arguments")
}

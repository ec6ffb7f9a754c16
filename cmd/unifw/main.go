// Package main is the entry point for the unifw framework builder.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/grindlemire/graft"
	"go.trai.ch/unifw/cmd/unifw/commands"
	"go.trai.ch/unifw/internal/app"
	_ "go.trai.ch/unifw/internal/wiring"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer, opts ...graft.Option) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, _, err := graft.ExecuteFor[*app.Components](ctx, opts...)
	if err != nil {
		// Logger is not available yet if initialization failed
		printError(stderr, err)
		return 1
	}
	defer func() {
		if err := components.Telemetry.Close(); err != nil {
			components.Logger.Warn("failed to close telemetry: " + err.Error())
		}
	}()

	// 2. Interface - CLI
	cli := commands.New(components)
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		printError(stderr, err)
		return 1
	}
	return 0
}

func printError(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "%s: %+v\n", color.HiRedString("error"), err)
}

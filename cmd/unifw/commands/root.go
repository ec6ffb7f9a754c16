// Package commands implements the CLI commands for the unifw framework builder.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/unifw/internal/app"
	"go.trai.ch/unifw/internal/build"
)

// DefaultConfig is the manifest path used when --config is not given.
const DefaultConfig = "unifw.yaml"

type quietSetter interface {
	SetQuiet(quiet bool)
}

// CLI represents the command line interface for unifw.
type CLI struct {
	components *app.Components
	rootCmd    *cobra.Command
}

// New creates a new CLI instance with the given components.
func New(components *app.Components) *CLI {
	rootCmd := &cobra.Command{
		Use:           "unifw",
		Short:         "Build universal iOS frameworks from simulator and device builds",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", DefaultConfig, "Path to the build manifest or its directory")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Only log warnings and errors")

	c := &CLI{
		components: components,
		rootCmd:    rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		quiet, _ := cmd.Flags().GetBool("quiet")
		if q, ok := c.components.Logger.(quietSetter); ok {
			q.SetQuiet(quiet)
		}
	}

	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newMergeHeaderCmd())
	rootCmd.AddCommand(c.newArchsCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects command output and error output. Used for testing.
func (c *CLI) SetOutput(out, errOut io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(errOut)
}

func configPath(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString("config")
	return path
}

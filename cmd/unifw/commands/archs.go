package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newArchsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "archs",
		Short: "Print the architectures the next build would request",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			set, err := c.components.App.Architectures(cmd.Context(), configPath(cmd))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), set.String())
			return nil
		},
	}
}

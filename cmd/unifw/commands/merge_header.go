package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

var errHeaderMissing = zerr.New("bridging header not found")

func (c *CLI) newMergeHeaderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merge-header SIMULATOR DEVICE",
		Short: "Merge simulator and device bridging headers into one conditional header",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			output, _ := cmd.Flags().GetString("output")
			ok, err := c.components.Headers.Merge(args[0], args[1], output)
			if err != nil {
				return err
			}
			if !ok {
				return zerr.With(zerr.With(zerr.Wrap(errHeaderMissing, "cannot merge headers"), "simulator", args[0]), "device", args[1])
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", color.HiGreenString("✓"), output)
			return nil
		},
	}
	cmd.Flags().StringP("output", "o", "", "Path of the merged header")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

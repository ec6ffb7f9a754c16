package commands

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.trai.ch/unifw/internal/core/domain"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Build, merge and deliver the universal framework",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := configPath(cmd)
			session, err := c.components.App.Build(cmd.Context(), path)
			if err != nil {
				if session != nil {
					printFailure(cmd.ErrOrStderr(), session)
				}
				return err
			}

			record, err := c.components.App.LastRecord(path)
			if err != nil {
				c.components.Logger.Warn("could not read build record: " + err.Error())
			}
			printSummary(cmd.OutOrStdout(), session, record)
			return nil
		},
	}
}

func printSummary(w io.Writer, s *domain.Session, record *domain.BuildRecord) {
	_, _ = fmt.Fprintf(w, "%s %s -> %s\n", color.HiGreenString("✓"), s.Target, s.Bundle)
	_, _ = fmt.Fprintf(w, "  archs:   %s\n", s.Archs)
	if record != nil && record.BinaryHash != "" {
		_, _ = fmt.Fprintf(w, "  binary:  %s\n", record.BinaryHash)
	}
	_, _ = fmt.Fprintf(w, "  session: %s\n", s.ID)
}

// printFailure names the stage that was running when the session failed.
func printFailure(w io.Writer, s *domain.Session) {
	stage := domain.SessionInit
	if n := len(s.History); n >= 2 {
		stage = s.History[n-2]
	}
	_, _ = fmt.Fprintf(w, "%s session %s failed during %s\n", color.HiRedString("✗"), s.ID, stage)
}

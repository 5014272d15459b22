package cmd

import (
	"github.com/spf13/cobra"

	"github.com/plumelab/pageval/internal/evalcmd"
)

func newEvalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Page extraction evaluation tools",
		Long: `Evaluation tools for scoring predicted page extractions against gold
standard pages.

Supports batch runs over paired directories or corpus shards, summary and
per-page reports for saved runs, and single-pair inspection showing how
items were aligned.`,
	}

	// Add eval subcommands
	cmd.AddCommand(evalcmd.NewRunCmd())
	cmd.AddCommand(evalcmd.NewReportCmd())
	cmd.AddCommand(evalcmd.NewInspectCmd())

	return cmd
}

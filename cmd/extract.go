package cmd

import (
	"github.com/spf13/cobra"

	"github.com/plumelab/pageval/internal/evalcmd"
)

func newExtractCmd() *cobra.Command {
	cmd := evalcmd.NewExtractCmd()
	cmd.AddCommand(evalcmd.NewModelsCmd())
	return cmd
}

package evalcmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/plumelab/pageval/internal/report"
	"github.com/plumelab/pageval/internal/results"
)

// NewReportCmd prints the summary and per-page tables for a saved run.
func NewReportCmd() *cobra.Command {
	var (
		resultsPath string
		resultsDir  string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the summary and per-page tables for a saved run",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := resultsPath
			if path == "" {
				runs, err := results.ListRuns(resultsDir)
				if err != nil {
					return err
				}
				if len(runs) == 0 {
					return fmt.Errorf("no run files found in %s", resultsDir)
				}
				path = runs[len(runs)-1]
				fmt.Printf("Using latest run: %s\n\n", path)
			}

			run, err := results.Load(path)
			if err != nil {
				return err
			}

			report.WriteSummary(os.Stdout, run)
			fmt.Println()
			report.WritePages(os.Stdout, run)
			return nil
		},
	}

	cmd.Flags().StringVar(&resultsPath, "results", "", "Path to a run YAML file (defaults to the latest)")
	cmd.Flags().StringVar(&resultsDir, "dir", "evals", "Directory searched for run files when --results is not given")

	return cmd
}

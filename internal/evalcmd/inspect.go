package evalcmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/plumelab/pageval/internal/evaluate"
	"github.com/plumelab/pageval/internal/report"
	"github.com/plumelab/pageval/internal/schema"
)

// NewInspectCmd evaluates a single page pair and prints the item alignment.
func NewInspectCmd() *cobra.Command {
	var (
		goldPath          string
		predPath          string
		matchThreshold    float64
		metadataThreshold float64
		classes           []string
	)

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Evaluate a single page pair and show how items were aligned",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := buildOptions(matchThreshold, metadataThreshold, classes)
			if err != nil {
				return err
			}

			gold, err := schema.LoadPage(goldPath)
			if err != nil {
				return err
			}
			pred, err := schema.LoadPage(predPath)
			if err != nil {
				return err
			}

			result := evaluate.ComparePages(gold, pred, opts)

			goldTexts := make([]string, len(gold.Items))
			for i, item := range gold.Items {
				goldTexts[i] = item.TextRaw
			}
			predTexts := make([]string, len(pred.Items))
			for i, item := range pred.Items {
				predTexts[i] = item.TextRaw
			}

			report.WriteAlignment(os.Stdout, gold.PageRef, &result, goldTexts, predTexts)
			return nil
		},
	}

	cmd.Flags().StringVar(&goldPath, "gold", "", "Gold standard page JSON file")
	cmd.Flags().StringVar(&predPath, "pred", "", "Predicted page JSON file")
	cmd.Flags().Float64Var(&matchThreshold, "match-threshold", evaluate.DefaultOptions().MatchThreshold, "Minimum similarity for item matching")
	cmd.Flags().Float64Var(&metadataThreshold, "metadata-threshold", evaluate.DefaultOptions().MetadataThreshold, "Minimum similarity for metadata partial matches")
	cmd.Flags().StringSliceVar(&classes, "class", nil, "Restrict text metrics to these item classes (repeatable)")
	cmd.MarkFlagRequired("gold")
	cmd.MarkFlagRequired("pred")

	return cmd
}

package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pageval",
		Short: "Page-level text extraction evaluation for scanned periodicals",
		Long: `Pageval measures how well automated text extraction reconstructs the
content of scanned historical periodical pages.

It extracts structured page JSON from scanned issue PDFs with OCR and
vision models, and scores predicted pages against gold standard pages:
fuzzy item alignment, character and word error rates, classification
accuracy, metadata field accuracy, and continuation flag detection.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
	}

	// Add subcommands
	cmd.AddCommand(newEvalCmd())
	cmd.AddCommand(newExtractCmd())

	return cmd
}

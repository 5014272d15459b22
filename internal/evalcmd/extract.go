package evalcmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/plumelab/pageval/internal/pdf"
	"github.com/plumelab/pageval/internal/schema"
)

// NewExtractCmd runs a model over a scanned issue PDF, writing one page
// JSON file per page.
func NewExtractCmd() *cobra.Command {
	var (
		pdfPath   string
		modelName string
		outputDir string
		firstPage int
		lastPage  int
		overwrite bool
	)

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract structured pages from a scanned issue PDF",
		Long: `Extract structured pages from a scanned issue PDF with a vision or
OCR model. Each page is written as <issue>_p<NNN>.json in the output
directory; pages whose output file already exists are skipped unless
--overwrite is set.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := newRegistry()

			apiKey, err := apiKeyFor(modelName)
			if err != nil {
				return err
			}
			provider, err := registry.New(modelName, apiKey)
			if err != nil {
				return err
			}

			total, err := pdf.CountPages(pdfPath)
			if err != nil {
				return err
			}
			if firstPage < 1 {
				firstPage = 1
			}
			if lastPage < 1 || lastPage > total {
				lastPage = total
			}
			if firstPage > lastPage {
				return fmt.Errorf("page range %d-%d is empty (document has %d pages)", firstPage, lastPage, total)
			}

			if err := os.MkdirAll(outputDir, 0o755); err != nil {
				return fmt.Errorf("unable to create output directory: %w", err)
			}

			stem := strings.TrimSuffix(filepath.Base(pdfPath), filepath.Ext(pdfPath))
			slog.Info("Starting extraction", "pdf", pdfPath, "model", modelName, "pages", lastPage-firstPage+1)

			var failed int
			for pageNum := firstPage; pageNum <= lastPage; pageNum++ {
				outPath := filepath.Join(outputDir, fmt.Sprintf("%s_p%03d.json", stem, pageNum))
				if !overwrite {
					if _, err := os.Stat(outPath); err == nil {
						slog.Info("Skipping existing page", "path", outPath)
						continue
					}
				}

				page, err := provider.ProcessPage(cmd.Context(), pdfPath, pageNum)
				if err != nil {
					slog.Error("Page extraction failed", "page", pageNum, "error", err)
					failed++
					continue
				}
				if err := schema.SavePage(page, outPath); err != nil {
					return err
				}
				slog.Info("Extracted page", "page", pageNum, "items", len(page.Items), "path", outPath)
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d pages failed to extract", failed, lastPage-firstPage+1)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&pdfPath, "pdf", "", "Scanned issue PDF")
	cmd.Flags().StringVar(&modelName, "model", "mistral-ocr-latest", "Extraction model name")
	cmd.Flags().StringVar(&outputDir, "output", "extracted", "Directory for page JSON files")
	cmd.Flags().IntVar(&firstPage, "first-page", 1, "First page to extract (1-indexed)")
	cmd.Flags().IntVar(&lastPage, "last-page", 0, "Last page to extract (defaults to the final page)")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Re-extract pages whose output file already exists")
	cmd.MarkFlagRequired("pdf")

	return cmd
}

// NewModelsCmd lists the models the extract command supports.
func NewModelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List supported extraction models",
		Run: func(cmd *cobra.Command, args []string) {
			for _, model := range newRegistry().Models() {
				fmt.Println(model)
			}
		},
	}
}

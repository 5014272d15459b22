// Package evalcmd implements the eval and extract CLI commands.
package evalcmd

import (
	"fmt"
	"log/slog"
	"os"
	"sort"
	"sync"

	"github.com/spf13/cobra"

	"github.com/plumelab/pageval/internal/dataset"
	"github.com/plumelab/pageval/internal/evaluate"
	"github.com/plumelab/pageval/internal/report"
	"github.com/plumelab/pageval/internal/results"
)

// NewRunCmd evaluates a set of predicted pages against gold pages.
func NewRunCmd() *cobra.Command {
	var (
		goldDir           string
		predDir           string
		corpusPath        string
		outputDir         string
		matchThreshold    float64
		metadataThreshold float64
		classes           []string
		concurrency       int
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Evaluate predicted pages against gold standard pages",
		Long: `Evaluate predicted page extractions against gold standard pages.

Pages come either from two directories of page JSON files paired by
filename (--gold and --pred), or from a corpus shard (--corpus) in Parquet
or JSONL form. Each page pair is matched and scored along every dimension;
results are saved as a timestamped YAML run file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if corpusPath == "" && (goldDir == "" || predDir == "") {
				return fmt.Errorf("either --corpus or both --gold and --pred are required")
			}

			opts, err := buildOptions(matchThreshold, metadataThreshold, classes)
			if err != nil {
				return err
			}
			return executeRun(goldDir, predDir, corpusPath, outputDir, opts, concurrency)
		},
	}

	cmd.Flags().StringVar(&goldDir, "gold", "", "Directory of gold standard page JSON files")
	cmd.Flags().StringVar(&predDir, "pred", "", "Directory of predicted page JSON files")
	cmd.Flags().StringVar(&corpusPath, "corpus", "", "Corpus shard (.parquet or .jsonl) of embedded page pairs")
	cmd.Flags().StringVar(&outputDir, "output", "evals", "Directory for result YAML files")
	cmd.Flags().Float64Var(&matchThreshold, "match-threshold", evaluate.DefaultOptions().MatchThreshold, "Minimum similarity for item matching")
	cmd.Flags().Float64Var(&metadataThreshold, "metadata-threshold", evaluate.DefaultOptions().MetadataThreshold, "Minimum similarity for metadata partial matches")
	cmd.Flags().StringSliceVar(&classes, "class", nil, "Restrict text metrics to these item classes (repeatable)")
	cmd.Flags().IntVar(&concurrency, "concurrency", 4, "Number of pages evaluated in parallel")

	return cmd
}

// pairSource abstracts the two page-pair origins (directories, corpus).
type pairSource struct {
	name string
	load func() (*evaluate.PageResult, error)
}

func executeRun(goldDir, predDir, corpusPath, outputDir string, opts evaluate.Options, concurrency int) error {
	sources, err := collectSources(goldDir, predDir, corpusPath, opts)
	if err != nil {
		return err
	}
	slog.Info("Starting evaluation run", "pages", len(sources), "concurrency", concurrency)

	// Page pairs are independent, so they fan out over a bounded worker
	// pool with no shared state.
	var wg sync.WaitGroup
	semaphore := make(chan struct{}, concurrency)
	resultsChan := make(chan evaluate.PageEvaluation, len(sources))

	for _, source := range sources {
		wg.Add(1)
		go func(source pairSource) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			page := evaluate.PageEvaluation{PageName: source.name}
			result, err := source.load()
			if err != nil {
				page.Error = err.Error()
			} else {
				page.Result = result
			}
			resultsChan <- page
		}(source)
	}

	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	var pages []evaluate.PageEvaluation
	for page := range resultsChan {
		if page.Error != "" {
			slog.Warn("Page evaluation failed", "page", page.PageName, "error", page.Error)
		}
		pages = append(pages, page)
	}
	sort.Slice(pages, func(i, j int) bool { return pages[i].PageName < pages[j].PageName })

	run := &results.Run{
		Config: results.RunConfig{
			GoldDir:           goldDir,
			PredDir:           predDir,
			CorpusPath:        corpusPath,
			MatchThreshold:    opts.MatchThreshold,
			MetadataThreshold: opts.MetadataThreshold,
		},
		Summary: evaluate.Summarize(pages),
		Pages:   pages,
	}

	path, err := results.Save(run, outputDir)
	if err != nil {
		return err
	}

	report.WriteSummary(os.Stdout, run)
	fmt.Printf("\nResults saved to: %s\n", path)
	fmt.Printf("Generate the per-page report with:\n  pageval eval report --results %s\n", path)
	return nil
}

func collectSources(goldDir, predDir, corpusPath string, opts evaluate.Options) ([]pairSource, error) {
	if corpusPath != "" {
		records, err := dataset.LoadCorpus(corpusPath)
		if err != nil {
			return nil, err
		}
		sources := make([]pairSource, 0, len(records))
		for _, record := range records {
			record := record
			sources = append(sources, pairSource{
				name: record.Name(),
				load: func() (*evaluate.PageResult, error) {
					gold, pred, err := record.Pages()
					if err != nil {
						return nil, err
					}
					result := evaluate.ComparePages(gold, pred, opts)
					return &result, nil
				},
			})
		}
		return sources, nil
	}

	pairs, err := dataset.DiscoverPairs(goldDir, predDir)
	if err != nil {
		return nil, err
	}
	sources := make([]pairSource, 0, len(pairs))
	for _, pair := range pairs {
		pair := pair
		sources = append(sources, pairSource{
			name: pair.Name,
			load: func() (*evaluate.PageResult, error) {
				gold, pred, err := pair.Load()
				if err != nil {
					return nil, err
				}
				result := evaluate.ComparePages(gold, pred, opts)
				return &result, nil
			},
		})
	}
	return sources, nil
}

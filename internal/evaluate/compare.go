package evaluate

import (
	"github.com/plumelab/pageval/internal/match"
	"github.com/plumelab/pageval/internal/metrics"
	"github.com/plumelab/pageval/internal/schema"
)

// Options carries the two caller-supplied thresholds plus an optional
// class filter for the text-quality dimensions. The zero value is not
// usable; start from DefaultOptions.
type Options struct {
	MatchThreshold    float64
	MetadataThreshold float64
	Classes           []schema.ItemClass
}

// DefaultOptions returns the calibrated thresholds.
func DefaultOptions() Options {
	return Options{
		MatchThreshold:    match.DefaultThreshold,
		MetadataThreshold: DefaultMetadataThreshold,
	}
}

// PageResult merges every evaluation dimension for one page pair.
type PageResult struct {
	Matches        match.Set                    `yaml:"-"`
	MatchCount     int                          `yaml:"match_count"`
	UnmatchedGold  int                          `yaml:"unmatched_gold"`
	UnmatchedPred  int                          `yaml:"unmatched_pred"`
	StructureAware StructureAwareResult         `yaml:"structure_aware"`
	OrderAgnostic  OrderAgnosticResult          `yaml:"order_agnostic"`
	Classification ClassificationResult         `yaml:"classification"`
	Detailed       DetailedClassificationResult `yaml:"classification_detailed"`
	Title          MetadataResult               `yaml:"title"`
	Author         MetadataResult               `yaml:"author"`
	Continuation   ContinuationResult           `yaml:"continuation"`
	WordCoverage   metrics.WordCoverage         `yaml:"word_coverage"`
	CharCoverage   metrics.CharacterCoverage    `yaml:"char_coverage"`
}

// ComparePages runs the item matcher once and feeds the resulting
// alignment to every evaluator. The inputs are read-only; the whole
// computation is pure and page pairs can be evaluated concurrently
// without coordination.
func ComparePages(gold, pred *schema.Page, opts Options) PageResult {
	set := match.Items(gold.Items, pred.Items, opts.MatchThreshold)

	goldDoc := joinTexts(gold.Items, opts.Classes)
	predDoc := joinTexts(pred.Items, opts.Classes)
	wordCov, _ := metrics.ComputeWordCoverage(goldDoc, predDoc, metrics.NormStandard)
	charCov, _ := metrics.ComputeCharacterCoverage(goldDoc, predDoc, metrics.NormLettersOnly)

	return PageResult{
		Matches:        set,
		MatchCount:     len(set.Matches),
		UnmatchedGold:  len(set.UnmatchedGold),
		UnmatchedPred:  len(set.UnmatchedPred),
		StructureAware: StructureAware(gold.Items, pred.Items, set, opts.Classes),
		OrderAgnostic:  OrderAgnostic(gold.Items, pred.Items, opts.Classes),
		Classification: Classification(gold.Items, pred.Items, set),
		Detailed:       ClassificationDetailed(gold.Items, pred.Items, set, nil),
		Title:          Metadata(gold.Items, pred.Items, set, FieldTitle, opts.MetadataThreshold),
		Author:         Metadata(gold.Items, pred.Items, set, FieldAuthor, opts.MetadataThreshold),
		Continuation:   Continuation(gold.Items, pred.Items, set),
		WordCoverage:   wordCov,
		CharCoverage:   charCov,
	}
}

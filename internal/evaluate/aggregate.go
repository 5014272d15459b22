package evaluate

import "sort"

// PageEvaluation couples one page pair's result with its identity, or an
// error message when the pair could not be loaded.
type PageEvaluation struct {
	PageName string      `yaml:"page"`
	Error    string      `yaml:"error,omitempty"`
	Result   *PageResult `yaml:"result,omitempty"`
}

// Summary aggregates evaluation metrics across pages. Averages are
// unweighted means over successfully evaluated pages.
type Summary struct {
	TotalPages      int `yaml:"total_pages"`
	SuccessfulPages int `yaml:"successful_pages"`
	FailedPages     int `yaml:"failed_pages"`

	TotalMatches       int `yaml:"total_matches"`
	TotalUnmatchedGold int `yaml:"total_unmatched_gold"`
	TotalUnmatchedPred int `yaml:"total_unmatched_pred"`

	AvgCERStandard       float64 `yaml:"avg_cer_standard"`
	AvgWERStandard       float64 `yaml:"avg_wer_standard"`
	AvgCERLetters        float64 `yaml:"avg_cer_letters"`
	AvgOrderAgnosticCER  float64 `yaml:"avg_order_agnostic_cer"`
	AvgClassAccuracy     float64 `yaml:"avg_classification_accuracy"`
	AvgTitleF1           float64 `yaml:"avg_title_f1"`
	AvgAuthorF1          float64 `yaml:"avg_author_f1"`
	AvgIsContinuationF1  float64 `yaml:"avg_is_continuation_f1"`
	AvgContinuesF1       float64 `yaml:"avg_continues_f1"`
	AvgWordCoverageF1    float64 `yaml:"avg_word_coverage_f1"`
	AvgMatchedPercentage float64 `yaml:"avg_matched_percentage"`
	MinMatchedPercentage float64 `yaml:"min_matched_percentage"`
	MedianMatchedPercent float64 `yaml:"median_matched_percentage"`
	MaxMatchedPercentage float64 `yaml:"max_matched_percentage"`
}

// Summarize folds per-page results into a run summary.
func Summarize(pages []PageEvaluation) *Summary {
	summary := &Summary{TotalPages: len(pages)}

	var matchedPercentages []float64
	for _, page := range pages {
		if page.Error != "" || page.Result == nil {
			summary.FailedPages++
			continue
		}
		summary.SuccessfulPages++
		r := page.Result

		summary.TotalMatches += r.MatchCount
		summary.TotalUnmatchedGold += r.UnmatchedGold
		summary.TotalUnmatchedPred += r.UnmatchedPred

		summary.AvgCERStandard += r.StructureAware.CERStandard
		summary.AvgWERStandard += r.StructureAware.WERStandard
		summary.AvgCERLetters += r.StructureAware.CERLetters
		summary.AvgOrderAgnosticCER += r.OrderAgnostic.CERStandard
		summary.AvgClassAccuracy += r.Classification.Accuracy
		summary.AvgTitleF1 += r.Title.F1
		summary.AvgAuthorF1 += r.Author.F1
		summary.AvgIsContinuationF1 += r.Continuation.IsContinuation.F1
		summary.AvgContinuesF1 += r.Continuation.ContinuesOnNextPage.F1
		summary.AvgWordCoverageF1 += r.WordCoverage.F1

		matchedPercentages = append(matchedPercentages, r.StructureAware.MatchedPercentage)
	}

	if summary.SuccessfulPages == 0 {
		return summary
	}

	n := float64(summary.SuccessfulPages)
	summary.AvgCERStandard /= n
	summary.AvgWERStandard /= n
	summary.AvgCERLetters /= n
	summary.AvgOrderAgnosticCER /= n
	summary.AvgClassAccuracy /= n
	summary.AvgTitleF1 /= n
	summary.AvgAuthorF1 /= n
	summary.AvgIsContinuationF1 /= n
	summary.AvgContinuesF1 /= n
	summary.AvgWordCoverageF1 /= n

	sort.Float64s(matchedPercentages)
	var total float64
	for _, p := range matchedPercentages {
		total += p
	}
	summary.AvgMatchedPercentage = total / n
	summary.MinMatchedPercentage = matchedPercentages[0]
	summary.MaxMatchedPercentage = matchedPercentages[len(matchedPercentages)-1]
	mid := len(matchedPercentages) / 2
	if len(matchedPercentages)%2 == 0 {
		summary.MedianMatchedPercent = (matchedPercentages[mid-1] + matchedPercentages[mid]) / 2
	} else {
		summary.MedianMatchedPercent = matchedPercentages[mid]
	}

	return summary
}

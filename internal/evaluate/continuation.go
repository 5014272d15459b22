package evaluate

import (
	"github.com/plumelab/pageval/internal/match"
	"github.com/plumelab/pageval/internal/metrics"
	"github.com/plumelab/pageval/internal/schema"
)

// FlagMetrics is the 2×2 confusion count and derived scores for one
// continuation flag.
type FlagMetrics struct {
	TP        int     `yaml:"tp"`
	FP        int     `yaml:"fp"`
	FN        int     `yaml:"fn"`
	TN        int     `yaml:"tn"`
	Precision float64 `yaml:"precision"`
	Recall    float64 `yaml:"recall"`
	F1        float64 `yaml:"f1"`
}

// ContinuationResult scores the two continuation flags independently.
type ContinuationResult struct {
	IsContinuation      FlagMetrics `yaml:"is_continuation"`
	ContinuesOnNextPage FlagMetrics `yaml:"continues_on_next_page"`
}

// Continuation evaluates both continuation flags across all items, not
// just matched pairs. Matched pairs compare flags directly. An unmatched
// gold item with a true flag is a missed continuation, counted as a false
// negative; an unmatched predicted item with a true flag is a hallucinated
// continuation, counted as a false positive.
func Continuation(gold, pred []schema.Item, set match.Set) ContinuationResult {
	var isCont, continues FlagMetrics

	for _, m := range set.Matches {
		tally(&isCont, gold[m.Gold].IsContinuation, pred[m.Pred].IsContinuation)
		tally(&continues, gold[m.Gold].ContinuesOnNextPage, pred[m.Pred].ContinuesOnNextPage)
	}

	for _, goldIdx := range set.UnmatchedGold {
		if gold[goldIdx].IsContinuation {
			isCont.FN++
		}
		if gold[goldIdx].ContinuesOnNextPage {
			continues.FN++
		}
	}

	for _, predIdx := range set.UnmatchedPred {
		if pred[predIdx].IsContinuation {
			isCont.FP++
		}
		if pred[predIdx].ContinuesOnNextPage {
			continues.FP++
		}
	}

	derive(&isCont)
	derive(&continues)

	return ContinuationResult{IsContinuation: isCont, ContinuesOnNextPage: continues}
}

func tally(m *FlagMetrics, goldFlag, predFlag bool) {
	switch {
	case goldFlag && predFlag:
		m.TP++
	case !goldFlag && predFlag:
		m.FP++
	case goldFlag && !predFlag:
		m.FN++
	default:
		m.TN++
	}
}

func derive(m *FlagMetrics) {
	if m.TP+m.FP > 0 {
		m.Precision = float64(m.TP) / float64(m.TP+m.FP)
	}
	if m.TP+m.FN > 0 {
		m.Recall = float64(m.TP) / float64(m.TP+m.FN)
	}
	m.F1 = metrics.F1Score(m.Precision, m.Recall)
}

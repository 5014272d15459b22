package evaluate

import (
	"testing"

	"github.com/plumelab/pageval/internal/match"
	"github.com/plumelab/pageval/internal/schema"
)

func contItem(isCont, continues bool) schema.Item {
	return schema.Item{
		Class:               schema.ClassProse,
		TextRaw:             "texte",
		IsContinuation:      isCont,
		ContinuesOnNextPage: continues,
	}
}

func TestContinuationMatchedPairs(t *testing.T) {
	gold := []schema.Item{
		contItem(true, false),
		contItem(false, true),
		contItem(false, false),
		contItem(true, true),
	}
	pred := []schema.Item{
		contItem(true, false),
		contItem(false, false),
		contItem(true, false),
		contItem(true, true),
	}

	result := Continuation(gold, pred, identitySet(4))

	ic := result.IsContinuation
	if ic.TP != 2 || ic.FP != 1 || ic.FN != 0 || ic.TN != 1 {
		t.Errorf("Expected is_continuation TP=2 FP=1 FN=0 TN=1, got %+v", ic)
	}
	if ic.Precision != 2.0/3.0 {
		t.Errorf("Expected precision 2/3, got %v", ic.Precision)
	}
	if ic.Recall != 1.0 {
		t.Errorf("Expected recall 1.0, got %v", ic.Recall)
	}

	cn := result.ContinuesOnNextPage
	if cn.TP != 1 || cn.FP != 0 || cn.FN != 1 || cn.TN != 2 {
		t.Errorf("Expected continues_on_next_page TP=1 FP=0 FN=1 TN=2, got %+v", cn)
	}
	if cn.Recall != 0.5 {
		t.Errorf("Expected recall 0.5, got %v", cn.Recall)
	}
}

func TestContinuationUnmatchedItems(t *testing.T) {
	// A missed continuation item is a false negative for its true flags,
	// and a hallucinated one a false positive.
	gold := []schema.Item{contItem(true, true)}
	pred := []schema.Item{contItem(true, false)}
	set := match.Set{UnmatchedGold: []int{0}, UnmatchedPred: []int{0}}

	result := Continuation(gold, pred, set)

	ic := result.IsContinuation
	if ic.TP != 0 || ic.FN != 1 || ic.FP != 1 {
		t.Errorf("Expected is_continuation FN=1 FP=1, got %+v", ic)
	}
	if ic.Precision != 0.0 || ic.Recall != 0.0 || ic.F1 != 0.0 {
		t.Errorf("Expected all-zero scores, got %+v", ic)
	}

	cn := result.ContinuesOnNextPage
	if cn.FN != 1 || cn.FP != 0 {
		t.Errorf("Expected continues_on_next_page FN=1 FP=0, got %+v", cn)
	}
}

func TestContinuationUnmatchedFalseFlagsIgnored(t *testing.T) {
	// Unmatched items with false flags contribute nothing, not true
	// negatives.
	gold := []schema.Item{contItem(false, false)}
	pred := []schema.Item{contItem(false, false)}
	set := match.Set{UnmatchedGold: []int{0}, UnmatchedPred: []int{0}}

	result := Continuation(gold, pred, set)

	if result.IsContinuation != (FlagMetrics{}) {
		t.Errorf("Expected zero metrics, got %+v", result.IsContinuation)
	}
	if result.ContinuesOnNextPage != (FlagMetrics{}) {
		t.Errorf("Expected zero metrics, got %+v", result.ContinuesOnNextPage)
	}
}

func TestContinuationEmpty(t *testing.T) {
	result := Continuation(nil, nil, match.Set{})
	if result.IsContinuation != (FlagMetrics{}) || result.ContinuesOnNextPage != (FlagMetrics{}) {
		t.Errorf("Expected zero result, got %+v", result)
	}
}

package evaluate

import (
	"math"
	"testing"

	"github.com/plumelab/pageval/internal/schema"
)

func TestStructureAware(t *testing.T) {
	gold := []schema.Item{
		classedItem(schema.ClassProse, "hello world"),
		classedItem(schema.ClassVerse, "la lune brille"),
	}
	pred := []schema.Item{
		classedItem(schema.ClassProse, "hello world"),
		classedItem(schema.ClassVerse, "la lune brille"),
	}

	result := StructureAware(gold, pred, identitySet(2), nil)

	if result.CERStandard != 0.0 {
		t.Errorf("Expected CER 0.0, got %v", result.CERStandard)
	}
	if result.WERStandard != 0.0 {
		t.Errorf("Expected WER 0.0, got %v", result.WERStandard)
	}
	// Documents are the space-joined raw texts.
	if result.MatchedGoldChars != 26 {
		t.Errorf("Expected 26 matched gold chars, got %d", result.MatchedGoldChars)
	}
	if result.TotalGoldChars != 25 {
		t.Errorf("Expected 25 total gold chars, got %d", result.TotalGoldChars)
	}
}

func TestStructureAwareCountsUnmatched(t *testing.T) {
	gold := []schema.Item{
		classedItem(schema.ClassProse, "hello world"),
		classedItem(schema.ClassProse, "missed"),
	}
	pred := []schema.Item{
		classedItem(schema.ClassProse, "hello world"),
		classedItem(schema.ClassProse, "invented"),
	}
	set := identitySet(1)
	set.UnmatchedGold = []int{1}
	set.UnmatchedPred = []int{1}

	result := StructureAware(gold, pred, set, nil)

	if result.UnmatchedGoldChars != 6 {
		t.Errorf("Expected 6 unmatched gold chars, got %d", result.UnmatchedGoldChars)
	}
	if result.UnmatchedPredChars != 8 {
		t.Errorf("Expected 8 unmatched pred chars, got %d", result.UnmatchedPredChars)
	}
	expected := float64(11) / float64(17) * 100
	if math.Abs(result.MatchedPercentage-expected) > 1e-9 {
		t.Errorf("Expected matched percentage %v, got %v", expected, result.MatchedPercentage)
	}
}

func TestStructureAwareClassFilter(t *testing.T) {
	gold := []schema.Item{
		classedItem(schema.ClassProse, "texte en prose"),
		classedItem(schema.ClassAd, "publicité pour un tonique"),
	}
	pred := []schema.Item{
		classedItem(schema.ClassProse, "texte en prose"),
		classedItem(schema.ClassAd, "publicité complètement fausse"),
	}

	result := StructureAware(gold, pred, identitySet(2), []schema.ItemClass{schema.ClassProse})

	if result.CERStandard != 0.0 {
		t.Errorf("Expected CER 0.0 when ads are excluded, got %v", result.CERStandard)
	}
	if result.TotalGoldChars != 14 {
		t.Errorf("Expected 14 total gold chars, got %d", result.TotalGoldChars)
	}
}

func TestStructureAwareNoMatches(t *testing.T) {
	gold := []schema.Item{classedItem(schema.ClassProse, "seul")}
	set := identitySet(0)
	set.UnmatchedGold = []int{0}

	result := StructureAware(gold, nil, set, nil)

	if result.CERStandard != 0.0 || result.MatchedGoldChars != 0 {
		t.Errorf("Expected zero text metrics, got %+v", result)
	}
	if result.UnmatchedGoldChars != 4 || result.TotalGoldChars != 4 {
		t.Errorf("Expected unmatched chars counted, got %+v", result)
	}
	if result.MatchedPercentage != 0.0 {
		t.Errorf("Expected matched percentage 0.0, got %v", result.MatchedPercentage)
	}
}

func TestOrderAgnosticIgnoresReadingOrder(t *testing.T) {
	gold := []schema.Item{
		classedItem(schema.ClassProse, "premier bloc"),
		classedItem(schema.ClassProse, "second bloc"),
	}
	pred := []schema.Item{
		classedItem(schema.ClassProse, "second bloc"),
		classedItem(schema.ClassProse, "premier bloc"),
	}

	result := OrderAgnostic(gold, pred, nil)

	if result.CERStandard != 0.0 {
		t.Errorf("Expected CER 0.0 for reordered identical text, got %v", result.CERStandard)
	}
	if result.WERStandard != 0.0 {
		t.Errorf("Expected WER 0.0 for reordered identical text, got %v", result.WERStandard)
	}
	if result.GoldWords != 4 || result.PredWords != 4 {
		t.Errorf("Expected 4 words each side, got %d and %d", result.GoldWords, result.PredWords)
	}
}

func TestOrderAgnosticDetectsErrors(t *testing.T) {
	gold := []schema.Item{classedItem(schema.ClassProse, "bonjour monde")}
	pred := []schema.Item{classedItem(schema.ClassProse, "monde banjour")}

	result := OrderAgnostic(gold, pred, nil)

	if result.CERStandard == 0.0 {
		t.Error("Expected nonzero CER for misrecognized text")
	}
	if result.WERStandard != 0.5 {
		t.Errorf("Expected WER 0.5, got %v", result.WERStandard)
	}
}

func TestOrderAgnosticEmpty(t *testing.T) {
	result := OrderAgnostic(nil, nil, nil)
	if result.CERStandard != 0.0 || result.WERStandard != 0.0 {
		t.Errorf("Expected zero rates for empty pages, got %+v", result)
	}
}

// Package evaluate scores a predicted page against its gold standard along
// five dimensions: text quality over matched content, order-agnostic text
// quality, classification, metadata fields, and continuation flags. Every
// evaluator consumes read-only item lists plus a precomputed match.Set and
// returns an independent result struct; ComparePages merges them.
package evaluate

import (
	"strings"
	"unicode/utf8"

	"github.com/plumelab/pageval/internal/match"
	"github.com/plumelab/pageval/internal/metrics"
	"github.com/plumelab/pageval/internal/schema"
	"github.com/plumelab/pageval/internal/textnorm"
)

// StructureAwareResult reports text quality computed only over matched
// item pairs, isolating recognition error from segmentation error.
// Character counts are rune counts of the raw texts.
type StructureAwareResult struct {
	CERStandard        float64 `yaml:"cer_standard"`
	WERStandard        float64 `yaml:"wer_standard"`
	CERLetters         float64 `yaml:"cer_letters"`
	MatchedGoldChars   int     `yaml:"matched_gold_chars"`
	MatchedPredChars   int     `yaml:"matched_pred_chars"`
	UnmatchedGoldChars int     `yaml:"unmatched_gold_chars"`
	UnmatchedPredChars int     `yaml:"unmatched_pred_chars"`
	TotalGoldChars     int     `yaml:"total_gold_chars"`
	MatchedPercentage  float64 `yaml:"matched_percentage"`
}

// StructureAware concatenates the raw text of matched gold items and
// matched predicted items (in match order, space-joined) and computes
// CER/WER between the two documents. classes, when non-empty, restricts
// the evaluation to matches whose gold item has one of those classes.
func StructureAware(gold, pred []schema.Item, set match.Set, classes []schema.ItemClass) StructureAwareResult {
	matches := filterMatchesByClass(set.Matches, gold, classes)

	var result StructureAwareResult

	if len(matches) > 0 {
		goldTexts := make([]string, 0, len(matches))
		predTexts := make([]string, 0, len(matches))
		for _, m := range matches {
			goldTexts = append(goldTexts, gold[m.Gold].TextRaw)
			predTexts = append(predTexts, pred[m.Pred].TextRaw)
		}
		goldDoc := strings.Join(goldTexts, " ")
		predDoc := strings.Join(predTexts, " ")

		result.CERStandard, _ = metrics.CharacterErrorRate(goldDoc, predDoc, metrics.NormStandard)
		result.WERStandard, _ = metrics.WordErrorRate(goldDoc, predDoc, metrics.NormStandard)
		result.CERLetters, _ = metrics.CharacterErrorRate(goldDoc, predDoc, metrics.NormLettersOnly)
		result.MatchedGoldChars = utf8.RuneCountInString(goldDoc)
		result.MatchedPredChars = utf8.RuneCountInString(predDoc)
	}

	matchedGold := make(map[int]bool, len(matches))
	matchedPred := make(map[int]bool, len(matches))
	for _, m := range matches {
		matchedGold[m.Gold] = true
		matchedPred[m.Pred] = true
	}

	for i, item := range gold {
		if !classIncluded(item.Class, classes) {
			continue
		}
		result.TotalGoldChars += utf8.RuneCountInString(item.TextRaw)
		if !matchedGold[i] {
			result.UnmatchedGoldChars += utf8.RuneCountInString(item.TextRaw)
		}
	}
	for i, item := range pred {
		if !classIncluded(item.Class, classes) {
			continue
		}
		if !matchedPred[i] {
			result.UnmatchedPredChars += utf8.RuneCountInString(item.TextRaw)
		}
	}

	if result.TotalGoldChars > 0 {
		result.MatchedPercentage = float64(result.MatchedGoldChars) / float64(result.TotalGoldChars) * 100
	}

	return result
}

// OrderAgnosticResult reports text quality over whole-page documents with
// reading order removed by token sorting. Char and word counts describe
// the unsorted concatenated texts.
type OrderAgnosticResult struct {
	CERStandard float64 `yaml:"cer_standard"`
	WERStandard float64 `yaml:"wer_standard"`
	CERLetters  float64 `yaml:"cer_letters"`
	GoldChars   int     `yaml:"gold_chars"`
	PredChars   int     `yaml:"pred_chars"`
	GoldWords   int     `yaml:"gold_words"`
	PredWords   int     `yaml:"pred_words"`
}

// OrderAgnostic ignores the alignment entirely: it concatenates all gold
// texts and all predicted texts (optionally class-filtered), token-sorts
// both documents, and measures CER/WER between them. This captures pure
// recognition quality independent of segmentation or reading-order errors.
func OrderAgnostic(gold, pred []schema.Item, classes []schema.ItemClass) OrderAgnosticResult {
	goldDoc := joinTexts(gold, classes)
	predDoc := joinTexts(pred, classes)

	goldSorted := textnorm.TokenSort(goldDoc)
	predSorted := textnorm.TokenSort(predDoc)

	var result OrderAgnosticResult
	result.CERStandard, _ = metrics.CharacterErrorRate(goldSorted, predSorted, metrics.NormStandard)
	result.WERStandard, _ = metrics.WordErrorRate(goldSorted, predSorted, metrics.NormStandard)
	result.CERLetters, _ = metrics.CharacterErrorRate(goldSorted, predSorted, metrics.NormLettersOnly)
	result.GoldChars = utf8.RuneCountInString(goldDoc)
	result.PredChars = utf8.RuneCountInString(predDoc)
	result.GoldWords = len(strings.Fields(goldDoc))
	result.PredWords = len(strings.Fields(predDoc))

	return result
}

// joinTexts concatenates item texts with single spaces, keeping only the
// given classes when the filter is non-empty.
func joinTexts(items []schema.Item, classes []schema.ItemClass) string {
	texts := make([]string, 0, len(items))
	for _, item := range items {
		if classIncluded(item.Class, classes) {
			texts = append(texts, item.TextRaw)
		}
	}
	return strings.Join(texts, " ")
}

// filterMatchesByClass keeps matches whose gold item carries one of the
// given classes. An empty filter keeps everything.
func filterMatchesByClass(matches []match.Match, gold []schema.Item, classes []schema.ItemClass) []match.Match {
	if len(classes) == 0 {
		return matches
	}
	filtered := make([]match.Match, 0, len(matches))
	for _, m := range matches {
		if classIncluded(gold[m.Gold].Class, classes) {
			filtered = append(filtered, m)
		}
	}
	return filtered
}

func classIncluded(class schema.ItemClass, classes []schema.ItemClass) bool {
	if len(classes) == 0 {
		return true
	}
	for _, c := range classes {
		if c == class {
			return true
		}
	}
	return false
}

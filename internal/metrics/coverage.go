package metrics

import "strings"

// WordCoverage holds bag-of-words precision/recall between two texts.
// Each side is reduced to its set of unique whitespace tokens, so
// multiplicity and order are both ignored.
type WordCoverage struct {
	Precision     float64 `yaml:"precision"`
	Recall        float64 `yaml:"recall"`
	F1            float64 `yaml:"f1"`
	SharedWords   int     `yaml:"shared_words"`
	UniqueToHyp   int     `yaml:"unique_to_hyp"`
	UniqueToRef   int     `yaml:"unique_to_ref"`
	TotalRefWords int     `yaml:"total_ref_words"`
	TotalHypWords int     `yaml:"total_hyp_words"`
}

// CharacterCoverage holds bag-of-characters precision/recall between two
// texts. Characters are counted as multisets: the intersection respects
// per-character frequency.
type CharacterCoverage struct {
	Precision          float64 `yaml:"precision"`
	Recall             float64 `yaml:"recall"`
	F1                 float64 `yaml:"f1"`
	MatchedChars       int     `yaml:"matched_chars"`
	TotalRefChars      int     `yaml:"total_ref_chars"`
	TotalHypChars      int     `yaml:"total_hyp_chars"`
	UniqueRefChars     int     `yaml:"unique_ref_chars"`
	UniqueHypChars     int     `yaml:"unique_hyp_chars"`
	UniqueMatchedChars int     `yaml:"unique_matched_chars"`
}

// ComputeWordCoverage calculates word-level precision, recall, and F1
// between a reference and a hypothesis at the given normalization level.
// NormLettersOnly falls back to NormStandard since word boundaries are
// required. Both sides empty yields perfect precision and recall; exactly
// one side empty yields zero for both.
func ComputeWordCoverage(reference, hypothesis string, level Normalization) (WordCoverage, error) {
	if level == NormLettersOnly {
		level = NormStandard
	}
	ref, err := Normalize(reference, level)
	if err != nil {
		return WordCoverage{}, err
	}
	hyp, err := Normalize(hypothesis, level)
	if err != nil {
		return WordCoverage{}, err
	}

	refSet := tokenSet(ref)
	hypSet := tokenSet(hyp)

	shared := 0
	for token := range refSet {
		if hypSet[token] {
			shared++
		}
	}

	cov := WordCoverage{
		SharedWords:   shared,
		UniqueToHyp:   len(hypSet) - shared,
		UniqueToRef:   len(refSet) - shared,
		TotalRefWords: len(refSet),
		TotalHypWords: len(hypSet),
	}

	switch {
	case len(refSet) == 0 && len(hypSet) == 0:
		cov.Precision = 1.0
		cov.Recall = 1.0
	case len(refSet) == 0 || len(hypSet) == 0:
		cov.Precision = 0.0
		cov.Recall = 0.0
	default:
		cov.Precision = float64(shared) / float64(len(hypSet))
		cov.Recall = float64(shared) / float64(len(refSet))
	}
	cov.F1 = F1Score(cov.Precision, cov.Recall)

	return cov, nil
}

// ComputeCharacterCoverage calculates character-level precision, recall,
// and F1 using multiset intersection. NormLettersOnly is the usual level
// for this metric. Both sides empty yields an all-perfect result.
func ComputeCharacterCoverage(reference, hypothesis string, level Normalization) (CharacterCoverage, error) {
	ref, err := Normalize(reference, level)
	if err != nil {
		return CharacterCoverage{}, err
	}
	hyp, err := Normalize(hypothesis, level)
	if err != nil {
		return CharacterCoverage{}, err
	}

	refCounts := runeCounts(ref)
	hypCounts := runeCounts(hyp)

	matched := 0
	uniqueMatched := 0
	totalRef := 0
	totalHyp := 0
	for _, n := range refCounts {
		totalRef += n
	}
	for _, n := range hypCounts {
		totalHyp += n
	}
	for r, n := range refCounts {
		if m, ok := hypCounts[r]; ok {
			matched += min(n, m)
			uniqueMatched++
		}
	}

	cov := CharacterCoverage{
		MatchedChars:       matched,
		TotalRefChars:      totalRef,
		TotalHypChars:      totalHyp,
		UniqueRefChars:     len(refCounts),
		UniqueHypChars:     len(hypCounts),
		UniqueMatchedChars: uniqueMatched,
	}

	switch {
	case totalRef == 0 && totalHyp == 0:
		cov.Precision = 1.0
		cov.Recall = 1.0
		cov.F1 = 1.0
	case totalRef == 0 || totalHyp == 0:
		// Zero everything: one side produced text the other cannot cover.
	default:
		cov.Precision = float64(matched) / float64(totalHyp)
		cov.Recall = float64(matched) / float64(totalRef)
		cov.F1 = F1Score(cov.Precision, cov.Recall)
	}

	return cov, nil
}

// F1Score is the standard harmonic mean of precision and recall, defined
// as 0.0 when both inputs are zero.
func F1Score(precision, recall float64) float64 {
	if precision+recall == 0 {
		return 0.0
	}
	return 2 * precision * recall / (precision + recall)
}

func tokenSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, token := range strings.Fields(text) {
		set[token] = true
	}
	return set
}

func runeCounts(text string) map[rune]int {
	counts := make(map[rune]int)
	for _, r := range text {
		counts[r]++
	}
	return counts
}

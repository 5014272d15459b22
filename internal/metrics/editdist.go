// Package metrics implements edit-distance text-quality metrics (CER, WER)
// and bag-of-tokens coverage calculations over normalized text.
package metrics

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/plumelab/pageval/internal/textnorm"
)

// Normalization selects the text normalization level applied before
// computing a metric.
type Normalization string

const (
	NormStrict      Normalization = "strict"
	NormStandard    Normalization = "standard"
	NormLettersOnly Normalization = "letters_only"
)

// Normalize applies the given level to text. An unrecognized level is a
// programming defect in the caller and is reported as an error, never
// silently coerced.
func Normalize(text string, level Normalization) (string, error) {
	switch level {
	case NormStrict:
		return textnorm.Strict(text), nil
	case NormStandard:
		return textnorm.Standard(text), nil
	case NormLettersOnly:
		return textnorm.LettersOnly(text), nil
	default:
		return "", fmt.Errorf("unknown normalization %q (expected strict, standard, or letters_only)", level)
	}
}

// CharacterErrorRate computes CER between a reference and a hypothesis:
// the unit-cost Levenshtein distance over the normalized character
// sequences divided by the normalized reference length. An empty reference
// yields 1.0 when the hypothesis is non-empty and 0.0 otherwise. The result
// ranges over [0, ∞).
func CharacterErrorRate(reference, hypothesis string, level Normalization) (float64, error) {
	ref, err := Normalize(reference, level)
	if err != nil {
		return 0, err
	}
	hyp, err := Normalize(hypothesis, level)
	if err != nil {
		return 0, err
	}

	if ref == "" {
		if hyp == "" {
			return 0.0, nil
		}
		return 1.0, nil
	}

	distance := levenshtein([]rune(ref), []rune(hyp))
	return float64(distance) / float64(utf8.RuneCountInString(ref)), nil
}

// WordErrorRate computes WER: the Levenshtein distance over whitespace
// token sequences divided by the reference token count. NormLettersOnly is
// treated as NormStandard because word boundaries are required. The empty
// reference convention matches CharacterErrorRate.
func WordErrorRate(reference, hypothesis string, level Normalization) (float64, error) {
	if level == NormLettersOnly {
		level = NormStandard
	}
	ref, err := Normalize(reference, level)
	if err != nil {
		return 0, err
	}
	hyp, err := Normalize(hypothesis, level)
	if err != nil {
		return 0, err
	}

	refWords := strings.Fields(ref)
	hypWords := strings.Fields(hyp)

	if len(refWords) == 0 {
		if len(hypWords) == 0 {
			return 0.0, nil
		}
		return 1.0, nil
	}

	distance := levenshtein(refWords, hypWords)
	return float64(distance) / float64(len(refWords)), nil
}

// levenshtein computes the unit-cost edit distance (insertions, deletions,
// substitutions) between two symbol sequences using a single rolling row.
func levenshtein[T comparable](a, b []T) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	row := make([]int, len(b)+1)
	for j := range row {
		row[j] = j
	}

	for i := 1; i <= len(a); i++ {
		prev := row[0]
		row[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			insertion := row[j] + 1
			deletion := row[j-1] + 1
			substitution := prev + cost

			prev = row[j]
			row[j] = min(insertion, min(deletion, substitution))
		}
	}

	return row[len(b)]
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Package match aligns predicted page items to gold standard items by
// fuzzy text similarity. The alignment is greedy rather than globally
// optimal: each gold item takes the best unconsumed candidate in turn.
// Switching to an optimal assignment would change historical evaluation
// numbers and must only happen as an explicit, versioned change.
package match

import (
	"strings"
	"unicode"

	"github.com/plumelab/pageval/internal/schema"
)

// DefaultThreshold is the minimum similarity accepted as a match,
// calibrated on sample pages from La Plume. Lower values admit more false
// matches, higher values miss valid ones.
const DefaultThreshold = 0.7

// Match links one gold item to one predicted item with its similarity.
type Match struct {
	Gold  int
	Pred  int
	Score float64
}

// Set is the complete alignment for one page pair. Every gold index
// appears in exactly one of Matches or UnmatchedGold, and symmetrically
// for predicted indices. A Set is computed once per page pair and is
// read-only input to the evaluators.
type Set struct {
	Matches       []Match
	UnmatchedGold []int
	UnmatchedPred []int
}

// Items aligns gold items to predicted items. For each gold item in order,
// it scores every not-yet-consumed predicted item and takes the strictly
// best candidate (ties keep the earliest scanned). Candidates below the
// threshold leave the gold item unmatched. Cost is O(G×P), fine for pages
// holding at most a few dozen items.
func Items(gold, pred []schema.Item, threshold float64) Set {
	var set Set
	consumed := make([]bool, len(pred))

	for goldIdx, goldItem := range gold {
		bestScore := 0.0
		bestPred := -1

		for predIdx, predItem := range pred {
			if consumed[predIdx] {
				continue
			}
			score := Similarity(goldItem.TextRaw, predItem.TextRaw)
			if score > bestScore {
				bestScore = score
				bestPred = predIdx
			}
		}

		if bestPred >= 0 && bestScore >= threshold {
			set.Matches = append(set.Matches, Match{Gold: goldIdx, Pred: bestPred, Score: bestScore})
			consumed[bestPred] = true
		} else {
			set.UnmatchedGold = append(set.UnmatchedGold, goldIdx)
		}
	}

	for predIdx := range pred {
		if !consumed[predIdx] {
			set.UnmatchedPred = append(set.UnmatchedPred, predIdx)
		}
	}

	return set
}

// Similarity scores two raw item texts in [0, 1]. Both texts are first
// normalized for matching (lowercased, punctuation removed, whitespace
// collapsed), then compared with Ratio. Two empty normalized texts are
// identical (1.0); exactly one empty is a complete mismatch (0.0).
func Similarity(a, b string) float64 {
	na := normalizeForMatch(a)
	nb := normalizeForMatch(b)

	if na == "" && nb == "" {
		return 1.0
	}
	if na == "" || nb == "" {
		return 0.0
	}
	return Ratio(na, nb)
}

// normalizeForMatch lowercases, drops every character that is neither a
// Unicode word character nor whitespace, and collapses whitespace runs.
// This is intentionally different from the textnorm levels: matching wants
// punctuation-insensitive comparison of item bodies.
func normalizeForMatch(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

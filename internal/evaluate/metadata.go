package evaluate

import (
	"strings"

	"github.com/plumelab/pageval/internal/match"
	"github.com/plumelab/pageval/internal/metrics"
	"github.com/plumelab/pageval/internal/schema"
)

// MetadataField names an optional per-item metadata field under evaluation.
type MetadataField string

const (
	FieldTitle  MetadataField = "item_title"
	FieldAuthor MetadataField = "item_author"
)

// DefaultMetadataThreshold is the minimum similarity for a partial
// metadata match. Higher than the item-matching threshold because titles
// and author names are short strings.
const DefaultMetadataThreshold = 0.8

// MetadataResult reports how well one optional field was captured across
// matched pairs. Precision divides partial matches by predicted presences,
// recall by gold presences.
type MetadataResult struct {
	GoldPresent    int     `yaml:"gold_present"`
	PredPresent    int     `yaml:"pred_present"`
	ExactMatches   int     `yaml:"exact_matches"`
	PartialMatches int     `yaml:"partial_matches"`
	Precision      float64 `yaml:"precision"`
	Recall         float64 `yaml:"recall"`
	F1             float64 `yaml:"f1"`
}

// Metadata evaluates one field over the matched pairs. Presence is judged
// on the raw value (non-blank after trimming whitespace). When both sides
// are present their normalized values are compared: similarity 1.0 counts
// as both exact and partial, similarity at or above the threshold counts
// as partial only.
func Metadata(gold, pred []schema.Item, set match.Set, field MetadataField, threshold float64) MetadataResult {
	var result MetadataResult
	if len(set.Matches) == 0 {
		return result
	}

	for _, m := range set.Matches {
		goldValue := fieldValue(gold[m.Gold], field)
		predValue := fieldValue(pred[m.Pred], field)

		goldPresent := strings.TrimSpace(goldValue) != ""
		predPresent := strings.TrimSpace(predValue) != ""

		if goldPresent {
			result.GoldPresent++
		}
		if predPresent {
			result.PredPresent++
		}
		if !goldPresent || !predPresent {
			continue
		}

		similarity := metadataSimilarity(goldValue, predValue)
		if similarity == 1.0 {
			result.ExactMatches++
			result.PartialMatches++
		} else if similarity >= threshold {
			result.PartialMatches++
		}
	}

	if result.PredPresent > 0 {
		result.Precision = float64(result.PartialMatches) / float64(result.PredPresent)
	}
	if result.GoldPresent > 0 {
		result.Recall = float64(result.PartialMatches) / float64(result.GoldPresent)
	}
	result.F1 = metrics.F1Score(result.Precision, result.Recall)

	return result
}

func fieldValue(item schema.Item, field MetadataField) string {
	switch field {
	case FieldTitle:
		return item.Title
	case FieldAuthor:
		return item.Author
	}
	return ""
}

// metadataSimilarity compares two metadata values after normalization.
// Normalized equality is always 1.0; otherwise the longest-matching-block
// ratio decides.
func metadataSimilarity(gold, pred string) float64 {
	goldNorm := normalizeMetadata(gold)
	predNorm := normalizeMetadata(pred)

	if goldNorm == "" && predNorm == "" {
		return 1.0
	}
	if goldNorm == "" || predNorm == "" {
		return 0.0
	}
	if goldNorm == predNorm {
		return 1.0
	}
	return match.Ratio(goldNorm, predNorm)
}

// normalizeMetadata lowercases, collapses whitespace, and strips trailing
// punctuation so that "Le Soleil." and "le soleil" compare equal.
func normalizeMetadata(s string) string {
	s = strings.Join(strings.Fields(strings.ToLower(s)), " ")
	return strings.TrimRight(s, ".,;:!?")
}

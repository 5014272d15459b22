package evaluate

import (
	"github.com/plumelab/pageval/internal/match"
	"github.com/plumelab/pageval/internal/metrics"
	"github.com/plumelab/pageval/internal/schema"
)

// ClassificationResult reports item-class agreement over matched pairs.
type ClassificationResult struct {
	GoldClasses []schema.ItemClass `yaml:"gold_classes"`
	PredClasses []schema.ItemClass `yaml:"pred_classes"`
	Correct     int                `yaml:"correct"`
	Total       int                `yaml:"total"`
	Accuracy    float64            `yaml:"accuracy"`
}

// Classification compares item_class gold vs predicted for every matched
// pair. Accuracy is 0.0 when there are no matches.
func Classification(gold, pred []schema.Item, set match.Set) ClassificationResult {
	var result ClassificationResult
	for _, m := range set.Matches {
		goldClass := gold[m.Gold].Class
		predClass := pred[m.Pred].Class
		result.GoldClasses = append(result.GoldClasses, goldClass)
		result.PredClasses = append(result.PredClasses, predClass)
		if goldClass == predClass {
			result.Correct++
		}
	}
	result.Total = len(set.Matches)
	if result.Total > 0 {
		result.Accuracy = float64(result.Correct) / float64(result.Total)
	}
	return result
}

// ClassMetrics holds per-class precision, recall, F1, and support (the
// number of matched pairs whose gold item carries the class).
type ClassMetrics struct {
	Precision float64 `yaml:"precision"`
	Recall    float64 `yaml:"recall"`
	F1        float64 `yaml:"f1"`
	Support   int     `yaml:"support"`
}

// AverageMetrics is an averaged precision/recall/F1 triple.
type AverageMetrics struct {
	Precision float64 `yaml:"precision"`
	Recall    float64 `yaml:"recall"`
	F1        float64 `yaml:"f1"`
}

// DetailedClassificationResult adds a confusion matrix and per-class
// metrics over a fixed label set. Confusion rows are gold labels and
// columns predicted labels, both indexed by Labels.
type DetailedClassificationResult struct {
	OverallAccuracy float64                           `yaml:"overall_accuracy"`
	Labels          []schema.ItemClass                `yaml:"labels"`
	Confusion       [][]int                           `yaml:"confusion_matrix"`
	PerClass        map[schema.ItemClass]ClassMetrics `yaml:"per_class"`
	MacroAvg        AverageMetrics                    `yaml:"macro_avg"`
	WeightedAvg     AverageMetrics                    `yaml:"weighted_avg"`
}

// ClassificationDetailed builds the confusion matrix over matched pairs
// and derives per-class precision/recall/F1/support plus macro and
// support-weighted averages. labels defaults to the five canonical classes.
// With no matches everything is zero and PerClass is empty.
func ClassificationDetailed(gold, pred []schema.Item, set match.Set, labels []schema.ItemClass) DetailedClassificationResult {
	if len(labels) == 0 {
		labels = schema.Classes
	}

	result := DetailedClassificationResult{
		Labels:    labels,
		Confusion: make([][]int, len(labels)),
		PerClass:  make(map[schema.ItemClass]ClassMetrics),
	}
	for i := range result.Confusion {
		result.Confusion[i] = make([]int, len(labels))
	}

	if len(set.Matches) == 0 {
		return result
	}

	labelIdx := make(map[schema.ItemClass]int, len(labels))
	for i, label := range labels {
		labelIdx[label] = i
	}

	correct := 0
	for _, m := range set.Matches {
		goldClass := gold[m.Gold].Class
		predClass := pred[m.Pred].Class
		if goldClass == predClass {
			correct++
		}
		gi, gok := labelIdx[goldClass]
		pi, pok := labelIdx[predClass]
		if gok && pok {
			result.Confusion[gi][pi]++
		}
	}
	result.OverallAccuracy = float64(correct) / float64(len(set.Matches))

	totalSupport := 0
	var sumP, sumR, sumF float64
	var weightedP, weightedR, weightedF float64

	for i, label := range labels {
		tp := result.Confusion[i][i]
		fp := 0
		fn := 0
		for j := range labels {
			if j != i {
				fp += result.Confusion[j][i]
				fn += result.Confusion[i][j]
			}
		}
		support := tp + fn

		var precision, recall float64
		if tp+fp > 0 {
			precision = float64(tp) / float64(tp+fp)
		}
		if tp+fn > 0 {
			recall = float64(tp) / float64(tp+fn)
		}
		f1 := metrics.F1Score(precision, recall)

		result.PerClass[label] = ClassMetrics{
			Precision: precision,
			Recall:    recall,
			F1:        f1,
			Support:   support,
		}

		sumP += precision
		sumR += recall
		sumF += f1
		weightedP += precision * float64(support)
		weightedR += recall * float64(support)
		weightedF += f1 * float64(support)
		totalSupport += support
	}

	n := float64(len(labels))
	result.MacroAvg = AverageMetrics{Precision: sumP / n, Recall: sumR / n, F1: sumF / n}
	if totalSupport > 0 {
		result.WeightedAvg = AverageMetrics{
			Precision: weightedP / float64(totalSupport),
			Recall:    weightedR / float64(totalSupport),
			F1:        weightedF / float64(totalSupport),
		}
	}

	return result
}

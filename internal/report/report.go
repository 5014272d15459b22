// Package report renders evaluation runs as terminal tables.
package report

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/plumelab/pageval/internal/evaluate"
	"github.com/plumelab/pageval/internal/results"
)

// WriteSummary renders the cross-page summary of a run.
func WriteSummary(w io.Writer, run *results.Run) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetTitle("Evaluation summary (%s)", run.Config.Timestamp)

	s := run.Summary
	t.AppendRows([]table.Row{
		{"Pages evaluated", fmt.Sprintf("%d (%d failed)", s.TotalPages, s.FailedPages)},
		{"Item matches", s.TotalMatches},
		{"Unmatched gold / pred", fmt.Sprintf("%d / %d", s.TotalUnmatchedGold, s.TotalUnmatchedPred)},
	})
	t.AppendSeparator()
	t.AppendRows([]table.Row{
		{"Avg CER (standard)", fmt.Sprintf("%.4f", s.AvgCERStandard)},
		{"Avg WER (standard)", fmt.Sprintf("%.4f", s.AvgWERStandard)},
		{"Avg CER (letters)", fmt.Sprintf("%.4f", s.AvgCERLetters)},
		{"Avg CER (order-agnostic)", fmt.Sprintf("%.4f", s.AvgOrderAgnosticCER)},
		{"Avg classification accuracy", fmt.Sprintf("%.2f%%", s.AvgClassAccuracy*100)},
		{"Avg title F1", fmt.Sprintf("%.3f", s.AvgTitleF1)},
		{"Avg author F1", fmt.Sprintf("%.3f", s.AvgAuthorF1)},
		{"Avg is_continuation F1", fmt.Sprintf("%.3f", s.AvgIsContinuationF1)},
		{"Avg continues_on_next_page F1", fmt.Sprintf("%.3f", s.AvgContinuesF1)},
		{"Avg word coverage F1", fmt.Sprintf("%.3f", s.AvgWordCoverageF1)},
	})
	t.AppendSeparator()
	t.AppendRow(table.Row{"Matched text %",
		fmt.Sprintf("avg %.1f / min %.1f / med %.1f / max %.1f",
			s.AvgMatchedPercentage, s.MinMatchedPercentage, s.MedianMatchedPercent, s.MaxMatchedPercentage)})
	t.Render()
}

// WritePages renders one row per evaluated page.
func WritePages(w io.Writer, run *results.Run) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Page", "Matches", "Unm. gold", "Unm. pred", "CER std", "WER std", "Class acc", "Title F1", "Author F1", "Matched %"})

	for _, page := range run.Pages {
		if page.Error != "" {
			t.AppendRow(table.Row{page.PageName, "-", "-", "-", "-", "-", "-", "-", "-", page.Error})
			continue
		}
		r := page.Result
		t.AppendRow(table.Row{
			page.PageName,
			r.MatchCount,
			r.UnmatchedGold,
			r.UnmatchedPred,
			fmt.Sprintf("%.4f", r.StructureAware.CERStandard),
			fmt.Sprintf("%.4f", r.StructureAware.WERStandard),
			fmt.Sprintf("%.2f", r.Classification.Accuracy),
			fmt.Sprintf("%.2f", r.Title.F1),
			fmt.Sprintf("%.2f", r.Author.F1),
			fmt.Sprintf("%.1f", r.StructureAware.MatchedPercentage),
		})
	}
	t.Render()
}

// WriteAlignment renders one page pair's item alignment for inspection.
func WriteAlignment(w io.Writer, pageName string, result *evaluate.PageResult, goldTexts, predTexts []string) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetTitle("Alignment for %s", pageName)
	t.AppendHeader(table.Row{"Gold", "Pred", "Similarity", "Gold text", "Pred text"})

	for _, m := range result.Matches.Matches {
		t.AppendRow(table.Row{m.Gold, m.Pred, fmt.Sprintf("%.3f", m.Score), snippet(goldTexts[m.Gold]), snippet(predTexts[m.Pred])})
	}
	for _, gi := range result.Matches.UnmatchedGold {
		t.AppendRow(table.Row{gi, "-", "-", snippet(goldTexts[gi]), ""})
	}
	for _, pi := range result.Matches.UnmatchedPred {
		t.AppendRow(table.Row{"-", pi, "-", "", snippet(predTexts[pi])})
	}
	t.Render()
}

func snippet(text string) string {
	runes := []rune(text)
	if len(runes) <= 60 {
		return text
	}
	return string(runes[:57]) + "..."
}

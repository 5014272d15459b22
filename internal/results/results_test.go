package results

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/plumelab/pageval/internal/evaluate"
)

func sampleRun() *Run {
	pages := []evaluate.PageEvaluation{
		{
			PageName: "issue12_p001.json",
			Result: &evaluate.PageResult{
				MatchCount: 3,
				StructureAware: evaluate.StructureAwareResult{
					CERStandard:       0.05,
					MatchedPercentage: 95.0,
				},
			},
		},
		{PageName: "issue12_p002.json", Error: "no prediction"},
	}
	return &Run{
		Config: RunConfig{
			GoldDir:           "gold",
			PredDir:           "pred",
			MatchThreshold:    0.7,
			MetadataThreshold: 0.8,
		},
		Summary: evaluate.Summarize(pages),
		Pages:   pages,
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()

	path, err := Save(sampleRun(), dir)
	if err != nil {
		t.Fatalf("Unexpected save error: %v", err)
	}
	if !strings.HasPrefix(filepath.Base(path), "eval_") {
		t.Errorf("Expected eval_ prefix, got %s", path)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Unexpected load error: %v", err)
	}
	if loaded.Config.MatchThreshold != 0.7 {
		t.Errorf("Expected match threshold 0.7, got %v", loaded.Config.MatchThreshold)
	}
	if loaded.Config.Timestamp == "" {
		t.Error("Expected timestamp to be filled in on save")
	}
	if len(loaded.Pages) != 2 {
		t.Fatalf("Expected 2 pages, got %d", len(loaded.Pages))
	}
	if loaded.Pages[0].Result == nil || loaded.Pages[0].Result.MatchCount != 3 {
		t.Errorf("Expected page result to round-trip, got %+v", loaded.Pages[0])
	}
	if loaded.Pages[1].Error != "no prediction" {
		t.Errorf("Expected error to round-trip, got %q", loaded.Pages[1].Error)
	}
	if loaded.Summary == nil || loaded.Summary.SuccessfulPages != 1 {
		t.Errorf("Expected summary to round-trip, got %+v", loaded.Summary)
	}
}

func TestListRuns(t *testing.T) {
	dir := t.TempDir()

	first := sampleRun()
	first.Config.Timestamp = "2026-01-01_10-00-00"
	second := sampleRun()
	second.Config.Timestamp = "2026-01-02_10-00-00"

	if _, err := Save(second, dir); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if _, err := Save(first, dir); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	runs, err := ListRuns(dir)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(runs))
	}
	if !strings.Contains(runs[0], "2026-01-01") || !strings.Contains(runs[1], "2026-01-02") {
		t.Errorf("Expected runs sorted by timestamp, got %v", runs)
	}
}

func TestListRunsEmpty(t *testing.T) {
	if _, err := ListRuns(t.TempDir()); err == nil {
		t.Error("Expected error for directory without runs")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
}
